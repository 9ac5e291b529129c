// Package movies serves the TMDB passthrough proxy, the typed TMDB search and
// trending routes and the YouTube trailer lookup.
package movies

import "time"

// ProxyTTL is how long a successful GET through the TMDB proxy is reused.
const ProxyTTL = 5 * time.Minute

// ProxyResponse is an upstream TMDB response forwarded to the client verbatim.
type ProxyResponse struct {
	StatusCode  int    `json:"statusCode"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
	Cached      bool   `json:"-"`
}

type Trailer struct {
	VideoID string `json:"videoId"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}
