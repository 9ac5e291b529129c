package upstream

import (
	"net/url"
	"strings"
)

var secretParams = map[string]bool{
	"api_key":       true,
	"api-key":       true,
	"apikey":        true,
	"key":           true,
	"client_secret": true,
	"access_token":  true,
}

// RedactURL masks credential query parameters so the URL can be logged or returned.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[unparseable url]"
	}
	if u.User != nil {
		u.User = url.User("REDACTED")
	}
	if u.RawQuery == "" {
		return u.String()
	}

	q := u.Query()
	changed := false
	for k := range q {
		if secretParams[strings.ToLower(k)] {
			q.Set(k, "REDACTED")
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
