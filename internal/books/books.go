package books

import "reliva/internal/media"

// SearchResult is the body of the Google Books search route.
type SearchResult struct {
	TotalItems int          `json:"totalItems"`
	Items      []media.Book `json:"items"`
}

type BestSellerList struct {
	ListID      string       `json:"list_id"`
	ListName    string       `json:"list_name"`
	DisplayName string       `json:"display_name"`
	Books       []media.Book `json:"books"`
}

type BestSellerResults struct {
	PublishedDate string           `json:"published_date"`
	Lists         []BestSellerList `json:"lists"`
}

// BestSellers is the body of the NYTimes route.
type BestSellers struct {
	Status  string            `json:"status"`
	Results BestSellerResults `json:"results"`
}

// SearchQuery selects Google Books volumes. At least one field must be set.
type SearchQuery struct {
	Q          string
	ISBN       string
	Title      string
	Author     string
	MaxResults int
}
