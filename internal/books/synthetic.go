package books

import (
	"errors"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"reliva/internal/media"
)

var ErrInvalidIdentifier = errors.New("books: identifier is neither a volume id nor a synthetic id")

// SyntheticID is the self-describing identifier clients build for books that
// have no stable provider id: URL-encoded JSON carrying at least a title.
type SyntheticID struct {
	Title         string
	Author        string
	Cover         string
	Overview      string
	PublishedDate string
	PageCount     int
}

// DecodeSyntheticID accepts the JSON directly or URL-encoded up to twice.
func DecodeSyntheticID(id string) (SyntheticID, error) {
	candidate := strings.TrimSpace(id)
	for i := 0; i < 3; i++ {
		if sid, ok := parseSynthetic(candidate); ok {
			return sid, nil
		}
		decoded, err := url.QueryUnescape(candidate)
		if err != nil || decoded == candidate {
			break
		}
		candidate = decoded
	}
	return SyntheticID{}, ErrInvalidIdentifier
}

func parseSynthetic(s string) (SyntheticID, bool) {
	if !strings.HasPrefix(s, "{") {
		return SyntheticID{}, false
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return SyntheticID{}, false
	}

	sid := SyntheticID{
		Title:         media.Str(raw, "title"),
		Author:        media.Str(raw, "author"),
		Cover:         media.Str(raw, "cover"),
		Overview:      media.Str(raw, "overview"),
		PublishedDate: media.Str(raw, "publishedDate"),
		PageCount:     media.Int(raw, "pageCount"),
	}
	if sid.Title == "" {
		return SyntheticID{}, false
	}
	return sid, true
}

// SearchTerms is the Google query for the decoded title and author.
func (s SyntheticID) SearchTerms() string {
	q := "intitle:" + s.Title
	if s.Author != "" {
		q += " inauthor:" + s.Author
	}
	return q
}

// Volume synthesizes a volume from the decoded fields alone.
func (s SyntheticID) Volume(id string) media.Volume {
	authors := []string{media.UnknownAuthor}
	if s.Author != "" {
		authors = []string{s.Author}
	}
	cover := s.Cover
	if cover == "" {
		cover = media.PlaceholderImage
	}

	return media.Volume{
		ID:        id,
		Synthetic: true,
		VolumeInfo: media.VolumeInfo{
			Title:               s.Title,
			Authors:             authors,
			Description:         s.Overview,
			PublishedDate:       s.PublishedDate,
			PageCount:           s.PageCount,
			Categories:          []string{},
			ImageLinks:          media.ImageLinks{Thumbnail: cover, SmallThumbnail: cover},
			IndustryIdentifiers: []media.IndustryIdentifier{},
		},
	}
}
