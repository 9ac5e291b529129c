package media

import (
	"strconv"
	"strings"
)

// YearFromDate parses the integer before the first "-" of a date-like string,
// returning DefaultBookYear when absent or unparsable.
func YearFromDate(date string) int {
	head := strings.TrimSpace(strings.SplitN(strings.TrimSpace(date), "-", 2)[0])
	year, err := strconv.Atoi(head)
	if err != nil || year <= 0 {
		return DefaultBookYear
	}
	return year
}

func secureURL(u string) string {
	if strings.HasPrefix(u, "http://") {
		return "https://" + strings.TrimPrefix(u, "http://")
	}
	return u
}

// NormalizeVolume fills a Google Books volume with defaults.
func NormalizeVolume(raw map[string]any) Volume {
	info := Obj(raw, "volumeInfo")

	ids := make([]IndustryIdentifier, 0)
	for _, ident := range Objs(info, "industryIdentifiers") {
		ids = append(ids, IndustryIdentifier{Type: Str(ident, "type"), Identifier: Str(ident, "identifier")})
	}

	thumb := secureURL(Str(info, "imageLinks", "thumbnail"))
	small := secureURL(Str(info, "imageLinks", "smallThumbnail"))

	authors := stringList(lookup(info, "authors"))
	if len(authors) == 0 {
		authors = []string{UnknownAuthor}
	}

	return Volume{
		ID: Str(raw, "id"),
		VolumeInfo: VolumeInfo{
			Title:         orDefault(Str(info, "title"), "Untitled"),
			Authors:       authors,
			Description:   Str(info, "description"),
			Publisher:     Str(info, "publisher"),
			PublishedDate: Str(info, "publishedDate"),
			PageCount:     asInt(lookup(info, "pageCount")),
			Categories:    stringList(lookup(info, "categories")),
			AverageRating: asFloat(lookup(info, "averageRating")),
			RatingsCount:  asInt(lookup(info, "ratingsCount")),
			Language:      Str(info, "language"),
			ImageLinks: ImageLinks{
				Thumbnail:      orDefault(firstNonEmpty(thumb, small), PlaceholderImage),
				SmallThumbnail: orDefault(firstNonEmpty(small, thumb), PlaceholderImage),
			},
			IndustryIdentifiers: ids,
		},
	}
}

// ISBN returns the volume's ISBN-13, else its ISBN-10, else "".
func (v Volume) ISBN() string {
	var isbn10 string
	for _, id := range v.VolumeInfo.IndustryIdentifiers {
		switch id.Type {
		case "ISBN_13":
			return id.Identifier
		case "ISBN_10":
			isbn10 = id.Identifier
		}
	}
	return isbn10
}

// Book flattens the volume. The id prefers an ISBN over the volume id.
func (v Volume) Book() Book {
	info := v.VolumeInfo
	return Book{
		ID:            firstNonEmpty(v.ISBN(), v.ID),
		Title:         info.Title,
		Authors:       info.Authors,
		Description:   info.Description,
		Cover:         info.ImageLinks.Thumbnail,
		PublishedDate: info.PublishedDate,
		Year:          YearFromDate(info.PublishedDate),
		PageCount:     info.PageCount,
		Categories:    info.Categories,
		Publisher:     info.Publisher,
		AverageRating: info.AverageRating,
		RatingsCount:  info.RatingsCount,
	}
}

func NormalizeGoogleBook(raw map[string]any) Book {
	return NormalizeVolume(raw).Book()
}

// NYTBookID is the id of a list entry: its ISBN when present, otherwise a
// composite of rank and list id that is stable for the same list.
func NYTBookID(raw map[string]any, listID string) string {
	if isbn := firstNonEmpty(nytISBN(raw, "primary_isbn13"), nytISBN(raw, "primary_isbn10")); isbn != "" {
		return isbn
	}
	for _, ident := range Objs(raw, "isbns") {
		if isbn := firstNonEmpty(nytISBN(ident, "isbn13"), nytISBN(ident, "isbn10")); isbn != "" {
			return isbn
		}
	}
	return "nyt-" + strconv.Itoa(asInt(lookup(raw, "rank"))) + "-" + listID
}

// nytISBN reads an ISBN field, treating the literal "None" as absent.
func nytISBN(raw map[string]any, key string) string {
	if v := Str(raw, key); v != "None" {
		return v
	}
	return ""
}

// NormalizeNYTBook maps a NYTimes list entry. publishedDate is the list's
// publication date, since entries carry none of their own.
func NormalizeNYTBook(raw map[string]any, listID, listName, publishedDate string) Book {
	authors := make([]string, 0, 1)
	if a := Str(raw, "author"); a != "" {
		authors = append(authors, a)
	} else {
		authors = append(authors, UnknownAuthor)
	}

	return Book{
		ID:            NYTBookID(raw, listID),
		Title:         orDefault(Str(raw, "title"), "Untitled"),
		Authors:       authors,
		Description:   Str(raw, "description"),
		Cover:         orDefault(secureURL(Str(raw, "book_image")), PlaceholderImage),
		PublishedDate: publishedDate,
		Year:          YearFromDate(publishedDate),
		PageCount:     0,
		Categories:    []string{},
		Publisher:     Str(raw, "publisher"),
		ListName:      listName,
		Rank:          asInt(lookup(raw, "rank")),
	}
}
