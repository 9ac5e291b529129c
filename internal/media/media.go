// Package media holds the canonical, provider-agnostic records returned by the
// API and the normalizers that build them from raw provider JSON.
//
// Normalizers never fail: a missing or malformed field degrades to its
// default instead of rejecting the record.
package media

const (
	PlaceholderImage = "/placeholder.svg"
	UnknownArtist    = "Unknown Artist"
	UnknownAuthor    = "Unknown Author"
	Unknown          = "Unknown"
	DefaultBookYear  = 2024
)

type Link struct {
	Quality string `json:"quality"`
	Link    string `json:"link"`
}

type ArtistRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Artists is never nil-valued on the wire: Primary is always an array.
type Artists struct {
	Primary []ArtistRef `json:"primary"`
}

type AlbumRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Track struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Album           AlbumRef `json:"album"`
	PrimaryArtists  string   `json:"primaryArtists"`
	Artists         Artists  `json:"artists"`
	DurationSeconds int      `json:"duration"`
	Year            string   `json:"year"`
	Language        string   `json:"language"`
	PlayCount       int      `json:"playCount"`
	DownloadURLs    []Link   `json:"downloadUrls"`
	ImageLinks      []Link   `json:"imageLinks"`
}

type Album struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Year           string  `json:"year"`
	SongCount      int     `json:"songCount"`
	PrimaryArtists string  `json:"primaryArtists"`
	Artists        Artists `json:"artists"`
	ImageLinks     []Link  `json:"imageLinks"`
	Songs          []Track `json:"songs"`
}

type ArtistStub struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Role  string `json:"role,omitempty"`
}

type Artist struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	ImageLinks     []Link       `json:"imageLinks"`
	FollowerCount  int          `json:"followerCount"`
	IsVerified     bool         `json:"isVerified"`
	DOB            string       `json:"dob,omitempty"`
	DOBValid       bool         `json:"dobValid"`
	Languages      []string     `json:"languages"`
	Bio            string       `json:"bio,omitempty"`
	SimilarArtists []ArtistStub `json:"similarArtists"`
	TopSongs       []Track      `json:"topSongs"`
	TopAlbums      []Album      `json:"topAlbums"`
}

type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description"`
	Cover         string   `json:"cover"`
	PublishedDate string   `json:"publishedDate"`
	Year          int      `json:"year"`
	PageCount     int      `json:"pageCount"`
	Categories    []string `json:"categories"`
	Publisher     string   `json:"publisher,omitempty"`
	AverageRating float64  `json:"averageRating"`
	RatingsCount  int      `json:"ratingsCount"`
	ListName      string   `json:"listName,omitempty"`
	Rank          int      `json:"rank,omitempty"`
}

// Volume is the Google Books volume shape served by the book detail route.
type Volume struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
	Synthetic  bool       `json:"synthetic,omitempty"`
}

type VolumeInfo struct {
	Title               string               `json:"title"`
	Authors             []string             `json:"authors"`
	Description         string               `json:"description"`
	Publisher           string               `json:"publisher,omitempty"`
	PublishedDate       string               `json:"publishedDate"`
	PageCount           int                  `json:"pageCount"`
	Categories          []string             `json:"categories"`
	AverageRating       float64              `json:"averageRating"`
	RatingsCount        int                  `json:"ratingsCount"`
	Language            string               `json:"language,omitempty"`
	ImageLinks          ImageLinks           `json:"imageLinks"`
	IndustryIdentifiers []IndustryIdentifier `json:"industryIdentifiers,omitempty"`
}

type ImageLinks struct {
	Thumbnail      string `json:"thumbnail"`
	SmallThumbnail string `json:"smallThumbnail"`
}

type IndustryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"posterPath"`
	BackdropPath string  `json:"backdropPath"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"releaseDate"`
	GenreIDs     []int   `json:"genreIds"`
	MediaType    string  `json:"mediaType"`
	VoteAverage  float64 `json:"voteAverage"`
}
