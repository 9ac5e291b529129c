package music

// DOB is the response of the artist date-of-birth route. IsValid is computed
// by parsing DOB, never copied from the provider.
type DOB struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	DOB     string `json:"dob"`
	IsValid bool   `json:"isValid"`
}

// Preview is a playable clip found through MusicAPI.
type Preview struct {
	PreviewURL string `json:"previewUrl"`
	Source     string `json:"source"`
	Name       string `json:"name"`
	URL        string `json:"url,omitempty"`
}
