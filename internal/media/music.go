package media

import (
	"strings"
	"time"
)

// ArtistName resolves a song's display artist. Candidates are tried in order and
// the first non-empty value other than "Unknown Artist" wins.
func ArtistName(raw map[string]any) string {
	candidates := []any{
		lookup(raw, "primaryArtists"),
		lookup(raw, "artist"),
		firstPrimaryName(raw),
		lookup(raw, "artists", "name"),
		lookup(raw, "featuredArtists"),
		lookup(raw, "singer"),
		lookup(raw, "composer"),
	}
	for _, c := range candidates {
		name := artistText(c)
		if name != "" && name != UnknownArtist {
			return name
		}
	}
	return UnknownArtist
}

func firstPrimaryName(raw map[string]any) any {
	primary := Objs(raw, "artists", "primary")
	if len(primary) == 0 {
		return nil
	}
	return primary[0]["name"]
}

// artistText accepts a plain string or an array of artist objects.
func artistText(v any) string {
	if items, ok := v.([]any); ok {
		names := make([]string, 0, len(items))
		for _, item := range items {
			if m, ok := item.(map[string]any); ok {
				if n := Str(m, "name"); n != "" {
					names = append(names, n)
				}
			}
		}
		return strings.Join(names, ", ")
	}
	return asString(v)
}

// ResolveArtists returns the structured artist list. When the source only
// carries a flat name, a single entry with that name is synthesized.
func ResolveArtists(raw map[string]any, name string) Artists {
	primary := Objs(raw, "artists", "primary")
	if len(primary) == 0 {
		if items, ok := lookup(raw, "primaryArtists").([]any); ok {
			for _, item := range items {
				if m, ok := item.(map[string]any); ok {
					primary = append(primary, m)
				}
			}
		}
	}

	refs := make([]ArtistRef, 0, len(primary))
	for _, p := range primary {
		if n := Str(p, "name"); n != "" {
			refs = append(refs, ArtistRef{ID: Str(p, "id"), Name: n})
		}
	}
	if len(refs) == 0 && name != "" && name != UnknownArtist {
		refs = append(refs, ArtistRef{ID: Str(raw, "primaryArtistsId"), Name: name})
	}
	return Artists{Primary: refs}
}

// Links reads an image or download list. Entries may use "link" or "url";
// a bare string is treated as a single link.
func Links(v any) []Link {
	if s := asString(v); s != "" {
		return []Link{{Quality: "original", Link: s}}
	}
	items, _ := v.([]any)
	out := make([]Link, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		link := firstNonEmpty(Str(m, "link"), Str(m, "url"))
		if link == "" {
			continue
		}
		out = append(out, Link{Quality: Str(m, "quality"), Link: link})
	}
	return out
}

func imageLinks(v any) []Link {
	links := Links(v)
	if len(links) == 0 {
		return []Link{{Quality: "500x500", Link: PlaceholderImage}}
	}
	return links
}

// BestImage is the last (largest) image link.
func BestImage(links []Link) string {
	if len(links) == 0 {
		return PlaceholderImage
	}
	return links[len(links)-1].Link
}

func albumRef(raw map[string]any) AlbumRef {
	switch a := lookup(raw, "album").(type) {
	case map[string]any:
		return AlbumRef{ID: Str(a, "id"), Name: Str(a, "name")}
	case string:
		return AlbumRef{ID: Str(raw, "albumId"), Name: asString(a)}
	}
	return AlbumRef{}
}

func NormalizeTrack(raw map[string]any) Track {
	name := ArtistName(raw)
	return Track{
		ID:              Str(raw, "id"),
		Name:            firstNonEmpty(Str(raw, "name"), Str(raw, "title"), Str(raw, "song")),
		Album:           albumRef(raw),
		PrimaryArtists:  name,
		Artists:         ResolveArtists(raw, name),
		DurationSeconds: asInt(lookup(raw, "duration")),
		Year:            orDefault(Str(raw, "year"), Unknown),
		Language:        orDefault(Str(raw, "language"), Unknown),
		PlayCount:       asInt(lookup(raw, "playCount")),
		DownloadURLs:    Links(firstPresent(raw, "downloadUrl", "downloadUrls")),
		ImageLinks:      imageLinks(lookup(raw, "image")),
	}
}

func NormalizeTracks(raws []map[string]any) []Track {
	out := make([]Track, 0, len(raws))
	for _, raw := range raws {
		out = append(out, NormalizeTrack(raw))
	}
	return out
}

func NormalizeAlbum(raw map[string]any) Album {
	name := ArtistName(raw)
	songs := NormalizeTracks(Objs(raw, "songs"))
	count := asInt(lookup(raw, "songCount"))
	if count == 0 {
		count = len(songs)
	}
	return Album{
		ID:             Str(raw, "id"),
		Name:           firstNonEmpty(Str(raw, "name"), Str(raw, "title")),
		Year:           orDefault(Str(raw, "year"), Unknown),
		SongCount:      count,
		PrimaryArtists: name,
		Artists:        ResolveArtists(raw, name),
		ImageLinks:     imageLinks(lookup(raw, "image")),
		Songs:          songs,
	}
}

func NormalizeArtistStub(raw map[string]any) ArtistStub {
	return ArtistStub{
		ID:    Str(raw, "id"),
		Name:  firstNonEmpty(Str(raw, "name"), Str(raw, "title")),
		Image: BestImage(imageLinks(lookup(raw, "image"))),
		Role:  Str(raw, "role"),
	}
}

func NormalizeArtistStubs(raws []map[string]any) []ArtistStub {
	out := make([]ArtistStub, 0, len(raws))
	for _, raw := range raws {
		if stub := NormalizeArtistStub(raw); stub.Name != "" {
			out = append(out, stub)
		}
	}
	return out
}

func NormalizeArtist(raw map[string]any) Artist {
	albums := make([]Album, 0)
	for _, a := range Objs(raw, "topAlbums") {
		albums = append(albums, NormalizeAlbum(a))
	}
	languages := stringList(lookup(raw, "availableLanguages"))
	if len(languages) == 0 {
		if l := Str(raw, "dominantLanguage"); l != "" {
			languages = []string{l}
		}
	}
	dob := Str(raw, "dob")

	return Artist{
		ID:             Str(raw, "id"),
		Name:           firstNonEmpty(Str(raw, "name"), Str(raw, "title")),
		ImageLinks:     imageLinks(lookup(raw, "image")),
		FollowerCount:  firstPositive(asInt(lookup(raw, "followerCount")), asInt(lookup(raw, "fanCount"))),
		IsVerified:     asBool(lookup(raw, "isVerified")),
		DOB:            dob,
		DOBValid:       ValidDate(dob),
		Languages:      languages,
		Bio:            bio(raw),
		SimilarArtists: NormalizeArtistStubs(Objs(raw, "similarArtists")),
		TopSongs:       NormalizeTracks(Objs(raw, "topSongs")),
		TopAlbums:      albums,
	}
}

func bio(raw map[string]any) string {
	if s := Str(raw, "bio"); s != "" {
		return s
	}
	for _, b := range Objs(raw, "bio") {
		if text := Str(b, "text"); text != "" {
			return text
		}
	}
	return ""
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ValidDate reports whether s parses as a calendar date in one of the layouts
// providers use for birth dates.
func ValidDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// NormalizeSpotifyTrack maps a Spotify track object onto Track.
func NormalizeSpotifyTrack(raw map[string]any) Track {
	refs := make([]ArtistRef, 0)
	names := make([]string, 0)
	for _, a := range Objs(raw, "artists") {
		if n := Str(a, "name"); n != "" {
			refs = append(refs, ArtistRef{ID: Str(a, "id"), Name: n})
			names = append(names, n)
		}
	}
	primary := orDefault(strings.Join(names, ", "), UnknownArtist)

	images := make([]Link, 0)
	for _, img := range Objs(raw, "album", "images") {
		if u := Str(img, "url"); u != "" {
			images = append(images, Link{Quality: Str(img, "width") + "x" + Str(img, "height"), Link: u})
		}
	}
	if len(images) == 0 {
		images = []Link{{Quality: "500x500", Link: PlaceholderImage}}
	} else {
		// Spotify lists images largest first; Track keeps the smallest-first convention.
		for i, j := 0, len(images)-1; i < j; i, j = i+1, j-1 {
			images[i], images[j] = images[j], images[i]
		}
	}

	downloads := make([]Link, 0, 1)
	if preview := Str(raw, "preview_url"); preview != "" {
		downloads = append(downloads, Link{Quality: "preview", Link: preview})
	}

	year := Unknown
	if release := Str(raw, "album", "release_date"); release != "" {
		year = strings.SplitN(release, "-", 2)[0]
	}

	return Track{
		ID:              Str(raw, "id"),
		Name:            Str(raw, "name"),
		Album:           AlbumRef{ID: Str(raw, "album", "id"), Name: Str(raw, "album", "name")},
		PrimaryArtists:  primary,
		Artists:         Artists{Primary: refs},
		DurationSeconds: asInt(lookup(raw, "duration_ms")) / 1000,
		Year:            year,
		Language:        Unknown,
		PlayCount:       0,
		DownloadURLs:    downloads,
		ImageLinks:      images,
	}
}

func firstPresent(raw map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
