package media

func NormalizeMovie(raw map[string]any, mediaType string) Movie {
	genres := make([]int, 0)
	if items, ok := lookup(raw, "genre_ids").([]any); ok {
		for _, g := range items {
			genres = append(genres, asInt(g))
		}
	}

	return Movie{
		ID:           asInt(lookup(raw, "id")),
		Title:        firstNonEmpty(Str(raw, "title"), Str(raw, "name"), Str(raw, "original_title")),
		PosterPath:   orDefault(Str(raw, "poster_path"), PlaceholderImage),
		BackdropPath: orDefault(Str(raw, "backdrop_path"), PlaceholderImage),
		Overview:     Str(raw, "overview"),
		ReleaseDate:  firstNonEmpty(Str(raw, "release_date"), Str(raw, "first_air_date")),
		GenreIDs:     genres,
		MediaType:    firstNonEmpty(Str(raw, "media_type"), mediaType),
		VoteAverage:  asFloat(lookup(raw, "vote_average")),
	}
}

func NormalizeMovies(raws []map[string]any, mediaType string) []Movie {
	out := make([]Movie, 0, len(raws))
	for _, raw := range raws {
		out = append(out, NormalizeMovie(raw, mediaType))
	}
	return out
}
