package music

import "reliva/internal/media"

// knownAliases maps informal artist ids and slugs to the name the primary
// provider's search recognizes. It is the last live fallback of artist lookup.
var knownAliases = map[string]string{
	"456269":     "A.R. Rahman",
	"ar-rahman":  "A.R. Rahman",
	"a-r-rahman": "A.R. Rahman",
	"arrahman":   "A.R. Rahman",
}

// similarSeeds is served when no live source returns similar artists. Keys are
// canonical artist ids; aliases resolve through canonicalID.
var similarSeeds = map[string][]media.ArtistStub{
	"456269": {
		{ID: "455170", Name: "Ilaiyaraaja", Image: media.PlaceholderImage, Role: "Music Director"},
		{ID: "455663", Name: "Anirudh Ravichander", Image: media.PlaceholderImage, Role: "Music Director"},
		{ID: "455179", Name: "Harris Jayaraj", Image: media.PlaceholderImage, Role: "Music Director"},
		{ID: "455667", Name: "Yuvan Shankar Raja", Image: media.PlaceholderImage, Role: "Music Director"},
		{ID: "456164", Name: "Pritam", Image: media.PlaceholderImage, Role: "Music Director"},
		{ID: "459320", Name: "Arijit Singh", Image: media.PlaceholderImage, Role: "Singer"},
	},
}

var aliasIDs = map[string]string{
	"ar-rahman":  "456269",
	"a-r-rahman": "456269",
	"arrahman":   "456269",
}

func canonicalID(id string) string {
	if canon, ok := aliasIDs[id]; ok {
		return canon
	}
	return id
}

// seededSimilar returns a copy so callers cannot mutate the seed table.
func seededSimilar(id string) []media.ArtistStub {
	seeds := similarSeeds[canonicalID(id)]
	if len(seeds) == 0 {
		return nil
	}
	out := make([]media.ArtistStub, len(seeds))
	copy(out, seeds)
	return out
}
