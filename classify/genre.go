package classify

import (
	"path/filepath"
	"strings"
)

// Keyword sets shared between the genre classifier and the mood filename
// overrides.
var (
	devotionalKeywords = []string{"bhajan", "aarti", "mantra", "shloka", "bhakti", "devotional", "kirtan"}
	sadnessKeywords    = []string{"sad", "dard", "judaai", "tanhai", "breakup", "bewafa"}
)

// genreKeywords is an ordered list of keyword groups; the first group with a
// keyword present in the lower-cased filename wins.
var genreKeywords = []struct {
	label    Label
	keywords []string
}{
	{GenreParty, []string{"party", "item", "remix", "dj"}},
	{GenreDevotional, devotionalKeywords},
	{GenreClassical, []string{"classical", "raga", "raag", "carnatic", "hindustani", "symphony", "concerto", "sonata"}},
	{GenreFolk, []string{"folk", "garba", "bhangra", "lavani", "dandiya", "lokgeet"}},
	{GenreGhazal, []string{"ghazal", "sufi", "qawwali"}},
	{GenreMelody, []string{"love", "romantic", "romance", "pyar", "pyaar", "ishq", "dil"}},
	{GenreSad, sadnessKeywords},
	{GenreDance, []string{"rock", "metal", "edm", "electronic", "beat", "bass"}},
}

// Genre derives a genre label purely from filename keywords. Songs matching
// no group default to film music.
func Genre(filePath string) Label {
	name := strings.ToLower(filepath.Base(filePath))
	for _, group := range genreKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(name, kw) {
				return group.label
			}
		}
	}
	return GenreFilm
}
