// Package classify derives categorical mood and genre labels for songs.
// Labels are never stored as ground truth; they are computed on demand from a
// song's trait values and file path.
package classify

// Label is a categorical mood or genre label.
type Label string

// Mood labels. The numeric classifier only ever produces labels from this
// closed set; filename overrides may add MoodDevotional.
const (
	MoodDance       Label = "dance"
	MoodPeppy       Label = "peppy"
	MoodEnergetic   Label = "energetic"
	MoodIntense     Label = "intense"
	MoodParty       Label = "party"
	MoodRomantic    Label = "romantic"
	MoodMelodic     Label = "melodic"
	MoodMellow      Label = "mellow"
	MoodCalm        Label = "calm"
	MoodMelancholic Label = "melancholic"
	MoodSad         Label = "sad"
	MoodDevotional  Label = "devotional"
	MoodSpiritual   Label = "spiritual"
	MoodUnknown     Label = "unknown"
)

// Genre labels.
const (
	GenreParty      Label = "party"
	GenreDevotional Label = "devotional"
	GenreClassical  Label = "classical"
	GenreFolk       Label = "folk"
	GenreGhazal     Label = "ghazal"
	GenreMelody     Label = "melody"
	GenreSad        Label = "sad"
	GenreDance      Label = "dance"
	GenreFilm       Label = "film"
)

// None is the zero label, used for "no filter".
const None Label = ""
