package classify

import (
	"strings"

	"github.com/nkapur/auralist/features"
	"github.com/nkapur/auralist/logging"
)

// MoodClassifier derives a mood label from a song's named trait values plus
// filename heuristics. It never fails: malformed input falls back to
// MoodUnknown with a warning.
type MoodClassifier struct {
	logger logging.Logger
}

// NewMoodClassifier creates a mood classifier. A nil logger disables logging.
func NewMoodClassifier(logger logging.Logger) *MoodClassifier {
	return &MoodClassifier{
		logger: logging.Or(logger).WithFields(logging.Fields{
			"component": "mood_classifier",
		}),
	}
}

// Classify returns the mood label for a song. Filename overrides take
// precedence over the numeric decision table: devotional keywords classify as
// devotional and sadness keywords as melancholic regardless of trait values.
func (c *MoodClassifier) Classify(traits features.Traits, filePath string) Label {
	lower := strings.ToLower(filePath)
	for _, kw := range devotionalKeywords {
		if strings.Contains(lower, kw) {
			return MoodDevotional
		}
	}
	for _, kw := range sadnessKeywords {
		if strings.Contains(lower, kw) {
			return MoodMelancholic
		}
	}

	if !traits.Valid() {
		c.logger.Warn("Song has no usable energy/valence traits, mood unknown", logging.Fields{
			"file_path": filePath,
		})
		return MoodUnknown
	}

	// Trait values are bipolar; clamp to [-1, 1] and rescale to [0, 1]
	// before banding.
	energy := rescale(traits.Energy)
	valence := rescale(traits.Valence)

	switch {
	case energy >= 0.7:
		switch {
		case valence >= 0.7:
			return MoodDance
		case valence >= 0.4:
			return MoodPeppy
		default:
			return MoodIntense
		}
	case energy >= 0.4:
		switch {
		case valence >= 0.7:
			return MoodRomantic
		case valence >= 0.4:
			return MoodMelodic
		default:
			return MoodMellow
		}
	default:
		switch {
		case valence >= 0.7:
			return MoodCalm
		case valence >= 0.4:
			return MoodMellow
		default:
			return MoodMelancholic
		}
	}
}

// rescale clamps a bipolar value to [-1, 1] and maps it onto [0, 1].
func rescale(v float64) float64 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return (v + 1) / 2
}
