package recommend

import "github.com/nkapur/auralist/features"

// Config tunes the recommendation engine.
type Config struct {
	// MoodMatchThreshold decides whether a mood compatibility score passes a
	// mood filter. With the defaults, exact and same-group matches pass.
	MoodMatchThreshold float64 `json:"mood_match_threshold"`

	// PartialMatchScore is the compatibility score awarded when two different
	// moods share a mood group.
	PartialMatchScore float64 `json:"partial_match_score"`

	// TraitColumns names the feature columns the mood classifier reads.
	TraitColumns features.TraitColumns `json:"trait_columns"`
}

// DefaultConfig returns sensible defaults for the engine.
func DefaultConfig() *Config {
	return &Config{
		MoodMatchThreshold: 0.5,
		PartialMatchScore:  0.5,
		TraitColumns:       features.DefaultTraitColumns(),
	}
}
