package classify

import "testing"

func TestMoodCompatibility(t *testing.T) {
	tests := []struct {
		name string
		a, b Label
		want float64
	}{
		{"exact match", MoodDance, MoodDance, 1.0},
		{"same group", MoodDance, MoodPeppy, 0.5},
		{"bridging label sad side", MoodMellow, MoodMelancholic, 0.5},
		{"bridging label calm side", MoodMellow, MoodCalm, 0.5},
		{"devotional group", MoodDevotional, MoodSpiritual, 0.5},
		{"unrelated", MoodDance, MoodMelancholic, 0.0},
		{"unknown label", Label("zydeco"), MoodDance, 0.0},
		{"symmetric", MoodPeppy, MoodDance, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoodCompatibility(tt.a, tt.b, 0.5); got != tt.want {
				t.Errorf("MoodCompatibility(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
