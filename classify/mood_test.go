package classify

import (
	"math"
	"testing"

	"github.com/nkapur/auralist/features"
)

func TestClassifyDecisionTable(t *testing.T) {
	tests := []struct {
		name    string
		energy  float64
		valence float64
		want    Label
	}{
		{"high energy high valence", 0.9, 0.9, MoodDance},
		{"high energy mid valence", 0.9, 0.0, MoodPeppy},
		{"high energy low valence", 0.9, -0.9, MoodIntense},
		{"mid energy high valence", 0.2, 0.6, MoodRomantic},
		{"mid energy mid valence", 0.0, 0.0, MoodMelodic},
		{"mid energy low valence", 0.0, -0.9, MoodMellow},
		{"low energy high valence", -0.9, 0.9, MoodCalm},
		{"low energy mid valence", -0.9, 0.0, MoodMellow},
		{"low energy low valence", -0.9, -0.9, MoodMelancholic},
		{"clamped above range", 3.0, 3.0, MoodDance},
		{"clamped below range", -3.0, -3.0, MoodMelancholic},
	}

	classifier := NewMoodClassifier(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traits := features.Traits{Energy: tt.energy, Valence: tt.valence, Tempo: 120}
			got := classifier.Classify(traits, "/music/track.mp3")
			if got != tt.want {
				t.Errorf("Classify(%.1f, %.1f) = %q, want %q", tt.energy, tt.valence, got, tt.want)
			}
		})
	}
}

func TestClassifyFilenameOverrides(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Label
	}{
		{"bhajan keyword", "/music/morning_bhajan.mp3", MoodDevotional},
		{"aarti keyword", "/music/Ganesh Aarti.mp3", MoodDevotional},
		{"sad keyword", "/music/sad_song.mp3", MoodMelancholic},
		{"keyword in directory", "/music/bhajans/track01.mp3", MoodDevotional},
		{"no keyword", "/music/track01.mp3", MoodDance},
	}

	classifier := NewMoodClassifier(nil)
	happy := features.Traits{Energy: 0.9, Valence: 0.9, Tempo: 120}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(happy, tt.path)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestClassifyInvalidTraits(t *testing.T) {
	classifier := NewMoodClassifier(nil)
	traits := features.Traits{Energy: math.NaN(), Valence: 0.5, Tempo: 120}
	if got := classifier.Classify(traits, "/music/track.mp3"); got != MoodUnknown {
		t.Errorf("Classify(NaN traits) = %q, want %q", got, MoodUnknown)
	}
}
