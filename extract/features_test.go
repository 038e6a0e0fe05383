package extract

import (
	"math"
	"testing"
)

func sineAudio(freq float64, sampleRate int, seconds float64, amplitude float64) *Audio {
	n := int(float64(sampleRate) * seconds)
	pcm := make([]float64, n)
	for i := range pcm {
		pcm[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return &Audio{PCM: pcm, SampleRate: sampleRate}
}

func TestFeatureNamesMatchValues(t *testing.T) {
	names := FeatureNames()
	values := RowFeatures{}.Values()
	if len(names) != len(values) {
		t.Fatalf("len(FeatureNames()) = %d, len(Values()) = %d", len(names), len(values))
	}
}

func TestFeaturesSineTone(t *testing.T) {
	audio := sineAudio(440, 22050, 2, 0.5)
	row := Features(audio)

	// A 440 Hz tone crosses zero 880 times per second.
	wantZCR := 2 * 440.0 / 22050.0
	if math.Abs(row.ZeroCrossingRate-wantZCR) > 0.01 {
		t.Errorf("ZeroCrossingRate = %v, want ~%v", row.ZeroCrossingRate, wantZCR)
	}

	if row.SpectralCentroid < 300 || row.SpectralCentroid > 700 {
		t.Errorf("SpectralCentroid = %v, want near 440", row.SpectralCentroid)
	}
	if row.SpectralRolloff < 300 || row.SpectralRolloff > 900 {
		t.Errorf("SpectralRolloff = %v, want near 440", row.SpectralRolloff)
	}

	// RMS of a 0.5 amplitude sine is 0.5/sqrt(2).
	wantRMS := 0.5 / math.Sqrt2
	if math.Abs(row.RMSMean-wantRMS) > 0.05 {
		t.Errorf("RMSMean = %v, want ~%v", row.RMSMean, wantRMS)
	}
	if row.RMSStd > 0.05 {
		t.Errorf("RMSStd = %v for a steady tone, want near 0", row.RMSStd)
	}

	// Loud steady tone saturates the energy trait.
	if row.Energy != 1 {
		t.Errorf("Energy = %v, want 1", row.Energy)
	}
	if row.Valence < -1 || row.Valence > 1 {
		t.Errorf("Valence = %v, outside [-1, 1]", row.Valence)
	}
}

func TestFeaturesSilence(t *testing.T) {
	audio := &Audio{PCM: make([]float64, 22050), SampleRate: 22050}
	row := Features(audio)

	if row.RMSMean != 0 || row.ZeroCrossingRate != 0 {
		t.Errorf("silence: RMSMean = %v, ZCR = %v, want 0", row.RMSMean, row.ZeroCrossingRate)
	}
	if row.SpectralCentroid != 0 {
		t.Errorf("silence: SpectralCentroid = %v, want 0", row.SpectralCentroid)
	}
	if row.Energy != -1 {
		t.Errorf("silence: Energy = %v, want -1", row.Energy)
	}
}

func TestFeaturesEmptyInput(t *testing.T) {
	if row := Features(nil); row != (RowFeatures{}) {
		t.Errorf("Features(nil) = %+v, want zero row", row)
	}
	if row := Features(&Audio{SampleRate: 22050}); row != (RowFeatures{}) {
		t.Errorf("Features(empty pcm) = %+v, want zero row", row)
	}
}

func TestEstimateTempo(t *testing.T) {
	// Synthesize a 120 BPM energy envelope directly: one beat every half
	// second at the frame rate implied by the hop size.
	framesPerSecond := 22050.0 / float64(hopSize)
	period := framesPerSecond / 2 // 120 BPM

	envelope := make([]float64, 400)
	for i := range envelope {
		envelope[i] = 1 + math.Sin(2*math.Pi*float64(i)/period)
	}

	tempo := estimateTempo(envelope, 22050)
	if tempo < 110 || tempo > 130 {
		t.Errorf("estimateTempo() = %v, want ~120", tempo)
	}
}

func TestEstimateTempoShortInput(t *testing.T) {
	if tempo := estimateTempo([]float64{1, 2, 3}, 22050); tempo != 0 {
		t.Errorf("estimateTempo(short) = %v, want 0", tempo)
	}
}

func TestZeroCrossingRate(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    float64
	}{
		{"alternating", []float64{1, -1, 1, -1, 1}, 1.0},
		{"constant", []float64{1, 1, 1, 1}, 0.0},
		{"single sample", []float64{1}, 0.0},
		{"half crossings", []float64{1, 1, -1, -1, 1}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := zeroCrossingRate(tt.samples); got != tt.want {
				t.Errorf("zeroCrossingRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBipolar(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, -1},
		{0.5, 0},
		{1, 1},
		{2, 1},
		{-1, -1},
	}
	for _, tt := range tests {
		if got := bipolar(tt.in); got != tt.want {
			t.Errorf("bipolar(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHannWindow(t *testing.T) {
	window := hannWindow(64)
	if window[0] > 1e-12 || window[63] > 1e-12 {
		t.Errorf("window endpoints = (%v, %v), want 0", window[0], window[63])
	}
	max := 0.0
	for _, v := range window {
		if v > max {
			max = v
		}
	}
	if math.Abs(max-1) > 0.01 {
		t.Errorf("window peak = %v, want ~1", max)
	}
}
