package extract

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// Analysis framing. 2048 samples at 22.05 kHz is ~93 ms per frame with 75%
// overlap.
const (
	frameSize = 2048
	hopSize   = 512
)

// RowFeatures is one extracted feature row, matching the loader's schema.
// Energy and valence are bipolar [-1, 1] so the mood classifier's rescaling
// lands them on its 0-1 bands.
type RowFeatures struct {
	Energy           float64
	Valence          float64
	Tempo            float64
	ZeroCrossingRate float64
	SpectralCentroid float64
	SpectralRolloff  float64
	SpectralFlux     float64
	RMSMean          float64
	RMSStd           float64
}

// FeatureNames lists the CSV feature columns in output order.
func FeatureNames() []string {
	return []string{
		"energy", "valence", "tempo",
		"zero_crossing_rate", "spectral_centroid", "spectral_rolloff",
		"spectral_flux", "rms_mean", "rms_std",
	}
}

// Values returns the row values in FeatureNames order.
func (r RowFeatures) Values() []float64 {
	return []float64{
		r.Energy, r.Valence, r.Tempo,
		r.ZeroCrossingRate, r.SpectralCentroid, r.SpectralRolloff,
		r.SpectralFlux, r.RMSMean, r.RMSStd,
	}
}

// Features analyzes decoded audio frame by frame and aggregates per-file
// feature values.
func Features(audio *Audio) RowFeatures {
	if audio == nil || len(audio.PCM) == 0 {
		return RowFeatures{}
	}

	pcm := audio.PCM
	window := hannWindow(frameSize)

	var (
		rmsValues    []float64
		centroids    []float64
		rolloffs     []float64
		fluxes       []float64
		prevSpectrum []float64
	)

	frame := make([]float64, frameSize)
	for start := 0; start+frameSize <= len(pcm); start += hopSize {
		for i := 0; i < frameSize; i++ {
			frame[i] = pcm[start+i] * window[i]
		}

		rmsValues = append(rmsValues, rms(pcm[start:start+frameSize]))

		spectrum := magnitudeSpectrum(frame)
		centroids = append(centroids, spectralCentroid(spectrum, audio.SampleRate))
		rolloffs = append(rolloffs, spectralRolloff(spectrum, audio.SampleRate, 0.85))
		if prevSpectrum != nil {
			fluxes = append(fluxes, spectralFlux(spectrum, prevSpectrum))
		}
		prevSpectrum = append(prevSpectrum[:0], spectrum...)
	}

	if len(rmsValues) == 0 {
		// File shorter than one frame: fall back to whole-signal RMS.
		rmsValues = []float64{rms(pcm)}
		centroids = []float64{0}
		rolloffs = []float64{0}
	}

	row := RowFeatures{
		ZeroCrossingRate: zeroCrossingRate(pcm),
		SpectralCentroid: stat.Mean(centroids, nil),
		SpectralRolloff:  stat.Mean(rolloffs, nil),
		RMSMean:          stat.Mean(rmsValues, nil),
	}
	if len(rmsValues) > 1 {
		row.RMSStd = stat.StdDev(rmsValues, nil)
	}
	if len(fluxes) > 0 {
		row.SpectralFlux = stat.Mean(fluxes, nil)
	}
	row.Tempo = estimateTempo(rmsValues, audio.SampleRate)

	// Derived bipolar traits: energy from loudness, valence from brightness.
	// Crude proxies, but they give freshly extracted catalogs usable mood
	// bands without a trained model.
	row.Energy = bipolar(row.RMSMean * 8)
	nyquist := float64(audio.SampleRate) / 2
	row.Valence = bipolar(row.SpectralCentroid / (nyquist / 2))

	return row
}

func hannWindow(size int) []float64 {
	window := make([]float64, size)
	for i := range window {
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size-1)))
	}
	return window
}

// magnitudeSpectrum computes the single-sided magnitude spectrum of a frame.
func magnitudeSpectrum(frame []float64) []float64 {
	spectrum := fft.FFTReal(frame)
	bins := len(frame)/2 + 1
	magnitude := make([]float64, bins)
	for i := 0; i < bins; i++ {
		magnitude[i] = cmplx.Abs(spectrum[i])
	}
	return magnitude
}

func rms(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func zeroCrossingRate(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	crossings := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] >= 0) != (samples[i] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(samples)-1)
}

// spectralCentroid is the magnitude-weighted mean frequency of a spectrum.
func spectralCentroid(spectrum []float64, sampleRate int) float64 {
	var weighted, total float64
	for i, mag := range spectrum {
		freq := binFrequency(i, len(spectrum), sampleRate)
		weighted += freq * mag
		total += mag
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// spectralRolloff is the frequency below which the given fraction of spectral
// energy lies.
func spectralRolloff(spectrum []float64, sampleRate int, fraction float64) float64 {
	var total float64
	for _, mag := range spectrum {
		total += mag * mag
	}
	if total == 0 {
		return 0
	}

	target := total * fraction
	var cumulative float64
	for i, mag := range spectrum {
		cumulative += mag * mag
		if cumulative >= target {
			return binFrequency(i, len(spectrum), sampleRate)
		}
	}
	return binFrequency(len(spectrum)-1, len(spectrum), sampleRate)
}

// spectralFlux is the positive spectral change between consecutive frames.
func spectralFlux(current, previous []float64) float64 {
	n := min(len(current), len(previous))
	var flux float64
	for i := 0; i < n; i++ {
		diff := current[i] - previous[i]
		if diff > 0 {
			flux += diff * diff
		}
	}
	return math.Sqrt(flux)
}

func binFrequency(bin, bins, sampleRate int) float64 {
	if bins < 2 {
		return 0
	}
	return float64(bin) * float64(sampleRate) / float64((bins-1)*2)
}

// estimateTempo finds the dominant periodicity of the frame energy envelope
// by autocorrelation and converts it to BPM. Good enough to separate ballads
// from dance tracks; not a beat tracker.
func estimateTempo(rmsValues []float64, sampleRate int) float64 {
	if len(rmsValues) < 8 {
		return 0
	}

	mean := stat.Mean(rmsValues, nil)
	envelope := make([]float64, len(rmsValues))
	for i, v := range rmsValues {
		envelope[i] = v - mean
	}

	framesPerSecond := float64(sampleRate) / float64(hopSize)
	minLag := int(framesPerSecond * 60 / 200) // 200 BPM
	maxLag := int(framesPerSecond * 60 / 50)  // 50 BPM
	if maxLag >= len(envelope) {
		maxLag = len(envelope) - 1
	}
	if minLag < 1 {
		minLag = 1
	}
	if minLag >= maxLag {
		return 0
	}

	bestLag, bestCorr := 0, 0.0
	for lag := minLag; lag <= maxLag; lag++ {
		var corr float64
		for i := lag; i < len(envelope); i++ {
			corr += envelope[i] * envelope[i-lag]
		}
		if corr > bestCorr {
			bestCorr = corr
			bestLag = lag
		}
	}
	if bestLag == 0 {
		return 0
	}

	return 60 * framesPerSecond / float64(bestLag)
}

// bipolar clamps a 0..1-ish magnitude onto [-1, 1].
func bipolar(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v*2 - 1
}
