package audio

import (
	"testing"
	"time"
)

func TestOscillatorSamplesInRange(t *testing.T) {
	waves := []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise}
	for _, wave := range waves {
		osc := NewOscillator(440, 100*time.Millisecond, wave, sampleRate)

		samples := make([][2]float64, 256)
		n, ok := osc.Stream(samples)
		if !ok {
			t.Errorf("wave %d: expected stream to continue", wave)
		}
		if n != 256 {
			t.Errorf("wave %d: expected 256 samples, got %d", wave, n)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
				t.Fatalf("wave %d: sample %d out of range: %f", wave, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Fatalf("wave %d: expected identical stereo channels", wave)
			}
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error: %v", wave, osc.Err())
		}
	}
}

func TestOscillatorEndsAtDuration(t *testing.T) {
	duration := 10 * time.Millisecond
	osc := NewOscillator(880, duration, WaveSquare, sampleRate)

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := osc.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if want := sampleRate.N(duration); total != want {
		t.Errorf("expected %d samples total, got %d", want, total)
	}
}

func TestSweepStaysInRange(t *testing.T) {
	osc := NewSweep(220, 1760, 50*time.Millisecond, WaveSine, sampleRate)

	samples := make([][2]float64, 1024)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Fatalf("sample %d out of range: %f", i, samples[i][0])
		}
	}
}

func TestEnvelopeAttackStartsQuiet(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(
		NewOscillator(440, d, WaveSquare, sampleRate),
		d, 20*time.Millisecond, 20*time.Millisecond, sampleRate,
	)

	samples := make([][2]float64, 64)
	n, ok := env.Stream(samples)
	if !ok || n != 64 {
		t.Fatalf("expected 64 samples, got %d (ok=%v)", n, ok)
	}

	// A square wave has unit amplitude; inside the attack window the
	// envelope must scale the first samples well below it
	attackSamples := sampleRate.N(20 * time.Millisecond)
	for i := 0; i < n; i++ {
		limit := float64(i) / float64(attackSamples)
		if v := samples[i][0]; v > limit+1e-9 || v < -limit-1e-9 {
			t.Fatalf("sample %d exceeds attack envelope: %f (limit %f)", i, v, limit)
		}
	}
}

func TestEnvelopeShortensDegenerateWindows(t *testing.T) {
	// Attack plus release longer than the whole effect must not panic or
	// produce out-of-range volume
	d := 10 * time.Millisecond
	env := NewEnvelope(
		NewOscillator(440, d, WaveSine, sampleRate),
		d, 20*time.Millisecond, 20*time.Millisecond, sampleRate,
	)

	buf := make([][2]float64, 2048)
	for {
		n, ok := env.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1.0 || buf[i][0] > 1.0 {
				t.Fatalf("sample out of range: %f", buf[i][0])
			}
		}
		if !ok {
			break
		}
	}
}
