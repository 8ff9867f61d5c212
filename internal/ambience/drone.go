package ambience

import (
	"math"

	"github.com/faiface/beep"

	"github.com/iburimskiy/mind-map/internal/graph"
)

// voices is the number of detuned partials summed by the drone.
const voices = 4

// Drone is an endless, quiet chord whose partials and swell rates are drawn
// from the graph seed, so the same seed always sounds the same.
type Drone struct {
	sampleRate beep.SampleRate
	volume     float64

	freq  [voices]float64
	swell [voices]float64
	pan   [voices]float64
	phase [voices]float64
	t     float64
}

// NewDrone builds a drone for seed. A non-finite seed falls back to zero.
func NewDrone(seed float64, sr beep.SampleRate, volume float64) *Drone {
	if math.IsNaN(seed) || math.IsInf(seed, 0) {
		seed = 0
	}
	seq := graph.NewSequence(seed)

	d := &Drone{sampleRate: sr, volume: volume}
	base := 55 * (1 + seq.Next()) // A1..A2
	for i := range d.freq {
		d.freq[i] = base * float64(i+1) * (1 + (seq.Next()-0.5)*0.01)
		d.swell[i] = 0.05 + seq.Next()*0.2
		d.pan[i] = seq.Next()
	}
	return d
}

// Stream fills samples; it never runs out.
func (d *Drone) Stream(samples [][2]float64) (int, bool) {
	dt := 1 / float64(d.sampleRate)
	for i := range samples {
		var l, r float64
		for v := 0; v < voices; v++ {
			amp := 0.5 + 0.5*math.Sin(2*math.Pi*d.swell[v]*d.t)
			s := math.Sin(d.phase[v]) * amp / float64(v+1)
			l += s * (1 - d.pan[v])
			r += s * d.pan[v]

			d.phase[v] += 2 * math.Pi * d.freq[v] * dt
			if d.phase[v] > 2*math.Pi {
				d.phase[v] -= 2 * math.Pi
			}
		}
		samples[i] = [2]float64{l * d.volume, r * d.volume}
		d.t += dt
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }
