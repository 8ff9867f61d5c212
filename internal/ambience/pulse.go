// Package ambience produces the slow "breathing" that modulates the edge
// glow: a seeded drone is streamed through a tap and its recent RMS level
// is smoothed into a value the renderer reads every frame.
package ambience

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"

	"github.com/iburimskiy/mind-map/internal/config"
)

// Pulse owns the drone chain and the smoothed level derived from it.
type Pulse struct {
	logger *zap.Logger

	format beep.Format
	tap    *Tap
	ctrl   *beep.Ctrl

	// audible is true once the chain is playing through the speaker. When it
	// is false Advance pulls samples itself.
	audible bool
	scratch [][2]float64
	level   float64
}

// NewPulse builds the drone chain for seed. Nothing is played until Start.
func NewPulse(seed float64, cfg config.Ambience, logger *zap.Logger) *Pulse {
	if logger == nil {
		logger = zap.NewNop()
	}
	sr := beep.SampleRate(cfg.SampleRate)
	if sr <= 0 {
		sr = 44100
	}

	t := NewTap(NewDrone(seed, sr, cfg.Volume), config.VisualRingSize)
	return &Pulse{
		logger: logger,
		format: beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2},
		tap:    t,
		ctrl:   &beep.Ctrl{Streamer: t},
	}
}

// Start plays the chain through the speaker when audible is set. A speaker
// that cannot be opened is logged and the pulse stays silent.
func (p *Pulse) Start(audible bool) {
	if !audible {
		return
	}
	if err := p.play(); err != nil {
		p.logger.Warn("ambience stays silent", zap.Error(err))
		return
	}
	p.audible = true
	p.logger.Info("ambience playing", zap.Int("sample_rate", int(p.format.SampleRate)))
}

func (p *Pulse) play() error {
	bufferSize := p.format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(p.format.SampleRate, bufferSize); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.ctrl)
	return nil
}

// Stop silences the speaker if the pulse was playing.
func (p *Pulse) Stop() {
	if !p.audible {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
	p.audible = false
}

// Audible reports whether the drone is being played.
func (p *Pulse) Audible() bool { return p.audible }

// Advance moves the pulse forward by dt and returns the new level in [0, 1].
func (p *Pulse) Advance(dt time.Duration) float64 {
	if !p.audible {
		n := p.format.SampleRate.N(dt)
		if cap(p.scratch) < n {
			p.scratch = make([][2]float64, n)
		}
		p.tap.Stream(p.scratch[:n])
	}

	samples := p.tap.Snapshot(config.PulseWindow)
	if len(samples) == 0 {
		return p.level
	}

	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	rms := math.Sqrt(sumSquares / float64(len(samples)))
	mag := math.Pow(rms, 0.3)

	p.level = math.Min(config.SmoothingFactor*p.level+(1-config.SmoothingFactor)*mag, 1)
	return p.level
}

// Level is the last value returned by Advance.
func (p *Pulse) Level() float64 { return p.level }
