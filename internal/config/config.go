package config

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/iburimskiy/mind-map/internal/graph"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Logical ticks per second; elapsed time advances by 1/TPS per update.
	TPS = 60

	// Ambience tap
	VisualRingSize  = 8192
	SmoothingFactor = 0.6
	PulseWindow     = 2048

	// Sprite used for every node; tinted and scaled per ring.
	SpriteSize = 32
)

//go:embed default.toml
var defaultDocument []byte

// Config is the fixed parameter set of the visualization.
type Config struct {
	Debug bool   `toml:"debug"`
	Title string `toml:"title"`

	// Seed for node placement and connection selection.
	Seed float64 `toml:"seed"`

	Graph    Graph    `toml:"graph"`
	Visual   Visual   `toml:"visual"`
	Motion   Motion   `toml:"motion"`
	Ambience Ambience `toml:"ambience"`
}

type Graph struct {
	CentralNodes          int     `toml:"central_nodes"`
	MiddleNodes           int     `toml:"middle_nodes"`
	OuterNodes            int     `toml:"outer_nodes"`
	ConnectionDistance    float64 `toml:"connection_distance"`
	ConnectionProbability float64 `toml:"connection_probability"`
}

// Generator returns the subset of g the graph generator consumes.
func (g Graph) Generator() graph.Config {
	return graph.Config{
		CentralNodes:          g.CentralNodes,
		MiddleNodes:           g.MiddleNodes,
		OuterNodes:            g.OuterNodes,
		ConnectionDistance:    g.ConnectionDistance,
		ConnectionProbability: g.ConnectionProbability,
	}
}

type Visual struct {
	// NodeSize is the world-space diameter of a node sprite.
	NodeSize    float64 `toml:"node_size"`
	NodeOpacity float64 `toml:"node_opacity"`
	// LineOpacity is the shared opacity applied on top of each edge's own.
	LineOpacity float64 `toml:"line_opacity"`
	LineWidth   float64 `toml:"line_width"`
	// Hue of the central ring in degrees; the other rings are offset from it.
	BaseHue   float64 `toml:"base_hue"`
	ShowStats bool    `toml:"show_stats"`
}

type Motion struct {
	// RotationSpeed is radians per second around the Y axis.
	RotationSpeed  float64 `toml:"rotation_speed"`
	CameraDistance float64 `toml:"camera_distance"`
	CameraHeight   float64 `toml:"camera_height"`
	// Camera sway radius and angular speed.
	OrbitRadius float64 `toml:"orbit_radius"`
	OrbitSpeed  float64 `toml:"orbit_speed"`
	// ScrollFactor converts scroll offset into camera pull-back and rise.
	ScrollFactor float64 `toml:"scroll_factor"`
	// ScrollStep is the scroll offset added per wheel notch.
	ScrollStep float64 `toml:"scroll_step"`
	FOV        float64 `toml:"fov"`
}

type Ambience struct {
	// Audible plays the drone through the speaker. When false the pulse is
	// still computed, just not heard.
	Audible    bool    `toml:"audible"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`
	// PulseDepth scales how much the level brightens the edges.
	PulseDepth float64 `toml:"pulse_depth"`
}

// Default returns the built-in configuration.
func Default() (Config, error) {
	cfg, err := overlay(Config{}, defaultDocument)
	if err != nil {
		return Config{}, fmt.Errorf("default: %w", err)
	}
	return cfg, nil
}

// overlay decodes doc over cfg, so doc only needs to name the values it
// changes.
func overlay(cfg Config, doc []byte) (Config, error) {
	if err := toml.Unmarshal(doc, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
