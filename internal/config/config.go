// Package config loads and saves field tuning from yaml, mirroring the
// engine's documented constants.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/plexus/internal/engine"
)

type Config struct {
	// Nodes trades density against the O(n²) connection cost.
	Nodes int `yaml:"nodes"`

	// ConnectionDistance sets mesh density (screen pixels).
	ConnectionDistance float64 `yaml:"connection_distance"`

	// RotationSpeed is the tumble rate in radians per frame; pitch
	// moves at PitchRatio of it.
	RotationSpeed float64 `yaml:"rotation_speed"`
	PitchRatio    float64 `yaml:"pitch_ratio"`

	// FieldOfView and CameraDistance set perspective strength.
	FieldOfView    float64 `yaml:"field_of_view"`
	CameraDistance float64 `yaml:"camera_distance"`

	// Interaction strength.
	RepulsionRadius float64 `yaml:"repulsion_radius"`
	RepulsionForce  float64 `yaml:"repulsion_force"`

	// SpringCoefficient sets settle speed; PointerLerp sets pointer inertia.
	SpringCoefficient float64 `yaml:"spring_coefficient"`
	PointerLerp       float64 `yaml:"pointer_lerp"`

	ReducedMotion bool `yaml:"reduced_motion"`

	Theme string `yaml:"theme"`
}

func DefaultConfig() *Config {
	o := engine.DefaultOptions()
	return &Config{
		Nodes:              o.NodeCount,
		ConnectionDistance: o.ConnectionDistance,
		RotationSpeed:      o.RotationSpeed,
		PitchRatio:         o.PitchRatio,
		FieldOfView:        o.FieldOfView,
		CameraDistance:     o.CameraDistance,
		RepulsionRadius:    o.RepulsionRadius,
		RepulsionForce:     o.RepulsionForce,
		SpringCoefficient:  o.SpringCoefficient,
		PointerLerp:        o.PointerLerp,
		Theme:              "midnight",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the engine cannot clamp into sense.
func (c *Config) Validate() error {
	if c.Nodes <= 0 {
		return fmt.Errorf("nodes must be positive, got %d", c.Nodes)
	}
	if c.Nodes > 400 {
		return fmt.Errorf("nodes=%d: the pairwise connection pass is sized for ~100, refusing past 400", c.Nodes)
	}
	if c.ConnectionDistance <= 0 {
		return fmt.Errorf("connection_distance must be positive, got %f", c.ConnectionDistance)
	}
	if c.SpringCoefficient <= 0 || c.SpringCoefficient >= 1 {
		return fmt.Errorf("spring_coefficient must be in (0, 1), got %f", c.SpringCoefficient)
	}
	if c.PointerLerp <= 0 || c.PointerLerp > 1 {
		return fmt.Errorf("pointer_lerp must be in (0, 1], got %f", c.PointerLerp)
	}
	return nil
}

// Options maps the config onto engine options.
func (c *Config) Options() engine.Options {
	return engine.Options{
		NodeCount:          c.Nodes,
		ConnectionDistance: c.ConnectionDistance,
		RotationSpeed:      c.RotationSpeed,
		PitchRatio:         c.PitchRatio,
		FieldOfView:        c.FieldOfView,
		CameraDistance:     c.CameraDistance,
		RepulsionRadius:    c.RepulsionRadius,
		RepulsionForce:     c.RepulsionForce,
		SpringCoefficient:  c.SpringCoefficient,
		PointerLerp:        c.PointerLerp,
		ReducedMotion:      c.ReducedMotion,
	}
}
