package config

// Presets are named tunings for the field. "calm" slows everything
// down; "dense" trades frame budget for mesh density; "sparse" is for
// small surfaces.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"calm": {
		Nodes: 70, ConnectionDistance: 110,
		RotationSpeed: 0.0008, PitchRatio: 0.4,
		FieldOfView: 300, CameraDistance: 150,
		RepulsionRadius: 90, RepulsionForce: 2.5,
		SpringCoefficient: 0.015, PointerLerp: 0.08,
		Theme: "midnight",
	},
	"dense": {
		Nodes: 140, ConnectionDistance: 140,
		RotationSpeed: 0.0015, PitchRatio: 0.4,
		FieldOfView: 300, CameraDistance: 150,
		RepulsionRadius: 110, RepulsionForce: 4.5,
		SpringCoefficient: 0.02, PointerLerp: 0.12,
		Theme: "ember",
	},
	"sparse": {
		Nodes: 45, ConnectionDistance: 150,
		RotationSpeed: 0.002, PitchRatio: 0.5,
		FieldOfView: 260, CameraDistance: 130,
		RepulsionRadius: 120, RepulsionForce: 6.0,
		SpringCoefficient: 0.03, PointerLerp: 0.15,
		Theme: "midnight",
	},
}

// GetPreset returns nil when the name is unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
