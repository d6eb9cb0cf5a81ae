package config

import "sort"

var Presets = map[string]map[string]*Config{
	"cylinder": {
		"reference": {
			Name:     "reference",
			Geometry: GeometryConfig{Shape: "cylinder", Volume: 1000, BaseCost: 20, SideCost: 10},
			Material: MaterialConfig{BaseDensity: 8000, TopDensity: 7500},
			Thermal:  ThermalConfig{Ambient: 35, Initial: 5, Critical: 25, Horizon: 24, K: 0.15},
		},
		"cheap-walls": {
			Name:     "cheap-walls",
			Geometry: GeometryConfig{Shape: "cylinder", Volume: 500, BaseCost: 40, SideCost: 5},
			Material: MaterialConfig{BaseDensity: 7850, TopDensity: 7850},
			Thermal:  ThermalConfig{Ambient: 25, Initial: 10, Critical: 20, Horizon: 12, K: 0.1},
		},
		"cold-chain": {
			Name:     "cold-chain",
			Geometry: GeometryConfig{Shape: "cylinder", Volume: 50, BaseCost: 15, SideCost: 12},
			Material: MaterialConfig{BaseDensity: 2700, TopDensity: 2600},
			Thermal:  ThermalConfig{Ambient: 30, Initial: 2, Critical: 8, Horizon: 48, K: 0.05},
		},
	},
	"prism": {
		"box": {
			Name:     "box",
			Geometry: GeometryConfig{Shape: "prism", Sides: 4, Volume: 1000, BaseCost: 20, SideCost: 10},
			Material: MaterialConfig{BaseDensity: 8000, TopDensity: 7500},
			Thermal:  ThermalConfig{Ambient: 35, Initial: 5, Critical: 25, Horizon: 24, K: 0.15},
		},
		"hexagonal": {
			Name:     "hexagonal",
			Geometry: GeometryConfig{Shape: "prism", Sides: 6, Volume: 2000, BaseCost: 25, SideCost: 12},
			Material: MaterialConfig{BaseDensity: 7800, TopDensity: 7000},
			Thermal:  ThermalConfig{Ambient: 28, Initial: 4, Critical: 18, Horizon: 36, K: 0.08},
		},
		"triangular": {
			Name:     "triangular",
			Geometry: GeometryConfig{Shape: "prism", Sides: 3, Volume: 100, BaseCost: 10, SideCost: 10},
			Material: MaterialConfig{BaseDensity: 1000, TopDensity: 900},
			Thermal:  ThermalConfig{Ambient: 20, Initial: 60, Critical: 80, Horizon: 10, K: 0.3},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(shape, name string) *Config {
	if presets, ok := Presets[shape]; ok {
		if cfg, ok := presets[name]; ok {
			return cfg.Clone()
		}
	}
	return nil
}

func ListPresets(shape string) []string {
	presets, ok := Presets[shape]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FindPreset looks a preset up by name across every shape.
func FindPreset(name string) *Config {
	for _, shape := range Shapes() {
		if cfg := GetPreset(shape, name); cfg != nil {
			return cfg
		}
	}
	return nil
}

func Shapes() []string {
	shapes := make([]string, 0, len(Presets))
	for s := range Presets {
		shapes = append(shapes, s)
	}
	sort.Strings(shapes)
	return shapes
}
