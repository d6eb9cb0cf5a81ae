package config

import (
	"errors"
	"os"

	"github.com/san-kum/tanklab/internal/geometry"
	"github.com/san-kum/tanklab/internal/tank"
	"github.com/san-kum/tanklab/internal/thermal"
	"gopkg.in/yaml.v3"
)

const (
	DefaultShape       = "cylinder"
	DefaultSides       = 4
	DefaultVolume      = 1000.0
	DefaultBaseCost    = 20.0
	DefaultSideCost    = 10.0
	DefaultBaseDensity = 8000.0
	DefaultTopDensity  = 7500.0
	DefaultAmbient     = 35.0
	DefaultInitial     = 5.0
	DefaultCritical    = 25.0
	DefaultHorizon     = 24.0
	DefaultK           = 0.15
)

type Config struct {
	Name     string         `json:"name,omitempty" yaml:"name,omitempty"`
	Geometry GeometryConfig `json:"geometry" yaml:"geometry"`
	Material MaterialConfig `json:"material" yaml:"material"`
	Thermal  ThermalConfig  `json:"thermal" yaml:"thermal"`
}

type GeometryConfig struct {
	Shape    string  `json:"shape" yaml:"shape"`
	Sides    int     `json:"sides" yaml:"sides"`
	Volume   float64 `json:"volume" yaml:"volume"`
	BaseCost float64 `json:"base_cost" yaml:"base_cost"`
	SideCost float64 `json:"side_cost" yaml:"side_cost"`
}

type MaterialConfig struct {
	BaseDensity float64 `json:"base_density" yaml:"base_density"`
	TopDensity  float64 `json:"top_density" yaml:"top_density"`
}

type ThermalConfig struct {
	Ambient  float64 `json:"ambient" yaml:"ambient"`
	Initial  float64 `json:"initial" yaml:"initial"`
	Critical float64 `json:"critical" yaml:"critical"`
	Horizon  float64 `json:"horizon" yaml:"horizon"`
	K        float64 `json:"k" yaml:"k"`
}

func DefaultConfig() *Config {
	return &Config{
		Geometry: GeometryConfig{
			Shape:    DefaultShape,
			Sides:    DefaultSides,
			Volume:   DefaultVolume,
			BaseCost: DefaultBaseCost,
			SideCost: DefaultSideCost,
		},
		Material: MaterialConfig{
			BaseDensity: DefaultBaseDensity,
			TopDensity:  DefaultTopDensity,
		},
		Thermal: ThermalConfig{
			Ambient:  DefaultAmbient,
			Initial:  DefaultInitial,
			Critical: DefaultCritical,
			Horizon:  DefaultHorizon,
			K:        DefaultK,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
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

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

func (c *Config) GeometrySpec() (geometry.Spec, error) {
	shape, err := geometry.ParseShape(c.Geometry.Shape, c.Geometry.Sides)
	if err != nil {
		return geometry.Spec{}, err
	}
	return geometry.Spec{
		Shape:    shape,
		Volume:   c.Geometry.Volume,
		BaseCost: c.Geometry.BaseCost,
		SideCost: c.Geometry.SideCost,
	}, nil
}

func (c *Config) ThermalSpec() thermal.Spec {
	return thermal.Spec{
		Ambient:  c.Thermal.Ambient,
		Initial:  c.Thermal.Initial,
		Critical: c.Thermal.Critical,
		Horizon:  c.Thermal.Horizon,
		K:        c.Thermal.K,
	}
}

// Params builds the pipeline input. An unparsable shape is reported here;
// all numeric preconditions, the side count included, are left to the
// calculation packages so they surface as panel errors.
func (c *Config) Params() (tank.Params, error) {
	shape, err := geometry.ParseShape(c.Geometry.Shape, c.Geometry.Sides)
	if errors.Is(err, geometry.ErrUnknownShape) {
		return tank.Params{}, err
	}
	return tank.Params{
		Geometry: geometry.Spec{
			Shape:    shape,
			Volume:   c.Geometry.Volume,
			BaseCost: c.Geometry.BaseCost,
			SideCost: c.Geometry.SideCost,
		},
		BaseDensity: c.Material.BaseDensity,
		TopDensity:  c.Material.TopDensity,
		Thermal:     c.ThermalSpec(),
	}, nil
}

// GetParams flattens the config into named values for editing.
func (c *Config) GetParams() map[string]float64 {
	return map[string]float64{
		"sides":        float64(c.Geometry.Sides),
		"volume":       c.Geometry.Volume,
		"base_cost":    c.Geometry.BaseCost,
		"side_cost":    c.Geometry.SideCost,
		"base_density": c.Material.BaseDensity,
		"top_density":  c.Material.TopDensity,
		"ambient":      c.Thermal.Ambient,
		"initial":      c.Thermal.Initial,
		"critical":     c.Thermal.Critical,
		"horizon":      c.Thermal.Horizon,
		"k":            c.Thermal.K,
	}
}

// SetParam updates a value by the name GetParams uses.
func (c *Config) SetParam(name string, value float64) error {
	switch name {
	case "sides":
		c.Geometry.Sides = int(value)
	case "volume":
		c.Geometry.Volume = value
	case "base_cost":
		c.Geometry.BaseCost = value
	case "side_cost":
		c.Geometry.SideCost = value
	case "base_density":
		c.Material.BaseDensity = value
	case "top_density":
		c.Material.TopDensity = value
	case "ambient":
		c.Thermal.Ambient = value
	case "initial":
		c.Thermal.Initial = value
	case "critical":
		c.Thermal.Critical = value
	case "horizon":
		c.Thermal.Horizon = value
	case "k":
		c.Thermal.K = value
	default:
		return ErrUnknownParam
	}
	return nil
}
