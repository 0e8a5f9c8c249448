// Package config provides YAML-based configuration loading for gridmind:
// default strategy, horizon depth, simulation limits, logging and storage.
package config

import "github.com/vovakirdan/gridmind/internal/core"

// Config contains all gridmind settings.
type Config struct {
	Strategy string        `yaml:"strategy"`
	Horizon  HorizonConfig `yaml:"horizon"`
	Sim      SimConfig     `yaml:"sim"`
	Log      LogConfig     `yaml:"log"`
	Storage  StorageConfig `yaml:"storage"`
	Boards   BoardsConfig  `yaml:"boards"`
}

// HorizonConfig defines the depth-limited search parameters.
type HorizonConfig struct {
	Depth         int         `yaml:"depth"`
	Preset        DepthPreset `yaml:"preset,omitempty"` // Overrides Depth when set
	NearestTarget bool        `yaml:"nearest_target"`
}

// SimConfig defines simulation limits.
type SimConfig struct {
	MaxTicks int `yaml:"max_ticks"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// StorageConfig defines where run history is kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// BoardsConfig defines where board files are looked up.
type BoardsConfig struct {
	Dir string `yaml:"dir"`
}

// DepthPreset represents a named horizon depth.
type DepthPreset string

const (
	PresetShallow DepthPreset = "shallow"
	PresetNormal  DepthPreset = "normal"
	PresetDeep    DepthPreset = "deep"
)

// DepthForPreset returns the horizon depth for a preset, or 0 if unknown.
func DepthForPreset(preset DepthPreset) int {
	switch preset {
	case PresetShallow:
		return 2
	case PresetNormal:
		return 4
	case PresetDeep:
		return 8
	default:
		return 0
	}
}

// HorizonDepth returns the effective horizon depth.
func (c Config) HorizonDepth() int {
	if d := DepthForPreset(c.Horizon.Preset); d > 0 {
		return d
	}
	if c.Horizon.Depth < 1 {
		return core.DefaultMaxDepth
	}
	return c.Horizon.Depth
}

// Runtime converts the config to the settings handed to strategy factories.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.MaxDepth = c.HorizonDepth()
	rc.NearestTarget = c.Horizon.NearestTarget
	if c.Sim.MaxTicks > 0 {
		rc.MaxTicks = c.Sim.MaxTicks
	}
	return rc
}
