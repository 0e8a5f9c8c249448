package config

import (
	_ "embed"
)

//go:embed defaults/gridmind.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Strategy: "astar",
		Horizon: HorizonConfig{
			Depth:         3,
			NearestTarget: false,
		},
		Sim: SimConfig{
			MaxTicks: 500,
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			DBPath: "~/.gridmind/runs.db",
		},
		Boards: BoardsConfig{
			Dir: "boards",
		},
	}
}
