package config

import (
	_ "embed"

	"github.com/vovakirdan/discs/internal/geom"
)

//go:embed defaults/discs.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			Epsilon: geom.DefaultEpsilon,
		},
		Plot: PlotConfig{
			Width:  72,
			Height: 28,
			Margin: 0.1,
		},
		Storage: StorageConfig{
			DBPath: "~/.discs/runs.db",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		Server: ServerConfig{
			Address:            ":23235",
			HostKeyPath:        "~/.discs/host_key",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
