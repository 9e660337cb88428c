// Package config provides YAML-based configuration loading and tolerance
// presets for the discs tools.
package config

import "time"

// Config contains all settings for the discs CLI, viewer and server.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Plot    PlotConfig    `yaml:"plot"`
	Storage StorageConfig `yaml:"storage"`
	Batch   BatchConfig   `yaml:"batch"`
	Server  ServerConfig  `yaml:"server"`
}

// SearchConfig defines parameters of the common-point search.
type SearchConfig struct {
	Epsilon float64 `yaml:"epsilon"`
}

// PlotConfig defines the size of rendered plots.
type PlotConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Margin float64 `yaml:"margin"` // Fraction of the disks' extent
}

// StorageConfig defines where run history is kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// BatchConfig defines how scenario batches are evaluated.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// ServerConfig defines the SSH viewer server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	ScenarioDir        string `yaml:"scenario_dir"` // Served next to the built-ins
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}
