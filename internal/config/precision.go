package config

import "fmt"

// PrecisionPreset represents a named containment tolerance.
type PrecisionPreset string

const (
	PrecisionStrict PrecisionPreset = "strict"
	PrecisionNormal PrecisionPreset = "normal"
	PrecisionLoose  PrecisionPreset = "loose"
)

// EpsilonForPreset returns the search epsilon for a precision preset.
func EpsilonForPreset(preset PrecisionPreset) (float64, error) {
	switch preset {
	case PrecisionStrict:
		return 1e-12, nil
	case PrecisionNormal:
		return 1e-9, nil
	case PrecisionLoose:
		return 1e-6, nil
	default:
		return 0, fmt.Errorf("config: unknown precision preset %q", preset)
	}
}

// ApplyPrecisionPreset sets the search epsilon from a preset.
// An empty preset leaves the config unchanged.
func ApplyPrecisionPreset(cfg *Config, preset PrecisionPreset) error {
	if preset == "" {
		return nil
	}
	eps, err := EpsilonForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Search.Epsilon = eps
	return nil
}
