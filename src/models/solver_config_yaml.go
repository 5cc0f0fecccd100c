package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SolverConfigYAML is the on-disk form of SolverConfig. Omitted fields fall
// back to the package defaults.
type SolverConfigYAML struct {
	Tolerance     *float64 `yaml:"tolerance"`
	MaxIterations *int     `yaml:"max_iterations"`
	MinVolatility *float64 `yaml:"min_volatility"`
	MaxVolatility *float64 `yaml:"max_volatility"`
}

func (y *SolverConfigYAML) ToSolverConfig() (SolverConfig, error) {
	cfg := NewSolverConfig()

	if y.Tolerance != nil {
		cfg.Tolerance = *y.Tolerance
	}

	if y.MaxIterations != nil {
		cfg.MaxIterations = *y.MaxIterations
	}

	if y.MinVolatility != nil {
		cfg.MinVolatility = *y.MinVolatility
	}

	if y.MaxVolatility != nil {
		cfg.MaxVolatility = *y.MaxVolatility
	}

	if err := cfg.Validate(); err != nil {
		return SolverConfig{}, fmt.Errorf("SolverConfigYAML: ToSolverConfig: %w", err)
	}

	return cfg, nil
}

func NewSolverConfigFromYAML(data []byte) (SolverConfig, error) {
	var dto SolverConfigYAML
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return SolverConfig{}, fmt.Errorf("NewSolverConfigFromYAML: failed to unmarshal solver config: %v", err)
	}

	return dto.ToSolverConfig()
}
