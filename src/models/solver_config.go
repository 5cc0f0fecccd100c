package models

import "fmt"

const (
	DefaultSolverTolerance     = 1e-6
	DefaultSolverMaxIterations = 100
	DefaultSolverMinVolatility = 1e-6
	DefaultSolverMaxVolatility = 5.0
)

// SolverConfig bounds the implied volatility search. Tolerance is an
// absolute tolerance in price space; MinVolatility and MaxVolatility bracket
// every iterate the solver produces.
type SolverConfig struct {
	Tolerance     float64
	MaxIterations int
	MinVolatility float64
	MaxVolatility float64
}

func NewSolverConfig() SolverConfig {
	return SolverConfig{
		Tolerance:     DefaultSolverTolerance,
		MaxIterations: DefaultSolverMaxIterations,
		MinVolatility: DefaultSolverMinVolatility,
		MaxVolatility: DefaultSolverMaxVolatility,
	}
}

func (c SolverConfig) Validate() error {
	if c.Tolerance <= 0 {
		return fmt.Errorf("SolverConfig: Validate: tolerance must be positive, found %v: %w", c.Tolerance, InvalidInputErr)
	}

	if c.MaxIterations <= 0 {
		return fmt.Errorf("SolverConfig: Validate: max iterations must be positive, found %v: %w", c.MaxIterations, InvalidInputErr)
	}

	if c.MinVolatility <= 0 {
		return fmt.Errorf("SolverConfig: Validate: min volatility must be positive, found %v: %w", c.MinVolatility, InvalidInputErr)
	}

	if c.MaxVolatility <= c.MinVolatility {
		return fmt.Errorf("SolverConfig: Validate: max volatility %v must exceed min volatility %v: %w", c.MaxVolatility, c.MinVolatility, InvalidInputErr)
	}

	return nil
}
