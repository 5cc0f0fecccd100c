package pricing

import (
	"fmt"
	"math"

	"github.com/jiaming2012/option-analytics/src/models"
)

// vegaEpsilon is the smallest vega the Newton update will divide by. Below
// it the step degenerates, so the solver bisects instead.
const vegaEpsilon = 1e-8

// SolveImpliedVolatility inverts the pricing formula: it returns the
// volatility at which the contract's theoretical price matches targetPrice
// within cfg.Tolerance. The contract's own Volatility field is ignored
// except as an optional initial guess when positive.
//
// The method is Newton-Raphson on volatility, using vega as the derivative.
// Every iterate is kept inside [cfg.MinVolatility, cfg.MaxVolatility]; when
// vega is too small for a stable Newton step, or the step would leave the
// bracket, the solver falls back to bisection. Both option prices are
// non-decreasing in volatility, which is what makes the bracket valid.
func SolveImpliedVolatility(targetPrice float64, contract models.OptionContract, cfg models.SolverConfig) (float64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("SolveImpliedVolatility: %w", err)
	}

	if targetPrice < 0 {
		return 0, fmt.Errorf("SolveImpliedVolatility: target price must be non-negative, found %v: %w", targetPrice, models.InvalidInputErr)
	}

	lowResult, err := Evaluate(contract.WithVolatility(cfg.MinVolatility))
	if err != nil {
		return 0, fmt.Errorf("SolveImpliedVolatility: %w", err)
	}

	highResult, err := Evaluate(contract.WithVolatility(cfg.MaxVolatility))
	if err != nil {
		return 0, fmt.Errorf("SolveImpliedVolatility: %w", err)
	}

	// Reachability is decided analytically before any iteration: the price
	// at the bracket endpoints bounds everything the formula can produce.
	if targetPrice < lowResult.Price-cfg.Tolerance {
		return 0, fmt.Errorf("SolveImpliedVolatility: target price %v is below the minimum attainable price %v: %w", targetPrice, lowResult.Price, models.NoSolutionInRangeErr)
	}

	if targetPrice > highResult.Price+cfg.Tolerance {
		return 0, fmt.Errorf("SolveImpliedVolatility: target price %v is above the maximum attainable price %v: %w", targetPrice, highResult.Price, models.NoSolutionInRangeErr)
	}

	// A degenerate range means the price does not respond to volatility at
	// all (expired contract, or strike pinned by the forward), so no single
	// volatility can be identified.
	if highResult.Price-lowResult.Price < cfg.Tolerance {
		return 0, fmt.Errorf("SolveImpliedVolatility: price is insensitive to volatility over [%v, %v]: %w", cfg.MinVolatility, cfg.MaxVolatility, models.NoSolutionInRangeErr)
	}

	volatility := seedVolatility(targetPrice, contract, cfg)
	lo, hi := cfg.MinVolatility, cfg.MaxVolatility

	for i := 0; i < cfg.MaxIterations; i++ {
		result, err := Evaluate(contract.WithVolatility(volatility))
		if err != nil {
			return 0, fmt.Errorf("SolveImpliedVolatility: %w", err)
		}

		diff := result.Price - targetPrice
		if math.Abs(diff) < cfg.Tolerance {
			return volatility, nil
		}

		if diff < 0 {
			lo = volatility
		} else {
			hi = volatility
		}

		next := 0.5 * (lo + hi)
		if result.Vega >= vegaEpsilon {
			if newton := volatility - diff/result.Vega; newton > lo && newton < hi {
				next = newton
			}
		}

		volatility = next
	}

	return 0, fmt.Errorf("SolveImpliedVolatility: no convergence after %d iterations: %w", cfg.MaxIterations, models.NonConvergenceErr)
}

// seedVolatility picks the starting point for the Newton iteration. A
// caller-supplied positive volatility wins; otherwise the
// Brenner-Subrahmanyam approximation sqrt(2*pi/T) * price / S gives a seed
// in the right order of magnitude for near-the-money options.
func seedVolatility(targetPrice float64, contract models.OptionContract, cfg models.SolverConfig) float64 {
	seed := contract.Volatility
	if seed <= 0 {
		seed = math.Sqrt(2*math.Pi/contract.TimeToMaturity) * targetPrice / contract.UnderlyingPrice
	}

	return math.Min(math.Max(seed, cfg.MinVolatility), cfg.MaxVolatility)
}
