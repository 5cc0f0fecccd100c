package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/option-analytics/src/models"
)

func TestSolveImpliedVolatility(t *testing.T) {
	cfg := models.NewSolverConfig()

	t.Run("worked scenario", func(t *testing.T) {
		contract := newCall(4815, 4500, 0.0877, 0, 0)

		iv, err := SolveImpliedVolatility(352.404034, contract, cfg)
		require.NoError(t, err)
		assert.InDelta(t, 0.26, iv, 1e-6)
	})

	t.Run("round trip", func(t *testing.T) {
		cases := []struct {
			contract models.OptionContract
			sigma    float64
		}{
			{newCall(100, 100, 1, 0.05, 0), 0.2},
			{newCall(100, 130, 0.5, 0.02, 0), 0.45},
			{newPut(100, 100, 1, 0.05, 0), 0.2},
			{newPut(100, 80, 2, 0.01, 0), 0.9},
			{newCall(4815, 4500, 0.0877, 0, 0), 0.26},
			{newPut(50, 120, 0.25, 0.03, 0), 1.2},
		}

		for _, tc := range cases {
			priced, err := Evaluate(tc.contract.WithVolatility(tc.sigma))
			require.NoError(t, err)

			iv, err := SolveImpliedVolatility(priced.Price, tc.contract, cfg)
			require.NoError(t, err)

			// price tolerance translates to a volatility error of
			// tolerance/vega, so compare loosely where vega is small
			assert.InDelta(t, tc.sigma, iv, 1e-4)
		}
	})

	t.Run("caller supplied seed", func(t *testing.T) {
		contract := newCall(100, 100, 1, 0.05, 0.19)

		priced, err := Evaluate(contract.WithVolatility(0.2))
		require.NoError(t, err)

		iv, err := SolveImpliedVolatility(priced.Price, contract, cfg)
		require.NoError(t, err)
		assert.InDelta(t, 0.2, iv, 1e-6)
	})

	t.Run("target below intrinsic value", func(t *testing.T) {
		// intrinsic value of this call is 315; no volatility prices it lower
		contract := newCall(4815, 4500, 0.0877, 0, 0)

		_, err := SolveImpliedVolatility(100, contract, cfg)
		assert.ErrorIs(t, err, models.NoSolutionInRangeErr)
	})

	t.Run("target above maximum attainable price", func(t *testing.T) {
		contract := newCall(4815, 4500, 0.0877, 0, 0)

		_, err := SolveImpliedVolatility(4800, contract, cfg)
		assert.ErrorIs(t, err, models.NoSolutionInRangeErr)
	})

	t.Run("expired contract is insensitive to volatility", func(t *testing.T) {
		contract := newCall(110, 100, 0, 0.05, 0)

		_, err := SolveImpliedVolatility(10, contract, cfg)
		assert.ErrorIs(t, err, models.NoSolutionInRangeErr)
	})

	t.Run("deep out of the money converges through bisection", func(t *testing.T) {
		contract := newCall(100, 300, 0.05, 0, 0)

		priced, err := Evaluate(contract.WithVolatility(2.0))
		require.NoError(t, err)
		require.Greater(t, priced.Price, 0.0)

		iv, err := SolveImpliedVolatility(priced.Price, contract, cfg)
		require.NoError(t, err)

		recovered, err := Evaluate(contract.WithVolatility(iv))
		require.NoError(t, err)
		assert.InDelta(t, priced.Price, recovered.Price, cfg.Tolerance)
	})

	t.Run("iteration cap reports non convergence", func(t *testing.T) {
		tight := models.NewSolverConfig()
		tight.MaxIterations = 1

		contract := newCall(100, 110, 0.5, 0.02, 0)

		priced, err := Evaluate(contract.WithVolatility(0.3))
		require.NoError(t, err)

		_, err = SolveImpliedVolatility(priced.Price, contract, tight)
		assert.ErrorIs(t, err, models.NonConvergenceErr)
	})

	t.Run("negative target price", func(t *testing.T) {
		_, err := SolveImpliedVolatility(-1, newCall(100, 100, 1, 0, 0), cfg)
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})

	t.Run("invalid solver config", func(t *testing.T) {
		bad := models.NewSolverConfig()
		bad.Tolerance = 0

		_, err := SolveImpliedVolatility(10, newCall(100, 100, 1, 0, 0), bad)
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})

	t.Run("invalid contract", func(t *testing.T) {
		_, err := SolveImpliedVolatility(10, newCall(-100, 100, 1, 0, 0), cfg)
		assert.ErrorIs(t, err, models.InvalidInputErr)
	})
}
