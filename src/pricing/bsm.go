package pricing

import (
	"fmt"
	"math"

	"github.com/jiaming2012/option-analytics/src/models"
)

// zeroVolVega stands in for vega when volatility is zero. The true limit is
// 0+, and reporting it as exactly zero would blind the implied volatility
// solver to the direction of the next step.
const zeroVolVega = 1e-10

func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}

// Evaluate prices a European option under the Black-Scholes-Merton model and
// returns the full set of sensitivities. Theta is reported as the annualized
// rate of value decay; vega and rho are unscaled partial derivatives.
//
// The zero-expiry and zero-volatility limits are explicit branches: the raw
// formulas divide by sigma*sqrt(T), and both inputs are valid at zero.
func Evaluate(contract models.OptionContract) (models.GreeksResult, error) {
	if err := contract.Validate(); err != nil {
		return models.GreeksResult{}, fmt.Errorf("Evaluate: %w", err)
	}

	if contract.TimeToMaturity == 0 {
		return evaluateAtExpiry(contract), nil
	}

	if contract.Volatility == 0 {
		return evaluateZeroVolatility(contract), nil
	}

	S := contract.UnderlyingPrice
	K := contract.StrikePrice
	T := contract.TimeToMaturity
	r := contract.RiskFreeRate
	sigma := contract.Volatility

	sqrtT := math.Sqrt(T)
	discount := math.Exp(-r * T)

	d1 := (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT

	pdfD1 := normPDF(d1)

	result := models.GreeksResult{
		D1:    d1,
		D2:    d2,
		Gamma: pdfD1 / (S * sigma * sqrtT),
		Vega:  S * pdfD1 * sqrtT,
	}

	if contract.OptionType == models.Call {
		cndD1 := normCDF(d1)
		cndD2 := normCDF(d2)

		result.Price = S*cndD1 - K*discount*cndD2
		result.Delta = cndD1
		result.Theta = -S*pdfD1*sigma/(2*sqrtT) - r*K*discount*cndD2
		result.Rho = K * T * discount * cndD2
	} else {
		cndNegD1 := normCDF(-d1)
		cndNegD2 := normCDF(-d2)

		result.Price = K*discount*cndNegD2 - S*cndNegD1
		result.Delta = normCDF(d1) - 1
		result.Theta = -S*pdfD1*sigma/(2*sqrtT) + r*K*discount*cndNegD2
		result.Rho = -K * T * discount * cndNegD2
	}

	return result, nil
}

// evaluateAtExpiry handles T = 0: the option is worth exactly its intrinsic
// value and every sensitivity except delta has collapsed to zero.
func evaluateAtExpiry(contract models.OptionContract) models.GreeksResult {
	S := contract.UnderlyingPrice
	K := contract.StrikePrice

	d := limitD(S, K)

	result := models.GreeksResult{
		D1: d,
		D2: d,
	}

	if contract.OptionType == models.Call {
		result.Price = math.Max(S-K, 0)
		result.Delta = exerciseProbability(S, K)
	} else {
		result.Price = math.Max(K-S, 0)
		result.Delta = exerciseProbability(S, K) - 1
	}

	return result
}

// evaluateZeroVolatility handles sigma = 0 with T > 0: the asset path is
// deterministic, so the option is worth the discounted intrinsic value and
// the normal CDF terms degenerate to an exercise indicator on the forward.
func evaluateZeroVolatility(contract models.OptionContract) models.GreeksResult {
	S := contract.UnderlyingPrice
	K := contract.StrikePrice
	T := contract.TimeToMaturity
	r := contract.RiskFreeRate

	discount := math.Exp(-r * T)
	forwardStrike := K * discount

	d := limitD(S, forwardStrike)
	cnd := exerciseProbability(S, forwardStrike)

	result := models.GreeksResult{
		D1:   d,
		D2:   d,
		Vega: zeroVolVega,
	}

	if contract.OptionType == models.Call {
		result.Price = math.Max(S-forwardStrike, 0)
		result.Delta = cnd
		result.Theta = -r * forwardStrike * cnd
		result.Rho = K * T * discount * cnd
	} else {
		result.Price = math.Max(forwardStrike-S, 0)
		result.Delta = cnd - 1
		result.Theta = r * forwardStrike * (1 - cnd)
		result.Rho = -K * T * discount * (1 - cnd)
	}

	return result
}

// limitD is the limiting value of d1 and d2 as sigma*sqrt(T) approaches
// zero: the sign of the log-moneyness scaled to infinity.
func limitD(s, k float64) float64 {
	switch {
	case s > k:
		return math.Inf(1)
	case s < k:
		return math.Inf(-1)
	default:
		return 0
	}
}

// exerciseProbability is N(d1) = N(d2) in the same limit: a step function of
// moneyness, 0.5 exactly at the money.
func exerciseProbability(s, k float64) float64 {
	switch {
	case s > k:
		return 1
	case s < k:
		return 0
	default:
		return 0.5
	}
}
