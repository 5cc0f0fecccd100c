package pricing

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/jiaming2012/option-analytics/src/models"
)

// HistoricalVolatility estimates annualized volatility from a price series
// sampled at a fixed frequency, oldest first. periodsPerYear is the number
// of sampling intervals in a year (e.g. 252 for daily closes, 24*365 for
// hourly marks); the sample standard deviation of simple period returns is
// scaled by its square root.
func HistoricalVolatility(prices []float64, periodsPerYear float64) (float64, error) {
	if len(prices) < 2 {
		return 0, fmt.Errorf("HistoricalVolatility: at least two prices are required, found %d: %w", len(prices), models.InvalidInputErr)
	}

	if periodsPerYear <= 0 {
		return 0, fmt.Errorf("HistoricalVolatility: periods per year must be positive, found %v: %w", periodsPerYear, models.InvalidInputErr)
	}

	returns := make([]float64, 0, len(prices)-1)
	for i := 0; i < len(prices)-1; i++ {
		if prices[i] <= 0 || prices[i+1] <= 0 {
			return 0, fmt.Errorf("HistoricalVolatility: prices must be positive, found %v: %w", math.Min(prices[i], prices[i+1]), models.InvalidInputErr)
		}

		returns = append(returns, prices[i+1]/prices[i]-1)
	}

	sd, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0, fmt.Errorf("HistoricalVolatility: failed to calculate the standard deviation: %v", err)
	}

	return sd * math.Sqrt(periodsPerYear), nil
}
