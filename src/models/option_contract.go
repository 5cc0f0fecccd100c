package models

import "fmt"

// OptionContract holds the inputs to the Black-Scholes-Merton formula for a
// single European option. It is a value object: evaluating a contract never
// mutates it, and a contract with a different volatility is a new value.
type OptionContract struct {
	UnderlyingPrice float64    `json:"underlying_price"`
	StrikePrice     float64    `json:"strike_price"`
	TimeToMaturity  float64    `json:"time_to_maturity"` // years
	RiskFreeRate    float64    `json:"risk_free_rate"`   // continuously compounded, annual
	Volatility      float64    `json:"volatility"`       // annualized
	OptionType      OptionType `json:"option_type"`
}

func (c OptionContract) Validate() error {
	if c.UnderlyingPrice <= 0 {
		return fmt.Errorf("OptionContract: Validate: underlying price must be positive, found %v: %w", c.UnderlyingPrice, InvalidInputErr)
	}

	if c.StrikePrice <= 0 {
		return fmt.Errorf("OptionContract: Validate: strike price must be positive, found %v: %w", c.StrikePrice, InvalidInputErr)
	}

	if c.TimeToMaturity < 0 {
		return fmt.Errorf("OptionContract: Validate: time to maturity must be non-negative, found %v: %w", c.TimeToMaturity, InvalidInputErr)
	}

	if c.Volatility < 0 {
		return fmt.Errorf("OptionContract: Validate: volatility must be non-negative, found %v: %w", c.Volatility, InvalidInputErr)
	}

	if err := c.OptionType.Validate(); err != nil {
		return fmt.Errorf("OptionContract: Validate: %w", err)
	}

	return nil
}

// Moneyness classifies the contract by the relationship between the
// underlying price and the strike price.
func (c OptionContract) Moneyness() OptionMoneyness {
	switch {
	case c.UnderlyingPrice == c.StrikePrice:
		return OptionMoneynessAtTheMoney
	case c.OptionType == Call && c.UnderlyingPrice > c.StrikePrice:
		return OptionMoneynessInTheMoney
	case c.OptionType == Put && c.UnderlyingPrice < c.StrikePrice:
		return OptionMoneynessInTheMoney
	default:
		return OptionMoneynessOutOfTheMoney
	}
}

// WithVolatility returns a copy of the contract with the volatility replaced.
func (c OptionContract) WithVolatility(volatility float64) OptionContract {
	c.Volatility = volatility
	return c
}
