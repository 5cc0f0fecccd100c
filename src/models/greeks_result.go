package models

// GreeksResult carries the outputs of a single pricing evaluation. Every
// field is populated on each call; the struct is returned by value and never
// cached or mutated.
type GreeksResult struct {
	D1    float64 `json:"d1"`
	D2    float64 `json:"d2"`
	Price float64 `json:"price"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"` // annualized rate of decay
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}
