package models

import "fmt"

var InvalidInputErr = fmt.Errorf("invalid input")
var NonConvergenceErr = fmt.Errorf("failed to converge within the maximum number of iterations")
var NoSolutionInRangeErr = fmt.Errorf("target price is not attainable by any volatility in range")
