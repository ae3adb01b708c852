package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas; NaN e infinitos viram 0
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// FiniteOrZero descarta valores que não podem ser serializados em JSON
func FiniteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
