package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundWithFourDecimalPlace arredonda frações para emissão (ex.: 0.0171).
// O cálculo interno mantém precisão total; o arredondamento acontece só na
// montagem do registro final.
func RoundWithFourDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10000) / 10000
}
