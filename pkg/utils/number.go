package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais, a precisão
// usada por todos os valores monetários do pipeline.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
