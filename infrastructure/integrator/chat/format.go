package chat

import (
	"fmt"
	"strconv"
)

// O travessão marca valor indeterminado nos cartões. Zero de verdade é
// sempre renderizado como zero.
const absentPlaceholder = "—"

func formatCurrency(value float64) string {
	return "R$ " + strconv.FormatFloat(value, 'f', 2, 64)
}

func formatOptionalCurrency(value *float64) string {
	if value == nil {
		return absentPlaceholder
	}
	return formatCurrency(*value)
}

// formatOptionalRatio formata razões como o ROAS (ex.: "8.50x")
func formatOptionalRatio(value *float64) string {
	if value == nil {
		return absentPlaceholder
	}
	return strconv.FormatFloat(*value, 'f', 2, 64) + "x"
}

func formatInt(value int) string {
	return strconv.Itoa(value)
}

// formatFraction apresenta uma fração como percentual (0.015 -> "1.50%")
func formatFraction(value float64) string {
	return strconv.FormatFloat(value*100, 'f', 2, 64) + "%"
}

// formatPercent apresenta uma variação fracionária com sinal explícito
// (0.25 -> "+25.0%")
func formatPercent(change float64) string {
	pct := change * 100
	if pct > 0 {
		return fmt.Sprintf("+%.1f%%", pct)
	}
	return fmt.Sprintf("%.1f%%", pct)
}

func trendIcon(change float64) string {
	if change < 0 {
		return "📉"
	}
	return "📈"
}
