package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestFormatOptionalCurrency(t *testing.T) {
	// Ausente vira travessão; zero registrado continua zero
	assert.Equal(t, "—", formatOptionalCurrency(nil))
	assert.Equal(t, "R$ 0.00", formatOptionalCurrency(floatPtr(0)))
	assert.Equal(t, "R$ 8500.50", formatOptionalCurrency(floatPtr(8500.5)))
}

func TestFormatOptionalRatio(t *testing.T) {
	assert.Equal(t, "—", formatOptionalRatio(nil))
	assert.Equal(t, "8.50x", formatOptionalRatio(floatPtr(8.5)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "+25.0%", formatPercent(0.25))
	assert.Equal(t, "-9.9%", formatPercent(-0.099))
	assert.Equal(t, "0.0%", formatPercent(0))
}

func TestFormatFraction(t *testing.T) {
	assert.Equal(t, "1.50%", formatFraction(0.015))
	assert.Equal(t, "0.00%", formatFraction(0))
}

func TestTrendIcon(t *testing.T) {
	assert.Equal(t, "📈", trendIcon(0.1))
	assert.Equal(t, "📈", trendIcon(0))
	assert.Equal(t, "📉", trendIcon(-0.1))
}
