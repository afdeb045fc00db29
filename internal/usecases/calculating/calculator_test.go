package calculating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-report-api/pkg/utils"
)

func TestCVR(t *testing.T) {
	tests := []struct {
		name     string
		orders   int
		sessions int
		expected float64
	}{
		{
			name:     "Cenário padrão - 50 pedidos em 3333 sessões",
			orders:   50,
			sessions: 3333,
			expected: 0.0150,
		},
		{
			name:     "Sem sessões - CVR é zero, não erro de divisão",
			orders:   10,
			sessions: 0,
			expected: 0.0,
		},
		{
			name:     "Sem pedidos",
			orders:   0,
			sessions: 1000,
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.RoundWithFourDecimalPlace(CVR(tt.orders, tt.sessions))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAOV(t *testing.T) {
	// Cenário: revenue=85000, orders=50 -> aov=1700.00
	assert.Equal(t, 1700.00, AOV(85000, 50))

	// orders=0 -> aov=0, nunca divisão por zero
	assert.Equal(t, 0.0, AOV(85000, 0))
}

func TestROAS(t *testing.T) {
	t.Run("Gasto positivo - revenue=85000, spend=10000 -> 8.5", func(t *testing.T) {
		spend := 10000.0
		roas := ROAS(85000, &spend)
		assert.NotNil(t, roas)
		assert.Equal(t, 8.5, *roas)
	})

	t.Run("Gasto nulo - ROAS ausente, não zero", func(t *testing.T) {
		assert.Nil(t, ROAS(85000, nil))
	})

	t.Run("Gasto zero - ROAS indefinido, não zero", func(t *testing.T) {
		spend := 0.0
		assert.Nil(t, ROAS(85000, &spend))
	})
}

func TestChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		baseline float64
		expected float64
	}{
		{
			name:     "Queda de 15%",
			current:  85,
			baseline: 100,
			expected: -0.15,
		},
		{
			name:     "Base zero com atual positivo - variação definida como 1.0",
			current:  1000,
			baseline: 0,
			expected: 1.0,
		},
		{
			name:     "Base zero com atual zero",
			current:  0,
			baseline: 0,
			expected: 0.0,
		},
		{
			name:     "Crescimento de 100%",
			current:  200,
			baseline: 100,
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Change(tt.current, tt.baseline), 1e-9)
		})
	}
}

func TestAchievementRate(t *testing.T) {
	// Cenário: mtd=340000, target=2000000 -> 0.17
	assert.InDelta(t, 0.17, AchievementRate(340000, 2000000), 1e-9)

	// Meta não cadastrada (<= 0) -> 0
	assert.Equal(t, 0.0, AchievementRate(340000, 0))
	assert.Equal(t, 0.0, AchievementRate(340000, -1))
}

func TestMTDProjection(t *testing.T) {
	// Cenário: mtd=340000, dia 5 de um mês de 30 dias -> 2040000
	assert.InDelta(t, 2040000, MTDProjection(340000, 5, 30), 1e-9)

	// Sem dias corridos -> 0
	assert.Equal(t, 0.0, MTDProjection(340000, 0, 30))
}

func TestDailyAmountNeeded(t *testing.T) {
	// Faltam 1660000 em 25 dias
	assert.InDelta(t, 66400, DailyAmountNeeded(2000000, 340000, 25), 1e-9)

	// Meta já batida -> 0
	assert.Equal(t, 0.0, DailyAmountNeeded(2000000, 2500000, 25))

	// Mês encerrado -> 0
	assert.Equal(t, 0.0, DailyAmountNeeded(2000000, 340000, 0))
}
