package domain

// ComparisonResult reúne o snapshot atual, o snapshot de referência e as
// variações nomeadas entre eles.
//
// A variação é sempre (atual - base) / base quando base != 0. Quando a base
// é zero a variação é definida como 1.0 se o valor atual for positivo e 0.0
// caso contrário — é um caso de borda definido, nunca um erro de divisão.
type ComparisonResult struct {
	Current  *ResolvedMetrics   `json:"current"`
	Baseline *ResolvedMetrics   `json:"baseline"`
	Changes  map[string]float64 `json:"changes"`
}

// Nomes das métricas comparadas semana a semana
const (
	MetricRevenue  = "revenue"
	MetricCVR      = "cvr"
	MetricSessions = "sessions"
	MetricAOV      = "aov"
	MetricOrders   = "orders"
)

// MonthToDateSnapshot é o bloco de progresso mensal do relatório
type MonthToDateSnapshot struct {
	Target            float64 `json:"target"`
	MTDRevenue        float64 `json:"mtd_revenue"`
	AchievementRate   float64 `json:"achievement_rate"`
	ProjectedRevenue  float64 `json:"projected_revenue"`
	DailyAmountNeeded float64 `json:"daily_amount_needed"`
}
