package domain

// DailyReport é o registro plano emitido por execução do relatório diário.
// Os nomes de campo e a semântica null-vs-zero são o contrato com os
// consumidores (gráficos, templates, push): um ponteiro nulo serializa como
// null e significa "não foi possível determinar", nunca zero.
type DailyReport struct {
	ReportID   string `json:"report_id"`
	ClientID   string `json:"client_id"`
	ReportDate string `json:"report_date"`

	MonthlyTargetRevenue float64 `json:"monthly_target_revenue"`

	// Indicadores do dia
	Revenue        float64  `json:"revenue"`
	Orders         int      `json:"orders"`
	AOV            float64  `json:"aov"`
	CVR            float64  `json:"cvr"`
	Sessions       int      `json:"sessions"`
	AdSpend        *float64 `json:"ad_spend"`
	ROAS           *float64 `json:"roas"`
	GoogleAdsSpend *float64 `json:"google_ads_spend"`
	MetaAdsSpend   *float64 `json:"meta_ads_spend"`

	// Variação vs mesma data da semana anterior (offset fixo de 7 dias)
	RevenueChangeWoW  float64 `json:"revenue_change_wow"`
	CVRChangeWoW      float64 `json:"cvr_change_wow"`
	SessionsChangeWoW float64 `json:"sessions_change_wow"`
	AOVChangeWoW      float64 `json:"aov_change_wow"`

	// Acumulado do mês
	MTDRevenue          float64 `json:"mtd_revenue"`
	MTDAchievementRate  float64 `json:"mtd_achievement_rate"`
	MTDProjectedRevenue float64 `json:"mtd_projected_revenue"`
	DailyAmountNeeded   float64 `json:"daily_amount_needed"`

	DataQualityNote *string `json:"data_quality_note"`
}

// WeeklyReport é o registro do relatório semanal: janela de 7 dias
// comparada com os 7 dias imediatamente anteriores, mais os canais
// laterais de tráfego e funil.
type WeeklyReport struct {
	ReportID  string `json:"report_id"`
	ClientID  string `json:"client_id"`
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`

	Revenue  float64  `json:"revenue"`
	Orders   int      `json:"orders"`
	AOV      float64  `json:"aov"`
	CVR      float64  `json:"cvr"`
	Sessions int      `json:"sessions"`
	AdSpend  *float64 `json:"ad_spend"`
	ROAS     *float64 `json:"roas"`

	Changes map[string]float64 `json:"changes"`

	TrafficBreakdown []TrafficCategoryMetrics `json:"traffic_breakdown"`
	Funnel           *FunnelSnapshot          `json:"funnel"`

	DataQualityNote *string `json:"data_quality_note"`
}
