package domain

import "time"

// DailyFacts é a linha bruta da view diária do warehouse para uma conta e
// uma data. Campos ponteiro são nulos quando a view não tem o dado; a
// distinção null vs zero é preservada até a resolução.
type DailyFacts struct {
	AccountID string    `json:"account_id"`
	Date      time.Time `json:"date"`

	Revenue  *float64 `json:"revenue"`
	Orders   *int     `json:"orders"`
	AOV      *float64 `json:"aov"`
	Sessions *int     `json:"sessions"`

	// ConversionRatePct vem da view em percentual (ex.: 1.71 = 1,71%).
	// Precisa ser dividido por 100 antes de virar CVR.
	ConversionRatePct *float64 `json:"conversion_rate_pct"`

	GoogleAdsSpend *float64 `json:"google_ads_spend"`
	MetaAdsSpend   *float64 `json:"meta_ads_spend"`
}

// ManualOverride é uma entrada da tabela de overrides manuais, usada como
// segunda camada do fallback quando a view não tem o campo
type ManualOverride struct {
	AccountID string    `json:"account_id"`
	Date      time.Time `json:"date"`

	Sessions       *int     `json:"sessions"`
	GoogleAdsSpend *float64 `json:"google_ads_spend"`
	MetaAdsSpend   *float64 `json:"meta_ads_spend"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MTDFacts é o resultado da consulta de acumulado mensal do warehouse
type MTDFacts struct {
	MTDRevenue float64 `json:"mtd_revenue"`
}

// TrafficRow é uma linha de tráfego atribuída a compra, pronta para
// classificação por source/medium
type TrafficRow struct {
	Source      string  `json:"source"`
	Medium      string  `json:"medium"`
	Sessions    int     `json:"sessions"`
	Conversions int     `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}
