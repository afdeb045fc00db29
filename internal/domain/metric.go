package domain

// Provenance indica de qual camada do fallback um campo resolvido foi obtido
type Provenance string

const (
	// ProvenanceView indica que o valor veio da view diária do warehouse
	ProvenanceView Provenance = "view"
	// ProvenanceManual indica que o valor veio da tabela de overrides manuais
	ProvenanceManual Provenance = "manual"
	// ProvenanceComputed indica que o valor foi derivado de outros campos já resolvidos
	ProvenanceComputed Provenance = "computed"
	// ProvenanceAbsent indica que nenhuma camada conseguiu produzir o valor
	ProvenanceAbsent Provenance = "absent"
)

// MetricValue é um campo de métrica resolvido com sua origem.
// Um ponteiro nulo para MetricValue representa ausência (null), que é
// semanticamente diferente de zero e nunca deve ser colapsado para 0.
type MetricValue struct {
	Value  float64    `json:"value"`
	Origin Provenance `json:"origin"`
}

// NewMetricValue cria um MetricValue com a origem informada
func NewMetricValue(value float64, origin Provenance) *MetricValue {
	return &MetricValue{Value: value, Origin: origin}
}

// Float retorna o valor como *float64, ou nil quando a métrica está ausente
func (m *MetricValue) Float() *float64 {
	if m == nil {
		return nil
	}
	v := m.Value
	return &v
}

// Or retorna o valor da métrica ou o fallback informado quando ausente
func (m *MetricValue) Or(fallback float64) float64 {
	if m == nil {
		return fallback
	}
	return m.Value
}

// ResolvedMetrics é o snapshot de métricas de um dia (ou janela) após a
// cadeia de fallback. Campos nulos significam "não foi possível determinar".
type ResolvedMetrics struct {
	Revenue  *MetricValue `json:"revenue"`
	Orders   *MetricValue `json:"orders"`
	AOV      *MetricValue `json:"aov"`
	Sessions *MetricValue `json:"sessions"`
	CVR      *MetricValue `json:"cvr"`

	// Gastos de anúncio por canal (google, meta). Canal ausente = null.
	AdSpendByChannel map[string]*MetricValue `json:"ad_spend_by_channel"`

	// TotalAdSpend é a soma dos canais não nulos; null quando todos os
	// canais estão nulos (nenhum dado de anúncio ingerido).
	TotalAdSpend *MetricValue `json:"total_ad_spend"`
}

// Canais de anúncio conhecidos pelo warehouse
const (
	ChannelGoogleAds = "google_ads"
	ChannelMetaAds   = "meta_ads"
)

// ChannelSpend retorna o gasto de um canal específico, ou nil
func (r *ResolvedMetrics) ChannelSpend(channel string) *MetricValue {
	if r == nil || r.AdSpendByChannel == nil {
		return nil
	}
	return r.AdSpendByChannel[channel]
}
