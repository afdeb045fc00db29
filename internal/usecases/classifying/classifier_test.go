package classifying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-report-api/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		medium   string
		expected domain.TrafficCategory
	}{
		{
			name:     "Tráfego direto com medium (none)",
			source:   "(direct)",
			medium:   "(none)",
			expected: domain.TrafficDirect,
		},
		{
			name:     "Tráfego direto com medium (not set)",
			source:   "(direct)",
			medium:   "(not set)",
			expected: domain.TrafficDirect,
		},
		{
			name:     "Busca orgânica via sufixo organic",
			source:   "google",
			medium:   "organic",
			expected: domain.TrafficOrganicSearch,
		},
		{
			name:     "Busca orgânica via token search",
			source:   "search.brave.com",
			medium:   "referral",
			expected: domain.TrafficOrganicSearch,
		},
		{
			name:     "Precedência: search vence cpc quando ambos casariam",
			source:   "searchads.com",
			medium:   "cpc",
			expected: domain.TrafficOrganicSearch,
		},
		{
			name:     "Anúncio pago via cpc",
			source:   "google",
			medium:   "cpc",
			expected: domain.TrafficPaidAds,
		},
		{
			name:     "Anúncio pago via pmax",
			source:   "google",
			medium:   "pmax",
			expected: domain.TrafficPaidAds,
		},
		{
			name:     "CRM via edm",
			source:   "edm-platform",
			medium:   "email",
			expected: domain.TrafficMemberCRM,
		},
		{
			name:     "Precedência: line é CRM antes de ser social",
			source:   "line",
			medium:   "message",
			expected: domain.TrafficMemberCRM,
		},
		{
			name:     "Assistente de IA via prefixo chatgpt",
			source:   "chatgpt.com",
			medium:   "referral",
			expected: domain.TrafficAIReferral,
		},
		{
			name:     "Assistente de IA via perplexity",
			source:   "perplexity.ai",
			medium:   "referral",
			expected: domain.TrafficAIReferral,
		},
		{
			name:     "Social via instagram",
			source:   "instagram",
			medium:   "social",
			expected: domain.TrafficSocial,
		},
		{
			name:     "Social via t.co",
			source:   "t.co",
			medium:   "referral",
			expected: domain.TrafficSocial,
		},
		{
			name:     "Link de referência genérico",
			source:   "parceiro.com.br",
			medium:   "referral",
			expected: domain.TrafficReferralLink,
		},
		{
			name:     "Balde residual Other",
			source:   "qr-code",
			medium:   "print",
			expected: domain.TrafficOther,
		},
		{
			name:     "offline contém o token line e cai em CRM",
			source:   "qr-code",
			medium:   "offline",
			expected: domain.TrafficMemberCRM,
		},
		{
			name:     "Par vazio cai em Other, nunca erro",
			source:   "",
			medium:   "",
			expected: domain.TrafficOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.source, tt.medium))
		})
	}
}

// Toda combinação devolve exatamente uma das oito categorias
func TestClassifyIsTotal(t *testing.T) {
	known := make(map[domain.TrafficCategory]bool)
	for _, category := range domain.TrafficCategories {
		known[category] = true
	}

	pairs := [][2]string{
		{"(direct)", "(none)"},
		{"google", "organic"},
		{"google", "cpc"},
		{"line", "social"},
		{"chatgpt.com", "referral"},
		{"facebook", "social"},
		{"blog.parceiro.com", "referral"},
		{"", ""},
		{"알수없음", "未設定"},
		{"a b c", "/ / /"},
	}

	for _, pair := range pairs {
		category := Classify(pair[0], pair[1])
		assert.True(t, known[category], "categoria desconhecida %q para %q/%q", category, pair[0], pair[1])
	}
}

func TestAggregate(t *testing.T) {
	rows := []*domain.TrafficRow{
		{Source: "google", Medium: "organic", Sessions: 1000, Conversions: 20, Revenue: 30000},
		{Source: "bing", Medium: "organic", Sessions: 200, Conversions: 5, Revenue: 6000},
		{Source: "google", Medium: "cpc", Sessions: 500, Conversions: 25, Revenue: 50000},
		{Source: "(direct)", Medium: "(none)", Sessions: 800, Conversions: 8, Revenue: 10000},
		{Source: "qr-code", Medium: "print", Sessions: 50, Conversions: 0, Revenue: 0},
	}

	metrics := Aggregate(rows)
	assert.Len(t, metrics, 4)

	// Ordenado por receita decrescente
	assert.Equal(t, domain.TrafficPaidAds, metrics[0].Category)
	assert.Equal(t, domain.TrafficOrganicSearch, metrics[1].Category)
	assert.Equal(t, domain.TrafficDirect, metrics[2].Category)
	assert.Equal(t, domain.TrafficOther, metrics[3].Category)

	// Busca orgânica agrega as duas fontes
	organic := metrics[1]
	assert.Equal(t, 1200, organic.Sessions)
	assert.Equal(t, 25, organic.Conversions)
	assert.Equal(t, 36000.0, organic.Revenue)
	assert.InDelta(t, 0.0208, organic.CVR, 1e-9)
	assert.Equal(t, 1440.0, organic.AOV)

	// Conciliação: a soma das categorias bate com o total das linhas
	totalSessions := 0
	totalRevenue := 0.0
	for _, m := range metrics {
		totalSessions += m.Sessions
		totalRevenue += m.Revenue
	}
	assert.Equal(t, 2550, totalSessions)
	assert.Equal(t, 96000.0, totalRevenue)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
	assert.Empty(t, Aggregate([]*domain.TrafficRow{}))
}
