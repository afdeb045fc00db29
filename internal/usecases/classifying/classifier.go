// Package classifying mapeia pares source/medium do GA4 para a taxonomia
// fixa de oito categorias de tráfego.
package classifying

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/vfg2006/commerce-report-api/internal/domain"
	"github.com/vfg2006/commerce-report-api/internal/usecases/calculating"
	"github.com/vfg2006/commerce-report-api/pkg/utils"
)

// A ordem das regras é semântica: a primeira que casar vence. Reordenar
// muda o resultado (ex.: "searchads.com / cpc" é Organic Search e não Paid
// Ads, porque a regra de busca vem antes e casa com "search").
var (
	organicPattern  = regexp.MustCompile(`/ organic$|.*search.*`)
	paidAdsPattern  = regexp.MustCompile(`(?i)/ (ads|cpc|paid|ppc|cpm|pmax|ad|fb-SiteLink)$`)
	memberPattern   = regexp.MustCompile(`(?i)(edm|line|push|sms|cdp|crm)`)
	aiPattern       = regexp.MustCompile(`^(chatgpt|perplexity|copilot|bard|gemini)`)
	socialPattern   = regexp.MustCompile(`(?i)(facebook|threads|instagram|t\.co|line|linktr\.ee|pinterest|linkedin)`)
	referralPattern = regexp.MustCompile(`(?i)/ referral$`)
)

// Classify devolve exatamente uma categoria para qualquer par
// source/medium; Other é o balde residual que garante exaustividade.
func Classify(source, medium string) domain.TrafficCategory {
	sourceMedium := fmt.Sprintf("%s / %s", source, medium)
	sourceMediumLower := strings.ToLower(sourceMedium)

	// 1. Tráfego direto
	if source == "(direct)" && (medium == "(none)" || medium == "(not set)") {
		return domain.TrafficDirect
	}

	// 2. Busca orgânica
	if organicPattern.MatchString(sourceMediumLower) {
		return domain.TrafficOrganicSearch
	}

	// 3. Anúncios pagos
	if paidAdsPattern.MatchString(sourceMedium) {
		return domain.TrafficPaidAds
	}

	// 4. Canais de relacionamento (CRM)
	if memberPattern.MatchString(sourceMedium) {
		return domain.TrafficMemberCRM
	}

	// 5. Assistentes de IA
	if aiPattern.MatchString(sourceMediumLower) {
		return domain.TrafficAIReferral
	}

	// 6. Redes sociais
	if socialPattern.MatchString(sourceMedium) {
		return domain.TrafficSocial
	}

	// 7. Links de referência
	if referralPattern.MatchString(sourceMedium) {
		return domain.TrafficReferralLink
	}

	// 8. Outros
	return domain.TrafficOther
}

// categoryAccumulator acumula os totais de uma categoria durante a agregação
type categoryAccumulator struct {
	sessions    int
	conversions int
	revenue     float64
}

// Aggregate agrupa as linhas de tráfego por categoria, soma
// sessões/conversões/receita e deriva CVR e AOV por categoria. Toda linha
// entra em exatamente uma categoria; o resultado sai ordenado por receita
// decrescente.
func Aggregate(rows []*domain.TrafficRow) []domain.TrafficCategoryMetrics {
	if len(rows) == 0 {
		return []domain.TrafficCategoryMetrics{}
	}

	accumulators := make(map[domain.TrafficCategory]*categoryAccumulator)

	for _, row := range rows {
		if row == nil {
			continue
		}

		category := Classify(row.Source, row.Medium)

		accumulator, exists := accumulators[category]
		if !exists {
			accumulator = &categoryAccumulator{}
			accumulators[category] = accumulator
		}

		accumulator.sessions += row.Sessions
		accumulator.conversions += row.Conversions
		accumulator.revenue += row.Revenue
	}

	metrics := make([]domain.TrafficCategoryMetrics, 0, len(accumulators))
	for _, category := range domain.TrafficCategories {
		accumulator, exists := accumulators[category]
		if !exists {
			continue
		}

		metrics = append(metrics, domain.TrafficCategoryMetrics{
			Category:    category,
			Sessions:    accumulator.sessions,
			Conversions: accumulator.conversions,
			Revenue:     utils.RoundWithTwoDecimalPlace(accumulator.revenue),
			CVR:         utils.RoundWithFourDecimalPlace(calculating.CVR(accumulator.conversions, accumulator.sessions)),
			AOV:         utils.RoundWithTwoDecimalPlace(calculating.AOV(accumulator.revenue, accumulator.conversions)),
		})
	}

	// Ordenação estável: categorias na ordem de precedência já foram
	// inseridas, o sort por receita mantém o desempate determinístico
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Revenue > metrics[j].Revenue
	})

	return metrics
}
