package resolving

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/commerce-report-api/infrastructure/repository"
	"github.com/vfg2006/commerce-report-api/internal/domain"
)

// ErrNoDailyFacts indica que a view diária ainda não tem a linha da data
// pedida. Para o relatório diário isso é fatal: sem a linha base não há o
// que resolver.
var ErrNoDailyFacts = errors.New("métricas diárias ainda não disponíveis no warehouse")

// Resolver aplica a cadeia de fallback campo a campo (view → manual →
// calculado → ausente) e produz o snapshot resolvido com a origem de cada
// valor. Nenhum arredondamento acontece aqui: valores saem com a precisão
// que entraram.
type Resolver interface {
	// ResolveDaily resolve as métricas de uma conta em uma data
	ResolveDaily(accountID string, date time.Time) (*domain.ResolvedMetrics, error)

	// ResolveWindow resolve as métricas agregadas de uma janela fechada
	// [startDate, endDate]. Janelas não consultam overrides manuais (são
	// pontuais por dia); retorna nil quando a janela não tem nenhuma linha.
	ResolveWindow(accountID string, startDate, endDate time.Time) (*domain.ResolvedMetrics, error)
}

type resolver struct {
	warehouse repository.WarehouseRepository
	overrides repository.OverrideRepository
}

func NewResolver(
	warehouse repository.WarehouseRepository,
	overrides repository.OverrideRepository,
) Resolver {
	return &resolver{
		warehouse: warehouse,
		overrides: overrides,
	}
}

func (r *resolver) ResolveDaily(accountID string, date time.Time) (*domain.ResolvedMetrics, error) {
	facts, err := r.warehouse.GetDailyFacts(accountID, date)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar métricas diárias")
	}

	if facts == nil {
		return nil, ErrNoDailyFacts
	}

	override, err := r.overrides.GetByAccountIDAndDate(accountID, date)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar overrides manuais")
	}

	return resolve(facts, override), nil
}

func (r *resolver) ResolveWindow(accountID string, startDate, endDate time.Time) (*domain.ResolvedMetrics, error) {
	facts, err := r.warehouse.GetWindowFacts(accountID, startDate, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar métricas da janela")
	}

	if facts == nil {
		return nil, nil
	}

	return resolve(facts, nil), nil
}

// fieldSource é uma camada da cadeia de fallback de um campo
type fieldSource func() *domain.MetricValue

// resolveField percorre as fontes em ordem; a primeira que produzir um valor
// vence e as demais nem são consultadas
func resolveField(sources ...fieldSource) *domain.MetricValue {
	for _, source := range sources {
		if value := source(); value != nil {
			return value
		}
	}
	return nil
}

// resolve monta o snapshot de uma linha de fatos com os overrides da data.
// A ordem importa: AOV e CVR dependem de receita, pedidos e sessões já
// resolvidos.
func resolve(facts *domain.DailyFacts, override *domain.ManualOverride) *domain.ResolvedMetrics {
	var manualSessions *int
	var manualGoogleSpend, manualMetaSpend *float64
	if override != nil {
		manualSessions = override.Sessions
		manualGoogleSpend = override.GoogleAdsSpend
		manualMetaSpend = override.MetaAdsSpend
	}

	revenue := resolveField(
		fromView(facts.Revenue),
		computedZero,
	)

	orders := resolveField(
		fromViewInt(facts.Orders),
		computedZero,
	)

	sessions := resolveField(
		fromViewInt(facts.Sessions),
		fromManualInt(manualSessions),
	)

	aov := resolveField(
		fromView(facts.AOV),
		computedRatio(revenue, orders),
		computedZero,
	)

	cvr := resolveField(
		cvrFromView(facts.ConversionRatePct),
		computedRatio(orders, sessions),
		computedZero,
	)

	googleSpend := resolveField(
		fromViewSpend(facts.GoogleAdsSpend),
		fromManual(manualGoogleSpend),
	)

	metaSpend := resolveField(
		fromViewSpend(facts.MetaAdsSpend),
		fromManual(manualMetaSpend),
	)

	adSpendByChannel := map[string]*domain.MetricValue{
		domain.ChannelGoogleAds: googleSpend,
		domain.ChannelMetaAds:   metaSpend,
	}

	return &domain.ResolvedMetrics{
		Revenue:          revenue,
		Orders:           orders,
		AOV:              aov,
		Sessions:         sessions,
		CVR:              cvr,
		AdSpendByChannel: adSpendByChannel,
		TotalAdSpend:     totalAdSpend(adSpendByChannel),
	}
}

// fromView aceita o valor da view somente quando presente e diferente de
// zero: zero nas métricas de volume significa "ingestão sem dado" e cai
// para a próxima camada
func fromView(value *float64) fieldSource {
	return func() *domain.MetricValue {
		if value == nil || *value == 0 {
			return nil
		}
		return domain.NewMetricValue(*value, domain.ProvenanceView)
	}
}

func fromViewInt(value *int) fieldSource {
	return func() *domain.MetricValue {
		if value == nil || *value == 0 {
			return nil
		}
		return domain.NewMetricValue(float64(*value), domain.ProvenanceView)
	}
}

// fromViewSpend preserva o zero: gasto zero registrado pelo canal é
// diferente de canal sem dado, e essa distinção sobrevive até o total
func fromViewSpend(value *float64) fieldSource {
	return func() *domain.MetricValue {
		if value == nil {
			return nil
		}
		return domain.NewMetricValue(*value, domain.ProvenanceView)
	}
}

// cvrFromView converte a taxa da view, que chega em percentual, para fração
func cvrFromView(pct *float64) fieldSource {
	return func() *domain.MetricValue {
		if pct == nil || *pct == 0 {
			return nil
		}
		return domain.NewMetricValue(*pct/100, domain.ProvenanceView)
	}
}

func fromManual(value *float64) fieldSource {
	return func() *domain.MetricValue {
		if value == nil {
			return nil
		}
		return domain.NewMetricValue(*value, domain.ProvenanceManual)
	}
}

func fromManualInt(value *int) fieldSource {
	return func() *domain.MetricValue {
		if value == nil {
			return nil
		}
		return domain.NewMetricValue(float64(*value), domain.ProvenanceManual)
	}
}

// computedRatio deriva numerador/denominador de campos já resolvidos; sem
// denominador positivo não produz valor e o fallback continua
func computedRatio(numerator, denominator *domain.MetricValue) fieldSource {
	return func() *domain.MetricValue {
		if numerator == nil || denominator == nil || denominator.Value <= 0 {
			return nil
		}
		return domain.NewMetricValue(numerator.Value/denominator.Value, domain.ProvenanceComputed)
	}
}

// computedZero é a camada terminal dos campos que nunca ficam ausentes
func computedZero() *domain.MetricValue {
	return domain.NewMetricValue(0, domain.ProvenanceComputed)
}

// totalAdSpend soma os canais com dado; nulo somente quando nenhum canal
// tem dado (zero registrado entra na soma e mantém o total em zero, não
// em nulo)
func totalAdSpend(channels map[string]*domain.MetricValue) *domain.MetricValue {
	total := 0.0
	found := false

	for _, spend := range channels {
		if spend == nil {
			continue
		}
		total += spend.Value
		found = true
	}

	if !found {
		return nil
	}

	return domain.NewMetricValue(total, domain.ProvenanceComputed)
}
