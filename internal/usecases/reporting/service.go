package reporting

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-report-api/infrastructure/repository"
	"github.com/vfg2006/commerce-report-api/internal/domain"
	"github.com/vfg2006/commerce-report-api/internal/usecases/calculating"
	"github.com/vfg2006/commerce-report-api/internal/usecases/classifying"
	"github.com/vfg2006/commerce-report-api/internal/usecases/funneling"
	"github.com/vfg2006/commerce-report-api/internal/usecases/resolving"
	"github.com/vfg2006/commerce-report-api/internal/usecases/validating"
	"github.com/vfg2006/commerce-report-api/pkg/utils"
)

// Service orquestra a geração dos relatórios: resolve o snapshot atual e o
// de referência, deriva as variações, monta o bloco mensal e emite o
// registro final já arredondado. A falta do acumulado mensal degrada o
// relatório com nota; a falta da linha do dia é fatal.
type Service struct {
	resolver          resolving.Resolver
	validator         validating.Validator
	warehouse         repository.WarehouseRepository
	accountRepository repository.AccountRepository
	targetRepository  repository.TargetRepository
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	resolver resolving.Resolver,
	validator validating.Validator,
	warehouse repository.WarehouseRepository,
	accountRepo repository.AccountRepository,
	targetRepo repository.TargetRepository,
) Reporter {
	return &Service{
		resolver:          resolver,
		validator:         validator,
		warehouse:         warehouse,
		accountRepository: accountRepo,
		targetRepository:  targetRepo,
	}
}

func (s *Service) GenerateDailyReport(externalID string, date time.Time) (*domain.DailyReport, error) {
	account, err := s.fetchAccount(externalID)
	if err != nil {
		return nil, err
	}

	date = utils.Truncate(date)
	baselineDate := utils.LastWeekSameDay(date)

	notes := make([]string, 0, 3)

	// Pré-checagem de qualidade: nunca aborta, só anota
	validation := s.validator.ValidateSessionsSync(account.ID, date)
	if validation.Degraded() {
		notes = append(notes, validation.Message)
	}

	var (
		current     *domain.ResolvedMetrics
		baseline    *domain.ResolvedMetrics
		currentErr  error
		baselineErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		current, currentErr = s.resolver.ResolveDaily(account.ID, date)
	}()

	go func() {
		defer wg.Done()
		baseline, baselineErr = s.resolver.ResolveDaily(account.ID, baselineDate)
	}()

	wg.Wait()

	if currentErr != nil {
		return nil, currentErr
	}

	if baselineErr != nil {
		// Sem a linha da semana anterior a comparação degrada para base
		// zero; qualquer outra falha sobe
		if !errors.Is(baselineErr, resolving.ErrNoDailyFacts) {
			return nil, baselineErr
		}

		logrus.Warn("Linha de referência semanal ausente, comparação contra base zero", map[string]any{
			"accountID":    account.ID,
			"baselineDate": baselineDate.Format(time.DateOnly),
		})
		baseline = nil
		notes = append(notes, fmt.Sprintf("sem dados de %s para comparação semanal", baselineDate.Format(time.DateOnly)))
	}

	changes := compareSnapshots(current, baseline)

	mtd, mtdNote := s.monthToDate(account, date)
	if mtdNote != "" {
		notes = append(notes, mtdNote)
	}

	reportID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID do relatório")
	}

	report := &domain.DailyReport{
		ReportID:   reportID,
		ClientID:   account.ExternalID,
		ReportDate: date.Format(time.DateOnly),

		MonthlyTargetRevenue: utils.RoundWithTwoDecimalPlace(mtd.Target),

		Revenue:        utils.RoundWithTwoDecimalPlace(current.Revenue.Or(0)),
		Orders:         int(current.Orders.Or(0)),
		AOV:            utils.RoundWithTwoDecimalPlace(current.AOV.Or(0)),
		CVR:            utils.RoundWithFourDecimalPlace(current.CVR.Or(0)),
		Sessions:       int(current.Sessions.Or(0)),
		AdSpend:        roundPtr(current.TotalAdSpend.Float()),
		ROAS:           roundPtr(calculating.ROAS(current.Revenue.Or(0), current.TotalAdSpend.Float())),
		GoogleAdsSpend: roundPtr(current.ChannelSpend(domain.ChannelGoogleAds).Float()),
		MetaAdsSpend:   roundPtr(current.ChannelSpend(domain.ChannelMetaAds).Float()),

		RevenueChangeWoW:  utils.RoundWithFourDecimalPlace(changes[domain.MetricRevenue]),
		CVRChangeWoW:      utils.RoundWithFourDecimalPlace(changes[domain.MetricCVR]),
		SessionsChangeWoW: utils.RoundWithFourDecimalPlace(changes[domain.MetricSessions]),
		AOVChangeWoW:      utils.RoundWithFourDecimalPlace(changes[domain.MetricAOV]),

		MTDRevenue:          utils.RoundWithTwoDecimalPlace(mtd.MTDRevenue),
		MTDAchievementRate:  utils.RoundWithFourDecimalPlace(mtd.AchievementRate),
		MTDProjectedRevenue: utils.RoundWithTwoDecimalPlace(mtd.ProjectedRevenue),
		DailyAmountNeeded:   utils.RoundWithTwoDecimalPlace(mtd.DailyAmountNeeded),

		DataQualityNote: joinNotes(notes),
	}

	return report, nil
}

func (s *Service) GenerateWeeklyReport(externalID string, weekEnd time.Time) (*domain.WeeklyReport, error) {
	account, err := s.fetchAccount(externalID)
	if err != nil {
		return nil, err
	}

	weekEnd = utils.Truncate(weekEnd)
	weekStart := weekEnd.AddDate(0, 0, -6)
	prevEnd := weekStart.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -6)

	var (
		current     *domain.ResolvedMetrics
		baseline    *domain.ResolvedMetrics
		currentErr  error
		baselineErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		current, currentErr = s.resolver.ResolveWindow(account.ID, weekStart, weekEnd)
	}()

	go func() {
		defer wg.Done()
		baseline, baselineErr = s.resolver.ResolveWindow(account.ID, prevStart, prevEnd)
	}()

	wg.Wait()

	if currentErr != nil {
		return nil, currentErr
	}
	if baselineErr != nil {
		return nil, baselineErr
	}

	if current == nil {
		return nil, ErrNoWindowFacts
	}

	notes := make([]string, 0, 1)
	if baseline == nil {
		notes = append(notes, fmt.Sprintf("sem dados entre %s e %s para comparação", prevStart.Format(time.DateOnly), prevEnd.Format(time.DateOnly)))
	}

	changes := compareSnapshots(current, baseline)

	trafficRows, err := s.warehouse.GetTrafficRows(account.ID, weekStart, weekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar linhas de tráfego")
	}

	funnelSteps, err := s.warehouse.GetFunnelSteps(account.ID, weekStart, weekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar etapas do funil")
	}

	reportID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o ID do relatório")
	}

	roundedChanges := make(map[string]float64, len(changes))
	for metric, change := range changes {
		roundedChanges[metric] = utils.RoundWithFourDecimalPlace(change)
	}

	report := &domain.WeeklyReport{
		ReportID:  reportID,
		ClientID:  account.ExternalID,
		WeekStart: weekStart.Format(time.DateOnly),
		WeekEnd:   weekEnd.Format(time.DateOnly),

		Revenue:  utils.RoundWithTwoDecimalPlace(current.Revenue.Or(0)),
		Orders:   int(current.Orders.Or(0)),
		AOV:      utils.RoundWithTwoDecimalPlace(current.AOV.Or(0)),
		CVR:      utils.RoundWithFourDecimalPlace(current.CVR.Or(0)),
		Sessions: int(current.Sessions.Or(0)),
		AdSpend:  roundPtr(current.TotalAdSpend.Float()),
		ROAS:     roundPtr(calculating.ROAS(current.Revenue.Or(0), current.TotalAdSpend.Float())),

		Changes: roundedChanges,

		TrafficBreakdown: classifying.Aggregate(trafficRows),
		Funnel:           funneling.Compute(funnelSteps),

		DataQualityNote: joinNotes(notes),
	}

	return report, nil
}

func (s *Service) fetchAccount(externalID string) (*domain.Account, error) {
	account, err := s.accountRepository.GetAccountByExternalID(externalID)
	if err != nil {
		logrus.Error("Erro ao buscar conta pelo ID no repositório", map[string]any{
			"accountID": externalID,
			"error":     err,
		})
		return nil, err
	}

	if account == nil {
		return nil, ErrAccountNotFound
	}

	return account, nil
}

// monthToDate monta o bloco de progresso mensal. Falha ou ausência do
// acumulado degrada para zeros com nota, nunca derruba o relatório diário.
func (s *Service) monthToDate(account *domain.Account, date time.Time) (domain.MonthToDateSnapshot, string) {
	target, note := s.resolveTarget(account, date)

	facts, err := s.warehouse.GetMTDFacts(account.ID, date)
	if err != nil {
		logrus.Warn("Falha ao buscar o acumulado mensal, bloco degradado", map[string]any{
			"accountID": account.ID,
			"date":      date.Format(time.DateOnly),
			"error":     err,
		})
		return domain.MonthToDateSnapshot{Target: target}, appendNote(note, "acumulado mensal indisponível")
	}

	if facts == nil {
		return domain.MonthToDateSnapshot{Target: target}, appendNote(note, "acumulado mensal ainda sem dados para a data")
	}

	daysInMonth := utils.DaysInMonth(date)
	daysElapsed := date.Day()
	daysRemaining := daysInMonth - daysElapsed

	return domain.MonthToDateSnapshot{
		Target:            target,
		MTDRevenue:        facts.MTDRevenue,
		AchievementRate:   calculating.AchievementRate(facts.MTDRevenue, target),
		ProjectedRevenue:  calculating.MTDProjection(facts.MTDRevenue, daysElapsed, daysInMonth),
		DailyAmountNeeded: calculating.DailyAmountNeeded(target, facts.MTDRevenue, daysRemaining),
	}, note
}

// resolveTarget busca a meta do mês; sem meta cadastrada cai para a meta
// padrão da conta, e sem nenhuma das duas o bloco mensal fica sem meta
func (s *Service) resolveTarget(account *domain.Account, date time.Time) (float64, string) {
	month := utils.FormatMonth(date)

	target, err := s.targetRepository.GetByAccountIDAndMonth(account.ID, month)
	if err != nil {
		logrus.Warn("Falha ao buscar a meta mensal", map[string]any{
			"accountID": account.ID,
			"month":     month,
			"error":     err,
		})
		return 0, "meta mensal indisponível"
	}

	if target != nil {
		return target.Amount, ""
	}

	if account.DefaultMonthlyTarget != nil {
		return *account.DefaultMonthlyTarget, ""
	}

	return 0, fmt.Sprintf("meta mensal não cadastrada para %s", month)
}

// compareSnapshots deriva as variações nomeadas entre dois snapshots.
// Referência nula compara contra zero, que pelo caso de borda de Change
// devolve 1.0 para qualquer valor atual positivo.
func compareSnapshots(current, baseline *domain.ResolvedMetrics) map[string]float64 {
	base := baseline
	if base == nil {
		base = &domain.ResolvedMetrics{}
	}

	return map[string]float64{
		domain.MetricRevenue:  calculating.Change(current.Revenue.Or(0), base.Revenue.Or(0)),
		domain.MetricOrders:   calculating.Change(current.Orders.Or(0), base.Orders.Or(0)),
		domain.MetricSessions: calculating.Change(current.Sessions.Or(0), base.Sessions.Or(0)),
		domain.MetricAOV:      calculating.Change(current.AOV.Or(0), base.AOV.Or(0)),
		domain.MetricCVR:      calculating.Change(current.CVR.Or(0), base.CVR.Or(0)),
	}
}

// roundPtr arredonda valores monetários opcionais preservando o nulo
func roundPtr(value *float64) *float64 {
	if value == nil {
		return nil
	}
	rounded := utils.RoundWithTwoDecimalPlace(*value)
	return &rounded
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "; " + note
}

// joinNotes junta as notas de qualidade em um único campo; sem notas o
// campo fica nulo
func joinNotes(notes []string) *string {
	if len(notes) == 0 {
		return nil
	}
	joined := strings.Join(notes, "; ")
	return &joined
}
