package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-report-api/internal/domain"
	"github.com/vfg2006/commerce-report-api/internal/usecases/resolving"
	"github.com/vfg2006/commerce-report-api/internal/usecases/validating"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

type reporterFixture struct {
	warehouse *mocks.MockWarehouseRepository
	overrides *mocks.MockOverrideRepository
	accounts  *mocks.MockAccountRepository
	targets   *mocks.MockTargetRepository
	service   Reporter
}

func newReporterFixture(t *testing.T) *reporterFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &reporterFixture{
		warehouse: mocks.NewMockWarehouseRepository(ctrl),
		overrides: mocks.NewMockOverrideRepository(ctrl),
		accounts:  mocks.NewMockAccountRepository(ctrl),
		targets:   mocks.NewMockTargetRepository(ctrl),
	}

	f.service = NewService(
		resolving.NewResolver(f.warehouse, f.overrides),
		validating.NewValidator(f.warehouse),
		f.warehouse,
		f.accounts,
		f.targets,
	)

	return f
}

func testAccount() *domain.Account {
	return &domain.Account{
		ID:         "ACC001",
		ExternalID: "client-1",
		Name:       "Loja Exemplo",
		Status:     domain.AccountStatusActive,
	}
}

func fullDailyRow(accountID string, date time.Time) *domain.DailyFacts {
	return &domain.DailyFacts{
		AccountID:         accountID,
		Date:              date,
		Revenue:           floatPtr(85000),
		Orders:            intPtr(50),
		AOV:               floatPtr(1700),
		Sessions:          intPtr(3333),
		ConversionRatePct: floatPtr(1.5),
		GoogleAdsSpend:    floatPtr(6000),
		MetaAdsSpend:      floatPtr(4000),
	}
}

func TestGenerateDailyReport(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	baselineDate := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	t.Run("Relatório completo com comparação semanal e bloco mensal", func(t *testing.T) {
		f := newReporterFixture(t)
		account := testAccount()

		f.accounts.EXPECT().GetAccountByExternalID("client-1").Return(account, nil)

		// A linha do dia é lida pela validação e pela resolução
		f.warehouse.EXPECT().
			GetDailyFacts(account.ID, date).
			Return(fullDailyRow(account.ID, date), nil).
			Times(2)

		f.warehouse.EXPECT().
			GetDailyFacts(account.ID, baselineDate).
			Return(&domain.DailyFacts{
				AccountID:         account.ID,
				Date:              baselineDate,
				Revenue:           floatPtr(68000),
				Orders:            intPtr(40),
				AOV:               floatPtr(1700),
				Sessions:          intPtr(3700),
				ConversionRatePct: floatPtr(1.1),
			}, nil)

		f.overrides.EXPECT().GetByAccountIDAndDate(account.ID, date).Return(nil, nil)
		f.overrides.EXPECT().GetByAccountIDAndDate(account.ID, baselineDate).Return(nil, nil)

		f.warehouse.EXPECT().GetMTDFacts(account.ID, date).Return(&domain.MTDFacts{MTDRevenue: 340000}, nil)
		f.targets.EXPECT().GetByAccountIDAndMonth(account.ID, "2025-06").Return(&domain.RevenueTarget{
			AccountID: account.ID,
			Month:     "2025-06",
			Amount:    2000000,
		}, nil)

		report, err := f.service.GenerateDailyReport("client-1", date)

		assert.NoError(t, err)
		assert.NotEmpty(t, report.ReportID)
		assert.Equal(t, "client-1", report.ClientID)
		assert.Equal(t, "2025-06-10", report.ReportDate)

		assert.Equal(t, 85000.0, report.Revenue)
		assert.Equal(t, 50, report.Orders)
		assert.Equal(t, 1700.0, report.AOV)
		assert.Equal(t, 0.015, report.CVR)
		assert.Equal(t, 3333, report.Sessions)

		assert.Equal(t, floatPtr(10000), report.AdSpend)
		assert.Equal(t, floatPtr(8.5), report.ROAS)
		assert.Equal(t, floatPtr(6000), report.GoogleAdsSpend)
		assert.Equal(t, floatPtr(4000), report.MetaAdsSpend)

		assert.Equal(t, 0.25, report.RevenueChangeWoW)
		assert.Equal(t, 0.3636, report.CVRChangeWoW)
		assert.Equal(t, -0.0992, report.SessionsChangeWoW)
		assert.Equal(t, 0.0, report.AOVChangeWoW)

		assert.Equal(t, 2000000.0, report.MonthlyTargetRevenue)
		assert.Equal(t, 340000.0, report.MTDRevenue)
		assert.Equal(t, 0.17, report.MTDAchievementRate)
		assert.Equal(t, 1020000.0, report.MTDProjectedRevenue)
		assert.Equal(t, 83000.0, report.DailyAmountNeeded)

		assert.Nil(t, report.DataQualityNote)
	})

	t.Run("Acumulado mensal ausente degrada o bloco com nota, sem abortar", func(t *testing.T) {
		f := newReporterFixture(t)
		account := testAccount()

		f.accounts.EXPECT().GetAccountByExternalID("client-1").Return(account, nil)
		f.warehouse.EXPECT().GetDailyFacts(account.ID, date).Return(fullDailyRow(account.ID, date), nil).Times(2)
		f.warehouse.EXPECT().GetDailyFacts(account.ID, baselineDate).Return(fullDailyRow(account.ID, baselineDate), nil)
		f.overrides.EXPECT().GetByAccountIDAndDate(account.ID, gomock.Any()).Return(nil, nil).Times(2)

		f.warehouse.EXPECT().GetMTDFacts(account.ID, date).Return(nil, nil)
		f.targets.EXPECT().GetByAccountIDAndMonth(account.ID, "2025-06").Return(&domain.RevenueTarget{Amount: 2000000}, nil)

		report, err := f.service.GenerateDailyReport("client-1", date)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, report.MTDRevenue)
		assert.Equal(t, 0.0, report.MTDAchievementRate)
		assert.Equal(t, 0.0, report.MTDProjectedRevenue)
		assert.Equal(t, 0.0, report.DailyAmountNeeded)
		assert.Equal(t, 2000000.0, report.MonthlyTargetRevenue)

		assert.NotNil(t, report.DataQualityNote)
		assert.Contains(t, *report.DataQualityNote, "acumulado mensal")
	})

	t.Run("Referência semanal ausente compara contra base zero", func(t *testing.T) {
		f := newReporterFixture(t)
		account := testAccount()

		f.accounts.EXPECT().GetAccountByExternalID("client-1").Return(account, nil)
		f.warehouse.EXPECT().GetDailyFacts(account.ID, date).Return(fullDailyRow(account.ID, date), nil).Times(2)
		f.warehouse.EXPECT().GetDailyFacts(account.ID, baselineDate).Return(nil, nil)
		f.overrides.EXPECT().GetByAccountIDAndDate(account.ID, date).Return(nil, nil)

		f.warehouse.EXPECT().GetMTDFacts(account.ID, date).Return(&domain.MTDFacts{MTDRevenue: 340000}, nil)
		f.targets.EXPECT().GetByAccountIDAndMonth(account.ID, "2025-06").Return(&domain.RevenueTarget{Amount: 2000000}, nil)

		report, err := f.service.GenerateDailyReport("client-1", date)

		assert.NoError(t, err)

		// Base zero: variação 1.0 para valores positivos
		assert.Equal(t, 1.0, report.RevenueChangeWoW)
		assert.Equal(t, 1.0, report.SessionsChangeWoW)
		assert.Equal(t, 1.0, report.CVRChangeWoW)

		assert.NotNil(t, report.DataQualityNote)
		assert.Contains(t, *report.DataQualityNote, "2025-06-03")
	})

	t.Run("Sem linha do dia o relatório é fatal", func(t *testing.T) {
		f := newReporterFixture(t)
		account := testAccount()

		f.accounts.EXPECT().GetAccountByExternalID("client-1").Return(account, nil)
		f.warehouse.EXPECT().GetDailyFacts(account.ID, date).Return(nil, nil).Times(2)
		f.warehouse.EXPECT().GetDailyFacts(account.ID, baselineDate).Return(nil, nil)

		report, err := f.service.GenerateDailyReport("client-1", date)

		assert.Nil(t, report)
		assert.ErrorIs(t, err, resolving.ErrNoDailyFacts)
	})

	t.Run("Conta inexistente", func(t *testing.T) {
		f := newReporterFixture(t)

		f.accounts.EXPECT().GetAccountByExternalID("client-x").Return(nil, nil)

		report, err := f.service.GenerateDailyReport("client-x", date)

		assert.Nil(t, report)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("Meta padrão da conta é usada quando o mês não tem meta", func(t *testing.T) {
		f := newReporterFixture(t)
		account := testAccount()
		account.DefaultMonthlyTarget = floatPtr(1500000)

		f.accounts.EXPECT().GetAccountByExternalID("client-1").Return(account, nil)
		f.warehouse.EXPECT().GetDailyFacts(account.ID, date).Return(fullDailyRow(account.ID, date), nil).Times(2)
		f.warehouse.EXPECT().GetDailyFacts(account.ID, baselineDate).Return(fullDailyRow(account.ID, baselineDate), nil)
		f.overrides.EXPECT().GetByAccountIDAndDate(account.ID, gomock.Any()).Return(nil, nil).Times(2)

		f.warehouse.EXPECT().GetMTDFacts(account.ID, date).Return(&domain.MTDFacts{MTDRevenue: 300000}, nil)
		f.targets.EXPECT().GetByAccountIDAndMonth(account.ID, "2025-06").Return(nil, nil)

		report, err := f.service.GenerateDailyReport("client-1", date)

		assert.NoError(t, err)
		assert.Equal(t, 1500000.0, report.MonthlyTargetRevenue)
		assert.Equal(t, 0.2, report.MTDAchievementRate)
		assert.Nil(t, report.DataQualityNote)
	})

	t.Run("Mesmas entradas produzem o mesmo relatório (fora o ID)", func(t *testing.T) {
		f := newReporterFixture(t)
		account := testAccount()

		f.accounts.EXPECT().GetAccountByExternalID("client-1").Return(account, nil).Times(2)
		f.warehouse.EXPECT().GetDailyFacts(account.ID, date).Return(fullDailyRow(account.ID, date), nil).Times(4)
		f.warehouse.EXPECT().GetDailyFacts(account.ID, baselineDate).Return(fullDailyRow(account.ID, baselineDate), nil).Times(2)
		f.overrides.EXPECT().GetByAccountIDAndDate(account.ID, gomock.Any()).Return(nil, nil).Times(4)
		f.warehouse.EXPECT().GetMTDFacts(account.ID, date).Return(&domain.MTDFacts{MTDRevenue: 340000}, nil).Times(2)
		f.targets.EXPECT().GetByAccountIDAndMonth(account.ID, "2025-06").Return(&domain.RevenueTarget{Amount: 2000000}, nil).Times(2)

		first, err := f.service.GenerateDailyReport("client-1", date)
		assert.NoError(t, err)

		second, err := f.service.GenerateDailyReport("client-1", date)
		assert.NoError(t, err)

		first.ReportID = ""
		second.ReportID = ""
		assert.Equal(t, first, second)
	})
}

func TestGenerateWeeklyReport(t *testing.T) {
	weekEnd := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	weekStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	prevEnd := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	prevStart := time.Date(2025, 5, 26, 0, 0, 0, 0, time.UTC)

	t.Run("Relatório semanal com tráfego e funil", func(t *testing.T) {
		f := newReporterFixture(t)
		account := testAccount()

		f.accounts.EXPECT().GetAccountByExternalID("client-1").Return(account, nil)

		f.warehouse.EXPECT().
			GetWindowFacts(account.ID, weekStart, weekEnd).
			Return(&domain.DailyFacts{
				AccountID: account.ID,
				Date:      weekStart,
				Revenue:   floatPtr(140000),
				Orders:    intPtr(70),
				Sessions:  intPtr(7000),
			}, nil)

		f.warehouse.EXPECT().
			GetWindowFacts(account.ID, prevStart, prevEnd).
			Return(&domain.DailyFacts{
				AccountID: account.ID,
				Date:      prevStart,
				Revenue:   floatPtr(112000),
				Orders:    intPtr(56),
				Sessions:  intPtr(7000),
			}, nil)

		f.warehouse.EXPECT().
			GetTrafficRows(account.ID, weekStart, weekEnd).
			Return([]*domain.TrafficRow{
				{Source: "google", Medium: "organic", Sessions: 4000, Conversions: 40, Revenue: 80000},
				{Source: "google", Medium: "cpc", Sessions: 3000, Conversions: 30, Revenue: 60000},
			}, nil)

		f.warehouse.EXPECT().
			GetFunnelSteps(account.ID, weekStart, weekEnd).
			Return([]domain.FunnelStep{
				{Label: domain.FunnelStepVisitors, Count: 7000},
				{Label: domain.FunnelStepPurchase, Count: 70},
			}, nil)

		report, err := f.service.GenerateWeeklyReport("client-1", weekEnd)

		assert.NoError(t, err)
		assert.Equal(t, "2025-06-02", report.WeekStart)
		assert.Equal(t, "2025-06-08", report.WeekEnd)

		assert.Equal(t, 140000.0, report.Revenue)
		assert.Equal(t, 70, report.Orders)
		assert.Equal(t, 2000.0, report.AOV)
		assert.Equal(t, 0.01, report.CVR)
		assert.Equal(t, 7000, report.Sessions)
		assert.Nil(t, report.AdSpend)
		assert.Nil(t, report.ROAS)

		assert.Equal(t, 0.25, report.Changes[domain.MetricRevenue])
		assert.Equal(t, 0.25, report.Changes[domain.MetricOrders])
		assert.Equal(t, 0.0, report.Changes[domain.MetricSessions])

		assert.Len(t, report.TrafficBreakdown, 2)
		assert.Equal(t, domain.TrafficOrganicSearch, report.TrafficBreakdown[0].Category)
		assert.Equal(t, domain.TrafficPaidAds, report.TrafficBreakdown[1].Category)

		assert.Len(t, report.Funnel.Steps, 2)
		assert.Equal(t, 0.01, report.Funnel.Steps[1].Rate)

		assert.Nil(t, report.DataQualityNote)
	})

	t.Run("Janela atual vazia é fatal", func(t *testing.T) {
		f := newReporterFixture(t)
		account := testAccount()

		f.accounts.EXPECT().GetAccountByExternalID("client-1").Return(account, nil)
		f.warehouse.EXPECT().GetWindowFacts(account.ID, weekStart, weekEnd).Return(nil, nil)
		f.warehouse.EXPECT().GetWindowFacts(account.ID, prevStart, prevEnd).Return(nil, nil)

		report, err := f.service.GenerateWeeklyReport("client-1", weekEnd)

		assert.Nil(t, report)
		assert.ErrorIs(t, err, ErrNoWindowFacts)
	})

	t.Run("Janela anterior vazia gera nota e compara contra base zero", func(t *testing.T) {
		f := newReporterFixture(t)
		account := testAccount()

		f.accounts.EXPECT().GetAccountByExternalID("client-1").Return(account, nil)

		f.warehouse.EXPECT().
			GetWindowFacts(account.ID, weekStart, weekEnd).
			Return(&domain.DailyFacts{
				AccountID: account.ID,
				Date:      weekStart,
				Revenue:   floatPtr(140000),
				Orders:    intPtr(70),
				Sessions:  intPtr(7000),
			}, nil)

		f.warehouse.EXPECT().GetWindowFacts(account.ID, prevStart, prevEnd).Return(nil, nil)
		f.warehouse.EXPECT().GetTrafficRows(account.ID, weekStart, weekEnd).Return([]*domain.TrafficRow{}, nil)
		f.warehouse.EXPECT().GetFunnelSteps(account.ID, weekStart, weekEnd).Return([]domain.FunnelStep{}, nil)

		report, err := f.service.GenerateWeeklyReport("client-1", weekEnd)

		assert.NoError(t, err)
		assert.Equal(t, 1.0, report.Changes[domain.MetricRevenue])
		assert.NotNil(t, report.DataQualityNote)
		assert.Contains(t, *report.DataQualityNote, "2025-05-26")
	})
}
