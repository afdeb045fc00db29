package resolving

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestResolveDaily(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWarehouse := mocks.NewMockWarehouseRepository(ctrl)
	mockOverrides := mocks.NewMockOverrideRepository(ctrl)

	service := NewResolver(mockWarehouse, mockOverrides)

	accountID := "ACC001"
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, result *domain.ResolvedMetrics, err error)
	}{
		{
			name: "Linha completa da view resolve tudo com origem view",
			setup: func() {
				mockWarehouse.EXPECT().
					GetDailyFacts(accountID, date).
					Return(&domain.DailyFacts{
						AccountID:         accountID,
						Date:              date,
						Revenue:           floatPtr(85000),
						Orders:            intPtr(50),
						AOV:               floatPtr(1700),
						Sessions:          intPtr(3333),
						ConversionRatePct: floatPtr(1.5),
						GoogleAdsSpend:    floatPtr(6000),
						MetaAdsSpend:      floatPtr(4000),
					}, nil)

				mockOverrides.EXPECT().
					GetByAccountIDAndDate(accountID, date).
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.ResolvedMetrics, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.NewMetricValue(85000, domain.ProvenanceView), result.Revenue)
				assert.Equal(t, domain.NewMetricValue(50, domain.ProvenanceView), result.Orders)
				assert.Equal(t, domain.NewMetricValue(1700, domain.ProvenanceView), result.AOV)
				assert.Equal(t, domain.NewMetricValue(3333, domain.ProvenanceView), result.Sessions)

				// A view entrega percentual; o snapshot guarda fração
				assert.Equal(t, domain.NewMetricValue(0.015, domain.ProvenanceView), result.CVR)

				assert.Equal(t, domain.NewMetricValue(6000, domain.ProvenanceView), result.ChannelSpend(domain.ChannelGoogleAds))
				assert.Equal(t, domain.NewMetricValue(4000, domain.ProvenanceView), result.ChannelSpend(domain.ChannelMetaAds))
				assert.Equal(t, domain.NewMetricValue(10000, domain.ProvenanceComputed), result.TotalAdSpend)
			},
		},
		{
			name: "Sessões ausentes na view caem para o override manual e o CVR é derivado",
			setup: func() {
				mockWarehouse.EXPECT().
					GetDailyFacts(accountID, date).
					Return(&domain.DailyFacts{
						AccountID: accountID,
						Date:      date,
						Revenue:   floatPtr(20000),
						Orders:    intPtr(10),
					}, nil)

				mockOverrides.EXPECT().
					GetByAccountIDAndDate(accountID, date).
					Return(&domain.ManualOverride{
						AccountID: accountID,
						Date:      date,
						Sessions:  intPtr(500),
					}, nil)
			},
			validate: func(t *testing.T, result *domain.ResolvedMetrics, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.NewMetricValue(500, domain.ProvenanceManual), result.Sessions)
				assert.Equal(t, domain.NewMetricValue(0.02, domain.ProvenanceComputed), result.CVR)

				// AOV derivado de receita/pedidos já resolvidos
				assert.Equal(t, domain.NewMetricValue(2000, domain.ProvenanceComputed), result.AOV)
			},
		},
		{
			name: "Zero na view é tratado como sem dado e cai para a próxima camada",
			setup: func() {
				mockWarehouse.EXPECT().
					GetDailyFacts(accountID, date).
					Return(&domain.DailyFacts{
						AccountID:         accountID,
						Date:              date,
						Revenue:           floatPtr(0),
						Orders:            intPtr(0),
						Sessions:          intPtr(0),
						ConversionRatePct: floatPtr(0),
					}, nil)

				mockOverrides.EXPECT().
					GetByAccountIDAndDate(accountID, date).
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.ResolvedMetrics, err error) {
				assert.NoError(t, err)

				// Receita, pedidos, AOV e CVR terminam em zero calculado
				assert.Equal(t, domain.NewMetricValue(0, domain.ProvenanceComputed), result.Revenue)
				assert.Equal(t, domain.NewMetricValue(0, domain.ProvenanceComputed), result.Orders)
				assert.Equal(t, domain.NewMetricValue(0, domain.ProvenanceComputed), result.AOV)
				assert.Equal(t, domain.NewMetricValue(0, domain.ProvenanceComputed), result.CVR)

				// Sessões não têm camada terminal: ficam ausentes
				assert.Nil(t, result.Sessions)
			},
		},
		{
			name: "Gasto zero registrado pelo canal sobrevive como zero, não como nulo",
			setup: func() {
				mockWarehouse.EXPECT().
					GetDailyFacts(accountID, date).
					Return(&domain.DailyFacts{
						AccountID:      accountID,
						Date:           date,
						Revenue:        floatPtr(1000),
						Orders:         intPtr(1),
						GoogleAdsSpend: floatPtr(0),
					}, nil)

				mockOverrides.EXPECT().
					GetByAccountIDAndDate(accountID, date).
					Return(&domain.ManualOverride{
						AccountID:    accountID,
						Date:         date,
						MetaAdsSpend: floatPtr(350),
					}, nil)
			},
			validate: func(t *testing.T, result *domain.ResolvedMetrics, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.NewMetricValue(0, domain.ProvenanceView), result.ChannelSpend(domain.ChannelGoogleAds))
				assert.Equal(t, domain.NewMetricValue(350, domain.ProvenanceManual), result.ChannelSpend(domain.ChannelMetaAds))
				assert.Equal(t, domain.NewMetricValue(350, domain.ProvenanceComputed), result.TotalAdSpend)
			},
		},
		{
			name: "Nenhum canal com dado deixa o total de anúncios nulo",
			setup: func() {
				mockWarehouse.EXPECT().
					GetDailyFacts(accountID, date).
					Return(&domain.DailyFacts{
						AccountID: accountID,
						Date:      date,
						Revenue:   floatPtr(1000),
						Orders:    intPtr(1),
					}, nil)

				mockOverrides.EXPECT().
					GetByAccountIDAndDate(accountID, date).
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.ResolvedMetrics, err error) {
				assert.NoError(t, err)
				assert.Nil(t, result.ChannelSpend(domain.ChannelGoogleAds))
				assert.Nil(t, result.ChannelSpend(domain.ChannelMetaAds))
				assert.Nil(t, result.TotalAdSpend)
			},
		},
		{
			name: "Sem linha na view o relatório diário não tem base",
			setup: func() {
				mockWarehouse.EXPECT().
					GetDailyFacts(accountID, date).
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.ResolvedMetrics, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrNoDailyFacts)
			},
		},
		{
			name: "Erro do warehouse é propagado",
			setup: func() {
				mockWarehouse.EXPECT().
					GetDailyFacts(accountID, date).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, result *domain.ResolvedMetrics, err error) {
				assert.Nil(t, result)
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "connection refused")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.ResolveDaily(accountID, date)
			tt.validate(t, result, err)
		})
	}
}

func TestResolveWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWarehouse := mocks.NewMockWarehouseRepository(ctrl)
	mockOverrides := mocks.NewMockOverrideRepository(ctrl)

	service := NewResolver(mockWarehouse, mockOverrides)

	accountID := "ACC001"
	startDate := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	t.Run("Janela com somas deriva AOV e CVR dos totais", func(t *testing.T) {
		mockWarehouse.EXPECT().
			GetWindowFacts(accountID, startDate, endDate).
			Return(&domain.DailyFacts{
				AccountID: accountID,
				Date:      startDate,
				Revenue:   floatPtr(140000),
				Orders:    intPtr(70),
				Sessions:  intPtr(7000),
			}, nil)

		result, err := service.ResolveWindow(accountID, startDate, endDate)

		assert.NoError(t, err)
		assert.Equal(t, domain.NewMetricValue(140000, domain.ProvenanceView), result.Revenue)
		assert.Equal(t, domain.NewMetricValue(2000, domain.ProvenanceComputed), result.AOV)
		assert.Equal(t, domain.NewMetricValue(0.01, domain.ProvenanceComputed), result.CVR)
	})

	t.Run("Janela vazia resolve para nil sem erro", func(t *testing.T) {
		mockWarehouse.EXPECT().
			GetWindowFacts(accountID, startDate, endDate).
			Return(nil, nil)

		result, err := service.ResolveWindow(accountID, startDate, endDate)

		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}
