package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	chatmocks "github.com/vfg2006/commerce-report-api/infrastructure/integrator/chat/mocks"
	"github.com/vfg2006/commerce-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-report-api/internal/config"
	"github.com/vfg2006/commerce-report-api/internal/domain"
	"github.com/vfg2006/commerce-report-api/internal/usecases/reporting"
	reportingmocks "github.com/vfg2006/commerce-report-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/commerce-report-api/internal/usecases/resolving"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string { return &s }

func TestDailyReportSyncService_syncAllDailyReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockChat := chatmocks.NewMockChatIntegrator(ctrl)

	activeStatuses := []domain.AccountStatus{domain.AccountStatusActive}

	newService := func(chatEnabled bool) *DailyReportSyncService {
		return &DailyReportSyncService{
			config: DailyReportSyncConfig{
				MaxConcurrentJobs: 2,
				SyncEnabled:       true,
			},
			appConfig: &config.Config{
				Chat: config.Chat{Enabled: chatEnabled},
			},
			accountRepo:   mockAccountRepo,
			reportService: mockReporter,
			chatService:   mockChat,
		}
	}

	tests := []struct {
		name        string
		chatEnabled bool
		setup       func()
	}{
		{
			name:        "Conta com webhook recebe o push do relatório",
			chatEnabled: true,
			setup: func() {
				mockAccountRepo.EXPECT().
					ListAccounts(activeStatuses).
					Return([]*domain.Account{
						{ID: "ACC001", ExternalID: "client-1", WebhookURL: stringPtr("https://chat.example/hook")},
					}, nil)

				report := &domain.DailyReport{ReportID: "r1", ClientID: "client-1"}
				mockReporter.EXPECT().
					GenerateDailyReport("client-1", gomock.Any()).
					Return(report, nil)

				mockChat.EXPECT().
					SendDailyReport("https://chat.example/hook", report).
					Return(nil)
			},
		},
		{
			name:        "Conta sem webhook gera o relatório mas não faz push",
			chatEnabled: true,
			setup: func() {
				mockAccountRepo.EXPECT().
					ListAccounts(activeStatuses).
					Return([]*domain.Account{
						{ID: "ACC002", ExternalID: "client-2"},
					}, nil)

				mockReporter.EXPECT().
					GenerateDailyReport("client-2", gomock.Any()).
					Return(&domain.DailyReport{ReportID: "r2"}, nil)
			},
		},
		{
			name:        "Conta sem dados do dia é pulada sem derrubar a execução",
			chatEnabled: true,
			setup: func() {
				mockAccountRepo.EXPECT().
					ListAccounts(activeStatuses).
					Return([]*domain.Account{
						{ID: "ACC003", ExternalID: "client-3", WebhookURL: stringPtr("https://chat.example/hook")},
						{ID: "ACC004", ExternalID: "client-4", WebhookURL: stringPtr("https://chat.example/hook2")},
					}, nil)

				mockReporter.EXPECT().
					GenerateDailyReport("client-3", gomock.Any()).
					Return(nil, resolving.ErrNoDailyFacts)

				report := &domain.DailyReport{ReportID: "r4"}
				mockReporter.EXPECT().
					GenerateDailyReport("client-4", gomock.Any()).
					Return(report, nil)

				mockChat.EXPECT().
					SendDailyReport("https://chat.example/hook2", report).
					Return(nil)
			},
		},
		{
			name:        "Entrega desabilitada gera relatórios sem nenhum push",
			chatEnabled: false,
			setup: func() {
				mockAccountRepo.EXPECT().
					ListAccounts(activeStatuses).
					Return([]*domain.Account{
						{ID: "ACC005", ExternalID: "client-5", WebhookURL: stringPtr("https://chat.example/hook")},
					}, nil)

				mockReporter.EXPECT().
					GenerateDailyReport("client-5", gomock.Any()).
					Return(&domain.DailyReport{ReportID: "r5"}, nil)
			},
		},
		{
			name:        "Falha na entrega não interrompe a execução",
			chatEnabled: true,
			setup: func() {
				mockAccountRepo.EXPECT().
					ListAccounts(activeStatuses).
					Return([]*domain.Account{
						{ID: "ACC006", ExternalID: "client-6", WebhookURL: stringPtr("https://chat.example/hook")},
					}, nil)

				report := &domain.DailyReport{ReportID: "r6"}
				mockReporter.EXPECT().
					GenerateDailyReport("client-6", gomock.Any()).
					Return(report, nil)

				mockChat.EXPECT().
					SendDailyReport("https://chat.example/hook", report).
					Return(assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service := newService(tt.chatEnabled)
			service.syncAllDailyReports()

			assert.False(t, service.syncRunning)
			assert.False(t, service.lastSyncCompletedAt.IsZero())
		})
	}
}

// A interface do serviço de relatórios usada pelo agendador é a mesma do
// handler HTTP
var _ reporting.Reporter = (*reportingmocks.MockReporter)(nil)
