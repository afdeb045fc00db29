package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-report-api/infrastructure/integrator/chat"
	"github.com/vfg2006/commerce-report-api/infrastructure/repository"
	"github.com/vfg2006/commerce-report-api/internal/config"
	"github.com/vfg2006/commerce-report-api/internal/domain"
	"github.com/vfg2006/commerce-report-api/internal/usecases/reporting"
	"github.com/vfg2006/commerce-report-api/internal/usecases/resolving"
	"github.com/vfg2006/commerce-report-api/pkg/utils"
)

// DailyReportSyncConfig representa a configuração do agendador do
// relatório diário
type DailyReportSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// DailyReportSyncService gera o relatório de T-1 de todas as contas ativas
// e entrega nos webhooks configurados. Conta sem dados do dia é pulada com
// aviso: a ingestão atrasada de uma conta não pode derrubar as demais.
type DailyReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              DailyReportSyncConfig
	appConfig           *config.Config
	accountRepo         repository.AccountRepository
	reportService       reporting.Reporter
	chatService         chat.ChatIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDailyReportSyncService cria uma nova instância do serviço de
// sincronização de relatórios diários
func NewDailyReportSyncService(
	accountRepo repository.AccountRepository,
	reportService reporting.Reporter,
	chatService chat.ChatIntegrator,
	appConfig *config.Config,
) *DailyReportSyncService {
	syncConfig := DailyReportSyncConfig{
		CronSchedule:      appConfig.DailyReportSync.CronSchedule,
		MaxConcurrentJobs: appConfig.DailyReportSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.DailyReportSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios diários carregada")

	return &DailyReportSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		appConfig:     appConfig,
		accountRepo:   accountRepo,
		reportService: reportService,
		chatService:   chatService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *DailyReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de relatórios diários desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios diários")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllDailyReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de relatórios diários: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios diários")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllDailyReports gera e entrega o relatório de ontem (T-1) para todas
// as contas ativas
func (s *DailyReportSyncService) syncAllDailyReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatórios diários já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	reportDate := utils.Yesterday()

	logrus.WithField("report_date", reportDate.Format(time.DateOnly)).
		Info("Iniciando geração de relatórios diários para todas as contas ativas")

	accounts, err := s.accountRepo.ListAccounts([]domain.AccountStatus{domain.AccountStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para geração de relatórios")
		return
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para geração de relatórios")
		return
	}

	maxConcurrent := s.config.MaxConcurrentJobs
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	semaphore := make(chan struct{}, maxConcurrent)

	wg := sync.WaitGroup{}
	for _, account := range accounts {
		wg.Add(1)

		go func(acc *domain.Account) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			s.processAccountReport(acc, reportDate)
		}(account)
	}

	wg.Wait()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(accounts),
		"date":     reportDate.Format(time.DateOnly),
	}).Info("Geração de relatórios diários concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processAccountReport gera e entrega o relatório de uma conta
func (s *DailyReportSyncService) processAccountReport(acc *domain.Account, reportDate time.Time) {
	report, err := s.reportService.GenerateDailyReport(acc.ExternalID, reportDate)
	if err != nil {
		if errors.Is(err, resolving.ErrNoDailyFacts) {
			logrus.WithFields(logrus.Fields{
				"account_id": acc.ID,
				"date":       reportDate.Format(time.DateOnly),
			}).Warn("View diária ainda sem dados para a conta, relatório pulado")
			return
		}

		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"date":       reportDate.Format(time.DateOnly),
			"error":      err.Error(),
		}).Error("Erro ao gerar relatório diário para a conta")
		return
	}

	if !s.appConfig.Chat.Enabled {
		logrus.WithField("account_id", acc.ID).Debug("Entrega via chat desabilitada, relatório gerado sem push")
		return
	}

	if acc.WebhookURL == nil || *acc.WebhookURL == "" {
		logrus.WithField("account_id", acc.ID).Debug("Conta sem webhook configurado, relatório gerado sem push")
		return
	}

	if err := s.chatService.SendDailyReport(*acc.WebhookURL, report); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"report_id":  report.ReportID,
			"error":      err.Error(),
		}).Error("Erro ao entregar relatório diário no webhook")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id": acc.ID,
		"report_id":  report.ReportID,
		"date":       reportDate.Format(time.DateOnly),
	}).Info("Relatório diário gerado e entregue com sucesso")
}

// TriggerManualSync inicia manualmente uma geração de relatórios diários
func (s *DailyReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatórios diários já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de relatórios diários")
	go s.syncAllDailyReports()
}

// GetStatus retorna o status atual do agendador
func (s *DailyReportSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"chat_delivery_enabled":  s.appConfig.Chat.Enabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
