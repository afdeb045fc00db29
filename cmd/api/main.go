package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-report-api/infrastructure/integrator/chat"
	"github.com/vfg2006/commerce-report-api/infrastructure/integrator/chat/chatclient"
	"github.com/vfg2006/commerce-report-api/infrastructure/repository"
	"github.com/vfg2006/commerce-report-api/internal/api"
	"github.com/vfg2006/commerce-report-api/internal/config"
	"github.com/vfg2006/commerce-report-api/internal/scheduler"
	"github.com/vfg2006/commerce-report-api/internal/usecases/reporting"
	"github.com/vfg2006/commerce-report-api/internal/usecases/resolving"
	"github.com/vfg2006/commerce-report-api/internal/usecases/validating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	overrideRepo := repository.NewOverrideRepository(pgConn)
	targetRepo := repository.NewTargetRepository(pgConn)
	warehouseRepo := repository.NewWarehouseRepository(pgConn, cfg.Warehouse)

	resolver := resolving.NewResolver(warehouseRepo, overrideRepo)
	validator := validating.NewValidator(warehouseRepo)

	reportService := reporting.NewService(
		resolver,
		validator,
		warehouseRepo,
		accountRepo,
		targetRepo,
	)

	chatClient := chatclient.NewClient(cfg)
	chatService := chat.New(cfg, chatClient)

	// Inicializa o agendador de envio de relatórios diários
	dailyReportSyncService := scheduler.NewDailyReportSyncService(
		accountRepo,
		reportService,
		chatService,
		cfg,
	)

	// Inicia o agendador em background
	if err := dailyReportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatórios diários")
	} else {
		logrus.Info("Agendador de relatórios diários iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		accountRepo,
		overrideRepo,
		targetRepo,
		dailyReportSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
