package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/efparfum/perfumaria-api/infrastructure/database/localdb"
	"github.com/efparfum/perfumaria-api/infrastructure/repository"
	"github.com/efparfum/perfumaria-api/internal/api"
	"github.com/efparfum/perfumaria-api/internal/config"
	"github.com/efparfum/perfumaria-api/internal/scheduler"
	"github.com/efparfum/perfumaria-api/internal/usecases/authenticating"
	"github.com/efparfum/perfumaria-api/internal/usecases/catalog"
	"github.com/efparfum/perfumaria-api/internal/usecases/crm"
	"github.com/efparfum/perfumaria-api/internal/usecases/reporting"
	"github.com/efparfum/perfumaria-api/internal/usecases/selling"
	appsettings "github.com/efparfum/perfumaria-api/internal/usecases/settings"
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

	store := openStore(cfg.Storage)
	defer store.Close()

	customerRepo := repository.NewCustomerRepository(store)
	productRepo := repository.NewProductRepository(store)
	saleRepo := repository.NewSaleRepository(store)
	installmentRepo := repository.NewInstallmentRepository(store)
	settingsRepo := repository.NewSettingsRepository(store)

	// Popula os dados de demonstração na primeira execução
	if cfg.Seed.Enabled {
		seeder := repository.NewSeeder(
			store,
			customerRepo,
			productRepo,
			saleRepo,
			installmentRepo,
			cfg.Seed.IncludeSalesData,
		)
		if err := seeder.Run(); err != nil {
			logrus.WithError(err).Fatal("Erro ao popular dados iniciais")
		}
	}

	authenticator := authenticating.NewService(settingsRepo, cfg)

	sellingService := selling.NewService(saleRepo, installmentRepo, productRepo, customerRepo)
	reportingService := reporting.NewService(saleRepo, productRepo, installmentRepo)
	customerService := crm.NewService(customerRepo, saleRepo, productRepo)
	catalogService := catalog.NewService(productRepo)
	settingsService := appsettings.NewService(settingsRepo, cfg.Storage.MaxImageBytes)

	// Inicializa os agendadores em background
	lowStockAlertService := scheduler.NewLowStockAlertService(productRepo, cfg)
	if err := lowStockAlertService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de alerta de estoque baixo")
	} else {
		logrus.Info("Agendador de alerta de estoque baixo iniciado com sucesso")
	}

	backupService := scheduler.NewBackupService(store, cfg)
	if err := backupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de backup")
	} else {
		logrus.Info("Agendador de backup iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		sellingService,
		reportingService,
		customerService,
		catalogService,
		settingsService,
		authenticator,
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
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// openStore abre o arquivo de dados local
func openStore(storageCfg config.Storage) *localdb.BoltStore {
	store, err := localdb.NewBoltStore(storageCfg.Path, storageCfg.MaxValueBytes)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o arquivo de dados local")
	}

	logrus.WithFields(logrus.Fields{
		"path": storageCfg.Path,
	}).Info("Arquivo de dados local aberto com sucesso")
	return store
}
