// Package scheduler contém os serviços agendados de rotina da loja.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/efparfum/perfumaria-api/infrastructure/repository"
	"github.com/efparfum/perfumaria-api/internal/config"
	"github.com/efparfum/perfumaria-api/internal/usecases/reporting"
)

// LowStockAlertService varre o catálogo no horário agendado e registra os
// produtos na linha de reposição ou abaixo dela.
type LowStockAlertService struct {
	scheduler   *gocron.Scheduler
	productRepo repository.ProductRepository
	config      config.LowStockAlert
	runMutex    sync.Mutex
	lastRunAt   time.Time
}

func NewLowStockAlertService(productRepo repository.ProductRepository, cfg *config.Config) *LowStockAlertService {
	return &LowStockAlertService{
		scheduler:   gocron.NewScheduler(time.Local),
		productRepo: productRepo,
		config:      cfg.LowStockAlert,
	}
}

func (s *LowStockAlertService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Alerta de estoque desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de alerta de estoque")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Run(); err != nil {
			logrus.WithError(err).Error("Erro na varredura de estoque")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o alerta de estoque: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de alerta de estoque")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa uma varredura imediata.
func (s *LowStockAlertService) Run() error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	s.lastRunAt = time.Now()

	products, err := s.productRepo.List()
	if err != nil {
		return err
	}

	low := reporting.LowStockProducts(products)
	if len(low) == 0 {
		logrus.Info("Varredura de estoque: nenhum produto abaixo do mínimo")
		return nil
	}

	for _, product := range low {
		logrus.WithFields(logrus.Fields{
			"product_id": product.ID,
			"product":    product.Name,
			"stock":      product.Stock,
			"min_stock":  product.MinStock,
		}).Warn("Produto na linha de reposição")
	}

	return nil
}
