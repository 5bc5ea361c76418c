package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/efparfum/perfumaria-api/internal/config"
)

// Backuper é o contrato de cópia de segurança do armazenamento local.
type Backuper interface {
	Backup(path string) error
}

// BackupService copia o arquivo de dados para um destino datado no horário
// agendado e apaga as cópias mais antigas que o limite de retenção. É um
// reforço além do contrato original de persistência, não uma garantia de
// atomicidade das escritas.
type BackupService struct {
	scheduler *gocron.Scheduler
	store     Backuper
	config    config.Backup
	runMutex  sync.Mutex
}

func NewBackupService(store Backuper, cfg *config.Config) *BackupService {
	return &BackupService{
		scheduler: gocron.NewScheduler(time.Local),
		store:     store,
		config:    cfg.Backup,
	}
}

func (s *BackupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Backup automático desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de backup")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Run(); err != nil {
			logrus.WithError(err).Error("Erro no backup do arquivo de dados")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o backup: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de backup")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa um backup imediato e aplica a retenção.
func (s *BackupService) Run() error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	name := fmt.Sprintf("perfumaria-%s.db", time.Now().Format("20060102-150405"))
	target := filepath.Join(s.config.Dir, name)

	if err := s.store.Backup(target); err != nil {
		return err
	}

	logrus.WithField("path", target).Info("Backup concluído")

	return s.prune()
}

// prune remove as cópias excedentes, da mais antiga para a mais nova.
func (s *BackupService) prune() error {
	if s.config.Keep <= 0 {
		return nil
	}

	entries, err := os.ReadDir(s.config.Dir)
	if err != nil {
		return err
	}

	backups := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), "perfumaria-") {
			backups = append(backups, entry.Name())
		}
	}

	if len(backups) <= s.config.Keep {
		return nil
	}

	sort.Strings(backups)
	for _, name := range backups[:len(backups)-s.config.Keep] {
		if err := os.Remove(filepath.Join(s.config.Dir, name)); err != nil {
			logrus.WithError(err).WithField("backup", name).Warn("Erro ao remover backup antigo")
		}
	}

	return nil
}
