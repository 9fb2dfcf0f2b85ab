package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hoanvu/gophim/internal/controllers"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler keeps the catalog cache warm so user-facing requests rarely
// wait on the upstream API
type Scheduler struct {
	cron    *cron.Cron
	catalog *controllers.CatalogController
	logger  *logrus.Logger
}

// NewScheduler creates a new scheduler
func NewScheduler(catalog *controllers.CatalogController, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		catalog: catalog,
		logger:  logger,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.logger.Info("Starting scheduler")

	// Every 6 hours: refresh taxonomies
	_, err := s.cron.AddFunc("0 */6 * * *", func() {
		s.warmTaxonomies()
	})
	if err != nil {
		return fmt.Errorf("failed to add taxonomy warm job: %w", err)
	}

	// Every 30 minutes: keep the first newest-movies page fresh
	_, err = s.cron.AddFunc("*/30 * * * *", func() {
		s.warmLatest()
	})
	if err != nil {
		return fmt.Errorf("failed to add latest warm job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started")

	// Warm immediately on startup
	go func() {
		s.warmTaxonomies()
		s.warmLatest()
	}()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	s.cron.Stop()
}

// retryPolicy bounds warm attempts; user-facing fetches never retry, but
// background warming may
func retryPolicy() backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 2 * time.Second
	return backoff.WithMaxRetries(policy, 2)
}

func (s *Scheduler) warmTaxonomies() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	err := backoff.Retry(func() error {
		return s.catalog.RefreshTaxonomies(ctx)
	}, retryPolicy())
	if err != nil {
		s.logger.WithError(err).Warn("Taxonomy warm failed")
		return
	}
	s.logger.Debug("Taxonomy warm completed")
}

func (s *Scheduler) warmLatest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	err := backoff.Retry(func() error {
		return s.catalog.RefreshLatest(ctx)
	}, retryPolicy())
	if err != nil {
		s.logger.WithError(err).Warn("Latest listing warm failed")
		return
	}
	s.logger.Debug("Latest listing warm completed")
}
