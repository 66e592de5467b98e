// Package scheduler periodically reloads every open dashboard.
package scheduler

import (
	"context"
	"fmt"

	"space/explorer/internal/domain"
	"space/explorer/internal/page"
	"space/explorer/internal/service"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentRefreshes = 4

type Loader interface {
	LoadAll(ctx context.Context, sess service.Session) []domain.LoadOutcome
}

type Scheduler struct {
	registry *page.Registry
	loader   Loader
	schedule string
	cron     *cron.Cron
}

// New validates schedule. An empty schedule yields a scheduler that only
// refreshes on demand.
func New(schedule string, registry *page.Registry, loader Loader) (*Scheduler, error) {
	s := &Scheduler{
		registry: registry,
		loader:   loader,
		schedule: schedule,
	}
	if schedule == "" {
		return s, nil
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}

	logger := cron.PrintfLogger(log.StandardLogger())
	s.cron = cron.New(cron.WithLogger(logger), cron.WithChain(cron.SkipIfStillRunning(logger)))
	return s, nil
}

func (s *Scheduler) Enabled() bool {
	return s.cron != nil
}

// Run starts the cron loop and blocks until ctx is done, then waits for a
// refresh in progress to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.Enabled() {
		<-ctx.Done()
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, func() {
		s.RefreshNow(ctx)
	}); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	log.Infof("⏰ Dashboard refresh scheduled: %s", s.schedule)

	<-ctx.Done()
	<-s.cron.Stop().Done()
	log.Info("🛑 Refresh scheduler stopped")
	return nil
}

// RefreshNow drops idle sessions, then reloads every remaining board and
// returns how many were refreshed.
func (s *Scheduler) RefreshNow(ctx context.Context) int {
	if evicted := s.registry.EvictIdle(); evicted > 0 {
		log.Infof("🧹 Evicted %d idle dashboards", evicted)
	}

	errGroup := new(errgroup.Group)
	errGroup.SetLimit(maxConcurrentRefreshes)

	count := 0
	s.registry.Each(func(id string, b *page.Board) {
		if ctx.Err() != nil {
			return
		}
		count++
		errGroup.Go(func() error {
			s.loader.LoadAll(ctx, service.Session{ID: id, Target: b})
			return nil
		})
	})
	_ = errGroup.Wait()

	log.Infof("🔄 Refreshed %d dashboards", count)
	return count
}
