package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	actionUsecase "github.com/johnquangdev/team-ops/internal/usecase/action"
)

// Sweeper periodically marks stale action items overdue. Reads already
// sweep lazily before listing; the scheduler keeps stored data fresh even
// when nobody is looking.
type Sweeper struct {
	cron          *cron.Cron
	actionService actionUsecase.Service
	interval      time.Duration
	logger        *zap.Logger
}

// NewSweeper creates a background overdue sweeper
func NewSweeper(actionService actionUsecase.Service, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		cron:          cron.New(),
		actionService: actionService,
		interval:      interval,
		logger:        logger,
	}
}

// Start schedules the sweep and begins running it
func (s *Sweeper) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return fmt.Errorf("failed to schedule overdue sweep: %w", err)
	}

	s.cron.Start()
	s.logger.Info("overdue sweeper started", zap.Duration("interval", s.interval))
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("overdue sweeper stopped")
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	swept, err := s.actionService.SweepOverdue(ctx)
	if err != nil {
		s.logger.Error("overdue sweep failed", zap.Error(err))
		return
	}
	if swept > 0 {
		s.logger.Info("actions marked overdue", zap.Int64("count", swept))
	}
}
