package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionSweeper interface {
	CleanupIdle(ttl time.Duration) []int64
}

// Scheduler periodically drops sessions that have been idle longer
// than the configured TTL. Abandoned conversations must not pile up
// in memory forever.
type Scheduler struct {
	sessions sessionSweeper
	interval time.Duration
	idleTTL  time.Duration
	logger   logger.Logger
}

func New(
	sessions sessionSweeper,
	interval time.Duration,
	idleTTL time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sessions: sessions,
		interval: interval,
		idleTTL:  idleTTL,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("session sweeper started",
		logger.Duration("interval", s.interval),
		logger.Duration("idle_ttl", s.idleTTL),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session sweeper stopped")
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	dropped := s.sessions.CleanupIdle(s.idleTTL)
	if len(dropped) == 0 {
		return
	}

	s.logger.Info("idle sessions dropped",
		logger.Int("count", len(dropped)),
	)
	for _, userID := range dropped {
		s.logger.Debug("session expired",
			logger.Int64("user_id", userID),
		)
	}
}
