package settlement

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/stonk-bot/stonk_bot/internal/market"
)

// Scheduler drives one settlement per trading day. It computes the next
// settlement instant from the market calendar and sleeps until exactly then,
// so there is no polling and no re-entrancy window. If a cycle overruns, the
// next instant is computed from completion time: late cycles are skipped,
// never queued.
type Scheduler struct {
	svc    *Service
	cal    market.Calendar
	logger *slog.Logger
}

// NewScheduler builds a settlement scheduler.
func NewScheduler(svc *Service, cal market.Calendar, logger *slog.Logger) *Scheduler {
	return &Scheduler{svc: svc, cal: cal, logger: logger}
}

// Run blocks until ctx is cancelled, settling at each computed instant.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		next := s.cal.NextSettlement(time.Now())
		s.logger.Info("settlement scheduled", "at", next)

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		report, err := s.svc.Settle(ctx)
		switch {
		case errors.Is(err, market.ErrPriceUnavailable):
			// Predictions roll over uncleared; the next cycle retries.
			s.logger.Warn("settlement cycle aborted", "error", err)
		case err != nil:
			s.logger.Error("settlement failed", "error", err)
		default:
			s.logger.Info("settlement complete",
				"id", report.ID,
				"symbol", report.Symbol,
				"close_price", report.ReferencePrice,
				"settled", len(report.Results))
		}
	}
}
