package predictions

import (
	"context"
	"time"
)

// Gate reports whether submissions are currently accepted. The market
// calendar satisfies this.
type Gate interface {
	SubmissionsOpen(t time.Time) bool
}

// Service accepts and lists predictions for the current settlement window.
type Service struct {
	repo Repository
	gate Gate
	now  func() time.Time
}

// NewService builds a predictions service.
func NewService(repo Repository, gate Gate) *Service {
	return &Service{repo: repo, gate: gate, now: time.Now}
}

// Submit records a prediction. Submissions are rejected while the market is
// open; the per-account cap and duplicate-method rules are enforced by the
// repository.
func (s *Service) Submit(ctx context.Context, p Prediction) error {
	if s.gate != nil && !s.gate.SubmissionsOpen(s.now()) {
		return ErrSubmissionsClosed
	}
	return s.repo.Add(ctx, p)
}

// Open lists the open predictions in submission order.
func (s *Service) Open(ctx context.Context) ([]Prediction, error) {
	return s.repo.Open(ctx)
}
