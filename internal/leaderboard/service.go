package leaderboard

import (
	"context"

	"github.com/stonk-bot/stonk_bot/internal/rank"
)

// Service exposes ordered views over the prediction leaderboard.
type Service struct {
	repo Repository
}

// NewService builds a leaderboard service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Row is one ranked leaderboard row.
type Row struct {
	AccountID  string `json:"account_id"`
	PrizeTotal int64  `json:"prize_total"`
	Awards     Awards `json:"awards"`
}

// Top returns the n accounts with the highest prize totals, descending, ties
// broken on ascending account id.
func (s *Service) Top(ctx context.Context, n int) ([]Row, error) {
	entries, err := s.repo.Entries(ctx)
	if err != nil {
		return nil, err
	}

	scored := make([]rank.Entry, 0, len(entries))
	for id, entry := range entries {
		scored = append(scored, rank.Entry{ID: id, Score: entry.PrizeTotal})
	}

	rows := make([]Row, 0, n)
	for _, top := range rank.Top(scored, n) {
		entry := entries[top.ID]
		rows = append(rows, Row{AccountID: top.ID, PrizeTotal: entry.PrizeTotal, Awards: entry.Awards})
	}
	return rows, nil
}
