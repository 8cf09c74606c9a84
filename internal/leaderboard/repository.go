package leaderboard

import "context"

// Repository is the contract for the prediction-leaderboard document.
// Entries are created lazily by AddPrize on an account's first payout.
type Repository interface {
	// Entries returns a snapshot of the full document.
	Entries(ctx context.Context) (map[string]Entry, error)

	// AddPrize accumulates prize coins and the award counter for id.
	AddPrize(ctx context.Context, id string, prize int64, award Award) error
}
