package predictions

import "context"

// Repository is the contract for the open-predictions document.
type Repository interface {
	// Open lists the open predictions in submission order.
	Open(ctx context.Context) ([]Prediction, error)

	// Add appends a prediction, enforcing the per-account cap and the
	// one-entry-per-method rule atomically.
	Add(ctx context.Context, p Prediction) error

	// Clear empties the book.
	Clear(ctx context.Context) error
}
