package predictions

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/stonk-bot/stonk_bot/internal/storage"
)

// FileRepository keeps the open-predictions document in memory behind one
// mutex and rewrites the backing JSON file after every mutation.
type FileRepository struct {
	mu   sync.Mutex
	path string
	doc  document
}

// OpenFileRepository loads the predictions document at path. An absent file
// bootstraps an empty book.
func OpenFileRepository(path string) (*FileRepository, error) {
	doc := document{}
	if err := storage.ReadJSON(path, &doc); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("open predictions: %w", err)
		}
	}
	if doc.Predictions == nil {
		doc.Predictions = []Prediction{}
	}
	return &FileRepository{path: path, doc: doc}, nil
}

// Open lists the open predictions in submission order.
func (r *FileRepository) Open(_ context.Context) ([]Prediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Prediction, len(r.doc.Predictions))
	copy(out, r.doc.Predictions)
	return out, nil
}

// Add appends a prediction, enforcing per-account limits under the lock.
func (r *FileRepository) Add(_ context.Context, p Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, open := range r.doc.Predictions {
		if open.AccountID != p.AccountID {
			continue
		}
		if open.Method == p.Method {
			return ErrMethodAlreadyUsed
		}
		count++
	}
	if count >= MaxPerAccount {
		return ErrPredictionLimit
	}

	r.doc.Predictions = append(r.doc.Predictions, p)
	if err := storage.WriteJSON(r.path, r.doc); err != nil {
		r.doc.Predictions = r.doc.Predictions[:len(r.doc.Predictions)-1]
		return err
	}
	return nil
}

// Clear empties the book.
func (r *FileRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.doc.Predictions
	r.doc.Predictions = []Prediction{}
	if err := storage.WriteJSON(r.path, r.doc); err != nil {
		r.doc.Predictions = prev
		return err
	}
	return nil
}
