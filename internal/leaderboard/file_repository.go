package leaderboard

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/stonk-bot/stonk_bot/internal/storage"
)

// FileRepository keeps the leaderboard document in memory behind one mutex
// and rewrites the backing JSON file after every mutation.
type FileRepository struct {
	mu   sync.Mutex
	path string
	doc  map[string]Entry
}

// OpenFileRepository loads the leaderboard document at path. An absent file
// bootstraps an empty document.
func OpenFileRepository(path string) (*FileRepository, error) {
	doc := map[string]Entry{}
	if err := storage.ReadJSON(path, &doc); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("open leaderboard: %w", err)
		}
		doc = map[string]Entry{}
	}
	return &FileRepository{path: path, doc: doc}, nil
}

// Entries returns a copy of the full document.
func (r *FileRepository) Entries(_ context.Context) (map[string]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make(map[string]Entry, len(r.doc))
	for id, entry := range r.doc {
		snapshot[id] = entry
	}
	return snapshot, nil
}

// AddPrize accumulates prize coins and the award counter for id.
func (r *FileRepository) AddPrize(_ context.Context, id string, prize int64, award Award) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, exists := r.doc[id]
	if !exists {
		prev = Entry{}
	}

	entry := prev
	entry.PrizeTotal += prize
	switch award {
	case AwardFirst:
		entry.Awards.First++
	case AwardSecond:
		entry.Awards.Second++
	case AwardThird:
		entry.Awards.Third++
	case AwardMayo:
		entry.Awards.Mayo++
	}

	r.doc[id] = entry
	if err := storage.WriteJSON(r.path, r.doc); err != nil {
		if exists {
			r.doc[id] = prev
		} else {
			delete(r.doc, id)
		}
		return err
	}
	return nil
}
