package timezones

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/stonk-bot/stonk_bot/internal/storage"
)

// ErrNoAssignment indicates the account has no timezone assigned yet.
var ErrNoAssignment = errors.New("no timezone assigned")

// Service persists per-account timezone assignments as their own JSON
// document (account id -> zone code).
type Service struct {
	mu   sync.Mutex
	path string
	doc  map[string]string
}

// Open loads the assignments document at path. An absent file bootstraps an
// empty document.
func Open(path string) (*Service, error) {
	doc := map[string]string{}
	if err := storage.ReadJSON(path, &doc); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("open timezones: %w", err)
		}
		doc = map[string]string{}
	}
	return &Service{path: path, doc: doc}, nil
}

// Assignment describes the outcome of an assignment change.
type Assignment struct {
	Zone     Zone
	Previous *Zone // nil on first assignment
}

// Assign records the zone for id and reports the previous one, if any.
func (s *Service) Assign(_ context.Context, id, code string) (Assignment, error) {
	zone, err := Resolve(code)
	if err != nil {
		return Assignment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var previous *Zone
	if prevCode, ok := s.doc[id]; ok {
		if prevZone, err := Resolve(prevCode); err == nil {
			previous = &prevZone
		}
	}

	prev, had := s.doc[id]
	s.doc[id] = zone.Code
	if err := storage.WriteJSON(s.path, s.doc); err != nil {
		if had {
			s.doc[id] = prev
		} else {
			delete(s.doc, id)
		}
		return Assignment{}, err
	}

	return Assignment{Zone: zone, Previous: previous}, nil
}

// Current returns the zone assigned to id.
func (s *Service) Current(_ context.Context, id string) (Zone, error) {
	s.mu.Lock()
	code, ok := s.doc[id]
	s.mu.Unlock()

	if !ok {
		return Zone{}, ErrNoAssignment
	}
	return Resolve(code)
}
