// Package history keeps the last few exchanges of each user in memory.
package history

import (
	"errors"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"productivity-assistant/internal/chatbot"
)

const (
	DefaultSize     = 10
	DefaultMaxUsers = 10000
)

var ErrInvalidSize = errors.New("history size and user bound must be positive")

// Store is a bounded, per-user conversation history. The least recently
// active users are evicted once maxUsers is reached.
type Store struct {
	mu    sync.Mutex
	size  int
	users *lru.Cache[string, []chatbot.Exchange]
}

var _ chatbot.HistoryStore = (*Store)(nil)

// New creates a Store keeping size exchanges for up to maxUsers users.
func New(size, maxUsers int) (*Store, error) {
	if size <= 0 || maxUsers <= 0 {
		return nil, ErrInvalidSize
	}
	users, err := lru.New[string, []chatbot.Exchange](maxUsers)
	if err != nil {
		return nil, err
	}
	return &Store{size: size, users: users}, nil
}

// Append records ex for userID, dropping the oldest exchange past the bound.
func (s *Store) Append(userID string, ex chatbot.Exchange) {
	if userID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, _ := s.users.Get(userID)
	next := make([]chatbot.Exchange, 0, s.size)
	if len(prev) >= s.size {
		prev = prev[len(prev)-s.size+1:]
	}
	next = append(next, prev...)
	next = append(next, ex)
	s.users.Add(userID, next)
}

// Recent returns userID's exchanges, oldest first. The slice is a copy.
func (s *Store) Recent(userID string) []chatbot.Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()

	exchanges, ok := s.users.Get(userID)
	if !ok {
		return nil
	}
	out := make([]chatbot.Exchange, len(exchanges))
	copy(out, exchanges)
	return out
}

// Clear forgets userID's history.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users.Remove(userID)
}

// Users returns the number of users with history.
func (s *Store) Users() int {
	return s.users.Len()
}
