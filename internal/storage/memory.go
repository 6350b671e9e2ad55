package storage

import (
	"context"
	"sync"

	"github.com/xaenox/tutor-bot/internal/models"
)

type MemoryStorage struct {
	mu       sync.RWMutex
	maxTurns int
	sessions map[int64][]models.ConversationTurn
}

// NewMemoryStorage keeps at most maxTurns turns per chat, dropping the oldest.
func NewMemoryStorage(maxTurns int) *MemoryStorage {
	if maxTurns <= 0 {
		maxTurns = 1
	}
	return &MemoryStorage{
		maxTurns: maxTurns,
		sessions: make(map[int64][]models.ConversationTurn),
	}
}

func (s *MemoryStorage) AppendTurns(ctx context.Context, chatID int64, turns ...models.ConversationTurn) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	session := append(s.sessions[chatID], turns...)
	if over := len(session) - s.maxTurns; over > 0 {
		session = append([]models.ConversationTurn(nil), session[over:]...)
	}
	s.sessions[chatID] = session
	return nil
}

// History returns a copy of the chat's turns, oldest first.
func (s *MemoryStorage) History(ctx context.Context, chatID int64) ([]models.ConversationTurn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	session := s.sessions[chatID]
	out := make([]models.ConversationTurn, len(session))
	copy(out, session)
	return out, nil
}

func (s *MemoryStorage) Reset(ctx context.Context, chatID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
	return nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}

var _ Storage = (*MemoryStorage)(nil)
