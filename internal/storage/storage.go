package storage

import (
	"context"

	"github.com/xaenox/tutor-bot/internal/models"
)

// Storage keeps the turns a chat front-end shows back to its user.
// The tutor itself never reads them.
type Storage interface {
	AppendTurns(ctx context.Context, chatID int64, turns ...models.ConversationTurn) error
	History(ctx context.Context, chatID int64) ([]models.ConversationTurn, error)
	Reset(ctx context.Context, chatID int64) error
	Close() error
}
