package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/xaenox/tutor-bot/internal/models"
	"github.com/xaenox/tutor-bot/internal/storage"
	"github.com/xaenox/tutor-bot/internal/tutor"
)

const (
	errorReply   = "Sorry, I encountered an error. Please try again."
	historyLimit = 10
	// Telegram rejects longer messages.
	maxMessageLen = 4096
)

// botAPI is the subset of *tgbotapi.BotAPI the bot uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Answerer interface {
	Answer(question string, history []models.ConversationTurn) tutor.Reply
}

type Bot struct {
	api         botAPI
	storage     storage.Storage
	tutor       Answerer
	logger      *zap.Logger
	pollTimeout int
	handlers    sync.WaitGroup
}

func New(token string, pollTimeout int, storage storage.Storage, tutor Answerer, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	logger.Info("Authorized on Telegram", zap.String("username", api.Self.UserName))

	return newBot(api, pollTimeout, storage, tutor, logger), nil
}

func newBot(api botAPI, pollTimeout int, storage storage.Storage, tutor Answerer, logger *zap.Logger) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{
		api:         api,
		storage:     storage,
		tutor:       tutor,
		logger:      logger,
		pollTimeout: pollTimeout,
	}
}

// Start long-polls for updates until ctx is cancelled. It returns once every
// message already being handled is done.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(u)
	defer b.handlers.Wait()
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.Chat == nil {
				continue
			}
			b.handlers.Add(1)
			go func(message *tgbotapi.Message) {
				defer b.handlers.Done()
				// In-flight answers finish even after shutdown starts.
				b.handleMessage(context.WithoutCancel(ctx), message)
			}(update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Panic while handling message",
				zap.Any("panic", r),
				zap.Stack("stack"))
			if message.Chat != nil {
				b.sendMessage(message.Chat.ID, errorReply)
			}
		}
	}()

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	content := strings.TrimSpace(message.Text)
	if content == "" {
		content = strings.TrimSpace(message.Caption)
	}
	if content == "" {
		b.sendMessage(message.Chat.ID, "Please send your question as text.")
		return
	}

	b.handleQuestion(ctx, message.Chat.ID, content)
}

// handleQuestion answers content and records both turns for /history. The
// accumulated turns are passed along the same way the web client re-sends them.
func (b *Bot) handleQuestion(ctx context.Context, chatID int64, content string) {
	history, err := b.storage.History(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to load history",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
		history = nil
	}

	reply := b.tutor.Answer(content, history)

	if err := b.storage.AppendTurns(ctx, chatID,
		models.UserTurn(content),
		models.AssistantTurn(reply.Answer)); err != nil {
		b.logger.Error("Failed to save turns",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.String("category", reply.Category.String()))
	}

	b.logger.Info("Question answered",
		zap.Int64("chat_id", chatID),
		zap.String("category", reply.Category.String()))
	b.sendMessage(chatID, plainText(reply.Answer))
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "help":
		b.handleHelp(message)
	case "history":
		b.handleHistory(ctx, message)
	case "reset":
		b.handleReset(ctx, message)
	default:
		b.sendMessage(message.Chat.ID, "Unknown command. Use /help to see available commands.")
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	welcome := `👋 Hello! I'm here to help you learn.

Ask me questions about:
• Math problems and concepts
• Science topics
• History and social studies
• Language and literature
• Study tips and strategies

💡 Tip: Be specific with your questions for the best answers!`

	b.sendMessage(message.Chat.ID, welcome)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	help := `Available commands:
/start - Start the bot
/help - Show this help message
/history - Show our recent conversation
/reset - Forget our conversation

Any other message is treated as a question.`

	b.sendMessage(message.Chat.ID, help)
}

func (b *Bot) handleHistory(ctx context.Context, message *tgbotapi.Message) {
	turns, err := b.storage.History(ctx, message.Chat.ID)
	if err != nil {
		b.logger.Error("Failed to get history",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
		b.sendMessage(message.Chat.ID, "Sorry, I couldn't retrieve our conversation.")
		return
	}

	if len(turns) == 0 {
		b.sendMessage(message.Chat.ID, "We haven't talked yet. Ask me anything!")
		return
	}

	if len(turns) > historyLimit {
		turns = turns[len(turns)-historyLimit:]
	}

	var sb strings.Builder
	sb.WriteString("Our recent conversation:\n")
	for _, turn := range turns {
		who := "You"
		if turn.Role == models.RoleAssistant {
			who = "Tutor"
		}
		fmt.Fprintf(&sb, "\n%s: %s\n", who, firstLine(turn.Content))
	}

	b.sendMessage(message.Chat.ID, sb.String())
}

func (b *Bot) handleReset(ctx context.Context, message *tgbotapi.Message) {
	if err := b.storage.Reset(ctx, message.Chat.ID); err != nil {
		b.logger.Error("Failed to reset history",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
		b.sendMessage(message.Chat.ID, errorReply)
		return
	}
	b.sendMessage(message.Chat.ID, "Done! Let's start fresh.")
}

func (b *Bot) sendMessage(chatID int64, text string) {
	if runes := []rune(text); len(runes) > maxMessageLen {
		text = string(runes[:maxMessageLen])
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

// plainText drops markdown bold markers so answers read cleanly without a parse mode.
func plainText(s string) string {
	return strings.ReplaceAll(s, "**", "")
}

func firstLine(s string) string {
	s = plainText(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
