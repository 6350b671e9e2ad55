package main

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xaenox/tutor-bot/internal/bot"
	"github.com/xaenox/tutor-bot/internal/storage"
	"github.com/xaenox/tutor-bot/internal/tutor"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		if cfg.Telegram.Token == "" {
			return errors.New("telegram token is required (set TELEGRAM_TOKEN or telegram.token)")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store := storage.NewMemoryStorage(cfg.Session.MaxTurns)
		defer store.Close()

		b, err := bot.New(cfg.Telegram.Token, cfg.Telegram.PollTimeout, store, tutor.NewDefault(log), log)
		if err != nil {
			log.Error("Failed to create bot", zap.Error(err))
			return err
		}

		log.Info("Bot started", zap.Int("max_turns", cfg.Session.MaxTurns))
		return b.Start(ctx)
	},
}
