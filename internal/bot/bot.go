package bot

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/nikfrants/biketransfer/internal/domain"
	"github.com/nikfrants/biketransfer/internal/session"
)

// Flow is the conversation controller the shell drives. Every inbound
// event turns into exactly one of these calls.
type Flow interface {
	HandleCommand(ctx context.Context, sess *domain.Session, cmd domain.Command) (*domain.Screen, error)
	HandleAction(ctx context.Context, sess *domain.Session, act domain.Action) (*domain.Screen, error)
	HandleText(ctx context.Context, sess *domain.Session, text string) (*domain.Screen, error)
}

// Bot is the Telegram transport shell: it long-polls updates, maps them
// to typed commands, actions and text, and renders the screens the
// controller returns. All flow decisions live in the controller.
type Bot struct {
	api      *tgbotapi.BotAPI
	flow     Flow
	sessions *session.Store
	logger   logger.Logger
}

func New(api *tgbotapi.BotAPI, flow Flow, sessions *session.Store, logger logger.Logger) *Bot {
	return &Bot{
		api:      api,
		flow:     flow,
		sessions: sessions,
		logger:   logger,
	}
}

// Run consumes the long-poll update channel until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30

	updates := b.api.GetUpdatesChan(cfg)
	b.logger.Info("telegram bot started", logger.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("telegram bot stopped")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate processes one inbound update. Updates for the same user
// are serialized through the per-user session lock; a panic in one
// update must not take down the poll loop.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic while handling update",
				logger.Int("update_id", update.UpdateID),
				logger.Any("panic", r),
			)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	userID := msg.From.ID

	unlock := b.sessions.Lock(userID)
	defer unlock()

	sess := b.sessions.GetOrCreate(userID, msg.Chat.ID)
	sess.Username = msg.From.UserName

	var (
		screen *domain.Screen
		err    error
	)
	if msg.IsCommand() {
		cmd, ok := parseCommand(msg.Command())
		if !ok {
			b.logger.Debug("unknown command ignored",
				logger.Int64("user_id", userID),
				logger.String("command", msg.Command()),
			)
			return
		}
		screen, err = b.flow.HandleCommand(ctx, sess, cmd)
	} else {
		screen, err = b.flow.HandleText(ctx, sess, msg.Text)
	}
	b.sessions.Touch(sess)

	if err != nil {
		b.logger.Error("failed to handle message",
			logger.Int64("user_id", userID),
			logger.String("state", string(sess.State)),
			logger.String("error", err.Error()),
		)
		b.renderNew(sess.ChatID, errorScreen())
		return
	}
	if screen != nil {
		b.renderNew(sess.ChatID, screen)
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	if cb.Message == nil {
		b.answerCallback(cb.ID, "")
		return
	}
	act, err := DecodeAction(cb.Data)
	if err != nil {
		b.logger.Warn("malformed callback token",
			logger.Int64("user_id", userID),
			logger.String("token", cb.Data),
		)
		b.answerCallback(cb.ID, "")
		return
	}

	unlock := b.sessions.Lock(userID)
	defer unlock()

	sess := b.sessions.GetOrCreate(userID, cb.Message.Chat.ID)
	sess.Username = cb.From.UserName

	screen, err := b.flow.HandleAction(ctx, sess, act)
	b.sessions.Touch(sess)

	if err != nil {
		b.logger.Error("failed to handle action",
			logger.Int64("user_id", userID),
			logger.String("state", string(sess.State)),
			logger.String("error", err.Error()),
		)
		b.answerCallback(cb.ID, "")
		b.renderNew(sess.ChatID, errorScreen())
		return
	}
	if screen == nil {
		b.answerCallback(cb.ID, "")
		return
	}

	// Alert-only screens keep the tapped message as is.
	b.answerCallback(cb.ID, screen.Alert)
	if screen.Text == "" {
		return
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		return
	}
	b.renderEdit(sess.ChatID, cb.Message.MessageID, screen)
}

func (b *Bot) answerCallback(callbackID, text string) {
	answer := tgbotapi.NewCallback(callbackID, text)
	if _, err := b.api.Request(answer); err != nil {
		b.logger.Debug("failed to answer callback",
			logger.String("error", err.Error()),
		)
	}
}

func parseCommand(name string) (domain.Command, bool) {
	switch strings.ToLower(name) {
	case "start":
		return domain.CommandStart, true
	case "cancel":
		return domain.CommandCancel, true
	case "exit":
		return domain.CommandExit, true
	}
	return "", false
}

func errorScreen() *domain.Screen {
	return &domain.Screen{
		Text: "Произошла ошибка. Попробуйте ещё раз или начните заново: /start",
	}
}
