package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/nikfrants/biketransfer/internal/domain"
)

// buildKeyboard lays out the screen options one button per row.
func buildKeyboard(options []domain.Option) (tgbotapi.InlineKeyboardMarkup, error) {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options))
	for _, opt := range options {
		token, err := EncodeAction(opt.Action)
		if err != nil {
			return tgbotapi.InlineKeyboardMarkup{}, fmt.Errorf("option %q: %w", opt.Label, err)
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(opt.Label, token),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...), nil
}

// renderNew sends the screen as a fresh message.
func (b *Bot) renderNew(chatID int64, screen *domain.Screen) {
	msg := tgbotapi.NewMessage(chatID, screen.Text)
	if len(screen.Options) > 0 {
		keyboard, err := buildKeyboard(screen.Options)
		if err != nil {
			b.logger.Error("failed to build keyboard",
				logger.Int64("chat_id", chatID),
				logger.String("error", err.Error()),
			)
			return
		}
		msg.ReplyMarkup = keyboard
	}

	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
	}
}

// renderEdit replaces the text and keyboard of the message the user
// tapped. Telegram rejects edits that change nothing; that rejection
// is benign here, the screen the user sees is already correct.
func (b *Bot) renderEdit(chatID int64, messageID int, screen *domain.Screen) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, screen.Text)
	if len(screen.Options) > 0 {
		keyboard, err := buildKeyboard(screen.Options)
		if err != nil {
			b.logger.Error("failed to build keyboard",
				logger.Int64("chat_id", chatID),
				logger.String("error", err.Error()),
			)
			return
		}
		edit.ReplyMarkup = &keyboard
	}

	if _, err := b.api.Send(edit); err != nil {
		if isNotModified(err) {
			return
		}
		b.logger.Error("failed to edit message",
			logger.Int64("chat_id", chatID),
			logger.Int("message_id", messageID),
			logger.String("error", err.Error()),
		)
	}
}

func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
