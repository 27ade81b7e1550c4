package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/nikfrants/biketransfer/internal/domain"
)

// TelegramNotifier forwards every submitted application to the
// operator chats. Delivery is best-effort: a failed notification is
// logged, never surfaced to the user who submitted.
type TelegramNotifier struct {
	bot          *tgbotapi.BotAPI
	adminChatIDs []int64
	logger       logger.Logger
}

func NewTelegramNotifier(bot *tgbotapi.BotAPI, adminChatIDs []int64, logger logger.Logger) *TelegramNotifier {
	if len(adminChatIDs) == 0 {
		logger.Warn("no admin chat ids configured, application notifications disabled")
	}
	return &TelegramNotifier{bot: bot, adminChatIDs: adminChatIDs, logger: logger}
}

func (n *TelegramNotifier) NotifyApplicationCreated(ctx context.Context, profile *domain.ClientProfile, app *domain.Application) {
	var b strings.Builder
	fmt.Fprintf(&b, "*Новая заявка #%s*\n\n", app.ID)
	fmt.Fprintf(&b, "Событие: %s\n", app.EventName)
	fmt.Fprintf(&b, "Пункт: %s\n", app.PointName)
	fmt.Fprintf(&b, "Дата: %s\n", app.SelectedDate)
	fmt.Fprintf(&b, "Время: %s\n", app.SelectedTime)
	if app.PreRepair {
		fmt.Fprintf(&b, "Предварительный ремонт: %s\n", app.PreRepairComment)
	} else {
		b.WriteString("Предварительный ремонт: не требуется\n")
	}

	if profile != nil {
		fmt.Fprintf(&b, "\nКлиент: %s\n", profile.FullName)
		fmt.Fprintf(&b, "Телефон: %s\n", profile.PhoneNumber)
		if profile.Username != "" {
			fmt.Fprintf(&b, "Telegram: @%s\n", profile.Username)
		}
	} else {
		fmt.Fprintf(&b, "\nКлиент: user_id %d (профиль не найден)\n", app.UserID)
	}

	n.send(ctx, b.String(), app.ID)
}

func (n *TelegramNotifier) send(ctx context.Context, text, appID string) {
	if n.bot == nil || len(n.adminChatIDs) == 0 {
		n.logger.Debug("notification skipped (no recipients)", logger.String("application_id", appID))
		return
	}

	for _, chatID := range n.adminChatIDs {
		if err := ctx.Err(); err != nil {
			n.logger.Debug("notification skipped (context cancelled)",
				logger.String("application_id", appID),
			)
			return
		}

		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = "Markdown"

		if _, err := n.bot.Send(msg); err != nil {
			n.logger.Error("failed to send admin notification",
				logger.Int64("chat_id", chatID),
				logger.String("application_id", appID),
				logger.String("error", err.Error()),
			)
		}
	}
}
