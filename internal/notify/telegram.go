// Package notify posts a short summary of the strongest deals to a
// Telegram chat after a check run.
package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/mhollis/dealscout/internal/display"
	"github.com/mhollis/dealscout/internal/models"
)

// Only store and cross-store all-time lows are worth a ping.
const (
	maxSeverity = 1
	maxDeals    = 10
)

// Notifier sends deal summaries to a single Telegram chat.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *logrus.Logger
}

// New creates a new Notifier.
func New(token string, chatID int64, logger *logrus.Logger) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID, logger: logger}, nil
}

// SendDeals posts up to ten tier-0/1 results as one Markdown message. It is
// a no-op when no result is strong enough.
func (n *Notifier) SendDeals(results []models.DealResult, country string) error {
	sym := display.CurrencySymbol(country)

	var b strings.Builder
	count := 0
	for _, r := range results {
		if r.Tag.Severity > maxSeverity {
			continue
		}
		if count == maxDeals {
			break
		}
		fmt.Fprintf(&b, "• *%s* — %s%s (-%d%%, %s)\n",
			r.Name, sym, r.CurrentPrice.StringFixed(2), r.DiscountPercent, r.Tag.Label)
		count++
	}
	if count == 0 {
		return nil
	}

	msg := tgbotapi.NewMessage(n.chatID, "🔥 Wishlist price alert:\n"+b.String())
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram notification: %w", err)
	}

	n.logger.Infof("Sent %d deals to telegram chat %d", count, n.chatID)
	return nil
}
