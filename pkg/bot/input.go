package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/wootools/wooadmin/pkg/audit"
	"github.com/wootools/wooadmin/pkg/locales"
	"github.com/wootools/wooadmin/pkg/settings"
)

// awaitMode marks what free-form input the chat is waiting for after a
// settings prompt. At most one mode is active per chat.
type awaitMode int

const (
	awaitNone awaitMode = iota
	awaitThreshold
	awaitWatchProduct
	awaitCurrency
)

// handleText consumes a plain message as the answer to the pending prompt.
// Invalid input re-reports the error and keeps the mode armed, a valid answer
// clears it. Messages with no pending prompt are ignored.
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch b.await[chatID] {
	case awaitThreshold:
		b.setThreshold(ctx, msg)
	case awaitWatchProduct:
		b.setWatchedProduct(ctx, msg)
	case awaitCurrency:
		b.setCurrency(ctx, msg)
	}
}

func (b *Bot) setThreshold(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	threshold, err := strconv.Atoi(strings.TrimSpace(msg.Text))
	if err != nil || threshold < 0 {
		b.reply(chatID, locales.Get(b.lang(), locales.ThresholdError), nil)
		return
	}

	b.settingsStoreUpdate(func(s *settings.Settings) { s.LowStockThreshold = threshold })
	delete(b.await, chatID)
	b.reply(chatID, fmt.Sprintf(locales.Get(b.lang(), locales.ThresholdSet), threshold), nil)
	b.record(ctx, msg.From.ID, audit.KindSettingChange, fmt.Sprintf("low_stock_threshold=%d", threshold))
}

// setWatchedProduct verifies the id against the live catalog before saving
func (b *Bot) setWatchedProduct(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	productID, err := strconv.ParseInt(strings.TrimSpace(msg.Text), 10, 64)
	if err != nil {
		b.reply(chatID, locales.Get(b.lang(), locales.WatchError), nil)
		return
	}

	products, err := b.store.Products(ctx)
	if err != nil {
		b.reply(chatID, locales.Get(b.lang(), locales.WatchError), nil)
		return
	}
	found := false
	for _, p := range products {
		if p.ID == productID {
			found = true
			break
		}
	}
	if !found {
		b.reply(chatID, locales.Get(b.lang(), locales.WatchError), nil)
		return
	}

	var threshold int
	b.settingsStoreUpdate(func(s *settings.Settings) {
		s.WatchedProductID = strconv.FormatInt(productID, 10)
		threshold = s.LowStockThreshold
	})
	delete(b.await, chatID)
	b.reply(chatID, fmt.Sprintf(locales.Get(b.lang(), locales.WatchSet), productID, threshold), nil)
	b.record(ctx, msg.From.ID, audit.KindSettingChange, fmt.Sprintf("watched_product_id=%d", productID))
}

func (b *Bot) setCurrency(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	code := strings.ToUpper(strings.TrimSpace(msg.Text))
	if !settings.ValidCurrency(code) {
		b.reply(chatID, locales.Get(b.lang(), locales.CurrencyError), nil)
		return
	}

	b.settingsStoreUpdate(func(s *settings.Settings) { s.Currency = code })
	delete(b.await, chatID)
	b.reply(chatID, fmt.Sprintf(locales.Get(b.lang(), locales.CurrencySet), code), nil)
	b.record(ctx, msg.From.ID, audit.KindSettingChange, fmt.Sprintf("currency=%s", code))
}
