package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"

	"github.com/wootools/wooadmin/pkg/audit"
	"github.com/wootools/wooadmin/pkg/format"
	"github.com/wootools/wooadmin/pkg/locales"
	"github.com/wootools/wooadmin/pkg/settings"
)

// handleCallback routes a button press by its callback data token. List
// tokens carry the page number, mutation tokens carry the target ids and
// pending values.
func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID
	data := cb.Data

	switch {
	case data == "toggle_low_stock":
		b.toggleLowStock(ctx, cb)
	case data == "toggle_new_orders":
		b.toggleNewOrders(ctx, cb)
	case data == "set_threshold":
		b.promptAwait(chatID, awaitThreshold, locales.ThresholdPrompt)
	case data == "watch_product":
		b.promptAwait(chatID, awaitWatchProduct, locales.WatchPrompt)
	case data == "set_currency":
		b.promptAwait(chatID, awaitCurrency, locales.CurrencyPrompt)
	case data == "toggle_lang":
		b.toggleLang(ctx, cb)
	case strings.HasPrefix(data, "products_"):
		b.showProductsPage(ctx, chatID, messageID, pageOf(data))
	case strings.HasPrefix(data, "orders_"):
		b.showOrdersPage(ctx, chatID, messageID, pageOf(data))
	case strings.HasPrefix(data, "customers_"):
		b.showCustomersPage(ctx, chatID, messageID, pageOf(data))
	case strings.HasPrefix(data, "vars_"):
		b.showVariations(ctx, chatID, data)
	case strings.HasPrefix(data, "update_"):
		b.applyVariationUpdate(ctx, cb)
	case strings.HasPrefix(data, "status_"):
		b.applyOrderStatus(ctx, cb)
	case strings.HasPrefix(data, "order_"):
		b.showOrder(ctx, chatID, data)
	default:
		b.reply(chatID, "⚠️ Unknown action.", nil)
	}
}

func (b *Bot) toggleLowStock(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	var enabled bool
	b.settingsStoreUpdate(func(s *settings.Settings) {
		s.NotifyLowStock = !s.NotifyLowStock
		enabled = s.NotifyLowStock
	})
	b.reply(cb.Message.Chat.ID, fmt.Sprintf(locales.Get(b.lang(), locales.ToggleLowStock), enabledText(enabled)), nil)
	b.record(ctx, cb.From.ID, audit.KindSettingChange, fmt.Sprintf("notify_low_stock=%v", enabled))
}

func (b *Bot) toggleNewOrders(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	var enabled bool
	b.settingsStoreUpdate(func(s *settings.Settings) {
		s.NotifyNewOrders = !s.NotifyNewOrders
		enabled = s.NotifyNewOrders
	})
	b.reply(cb.Message.Chat.ID, fmt.Sprintf(locales.Get(b.lang(), locales.ToggleNewOrders), enabledText(enabled)), nil)
	b.record(ctx, cb.From.ID, audit.KindSettingChange, fmt.Sprintf("notify_new_orders=%v", enabled))
}

// toggleLang flips the interface language and confirms in the new language
func (b *Bot) toggleLang(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	var next locales.Lang
	b.settingsStoreUpdate(func(s *settings.Settings) {
		next = locales.Toggle(locales.Lang(s.Language))
		s.Language = string(next)
	})
	b.reply(cb.Message.Chat.ID, fmt.Sprintf(locales.Get(next, locales.LangSet), locales.DisplayName(next)), nil)
	b.record(ctx, cb.From.ID, audit.KindSettingChange, fmt.Sprintf("language=%s", next))
}

// promptAwait sends a localized prompt and arms the awaiting-input mode for
// the chat; a new prompt replaces any previous pending mode.
func (b *Bot) promptAwait(chatID int64, mode awaitMode, key locales.Key) {
	b.await[chatID] = mode
	b.reply(chatID, locales.Get(b.lang(), key), nil)
}

func (b *Bot) showProductsPage(ctx context.Context, chatID int64, messageID, page int) {
	st := b.settings.Get()
	products, err := b.store.Products(ctx)
	if err != nil {
		b.reply(chatID, "⚠️ Failed to fetch products. Check your store connection.", nil)
		return
	}
	text, kb := format.ProductsPage(products, b.variationsFor(ctx, format.VisibleProducts(products, page)), page, st.Currency)
	b.edit(chatID, messageID, text, kb)
}

func (b *Bot) showOrdersPage(ctx context.Context, chatID int64, messageID, page int) {
	orders, err := b.store.Orders(ctx, recentOrdersLimit)
	if err != nil {
		b.reply(chatID, "⚠️ Failed to fetch orders. Check your store connection.", nil)
		return
	}
	text, kb := format.OrdersPage(orders, page, b.settings.Get().Currency)
	b.edit(chatID, messageID, text, kb)
}

func (b *Bot) showCustomersPage(ctx context.Context, chatID int64, messageID, page int) {
	customers, err := b.store.Customers(ctx)
	if err != nil {
		b.reply(chatID, "⚠️ Failed to fetch customers. Check your store connection.", nil)
		return
	}
	counts := b.orderCountsFor(ctx, format.VisibleCustomers(customers, page))
	text, kb := format.CustomersPage(customers, counts, page, b.settings.Get().Currency)
	b.edit(chatID, messageID, text, kb)
}

func (b *Bot) showVariations(ctx context.Context, chatID int64, data string) {
	productID, err := strconv.ParseInt(strings.TrimPrefix(data, "vars_"), 10, 64)
	if err != nil {
		b.reply(chatID, "⚠️ Unknown action.", nil)
		return
	}
	variations, err := b.store.Variations(ctx, productID)
	if err != nil {
		b.reply(chatID, "⚠️ Failed to fetch variations.", nil)
		return
	}
	b.reply(chatID, format.VariationsList(productID, variations, b.settings.Get().Currency), nil)
}

// applyVariationUpdate handles "update_<pid>_<vid>_<price|None>_<stock|None>"
// tokens produced by the variation picker.
func (b *Bot) applyVariationUpdate(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	parts := strings.Split(cb.Data, "_")
	if len(parts) != 5 {
		b.reply(chatID, "⚠️ Unknown action.", nil)
		return
	}

	productID, err1 := strconv.ParseInt(parts[1], 10, 64)
	variationID, err2 := strconv.ParseInt(parts[2], 10, 64)
	if err1 != nil || err2 != nil {
		b.reply(chatID, "⚠️ Unknown action.", nil)
		return
	}

	var price *decimal.Decimal
	if parts[3] != "None" {
		parsed, err := decimal.NewFromString(parts[3])
		if err != nil {
			b.reply(chatID, "⚠️ Unknown action.", nil)
			return
		}
		price = &parsed
	}
	var stock *int
	if parts[4] != "None" {
		parsed, err := strconv.Atoi(parts[4])
		if err != nil {
			b.reply(chatID, "⚠️ Unknown action.", nil)
			return
		}
		stock = &parsed
	}

	if err := b.store.UpdateProduct(ctx, productID, variationID, price, stock); err != nil {
		b.reply(chatID, fmt.Sprintf("📦 Variation %d: Update failed: %v", variationID, err), nil)
		return
	}
	b.reply(chatID, fmt.Sprintf("📦 Variation %d: Update successful!", variationID), nil)
	b.record(ctx, cb.From.ID, audit.KindProductUpdate,
		fmt.Sprintf("product %d variation %d: price=%v stock=%v", productID, variationID, price, stock))
}

// applyOrderStatus handles "status_<oid>_<status>" buttons and re-renders the
// order details message in place.
func (b *Bot) applyOrderStatus(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	parts := strings.SplitN(strings.TrimPrefix(cb.Data, "status_"), "_", 2)
	if len(parts) != 2 {
		b.reply(chatID, "⚠️ Unknown action.", nil)
		return
	}
	orderID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		b.reply(chatID, "⚠️ Unknown action.", nil)
		return
	}
	status := parts[1]

	if err := b.store.UpdateOrderStatus(ctx, orderID, status); err != nil {
		b.reply(chatID, fmt.Sprintf("⚠️ Failed to update order %d: %v", orderID, err), nil)
		return
	}
	b.record(ctx, cb.From.ID, audit.KindOrderStatus, fmt.Sprintf("order %d: status=%s", orderID, status))

	order, err := b.store.GetOrder(ctx, orderID)
	if err != nil {
		b.reply(chatID, "⚠️ Failed to refresh order details after update.", nil)
		return
	}
	text, kb := format.OrderDetails(order, b.settings.Get().Currency)
	b.edit(chatID, cb.Message.MessageID, text, kb)
}

func (b *Bot) showOrder(ctx context.Context, chatID int64, data string) {
	orderID, err := strconv.ParseInt(strings.TrimPrefix(data, "order_"), 10, 64)
	if err != nil {
		b.reply(chatID, "⚠️ Unknown action.", nil)
		return
	}
	order, err := b.store.GetOrder(ctx, orderID)
	if err != nil {
		b.reply(chatID, fmt.Sprintf("⚠️ Order ID %d not found or failed to fetch.", orderID), nil)
		return
	}
	text, kb := format.OrderDetails(order, b.settings.Get().Currency)
	b.reply(chatID, text, kb)
}

// pageOf extracts the page number from tokens like "products_2", zero on any
// parse failure.
func pageOf(data string) int {
	idx := strings.LastIndex(data, "_")
	if idx < 0 {
		return 0
	}
	page, err := strconv.Atoi(data[idx+1:])
	if err != nil || page < 0 {
		return 0
	}
	return page
}
