// Package bot implements the Telegram command dispatcher: the update loop,
// the admin allow-list gate, and the command, callback and free-text
// handlers that drive the store gateway.
package bot

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"

	"github.com/wootools/wooadmin/pkg/locales"
	"github.com/wootools/wooadmin/pkg/settings"
	"github.com/wootools/wooadmin/pkg/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the gateway to the WooCommerce API
type Store interface {
	Products(ctx context.Context) ([]store.Product, error)
	SearchProducts(ctx context.Context, query string) ([]store.Product, error)
	GetProduct(ctx context.Context, id int64) (*store.Product, error)
	Variations(ctx context.Context, productID int64) ([]store.Variation, error)
	UpdateProduct(ctx context.Context, productID, variationID int64, price *decimal.Decimal, stock *int) error
	Orders(ctx context.Context, limit int) ([]store.Order, error)
	GetOrder(ctx context.Context, id int64) (*store.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) error
	Customers(ctx context.Context) ([]store.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*store.Customer, error)
	CustomerOrders(ctx context.Context, customerID int64) ([]store.Order, error)
}

// api is the slice of tgbotapi.BotAPI the handlers need
type api interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Recorder appends audit events, may be nil
type Recorder interface {
	Record(ctx context.Context, actor, kind, detail string) error
}

// number of recent orders shown by /orders and used by /stats
const (
	recentOrdersLimit = 10
	statsOrdersLimit  = 50
)

// Bot handles Telegram updates for the store admin console
type Bot struct {
	api         api
	store       Store
	settings    *settings.Store
	audit       Recorder
	admins      map[int64]struct{}
	alertChatID int64

	// per-chat awaiting-input mode; updates are handled serially so plain
	// map access is safe
	await map[int64]awaitMode
}

// Params holds bot dependencies
type Params struct {
	API         api
	Store       Store
	Settings    *settings.Store
	Audit       Recorder // optional
	AdminIDs    []int64
	AlertChatID int64
}

// New creates the bot dispatcher
func New(params Params) *Bot {
	admins := make(map[int64]struct{}, len(params.AdminIDs))
	for _, id := range params.AdminIDs {
		admins[id] = struct{}{}
	}
	return &Bot{
		api:         params.API,
		store:       params.Store,
		settings:    params.Settings,
		audit:       params.Audit,
		admins:      admins,
		alertChatID: params.AlertChatID,
		await:       map[int64]awaitMode{},
	}
}

// Run consumes updates until the context is canceled. Updates are processed
// one at a time, matching the single-conversation model; only the low-stock
// monitor runs concurrently with this loop.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// SendAlert delivers a message to the configured operator chat. Used by the
// low-stock monitor.
func (b *Bot) SendAlert(text string) error {
	msg := tgbotapi.NewMessage(b.alertChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("send alert: %w", err)
	}
	return nil
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallbackUpdate(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.Text != "":
		b.handleMessageUpdate(ctx, update.Message)
	}
}

func (b *Bot) handleMessageUpdate(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	if !b.authorized(msg.From.ID) {
		lgr.Printf("[WARN] unauthorized access from user %d", msg.From.ID)
		b.reply(msg.Chat.ID, locales.Get(b.lang(), locales.NotAuthorized), nil)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	b.handleText(ctx, msg)
}

func (b *Bot) handleCallbackUpdate(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// acknowledge to stop the client spinner
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		lgr.Printf("[WARN] failed to answer callback: %v", err)
	}

	if cb.Message == nil {
		return
	}
	if !b.authorized(cb.From.ID) {
		lgr.Printf("[WARN] unauthorized callback from user %d", cb.From.ID)
		b.edit(cb.Message.Chat.ID, cb.Message.MessageID, locales.Get(b.lang(), locales.NotAuthorized), nil)
		return
	}
	b.handleCallback(ctx, cb)
}

// authorized reports whether the user id is on the admin allow-list; this is
// the only access-control boundary in the system.
func (b *Bot) authorized(userID int64) bool {
	_, ok := b.admins[userID]
	return ok
}

// lang returns the configured interface language
func (b *Bot) lang() locales.Lang {
	return locales.Lang(b.settings.Get().Language)
}

// reply sends a new Markdown message to the chat
func (b *Bot) reply(chatID int64, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	if _, err := b.api.Send(msg); err != nil {
		lgr.Printf("[WARN] failed to send message to chat %d: %v", chatID, err)
	}
}

// edit replaces an existing message, used by callback handlers
func (b *Bot) edit(chatID int64, messageID int, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewEditMessageText(chatID, messageID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		lgr.Printf("[WARN] failed to edit message %d in chat %d: %v", messageID, chatID, err)
	}
}

// record writes an audit event for an admin action when a recorder is wired
func (b *Bot) record(ctx context.Context, userID int64, kind, detail string) {
	if b.audit == nil {
		return
	}
	if err := b.audit.Record(ctx, fmt.Sprintf("admin:%d", userID), kind, detail); err != nil {
		lgr.Printf("[WARN] failed to record audit event %s: %v", kind, err)
	}
}
