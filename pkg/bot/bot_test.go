package bot

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wootools/wooadmin/pkg/bot/mocks"
	"github.com/wootools/wooadmin/pkg/settings"
	"github.com/wootools/wooadmin/pkg/store"
)

const (
	adminID    = int64(1001)
	strangerID = int64(6666)
	chatID     = int64(2002)
)

// fakeAPI captures outgoing telegram calls
type fakeAPI struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// sentTexts extracts message texts from captured sends, both new and edited
func (f *fakeAPI) sentTexts() []string {
	var texts []string
	for _, c := range f.sent {
		switch msg := c.(type) {
		case tgbotapi.MessageConfig:
			texts = append(texts, msg.Text)
		case tgbotapi.EditMessageTextConfig:
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

func (f *fakeAPI) lastText(t *testing.T) string {
	t.Helper()
	texts := f.sentTexts()
	require.NotEmpty(t, texts, "no messages sent")
	return texts[len(texts)-1]
}

func newTestBot(t *testing.T, storeMock *mocks.StoreMock) (*Bot, *fakeAPI, *settings.Store) {
	t.Helper()
	st, err := settings.NewStore(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)

	api := &fakeAPI{}
	b := New(Params{
		API:         api,
		Store:       storeMock,
		Settings:    st,
		AdminIDs:    []int64{adminID},
		AlertChatID: 500,
	})
	return b, api, st
}

func message(userID int64, text string) *tgbotapi.Message {
	msg := &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: userID, FirstName: "Pat"},
		Chat:      &tgbotapi.Chat{ID: chatID},
		Text:      text,
	}
	if strings.HasPrefix(text, "/") {
		msg.Entities = []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(strings.Fields(text)[0])},
		}
	}
	return msg
}

func callback(userID int64, data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:      "cb-1",
		From:    &tgbotapi.User{ID: userID},
		Message: message(userID, "previous"),
		Data:    data,
	}
}

func TestBot_Authorization(t *testing.T) {
	t.Run("unauthorized message gets denial only", func(t *testing.T) {
		storeMock := &mocks.StoreMock{}
		b, api, _ := newTestBot(t, storeMock)

		b.handleUpdate(context.Background(), tgbotapi.Update{Message: message(strangerID, "/products")})

		texts := api.sentTexts()
		require.Len(t, texts, 1)
		assert.Contains(t, texts[0], "not authorized")
		assert.Empty(t, storeMock.ProductsCalls())
	})

	t.Run("unauthorized callback acked then denied", func(t *testing.T) {
		storeMock := &mocks.StoreMock{}
		b, api, st := newTestBot(t, storeMock)

		b.handleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: callback(strangerID, "toggle_low_stock")})

		assert.Len(t, api.requests, 1) // callback answered
		assert.Contains(t, api.lastText(t), "not authorized")
		assert.True(t, st.Get().NotifyLowStock, "setting must not flip")
	})

	t.Run("admin passes the gate", func(t *testing.T) {
		storeMock := &mocks.StoreMock{}
		b, api, _ := newTestBot(t, storeMock)

		b.handleUpdate(context.Background(), tgbotapi.Update{Message: message(adminID, "/start")})

		assert.Contains(t, api.lastText(t), "Hello Pat!")
	})
}

func TestBot_Help(t *testing.T) {
	b, api, _ := newTestBot(t, &mocks.StoreMock{})

	b.handleCommand(context.Background(), message(adminID, "/help"))

	text := api.lastText(t)
	for _, cmd := range []string{"/products", "/search", "/update", "/orders", "/customers", "/stats", "/bulkupdate"} {
		assert.Contains(t, text, cmd)
	}
}

func TestBot_Settings(t *testing.T) {
	b, api, _ := newTestBot(t, &mocks.StoreMock{})

	b.handleCommand(context.Background(), message(adminID, "/settings"))

	require.Len(t, api.sent, 1)
	msg, ok := api.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Contains(t, msg.Text, "Notification Settings")
	assert.Contains(t, msg.Text, "Low Stock Threshold: 5 units")
	assert.Contains(t, msg.Text, "Watched Product: None")

	kb, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, kb.InlineKeyboard, 3)
	assert.Equal(t, "toggle_low_stock", *kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "زبان: فارسی", kb.InlineKeyboard[2][1].Text) // offers the other language
}

func TestBot_Update(t *testing.T) {
	t.Run("simple product updated", func(t *testing.T) {
		storeMock := &mocks.StoreMock{
			GetProductFunc: func(ctx context.Context, id int64) (*store.Product, error) {
				return &store.Product{ID: id, Name: "Widget", Type: "simple"}, nil
			},
			UpdateProductFunc: func(ctx context.Context, productID, variationID int64, price *decimal.Decimal, stock *int) error {
				return nil
			},
		}
		b, api, _ := newTestBot(t, storeMock)

		b.handleCommand(context.Background(), message(adminID, "/update 42 19.99 -"))

		assert.Equal(t, "📦 Update successful!", api.lastText(t))

		calls := storeMock.UpdateProductCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, int64(42), calls[0].ProductID)
		assert.Equal(t, int64(0), calls[0].VariationID)
		require.NotNil(t, calls[0].Price)
		assert.Equal(t, "19.99", calls[0].Price.String())
		assert.Nil(t, calls[0].Stock, "dash skips stock")
	})

	t.Run("invalid input", func(t *testing.T) {
		b, api, _ := newTestBot(t, &mocks.StoreMock{})

		b.handleCommand(context.Background(), message(adminID, "/update abc 19.99"))

		assert.Contains(t, api.lastText(t), "Invalid input")
	})

	t.Run("product not found", func(t *testing.T) {
		storeMock := &mocks.StoreMock{
			GetProductFunc: func(ctx context.Context, id int64) (*store.Product, error) {
				return nil, assert.AnError
			},
		}
		b, api, _ := newTestBot(t, storeMock)

		b.handleCommand(context.Background(), message(adminID, "/update 42 19.99"))

		assert.Contains(t, api.lastText(t), "Product ID 42 not found")
	})

	t.Run("variable product gets picker", func(t *testing.T) {
		storeMock := &mocks.StoreMock{
			GetProductFunc: func(ctx context.Context, id int64) (*store.Product, error) {
				return &store.Product{ID: id, Name: "Shirt", Type: "variable"}, nil
			},
			VariationsFunc: func(ctx context.Context, productID int64) ([]store.Variation, error) {
				return []store.Variation{{ID: 71, Price: "15.00"}}, nil
			},
		}
		b, api, _ := newTestBot(t, storeMock)

		b.handleCommand(context.Background(), message(adminID, "/update 7 19.99 3"))

		require.Len(t, api.sent, 1)
		msg := api.sent[0].(tgbotapi.MessageConfig)
		assert.Contains(t, msg.Text, "Select a variation for Shirt")

		kb := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
		assert.Equal(t, "update_7_71_19.99_3", *kb.InlineKeyboard[0][0].CallbackData)
		assert.Empty(t, storeMock.UpdateProductCalls(), "no direct update for variable product")
	})
}

func TestBot_SettingsCallbacks(t *testing.T) {
	t.Run("toggle low stock", func(t *testing.T) {
		b, api, st := newTestBot(t, &mocks.StoreMock{})

		b.handleCallback(context.Background(), callback(adminID, "toggle_low_stock"))

		assert.False(t, st.Get().NotifyLowStock)
		assert.Contains(t, api.lastText(t), "Low stock notifications set to: Disabled")

		b.handleCallback(context.Background(), callback(adminID, "toggle_low_stock"))
		assert.True(t, st.Get().NotifyLowStock)
	})

	t.Run("toggle language confirms in new language", func(t *testing.T) {
		b, api, st := newTestBot(t, &mocks.StoreMock{})

		b.handleCallback(context.Background(), callback(adminID, "toggle_lang"))

		assert.Equal(t, "fa", st.Get().Language)
		assert.Contains(t, api.lastText(t), "زبان تنظیم شد به Farsi")
	})

	t.Run("threshold prompt and input", func(t *testing.T) {
		b, api, st := newTestBot(t, &mocks.StoreMock{})

		b.handleCallback(context.Background(), callback(adminID, "set_threshold"))
		assert.Contains(t, api.lastText(t), "send the new low stock threshold")

		// invalid input keeps the prompt armed
		b.handleText(context.Background(), message(adminID, "lots"))
		assert.Contains(t, api.lastText(t), "valid number")
		assert.Equal(t, 5, st.Get().LowStockThreshold)

		b.handleText(context.Background(), message(adminID, "12"))
		assert.Contains(t, api.lastText(t), "threshold set to 12 units")
		assert.Equal(t, 12, st.Get().LowStockThreshold)

		// mode cleared, further text ignored
		before := len(api.sentTexts())
		b.handleText(context.Background(), message(adminID, "99"))
		assert.Len(t, api.sentTexts(), before)
		assert.Equal(t, 12, st.Get().LowStockThreshold)
	})

	t.Run("negative threshold rejected", func(t *testing.T) {
		b, api, st := newTestBot(t, &mocks.StoreMock{})

		b.handleCallback(context.Background(), callback(adminID, "set_threshold"))
		b.handleText(context.Background(), message(adminID, "-3"))

		assert.Contains(t, api.lastText(t), "valid number")
		assert.Equal(t, 5, st.Get().LowStockThreshold)
	})

	t.Run("currency input", func(t *testing.T) {
		b, api, st := newTestBot(t, &mocks.StoreMock{})

		b.handleCallback(context.Background(), callback(adminID, "set_currency"))

		// invalid code keeps the mode
		b.handleText(context.Background(), message(adminID, "GBP"))
		assert.Contains(t, api.lastText(t), "Invalid currency")
		assert.Equal(t, "USD", st.Get().Currency)

		// lower case accepted and stored upper
		b.handleText(context.Background(), message(adminID, "eur"))
		assert.Contains(t, api.lastText(t), "Currency set to EUR")
		assert.Equal(t, "EUR", st.Get().Currency)
	})

	t.Run("watch product validates against catalog", func(t *testing.T) {
		storeMock := &mocks.StoreMock{
			ProductsFunc: func(ctx context.Context) ([]store.Product, error) {
				return []store.Product{{ID: 15, Name: "Widget"}}, nil
			},
		}
		b, api, st := newTestBot(t, storeMock)

		b.handleCallback(context.Background(), callback(adminID, "watch_product"))

		b.handleText(context.Background(), message(adminID, "99"))
		assert.Contains(t, api.lastText(t), "valid product ID")
		assert.Empty(t, st.Get().WatchedProductID)

		b.handleText(context.Background(), message(adminID, "15"))
		assert.Contains(t, api.lastText(t), "Watching product ID 15 for stock ≤ 5")
		assert.Equal(t, "15", st.Get().WatchedProductID)
	})
}

func TestBot_ListCallbacks(t *testing.T) {
	t.Run("products page edit", func(t *testing.T) {
		storeMock := &mocks.StoreMock{
			ProductsFunc: func(ctx context.Context) ([]store.Product, error) {
				products := make([]store.Product, 8)
				for i := range products {
					products[i] = store.Product{ID: int64(i + 1), Name: "P", Type: "simple"}
				}
				return products, nil
			},
		}
		b, api, _ := newTestBot(t, storeMock)

		b.handleCallback(context.Background(), callback(adminID, "products_1"))

		require.Len(t, api.sent, 1)
		edit, ok := api.sent[0].(tgbotapi.EditMessageTextConfig)
		require.True(t, ok, "page flip edits in place")
		assert.Contains(t, edit.Text, "Page 2 of 2")
	})

	t.Run("status change re-renders order", func(t *testing.T) {
		current := "pending"
		storeMock := &mocks.StoreMock{
			UpdateOrderStatusFunc: func(ctx context.Context, id int64, status string) error {
				current = status
				return nil
			},
			GetOrderFunc: func(ctx context.Context, id int64) (*store.Order, error) {
				return &store.Order{ID: id, Status: current, Total: "10.00"}, nil
			},
		}
		b, api, _ := newTestBot(t, storeMock)

		b.handleCallback(context.Background(), callback(adminID, "status_15_completed"))

		calls := storeMock.UpdateOrderStatusCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, int64(15), calls[0].ID)
		assert.Equal(t, "completed", calls[0].Status)

		edit, ok := api.sent[0].(tgbotapi.EditMessageTextConfig)
		require.True(t, ok)
		assert.Contains(t, edit.Text, "Status: Completed")
	})

	t.Run("variation update callback", func(t *testing.T) {
		storeMock := &mocks.StoreMock{
			UpdateProductFunc: func(ctx context.Context, productID, variationID int64, price *decimal.Decimal, stock *int) error {
				return nil
			},
		}
		b, api, _ := newTestBot(t, storeMock)

		b.handleCallback(context.Background(), callback(adminID, "update_7_71_19.99_None"))

		assert.Contains(t, api.lastText(t), "Variation 71: Update successful!")

		calls := storeMock.UpdateProductCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, int64(7), calls[0].ProductID)
		assert.Equal(t, int64(71), calls[0].VariationID)
		require.NotNil(t, calls[0].Price)
		assert.Equal(t, "19.99", calls[0].Price.String())
		assert.Nil(t, calls[0].Stock)
	})
}

func TestBot_Search(t *testing.T) {
	t.Run("no query", func(t *testing.T) {
		b, api, _ := newTestBot(t, &mocks.StoreMock{})

		b.handleCommand(context.Background(), message(adminID, "/search"))

		assert.Contains(t, api.lastText(t), "provide a search term")
	})

	t.Run("no results", func(t *testing.T) {
		storeMock := &mocks.StoreMock{
			SearchProductsFunc: func(ctx context.Context, query string) ([]store.Product, error) {
				return nil, nil
			},
		}
		b, api, _ := newTestBot(t, storeMock)

		b.handleCommand(context.Background(), message(adminID, "/search purple hat"))

		assert.Contains(t, api.lastText(t), "No products found matching")
		calls := storeMock.SearchProductsCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "purple hat", calls[0].Query)
	})
}

func TestBot_BulkUpdate(t *testing.T) {
	t.Run("order status per id", func(t *testing.T) {
		storeMock := &mocks.StoreMock{
			UpdateOrderStatusFunc: func(ctx context.Context, id int64, status string) error {
				if id == 2 {
					return assert.AnError
				}
				return nil
			},
		}
		b, api, _ := newTestBot(t, storeMock)

		b.handleCommand(context.Background(), message(adminID, "/bulkupdate order_status completed 1 2 3"))

		texts := api.sentTexts()
		require.Len(t, texts, 3) // one line per order, failures do not stop the rest
		assert.Contains(t, texts[0], "Order 1: Order status updated to completed!")
		assert.Contains(t, texts[1], "Order 2: Update failed")
		assert.Contains(t, texts[2], "Order 3: Order status updated to completed!")
	})

	t.Run("invalid status rejected before any call", func(t *testing.T) {
		storeMock := &mocks.StoreMock{}
		b, api, _ := newTestBot(t, storeMock)

		b.handleCommand(context.Background(), message(adminID, "/bulkupdate order_status shipped 1 2"))

		assert.Contains(t, api.lastText(t), "Invalid status")
		assert.Empty(t, storeMock.UpdateOrderStatusCalls())
	})

	t.Run("product stock with variation suffix", func(t *testing.T) {
		storeMock := &mocks.StoreMock{
			UpdateProductFunc: func(ctx context.Context, productID, variationID int64, price *decimal.Decimal, stock *int) error {
				return nil
			},
		}
		b, api, _ := newTestBot(t, storeMock)

		b.handleCommand(context.Background(), message(adminID, "/bulkupdate product_stock 20 5 7-71"))

		texts := api.sentTexts()
		require.Len(t, texts, 2)
		assert.Contains(t, texts[0], "Product 5: Update successful!")
		assert.Contains(t, texts[1], "Variation 71: Update successful!")

		calls := storeMock.UpdateProductCalls()
		require.Len(t, calls, 2)
		assert.Equal(t, int64(5), calls[0].ProductID)
		assert.Equal(t, int64(0), calls[0].VariationID)
		assert.Equal(t, int64(7), calls[1].ProductID)
		assert.Equal(t, int64(71), calls[1].VariationID)
		require.NotNil(t, calls[0].Stock)
		assert.Equal(t, 20, *calls[0].Stock)
		assert.Nil(t, calls[0].Price)
	})

	t.Run("usage message on missing args", func(t *testing.T) {
		b, api, _ := newTestBot(t, &mocks.StoreMock{})

		b.handleCommand(context.Background(), message(adminID, "/bulkupdate order_status"))

		assert.Contains(t, api.lastText(t), "Usage: /bulkupdate")
	})
}

func TestBot_SendAlert(t *testing.T) {
	b, api, _ := newTestBot(t, &mocks.StoreMock{})

	err := b.SendAlert("stock warning")
	require.NoError(t, err)

	require.Len(t, api.sent, 1)
	msg := api.sent[0].(tgbotapi.MessageConfig)
	assert.Equal(t, int64(500), msg.ChatID)
	assert.Equal(t, "stock warning", msg.Text)
}
