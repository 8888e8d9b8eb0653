package format

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wootools/wooadmin/pkg/store"
)

func makeOrders(n int) []store.Order {
	orders := make([]store.Order, n)
	for i := range orders {
		orders[i] = store.Order{
			ID:      int64(n - i), // newest first
			Status:  "processing",
			Total:   "25.00",
			Billing: store.Address{FirstName: "Jane", LastName: "Doe"},
		}
	}
	return orders
}

func TestOrdersPage(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		text, kb := OrdersPage(nil, 0, "USD")
		assert.Equal(t, "No recent orders found.", text)
		assert.Nil(t, kb)
	})

	t.Run("past the end", func(t *testing.T) {
		text, kb := OrdersPage(makeOrders(5), 1, "USD")
		assert.Equal(t, "No more orders to show.", text)
		assert.Nil(t, kb)
	})

	t.Run("renders page with pagination", func(t *testing.T) {
		text, kb := OrdersPage(makeOrders(8), 0, "USD")

		assert.Contains(t, text, "📦 **Recent Orders**")
		assert.Contains(t, text, "ID: 8 | Customer: Jane Doe")
		assert.Contains(t, text, "Total: $25.00 | Status: Processing")
		assert.Contains(t, text, "Page 1 of 2")

		require.NotNil(t, kb)
		row := kb.InlineKeyboard[0]
		require.Len(t, row, 1)
		assert.Equal(t, "orders_1", *row[0].CallbackData)
	})
}

func TestOrderDetails(t *testing.T) {
	t.Run("full order", func(t *testing.T) {
		order := &store.Order{
			ID:          15,
			Status:      "processing",
			Total:       "45.00",
			DateCreated: "2026-08-30T14:05:00",
			Billing:     store.Address{FirstName: "Jane", LastName: "Doe"},
			Shipping:    store.Address{Address1: "1 Main St", City: "Springfield", State: "IL", Postcode: "62701"},
			LineItems: []store.LineItem{
				{Name: "Widget", Quantity: 2, Total: "20.00"},
				{Name: "Gadget", Quantity: 1, Total: "25.00"},
			},
		}

		text, kb := OrderDetails(order, "USD")
		assert.Contains(t, text, "📦 **Order Details - ID: 15**")
		assert.Contains(t, text, "Customer: Jane Doe")
		assert.Contains(t, text, "Status: Processing")
		assert.Contains(t, text, "Date: 2026-08-30")
		assert.Contains(t, text, "1 Main St, Springfield, IL 62701")
		assert.Contains(t, text, "- Widget (Qty: 2, $20.00)")
		assert.Contains(t, text, "- Gadget (Qty: 1, $25.00)")

		// one button per status except the current one
		require.NotNil(t, kb)
		require.Len(t, kb.InlineKeyboard, 1)
		row := kb.InlineKeyboard[0]
		require.Len(t, row, 3)
		labels := make([]string, len(row))
		datas := make([]string, len(row))
		for i, b := range row {
			labels[i] = b.Text
			datas[i] = *b.CallbackData
		}
		assert.Equal(t, []string{"Pending", "Completed", "Cancelled"}, labels)
		assert.Equal(t, []string{"status_15_pending", "status_15_completed", "status_15_cancelled"}, datas)
	})

	t.Run("empty fields fall back", func(t *testing.T) {
		order := &store.Order{ID: 16, Status: "pending"}

		text, _ := OrderDetails(order, "USD")
		assert.Contains(t, text, "Customer: Unknown")
		assert.Contains(t, text, "Date: N/A")
		assert.Contains(t, text, "Not provided")
		assert.Contains(t, text, "No items")
	})
}

func TestOrdersPage_EntryCountPerPage(t *testing.T) {
	// every page shows min(5, n-5p) entries
	orders := makeOrders(12)
	for page, want := range map[int]int{0: 5, 1: 5, 2: 2} {
		t.Run(fmt.Sprintf("page %d", page), func(t *testing.T) {
			text, _ := OrdersPage(orders, page, "USD")
			count := 0
			for id := 1; id <= 12; id++ {
				if strings.Contains(text, fmt.Sprintf("ID: %d |", id)) {
					count++
				}
			}
			assert.Equal(t, want, count)
		})
	}
}
