package format

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/wootools/wooadmin/pkg/store"
)

// OrdersPage renders one page of recent orders with pagination buttons
func OrdersPage(orders []store.Order, page int, currency string) (string, *tgbotapi.InlineKeyboardMarkup) {
	if len(orders) == 0 {
		return "No recent orders found.", nil
	}

	start, end, ok := pageBounds(len(orders), page)
	if !ok {
		return "No more orders to show.", nil
	}

	symbol := CurrencySymbol(currency)
	var sb strings.Builder
	sb.WriteString("📦 **Recent Orders**\n\n")
	for _, o := range orders[start:end] {
		sb.WriteString(fmt.Sprintf("ID: %d | Customer: %s\n", o.ID, personName(o.Billing.FirstName, o.Billing.LastName)))
		sb.WriteString(fmt.Sprintf("Total: %s%s | Status: %s\n\n", symbol, orDefault(o.Total), capitalize(orDefault(o.Status))))
	}
	sb.WriteString(fmt.Sprintf("Page %d of %d", page+1, totalPages(len(orders))))

	var rows [][]tgbotapi.InlineKeyboardButton
	if row := paginationRow("orders", page, end < len(orders)); row != nil {
		rows = append(rows, row)
	}
	return sb.String(), markup(rows)
}

// OrderDetails renders a single order with status transition buttons for
// every status except the current one.
func OrderDetails(order *store.Order, currency string) (string, *tgbotapi.InlineKeyboardMarkup) {
	symbol := CurrencySymbol(currency)

	date := "N/A"
	if order.DateCreated != "" {
		date = strings.SplitN(order.DateCreated, "T", 2)[0]
	}

	address := strings.Trim(fmt.Sprintf("%s, %s, %s %s",
		order.Shipping.Address1, order.Shipping.City, order.Shipping.State, order.Shipping.Postcode), ", ")
	if strings.TrimSpace(address) == "" {
		address = "Not provided"
	}

	items := make([]string, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		items = append(items, fmt.Sprintf("- %s (Qty: %d, %s%s)", orDefault(item.Name), item.Quantity, symbol, orDefault(item.Total)))
	}
	itemsText := "No items"
	if len(items) > 0 {
		itemsText = strings.Join(items, "\n")
	}

	text := fmt.Sprintf("📦 **Order Details - ID: %d**\n\n"+
		"Customer: %s\n"+
		"Status: %s\n"+
		"Total: %s%s\n"+
		"Date: %s\n\n"+
		"**Shipping Address:**\n%s\n\n"+
		"**Items:**\n%s",
		order.ID,
		personName(order.Billing.FirstName, order.Billing.LastName),
		capitalize(orDefault(order.Status)),
		symbol, orDefault(order.Total),
		date, address, itemsText)

	var row []tgbotapi.InlineKeyboardButton
	for _, status := range store.OrderStatuses {
		if status == order.Status {
			continue
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(capitalize(status), fmt.Sprintf("status_%d_%s", order.ID, status)))
	}
	if len(row) == 0 {
		return text, nil
	}
	return text, markup([][]tgbotapi.InlineKeyboardButton{row})
}
