package format

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/wootools/wooadmin/pkg/store"
)

// maxHistoryButtons caps the order-history buttons on the customer view
const maxHistoryButtons = 10

// CustomersPage renders one page of the customer list. Order counts are
// prefetched by the caller and passed by customer id.
func CustomersPage(customers []store.Customer, orderCounts map[int64]int, page int, currency string) (string, *tgbotapi.InlineKeyboardMarkup) {
	if len(customers) == 0 {
		return "No customers found.", nil
	}

	start, end, ok := pageBounds(len(customers), page)
	if !ok {
		return "No more customers to show.", nil
	}

	symbol := CurrencySymbol(currency)
	var sb strings.Builder
	sb.WriteString("👥 **Customer List**\n\n")
	for _, c := range customers[start:end] {
		sb.WriteString(fmt.Sprintf("ID: %d | %s\n", c.ID, personName(c.FirstName, c.LastName)))
		sb.WriteString(fmt.Sprintf("Email: %s | Total Spent: %s%s | Orders: %d\n\n",
			orDefault(c.Email), symbol, totalSpent(c.TotalSpent), orderCounts[c.ID]))
	}
	sb.WriteString(fmt.Sprintf("Page %d of %d", page+1, totalPages(len(customers))))

	var rows [][]tgbotapi.InlineKeyboardButton
	if row := paginationRow("customers", page, end < len(customers)); row != nil {
		rows = append(rows, row)
	}
	return sb.String(), markup(rows)
}

// VisibleCustomers returns the slice of customers shown on the given page,
// empty when the page is past the end. Used by callers to prefetch order
// counts for just the visible rows.
func VisibleCustomers(customers []store.Customer, page int) []store.Customer {
	start, end, ok := pageBounds(len(customers), page)
	if !ok {
		return nil
	}
	return customers[start:end]
}

// CustomerDetails renders a customer profile with their order history as
// buttons, one per order, capped at maxHistoryButtons.
func CustomerDetails(customer *store.Customer, orders []store.Order, currency string) (string, *tgbotapi.InlineKeyboardMarkup) {
	symbol := CurrencySymbol(currency)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👤 **Customer Details - ID: %d**\n\n", customer.ID))
	sb.WriteString(fmt.Sprintf("Name: %s\n", personName(customer.FirstName, customer.LastName)))
	sb.WriteString(fmt.Sprintf("Email: %s\n", orDefault(customer.Email)))
	sb.WriteString(fmt.Sprintf("Total Spent: %s%s\n", symbol, totalSpent(customer.TotalSpent)))
	sb.WriteString(fmt.Sprintf("Order Count: %d\n\n", len(orders)))

	if len(orders) == 0 {
		sb.WriteString("No orders found for this customer.")
		return sb.String(), nil
	}

	sb.WriteString("**Order History:**\n")
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, o := range orders {
		if i >= maxHistoryButtons {
			break
		}
		label := fmt.Sprintf("Order %d - %s%s (%s)", o.ID, symbol, orDefault(o.Total), capitalize(orDefault(o.Status)))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("order_%d", o.ID)),
		))
	}
	return sb.String(), markup(rows)
}

// totalSpent renders the spent amount, zero when missing
func totalSpent(s string) string {
	if s == "" {
		return "0.00"
	}
	return s
}
