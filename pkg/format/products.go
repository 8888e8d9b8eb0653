package format

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"

	"github.com/wootools/wooadmin/pkg/locales"
	"github.com/wootools/wooadmin/pkg/store"
)

// VisibleProducts returns the products shown on the given page, so callers
// can prefetch variations for just that subset.
func VisibleProducts(products []store.Product, page int) []store.Product {
	start, end, ok := pageBounds(len(products), page)
	if !ok {
		return nil
	}
	return products[start:end]
}

// ProductsPage renders one page of the product list with variation and
// pagination buttons. The variations map holds prefetched variations for the
// variable products on this page; pages past the end return a sentinel text
// with no keyboard.
func ProductsPage(products []store.Product, variations map[int64][]store.Variation, page int, currency string) (string, *tgbotapi.InlineKeyboardMarkup) {
	if len(products) == 0 {
		return locales.Get(locales.EN, locales.ProductsNoResult), nil
	}

	start, end, ok := pageBounds(len(products), page)
	if !ok {
		return "No more products to show.", nil
	}

	symbol := CurrencySymbol(currency)
	subset := products[start:end]

	var sb strings.Builder
	sb.WriteString("🛍️ **Product List**\n\n")
	for _, p := range subset {
		sb.WriteString(fmt.Sprintf("**ID: %d | %s**\n", p.ID, orDefault(p.Name)))
		sb.WriteString(fmt.Sprintf("Type: %s\n", orDefault(p.Type)))
		sb.WriteString(fmt.Sprintf("SKU: %s\n", orDefault(p.SKU)))
		sb.WriteString(fmt.Sprintf("Price: %s%s\n", symbol, orDefault(p.Price)))
		sb.WriteString(fmt.Sprintf("Stock: %s\n", stockDisplay(p.StockQuantity)))
		sb.WriteString(fmt.Sprintf("Attributes: %s\n", productAttributes(p.Attributes)))

		if p.Type == "variable" {
			if vars := variations[p.ID]; len(vars) > 0 {
				ids := make([]string, len(vars))
				for i, v := range vars {
					ids[i] = strconv.FormatInt(v.ID, 10)
				}
				sb.WriteString(fmt.Sprintf("Variations: %s\n", strings.Join(ids, ", ")))
				sb.WriteString("[Click to view variation details]\n")
			} else {
				sb.WriteString("Variations: None\n")
			}
		}
		sb.WriteString(divider + "\n\n")
	}
	sb.WriteString(fmt.Sprintf("Page %d of %d", page+1, totalPages(len(products))))

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, p := range subset {
		if p.Type == "variable" {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("Variations for %d", p.ID), fmt.Sprintf("vars_%d", p.ID)),
			))
		}
	}
	if row := paginationRow("products", page, end < len(products)); row != nil {
		rows = append(rows, row)
	}
	return sb.String(), markup(rows)
}

// SearchResults renders the full detail of matched products, including
// per-variation lines for variable products. Search output is not paginated.
func SearchResults(products []store.Product, variations map[int64][]store.Variation, currency string) string {
	if len(products) == 0 {
		return locales.Get(locales.EN, locales.SearchNoResults)
	}

	symbol := CurrencySymbol(currency)
	var sb strings.Builder
	sb.WriteString("🔍 **Search Results**\n\n")
	for _, p := range products {
		sb.WriteString(fmt.Sprintf("ID: %d | %s\n", p.ID, orDefault(p.Name)))
		sb.WriteString(fmt.Sprintf("Type: %s\n", orDefault(p.Type)))
		sb.WriteString(fmt.Sprintf("SKU: %s\n", orDefault(p.SKU)))
		sb.WriteString(fmt.Sprintf("Price: %s%s\n", symbol, orDefault(p.Price)))
		sb.WriteString(fmt.Sprintf("Stock: %s\n", stockDisplay(p.StockQuantity)))
		sb.WriteString(fmt.Sprintf("Attributes: %s\n", productAttributes(p.Attributes)))

		if p.Type == "variable" {
			vars := variations[p.ID]
			if len(vars) == 0 {
				sb.WriteString("Variation IDs: None\n")
			} else {
				ids := make([]string, len(vars))
				for i, v := range vars {
					ids[i] = strconv.FormatInt(v.ID, 10)
				}
				sb.WriteString(fmt.Sprintf("Variation IDs: %s\n", strings.Join(ids, ", ")))
				for _, v := range vars {
					sb.WriteString(fmt.Sprintf("  - Var ID: %d | %s | Price: %s%s | Stock: %s\n",
						v.ID, variationAttributes(v.Attributes), symbol, orDefault(v.Price), stockDisplay(v.StockQuantity)))
				}
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// VariationsList renders the variation details of one product
func VariationsList(productID int64, variations []store.Variation, currency string) string {
	if len(variations) == 0 {
		return "No variations found for this product."
	}

	symbol := CurrencySymbol(currency)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 **Variations for Product ID: %d**\n\n", productID))
	for _, v := range variations {
		sb.WriteString(fmt.Sprintf("Variation ID: %d\n", v.ID))
		sb.WriteString(fmt.Sprintf("Attributes: %s\n", variationAttributes(v.Attributes)))
		sb.WriteString(fmt.Sprintf("Price: %s%s\n", symbol, orDefault(v.Price)))
		sb.WriteString(fmt.Sprintf("Stock: %s\n", stockDisplay(v.StockQuantity)))
		sb.WriteString(divider + "\n\n")
	}
	return strings.TrimSpace(sb.String())
}

// VariationPicker renders the variation selection keyboard for /update on a
// variable product. The pending price and stock ride along in the callback
// token, "None" marking a skipped field.
func VariationPicker(productName string, productID int64, variations []store.Variation, price *decimal.Decimal, stock *int, currency string) (string, *tgbotapi.InlineKeyboardMarkup) {
	symbol := CurrencySymbol(currency)
	priceTok, stockTok := "None", "None"
	if price != nil {
		priceTok = price.String()
	}
	if stock != nil {
		stockTok = strconv.Itoa(*stock)
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, v := range variations {
		attrs := variationAttributes(v.Attributes)
		if attrs == "N/A" {
			attrs = "No attributes"
		}
		label := fmt.Sprintf("%d - %s (Price: %s%s, Stock: %s)", v.ID, attrs, symbol, orDefault(v.Price), stockDisplay(v.StockQuantity))
		data := fmt.Sprintf("update_%d_%d_%s_%s", productID, v.ID, priceTok, stockTok)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(label, data)))
	}
	return fmt.Sprintf("Select a variation for %s to update:", productName), markup(rows)
}

// LowStockAlert renders the monitor's alert message enumerating the products
// at or below the threshold.
func LowStockAlert(products []store.Product, currency string) string {
	symbol := CurrencySymbol(currency)
	var sb strings.Builder
	sb.WriteString("⚠️ **Low Stock Alert**\n\n")
	for _, p := range products {
		sb.WriteString(fmt.Sprintf("ID: %d | %s\n", p.ID, orDefault(p.Name)))
		sb.WriteString(fmt.Sprintf("Price: %s%s | Stock: %s\n\n", symbol, orDefault(p.Price), stockDisplay(p.StockQuantity)))
	}
	return sb.String()
}

// productAttributes joins product attributes with their option lists
func productAttributes(attrs []store.Attribute) string {
	if len(attrs) == 0 {
		return "N/A"
	}
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = fmt.Sprintf("%s: %s", orDefault(a.Name), strings.Join(a.Options, ", "))
	}
	return strings.Join(parts, " / ")
}

// variationAttributes joins variation attributes with their selected option
func variationAttributes(attrs []store.Attribute) string {
	if len(attrs) == 0 {
		return "N/A"
	}
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = fmt.Sprintf("%s: %s", orDefault(a.Name), orDefault(a.Option))
	}
	return strings.Join(parts, " / ")
}

// paginationRow builds the prev/next button row, nil when the page stands alone
func paginationRow(prefix string, page int, hasNext bool) []tgbotapi.InlineKeyboardButton {
	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⏮ Previous", fmt.Sprintf("%s_%d", prefix, page-1)))
	}
	if hasNext {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ⏭", fmt.Sprintf("%s_%d", prefix, page+1)))
	}
	return row
}

// markup wraps button rows into a keyboard, nil when there are no rows
func markup(rows [][]tgbotapi.InlineKeyboardButton) *tgbotapi.InlineKeyboardMarkup {
	if len(rows) == 0 {
		return nil
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}
