package format

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wootools/wooadmin/pkg/locales"
	"github.com/wootools/wooadmin/pkg/store"
)

// Stats computes and renders store statistics from recent orders: order
// count, total revenue, and the top product by line-item revenue. Totals are
// summed with decimals since the API delivers money as strings.
func Stats(orders []store.Order, products []store.Product, lang locales.Lang, currency string) string {
	symbol := CurrencySymbol(currency)

	totalRevenue := decimal.Zero
	productSales := map[int64]decimal.Decimal{}
	for _, o := range orders {
		if total, err := decimal.NewFromString(o.Total); err == nil {
			totalRevenue = totalRevenue.Add(total)
		}
		for _, item := range o.LineItems {
			if total, err := decimal.NewFromString(item.Total); err == nil {
				productSales[item.ProductID] = productSales[item.ProductID].Add(total)
			}
		}
	}

	// zero-revenue products never win, all-zero sales report no top product
	topProduct := "N/A"
	topRevenue := decimal.Zero
	var topID int64
	for id, revenue := range productSales {
		if revenue.GreaterThan(topRevenue) || (revenue.Equal(topRevenue) && id < topID) {
			topID, topRevenue = id, revenue
		}
	}
	if topID != 0 {
		topProduct = "Unknown"
		for _, p := range products {
			if p.ID == topID {
				topProduct = p.Name
				break
			}
		}
	}

	return fmt.Sprintf(locales.Get(lang, locales.Stats),
		len(orders), symbol, totalRevenue.StringFixed(2), topProduct, symbol, topRevenue.StringFixed(2))
}
