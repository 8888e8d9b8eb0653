package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"

	"github.com/wootools/wooadmin/pkg/audit"
	"github.com/wootools/wooadmin/pkg/format"
	"github.com/wootools/wooadmin/pkg/locales"
	"github.com/wootools/wooadmin/pkg/settings"
	"github.com/wootools/wooadmin/pkg/store"
)

const helpText = `Available commands:
/start - Welcome message
/settings - Configure notifications and currency
/help - Show this message
/products - List all products with details
/search <query> - Search products by name or SKU
/update <product_id> <price> <stock> - Update product price and stock
/orders - View recent orders
/order <order_id> - View order details
/customers - List all customers
/customer <customer_id> - View customer details and order history
/stats - Show store statistics
/bulkupdate <type> <new_value> <id1> <id2> ... - Bulk update orders or products (type: order_status, product_price, product_stock)`

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())

	switch msg.Command() {
	case "start":
		b.cmdStart(msg)
	case "help":
		b.reply(msg.Chat.ID, helpText, nil)
	case "settings":
		b.cmdSettings(msg.Chat.ID)
	case "stats":
		b.cmdStats(ctx, msg.Chat.ID)
	case "products":
		b.cmdProducts(ctx, msg.Chat.ID)
	case "search":
		b.cmdSearch(ctx, msg.Chat.ID, args)
	case "update":
		b.cmdUpdate(ctx, msg, args)
	case "orders":
		b.cmdOrders(ctx, msg.Chat.ID)
	case "order":
		b.cmdOrder(ctx, msg.Chat.ID, args)
	case "customers":
		b.cmdCustomers(ctx, msg.Chat.ID)
	case "customer":
		b.cmdCustomer(ctx, msg.Chat.ID, args)
	case "bulkupdate":
		b.cmdBulkUpdate(ctx, msg, args)
	default:
		b.reply(msg.Chat.ID, helpText, nil)
	}
}

func (b *Bot) cmdStart(msg *tgbotapi.Message) {
	name := msg.From.FirstName
	b.reply(msg.Chat.ID, fmt.Sprintf(locales.Get(b.lang(), locales.Welcome), name), nil)
	lgr.Printf("[INFO] user %s (%d) triggered /start", name, msg.From.ID)
}

// cmdSettings shows the settings summary with toggle and prompt buttons
func (b *Bot) cmdSettings(chatID int64) {
	st := b.settings.Get()
	lang := locales.Lang(st.Language)

	watched := st.WatchedProductID
	if watched == "" {
		watched = "None"
	}
	text := fmt.Sprintf(locales.Get(lang, locales.SettingsMsg),
		enabledText(st.NotifyLowStock), enabledText(st.NotifyNewOrders),
		watched, st.LowStockThreshold, locales.DisplayName(lang), st.Currency)

	langButton := "زبان: فارسی"
	if lang == locales.FA {
		langButton = "Language: English"
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Toggle Low Stock", "toggle_low_stock"),
			tgbotapi.NewInlineKeyboardButtonData("Toggle New Orders", "toggle_new_orders"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Set Threshold", "set_threshold"),
			tgbotapi.NewInlineKeyboardButtonData("Watch Product", "watch_product"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Set Currency", "set_currency"),
			tgbotapi.NewInlineKeyboardButtonData(langButton, "toggle_lang"),
		),
	)
	b.reply(chatID, text, &kb)
}

func (b *Bot) cmdStats(ctx context.Context, chatID int64) {
	st := b.settings.Get()
	orders, err := b.store.Orders(ctx, statsOrdersLimit)
	if err != nil {
		b.reply(chatID, "⚠️ Failed to fetch orders for stats.", nil)
		return
	}
	products, err := b.store.Products(ctx)
	if err != nil {
		products = nil // stats degrade to an unknown top product name
	}
	b.reply(chatID, format.Stats(orders, products, locales.Lang(st.Language), st.Currency), nil)
}

func (b *Bot) cmdProducts(ctx context.Context, chatID int64) {
	st := b.settings.Get()
	products, err := b.store.Products(ctx)
	if err != nil {
		b.reply(chatID, "⚠️ Failed to fetch products. Check your store connection.", nil)
		return
	}
	if len(products) == 0 {
		b.reply(chatID, locales.Get(locales.Lang(st.Language), locales.ProductsNoResult), nil)
		return
	}

	text, kb := format.ProductsPage(products, b.variationsFor(ctx, format.VisibleProducts(products, 0)), 0, st.Currency)
	b.reply(chatID, text, kb)
}

func (b *Bot) cmdSearch(ctx context.Context, chatID int64, args []string) {
	st := b.settings.Get()
	lang := locales.Lang(st.Language)

	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		b.reply(chatID, locales.Get(lang, locales.SearchNoQuery), nil)
		return
	}

	products, err := b.store.SearchProducts(ctx, query)
	if err != nil {
		b.reply(chatID, "⚠️ Failed to search products. Check your store connection.", nil)
		return
	}
	if len(products) == 0 {
		b.reply(chatID, locales.Get(lang, locales.SearchNoResults), nil)
		return
	}

	b.reply(chatID, format.SearchResults(products, b.variationsFor(ctx, products), st.Currency), nil)
}

// cmdUpdate updates price and/or stock of a product; variable products get a
// variation picker keyboard carrying the pending values in callback tokens.
func (b *Bot) cmdUpdate(ctx context.Context, msg *tgbotapi.Message, args []string) {
	chatID := msg.Chat.ID
	if len(args) < 1 {
		b.reply(chatID, "⚠️ Usage: /update <product_id> [price] [stock]", nil)
		return
	}

	productID, price, stock, err := parseUpdateArgs(args)
	if err != nil {
		b.reply(chatID, "⚠️ Invalid input. Use numbers for product ID, price, and stock. Use '-' to skip.", nil)
		return
	}

	product, err := b.store.GetProduct(ctx, productID)
	if err != nil {
		b.reply(chatID, fmt.Sprintf("⚠️ Product ID %d not found.", productID), nil)
		return
	}

	if product.Type == "variable" {
		variations, err := b.store.Variations(ctx, productID)
		if err != nil {
			b.reply(chatID, "⚠️ Failed to fetch variations.", nil)
			return
		}
		if len(variations) == 0 {
			b.reply(chatID, "This variable product has no variations.", nil)
			return
		}
		text, kb := format.VariationPicker(product.Name, productID, variations, price, stock, b.settings.Get().Currency)
		b.reply(chatID, text, kb)
		return
	}

	if err := b.store.UpdateProduct(ctx, productID, 0, price, stock); err != nil {
		b.reply(chatID, fmt.Sprintf("📦 Update failed: %v", err), nil)
		return
	}
	b.reply(chatID, "📦 Update successful!", nil)
	b.record(ctx, msg.From.ID, audit.KindProductUpdate, fmt.Sprintf("product %d: price=%v stock=%v", productID, price, stock))
}

func (b *Bot) cmdOrders(ctx context.Context, chatID int64) {
	orders, err := b.store.Orders(ctx, recentOrdersLimit)
	if err != nil {
		b.reply(chatID, "⚠️ Failed to fetch orders. Check your store connection.", nil)
		return
	}
	text, kb := format.OrdersPage(orders, 0, b.settings.Get().Currency)
	b.reply(chatID, text, kb)
}

func (b *Bot) cmdOrder(ctx context.Context, chatID int64, args []string) {
	if len(args) == 0 {
		b.reply(chatID, "⚠️ Usage: /order <order_id>", nil)
		return
	}
	orderID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		b.reply(chatID, "⚠️ Invalid order ID. Please use a number.", nil)
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

func (b *Bot) cmdCustomers(ctx context.Context, chatID int64) {
	customers, err := b.store.Customers(ctx)
	if err != nil {
		b.reply(chatID, "⚠️ Failed to fetch customers. Check your store connection.", nil)
		return
	}
	counts := b.orderCountsFor(ctx, format.VisibleCustomers(customers, 0))
	text, kb := format.CustomersPage(customers, counts, 0, b.settings.Get().Currency)
	b.reply(chatID, text, kb)
}

func (b *Bot) cmdCustomer(ctx context.Context, chatID int64, args []string) {
	if len(args) == 0 {
		b.reply(chatID, "⚠️ Usage: /customer <customer_id>", nil)
		return
	}
	customerID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		b.reply(chatID, "⚠️ Invalid customer ID. Please use a number.", nil)
		return
	}

	customer, err := b.store.GetCustomer(ctx, customerID)
	if err != nil {
		b.reply(chatID, fmt.Sprintf("⚠️ Customer ID %d not found or failed to fetch.", customerID), nil)
		return
	}
	orders, err := b.store.CustomerOrders(ctx, customerID)
	if err != nil {
		b.reply(chatID, fmt.Sprintf("⚠️ Failed to fetch orders for customer ID %d.", customerID), nil)
		return
	}
	text, kb := format.CustomerDetails(customer, orders, b.settings.Get().Currency)
	b.reply(chatID, text, kb)
}

// cmdBulkUpdate applies one value to many targets, reporting each target on
// its own line; partial success is expected.
func (b *Bot) cmdBulkUpdate(ctx context.Context, msg *tgbotapi.Message, args []string) {
	chatID := msg.Chat.ID
	if len(args) < 3 {
		b.reply(chatID, "⚠️ Usage: /bulkupdate <type> <new_value> <id1> <id2> ... (type: order_status, product_price, product_stock)", nil)
		return
	}

	updateType, newValue, ids := args[0], args[1], args[2:]

	switch updateType {
	case "order_status":
		status := strings.ToLower(newValue)
		if !store.ValidOrderStatus(status) {
			b.reply(chatID, "⚠️ Invalid status. Use: pending, processing, completed, cancelled", nil)
			return
		}
		for _, idStr := range ids {
			orderID, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				b.reply(chatID, fmt.Sprintf("Order %s: invalid order id", idStr), nil)
				continue
			}
			if err := b.store.UpdateOrderStatus(ctx, orderID, status); err != nil {
				b.reply(chatID, fmt.Sprintf("Order %d: Update failed: %v", orderID, err), nil)
				continue
			}
			b.reply(chatID, fmt.Sprintf("Order %d: Order status updated to %s!", orderID, status), nil)
		}
		b.record(ctx, msg.From.ID, audit.KindBulkUpdate, fmt.Sprintf("order_status=%s targets=%d", status, len(ids)))

	case "product_price", "product_stock":
		var price *decimal.Decimal
		var stock *int
		if updateType == "product_price" {
			parsed, err := decimal.NewFromString(newValue)
			if err != nil {
				b.reply(chatID, "⚠️ Invalid value. Use a number for price or stock.", nil)
				return
			}
			price = &parsed
		} else {
			parsed, err := strconv.Atoi(newValue)
			if err != nil {
				b.reply(chatID, "⚠️ Invalid value. Use a number for price or stock.", nil)
				return
			}
			stock = &parsed
		}

		for _, idStr := range ids {
			productID, variationID, err := parseBulkTarget(idStr)
			if err != nil {
				b.reply(chatID, fmt.Sprintf("Product %s: invalid target id", idStr), nil)
				continue
			}
			target := fmt.Sprintf("Product %d", productID)
			if variationID != 0 {
				target = fmt.Sprintf("Variation %d", variationID)
			}
			if err := b.store.UpdateProduct(ctx, productID, variationID, price, stock); err != nil {
				b.reply(chatID, fmt.Sprintf("%s: Update failed: %v", target, err), nil)
				continue
			}
			b.reply(chatID, fmt.Sprintf("%s: Update successful!", target), nil)
		}
		b.record(ctx, msg.From.ID, audit.KindBulkUpdate, fmt.Sprintf("%s=%s targets=%d", updateType, newValue, len(ids)))

	default:
		b.reply(chatID, "⚠️ Invalid type. Use: order_status, product_price, product_stock", nil)
	}
}

// variationsFor fetches variations for the variable products in the subset
func (b *Bot) variationsFor(ctx context.Context, products []store.Product) map[int64][]store.Variation {
	variations := map[int64][]store.Variation{}
	for _, p := range products {
		if p.Type != "variable" {
			continue
		}
		vars, err := b.store.Variations(ctx, p.ID)
		if err != nil {
			continue // rendered as "Variations: None"
		}
		variations[p.ID] = vars
	}
	return variations
}

// orderCountsFor fetches per-customer order counts for the visible subset
func (b *Bot) orderCountsFor(ctx context.Context, customers []store.Customer) map[int64]int {
	counts := map[int64]int{}
	for _, c := range customers {
		orders, err := b.store.CustomerOrders(ctx, c.ID)
		if err != nil {
			continue
		}
		counts[c.ID] = len(orders)
	}
	return counts
}

// parseUpdateArgs parses "/update <id> [price|-] [stock|-]" arguments
func parseUpdateArgs(args []string) (productID int64, price *decimal.Decimal, stock *int, err error) {
	productID, err = strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("invalid product id %q", args[0])
	}
	if len(args) > 1 && args[1] != "-" {
		parsed, perr := decimal.NewFromString(args[1])
		if perr != nil {
			return 0, nil, nil, fmt.Errorf("invalid price %q", args[1])
		}
		price = &parsed
	}
	if len(args) > 2 && args[2] != "-" {
		parsed, serr := strconv.Atoi(args[2])
		if serr != nil {
			return 0, nil, nil, fmt.Errorf("invalid stock %q", args[2])
		}
		stock = &parsed
	}
	return productID, price, stock, nil
}

// parseBulkTarget parses a bulk update target, "productID" or
// "productID-variationID"
func parseBulkTarget(s string) (productID, variationID int64, err error) {
	parts := strings.SplitN(s, "-", 2)
	productID, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid product id %q", parts[0])
	}
	if len(parts) == 2 {
		variationID, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid variation id %q", parts[1])
		}
	}
	return productID, variationID, nil
}

// enabledText renders a boolean setting for display
func enabledText(v bool) string {
	if v {
		return "Enabled"
	}
	return "Disabled"
}

// settingsStoreUpdate is a tiny helper to keep call sites short
func (b *Bot) settingsStoreUpdate(fn func(*settings.Settings)) {
	if err := b.settings.Update(fn); err != nil {
		lgr.Printf("[WARN] failed to persist settings: %v", err)
	}
}
