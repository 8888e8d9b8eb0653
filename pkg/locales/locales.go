// Package locales holds the user-facing message tables. Every message the
// bot localizes is addressed by a Key constant; free-form lookups are not
// possible. Farsi falls back to English for any key missing from its table.
package locales

// Lang is a supported interface language
type Lang string

// supported languages
const (
	EN Lang = "en"
	FA Lang = "fa"
)

// Toggle flips between the two supported languages
func Toggle(l Lang) Lang {
	if l == EN {
		return FA
	}
	return EN
}

// DisplayName returns the human-readable language name
func DisplayName(l Lang) string {
	if l == FA {
		return "Farsi"
	}
	return "English"
}

// Key identifies a message template
type Key string

// message keys
const (
	Welcome          Key = "welcome"
	SettingsMsg      Key = "settings"
	ToggleLowStock   Key = "toggle_low_stock"
	ToggleNewOrders  Key = "toggle_new_orders"
	ThresholdPrompt  Key = "threshold_prompt"
	ThresholdSet     Key = "threshold_set"
	ThresholdError   Key = "threshold_error"
	WatchPrompt      Key = "watch_prompt"
	WatchSet         Key = "watch_set"
	WatchError       Key = "watch_error"
	LangSet          Key = "lang_set"
	CurrencyPrompt   Key = "currency_prompt"
	CurrencySet      Key = "currency_set"
	CurrencyError    Key = "currency_error"
	NotAuthorized    Key = "not_authorized"
	APIError         Key = "api_error"
	Stats            Key = "stats"
	SearchNoQuery    Key = "search_no_query"
	SearchNoResults  Key = "search_no_results"
	ProductsNoResult Key = "products_no_results"
)

var tables = map[Lang]map[Key]string{
	EN: {
		Welcome:          "Hello %s! 👋\nI’m your WooCommerce store assistant.\nUse /settings to configure notifications or /help for commands.",
		SettingsMsg:      "⚙️ **Notification Settings**\n\nLow Stock Alerts: %s\nNew Order Alerts: %s\nWatched Product: %s\nLow Stock Threshold: %d units\nLanguage: %s\nCurrency: %s",
		ToggleLowStock:   "Low stock notifications set to: %s",
		ToggleNewOrders:  "New order notifications set to: %s",
		ThresholdPrompt:  "Please send the new low stock threshold (e.g., 10):",
		ThresholdSet:     "✅ Low stock threshold set to %d units.",
		ThresholdError:   "⚠️ Please enter a valid number (e.g., 10).",
		WatchPrompt:      "Please send the product ID to watch (e.g., 15):",
		WatchSet:         "✅ Watching product ID %d for stock ≤ %d.",
		WatchError:       "⚠️ Please enter a valid product ID.",
		LangSet:          "✅ Language set to %s.",
		CurrencyPrompt:   "Please send the new currency (e.g., USD, EUR, IRR, IRT):",
		CurrencySet:      "✅ Currency set to %s.",
		CurrencyError:    "⚠️ Invalid currency. Use: USD, EUR, IRR, IRT",
		NotAuthorized:    "⚠️ You’re not authorized to use this bot!",
		APIError:         "⚠️ Repeated API failures detected: %s",
		Stats:            "📊 **Store Stats**\n\nTotal Orders: %d\nTotal Revenue: %s%s\nTop Product: %s (%s%s)",
		SearchNoQuery:    "⚠️ Please provide a search term. Usage: /search <name or SKU>",
		SearchNoResults:  "No products found matching your search.",
		ProductsNoResult: "No products found.",
	},
	FA: {
		Welcome:          "سلام %s! 👋\nمن دستیار فروشگاه ووکامرس شما هستم.\nاز /settings برای تنظیم اعلان‌ها یا /help برای دستورات استفاده کنید.",
		SettingsMsg:      "⚙️ **تنظیمات اعلان‌ها**\n\nاعلان‌های کمبود موجودی: %s\nاعلان‌های سفارش جدید: %s\nمحصول تحت نظر: %s\nحد آستانه کمبود موجودی: %d واحد\nزبان: %s\nارز: %s",
		ToggleLowStock:   "اعلان‌های کمبود موجودی تنظیم شد به: %s",
		ToggleNewOrders:  "اعلان‌های سفارش جدید تنظیم شد به: %s",
		ThresholdPrompt:  "لطفاً آستانه جدید کمبود موجودی را ارسال کنید (مثلاً 10):",
		ThresholdSet:     "✅ آستانه کمبود موجودی تنظیم شد به %d واحد.",
		ThresholdError:   "⚠️ لطفاً یک عدد معتبر وارد کنید (مثلاً 10).",
		WatchPrompt:      "لطفاً شناسه محصول را برای نظارت ارسال کنید (مثلاً 15):",
		WatchSet:         "✅ نظارت بر محصول با شناسه %d برای موجودی ≤ %d.",
		WatchError:       "⚠️ لطفاً یک شناسه محصول معتبر وارد کنید.",
		LangSet:          "✅ زبان تنظیم شد به %s.",
		CurrencyPrompt:   "لطفاً ارز جدید را ارسال کنید (مثلاً USD، EUR، IRR، IRT):",
		CurrencySet:      "✅ ارز تنظیم شد به %s.",
		CurrencyError:    "⚠️ ارز نامعتبر. از این‌ها استفاده کنید: USD، EUR، IRR، IRT",
		NotAuthorized:    "⚠️ شما مجاز به استفاده از این ربات نیستید!",
		APIError:         "⚠️ خطاهای مکرر API شناسایی شد: %s",
		Stats:            "📊 **آمار فروشگاه**\n\nتعداد کل سفارش‌ها: %d\nدرآمد کل: %s%s\nمحصول برتر: %s (%s%s)",
		SearchNoQuery:    "⚠️ لطفاً یک عبارت جستجو وارد کنید. استفاده: /search <نام یا SKU>",
		SearchNoResults:  "هیچ محصولی با جستجوی شما یافت نشد.",
		ProductsNoResult: "هیچ محصولی یافت نشد.",
	},
}

// Get returns the message template for the given language and key. Unknown
// languages and untranslated keys fall back to English.
func Get(lang Lang, key Key) string {
	if table, ok := tables[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	return tables[EN][key]
}
