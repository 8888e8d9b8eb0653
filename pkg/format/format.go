// Package format renders store records into Telegram message text and inline
// keyboards. All functions are pure: records in, text and buttons out.
package format

import (
	"strconv"
	"strings"

	"github.com/wootools/wooadmin/pkg/settings"
)

// PerPage is the fixed number of records on a list page
const PerPage = 5

// divider between records in list views
const divider = "────────────────────"

// CurrencySymbol maps a currency code to its display symbol, falling back
// to "$" for unknown codes.
func CurrencySymbol(code string) string {
	if sym, ok := settings.Currencies[code]; ok {
		return sym
	}
	return "$"
}

// totalPages returns ceil(n/PerPage)
func totalPages(n int) int {
	return (n + PerPage - 1) / PerPage
}

// pageBounds returns the slice bounds for the given page; ok is false when
// the page is past the end.
func pageBounds(n, page int) (start, end int, ok bool) {
	start = page * PerPage
	if start >= n {
		return 0, 0, false
	}
	end = start + PerPage
	if end > n {
		end = n
	}
	return start, end, true
}

// capitalize upper-cases the first letter, for status display
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// personName joins first and last name, falling back to "Unknown"
func personName(first, last string) string {
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		return "Unknown"
	}
	return name
}

// orDefault substitutes "N/A" for empty values
func orDefault(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// stockDisplay renders a nullable stock quantity
func stockDisplay(stock *int) string {
	if stock == nil {
		return "N/A"
	}
	return strconv.Itoa(*stock)
}
