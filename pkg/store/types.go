package store

// Product is a WooCommerce product record. Prices come over the wire as
// strings and stock_quantity is null when stock management is off, so it maps
// to a pointer.
type Product struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	SKU           string      `json:"sku"`
	Type          string      `json:"type"` // "simple", "variable", etc.
	Price         string      `json:"price"`
	RegularPrice  string      `json:"regular_price"`
	StockQuantity *int        `json:"stock_quantity"`
	Attributes    []Attribute `json:"attributes"`
}

// Variation is a single variation of a variable product
type Variation struct {
	ID            int64       `json:"id"`
	Price         string      `json:"price"`
	StockQuantity *int        `json:"stock_quantity"`
	Attributes    []Attribute `json:"attributes"`
}

// Attribute describes a product or variation attribute. Products carry the
// full option list, variations carry the single selected option.
type Attribute struct {
	Name    string   `json:"name"`
	Option  string   `json:"option,omitempty"`
	Options []string `json:"options,omitempty"`
}

// Order is a WooCommerce order record
type Order struct {
	ID          int64      `json:"id"`
	Status      string     `json:"status"`
	Total       string     `json:"total"`
	DateCreated string     `json:"date_created"`
	Billing     Address    `json:"billing"`
	Shipping    Address    `json:"shipping"`
	LineItems   []LineItem `json:"line_items"`
}

// Address is a billing or shipping block on an order
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
}

// LineItem is a single purchased item on an order
type LineItem struct {
	Name      string `json:"name"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total"`
}

// Customer is a WooCommerce customer record
type Customer struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	TotalSpent string `json:"total_spent"`
}

// OrderStatuses are the statuses the bot offers for order transitions
var OrderStatuses = []string{"pending", "processing", "completed", "cancelled"}

// ValidOrderStatus reports whether s is one of the accepted order statuses
func ValidOrderStatus(s string) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}
