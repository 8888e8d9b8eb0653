package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"unicode"

	"github.com/go-pkgz/lgr"
	"github.com/shopspring/decimal"
)

// ErrNothingToUpdate is returned by UpdateProduct when neither price nor
// stock is supplied; no remote call is made in that case.
var ErrNothingToUpdate = errors.New("no updates provided")

// Products fetches the product collection, capped by the configured page size
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	query := url.Values{"per_page": {strconv.Itoa(c.pageSize)}}
	var products []Product
	if err := c.get(ctx, "/products", query, &products); err != nil {
		lgr.Printf("[WARN] failed to fetch products: %v", err)
		return nil, err
	}
	lgr.Printf("[DEBUG] fetched %d products", len(products))
	return products, nil
}

// SearchProducts looks products up by free text or SKU. A query that is
// alphanumeric but not purely alphabetic is treated as a SKU lookup,
// everything else as a text search.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	params := url.Values{"per_page": {strconv.Itoa(c.pageSize)}}
	if looksLikeSKU(query) {
		params.Set("sku", query)
	} else {
		params.Set("search", query)
	}

	var products []Product
	if err := c.get(ctx, "/products", params, &products); err != nil {
		lgr.Printf("[WARN] failed to search products for %q: %v", query, err)
		return nil, err
	}
	lgr.Printf("[DEBUG] found %d products matching %q", len(products), query)
	return products, nil
}

// GetProduct fetches a single product by id
func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	if err := c.get(ctx, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		lgr.Printf("[WARN] failed to fetch product %d: %v", id, err)
		return nil, err
	}
	return &product, nil
}

// Variations fetches all variations of a variable product
func (c *Client) Variations(ctx context.Context, productID int64) ([]Variation, error) {
	query := url.Values{"per_page": {strconv.Itoa(c.pageSize)}}
	var variations []Variation
	if err := c.get(ctx, fmt.Sprintf("/products/%d/variations", productID), query, &variations); err != nil {
		lgr.Printf("[WARN] failed to fetch variations for product %d: %v", productID, err)
		return nil, err
	}
	return variations, nil
}

// UpdateProduct applies a partial update of price and/or stock to a product,
// or to one of its variations when variationID is non-zero. At least one of
// price and stock must be set; otherwise no remote call is issued.
func (c *Client) UpdateProduct(ctx context.Context, productID, variationID int64, price *decimal.Decimal, stock *int) error {
	payload := map[string]any{}
	if price != nil {
		payload["regular_price"] = price.String()
	}
	if stock != nil {
		payload["stock_quantity"] = *stock
		payload["manage_stock"] = true
	}
	if len(payload) == 0 {
		return ErrNothingToUpdate
	}

	path := fmt.Sprintf("/products/%d", productID)
	if variationID != 0 {
		path = fmt.Sprintf("/products/%d/variations/%d", productID, variationID)
	}

	if err := c.put(ctx, path, payload, nil); err != nil {
		lgr.Printf("[WARN] failed to update product %d (variation %d): %v", productID, variationID, err)
		return err
	}
	lgr.Printf("[INFO] updated product %d (variation %d): price=%v stock=%v", productID, variationID, price, stock)
	return nil
}

// looksLikeSKU reports whether the query should be sent as a SKU lookup:
// alphanumeric tokens containing at least one digit qualify.
func looksLikeSKU(query string) bool {
	if query == "" {
		return false
	}
	hasDigit := false
	for _, r := range query {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	return hasDigit
}
