package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-pkgz/lgr"
)

// Orders fetches up to limit most recent orders, newest first
func (c *Client) Orders(ctx context.Context, limit int) ([]Order, error) {
	if limit <= 0 || limit > c.pageSize {
		limit = c.pageSize
	}
	query := url.Values{
		"per_page": {strconv.Itoa(limit)},
		"orderby":  {"date"},
		"order":    {"desc"},
	}
	var orders []Order
	if err := c.get(ctx, "/orders", query, &orders); err != nil {
		lgr.Printf("[WARN] failed to fetch orders: %v", err)
		return nil, err
	}
	lgr.Printf("[DEBUG] fetched %d recent orders", len(orders))
	return orders, nil
}

// GetOrder fetches a single order by id
func (c *Client) GetOrder(ctx context.Context, id int64) (*Order, error) {
	var order Order
	if err := c.get(ctx, fmt.Sprintf("/orders/%d", id), nil, &order); err != nil {
		lgr.Printf("[WARN] failed to fetch order %d: %v", id, err)
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus transitions an order to one of the fixed statuses
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	if !ValidOrderStatus(status) {
		return fmt.Errorf("invalid order status %q", status)
	}
	if err := c.put(ctx, fmt.Sprintf("/orders/%d", id), map[string]string{"status": status}, nil); err != nil {
		lgr.Printf("[WARN] failed to update order %d status: %v", id, err)
		return err
	}
	lgr.Printf("[INFO] updated order %d status to %s", id, status)
	return nil
}
