package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-pkgz/lgr"
)

// Customers fetches the customer collection, capped by the configured page size
func (c *Client) Customers(ctx context.Context) ([]Customer, error) {
	query := url.Values{"per_page": {strconv.Itoa(c.pageSize)}}
	var customers []Customer
	if err := c.get(ctx, "/customers", query, &customers); err != nil {
		lgr.Printf("[WARN] failed to fetch customers: %v", err)
		return nil, err
	}
	lgr.Printf("[DEBUG] fetched %d customers", len(customers))
	return customers, nil
}

// GetCustomer fetches a single customer by id
func (c *Client) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	var customer Customer
	if err := c.get(ctx, fmt.Sprintf("/customers/%d", id), nil, &customer); err != nil {
		lgr.Printf("[WARN] failed to fetch customer %d: %v", id, err)
		return nil, err
	}
	return &customer, nil
}

// CustomerOrders fetches all orders placed by a customer, newest first
func (c *Client) CustomerOrders(ctx context.Context, customerID int64) ([]Order, error) {
	query := url.Values{
		"customer": {strconv.FormatInt(customerID, 10)},
		"per_page": {strconv.Itoa(c.pageSize)},
		"orderby":  {"date"},
		"order":    {"desc"},
	}
	var orders []Order
	if err := c.get(ctx, "/orders", query, &orders); err != nil {
		lgr.Printf("[WARN] failed to fetch orders for customer %d: %v", customerID, err)
		return nil, err
	}
	return orders, nil
}
