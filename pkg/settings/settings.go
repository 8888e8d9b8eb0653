package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-pkgz/lgr"
)

// Settings is the persisted bot configuration, a single record for the whole
// process. Every field is independently mutable and the whole file is
// rewritten on each change, last writer wins.
type Settings struct {
	IsRunning         bool   `json:"is_running"`
	NotifyLowStock    bool   `json:"notify_low_stock"`
	NotifyNewOrders   bool   `json:"notify_new_orders"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	WatchedProductID  string `json:"watched_product_id"`
	Language          string `json:"language"`
	Currency          string `json:"currency"`
}

// Defaults returns the settings used when no file exists yet
func Defaults() Settings {
	return Settings{
		IsRunning:         false,
		NotifyLowStock:    true,
		NotifyNewOrders:   true,
		LowStockThreshold: 5,
		Language:          "en",
		Currency:          "USD",
	}
}

// Currencies maps supported currency codes to display symbols
var Currencies = map[string]string{
	"USD": "$",
	"EUR": "€",
	"IRR": "IRR",
	"IRT": "تومان",
}

// ValidCurrency reports whether code is one of the supported currencies
func ValidCurrency(code string) bool {
	_, ok := Currencies[code]
	return ok
}

// Store owns the settings record and its file. Update handlers and the
// low-stock monitor run on different goroutines, so access is serialized
// with a mutex.
type Store struct {
	path string
	mu   sync.Mutex
	cur  Settings
}

// NewStore loads settings from path, falling back to defaults when the file
// is absent. A corrupt file is an error, not silently replaced.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, cur: Defaults()}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from config
	if errors.Is(err, os.ErrNotExist) {
		lgr.Printf("[INFO] no settings file at %s, using defaults", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	if err := json.Unmarshal(data, &s.cur); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}
	return s, nil
}

// Get returns a copy of the current settings
func (s *Store) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Update applies fn to the settings under lock and persists the result.
// The mutation sticks in memory even when the write fails; persistence
// failures are reported but never roll the record back.
func (s *Store) Update(fn func(*Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.cur)
	return s.save()
}

// save writes the whole record, caller must hold the lock
func (s *Store) save() error {
	data, err := json.Marshal(s.cur)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
