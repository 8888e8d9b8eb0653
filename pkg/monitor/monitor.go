// Package monitor runs the periodic low-stock sweep: fetch products on a
// fixed schedule, retry transport failures a bounded number of times, and
// push one alert message when any product sits at or below the threshold.
package monitor

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/wootools/wooadmin/pkg/format"
	"github.com/wootools/wooadmin/pkg/locales"
	"github.com/wootools/wooadmin/pkg/settings"
	"github.com/wootools/wooadmin/pkg/store"
)

//go:generate moq -out mocks/product_source.go -pkg mocks -skip-ensure -fmt goimports . ProductSource
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier
//go:generate moq -out mocks/settings_source.go -pkg mocks -skip-ensure -fmt goimports . SettingsSource
//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

// ProductSource provides the product collection to sweep
type ProductSource interface {
	Products(ctx context.Context) ([]store.Product, error)
}

// Notifier delivers alert messages to the operator chat
type Notifier interface {
	SendAlert(text string) error
}

// SettingsSource provides the current bot settings
type SettingsSource interface {
	Get() settings.Settings
}

// Recorder appends audit events, may be nil
type Recorder interface {
	Record(ctx context.Context, actor, kind, detail string) error
}

// audit event kinds for monitor cycle outcomes
const (
	kindAlertSent       = "alert_sent"
	kindAlertSendFailed = "alert_send_failed"
	kindFetchFailed     = "fetch_failed"
)

// Monitor is the periodic low-stock checker, one instance per process
type Monitor struct {
	products     ProductSource
	notifier     Notifier
	settings     SettingsSource
	audit        Recorder
	interval     time.Duration
	startupDelay time.Duration
	attempts     int

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Params holds monitor dependencies and timing
type Params struct {
	Products     ProductSource
	Notifier     Notifier
	Settings     SettingsSource
	Audit        Recorder      // optional
	Interval     time.Duration // defaults to 1h
	StartupDelay time.Duration // defaults to 10s
	Attempts     int           // total fetch attempts per cycle, defaults to 3
}

// New creates a monitor instance
func New(params Params) *Monitor {
	if params.Interval == 0 {
		params.Interval = time.Hour
	}
	if params.StartupDelay == 0 {
		params.StartupDelay = 10 * time.Second
	}
	if params.Attempts == 0 {
		params.Attempts = 3
	}
	return &Monitor{
		products:     params.Products,
		notifier:     params.Notifier,
		settings:     params.Settings,
		audit:        params.Audit,
		interval:     params.Interval,
		startupDelay: params.StartupDelay,
		attempts:     params.Attempts,
	}
}

// Start begins the periodic sweep, first run after the startup delay
func (m *Monitor) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)

	m.wg.Add(1)
	go m.worker(ctx)

	lgr.Printf("[INFO] low-stock monitor started, interval %v, first check in %v", m.interval, m.startupDelay)
}

// Stop cancels the sweep and waits for the worker to finish
func (m *Monitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
	lgr.Printf("[INFO] low-stock monitor stopped")
}

func (m *Monitor) worker(ctx context.Context) {
	defer m.wg.Done()

	select {
	case <-ctx.Done():
		return
	case <-time.After(m.startupDelay):
	}
	m.checkLowStock(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.checkLowStock(ctx)
		}
	}
}

// checkLowStock runs one sweep cycle. Terminal outcomes: no-op, alert sent,
// alert send failed, fetch failed after retries.
func (m *Monitor) checkLowStock(ctx context.Context) {
	st := m.settings.Get()
	if !st.IsRunning || !st.NotifyLowStock {
		return
	}

	var products []store.Product
	retrier := repeater.NewFixed(m.attempts, 0)
	err := retrier.Do(ctx, func() error {
		var ferr error
		products, ferr = m.products.Products(ctx)
		if ferr != nil {
			lgr.Printf("[WARN] low-stock fetch failed, will retry: %v", ferr)
		}
		return ferr
	})
	if err != nil {
		lgr.Printf("[ERROR] low-stock fetch failed after %d attempts: %v", m.attempts, err)
		detail := fmt.Sprintf("Failed to fetch products after %d attempts", m.attempts)
		text := fmt.Sprintf(locales.Get(locales.Lang(st.Language), locales.APIError), detail)
		if serr := m.notifier.SendAlert(text); serr != nil {
			lgr.Printf("[WARN] failed to send API failure alert: %v", serr)
		}
		m.record(ctx, kindFetchFailed, detail)
		return
	}

	lowStock := lowStockSet(products, st.LowStockThreshold, st.WatchedProductID)
	if len(lowStock) == 0 {
		return
	}

	text := format.LowStockAlert(lowStock, st.Currency)
	if err := m.notifier.SendAlert(text); err != nil {
		lgr.Printf("[WARN] failed to send low stock alert: %v", err)
		m.record(ctx, kindAlertSendFailed, err.Error())
		return
	}
	lgr.Printf("[INFO] sent low stock alert for %d products", len(lowStock))
	m.record(ctx, kindAlertSent, fmt.Sprintf("%d products at or below threshold %d", len(lowStock), st.LowStockThreshold))
}

// lowStockSet selects products with known stock at or below the threshold,
// plus the watched product when it qualifies. Deduplication is by id, so a
// watched product already in the set is never listed twice.
func lowStockSet(products []store.Product, threshold int, watchedID string) []store.Product {
	var low []store.Product
	seen := map[int64]bool{}
	for _, p := range products {
		if p.StockQuantity != nil && *p.StockQuantity <= threshold {
			low = append(low, p)
			seen[p.ID] = true
		}
	}

	if watchedID == "" {
		return low
	}
	id, err := strconv.ParseInt(watchedID, 10, 64)
	if err != nil || seen[id] {
		return low
	}
	for _, p := range products {
		if p.ID == id && p.StockQuantity != nil && *p.StockQuantity <= threshold {
			low = append(low, p)
			break
		}
	}
	return low
}

// record writes an audit event when a recorder is wired
func (m *Monitor) record(ctx context.Context, kind, detail string) {
	if m.audit == nil {
		return
	}
	if err := m.audit.Record(ctx, "monitor", kind, detail); err != nil {
		lgr.Printf("[WARN] failed to record audit event %s: %v", kind, err)
	}
}
