package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wootools/wooadmin/pkg/audit"
	"github.com/wootools/wooadmin/pkg/settings"
	"github.com/wootools/wooadmin/server/mocks"
)

func testServer(auditReader AuditReader) *Server {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":0", 30 * time.Second },
	}
	st := &mocks.SettingsProviderMock{
		GetFunc: func() settings.Settings {
			s := settings.Defaults()
			s.LowStockThreshold = 7
			return s
		},
	}
	return New(cfg, st, auditReader, "test-version", false)
}

func TestServer_StatusHandler(t *testing.T) {
	srv := testServer(nil)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&status)
	require.NoError(t, err)

	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test-version", status["version"])

	st, ok := status["settings"].(map[string]interface{})
	require.True(t, ok, "settings missing from status")
	assert.InDelta(t, 7, st["low_stock_threshold"], 0.01)
}

func TestServer_EventsHandler(t *testing.T) {
	t.Run("returns recent events", func(t *testing.T) {
		auditReader := &mocks.AuditReaderMock{
			RecentFunc: func(ctx context.Context, limit int) ([]audit.Event, error) {
				return []audit.Event{
					{ID: 2, Actor: "admin:1001", Kind: audit.KindSettingChange, Detail: "currency=EUR"},
					{ID: 1, Actor: "monitor", Kind: audit.KindAlertSent, Detail: "low stock: 3 products"},
				}, nil
			},
		}
		srv := testServer(auditReader)

		ts := httptest.NewServer(srv.router)
		defer ts.Close()

		resp, err := http.Get(ts.URL + "/api/v1/events")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var events []audit.Event
		err = json.NewDecoder(resp.Body).Decode(&events)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, int64(2), events[0].ID)
		assert.Equal(t, "admin:1001", events[0].Actor)

		calls := auditReader.RecentCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, recentEventsLimit, calls[0].Limit)
	})

	t.Run("no audit log configured", func(t *testing.T) {
		srv := testServer(nil)

		ts := httptest.NewServer(srv.router)
		defer ts.Close()

		resp, err := http.Get(ts.URL + "/api/v1/events")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var events []audit.Event
		err = json.NewDecoder(resp.Body).Decode(&events)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("audit read failure", func(t *testing.T) {
		auditReader := &mocks.AuditReaderMock{
			RecentFunc: func(ctx context.Context, limit int) ([]audit.Event, error) {
				return nil, errors.New("db gone")
			},
		}
		srv := testServer(auditReader)

		ts := httptest.NewServer(srv.router)
		defer ts.Close()

		resp, err := http.Get(ts.URL + "/api/v1/events")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_Ping(t *testing.T) {
	srv := testServer(nil)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Run(t *testing.T) {
	srv := testServer(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond) // let it bind
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
