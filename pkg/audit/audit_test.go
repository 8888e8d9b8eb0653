package audit

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "audit.db")
	log, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, log.Close()) })
	return log
}

func TestLog_RecordAndRecent(t *testing.T) {
	log := openTestLog(t)
	ctx := context.Background()

	require.NoError(t, log.Record(ctx, "admin:1001", KindProductUpdate, "product 42: price=19.99"))
	require.NoError(t, log.Record(ctx, "monitor", KindAlertSent, "2 products at or below threshold 5"))

	events, err := log.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// newest first
	assert.Equal(t, "monitor", events[0].Actor)
	assert.Equal(t, KindAlertSent, events[0].Kind)
	assert.Equal(t, "admin:1001", events[1].Actor)
	assert.Equal(t, "product 42: price=19.99", events[1].Detail)
	assert.False(t, events[0].CreatedAt.IsZero())
}

func TestLog_RecentLimit(t *testing.T) {
	log := openTestLog(t)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		require.NoError(t, log.Record(ctx, "monitor", KindFetchFailed, fmt.Sprintf("attempt %d", i)))
	}

	events, err := log.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, events, 5)
	assert.Equal(t, "attempt 29", events[0].Detail)

	// non-positive limit falls back to the default
	events, err = log.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, events, 20)
}

func TestLog_RecentEmpty(t *testing.T) {
	log := openTestLog(t)

	events, err := log.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestOpen_Reopen(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "audit.db")
	ctx := context.Background()

	log, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, log.Record(ctx, "admin:1", KindSettingChange, "currency=EUR"))
	require.NoError(t, log.Close())

	// events survive reopening
	log, err = Open(ctx, dsn)
	require.NoError(t, err)
	defer log.Close() //nolint:errcheck

	events, err := log.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "currency=EUR", events[0].Detail)
}
