package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dayanaadylkhanova/sales-stats/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_MemoryStore_RunAndShutdown(t *testing.T) {
	cfg := config.Config{
		ListenAddr:   "127.0.0.1:0",
		StoreDriver:  config.DriverMemory,
		ShutdownWait: time.Second,
	}
	a, err := New(context.Background(), cfg, &AppInfo{Name: "test"}, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrAppShutdownNormal)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestNew_SQLiteStore(t *testing.T) {
	cfg := config.Config{
		ListenAddr:   "127.0.0.1:0",
		StoreDriver:  config.DriverSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "sales.db"),
		ShutdownWait: time.Second,
	}
	a, err := New(context.Background(), cfg, &AppInfo{Name: "test"}, zap.NewNop())
	require.NoError(t, err)
	a.store.Close()
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), config.Config{StoreDriver: "mongo"}, &AppInfo{}, zap.NewNop())
	assert.ErrorIs(t, err, ErrStoreOpen)
}
