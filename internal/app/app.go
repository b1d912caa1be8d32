package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dayanaadylkhanova/sales-stats/internal/adapter/store/memory"
	"github.com/dayanaadylkhanova/sales-stats/internal/adapter/store/postgres"
	"github.com/dayanaadylkhanova/sales-stats/internal/adapter/store/sqlite"
	http_server "github.com/dayanaadylkhanova/sales-stats/internal/adapter/transport/http"
	"github.com/dayanaadylkhanova/sales-stats/internal/service"
	"github.com/dayanaadylkhanova/sales-stats/pkg/config"
	"go.uber.org/zap"
)

type AppInfo struct {
	Name      string
	BuildTime string
	Commit    string
	Release   string
}

// store is what the app owns on top of service.SaleStore.
type store interface {
	service.SaleStore
	Close()
}

type App struct {
	cfg  config.Config
	info *AppInfo
	log  *zap.Logger

	store  store
	sales  *service.Sales
	server *http_server.Server
}

func New(ctx context.Context, cfg config.Config, info *AppInfo, log *zap.Logger) (*App, error) {
	// 1) Store
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreOpen, err)
	}

	// 2) Service
	sales := service.NewSales(log.Named("sales"), st)

	// 3) HTTP server
	srv := http_server.NewServer(log, cfg.ListenAddr, sales, cfg.ReadMaxRangeDays)

	return &App{
		cfg:    cfg,
		info:   info,
		log:    log,
		store:  st,
		sales:  sales,
		server: srv,
	}, nil
}

func openStore(ctx context.Context, cfg config.Config, log *zap.Logger) (store, error) {
	log.Info("opening store", zap.String("driver", cfg.StoreDriver))
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		st, err := postgres.New(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		if err := st.Init(ctx); err != nil {
			st.Close()
			return nil, err
		}
		return st, nil
	case config.DriverSQLite:
		st, err := sqlite.New(cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		if err := st.Init(ctx); err != nil {
			st.Close()
			return nil, err
		}
		return st, nil
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func (a *App) Run(ctx context.Context) error {
	httpErrCh := make(chan error, 1)
	go func() { httpErrCh <- a.server.Start() }()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ErrAppShutdownNormal
	case err := <-httpErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server", zap.Error(err))
			runErr = ErrAppStartup
		} else {
			runErr = ErrAppShutdownNormal
		}
	}

	// Graceful shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.cfg.ShutdownWait)
	defer cancelShutdown()
	if err := a.server.Shutdown(shutdownCtx); err != nil && runErr == ErrAppShutdownNormal {
		a.log.Warn("http shutdown", zap.Error(err))
		runErr = ErrAppShutdownWithError
	}
	a.store.Close()

	return runErr
}
