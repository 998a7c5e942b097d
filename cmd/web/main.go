// cmd/web/main.go
//
// headmeta – HTTP entry point.
//
// Start-up sequence
// -----------------
//
//  1. Load config (.env → conf/headmeta.yaml → HEADMETA_ env).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Open the page store:
//
//     • source: file – descriptors under pages.dir
//     • source: sql  – `page` table; a `vault:` password is resolved first
//
//     Either one is fronted by an LRU (pages.cache_size).
//
//  4. Build the chi router and serve with hardened timeouts.
//
//  5. SIGHUP reloads config and purges the page cache; SIGINT / SIGTERM
//     drain in-flight requests and exit.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/yanizio/headmeta/internal/config"
	"github.com/yanizio/headmeta/internal/database"
	"github.com/yanizio/headmeta/internal/logger"
	"github.com/yanizio/headmeta/internal/page"
	"github.com/yanizio/headmeta/internal/server"
	"github.com/yanizio/headmeta/internal/vault"
)

const shutdownGrace = 10 * time.Second

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	// Console logger until the file logger is up.
	if _, err := logger.Console("info"); err != nil {
		log.Fatalf("start console logger: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Log.Dir, cfg.Log.Level, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//
	// ── 1.  Page store ──────────────────────────────────────────────────
	//
	inner, db, err := openStore(ctx, cfg)
	if err != nil {
		logOut.Fatalw("open page store", "source", cfg.Pages.Source, "err", err)
	}
	if db != nil {
		defer db.Close()
	}
	store := page.NewCached(inner, cfg.Pages.CacheSize)
	logOut.Infow("page store online", "source", cfg.Pages.Source, "cache_size", cfg.Pages.CacheSize)

	//
	// ── 2.  Reload on SIGHUP ────────────────────────────────────────────
	//
	go watchReload(ctx, logOut, store)

	//
	// ── 3.  Router + server ─────────────────────────────────────────────
	//
	router := server.NewRouter(server.Deps{
		Store:      store,
		Site:       func() config.Site { return config.Get().Site },
		Log:        logOut,
		ForceHTTPS: func() bool { return config.Get().HTTP.ForceHTTPS },
	})
	srv := server.New(cfg.HTTP.ListenAddr, router)

	errCh := make(chan error, 1)
	go func() {
		logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logOut.Fatalw("http server", "err", err)
		}
	case <-ctx.Done():
		logOut.Infow("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			logOut.Errorw("graceful shutdown failed", "err", err)
		}
	}
}

// openStore returns the configured backend.  db is non-nil for the SQL
// source and must be closed by the caller.
func openStore(ctx context.Context, cfg *config.Config) (page.Store, *sqlx.DB, error) {
	if cfg.Pages.Source != "sql" {
		return page.NewFileStore(cfg.Pages.Dir), nil, nil
	}

	password := cfg.Database.Password
	if vault.IsRef(password) {
		cli, err := vault.New(ctx)
		if err != nil {
			return nil, nil, err
		}
		if password, err = cli.Resolve(ctx, password); err != nil {
			return nil, nil, err
		}
	}

	db, err := database.Open(cfg.Database.DSN, password)
	if err != nil {
		return nil, nil, err
	}
	return page.NewSQLStore(db), db, nil
}

// watchReload reloads config and drops cached descriptors on SIGHUP.
// Site defaults and http.force_https follow the reloaded config; the listen
// address, log settings, and pages.* stay as they were at startup.
func watchReload(ctx context.Context, log *zap.SugaredLogger, store *page.Cached) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			if err := config.Reload(); err != nil {
				log.Errorw("config reload failed, keeping previous config", "err", err)
				continue
			}
			store.Purge()
			log.Infow("site defaults and force_https reloaded, page cache purged",
				"restart_required_for", "http.listen_addr, log.*, pages.*")
		}
	}
}
