package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/dokzlo13/hsbk/internal/config"
	"github.com/dokzlo13/hsbk/internal/db"
	"github.com/dokzlo13/hsbk/internal/lua"
	"github.com/dokzlo13/hsbk/internal/palette"
)

// App wires configuration, storage and scripting together.
type App struct {
	cfg     *config.Config
	db      *db.DB
	palette palette.Store
}

// New opens the palette store and seeds it with the configured colors.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}

	if cfg.Database.Memory {
		a.palette = palette.NewMemoryStore()
		log.Debug().Msg("Using in-memory palette")
	} else {
		database, err := db.Open(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		a.db = database
		a.palette = palette.NewSQLiteStore(database.DB)
		log.Debug().Str("path", cfg.Database.Path).Msg("Opened palette database")
	}

	if !cfg.Color.Lenient {
		for name, c := range cfg.Palette {
			if err := c.Validate(); err != nil {
				a.Close()
				return nil, fmt.Errorf("palette color %q: %w", name, err)
			}
		}
	}

	if err := palette.Seed(a.palette, cfg.Palette); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

// Config returns the loaded configuration
func (a *App) Config() *config.Config {
	return a.cfg
}

// Palette returns the palette store
func (a *App) Palette() palette.Store {
	return a.palette
}

// NewRuntime creates a Lua runtime bound to this app's palette.
// The caller owns the runtime and must Close it.
func (a *App) NewRuntime() *lua.Runtime {
	return lua.NewRuntime(a.palette, a.cfg.Color.Lenient)
}

// Close releases the database, if any.
func (a *App) Close() error {
	if a.db != nil {
		err := a.db.Close()
		a.db = nil
		return err
	}
	return nil
}

// SignalContext creates a context that is cancelled when SIGINT or SIGTERM is received.
func SignalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			log.Warn().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
