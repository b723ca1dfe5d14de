package lua

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/dokzlo13/hsbk/internal/lua/modules"
	"github.com/dokzlo13/hsbk/internal/palette"
)

// ErrRuntimeClosed is returned when the Lua runtime is closed
var ErrRuntimeClosed = errors.New("lua runtime closed")

// Runtime owns a Lua VM with the color, palette and log modules preloaded.
// An LState is not goroutine safe; Runtime serializes every execution.
type Runtime struct {
	L       *lua.LState
	palette palette.Store
	lenient bool

	mu     sync.Mutex
	closed bool
}

// NewRuntime creates a new Lua runtime.
// With lenient set, the color module hands out-of-range colors through instead of raising.
func NewRuntime(store palette.Store, lenient bool) *Runtime {
	r := &Runtime{
		L:       lua.NewState(),
		palette: store,
		lenient: lenient,
	}

	r.registerModules()

	return r
}

// registerModules registers all Lua modules
func (r *Runtime) registerModules() {
	modules.RegisterColorType(r.L)

	r.L.PreloadModule("log", modules.NewLogModule().Loader)
	r.L.PreloadModule("color", modules.NewColorModule(r.lenient).Loader)
	r.L.PreloadModule("palette", modules.NewPaletteModule(r.palette).Loader)
}

// Close closes the Lua state. Later calls to Run* return ErrRuntimeClosed.
func (r *Runtime) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}

// RunFile loads and executes a Lua script
func (r *Runtime) RunFile(ctx context.Context, path string) error {
	log.Info().Str("path", path).Msg("Running Lua script")

	err := r.execute(ctx, func() error { return r.L.DoFile(path) })
	if err != nil {
		return fmt.Errorf("failed to execute Lua script: %w", err)
	}

	log.Debug().Str("path", path).Msg("Lua script finished")
	return nil
}

// RunString executes a Lua chunk
func (r *Runtime) RunString(ctx context.Context, src string) error {
	if err := r.execute(ctx, func() error { return r.L.DoString(src) }); err != nil {
		return fmt.Errorf("failed to execute Lua chunk: %w", err)
	}
	return nil
}

// execute runs work on the VM with panic recovery.
// The context is set on the LState so a cancelled context aborts the script.
func (r *Runtime) execute(ctx context.Context, work func() error) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRuntimeClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().
				Interface("panic", rec).
				Msg("Lua work panicked")
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()

	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	return work()
}
