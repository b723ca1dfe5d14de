package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dokzlo13/hsbk/internal/color"
	"github.com/dokzlo13/hsbk/internal/config"
)

func TestNew_SeedsPalette(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "app.sqlite")
	cfg.Palette["red"] = color.RGB(255, 0, 0)

	a, err := New(cfg)
	require.NoError(t, err)
	defer a.Close()

	entry, err := a.Palette().Get("red")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.True(t, entry.Color.Equal(color.HSB(0, 1, 1)))
}

func TestNew_ReopenKeepsSavedColors(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "app.sqlite")
	cfg.Palette["red"] = color.RGB(255, 0, 0)

	a, err := New(cfg)
	require.NoError(t, err)
	_, err = a.Palette().Save("red", color.RGB(0, 0, 255))
	require.NoError(t, err)
	require.NoError(t, a.Close())

	for i := 0; i < 2; i++ {
		a, err := New(cfg)
		require.NoError(t, err)
		require.NoError(t, a.Close())
	}

	a, err = New(cfg)
	require.NoError(t, err)
	defer a.Close()

	entry, err := a.Palette().Get("red")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.True(t, entry.Color.Equal(color.HSB(240, 1, 1)))
	assert.Equal(t, int64(2), entry.Version)
}

func TestNew_RejectsInvalidPalette(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Memory = true
	cfg.Palette["hot"] = color.White(1, 1000)

	_, err := New(cfg)
	assert.ErrorIs(t, err, color.ErrOutOfRange)

	cfg.Color.Lenient = true
	a, err := New(cfg)
	require.NoError(t, err)
	assert.NoError(t, a.Close())
}
