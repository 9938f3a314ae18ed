package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverridesApply(t *testing.T) {
	width := 1024
	vsync := false
	speed := 0.5

	cfg := Default()
	err := Overrides{Width: &width, VSync: &vsync, MoveSpeed: &speed}.Apply(cfg)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, 0.5, cfg.Controls.MoveSpeed)
	assert.Equal(t, 0.005, cfg.Controls.LookSensitivity)
}

func TestOverridesEmpty(t *testing.T) {
	cfg := Default()
	require.NoError(t, Overrides{}.Apply(cfg))
	assert.Equal(t, Default(), cfg)
}

func TestOverridesValidate(t *testing.T) {
	height := 0
	cfg := Default()
	assert.ErrorIs(t, Overrides{Height: &height}.Apply(cfg), ErrInvalid)
}
