package main

import (
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptsDefaults(t *testing.T) {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	_, err := parser.ParseArgs([]string{})
	require.NoError(t, err)

	assert.Equal(t, "config.yml", opts.Config)
	assert.False(t, opts.Debug)
	assert.False(t, opts.NoColor)
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		setupLog(true, false)
		// the function should complete without panic
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		setupLog(false, false)
	})

	t.Run("no color", func(t *testing.T) {
		setupLog(false, true)
	})

	t.Run("with secrets", func(t *testing.T) {
		setupLog(true, false, "secret-token", "secret-key")
		// secrets configuration is internal to lgr
	})
}
