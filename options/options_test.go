package options

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-formula/execution/data"
	"github.com/robbyt/go-formula/execution/formula/loader"
	"github.com/robbyt/go-formula/machines/arith"
	"github.com/robbyt/go-formula/machines/types"
)

func applyOptions(t *testing.T, cfg *Config, opts ...Option) {
	t.Helper()
	for _, opt := range opts {
		require.NoError(t, opt(cfg))
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("WithLogger", func(t *testing.T) {
		t.Parallel()
		handler := slog.NewTextHandler(io.Discard, nil)
		cfg := &Config{}
		applyOptions(t, cfg, WithLogger(handler))
		require.Equal(t, handler, cfg.GetHandler())

		// nil handler is ignored
		applyOptions(t, cfg, WithLogger(nil))
		require.Equal(t, handler, cfg.GetHandler())
	})

	t.Run("WithDataProvider", func(t *testing.T) {
		t.Parallel()
		provider := data.NewValueProvider(42)
		cfg := &Config{}
		applyOptions(t, cfg, WithDataProvider(provider))
		require.Equal(t, provider, cfg.GetDataProvider())

		applyOptions(t, cfg, WithDataProvider(nil))
		require.Equal(t, provider, cfg.GetDataProvider())
	})

	t.Run("WithValue", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{}
		applyOptions(t, cfg, WithValue(3.5))
		require.Equal(t, data.NewValueProvider(3.5), cfg.GetDataProvider())
	})

	t.Run("WithLoader", func(t *testing.T) {
		t.Parallel()
		l, err := loader.NewFromString("@VALUE+1")
		require.NoError(t, err)

		cfg := &Config{}
		applyOptions(t, cfg, WithLoader(l))
		require.Equal(t, l, cfg.GetLoader())

		applyOptions(t, cfg, WithLoader(nil))
		require.Equal(t, l, cfg.GetLoader())
	})

	t.Run("WithCompilerOptions", func(t *testing.T) {
		t.Parallel()
		opts := []arith.CompilerOption{arith.WithMaxNestingDepth(4)}
		cfg := &Config{}
		applyOptions(t, cfg, WithCompilerOptions(opts))
		require.Equal(t, any(opts), cfg.GetCompilerOptions())
	})
}

func TestWithDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills empty config", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{}
		applyOptions(t, cfg, WithDefaults())
		require.NotNil(t, cfg.GetHandler())
		require.NotNil(t, cfg.GetDataProvider())
	})

	t.Run("preserves explicit settings", func(t *testing.T) {
		t.Parallel()
		handler := slog.NewTextHandler(io.Discard, nil)
		provider := data.NewValueProvider(1)

		cfg := &Config{}
		applyOptions(t, cfg, WithLogger(handler), WithDataProvider(provider), WithDefaults())
		require.Equal(t, handler, cfg.GetHandler())
		require.Equal(t, provider, cfg.GetDataProvider())
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	l, err := loader.NewFromString("1+2")
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig(types.Arith)
		cfg.SetMachineType(types.Arith)
		applyOptions(t, cfg, WithLoader(l))
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing loader", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig(types.Arith)
		require.Error(t, cfg.Validate())
	})

	t.Run("missing machine type", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{}
		applyOptions(t, cfg, WithLoader(l))
		require.Error(t, cfg.Validate())
	})
}
