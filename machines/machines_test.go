package machines

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-formula/execution/data"
	"github.com/robbyt/go-formula/execution/formula"
	"github.com/robbyt/go-formula/execution/formula/loader"
	"github.com/robbyt/go-formula/machines/arith"
	"github.com/robbyt/go-formula/machines/types"
)

func newTestHandler(t *testing.T) slog.Handler {
	t.Helper()
	return slog.NewTextHandler(io.Discard, nil)
}

func TestNewCompiler(t *testing.T) {
	t.Parallel()

	t.Run("arith with nil options", func(t *testing.T) {
		t.Parallel()
		compiler, err := NewCompiler(newTestHandler(t), types.Arith, nil)
		require.NoError(t, err)
		require.NotNil(t, compiler)
	})

	t.Run("arith with typed options", func(t *testing.T) {
		t.Parallel()
		opts := []arith.CompilerOption{arith.WithMaxNestingDepth(8)}
		compiler, err := NewCompiler(newTestHandler(t), types.Arith, opts)
		require.NoError(t, err)
		require.NotNil(t, compiler)
	})

	t.Run("wrong option type fails", func(t *testing.T) {
		t.Parallel()
		_, err := NewCompiler(newTestHandler(t), types.Arith, "not options")
		require.Error(t, err)
	})

	t.Run("unknown machine type fails", func(t *testing.T) {
		t.Parallel()
		_, err := NewCompiler(newTestHandler(t), types.Type("tabular"), nil)
		require.Error(t, err)
	})
}

func TestNewEvaluator(t *testing.T) {
	t.Parallel()

	t.Run("arith template", func(t *testing.T) {
		t.Parallel()
		l, err := loader.NewFromString("@VALUE+1")
		require.NoError(t, err)

		compiler, err := NewCompiler(newTestHandler(t), types.Arith, nil)
		require.NoError(t, err)

		tmpl, err := formula.NewTemplate(
			newTestHandler(t), "", l, compiler, data.NewValueProvider(1),
		)
		require.NoError(t, err)

		evaluator, err := NewEvaluator(newTestHandler(t), tmpl)
		require.NoError(t, err)
		require.NotNil(t, evaluator)
	})

	t.Run("nil template fails", func(t *testing.T) {
		t.Parallel()
		_, err := NewEvaluator(newTestHandler(t), nil)
		require.Error(t, err)
	})
}

func TestTypesFromString(t *testing.T) {
	t.Parallel()

	got, err := types.FromString("arith")
	require.NoError(t, err)
	require.Equal(t, types.Arith, got)

	_, err = types.FromString("wasm")
	require.Error(t, err)
}
