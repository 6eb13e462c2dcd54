package formula

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-formula/execution/data"
	"github.com/robbyt/go-formula/machines/arith"
	"github.com/robbyt/go-formula/options"
)

func testLogger(t *testing.T) options.Option {
	t.Helper()
	return options.WithLogger(slog.NewTextHandler(io.Discard, nil))
}

func TestFromString(t *testing.T) {
	t.Parallel()

	t.Run("static bound value", func(t *testing.T) {
		t.Parallel()
		evaluator, err := FromString("@VALUE * 2", testLogger(t), options.WithValue(21))
		require.NoError(t, err)

		resp, err := evaluator.Eval(context.Background())
		require.NoError(t, err)
		require.Equal(t, "42", resp.Inspect())
		require.Equal(t, float64(42), resp.Interface())
	})

	t.Run("left to right without precedence", func(t *testing.T) {
		t.Parallel()
		evaluator, err := FromString("2 + 3 * 4", testLogger(t))
		require.NoError(t, err)

		resp, err := evaluator.Eval(context.Background())
		require.NoError(t, err)
		require.Equal(t, "20", resp.Inspect())
	})

	t.Run("prepare context flow", func(t *testing.T) {
		t.Parallel()
		evaluator, err := FromString("@VALUE + 0.5", testLogger(t))
		require.NoError(t, err)

		ctx, err := evaluator.PrepareContext(context.Background(), 3.5)
		require.NoError(t, err)

		resp, err := evaluator.Eval(ctx)
		require.NoError(t, err)
		require.Equal(t, "4", resp.Inspect())
	})

	t.Run("run many times with different values", func(t *testing.T) {
		t.Parallel()
		evaluator, err := FromString("(@VALUE + 1) * 10", testLogger(t))
		require.NoError(t, err)

		for value, want := range map[float64]string{0: "10", 1: "20", 4.5: "55"} {
			ctx, err := evaluator.PrepareContext(context.Background(), value)
			require.NoError(t, err)

			resp, err := evaluator.Eval(ctx)
			require.NoError(t, err)
			require.Equal(t, want, resp.Inspect())
		}
	})

	t.Run("invalid formula fails at compile time", func(t *testing.T) {
		t.Parallel()
		_, err := FromString("2 + x", testLogger(t))
		require.Error(t, err)
		require.ErrorIs(t, err, arith.ErrValidationFailed)
	})

	t.Run("empty content fails", func(t *testing.T) {
		t.Parallel()
		_, err := FromString("", testLogger(t))
		require.Error(t, err)
	})
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "scale.formula")
		require.NoError(t, os.WriteFile(path, []byte("@VALUE / 10"), 0o644))

		evaluator, err := FromFile(path, testLogger(t), options.WithValue(250))
		require.NoError(t, err)

		resp, err := evaluator.Eval(context.Background())
		require.NoError(t, err)
		require.Equal(t, "25", resp.Inspect())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := FromFile(filepath.Join(t.TempDir(), "nope.formula"), testLogger(t))
		require.Error(t, err)
	})
}

func TestFromHTTP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("@VALUE % 3"))
	}))
	t.Cleanup(server.Close)

	evaluator, err := FromHTTP(server.URL, testLogger(t), options.WithValue(10))
	require.NoError(t, err)

	resp, err := evaluator.Eval(context.Background())
	require.NoError(t, err)
	require.Equal(t, "1", resp.Inspect())
}

func TestEvaluatorWrapper_WithTemplate(t *testing.T) {
	t.Parallel()

	evaluator, err := FromString("@VALUE * 3", testLogger(t), options.WithValue(2))
	require.NoError(t, err)

	wrapper, ok := evaluator.(*EvaluatorWrapper)
	require.True(t, ok)
	require.NotNil(t, wrapper.GetTemplate())

	rebound := wrapper.GetTemplate().WithDataProvider(data.NewValueProvider(5))
	reboundEvaluator, err := wrapper.WithTemplate(rebound)
	require.NoError(t, err)

	resp, err := reboundEvaluator.Eval(context.Background())
	require.NoError(t, err)
	require.Equal(t, "15", resp.Inspect())

	// the original wrapper still uses its own binding
	resp, err = evaluator.Eval(context.Background())
	require.NoError(t, err)
	require.Equal(t, "6", resp.Inspect())
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	got, err := Evaluate(-3.5, "@VALUE")
	require.NoError(t, err)
	require.Equal(t, -3.5, got)

	got, err = Evaluate(4, "2*(3+@VALUE)")
	require.NoError(t, err)
	require.Equal(t, float64(14), got)

	_, err = Evaluate(0, "2+(3")
	require.ErrorIs(t, err, arith.ErrUnbalancedGrouping)
}
