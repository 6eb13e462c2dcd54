package arith

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompiler_Compile(t *testing.T) {
	t.Parallel()

	newReader := func(s string) io.ReadCloser {
		return io.NopCloser(strings.NewReader(s))
	}

	t.Run("valid templates", func(t *testing.T) {
		cases := []struct {
			name           string
			template       string
			wantNormalized string
		}{
			{
				name:           "simple expression",
				template:       "2+3",
				wantNormalized: "2+3",
			},
			{
				name:           "whitespace stripped",
				template:       " @VALUE * 2 ",
				wantNormalized: "@VALUE*2",
			},
			{
				name:           "grouping preserved",
				template:       "(@VALUE + 1) / 4",
				wantNormalized: "(@VALUE+1)/4",
			},
			{
				name:           "placeholder only",
				template:       "@VALUE",
				wantNormalized: "@VALUE",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				compiler, err := NewCompiler(newTestHandler(t))
				require.NoError(t, err)

				content, err := compiler.Compile(newReader(tc.template))
				require.NoError(t, err)
				require.NotNil(t, content)

				exe, ok := content.(*Executable)
				require.True(t, ok)
				require.Equal(t, tc.wantNormalized, exe.GetNormalizedString())
				require.Equal(t, strings.TrimSpace(tc.template), exe.GetSource())
			})
		}
	})

	t.Run("invalid templates", func(t *testing.T) {
		cases := []struct {
			name     string
			template string
			wantErr  error
		}{
			{
				name:     "empty template",
				template: "",
				wantErr:  ErrContentNil,
			},
			{
				name:     "whitespace only",
				template: "   \n\t ",
				wantErr:  ErrContentNil,
			},
			{
				name:     "stray letters",
				template: "2+x",
				wantErr:  ErrValidationFailed,
			},
			{
				name:     "wrong placeholder case",
				template: "@value+1",
				wantErr:  ErrValidationFailed,
			},
			{
				name:     "malformed numeral",
				template: "1..5+2",
				wantErr:  ErrValidationFailed,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				compiler, err := NewCompiler(newTestHandler(t))
				require.NoError(t, err)

				content, err := compiler.Compile(newReader(tc.template))
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, content)
			})
		}
	})

	t.Run("nil reader", func(t *testing.T) {
		t.Parallel()
		compiler, err := NewCompiler(newTestHandler(t))
		require.NoError(t, err)

		content, err := compiler.Compile(nil)
		require.ErrorIs(t, err, ErrContentNil)
		require.Nil(t, content)
	})

	t.Run("max nesting depth option", func(t *testing.T) {
		t.Parallel()
		compiler, err := NewCompiler(newTestHandler(t), WithMaxNestingDepth(4))
		require.NoError(t, err)

		content, err := compiler.Compile(newReader("((1+2))"))
		require.NoError(t, err)

		exe, ok := content.(*Executable)
		require.True(t, ok)
		require.Equal(t, 4, exe.GetMaxNestingDepth())
	})

	t.Run("negative nesting depth rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewCompiler(newTestHandler(t), WithMaxNestingDepth(-1))
		require.Error(t, err)
	})
}

func TestExecutable(t *testing.T) {
	t.Parallel()

	t.Run("placeholder detection", func(t *testing.T) {
		t.Parallel()
		withPlaceholder := NewExecutable("@VALUE+1", "@VALUE+1", 0)
		require.NotNil(t, withPlaceholder)
		require.True(t, withPlaceholder.HasPlaceholder())

		withoutPlaceholder := NewExecutable("2+3", "2+3", 0)
		require.NotNil(t, withoutPlaceholder)
		require.False(t, withoutPlaceholder.HasPlaceholder())
	})

	t.Run("empty inputs yield nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, NewExecutable("", "2+3", 0))
		require.Nil(t, NewExecutable("2+3", "", 0))
	})
}
