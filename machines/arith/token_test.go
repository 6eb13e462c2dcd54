package arith

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	t.Parallel()

	t.Run("valid tokens", func(t *testing.T) {
		cases := []struct {
			name     string
			input    string
			wantKind tokenKind
			wantText string
			wantNum  float64
		}{
			{
				name:     "empty input yields none",
				input:    "",
				wantKind: tokenNone,
			},
			{
				name:     "integer numeral",
				input:    "42+1",
				wantKind: tokenNumber,
				wantText: "42",
				wantNum:  42,
			},
			{
				name:     "decimal numeral",
				input:    "3.5*2",
				wantKind: tokenNumber,
				wantText: "3.5",
				wantNum:  3.5,
			},
			{
				name:     "numeral runs to end of input",
				input:    "123",
				wantKind: tokenNumber,
				wantText: "123",
				wantNum:  123,
			},
			{
				name:     "plus operator",
				input:    "+3",
				wantKind: tokenOperator,
				wantText: "+",
			},
			{
				name:     "leading minus is an operator, not a sign",
				input:    "-3.5",
				wantKind: tokenOperator,
				wantText: "-",
			},
			{
				name:     "modulus operator",
				input:    "%2",
				wantKind: tokenOperator,
				wantText: "%",
			},
			{
				name:     "opening paren",
				input:    "(1+2)",
				wantKind: tokenLParen,
				wantText: "(",
			},
			{
				name:     "closing paren",
				input:    ")*2",
				wantKind: tokenRParen,
				wantText: ")",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				tok, err := nextToken(tc.input)
				require.NoError(t, err)
				require.Equal(t, tc.wantKind, tok.kind)
				require.Equal(t, tc.wantText, tok.text)
				if tc.wantKind == tokenNumber {
					require.InDelta(t, tc.wantNum, tok.num, 1e-12)
				}
			})
		}
	})

	t.Run("malformed numerals", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
		}{
			{
				name:  "alphabetic fragment",
				input: "x+1",
			},
			{
				name:  "two decimal points",
				input: "1..5",
			},
			{
				name:  "infinity literal rejected",
				input: "Inf+1",
			},
			{
				name:  "NaN literal rejected",
				input: "NaN",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				_, err := nextToken(tc.input)
				require.ErrorIs(t, err, ErrMalformedNumber)
			})
		}
	})

	t.Run("peek does not consume", func(t *testing.T) {
		t.Parallel()
		input := "12+3"

		first, err := nextToken(input)
		require.NoError(t, err)

		again, err := nextToken(input)
		require.NoError(t, err)
		require.Equal(t, first, again)

		// The caller truncates; the next peek sees the operator.
		rest := input[len(first.text):]
		op, err := nextToken(rest)
		require.NoError(t, err)
		require.Equal(t, tokenOperator, op.kind)
		require.Equal(t, "+", op.text)
	})
}
