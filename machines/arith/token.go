package arith

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Placeholder is the reserved marker replaced by the bound value's decimal
// text before any tokenization occurs. Case-sensitive.
const Placeholder = "@VALUE"

// operatorChars are the characters that terminate a numeral and form
// single-character tokens. Operators are never multi-character.
const operatorChars = "+-*/%()"

// binaryOperators are the operator characters excluding the grouping marks.
const binaryOperators = "+-*/%"

type tokenKind int

const (
	// tokenNone indicates the end of the remaining formula text.
	tokenNone tokenKind = iota
	// tokenNumber is a decimal numeral.
	tokenNumber
	// tokenOperator is one of + - * / %.
	tokenOperator
	// tokenLParen is an opening grouping mark.
	tokenLParen
	// tokenRParen is a closing grouping mark.
	tokenRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNumber:
		return "Number"
	case tokenOperator:
		return "Operator"
	case tokenLParen:
		return "LParen"
	case tokenRParen:
		return "RParen"
	}
	return "Unknown"
}

// token is a single lexical element of a formula. Tokens have no lifetime
// beyond a single evaluation pass.
type token struct {
	kind tokenKind
	text string
	num  float64 // set for tokenNumber
	op   byte    // set for tokenOperator
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text
}

// nextToken peeks the next token in the remaining formula text without
// consuming it; the caller truncates the returned token's text from the front
// of the string. The input must already be whitespace-free with the bound
// value substituted.
//
// An empty input yields a tokenNone token, not an error. A leading operator
// character is always a single-character token; a leading '-' is never folded
// into a numeral. Anything else is the maximal run up to the next operator or
// grouping character, which must parse as a finite decimal number.
func nextToken(remaining string) (token, error) {
	if remaining == "" {
		return token{kind: tokenNone}, nil
	}

	c := remaining[0]
	switch {
	case c == '(':
		return token{kind: tokenLParen, text: "("}, nil
	case c == ')':
		return token{kind: tokenRParen, text: ")"}, nil
	case strings.IndexByte(binaryOperators, c) >= 0:
		return token{kind: tokenOperator, text: remaining[:1], op: c}, nil
	}

	end := strings.IndexAny(remaining, operatorChars)
	if end < 0 {
		end = len(remaining)
	}

	frag := remaining[:end]
	num, err := strconv.ParseFloat(frag, 64)
	if err != nil || math.IsInf(num, 0) || math.IsNaN(num) {
		return token{}, fmt.Errorf("%w: %q", ErrMalformedNumber, frag)
	}

	return token{kind: tokenNumber, text: frag, num: num}, nil
}
