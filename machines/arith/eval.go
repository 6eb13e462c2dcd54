// Package arith implements the left-to-right arithmetic formula machine.
//
// Formulas combine decimal numerals with the binary operators + - * / % and
// parenthetical grouping. There is no operator precedence: 2+3*4 evaluates
// to 20, not 14. Parentheses are the only way to override textual order.
// The @VALUE placeholder is replaced with the bound value's decimal text
// before tokenization.
package arith

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Evaluate substitutes boundValue for every placeholder occurrence in the
// formula template, then evaluates the result strictly left-to-right.
// Whitespace anywhere in the template carries no meaning. Division and
// modulus follow float64 semantics: dividing by zero yields ±Inf or NaN as a
// successful result, never an error.
func Evaluate(boundValue float64, template string) (float64, error) {
	substituted := Substitute(boundValue, template)
	return evaluate(substituted, 0)
}

// Substitute strips whitespace from the template and replaces every
// placeholder occurrence with the canonical decimal text of boundValue.
func Substitute(boundValue float64, template string) string {
	return strings.ReplaceAll(
		stripWhitespace(template),
		Placeholder,
		strconv.FormatFloat(boundValue, 'f', -1, 64),
	)
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// splitPending runs the validation pre-pass: the formula is split on every
// operator and grouping character and each non-empty fragment must parse as a
// finite number. The parsed fragments become the initial pending-values
// buffer the evaluator collapses in place.
//
// A formula whose first character is an operator gets an implicit leading
// zero, so a leading sign folds as "0 op x" and a bare "-3.5" evaluates to
// -3.5 even though '-' is always an operator token.
func splitPending(formula string) ([]float64, error) {
	pending := make([]float64, 0, 8)

	if formula != "" && strings.IndexByte(binaryOperators, formula[0]) >= 0 {
		pending = append(pending, 0)
	}

	for _, frag := range strings.FieldsFunc(formula, isOperatorRune) {
		num, err := strconv.ParseFloat(frag, 64)
		if err != nil || math.IsInf(num, 0) || math.IsNaN(num) {
			return nil, fmt.Errorf("%w: %q", ErrMalformedNumber, frag)
		}
		pending = append(pending, num)
	}

	return pending, nil
}

func isOperatorRune(r rune) bool {
	return r < utf8RuneSelf && strings.IndexByte(operatorChars, byte(r)) >= 0
}

const utf8RuneSelf = 0x80

// evaluation is the working state of a single evaluate call. Each call owns
// its remaining-text string and pending buffer, so concurrent evaluations
// never share mutable state.
type evaluation struct {
	remaining string
	pending   []float64
	maxDepth  int
}

// evaluate reduces a substituted, whitespace-free formula to a single number.
// maxDepth bounds grouping recursion; zero means unlimited.
func evaluate(formula string, maxDepth int) (float64, error) {
	pending, err := splitPending(formula)
	if err != nil {
		return 0, err
	}

	ev := &evaluation{
		remaining: formula,
		pending:   pending,
		maxDepth:  maxDepth,
	}

	if err := ev.run(0, 0); err != nil {
		return 0, err
	}

	// A well-formed formula collapses to exactly one value. Anything left
	// over is a disconnected literal, e.g. "(1+2)3".
	if len(ev.pending) != 1 {
		return 0, fmt.Errorf(
			"%w: %d values remain after evaluation",
			ErrMalformedExpression, len(ev.pending),
		)
	}

	return ev.pending[0], nil
}

// run evaluates one grouping level. An opening paren recurses; the matching
// closing paren returns control to the caller, so call depth encodes nesting.
// index is the cursor into the pending buffer for this level.
func (ev *evaluation) run(index, depth int) error {
	if ev.maxDepth > 0 && depth > ev.maxDepth {
		return fmt.Errorf("%w: %d", ErrNestingTooDeep, depth)
	}

	for {
		tok, err := nextToken(ev.remaining)
		if err != nil {
			return err
		}

		if tok.kind == tokenNone {
			if depth > 0 {
				return fmt.Errorf("%w: missing closing parenthesis", ErrUnbalancedGrouping)
			}
			return nil
		}

		ev.remaining = ev.remaining[len(tok.text):]

		switch tok.kind {
		case tokenLParen:
			// Evaluate the group at the same cursor, then continue here.
			if err := ev.run(index, depth+1); err != nil {
				return err
			}

		case tokenRParen:
			if depth == 0 {
				return fmt.Errorf("%w: unexpected closing parenthesis", ErrUnbalancedGrouping)
			}
			return nil

		case tokenOperator:
			if err := ev.applyOperator(tok, index, depth); err != nil {
				return err
			}

		case tokenNumber:
			// Already reflected in the pending buffer by the validation
			// pre-pass; informational only.
		}
	}
}

// applyOperator folds pending[index] op pending[index+1] into pending[index].
// The right-hand operand is either the next numeral (which must match the
// pending slot: the source's self-consistency check, preserved as specified)
// or a parenthesized group collapsed into the slot first.
func (ev *evaluation) applyOperator(tok token, index, depth int) error {
	next, err := nextToken(ev.remaining)
	if err != nil {
		return err
	}

	switch next.kind {
	case tokenLParen:
		ev.remaining = ev.remaining[1:]
		if err := ev.run(index+1, depth+1); err != nil {
			return err
		}
	case tokenNumber:
		if index+1 >= len(ev.pending) || ev.pending[index+1] != next.num {
			return fmt.Errorf("%w: next token is not the expected number", ErrMalformedExpression)
		}
	default:
		return fmt.Errorf(
			"%w: operator %q is not followed by a number or group",
			ErrMalformedExpression, tok.text,
		)
	}

	if index+1 >= len(ev.pending) {
		return fmt.Errorf("%w: operator %q has no right-hand operand", ErrMalformedExpression, tok.text)
	}

	ev.pending[index] = applyBinary(tok.op, ev.pending[index], ev.pending[index+1])
	ev.pending = append(ev.pending[:index+1], ev.pending[index+2:]...)
	return nil
}

func applyBinary(op byte, left, right float64) float64 {
	switch op {
	case '+':
		return left + right
	case '-':
		return left - right
	case '*':
		return left * right
	case '/':
		return left / right
	case '%':
		return math.Mod(left, right)
	}
	// The tokenizer only emits the five operators above.
	return 0
}
