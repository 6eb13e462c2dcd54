package arith

import "errors"

var ErrContentNil = errors.New("content is nil")
var ErrValidationFailed = errors.New("formula validation error")
var ErrMalformedNumber = errors.New("malformed number")
var ErrMalformedExpression = errors.New("malformed expression")
var ErrUnbalancedGrouping = errors.New("unbalanced grouping")
var ErrPlaceholderSubstitution = errors.New("bound value cannot be rendered to a numeral")
var ErrNestingTooDeep = errors.New("grouping nested deeper than the configured limit")
