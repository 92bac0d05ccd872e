package mapboxglstyle

import "errors"

// sentinel error objects, to be wrapped with errorsx.Wrap and checked with
// errorsx.Cause
var (
	ErrUnknownOperator  = errors.New("unknown filter operator")
	ErrArityMismatch    = errors.New("wrong number of operands for filter operator")
	ErrBadKey           = errors.New("filter key must be a string")
	ErrUnsupportedValue = errors.New("unsupported filter value type")
	ErrColorSyntax      = errors.New("unknown color syntax")
)
