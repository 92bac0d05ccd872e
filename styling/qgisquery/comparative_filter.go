package qgisquery

import (
	"github.com/jamesrr39/goutil/errorsx"
)

type ComparativeOperator string

// note: single "=", not "==". This is what the downstream expression engine
// understands.
const (
	ComparativeOperatorEqualTo              ComparativeOperator = "="
	ComparativeOperatorNotEqualTo           ComparativeOperator = "!="
	ComparativeOperatorGreaterThanOrEqualTo ComparativeOperator = ">="
	ComparativeOperatorGreaterThan          ComparativeOperator = ">"
	ComparativeOperatorLessThanOrEqualTo    ComparativeOperator = "<="
	ComparativeOperatorLessThan             ComparativeOperator = "<"
)

type ComparativeFilter struct {
	Field    FieldRef
	Operator ComparativeOperator
	Operand  Value
}

func (cf *ComparativeFilter) Validate() errorsx.Error {
	switch cf.Operator {
	case ComparativeOperatorEqualTo,
		ComparativeOperatorNotEqualTo,
		ComparativeOperatorGreaterThanOrEqualTo,
		ComparativeOperatorGreaterThan,
		ComparativeOperatorLessThanOrEqualTo,
		ComparativeOperatorLessThan:
	default:
		return errorsx.Errorf("unrecognised comparative operator: %q", cf.Operator)
	}

	if cf.Operand == nil {
		return errorsx.Errorf("operand is nil")
	}

	return nil
}

func (cf *ComparativeFilter) QueryString() string {
	return cf.Field.QueryString() + " " + string(cf.Operator) + " " + cf.Operand.QueryString()
}
