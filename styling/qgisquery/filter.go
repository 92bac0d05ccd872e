package qgisquery

import (
	"strings"

	"github.com/jamesrr39/goutil/errorsx"
)

// Filter is one node of a filter expression tree. QueryString renders the
// node as a QGIS expression fragment; it is deterministic and total over
// filters that pass Validate.
type Filter interface {
	Validate() errorsx.Error
	QueryString() string
}

type LogicalFilterOperator string

const (
	LogicalFilterOperatorAnd LogicalFilterOperator = "AND"
	LogicalFilterOperatorOr  LogicalFilterOperator = "OR"
)

type LogicalFilter struct {
	Operator     LogicalFilterOperator
	ChildFilters []Filter
}

func (lf *LogicalFilter) Validate() errorsx.Error {
	switch lf.Operator {
	case LogicalFilterOperatorAnd, LogicalFilterOperatorOr:
	default:
		return errorsx.Errorf("unrecognised logical operator: %q", lf.Operator)
	}

	if len(lf.ChildFilters) == 0 {
		return errorsx.Errorf("no child filters supplied")
	}

	for _, childFilter := range lf.ChildFilters {
		err := childFilter.Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// each child is rendered in its own parentheses, e.g. ("a" = 1) AND ("b" = 2)
func (lf *LogicalFilter) QueryString() string {
	var clauses []string
	for _, childFilter := range lf.ChildFilters {
		clauses = append(clauses, "("+childFilter.QueryString()+")")
	}

	return strings.Join(clauses, " "+string(lf.Operator)+" ")
}
