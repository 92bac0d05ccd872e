package qgisquery

import (
	"strconv"
	"strings"
)

// Value is one operand value inside a filter expression.
type Value interface {
	QueryString() string
}

type StringValue string

func (v StringValue) QueryString() string {
	return quoteStringLiteral(string(v))
}

type IntValue int64

func (v IntValue) QueryString() string {
	return strconv.FormatInt(int64(v), 10)
}

type FloatValue float64

func (v FloatValue) QueryString() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// ExpressionValue wraps a nested filter used as an operand, e.g. the children
// of an "all"/"any" filter.
type ExpressionValue struct {
	Filter Filter
}

func (v ExpressionValue) QueryString() string {
	return v.Filter.QueryString()
}

// GeometryTypeFieldName is the field the downstream renderer exposes for the
// feature's geometry type.
const GeometryTypeFieldName = "_geom_type"

// FieldRef is a reference to a feature attribute, or to the geometry-type
// pseudo-field.
type FieldRef struct {
	Name         string
	GeometryType bool
}

func (f FieldRef) QueryString() string {
	if f.GeometryType {
		return GeometryTypeFieldName
	}
	return quoteFieldName(f.Name)
}

// embedded quotes are doubled, following common SQL-style escaping
func quoteStringLiteral(val string) string {
	return "'" + strings.ReplaceAll(val, "'", "''") + "'"
}

func quoteFieldName(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
