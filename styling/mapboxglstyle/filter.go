package mapboxglstyle

import (
	"math"

	"github.com/jamesrr39/goutil/errorsx"
	"github.com/wonder-sk/mapbox2qgis/styling/qgisquery"
)

const (
	FilterOperatorEquals               = "=="
	FilterOperatorNotEqual             = "!="
	FilterOperatorGreaterThanOrEqualTo = ">="
	FilterOperatorGreaterThan          = ">"
	FilterOperatorLessThanOrEqualTo    = "<="
	FilterOperatorLessThan             = "<"
	FilterOperatorAll                  = "all"
	FilterOperatorAny                  = "any"
	FilterOperatorHas                  = "has"
	FilterOperatorNotHas               = "!has"
	FilterOperatorIn                   = "in"
	FilterOperatorNotIn                = "!in"
)

// FilterKeyGeometryType is the reserved key referring to the feature's
// geometry type rather than to an attribute.
const FilterKeyGeometryType = "$type"

/*

    "filter": [
        "all",
        ["==", "$type", "Polygon"],
		["in", "class", "residential", "suburb", "neighbourhood"]
	]

	"filter": ["==", "$type", "Point"],

	"filter": ["all",["==","$type","Polygon"],["in","class","residential","suburb","neighbourhood"]]
*/

// Filter is the raw, undecoded filter node from the style document JSON.
type Filter interface{}

var comparativeOperators = map[string]qgisquery.ComparativeOperator{
	FilterOperatorEquals:               qgisquery.ComparativeOperatorEqualTo,
	FilterOperatorNotEqual:             qgisquery.ComparativeOperatorNotEqualTo,
	FilterOperatorGreaterThanOrEqualTo: qgisquery.ComparativeOperatorGreaterThanOrEqualTo,
	FilterOperatorGreaterThan:          qgisquery.ComparativeOperatorGreaterThan,
	FilterOperatorLessThanOrEqualTo:    qgisquery.ComparativeOperatorLessThanOrEqualTo,
	FilterOperatorLessThan:             qgisquery.ComparativeOperatorLessThan,
}

// ParseFilter decodes a prefix-operator filter array into a typed filter
// tree. It returns no partial results; the first malformed node fails the
// whole parse.
func ParseFilter(node Filter) (qgisquery.Filter, errorsx.Error) {
	base, ok := node.([]interface{})
	if !ok {
		return nil, errorsx.Errorf("filter expression must be an array, but was %T", node)
	}

	if len(base) == 0 {
		return nil, errorsx.Wrap(ErrArityMismatch, "reason", "empty filter expression")
	}

	operator, ok := base[0].(string)
	if !ok {
		return nil, errorsx.Wrap(ErrUnknownOperator, "operator", base[0])
	}

	operands := base[1:]

	switch operator {
	case FilterOperatorAll, FilterOperatorAny:
		return parseLogicalFilter(operator, operands)
	case FilterOperatorEquals,
		FilterOperatorNotEqual,
		FilterOperatorGreaterThanOrEqualTo,
		FilterOperatorGreaterThan,
		FilterOperatorLessThanOrEqualTo,
		FilterOperatorLessThan:

		if len(operands) != 2 {
			return nil, errorsx.Wrap(ErrArityMismatch, "operator", operator, "operands", len(operands))
		}

		field, err := parseKey(operands[0])
		if err != nil {
			return nil, err
		}

		value, err := parseValue(operands[1])
		if err != nil {
			return nil, err
		}

		return &qgisquery.ComparativeFilter{
			Field:    field,
			Operator: comparativeOperators[operator],
			Operand:  value,
		}, nil
	case FilterOperatorHas, FilterOperatorNotHas:
		if len(operands) != 1 {
			return nil, errorsx.Wrap(ErrArityMismatch, "operator", operator, "operands", len(operands))
		}

		field, err := parseKey(operands[0])
		if err != nil {
			return nil, err
		}

		return &qgisquery.ExistenceFilter{
			Field:   field,
			Negated: operator == FilterOperatorNotHas,
		}, nil
	case FilterOperatorIn, FilterOperatorNotIn:
		if len(operands) < 2 {
			return nil, errorsx.Wrap(ErrArityMismatch, "operator", operator, "operands", len(operands))
		}

		field, err := parseKey(operands[0])
		if err != nil {
			return nil, err
		}

		var values []qgisquery.Value
		for _, valueNode := range operands[1:] {
			value, err := parseValue(valueNode)
			if err != nil {
				return nil, err
			}

			values = append(values, value)
		}

		return &qgisquery.MembershipFilter{
			Field:   field,
			Negated: operator == FilterOperatorNotIn,
			Values:  values,
		}, nil
	}

	return nil, errorsx.Wrap(ErrUnknownOperator, "operator", operator)
}

func parseLogicalFilter(operator string, operands []interface{}) (qgisquery.Filter, errorsx.Error) {
	if len(operands) == 0 {
		return nil, errorsx.Wrap(ErrArityMismatch, "operator", operator, "operands", 0)
	}

	var childFilters []qgisquery.Filter
	for _, operandNode := range operands {
		value, err := parseValue(operandNode)
		if err != nil {
			return nil, err
		}

		expressionValue, ok := value.(qgisquery.ExpressionValue)
		if !ok {
			return nil, errorsx.Wrap(ErrUnsupportedValue,
				"operator", operator,
				"reason", "operand does not resolve to a nested expression",
			)
		}

		childFilters = append(childFilters, expressionValue.Filter)
	}

	logicalOperator := qgisquery.LogicalFilterOperatorAnd
	if operator == FilterOperatorAny {
		logicalOperator = qgisquery.LogicalFilterOperatorOr
	}

	return &qgisquery.LogicalFilter{
		Operator:     logicalOperator,
		ChildFilters: childFilters,
	}, nil
}

func parseKey(node interface{}) (qgisquery.FieldRef, errorsx.Error) {
	name, ok := node.(string)
	if !ok {
		return qgisquery.FieldRef{}, errorsx.Wrap(ErrBadKey, "key", node)
	}

	if name == FilterKeyGeometryType {
		return qgisquery.FieldRef{Name: name, GeometryType: true}, nil
	}

	return qgisquery.FieldRef{Name: name}, nil
}

// parseValue decodes one operand value. Booleans, nulls, objects and numbers
// with a fractional part are not part of the supported filter grammar and are
// rejected rather than coerced.
func parseValue(node interface{}) (qgisquery.Value, errorsx.Error) {
	switch val := node.(type) {
	case []interface{}:
		filter, err := ParseFilter(val)
		if err != nil {
			return nil, err
		}

		return qgisquery.ExpressionValue{Filter: filter}, nil
	case string:
		return qgisquery.StringValue(val), nil
	case float64:
		if val != math.Trunc(val) {
			return nil, errorsx.Wrap(ErrUnsupportedValue, "value", val)
		}

		return qgisquery.IntValue(int64(val)), nil
	default:
		return nil, errorsx.Wrap(ErrUnsupportedValue, "value", node)
	}
}
