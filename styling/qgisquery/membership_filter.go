package qgisquery

import (
	"strings"

	"github.com/jamesrr39/goutil/errorsx"
)

// MembershipFilter matches features whose field value is one of an enumerated
// set of values. Negated, it matches features whose field is absent or whose
// value is outside the set; absent fields must satisfy negated membership.
type MembershipFilter struct {
	Field   FieldRef
	Negated bool
	Values  []Value
}

func (mf *MembershipFilter) Validate() errorsx.Error {
	if len(mf.Values) == 0 {
		return errorsx.Errorf("no values supplied")
	}

	for _, value := range mf.Values {
		if value == nil {
			return errorsx.Errorf("value is nil")
		}
	}

	return nil
}

func (mf *MembershipFilter) QueryString() string {
	var valueStrings []string
	for _, value := range mf.Values {
		valueStrings = append(valueStrings, value.QueryString())
	}

	field := mf.Field.QueryString()
	valueList := strings.Join(valueStrings, ", ")

	if mf.Negated {
		return "(" + field + " IS NULL OR " + field + " NOT IN (" + valueList + "))"
	}
	return field + " IN (" + valueList + ")"
}
