package qgisquery

import (
	"github.com/jamesrr39/goutil/errorsx"
)

// ExistenceFilter matches features that have (or, negated, do not have) a
// value for the given field.
type ExistenceFilter struct {
	Field   FieldRef
	Negated bool
}

func (ef *ExistenceFilter) Validate() errorsx.Error {
	if !ef.Field.GeometryType && ef.Field.Name == "" {
		return errorsx.Errorf("no field name supplied")
	}

	return nil
}

func (ef *ExistenceFilter) QueryString() string {
	if ef.Negated {
		return ef.Field.QueryString() + " IS NULL"
	}
	return ef.Field.QueryString() + " IS NOT NULL"
}
