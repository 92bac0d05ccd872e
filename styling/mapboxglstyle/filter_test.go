package mapboxglstyle

import (
	"testing"

	"github.com/jamesrr39/goutil/errorsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wonder-sk/mapbox2qgis/styling/qgisquery"
)

func TestParseFilter(t *testing.T) {
	type args struct {
		node Filter
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "equals on geometry type pseudo-field",
			args: args{
				node: []interface{}{"==", "$type", "Polygon"},
			},
			want: `_geom_type = 'Polygon'`,
		},
		{
			name: "equals on attribute",
			args: args{
				node: []interface{}{"==", "class", "river"},
			},
			want: `"class" = 'river'`,
		},
		{
			name: "not equal with integer value",
			args: args{
				node: []interface{}{"!=", "admin_level", float64(2)},
			},
			want: `"admin_level" != 2`,
		},
		{
			name: "less than or equal to",
			args: args{
				node: []interface{}{"<=", "rank", float64(10)},
			},
			want: `"rank" <= 10`,
		},
		{
			name: "has",
			args: args{
				node: []interface{}{"has", "name"},
			},
			want: `"name" IS NOT NULL`,
		},
		{
			name: "not has",
			args: args{
				node: []interface{}{"!has", "name"},
			},
			want: `"name" IS NULL`,
		},
		{
			name: "in",
			args: args{
				node: []interface{}{"in", "class", "residential", "suburb", "neighbourhood"},
			},
			want: `"class" IN ('residential', 'suburb', 'neighbourhood')`,
		},
		{
			name: "not in matches absent fields",
			args: args{
				node: []interface{}{"!in", "class", "river", "lake"},
			},
			want: `("class" IS NULL OR "class" NOT IN ('river', 'lake'))`,
		},
		{
			name: "all with nested expressions",
			args: args{
				node: []interface{}{
					"all",
					[]interface{}{"==", "$type", "Polygon"},
					[]interface{}{"in", "class", "residential", "suburb"},
				},
			},
			want: `(_geom_type = 'Polygon') AND ("class" IN ('residential', 'suburb'))`,
		},
		{
			name: "any",
			args: args{
				node: []interface{}{
					"any",
					[]interface{}{"has", "name"},
					[]interface{}{"==", "class", "lake"},
				},
			},
			want: `("name" IS NOT NULL) OR ("class" = 'lake')`,
		},
		{
			name: "all with one operand",
			args: args{
				node: []interface{}{
					"all",
					[]interface{}{"has", "name"},
				},
			},
			want: `("name" IS NOT NULL)`,
		},
		{
			name: "string value with embedded quote is escaped",
			args: args{
				node: []interface{}{"==", "name", "it's"},
			},
			want: `"name" = 'it''s'`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := ParseFilter(tt.args.node)
			require.NoError(t, err)
			require.NoError(t, filter.Validate())
			assert.Equal(t, tt.want, filter.QueryString())
		})
	}
}

func TestParseFilter_malformed(t *testing.T) {
	type args struct {
		node Filter
	}
	tests := []struct {
		name      string
		args      args
		wantCause error
	}{
		{
			name:      "unknown operator",
			args:      args{node: []interface{}{"nope", "x"}},
			wantCause: ErrUnknownOperator,
		},
		{
			name:      "non-string operator",
			args:      args{node: []interface{}{float64(1), "x"}},
			wantCause: ErrUnknownOperator,
		},
		{
			name:      "empty expression",
			args:      args{node: []interface{}{}},
			wantCause: ErrArityMismatch,
		},
		{
			name:      "comparison with missing value",
			args:      args{node: []interface{}{"==", "class"}},
			wantCause: ErrArityMismatch,
		},
		{
			name:      "comparison with too many operands",
			args:      args{node: []interface{}{"==", "class", "river", "lake"}},
			wantCause: ErrArityMismatch,
		},
		{
			name:      "has with no key",
			args:      args{node: []interface{}{"has"}},
			wantCause: ErrArityMismatch,
		},
		{
			name:      "in with no values",
			args:      args{node: []interface{}{"in", "class"}},
			wantCause: ErrArityMismatch,
		},
		{
			name:      "all with no operands",
			args:      args{node: []interface{}{"all"}},
			wantCause: ErrArityMismatch,
		},
		{
			name:      "all with non-expression operand",
			args:      args{node: []interface{}{"all", "name"}},
			wantCause: ErrUnsupportedValue,
		},
		{
			name:      "non-string key",
			args:      args{node: []interface{}{"==", float64(3), "river"}},
			wantCause: ErrBadKey,
		},
		{
			name:      "boolean value",
			args:      args{node: []interface{}{"==", "intermittent", true}},
			wantCause: ErrUnsupportedValue,
		},
		{
			name:      "null value",
			args:      args{node: []interface{}{"==", "class", nil}},
			wantCause: ErrUnsupportedValue,
		},
		{
			name:      "fractional number value",
			args:      args{node: []interface{}{"==", "width", 2.5}},
			wantCause: ErrUnsupportedValue,
		},
		{
			name: "malformed nested expression fails the whole parse",
			args: args{
				node: []interface{}{
					"all",
					[]interface{}{"has", "name"},
					[]interface{}{"nope", "x"},
				},
			},
			wantCause: ErrUnknownOperator,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := ParseFilter(tt.args.node)
			require.Error(t, err)
			assert.Nil(t, filter)
			assert.Equal(t, tt.wantCause, errorsx.Cause(err))
		})
	}
}

func TestParseFilter_notAnArray(t *testing.T) {
	filter, err := ParseFilter("all")
	require.Error(t, err)
	assert.Nil(t, filter)
}

func Test_parseKey(t *testing.T) {
	field, err := parseKey("$type")
	require.NoError(t, err)
	assert.Equal(t, qgisquery.FieldRef{Name: "$type", GeometryType: true}, field)

	field, err = parseKey("class")
	require.NoError(t, err)
	assert.Equal(t, qgisquery.FieldRef{Name: "class"}, field)
}
