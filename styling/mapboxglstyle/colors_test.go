package mapboxglstyle

import (
	"image/color"
	"testing"

	"github.com/jamesrr39/goutil/errorsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	type args struct {
		colorStr string
	}
	tests := []struct {
		name string
		args args
		want color.RGBA
	}{
		{
			name: "long hex",
			args: args{colorStr: "#ff0000"},
			want: color.RGBA{0xff, 0x00, 0x00, 0xff},
		},
		{
			name: "short hex",
			args: args{colorStr: "#f3a"},
			want: color.RGBA{0xff, 0x33, 0xaa, 0xff},
		},
		{
			name: "rgb",
			args: args{colorStr: "rgb(10, 20, 30)"},
			want: color.RGBA{10, 20, 30, 0xff},
		},
		{
			name: "rgba",
			args: args{colorStr: "rgba(10, 20, 30, 0.5)"},
			want: color.RGBA{10, 20, 30, 128},
		},
		{
			name: "rgb without spaces",
			args: args{colorStr: "rgb(10,20,30)"},
			want: color.RGBA{10, 20, 30, 0xff},
		},
		{
			name: "hsl red",
			args: args{colorStr: "hsl(0, 100%, 50%)"},
			want: color.RGBA{0xff, 0x00, 0x00, 0xff},
		},
		{
			name: "hsl green",
			args: args{colorStr: "hsl(120, 100%, 50%)"},
			want: color.RGBA{0x00, 0xff, 0x00, 0xff},
		},
		{
			name: "hsl white",
			args: args{colorStr: "hsl(30, 19%, 100%)"},
			want: color.RGBA{0xff, 0xff, 0xff, 0xff},
		},
		{
			name: "hsla",
			args: args{colorStr: "hsla(240, 100%, 50%, 0.4)"},
			want: color.RGBA{0x00, 0x00, 0xff, 102},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.args.colorStr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_badSyntax(t *testing.T) {
	badColors := []string{
		"",
		"red",
		"#ff00",
		"#ggg",
		"rgb(10, 20)",
		"rgb(10, 20, 300)",
		"rgba(10, 20, 30, 1.5)",
		"hsl(30, 19, 90)",
		"hsl(30, 19%, 90%",
		"hsla(30, 19%, 90%)",
	}
	for _, colorStr := range badColors {
		t.Run(colorStr, func(t *testing.T) {
			_, err := ParseColor(colorStr)
			require.Error(t, err)
			assert.Equal(t, ErrColorSyntax, errorsx.Cause(err))
		})
	}
}
