package styling

import (
	"image/color"

	"github.com/wonder-sk/mapbox2qgis/styling/qgisquery"
)

type GeometryKind int

const (
	GeometryKindUnknown GeometryKind = 0
	GeometryKindFill    GeometryKind = 1
	GeometryKindLine    GeometryKind = 2
)

var geometryKindStrings = []string{
	"Unknown",
	"Fill",
	"Line",
}

func (gk GeometryKind) String() string {
	return geometryKindStrings[gk]
}

// PaintSpec is the paint definition for one style rule. It is a closed set;
// one implementation per GeometryKind.
type PaintSpec interface {
	GetGeometryKind() GeometryKind
}

type FillPaint struct {
	Color        color.RGBA
	OutlineColor color.RGBA
	Opacity      float64
}

func (fp *FillPaint) GetGeometryKind() GeometryKind {
	return GeometryKindFill
}

type LinePaint struct {
	Color color.RGBA
}

func (lp *LinePaint) GetGeometryKind() GeometryKind {
	return GeometryKindLine
}

// DefaultFillPaint returns a fresh default polygon paint. Every caller gets
// its own value, so overwriting attributes on one rule cannot leak into
// another.
func DefaultFillPaint() *FillPaint {
	return &FillPaint{
		Color:        color.RGBA{0x80, 0x80, 0x80, 0xff},
		OutlineColor: color.RGBA{0x80, 0x80, 0x80, 0xff},
		Opacity:      1,
	}
}

func DefaultLinePaint() *LinePaint {
	return &LinePaint{
		Color: color.RGBA{0x80, 0x80, 0x80, 0xff},
	}
}

// StyleRule is one renderable rule extracted from a style document layer.
// Rules are immutable after extraction. The order of a rule list follows the
// document's layer order, which is the rendering priority.
type StyleRule struct {
	ID           string
	SourceLayer  string
	GeometryKind GeometryKind
	MinZoom      *int // nil = unbounded
	MaxZoom      *int // nil = unbounded
	Filter       qgisquery.Filter
	Paint        PaintSpec
}

// FilterQueryString renders the rule's filter for the downstream renderer.
// Rules without a filter produce an empty string (match everything).
func (sr *StyleRule) FilterQueryString() string {
	if sr.Filter == nil {
		return ""
	}

	return sr.Filter.QueryString()
}

// Diagnostic describes a unit (a layer, or one paint attribute) that was
// skipped during parsing without failing the whole document.
type Diagnostic struct {
	LayerID string `json:"layerId"`
	Message string `json:"message"`
}
