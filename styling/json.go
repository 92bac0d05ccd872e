package styling

import (
	"encoding/json"
	"fmt"
	"image/color"
)

// ColorToHexString encodes a color as #rrggbbaa.
func ColorToHexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (fp *FillPaint) MarshalJSON() ([]byte, error) {
	type fillPaintJSONType struct {
		FillColor        string  `json:"fillColor"`
		FillOutlineColor string  `json:"fillOutlineColor"`
		FillOpacity      float64 `json:"fillOpacity"`
	}

	return json.Marshal(fillPaintJSONType{
		FillColor:        ColorToHexString(fp.Color),
		FillOutlineColor: ColorToHexString(fp.OutlineColor),
		FillOpacity:      fp.Opacity,
	})
}

func (lp *LinePaint) MarshalJSON() ([]byte, error) {
	type linePaintJSONType struct {
		LineColor string `json:"lineColor"`
	}

	return json.Marshal(linePaintJSONType{
		LineColor: ColorToHexString(lp.Color),
	})
}

func (gk GeometryKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(gk.String())
}

func (sr *StyleRule) MarshalJSON() ([]byte, error) {
	type styleRuleJSONType struct {
		ID           string       `json:"id"`
		SourceLayer  string       `json:"sourceLayer"`
		GeometryKind GeometryKind `json:"geometryKind"`
		MinZoom      *int         `json:"minzoom,omitempty"`
		MaxZoom      *int         `json:"maxzoom,omitempty"`
		Filter       string       `json:"filter,omitempty"`
		Paint        PaintSpec    `json:"paint"`
	}

	return json.Marshal(styleRuleJSONType{
		ID:           sr.ID,
		SourceLayer:  sr.SourceLayer,
		GeometryKind: sr.GeometryKind,
		MinZoom:      sr.MinZoom,
		MaxZoom:      sr.MaxZoom,
		Filter:       sr.FilterQueryString(),
		Paint:        sr.Paint,
	})
}
