package mapboxglstyle

import (
	"github.com/jamesrr39/goutil/errorsx"
)

type LayerType string

const (
	LayerTypeBackground    LayerType = "background"
	LayerTypeFill          LayerType = "fill"
	LayerTypeLine          LayerType = "line"
	LayerTypeSymbol        LayerType = "symbol"
	LayerTypeRaster        LayerType = "raster"
	LayerTypeCircle        LayerType = "circle"
	LayerTypeFillExtrusion LayerType = "fill-extrusion"
	LayerTypeHeatmap       LayerType = "heatmap"
	LayerTypeHillshade     LayerType = "hillshade"
)

type Layer struct {
	ID          string    `json:"id"`
	Type        LayerType `json:"type"`
	SourceLayer string    `json:"source-layer"`
	MinZoom     *int      `json:"minzoom"`
	MaxZoom     *int      `json:"maxzoom"`
	Filter      Filter    `json:"filter"`
	Paint       *Paint    `json:"paint"`
}

func (l *Layer) Validate() errorsx.Error {
	if l.MinZoom != nil && l.MaxZoom != nil && *l.MaxZoom < *l.MinZoom {
		return errorsx.Errorf("max zoom is smaller than min zoom")
	}

	if l.MaxZoom != nil && (*l.MaxZoom < 0 || *l.MaxZoom > 24) {
		return errorsx.Errorf("max zoom must be between 0 and 24 (inclusive) but was %d", *l.MaxZoom)
	}

	if l.MinZoom != nil && (*l.MinZoom < 0 || *l.MinZoom > 24) {
		return errorsx.Errorf("min zoom must be between 0 and 24 (inclusive) but was %d", *l.MinZoom)
	}

	return nil
}

// Paint attribute values are kept undecoded; style documents in the wild put
// non-string values (stop functions, numbers) where colors are expected, and
// those are handled as per-attribute skips rather than document failures.
type Paint struct {
	FillColor        interface{} `json:"fill-color"`
	FillOutlineColor interface{} `json:"fill-outline-color"`
	FillOpacity      interface{} `json:"fill-opacity"`
	LineColor        interface{} `json:"line-color"`
}
