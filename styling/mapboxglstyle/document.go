package mapboxglstyle

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jamesrr39/goutil/errorsx"
	"github.com/wonder-sk/mapbox2qgis/styling"
	"github.com/wonder-sk/mapbox2qgis/styling/qgisquery"
)

type documentType struct {
	Layers []*Layer `json:"layers"`
}

// Parse reads a Mapbox GL style document and extracts its renderable style
// rules, in document layer order. Layers that cannot be converted are skipped
// and reported in the returned diagnostics; only an undecodable document is a
// fatal error.
func Parse(file io.Reader) ([]*styling.StyleRule, []*styling.Diagnostic, errorsx.Error) {
	document := new(documentType)
	err := json.NewDecoder(file).Decode(document)
	if err != nil {
		return nil, nil, errorsx.Wrap(err)
	}

	dp := new(documentParser)

	var rules []*styling.StyleRule
	for _, layer := range document.Layers {
		rule := dp.parseLayer(layer)
		if rule == nil {
			continue
		}

		rules = append(rules, rule)
	}

	return rules, dp.diagnostics, nil
}

type documentParser struct {
	diagnostics []*styling.Diagnostic
}

func (dp *documentParser) addDiagnostic(layerID, message string, args ...interface{}) {
	dp.diagnostics = append(dp.diagnostics, &styling.Diagnostic{
		LayerID: layerID,
		Message: fmt.Sprintf(message, args...),
	})
}

func (dp *documentParser) parseLayer(layer *Layer) *styling.StyleRule {
	if layer.Type == LayerTypeBackground {
		// expected and uninteresting, so not worth a diagnostic
		return nil
	}

	err := layer.Validate()
	if err != nil {
		dp.addDiagnostic(layer.ID, "skipping invalid layer: %s", err.Error())
		return nil
	}

	var filter qgisquery.Filter
	if layer.Filter != nil {
		filter, err = ParseFilter(layer.Filter)
		if err != nil {
			dp.addDiagnostic(layer.ID, "skipping layer with invalid filter: %s", err.Error())
			return nil
		}
	}

	var paint styling.PaintSpec
	switch layer.Type {
	case LayerTypeFill:
		fillPaint := dp.parseFillPaint(layer)
		if fillPaint == nil {
			return nil
		}

		paint = fillPaint
	case LayerTypeLine:
		linePaint := dp.parseLinePaint(layer)
		if linePaint == nil {
			return nil
		}

		paint = linePaint
	default:
		dp.addDiagnostic(layer.ID, "skipping unknown layer type %q", layer.Type)
		return nil
	}

	return &styling.StyleRule{
		ID:           layer.ID,
		SourceLayer:  layer.SourceLayer,
		GeometryKind: paint.GetGeometryKind(),
		MinZoom:      layer.MinZoom,
		MaxZoom:      layer.MaxZoom,
		Filter:       filter,
		Paint:        paint,
	}
}

func (dp *documentParser) parseFillPaint(layer *Layer) *styling.FillPaint {
	if layer.Paint == nil || layer.Paint.FillColor == nil {
		dp.addDiagnostic(layer.ID, "skipping fill layer without fill-color")
		return nil
	}

	fillColorStr, ok := layer.Paint.FillColor.(string)
	if !ok {
		dp.addDiagnostic(layer.ID, "skipping fill layer with non-string fill-color (%v)", layer.Paint.FillColor)
		return nil
	}

	fillColor, err := ParseColor(fillColorStr)
	if err != nil {
		dp.addDiagnostic(layer.ID, "skipping fill layer: %s", err.Error())
		return nil
	}

	fillPaint := styling.DefaultFillPaint()
	fillPaint.Color = fillColor
	fillPaint.OutlineColor = fillColor

	if layer.Paint.FillOutlineColor != nil {
		outlineColorStr, ok := layer.Paint.FillOutlineColor.(string)
		if !ok {
			dp.addDiagnostic(layer.ID, "skipping non-string fill-outline-color (%v)", layer.Paint.FillOutlineColor)
		} else {
			outlineColor, err := ParseColor(outlineColorStr)
			if err != nil {
				dp.addDiagnostic(layer.ID, "skipping fill-outline-color: %s", err.Error())
			} else {
				fillPaint.OutlineColor = outlineColor
			}
		}
	}

	if layer.Paint.FillOpacity != nil {
		opacity, ok := layer.Paint.FillOpacity.(float64)
		if !ok {
			dp.addDiagnostic(layer.ID, "skipping non-number fill-opacity (%v)", layer.Paint.FillOpacity)
		} else {
			fillPaint.Opacity = opacity
		}
	}

	return fillPaint
}

func (dp *documentParser) parseLinePaint(layer *Layer) *styling.LinePaint {
	if layer.Paint == nil || layer.Paint.LineColor == nil {
		dp.addDiagnostic(layer.ID, "skipping line layer without line-color")
		return nil
	}

	lineColorStr, ok := layer.Paint.LineColor.(string)
	if !ok {
		dp.addDiagnostic(layer.ID, "skipping line layer with non-string line-color (%v)", layer.Paint.LineColor)
		return nil
	}

	lineColor, err := ParseColor(lineColorStr)
	if err != nil {
		dp.addDiagnostic(layer.ID, "skipping line layer: %s", err.Error())
		return nil
	}

	linePaint := styling.DefaultLinePaint()
	linePaint.Color = lineColor

	return linePaint
}
