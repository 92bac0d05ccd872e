package mapboxglstyle

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/jamesrr39/goutil/errorsx"
)

// ParseColor parses a color in one of the formats used by style documents:
//
//	#fff or #ffffff
//	rgb(10, 20, 30) or rgba(10, 20, 30, 0.5)
//	hsl(30, 19%, 90%) or hsla(30, 19%, 90%, 0.4)
func ParseColor(colorStr string) (color.RGBA, errorsx.Error) {
	switch {
	case strings.HasPrefix(colorStr, "#"):
		return parseHexColor(colorStr[1:])
	case strings.HasPrefix(colorStr, "hsla(") && strings.HasSuffix(colorStr, ")"):
		return parseHSLColor(colorStr[5:len(colorStr)-1], true)
	case strings.HasPrefix(colorStr, "hsl(") && strings.HasSuffix(colorStr, ")"):
		return parseHSLColor(colorStr[4:len(colorStr)-1], false)
	case strings.HasPrefix(colorStr, "rgba(") && strings.HasSuffix(colorStr, ")"):
		return parseRGBColor(colorStr[5:len(colorStr)-1], true)
	case strings.HasPrefix(colorStr, "rgb(") && strings.HasSuffix(colorStr, ")"):
		return parseRGBColor(colorStr[4:len(colorStr)-1], false)
	}

	return color.RGBA{}, errorsx.Wrap(ErrColorSyntax, "color", colorStr)
}

func parseHexColor(hexPart string) (color.RGBA, errorsx.Error) {
	switch len(hexPart) {
	case 3:
		// #rgb: each nibble is doubled, i.e. #f3a means #ff33aa
		hexPart = string([]byte{
			hexPart[0], hexPart[0],
			hexPart[1], hexPart[1],
			hexPart[2], hexPart[2],
		})
	case 6:
	default:
		return color.RGBA{}, errorsx.Wrap(ErrColorSyntax, "color", "#"+hexPart)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		channel, err := strconv.ParseUint(hexPart[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, errorsx.Wrap(ErrColorSyntax, "color", "#"+hexPart)
		}

		channels[i] = uint8(channel)
	}

	return color.RGBA{channels[0], channels[1], channels[2], 0xff}, nil
}

func parseRGBColor(componentsStr string, hasAlpha bool) (color.RGBA, errorsx.Error) {
	wantComponents := 3
	if hasAlpha {
		wantComponents = 4
	}

	components := strings.Split(componentsStr, ",")
	if len(components) != wantComponents {
		return color.RGBA{}, errorsx.Wrap(ErrColorSyntax, "components", componentsStr)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		channel, err := strconv.Atoi(strings.TrimSpace(components[i]))
		if err != nil || channel < 0 || channel > 255 {
			return color.RGBA{}, errorsx.Wrap(ErrColorSyntax, "components", componentsStr)
		}

		channels[i] = uint8(channel)
	}

	alpha := uint8(0xff)
	if hasAlpha {
		alphaFraction, err := strconv.ParseFloat(strings.TrimSpace(components[3]), 64)
		if err != nil || alphaFraction < 0 || alphaFraction > 1 {
			return color.RGBA{}, errorsx.Wrap(ErrColorSyntax, "components", componentsStr)
		}

		alpha = uint8(math.Round(alphaFraction * 255))
	}

	return color.RGBA{channels[0], channels[1], channels[2], alpha}, nil
}

func parseHSLColor(componentsStr string, hasAlpha bool) (color.RGBA, errorsx.Error) {
	wantComponents := 3
	if hasAlpha {
		wantComponents = 4
	}

	components := strings.Split(componentsStr, ",")
	if len(components) != wantComponents {
		return color.RGBA{}, errorsx.Wrap(ErrColorSyntax, "components", componentsStr)
	}

	hue, err := strconv.ParseFloat(strings.TrimSpace(components[0]), 64)
	if err != nil {
		return color.RGBA{}, errorsx.Wrap(ErrColorSyntax, "components", componentsStr)
	}

	var percentages [2]float64
	for i := 0; i < 2; i++ {
		percentStr := strings.TrimSpace(components[i+1])
		if !strings.HasSuffix(percentStr, "%") {
			return color.RGBA{}, errorsx.Wrap(ErrColorSyntax, "components", componentsStr)
		}

		percent, err := strconv.ParseFloat(strings.TrimSuffix(percentStr, "%"), 64)
		if err != nil || percent < 0 || percent > 100 {
			return color.RGBA{}, errorsx.Wrap(ErrColorSyntax, "components", componentsStr)
		}

		percentages[i] = percent / 100
	}

	alpha := uint8(0xff)
	if hasAlpha {
		alphaFraction, err := strconv.ParseFloat(strings.TrimSpace(components[3]), 64)
		if err != nil || alphaFraction < 0 || alphaFraction > 1 {
			return color.RGBA{}, errorsx.Wrap(ErrColorSyntax, "components", componentsStr)
		}

		alpha = uint8(math.Round(alphaFraction * 255))
	}

	r, g, b := hslToRGB(hue, percentages[0], percentages[1])

	return color.RGBA{r, g, b, alpha}, nil
}

func hslToRGB(hue, sat, lig float64) (uint8, uint8, uint8) {
	chroma := (1 - math.Abs(2*lig-1)) * sat
	huePrime := math.Mod(math.Mod(hue, 360)+360, 360) / 60
	x := chroma * (1 - math.Abs(math.Mod(huePrime, 2)-1))

	var r, g, b float64
	switch {
	case huePrime < 1:
		r, g, b = chroma, x, 0
	case huePrime < 2:
		r, g, b = x, chroma, 0
	case huePrime < 3:
		r, g, b = 0, chroma, x
	case huePrime < 4:
		r, g, b = 0, x, chroma
	case huePrime < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	m := lig - chroma/2

	return uint8(math.Round((r + m) * 255)),
		uint8(math.Round((g + m) * 255)),
		uint8(math.Round((b + m) * 255))
}
