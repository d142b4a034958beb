package tesseract4d

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// RGB stores color components; each should be in [0,1].
type RGB struct {
	R, G, B Real
}

// clamp01 clamps each channel to [0,1].
func (c RGB) clamp01() RGB {
	cl := func(x Real) Real {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	}
	return RGB{cl(c.R), cl(c.G), cl(c.B)}
}

// RGBA implements color.Color, so theme colors plug straight into
// drawing APIs. Always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	k := c.clamp01()
	return uint32(math.Round(k.R * 0xFFFF)),
		uint32(math.Round(k.G * 0xFFFF)),
		uint32(math.Round(k.B * 0xFFFF)),
		0xFFFF
}

// Theme bundles every styling and projection constant the renderer
// uses. Edge thickness is thicknessBase + (depth+depthBias)·factor
// (clamped at zero); vertex radius uses the same shape with a floor of
// minRadius.
type Theme struct {
	Background  RGB `json:"background"`
	NearColor   RGB `json:"nearColor"`
	FarColor    RGB `json:"farColor"`
	VertexColor RGB `json:"vertexColor"`

	ThicknessBase        Real `json:"thicknessBase"`
	ThicknessDepthFactor Real `json:"thicknessDepthFactor"`
	RadiusBase           Real `json:"radiusBase"`
	RadiusDepthFactor    Real `json:"radiusDepthFactor"`
	MinRadius            Real `json:"minRadius"`
	DepthBias            Real `json:"depthBias"`

	// Scale2DFactor sets the screen scale: factor × min(width, height).
	Scale2DFactor Real `json:"scale2DFactor"`
	FocalW        Real `json:"focalW"`
	FocalZ        Real `json:"focalZ"`

	Spin SpinRates `json:"spin"`
}

// DefaultTheme returns the stock look: a dark background with depth-cued
// cyan strokes.
func DefaultTheme() Theme {
	return Theme{
		Background:  RGB{0.02, 0.03, 0.07},
		NearColor:   RGB{0.35, 0.78, 1.0},
		FarColor:    RGB{0.16, 0.33, 0.47},
		VertexColor: RGB{0.85, 0.93, 1.0},

		ThicknessBase:        1.0,
		ThicknessDepthFactor: 0.7,
		RadiusBase:           2.2,
		RadiusDepthFactor:    0.5,
		MinRadius:            1.2,
		DepthBias:            2.0,

		Scale2DFactor: 0.22,
		FocalW:        4.0,
		FocalZ:        4.0,

		Spin: DefaultSpinRates,
	}
}

// validate checks the constraints the projection pipeline relies on.
// The focal distances must clear the attainable coordinate range with a
// margin, otherwise the perspective denominator can approach zero.
func (t Theme) validate() error {
	if t.FocalW <= vertexRadius+focalMargin {
		return fmt.Errorf("focalW must be > %.2g (vertex radius %.2g plus margin), got %.6g",
			vertexRadius+focalMargin, vertexRadius, t.FocalW)
	}
	if t.FocalZ <= maxProjectedZ+focalMargin {
		return fmt.Errorf("focalZ must be > %.3g (max projected z %.3g plus margin), got %.6g",
			maxProjectedZ+focalMargin, maxProjectedZ, t.FocalZ)
	}
	if !(t.Scale2DFactor > 0) {
		return fmt.Errorf("scale2DFactor must be > 0, got %.6g", t.Scale2DFactor)
	}
	return nil
}

// LoadTheme reads a theme JSON file. Fields absent from the file keep
// their defaults.
func LoadTheme(path string) (Theme, error) {
	t := DefaultTheme()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := json.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}
