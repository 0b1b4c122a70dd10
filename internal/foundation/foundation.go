// Package foundation models shallow foundation footing geometry: shape,
// embedment depth, plan dimensions, load eccentricity and ground water
// position. Bearing capacity calculations consume these sizes.
package foundation

import (
	"errors"
	"fmt"
	"math"

	"soilworks/internal/mathx"
)

// ErrInvalidSize is returned for non-physical footing dimensions.
var ErrInvalidSize = errors.New("foundation: invalid size")

// Shape of a foundation footing in plan.
type Shape string

const (
	Strip     Shape = "strip"
	Square    Shape = "square"
	Rectangle Shape = "rectangle"
	Circle    Shape = "circle"
)

// ParseShape maps a case-sensitive lower-case name to a Shape.
func ParseShape(name string) (Shape, error) {
	switch Shape(name) {
	case Strip, Square, Rectangle, Circle:
		return Shape(name), nil
	}
	return "", fmt.Errorf("foundation: unknown footing shape %q", name)
}

// Size describes a footing. All lengths are in metres. A ground water
// level of +Inf means no water table within reach of the foundation.
type Size struct {
	// Depth of embedment Df.
	Depth float64

	// Width B of the footing (diameter for circular footings).
	Width float64

	// Length L of the footing. Equal to Width for square and circular
	// footings.
	Length float64

	// Eccentricity e of the applied load from the footing centroid.
	Eccentricity float64

	// GroundWaterLevel is the depth of the water table below ground.
	GroundWaterLevel float64

	Shape Shape
}

// NewSize validates and returns a footing size. Square and circular
// footings take their length from the width; rectangles require an
// explicit positive length.
func NewSize(shape Shape, depth, width, length float64) (Size, error) {
	if depth <= 0 {
		return Size{}, fmt.Errorf("%w: depth must be positive, got %v", ErrInvalidSize, depth)
	}
	if width <= 0 {
		return Size{}, fmt.Errorf("%w: width must be positive, got %v", ErrInvalidSize, width)
	}

	switch shape {
	case Square, Circle:
		length = width
	case Strip:
		// A strip footing is analyzed per unit length.
		length = 1.0
	case Rectangle:
		if length <= 0 {
			return Size{}, fmt.Errorf("%w: rectangular footing requires a positive length", ErrInvalidSize)
		}
	default:
		return Size{}, fmt.Errorf("foundation: unknown footing shape %q", shape)
	}

	return Size{
		Depth:            depth,
		Width:            width,
		Length:           length,
		GroundWaterLevel: math.Inf(1),
		Shape:            shape,
	}, nil
}

// WithEccentricity returns a copy of the size with the load eccentricity
// set. Eccentricity may not be negative or reach half the width.
func (s Size) WithEccentricity(e float64) (Size, error) {
	if e < 0 {
		return Size{}, fmt.Errorf("%w: eccentricity must be non-negative, got %v", ErrInvalidSize, e)
	}
	if 2*e >= s.Width {
		return Size{}, fmt.Errorf("%w: eccentricity %v leaves no effective width", ErrInvalidSize, e)
	}
	s.Eccentricity = e
	return s, nil
}

// WithGroundWaterLevel returns a copy of the size with the water table
// depth set.
func (s Size) WithGroundWaterLevel(depth float64) (Size, error) {
	if depth < 0 {
		return Size{}, fmt.Errorf("%w: ground water level must be non-negative, got %v", ErrInvalidSize, depth)
	}
	s.GroundWaterLevel = depth
	return s, nil
}

// HasWaterTable reports whether a finite ground water level was set.
func (s Size) HasWaterTable() bool {
	return !math.IsInf(s.GroundWaterLevel, 1)
}

// EffectiveWidth is B' = B - 2e, the width reduced for load eccentricity.
func (s Size) EffectiveWidth() float64 {
	return s.Width - 2.0*s.Eccentricity
}

// FootingParams returns the effective width, length and governing shape
// for factor evaluation. Square and circular footings whose effective
// width no longer matches the length are treated as rectangles.
func (s Size) FootingParams() (width, length float64, shape Shape) {
	width = s.EffectiveWidth()
	length = s.Length
	shape = s.Shape
	if shape != Strip && !mathx.IsClose(width, length, 1e-9) {
		shape = Rectangle
	}
	return width, length, shape
}
