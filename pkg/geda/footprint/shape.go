// Package footprint models gEDA pcb footprints as collections of shape
// entities (pads, pins, silkscreen primitives) and serializes them into
// pcb's textual Element format.
//
// Coordinates and dimensions are in mils throughout; serialization converts
// them to pcb's native 1/100-mil integer unit. Shape geometry can be given
// by centers, edges or corners, and new pads/pins can inherit every
// unspecified value from a previously built one via the spec's Base field.
// Inheritance is a one-time value copy at construction: later changes to
// the base never affect the derived shape.
package footprint

import "errors"

// Default dimensions, in mils, applied when a shape does not override them.
// They are read at serialization time, so changing one affects every shape
// not yet rendered.
var (
	// DefaultPadClearance is the copper-to-mask spacing added to a pad's
	// thickness to obtain its mask width.
	DefaultPadClearance = 1.0

	// DefaultPinClearance is the clearance width emitted for pins.
	DefaultPinClearance = 2.0

	// DefaultPinMaskOffset is the solder mask offset from the outer edge
	// of a pin's annular ring.
	DefaultPinMaskOffset = 1.0

	// DefaultSilkThickness is the line thickness used by silkscreen
	// primitives when none is given.
	DefaultSilkThickness = 10.0
)

// ErrUnresolvedGeometry reports a pad or pin whose primary geometry is
// still incomplete: fewer than two independent values were supplied on one
// axis, so an edge, center or extent cannot be computed.
var ErrUnresolvedGeometry = errors.New("unresolved geometry")

// ErrInvalidPolyline reports a polyline constructed from fewer than two
// points.
var ErrInvalidPolyline = errors.New("polyline needs at least 2 points")

// Shape is a drawing primitive owned by a Footprint.
//
// Records returns the shape's pcb-format record lines translated by
// (tx, ty). The translation exists because all coordinates inside a pcb
// element are relative to its mark: shapes are laid out from (0,0) and the
// footprint passes the negated mark at serialization time.
type Shape interface {
	Records(tx, ty float64) ([]string, error)
}

// Centered is satisfied by shapes with a well-defined center point (pads
// and pins). Footprint.Mark uses it to place the element mark.
type Centered interface {
	Center() (x, y float64, err error)
}

// numbered is satisfied by shapes carrying a pin/pad number.
type numbered interface {
	pinNumber() string
}

// Point is a 2D coordinate in mils.
type Point struct {
	X float64
	Y float64
}

// Step is a per-placement coordinate increment for array placement. A
// single element steps uniformly; with more elements the step value cycles
// by 0-based placement index, so a 2-element Step alternates by parity and
// produces staggered rows. A nil or empty Step means no movement.
type Step []float64

// at returns the step to apply after placing element i.
func (s Step) at(i int) float64 {
	if len(s) == 0 {
		return 0
	}
	return s[i%len(s)]
}

// Float returns a pointer to v, for filling optional spec fields.
func Float(v float64) *float64 { return &v }

// cloneFloat copies an optional value into a fresh pointer. Snapshots hand
// specs to a merge that writes through non-nil destination pointers, so
// they must never alias a shape's own storage.
func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(*v)
}

// Int returns a pointer to v, for filling optional spec fields.
func Int(v int) *int { return &v }

// String returns a pointer to s, for filling optional spec fields.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for filling optional spec fields.
func Bool(b bool) *bool { return &b }
