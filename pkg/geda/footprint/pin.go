package footprint

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/OpenTraceLab/fpgen/pkg/geda/units"
)

// Pin is a plated through-hole with a drilled hole and a copper annulus.
type Pin struct {
	x        *float64
	y        *float64
	hole     *float64
	diameter *float64

	// Round selects a round annulus; false emits square copper.
	Round bool

	// Name is the optional pin name.
	Name string

	// Number is the pin number, kept as text (pcb quotes it).
	Number string
}

// PinSpec is the construction input for a Pin. Every field is optional;
// nil fields are left at their defaults or inherited from Base.
//
// Base supplies defaults for x, y, hole, diameter, name, number and round,
// copied once at construction. The edge fields (Left, Right, Top, Bottom)
// are derived setters applied after the primaries; each recenters the pin
// against its diameter.
type PinSpec struct {
	Base *Pin

	X        *float64
	Y        *float64
	Hole     *float64
	Diameter *float64

	Left   *float64
	Right  *float64
	Top    *float64
	Bottom *float64

	Name   *string
	Number *string
	Round  *bool
}

// snapshot clones the pin's inheritable values into a spec; the merge
// writes through non-nil pointers, so aliasing the pin's own storage
// would let a derived spec mutate the base.
func (p *Pin) snapshot() PinSpec {
	return PinSpec{
		X:        cloneFloat(p.x),
		Y:        cloneFloat(p.y),
		Hole:     cloneFloat(p.hole),
		Diameter: cloneFloat(p.diameter),
		Name:     String(p.Name),
		Number:   String(p.Number),
		Round:    Bool(p.Round),
	}
}

// NewPin builds a pin from spec. Round defaults to true. Values inherited
// from spec.Base are merged first, then explicit fields are applied:
// primaries (x, y, hole, diameter), then the derived left, right, top,
// bottom in that order. An edge value supplied before the diameter is
// known fails with ErrUnresolvedGeometry.
func NewPin(spec PinSpec) (*Pin, error) {
	var merged PinSpec
	if spec.Base != nil {
		merged = spec.Base.snapshot()
	}
	if err := copier.CopyWithOption(&merged, &spec, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, fmt.Errorf("failed to merge pin spec: %w", err)
	}

	p := &Pin{Round: true}
	if merged.X != nil {
		p.SetX(*merged.X)
	}
	if merged.Y != nil {
		p.SetY(*merged.Y)
	}
	if merged.Hole != nil {
		p.SetHole(*merged.Hole)
	}
	if merged.Diameter != nil {
		p.SetDiameter(*merged.Diameter)
	}
	if merged.Name != nil {
		p.Name = *merged.Name
	}
	if merged.Number != nil {
		p.Number = *merged.Number
	}
	if merged.Round != nil {
		p.Round = *merged.Round
	}

	if merged.Left != nil {
		if err := p.SetLeft(*merged.Left); err != nil {
			return nil, fmt.Errorf("pin left: %w", err)
		}
	}
	if merged.Right != nil {
		if err := p.SetRight(*merged.Right); err != nil {
			return nil, fmt.Errorf("pin right: %w", err)
		}
	}
	if merged.Top != nil {
		if err := p.SetTop(*merged.Top); err != nil {
			return nil, fmt.Errorf("pin top: %w", err)
		}
	}
	if merged.Bottom != nil {
		if err := p.SetBottom(*merged.Bottom); err != nil {
			return nil, fmt.Errorf("pin bottom: %w", err)
		}
	}
	return p, nil
}

// X returns the x coordinate of the hole's center.
func (p *Pin) X() (float64, error) {
	if p.x == nil {
		return 0, ErrUnresolvedGeometry
	}
	return *p.x, nil
}

// SetX sets the x coordinate of the hole's center.
func (p *Pin) SetX(v float64) { p.x = Float(v) }

// Y returns the y coordinate of the hole's center.
func (p *Pin) Y() (float64, error) {
	if p.y == nil {
		return 0, ErrUnresolvedGeometry
	}
	return *p.y, nil
}

// SetY sets the y coordinate of the hole's center.
func (p *Pin) SetY(v float64) { p.y = Float(v) }

// Hole returns the drill hole diameter.
func (p *Pin) Hole() (float64, error) {
	if p.hole == nil {
		return 0, ErrUnresolvedGeometry
	}
	return *p.hole, nil
}

// SetHole sets the drill hole diameter.
func (p *Pin) SetHole(v float64) { p.hole = Float(v) }

// Diameter returns the outer diameter of the copper annulus.
func (p *Pin) Diameter() (float64, error) {
	if p.diameter == nil {
		return 0, ErrUnresolvedGeometry
	}
	return *p.diameter, nil
}

// SetDiameter sets the outer diameter of the copper annulus.
func (p *Pin) SetDiameter(v float64) { p.diameter = Float(v) }

// edge computes center + sign*diameter/2 on the given axis.
func (p *Pin) edge(center *float64, sign float64) (float64, error) {
	if center == nil || p.diameter == nil {
		return 0, ErrUnresolvedGeometry
	}
	return *center + sign*(*p.diameter)/2, nil
}

// setEdge recenters the axis so the annulus edge lands at v.
func (p *Pin) setEdge(v, sign float64) (*float64, error) {
	if p.diameter == nil {
		return nil, ErrUnresolvedGeometry
	}
	return Float(v - sign*(*p.diameter)/2), nil
}

// Left returns the x coordinate of the annulus' outer left edge.
func (p *Pin) Left() (float64, error) { return p.edge(p.x, -1) }

// SetLeft moves the pin so its annulus' left edge is at v.
func (p *Pin) SetLeft(v float64) error {
	x, err := p.setEdge(v, -1)
	if err != nil {
		return err
	}
	p.x = x
	return nil
}

// Right returns the x coordinate of the annulus' outer right edge.
func (p *Pin) Right() (float64, error) { return p.edge(p.x, 1) }

// SetRight moves the pin so its annulus' right edge is at v.
func (p *Pin) SetRight(v float64) error {
	x, err := p.setEdge(v, 1)
	if err != nil {
		return err
	}
	p.x = x
	return nil
}

// Top returns the y coordinate of the annulus' outer top edge.
func (p *Pin) Top() (float64, error) { return p.edge(p.y, -1) }

// SetTop moves the pin so its annulus' top edge is at v.
func (p *Pin) SetTop(v float64) error {
	y, err := p.setEdge(v, -1)
	if err != nil {
		return err
	}
	p.y = y
	return nil
}

// Bottom returns the y coordinate of the annulus' outer bottom edge.
func (p *Pin) Bottom() (float64, error) { return p.edge(p.y, 1) }

// SetBottom moves the pin so its annulus' bottom edge is at v.
func (p *Pin) SetBottom(v float64) error {
	y, err := p.setEdge(v, 1)
	if err != nil {
		return err
	}
	p.y = y
	return nil
}

// Center returns the hole's center point.
func (p *Pin) Center() (float64, float64, error) {
	if p.x == nil || p.y == nil {
		return 0, 0, fmt.Errorf("pin %q: %w", p.Number, ErrUnresolvedGeometry)
	}
	return *p.x, *p.y, nil
}

func (p *Pin) pinNumber() string { return p.Number }

// Records serializes the pin as a pcb Pin record translated by (tx, ty).
// The flags word always carries bit 0x1 (through-hole pin), OR'd with
// 0x100 for a square annulus. The mask diameter is the annulus diameter
// plus the package-level mask offset.
func (p *Pin) Records(tx, ty float64) ([]string, error) {
	if p.x == nil || p.y == nil || p.hole == nil || p.diameter == nil {
		return nil, fmt.Errorf("pin %q: %w", p.Number, ErrUnresolvedGeometry)
	}
	flags := 0x1
	if !p.Round {
		flags |= 0x100
	}
	rec := fmt.Sprintf("Pin[%d %d %d %d %d %d \"%s\" \"%s\" %#x]",
		units.ToUnits(*p.x+tx), units.ToUnits(*p.y+ty),
		units.ToUnits(*p.diameter), units.ToUnits(DefaultPinClearance),
		units.ToUnits(*p.diameter+DefaultPinMaskOffset), units.ToUnits(*p.hole),
		p.Name, p.Number, flags)
	return []string{rec}, nil
}
