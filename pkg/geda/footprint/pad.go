package footprint

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/OpenTraceLab/fpgen/pkg/geda/units"
)

// Pad is a rectangular surface-mount pad.
//
// Its geometry is stored per axis as a low edge plus an extent
// (left/width, top/height). The derived accessors (Right, X, Bottom, Y)
// read and write against that storage, so a pad can be positioned by any
// two independent values per axis: left and width, x and width, right and
// width, or left and right (and the equivalents on the y axis).
type Pad struct {
	xspan span // left/width
	yspan span // top/height

	// Round selects rounded pad ends; false emits a square pad.
	Round bool

	// Name is the optional pin name.
	Name string

	// Number is the pin number, kept as text (pcb quotes it).
	Number string
}

// PadSpec is the construction input for a Pad. Every field is optional;
// nil fields are left at their defaults or inherited from Base.
//
// Base supplies defaults for left, width, top, height, name, number and
// round. The copy happens once, when the pad is built: mutating the base
// afterwards does not affect the new pad. Explicit fields override
// inherited ones, with the derived fields (Right, X, Bottom, Y) applied
// last against whatever primary values are resolved at that point.
type PadSpec struct {
	Base *Pad

	Left   *float64
	Width  *float64
	Top    *float64
	Height *float64

	Right  *float64
	X      *float64
	Bottom *float64
	Y      *float64

	Name   *string
	Number *string
	Round  *bool
}

// snapshot captures the pad's inheritable values as a spec. Unresolved
// geometry stays nil. Every value is cloned so the spec merge cannot
// write back into the pad.
func (p *Pad) snapshot() PadSpec {
	return PadSpec{
		Left:   cloneFloat(p.xspan.lo),
		Width:  cloneFloat(p.xspan.size),
		Top:    cloneFloat(p.yspan.lo),
		Height: cloneFloat(p.yspan.size),
		Name:   String(p.Name),
		Number: String(p.Number),
		Round:  Bool(p.Round),
	}
}

// NewPad builds a pad from spec. Values inherited from spec.Base are
// merged first, then explicit fields are applied: primaries (left, width,
// top, height), then the derived right, x, bottom, y in that order. A
// derived value that cannot be absorbed yet (for example X with no width
// known) fails immediately with ErrUnresolvedGeometry.
func NewPad(spec PadSpec) (*Pad, error) {
	var merged PadSpec
	if spec.Base != nil {
		merged = spec.Base.snapshot()
	}
	if err := copier.CopyWithOption(&merged, &spec, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, fmt.Errorf("failed to merge pad spec: %w", err)
	}

	p := &Pad{}
	if merged.Left != nil {
		p.xspan.setLo(*merged.Left)
	}
	if merged.Width != nil {
		p.xspan.setSize(*merged.Width)
	}
	if merged.Top != nil {
		p.yspan.setLo(*merged.Top)
	}
	if merged.Height != nil {
		p.yspan.setSize(*merged.Height)
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

	if merged.Right != nil {
		if err := p.SetRight(*merged.Right); err != nil {
			return nil, fmt.Errorf("pad right: %w", err)
		}
	}
	if merged.X != nil {
		if err := p.SetX(*merged.X); err != nil {
			return nil, fmt.Errorf("pad x: %w", err)
		}
	}
	if merged.Bottom != nil {
		if err := p.SetBottom(*merged.Bottom); err != nil {
			return nil, fmt.Errorf("pad bottom: %w", err)
		}
	}
	if merged.Y != nil {
		if err := p.SetY(*merged.Y); err != nil {
			return nil, fmt.Errorf("pad y: %w", err)
		}
	}
	return p, nil
}

// Left returns the x coordinate of the pad's left edge.
func (p *Pad) Left() (float64, error) { return p.xspan.loValue() }

// SetLeft sets the x coordinate of the pad's left edge.
func (p *Pad) SetLeft(v float64) { p.xspan.setLo(v) }

// Width returns the pad's extent on the x axis.
func (p *Pad) Width() (float64, error) { return p.xspan.sizeValue() }

// SetWidth sets the pad's extent on the x axis.
func (p *Pad) SetWidth(v float64) { p.xspan.setSize(v) }

// Right returns the x coordinate of the pad's right edge.
func (p *Pad) Right() (float64, error) { return p.xspan.hiValue() }

// SetRight sets the x coordinate of the pad's right edge, moving the left
// edge if the width is known and deriving the width otherwise.
func (p *Pad) SetRight(v float64) error { return p.xspan.setHi(v) }

// X returns the x coordinate of the pad's center.
func (p *Pad) X() (float64, error) { return p.xspan.midValue() }

// SetX centers the pad at v on the x axis, preserving its width.
func (p *Pad) SetX(v float64) error { return p.xspan.setMid(v) }

// Top returns the y coordinate of the pad's top edge.
func (p *Pad) Top() (float64, error) { return p.yspan.loValue() }

// SetTop sets the y coordinate of the pad's top edge.
func (p *Pad) SetTop(v float64) { p.yspan.setLo(v) }

// Height returns the pad's extent on the y axis.
func (p *Pad) Height() (float64, error) { return p.yspan.sizeValue() }

// SetHeight sets the pad's extent on the y axis.
func (p *Pad) SetHeight(v float64) { p.yspan.setSize(v) }

// Bottom returns the y coordinate of the pad's bottom edge.
func (p *Pad) Bottom() (float64, error) { return p.yspan.hiValue() }

// SetBottom sets the y coordinate of the pad's bottom edge, moving the top
// edge if the height is known and deriving the height otherwise.
func (p *Pad) SetBottom(v float64) error { return p.yspan.setHi(v) }

// Y returns the y coordinate of the pad's center.
func (p *Pad) Y() (float64, error) { return p.yspan.midValue() }

// SetY centers the pad at v on the y axis, preserving its height.
func (p *Pad) SetY(v float64) error { return p.yspan.setMid(v) }

// Center returns the pad's center point.
func (p *Pad) Center() (float64, float64, error) {
	x, err := p.X()
	if err != nil {
		return 0, 0, fmt.Errorf("pad %q: %w", p.Number, err)
	}
	y, err := p.Y()
	if err != nil {
		return 0, 0, fmt.Errorf("pad %q: %w", p.Number, err)
	}
	return x, y, nil
}

func (p *Pad) pinNumber() string { return p.Number }

// Records serializes the pad as a pcb Pad record translated by (tx, ty).
// pcb defines pads as line segments: the pad's long axis becomes a line
// between two endpoints inset by half the short-axis thickness. A pad with
// width equal to height renders on the vertical branch.
func (p *Pad) Records(tx, ty float64) ([]string, error) {
	if !p.xspan.resolved() || !p.yspan.resolved() {
		return nil, fmt.Errorf("pad %q: %w", p.Number, ErrUnresolvedGeometry)
	}
	left, width := *p.xspan.lo, *p.xspan.size
	top, height := *p.yspan.lo, *p.yspan.size

	var x1, y1, x2, y2, thickness float64
	if width > height {
		thickness = height
		midY := units.Midpoint(top, top+height)
		x1 = left + thickness/2
		y1 = midY
		x2 = left + width - thickness/2
		y2 = midY
	} else {
		thickness = width
		midX := units.Midpoint(left, left+width)
		x1 = midX
		y1 = top + thickness/2
		x2 = midX
		y2 = top + height - thickness/2
	}

	mask := thickness + DefaultPadClearance
	flags := 0x100
	if p.Round {
		flags = 0
	}
	rec := fmt.Sprintf("Pad[%d %d %d %d %d %d %d \"%s\" \"%s\" %#x]",
		units.ToUnits(x1+tx), units.ToUnits(y1+ty),
		units.ToUnits(x2+tx), units.ToUnits(y2+ty),
		units.ToUnits(thickness), units.ToUnits(DefaultPadClearance),
		units.ToUnits(mask),
		p.Name, p.Number, flags)
	return []string{rec}, nil
}
