package footprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/fpgen/pkg/geda/units"
)

// TextDirection is the rotation of the footprint's reference text.
type TextDirection int

const (
	TextNormal     TextDirection = iota // no rotation
	TextLeft                            // rotated 90 degrees left
	TextUpsideDown                      // rotated 180 degrees
	TextRight                           // rotated 270 degrees left
)

// Footprint is a complete placement description for one component type
// (an "element" in pcb terms). It owns its shapes in insertion order,
// which is also rendering order, and hands out pin/pad numbers from an
// auto-incrementing counter seeded at 1.
//
// Shapes are laid out in absolute coordinates; at serialization time every
// shape is translated so the mark point becomes the origin of the emitted
// element.
type Footprint struct {
	// Name identifies the element and becomes the output file stem.
	Name string

	// Description is free text stored in the element header.
	Description string

	// MarkX, MarkY locate the element's "diamond" marker. Usually set
	// through Mark rather than directly.
	MarkX float64
	MarkY float64

	// TextX, TextY locate the reference text's top-left corner.
	TextX float64
	TextY float64

	TextDirection TextDirection
	TextScale     int

	shapes  []Shape
	counter int
}

// New creates an empty footprint with the given name.
func New(name string) *Footprint {
	return &Footprint{
		Name:      name,
		TextScale: 100,
		counter:   1,
	}
}

// AddPad builds a pad from spec and appends it. When spec carries neither
// Base nor Number, the current auto-number is assigned as the pad number.
// The counter advances once per call regardless.
//
// The returned pad lets later statements reference its computed geometry,
// e.g. as the Base of another pad or via p.Right() as a coordinate. Those
// references are plain values: changing the pad afterwards does not update
// shapes derived from it.
func (f *Footprint) AddPad(spec PadSpec) (*Pad, error) {
	if spec.Base == nil && spec.Number == nil {
		spec.Number = String(strconv.Itoa(f.counter))
	}
	pad, err := NewPad(spec)
	if err != nil {
		return nil, err
	}
	f.shapes = append(f.shapes, pad)
	f.counter++
	return pad, nil
}

// AddPin builds a pin from spec and appends it, with the same numbering
// rules as AddPad.
func (f *Footprint) AddPin(spec PinSpec) (*Pin, error) {
	if spec.Base == nil && spec.Number == nil {
		spec.Number = String(strconv.Itoa(f.counter))
	}
	pin, err := NewPin(spec)
	if err != nil {
		return nil, err
	}
	f.shapes = append(f.shapes, pin)
	f.counter++
	return pin, nil
}

// AddPads places count pads starting at spec's X/Y center, stepping by dx
// and dy after each placement. A multi-element Step alternates by 0-based
// index parity, producing staggered rows.
//
// By default numbers increment across the array from the counter's current
// value. An explicit spec.Number is stamped on every pad in the array
// unchanged; the counter still advances once per pad. Callers expecting
// auto-increment must leave Number unset.
func (f *Footprint) AddPads(count int, spec PadSpec, dx, dy Step) ([]*Pad, error) {
	pads := make([]*Pad, 0, count)
	explicit := spec.Number != nil
	number := f.counter
	var x, y float64
	if spec.X != nil {
		x = *spec.X
	}
	if spec.Y != nil {
		y = *spec.Y
	}
	for i := 0; i < count; i++ {
		s := spec
		s.X = Float(x)
		s.Y = Float(y)
		if !explicit {
			s.Number = String(strconv.Itoa(number))
		}
		pad, err := f.AddPad(s)
		if err != nil {
			return nil, fmt.Errorf("pad %d of %d: %w", i+1, count, err)
		}
		pads = append(pads, pad)
		x += dx.at(i)
		y += dy.at(i)
		number++
	}
	return pads, nil
}

// AddPins places count pins starting at spec's X/Y center, stepping by dx
// and dy after each placement, with the same stagger and numbering rules
// as AddPads.
func (f *Footprint) AddPins(count int, spec PinSpec, dx, dy Step) ([]*Pin, error) {
	pins := make([]*Pin, 0, count)
	explicit := spec.Number != nil
	number := f.counter
	var x, y float64
	if spec.X != nil {
		x = *spec.X
	}
	if spec.Y != nil {
		y = *spec.Y
	}
	for i := 0; i < count; i++ {
		s := spec
		s.X = Float(x)
		s.Y = Float(y)
		if !explicit {
			s.Number = String(strconv.Itoa(number))
		}
		pin, err := f.AddPin(s)
		if err != nil {
			return nil, fmt.Errorf("pin %d of %d: %w", i+1, count, err)
		}
		pins = append(pins, pin)
		x += dx.at(i)
		y += dy.at(i)
		number++
	}
	return pins, nil
}

// AddLine appends a silkscreen line. A thickness of zero or less selects
// DefaultSilkThickness.
func (f *Footprint) AddLine(x1, y1, x2, y2, thickness float64) *SilkLine {
	line := NewSilkLine(x1, y1, x2, y2, thickness)
	f.shapes = append(f.shapes, line)
	return line
}

// AddPolyline appends a silkscreen polyline through the given points.
func (f *Footprint) AddPolyline(points []Point, thickness float64, closed bool) (*SilkPolyline, error) {
	pl, err := NewSilkPolyline(points, thickness, closed)
	if err != nil {
		return nil, err
	}
	f.shapes = append(f.shapes, pl)
	return pl, nil
}

// AddArc appends a silkscreen arc centered at (x, y).
func (f *Footprint) AddArc(x, y float64, spec ArcSpec) *SilkArc {
	arc := NewSilkArc(x, y, spec)
	f.shapes = append(f.shapes, arc)
	return arc
}

// Mark sets the mark position to the center of the given pin or pad.
func (f *Footprint) Mark(c Centered) error {
	x, y, err := c.Center()
	if err != nil {
		return fmt.Errorf("mark: %w", err)
	}
	f.MarkX = x
	f.MarkY = y
	return nil
}

// ByNumber returns the first appended pad or pin whose number equals n, in
// insertion order, or nil if none matches. Numbers are not unique; an
// element in an explicitly numbered array shadows its siblings here.
func (f *Footprint) ByNumber(n string) Shape {
	for _, s := range f.shapes {
		if num, ok := s.(numbered); ok && num.pinNumber() == n {
			return s
		}
	}
	return nil
}

// Shapes returns the owned shapes in insertion order.
func (f *Footprint) Shapes() []Shape {
	return f.shapes
}

// Format serializes the footprint in pcb element format: a header record,
// one record line per shape translated by the negated mark, and a closing
// parenthesis. Serialization is read-only and repeatable; any shape whose
// geometry is still unresolved aborts it with an error.
func (f *Footprint) Format() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Element[\"\" \"%s\" \"\" \"%s\" %d %d %d %d %d %d \"\"] (\n",
		f.Description, f.Name,
		units.ToUnits(f.MarkX), units.ToUnits(f.MarkY),
		units.ToUnits(f.TextX), units.ToUnits(f.TextY),
		f.TextDirection, f.TextScale)

	var lines []string
	for _, s := range f.shapes {
		recs, err := s.Records(-f.MarkX, -f.MarkY)
		if err != nil {
			return "", fmt.Errorf("footprint %q: %w", f.Name, err)
		}
		lines = append(lines, recs...)
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n)\n")
	return b.String(), nil
}
