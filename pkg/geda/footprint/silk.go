package footprint

import (
	"fmt"

	"github.com/OpenTraceLab/fpgen/pkg/geda/units"
)

// SilkLine is a straight segment on the silkscreen layer.
type SilkLine struct {
	X1, Y1    float64
	X2, Y2    float64
	Thickness float64
}

// NewSilkLine builds a silkscreen line between two endpoints. A thickness
// of zero or less selects DefaultSilkThickness.
func NewSilkLine(x1, y1, x2, y2, thickness float64) *SilkLine {
	if thickness <= 0 {
		thickness = DefaultSilkThickness
	}
	return &SilkLine{X1: x1, Y1: y1, X2: x2, Y2: y2, Thickness: thickness}
}

// Records serializes the line as a pcb ElementLine record.
func (l *SilkLine) Records(tx, ty float64) ([]string, error) {
	rec := fmt.Sprintf("ElementLine[%d %d %d %d %d]",
		units.ToUnits(l.X1+tx), units.ToUnits(l.Y1+ty),
		units.ToUnits(l.X2+tx), units.ToUnits(l.Y2+ty),
		units.ToUnits(l.Thickness))
	return []string{rec}, nil
}

// SilkPolyline is a chain of connected silkscreen segments. The point list
// is expanded into SilkLines at construction; the segments are retained, so
// serialization can run any number of times.
type SilkPolyline struct {
	Segments []*SilkLine
}

// NewSilkPolyline connects the given points in order with segments sharing
// one thickness (zero or less selects DefaultSilkThickness). With closed
// set, an additional segment joins the last point back to the first. Fewer
// than two points is ErrInvalidPolyline.
func NewSilkPolyline(points []Point, thickness float64, closed bool) (*SilkPolyline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidPolyline, len(points))
	}
	pl := &SilkPolyline{}
	for i := 1; i < len(points); i++ {
		pl.Segments = append(pl.Segments, NewSilkLine(
			points[i-1].X, points[i-1].Y,
			points[i].X, points[i].Y,
			thickness))
	}
	if closed {
		last := points[len(points)-1]
		pl.Segments = append(pl.Segments, NewSilkLine(
			last.X, last.Y,
			points[0].X, points[0].Y,
			thickness))
	}
	return pl, nil
}

// Records serializes every segment, one ElementLine record per line.
func (pl *SilkPolyline) Records(tx, ty float64) ([]string, error) {
	var recs []string
	for _, seg := range pl.Segments {
		r, err := seg.Records(tx, ty)
		if err != nil {
			return nil, err
		}
		recs = append(recs, r...)
	}
	return recs, nil
}

// SilkArc is an arc on the silkscreen layer. The x and y radii are
// independent to support elliptical arcs; Radius and Diameter provide a
// simplifying circular view over both.
type SilkArc struct {
	X, Y    float64
	XRadius float64
	YRadius float64

	// StartAngle is in degrees counterclockwise from the negative x axis.
	StartAngle int

	// DeltaAngle is the sweep in degrees; positive rotates
	// counterclockwise.
	DeltaAngle int

	Thickness float64
}

// ArcSpec carries the optional arc attributes. Radius and Diameter set
// both axis radii at once and are applied after XRadius/YRadius, in that
// order, so later fields win.
type ArcSpec struct {
	XRadius    *float64
	YRadius    *float64
	Radius     *float64
	Diameter   *float64
	StartAngle *int
	DeltaAngle *int
	Thickness  *float64
}

// NewSilkArc builds an arc centered at (x, y). StartAngle defaults to 0,
// DeltaAngle to 360 (a full circle) and thickness to DefaultSilkThickness.
func NewSilkArc(x, y float64, spec ArcSpec) *SilkArc {
	a := &SilkArc{
		X:          x,
		Y:          y,
		StartAngle: 0,
		DeltaAngle: 360,
		Thickness:  DefaultSilkThickness,
	}
	if spec.XRadius != nil {
		a.XRadius = *spec.XRadius
	}
	if spec.YRadius != nil {
		a.YRadius = *spec.YRadius
	}
	if spec.Radius != nil {
		a.SetRadius(*spec.Radius)
	}
	if spec.Diameter != nil {
		a.SetDiameter(*spec.Diameter)
	}
	if spec.StartAngle != nil {
		a.StartAngle = *spec.StartAngle
	}
	if spec.DeltaAngle != nil {
		a.DeltaAngle = *spec.DeltaAngle
	}
	if spec.Thickness != nil {
		a.Thickness = *spec.Thickness
	}
	return a
}

// Radius returns the arc radius; for elliptical arcs it is the average of
// the two axis radii.
func (a *SilkArc) Radius() float64 {
	return units.Midpoint(a.XRadius, a.YRadius)
}

// SetRadius sets both axis radii to v.
func (a *SilkArc) SetRadius(v float64) {
	a.XRadius = v
	a.YRadius = v
}

// Diameter returns the arc diameter; for elliptical arcs it is the average
// of the two axis diameters.
func (a *SilkArc) Diameter() float64 {
	return a.Radius() * 2
}

// SetDiameter sets both axis diameters to v.
func (a *SilkArc) SetDiameter(v float64) {
	a.SetRadius(v / 2)
}

// Records serializes the arc as a pcb ElementArc record. Angles are
// emitted as plain integer degrees, not native units.
func (a *SilkArc) Records(tx, ty float64) ([]string, error) {
	rec := fmt.Sprintf("ElementArc[%d %d %d %d %d %d %d]",
		units.ToUnits(a.X+tx), units.ToUnits(a.Y+ty),
		units.ToUnits(a.XRadius), units.ToUnits(a.YRadius),
		a.StartAngle, a.DeltaAngle,
		units.ToUnits(a.Thickness))
	return []string{rec}, nil
}
