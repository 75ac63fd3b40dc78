package script

import (
	"fmt"

	"github.com/OpenTraceLab/fpgen/pkg/geda/footprint"
)

// Compile materializes every footprint block in the parsed file, in order.
// Statements execute imperatively against the footprint builder, so a
// statement can reference values declared by previous statements (base=N,
// mark N) but never later ones.
func Compile(file *File) ([]*footprint.Footprint, error) {
	var footprints []*footprint.Footprint
	for _, def := range file.Footprints {
		f, err := compileFootprint(def)
		if err != nil {
			return nil, err
		}
		footprints = append(footprints, f)
	}
	return footprints, nil
}

func compileFootprint(def *FootprintDef) (*footprint.Footprint, error) {
	f := footprint.New(def.Name)
	for i, st := range def.Statements {
		if err := applyStatement(f, st); err != nil {
			return nil, fmt.Errorf("footprint %q, statement %d: %w", def.Name, i+1, err)
		}
	}
	return f, nil
}

func applyStatement(f *footprint.Footprint, st *Statement) error {
	switch {
	case st.Description != nil:
		f.Description = st.Description.Text
		return nil
	case st.Text != nil:
		return applyText(f, st.Text.Attrs)
	case st.Pad != nil:
		spec, _, _, err := padSpec(f, st.Pad.Attrs, false)
		if err != nil {
			return err
		}
		_, err = f.AddPad(spec)
		return err
	case st.Pads != nil:
		spec, dx, dy, err := padSpec(f, st.Pads.Attrs, true)
		if err != nil {
			return err
		}
		_, err = f.AddPads(st.Pads.Count, spec, dx, dy)
		return err
	case st.Pin != nil:
		spec, _, _, err := pinSpec(f, st.Pin.Attrs, false)
		if err != nil {
			return err
		}
		_, err = f.AddPin(spec)
		return err
	case st.Pins != nil:
		spec, dx, dy, err := pinSpec(f, st.Pins.Attrs, true)
		if err != nil {
			return err
		}
		_, err = f.AddPins(st.Pins.Count, spec, dx, dy)
		return err
	case st.Line != nil:
		return applyLine(f, st.Line.Attrs)
	case st.Polyline != nil:
		return applyPolyline(f, st.Polyline)
	case st.Arc != nil:
		return applyArc(f, st.Arc.Attrs)
	case st.Mark != nil:
		return applyMark(f, st.Mark.Number)
	}
	return fmt.Errorf("empty statement")
}

// padSpec decodes pad attributes. With withSteps set, dx and dy are
// accepted and returned separately for array placement.
func padSpec(f *footprint.Footprint, attrs []*Attr, withSteps bool) (footprint.PadSpec, footprint.Step, footprint.Step, error) {
	var spec footprint.PadSpec
	var dx, dy footprint.Step
	for _, a := range attrs {
		switch a.Key {
		case "dx", "dy":
			if !withSteps {
				return spec, nil, nil, fmt.Errorf("pad: unknown attribute %q", a.Key)
			}
			step, err := a.Value.Step()
			if err != nil {
				return spec, nil, nil, fmt.Errorf("pad %s: %w", a.Key, err)
			}
			if a.Key == "dx" {
				dx = step
			} else {
				dy = step
			}
		case "base":
			n, err := a.Value.Text()
			if err != nil {
				return spec, nil, nil, fmt.Errorf("pad base: %w", err)
			}
			base, ok := f.ByNumber(n).(*footprint.Pad)
			if !ok {
				return spec, nil, nil, fmt.Errorf("pad base: no pad with number %q", n)
			}
			spec.Base = base
		case "left", "width", "top", "height", "right", "x", "bottom", "y":
			v, err := a.Value.Mils()
			if err != nil {
				return spec, nil, nil, fmt.Errorf("pad %s: %w", a.Key, err)
			}
			switch a.Key {
			case "left":
				spec.Left = footprint.Float(v)
			case "width":
				spec.Width = footprint.Float(v)
			case "top":
				spec.Top = footprint.Float(v)
			case "height":
				spec.Height = footprint.Float(v)
			case "right":
				spec.Right = footprint.Float(v)
			case "x":
				spec.X = footprint.Float(v)
			case "bottom":
				spec.Bottom = footprint.Float(v)
			case "y":
				spec.Y = footprint.Float(v)
			}
		case "name":
			s, err := a.Value.Text()
			if err != nil {
				return spec, nil, nil, fmt.Errorf("pad name: %w", err)
			}
			spec.Name = footprint.String(s)
		case "number":
			s, err := a.Value.Text()
			if err != nil {
				return spec, nil, nil, fmt.Errorf("pad number: %w", err)
			}
			spec.Number = footprint.String(s)
		case "round":
			b, err := a.Value.Boolean()
			if err != nil {
				return spec, nil, nil, fmt.Errorf("pad round: %w", err)
			}
			spec.Round = footprint.Bool(b)
		default:
			return spec, nil, nil, fmt.Errorf("pad: unknown attribute %q", a.Key)
		}
	}
	return spec, dx, dy, nil
}

// pinSpec decodes pin attributes, mirroring padSpec.
func pinSpec(f *footprint.Footprint, attrs []*Attr, withSteps bool) (footprint.PinSpec, footprint.Step, footprint.Step, error) {
	var spec footprint.PinSpec
	var dx, dy footprint.Step
	for _, a := range attrs {
		switch a.Key {
		case "dx", "dy":
			if !withSteps {
				return spec, nil, nil, fmt.Errorf("pin: unknown attribute %q", a.Key)
			}
			step, err := a.Value.Step()
			if err != nil {
				return spec, nil, nil, fmt.Errorf("pin %s: %w", a.Key, err)
			}
			if a.Key == "dx" {
				dx = step
			} else {
				dy = step
			}
		case "base":
			n, err := a.Value.Text()
			if err != nil {
				return spec, nil, nil, fmt.Errorf("pin base: %w", err)
			}
			base, ok := f.ByNumber(n).(*footprint.Pin)
			if !ok {
				return spec, nil, nil, fmt.Errorf("pin base: no pin with number %q", n)
			}
			spec.Base = base
		case "x", "y", "hole", "diameter", "left", "right", "top", "bottom":
			v, err := a.Value.Mils()
			if err != nil {
				return spec, nil, nil, fmt.Errorf("pin %s: %w", a.Key, err)
			}
			switch a.Key {
			case "x":
				spec.X = footprint.Float(v)
			case "y":
				spec.Y = footprint.Float(v)
			case "hole":
				spec.Hole = footprint.Float(v)
			case "diameter":
				spec.Diameter = footprint.Float(v)
			case "left":
				spec.Left = footprint.Float(v)
			case "right":
				spec.Right = footprint.Float(v)
			case "top":
				spec.Top = footprint.Float(v)
			case "bottom":
				spec.Bottom = footprint.Float(v)
			}
		case "name":
			s, err := a.Value.Text()
			if err != nil {
				return spec, nil, nil, fmt.Errorf("pin name: %w", err)
			}
			spec.Name = footprint.String(s)
		case "number":
			s, err := a.Value.Text()
			if err != nil {
				return spec, nil, nil, fmt.Errorf("pin number: %w", err)
			}
			spec.Number = footprint.String(s)
		case "round":
			b, err := a.Value.Boolean()
			if err != nil {
				return spec, nil, nil, fmt.Errorf("pin round: %w", err)
			}
			spec.Round = footprint.Bool(b)
		default:
			return spec, nil, nil, fmt.Errorf("pin: unknown attribute %q", a.Key)
		}
	}
	return spec, dx, dy, nil
}

func applyText(f *footprint.Footprint, attrs []*Attr) error {
	for _, a := range attrs {
		switch a.Key {
		case "x", "y":
			v, err := a.Value.Mils()
			if err != nil {
				return fmt.Errorf("text %s: %w", a.Key, err)
			}
			if a.Key == "x" {
				f.TextX = v
			} else {
				f.TextY = v
			}
		case "rotation":
			n, err := a.Value.Integer()
			if err != nil {
				return fmt.Errorf("text rotation: %w", err)
			}
			if n < 0 || n > 3 {
				return fmt.Errorf("text rotation: must be 0..3, got %d", n)
			}
			f.TextDirection = footprint.TextDirection(n)
		case "scale":
			n, err := a.Value.Integer()
			if err != nil {
				return fmt.Errorf("text scale: %w", err)
			}
			f.TextScale = n
		default:
			return fmt.Errorf("text: unknown attribute %q", a.Key)
		}
	}
	return nil
}

func applyLine(f *footprint.Footprint, attrs []*Attr) error {
	var x1, y1, x2, y2, thickness float64
	seen := make(map[string]bool)
	for _, a := range attrs {
		v, err := a.Value.Mils()
		if err != nil {
			return fmt.Errorf("line %s: %w", a.Key, err)
		}
		switch a.Key {
		case "x1":
			x1 = v
		case "y1":
			y1 = v
		case "x2":
			x2 = v
		case "y2":
			y2 = v
		case "thickness":
			thickness = v
		default:
			return fmt.Errorf("line: unknown attribute %q", a.Key)
		}
		seen[a.Key] = true
	}
	for _, req := range []string{"x1", "y1", "x2", "y2"} {
		if !seen[req] {
			return fmt.Errorf("line: missing attribute %q", req)
		}
	}
	f.AddLine(x1, y1, x2, y2, thickness)
	return nil
}

func applyPolyline(f *footprint.Footprint, st *PolylineStmt) error {
	points := make([]footprint.Point, 0, len(st.Points))
	for i, pair := range st.Points {
		if len(pair.Items) != 2 {
			return fmt.Errorf("polyline point %d: expected (x, y), got %d values", i+1, len(pair.Items))
		}
		points = append(points, footprint.Point{
			X: pair.Items[0].Mils(),
			Y: pair.Items[1].Mils(),
		})
	}

	var thickness float64
	closed := false
	for _, a := range st.Attrs {
		switch a.Key {
		case "thickness":
			v, err := a.Value.Mils()
			if err != nil {
				return fmt.Errorf("polyline thickness: %w", err)
			}
			thickness = v
		case "closed":
			b, err := a.Value.Boolean()
			if err != nil {
				return fmt.Errorf("polyline closed: %w", err)
			}
			closed = b
		default:
			return fmt.Errorf("polyline: unknown attribute %q", a.Key)
		}
	}

	_, err := f.AddPolyline(points, thickness, closed)
	return err
}

func applyArc(f *footprint.Footprint, attrs []*Attr) error {
	var x, y float64
	var spec footprint.ArcSpec
	seen := make(map[string]bool)
	for _, a := range attrs {
		switch a.Key {
		case "x", "y", "xradius", "yradius", "radius", "diameter", "thickness":
			v, err := a.Value.Mils()
			if err != nil {
				return fmt.Errorf("arc %s: %w", a.Key, err)
			}
			switch a.Key {
			case "x":
				x = v
			case "y":
				y = v
			case "xradius":
				spec.XRadius = footprint.Float(v)
			case "yradius":
				spec.YRadius = footprint.Float(v)
			case "radius":
				spec.Radius = footprint.Float(v)
			case "diameter":
				spec.Diameter = footprint.Float(v)
			case "thickness":
				spec.Thickness = footprint.Float(v)
			}
		case "start", "delta":
			n, err := a.Value.Integer()
			if err != nil {
				return fmt.Errorf("arc %s: %w", a.Key, err)
			}
			if a.Key == "start" {
				spec.StartAngle = footprint.Int(n)
			} else {
				spec.DeltaAngle = footprint.Int(n)
			}
		default:
			return fmt.Errorf("arc: unknown attribute %q", a.Key)
		}
		seen[a.Key] = true
	}
	if !seen["x"] || !seen["y"] {
		return fmt.Errorf("arc: missing center attributes x and y")
	}
	f.AddArc(x, y, spec)
	return nil
}

func applyMark(f *footprint.Footprint, number string) error {
	shape := f.ByNumber(number)
	if shape == nil {
		return fmt.Errorf("mark: no pin or pad with number %q", number)
	}
	c, ok := shape.(footprint.Centered)
	if !ok {
		return fmt.Errorf("mark: shape %q has no center", number)
	}
	return f.Mark(c)
}
