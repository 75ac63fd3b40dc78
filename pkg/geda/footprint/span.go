package footprint

import "github.com/OpenTraceLab/fpgen/pkg/geda/units"

// span tracks one axis of a rectangle as a low-edge coordinate plus an
// extent. Both values start unset; geometry on the axis is resolved once
// two independent values have been supplied (directly or through the
// derived setters below).
type span struct {
	lo   *float64
	size *float64
}

func (s *span) resolved() bool {
	return s.lo != nil && s.size != nil
}

// setLo sets the low-edge coordinate (left or top).
func (s *span) setLo(v float64) {
	s.lo = Float(v)
}

// setSize sets the extent (width or height).
func (s *span) setSize(v float64) {
	s.size = Float(v)
}

// setHi sets the high-edge coordinate (right or bottom). If the extent is
// known the low edge moves; otherwise the extent is derived from the low
// edge. With neither known the axis cannot absorb the value.
func (s *span) setHi(v float64) error {
	switch {
	case s.size != nil:
		s.lo = Float(v - *s.size)
	case s.lo != nil:
		s.size = Float(v - *s.lo)
	default:
		return ErrUnresolvedGeometry
	}
	return nil
}

// setMid sets the center coordinate, which requires the extent to be known
// already.
func (s *span) setMid(v float64) error {
	if s.size == nil {
		return ErrUnresolvedGeometry
	}
	s.lo = Float(v - *s.size/2)
	return nil
}

func (s *span) loValue() (float64, error) {
	if s.lo == nil {
		return 0, ErrUnresolvedGeometry
	}
	return *s.lo, nil
}

func (s *span) sizeValue() (float64, error) {
	if s.size == nil {
		return 0, ErrUnresolvedGeometry
	}
	return *s.size, nil
}

func (s *span) hiValue() (float64, error) {
	if !s.resolved() {
		return 0, ErrUnresolvedGeometry
	}
	return *s.lo + *s.size, nil
}

func (s *span) midValue() (float64, error) {
	hi, err := s.hiValue()
	if err != nil {
		return 0, err
	}
	return units.Midpoint(*s.lo, hi), nil
}
