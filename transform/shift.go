package transform

import "github.com/katalvlaran/stitchcore/errs"

// Shift is a pure-translation coordinate operator: forward(x) = x + offset.
type Shift struct {
	offset []float64
}

// NewShift constructs a Shift transform from the given offset vector.
func NewShift(offset []float64) (*Shift, error) {
	if len(offset) == 0 {
		return nil, transformErrorf(opNewShift, errs.ErrInvalidArgument)
	}
	off := make([]float64, len(offset))
	copy(off, offset)

	return &Shift{offset: off}, nil
}

// Offset returns a copy of the translation vector.
func (s *Shift) Offset() []float64 { return append([]float64(nil), s.offset...) }

func (s *Shift) DimCount() int { return len(s.offset) }

func (s *Shift) Map(dst, src []float64) error {
	if err := validateVec(s.DimCount(), src); err != nil {
		return transformErrorf(opMap, err)
	}
	if err := validateVec(s.DimCount(), dst); err != nil {
		return transformErrorf(opMap, err)
	}
	for k := range src {
		dst[k] = src[k] + s.offset[k]
	}

	return nil
}

func (s *Shift) InverseMap(dst, src []float64) error {
	if err := validateVec(s.DimCount(), src); err != nil {
		return transformErrorf(opInverseMap, err)
	}
	if err := validateVec(s.DimCount(), dst); err != nil {
		return transformErrorf(opInverseMap, err)
	}
	for k := range src {
		dst[k] = src[k] - s.offset[k]
	}

	return nil
}

func (s *Shift) IsShift() bool { return true }
func (s *Shift) IsLinear() bool { return true }

// IsIntegerShift reports whether s, re-anchored by subtracting offset,
// yields an integer translation.
func (s *Shift) IsIntegerShift(offset []float64) bool {
	if len(offset) != s.DimCount() {
		return false
	}
	for k := range s.offset {
		v := s.offset[k] - offset[k]
		if v != float64(int64(v)) {
			return false
		}
	}

	return true
}

func (s *Shift) AsLinear() (a [][]float64, b []float64, ok bool) {
	n := s.DimCount()
	a = make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		a[i][i] = 1
	}

	return a, s.Offset(), true
}

func (s *Shift) ShiftBy(v []float64) (Transform, error) {
	if err := validateVec(s.DimCount(), v); err != nil {
		return nil, transformErrorf(opShiftBy, err)
	}
	sum := make([]float64, s.DimCount())
	for k := range v {
		sum[k] = s.offset[k] + v[k]
	}

	return &Shift{offset: sum}, nil
}

func (s *Shift) Compose(other Transform) (Transform, error) {
	if other == nil {
		return nil, transformErrorf(opCompose, errs.ErrInvalidArgument)
	}
	if os, ok := other.(*Shift); ok {
		return s.ShiftBy(os.offset)
	}
	// general composition: wrap as an opaque General transform
	return composeGeneral(s, other)
}
