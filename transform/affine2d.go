package transform

import "github.com/katalvlaran/stitchcore/errs"

// Affine2D is the required 2-D affine fast path (spec §4.2): the matrix
// multiply is inlined over six plain float64 fields with no heap
// allocation, mirroring kwv-tudomesh/mesh/transform.go's AffineMatrix and
// TransformPoint/InvertMatrix but folded into the Transform interface.
type Affine2D struct {
	a00, a01 float64
	a10, a11 float64
	b0, b1   float64
}

// NewAffine2D constructs a 2-D affine transform directly from its six
// coefficients: y0 = a00*x0 + a01*x1 + b0; y1 = a10*x0 + a11*x1 + b1.
func NewAffine2D(a00, a01, a10, a11, b0, b1 float64) *Affine2D {
	return &Affine2D{a00: a00, a01: a01, a10: a10, a11: a11, b0: b0, b1: b1}
}

func (t *Affine2D) DimCount() int { return 2 }

func (t *Affine2D) Map(dst, src []float64) error {
	if len(src) != 2 || len(dst) != 2 {
		return transformErrorf(opMap, errs.ErrInvalidArgument)
	}
	x0, x1 := src[0], src[1]
	dst[0] = t.a00*x0 + t.a01*x1 + t.b0
	dst[1] = t.a10*x0 + t.a11*x1 + t.b1

	return nil
}

func (t *Affine2D) InverseMap(dst, src []float64) error {
	if len(src) != 2 || len(dst) != 2 {
		return transformErrorf(opInverseMap, errs.ErrInvalidArgument)
	}
	det := t.a00*t.a11 - t.a01*t.a10
	if det == 0 {
		return transformErrorf(opInverseMap, errs.ErrInvalidArgument)
	}
	ia00 := t.a11 / det
	ia01 := -t.a01 / det
	ia10 := -t.a10 / det
	ia11 := t.a00 / det

	x0 := src[0] - t.b0
	x1 := src[1] - t.b1
	dst[0] = ia00*x0 + ia01*x1
	dst[1] = ia10*x0 + ia11*x1

	return nil
}

func (t *Affine2D) IsShift() bool {
	return t.a00 == 1 && t.a01 == 0 && t.a10 == 0 && t.a11 == 1
}

func (t *Affine2D) IsLinear() bool { return true }

func (t *Affine2D) AsLinear() (a [][]float64, b []float64, ok bool) {
	return [][]float64{{t.a00, t.a01}, {t.a10, t.a11}}, []float64{t.b0, t.b1}, true
}

func (t *Affine2D) ShiftBy(v []float64) (Transform, error) {
	if len(v) != 2 {
		return nil, transformErrorf(opShiftBy, errs.ErrInvalidArgument)
	}

	return NewAffine2D(t.a00, t.a01, t.a10, t.a11, t.b0+v[0], t.b1+v[1]), nil
}

func (t *Affine2D) Compose(other Transform) (Transform, error) {
	if other == nil {
		return nil, transformErrorf(opCompose, errs.ErrInvalidArgument)
	}
	if oa, ob, ok := other.AsLinear(); ok && other.DimCount() == 2 {
		// this(other(x)) = A·(Ao·x + Bo) + B
		na00 := t.a00*oa[0][0] + t.a01*oa[1][0]
		na01 := t.a00*oa[0][1] + t.a01*oa[1][1]
		na10 := t.a10*oa[0][0] + t.a11*oa[1][0]
		na11 := t.a10*oa[0][1] + t.a11*oa[1][1]
		nb0 := t.a00*ob[0] + t.a01*ob[1] + t.b0
		nb1 := t.a10*ob[0] + t.a11*ob[1] + t.b1

		return NewAffine2D(na00, na01, na10, na11, nb0, nb1), nil
	}

	return composeGeneral(t, other)
}
