package transform

import "github.com/katalvlaran/stitchcore/errs"

// General wraps an opaque caller-supplied forward/inverse pair of pure
// functions. IsShift and IsLinear are always false: the composite sampler
// (package frame) falls back to its generic n-linear interpolation path for
// a General position.
type General struct {
	dim     int
	forward func(dst, src []float64)
	inverse func(dst, src []float64)
}

// NewGeneral constructs a General transform from a forward/inverse function
// pair. Both functions must write exactly dim values into dst given a
// length-dim src.
func NewGeneral(dim int, forward, inverse func(dst, src []float64)) (*General, error) {
	if dim <= 0 || forward == nil || inverse == nil {
		return nil, transformErrorf("NewGeneral", errs.ErrInvalidArgument)
	}

	return &General{dim: dim, forward: forward, inverse: inverse}, nil
}

func (g *General) DimCount() int { return g.dim }

func (g *General) Map(dst, src []float64) error {
	if err := validateVec(g.dim, src); err != nil {
		return transformErrorf(opMap, err)
	}
	if err := validateVec(g.dim, dst); err != nil {
		return transformErrorf(opMap, err)
	}
	g.forward(dst, src)

	return nil
}

func (g *General) InverseMap(dst, src []float64) error {
	if err := validateVec(g.dim, src); err != nil {
		return transformErrorf(opInverseMap, err)
	}
	if err := validateVec(g.dim, dst); err != nil {
		return transformErrorf(opInverseMap, err)
	}
	g.inverse(dst, src)

	return nil
}

func (g *General) IsShift() bool  { return false }
func (g *General) IsLinear() bool { return false }

func (g *General) AsLinear() (a [][]float64, b []float64, ok bool) { return nil, nil, false }

func (g *General) ShiftBy(v []float64) (Transform, error) {
	if err := validateVec(g.dim, v); err != nil {
		return nil, transformErrorf(opShiftBy, err)
	}
	fwd := g.forward
	inv := g.inverse
	shifted, _ := NewGeneral(g.dim, func(dst, src []float64) {
		fwd(dst, src)
		for k := range dst {
			dst[k] += v[k]
		}
	}, func(dst, src []float64) {
		unshifted := make([]float64, g.dim)
		for k := range src {
			unshifted[k] = src[k] - v[k]
		}
		inv(dst, unshifted)
	})

	return shifted, nil
}

func (g *General) Compose(other Transform) (Transform, error) {
	return composeGeneral(g, other)
}

// composeGeneral builds a General transform representing outer(inner(x)),
// used whenever at least one side of a composition is not itself affine.
func composeGeneral(outer, inner Transform) (Transform, error) {
	if outer.DimCount() != inner.DimCount() {
		return nil, transformErrorf(opCompose, errs.ErrInvalidArgument)
	}
	dim := outer.DimCount()
	forward := func(dst, src []float64) {
		mid := make([]float64, dim)
		_ = inner.Map(mid, src)
		_ = outer.Map(dst, mid)
	}
	inverse := func(dst, src []float64) {
		mid := make([]float64, dim)
		_ = outer.InverseMap(mid, src)
		_ = inner.InverseMap(dst, mid)
	}

	return NewGeneral(dim, forward, inverse)
}
