package transform

import "github.com/katalvlaran/stitchcore/errs"

// Affine is a general linear/affine coordinate operator: forward(x) = A·x + b.
// When DimCount() == 2 the constructor selects Affine2D, an allocation-free
// struct-of-floats specialization (spec §4.2's required 2-D fast path).
type Affine struct {
	a [][]float64 // n x n, row-major
	b []float64   // n
	n int

	// invA and invB cache the inverse (A^-1, A^-1 applied to -b) once
	// computed; nil until the first InverseMap call.
	invA [][]float64
	invB []float64
}

// NewAffine constructs an Affine transform from matrix a (n rows, n cols,
// row-major [][]float64) and vector b (length n).
func NewAffine(a [][]float64, b []float64) (Transform, error) {
	n := len(a)
	if n == 0 || len(b) != n {
		return nil, transformErrorf(opNewAffine, errs.ErrInvalidArgument)
	}
	for _, row := range a {
		if len(row) != n {
			return nil, transformErrorf(opNewAffine, errs.ErrInvalidArgument)
		}
	}

	if n == 2 {
		return &Affine2D{
			a00: a[0][0], a01: a[0][1],
			a10: a[1][0], a11: a[1][1],
			b0: b[0], b1: b[1],
		}, nil
	}

	aCopy := make([][]float64, n)
	for i := range a {
		aCopy[i] = append([]float64(nil), a[i]...)
	}

	return &Affine{a: aCopy, b: append([]float64(nil), b...), n: n}, nil
}

func (t *Affine) DimCount() int { return t.n }

func (t *Affine) Map(dst, src []float64) error {
	if err := validateVec(t.n, src); err != nil {
		return transformErrorf(opMap, err)
	}
	if err := validateVec(t.n, dst); err != nil {
		return transformErrorf(opMap, err)
	}
	out := make([]float64, t.n)
	for i := 0; i < t.n; i++ {
		sum := t.b[i]
		for j := 0; j < t.n; j++ {
			sum += t.a[i][j] * src[j]
		}
		out[i] = sum
	}
	copy(dst, out)

	return nil
}

func (t *Affine) InverseMap(dst, src []float64) error {
	if err := validateVec(t.n, src); err != nil {
		return transformErrorf(opInverseMap, err)
	}
	if err := validateVec(t.n, dst); err != nil {
		return transformErrorf(opInverseMap, err)
	}
	if t.invA == nil {
		invA, invB, err := invertAffine(t.a, t.b)
		if err != nil {
			return transformErrorf(opInverseMap, err)
		}
		t.invA, t.invB = invA, invB
	}
	out := make([]float64, t.n)
	for i := 0; i < t.n; i++ {
		sum := t.invB[i]
		for j := 0; j < t.n; j++ {
			sum += t.invA[i][j] * src[j]
		}
		out[i] = sum
	}
	copy(dst, out)

	return nil
}

func (t *Affine) IsShift() bool {
	for i := range t.a {
		for j, v := range t.a[i] {
			if (i == j && v != 1) || (i != j && v != 0) {
				return false
			}
		}
	}

	return true
}
func (t *Affine) IsLinear() bool { return true }

func (t *Affine) AsLinear() (a [][]float64, b []float64, ok bool) {
	out := make([][]float64, t.n)
	for i := range t.a {
		out[i] = append([]float64(nil), t.a[i]...)
	}

	return out, append([]float64(nil), t.b...), true
}

func (t *Affine) ShiftBy(v []float64) (Transform, error) {
	if err := validateVec(t.n, v); err != nil {
		return nil, transformErrorf(opShiftBy, err)
	}
	newB := make([]float64, t.n)
	for k := range v {
		newB[k] = t.b[k] + v[k]
	}

	return NewAffine(t.a, newB)
}

func (t *Affine) Compose(other Transform) (Transform, error) {
	if other == nil {
		return nil, transformErrorf(opCompose, errs.ErrInvalidArgument)
	}
	if oa, ob, ok := other.AsLinear(); ok && other.DimCount() == t.n {
		// this(other(x)) = A·(Ao·x + Bo) + B = (A·Ao)·x + (A·Bo + B)
		newA := make([][]float64, t.n)
		for i := 0; i < t.n; i++ {
			newA[i] = make([]float64, t.n)
			for j := 0; j < t.n; j++ {
				var sum float64
				for k := 0; k < t.n; k++ {
					sum += t.a[i][k] * oa[k][j]
				}
				newA[i][j] = sum
			}
		}
		newB := make([]float64, t.n)
		for i := 0; i < t.n; i++ {
			sum := t.b[i]
			for k := 0; k < t.n; k++ {
				sum += t.a[i][k] * ob[k]
			}
			newB[i] = sum
		}

		return NewAffine(newA, newB)
	}

	return composeGeneral(t, other)
}

// invertAffine computes A^-1 and A^-1·(-b) via Gauss-Jordan elimination
// with partial pivoting, adapted from the dense LU-based inverse kernel in
// the teacher matrix package but specialized to a plain [][]float64 working
// set sized for small (typically ≤3) spatial dimensions.
//
// Stage 1 (Prepare): build the augmented [A | I] matrix.
// Stage 2 (Eliminate): row-reduce with partial pivoting to [I | A^-1].
// Stage 3 (Finalize): apply A^-1 to -b to get the inverse's translation.
func invertAffine(a [][]float64, b []float64) (invA [][]float64, invB []float64, err error) {
	n := len(a)
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, 2*n)
		copy(aug[i], a[i])
		aug[i][n+i] = 1
	}

	for col := 0; col < n; col++ {
		pivotRow := col
		best := aug[col][col]
		if best < 0 {
			best = -best
		}
		for r := col + 1; r < n; r++ {
			v := aug[r][col]
			if v < 0 {
				v = -v
			}
			if v > best {
				best, pivotRow = v, r
			}
		}
		if best == 0 {
			return nil, nil, errs.ErrInvalidArgument
		}
		aug[col], aug[pivotRow] = aug[pivotRow], aug[col]

		pivot := aug[col][col]
		for j := 0; j < 2*n; j++ {
			aug[col][j] /= pivot
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				aug[r][j] -= factor * aug[col][j]
			}
		}
	}

	invA = make([][]float64, n)
	for i := 0; i < n; i++ {
		invA[i] = append([]float64(nil), aug[i][n:]...)
	}

	invB = make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += invA[i][j] * (-b[j])
		}
		invB[i] = sum
	}

	return invA, invB, nil
}
