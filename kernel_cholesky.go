package main

import "math"

// Cholesky factors a symmetric positive-definite matrix A into L such that
// A = L*L_transposed, storing L in the lower triangle of A in place.
type Cholesky struct {
	n int
}

func NewCholesky() *Cholesky { return &Cholesky{} }

func (c *Cholesky) Name() string { return "linear-algebra/solvers/cholesky" }

func (c *Cholesky) Init(sizes Dims, padding int) (*ArraySet, error) {
	c.n = sizes["N"]
	a := NewArray("A", Float, padding, c.n, c.n)
	a.Output = true

	for i := 0; i < c.n; i++ {
		for j := 0; j <= i; j++ {
			a.Set2(i, j, -float64(j%c.n)/float64(c.n)+1.0)
		}
		for j := i + 1; j < c.n; j++ {
			a.Set2(i, j, 0.0)
		}
		a.Set2(i, i, 1.0)
	}

	// Make A positive semi-definite: A := A * A_transposed. The scratch
	// product is local to initialization, it is not part of the working set.
	b := make([]float64, c.n*c.n)
	for t := 0; t < c.n; t++ {
		for r := 0; r < c.n; r++ {
			for s := 0; s < c.n; s++ {
				b[r*c.n+s] += a.At2(r, t) * a.At2(s, t)
			}
		}
	}
	for r := 0; r < c.n; r++ {
		for s := 0; s < c.n; s++ {
			a.Set2(r, s, b[r*c.n+s])
		}
	}

	arrays := NewArraySet()
	arrays.Add(a)
	return arrays, nil
}

func (c *Cholesky) Run(arrays *ArraySet) error {
	a := arrays.MustGet("A")

	for i := 0; i < c.n; i++ {
		for j := 0; j < i; j++ {
			for k := 0; k < j; k++ {
				a.Set2(i, j, a.At2(i, j)-a.At2(i, k)*a.At2(j, k))
			}
			a.Set2(i, j, a.At2(i, j)/a.At2(j, j))
		}
		for k := 0; k < i; k++ {
			a.Set2(i, i, a.At2(i, i)-a.At2(i, k)*a.At2(i, k))
		}
		a.Set2(i, i, math.Sqrt(a.At2(i, i)))
	}
	return nil
}
