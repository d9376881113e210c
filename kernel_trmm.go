package main

// Trmm computes the triangular matrix multiplication B := alpha*A_transposed*B
// where A is unit lower triangular.
type Trmm struct {
	m, n int
}

func NewTrmm() *Trmm { return &Trmm{} }

func (t *Trmm) Name() string { return "linear-algebra/blas/trmm" }

func (t *Trmm) Init(sizes Dims, padding int) (*ArraySet, error) {
	t.m, t.n = sizes["M"], sizes["N"]
	a := NewArray("A", Float, padding, t.m, t.m)
	b := NewArray("B", Float, padding, t.m, t.n)
	b.Output = true

	for i := 0; i < t.m; i++ {
		for j := 0; j < i; j++ {
			a.Set2(i, j, float64((i+j)%t.m)/float64(t.m))
		}
		a.Set2(i, i, 1.0)
		for j := 0; j < t.n; j++ {
			b.Set2(i, j, float64((t.n+i-j)%t.n)/float64(t.n))
		}
	}

	arrays := NewArraySet()
	arrays.Add(b, a)
	return arrays, nil
}

func (t *Trmm) Run(arrays *ArraySet) error {
	a := arrays.MustGet("A")
	b := arrays.MustGet("B")
	alpha := 1.5

	for i := 0; i < t.m; i++ {
		for j := 0; j < t.n; j++ {
			for k := i + 1; k < t.m; k++ {
				b.Set2(i, j, b.At2(i, j)+a.At2(k, i)*b.At2(k, j))
			}
			b.Set2(i, j, alpha*b.At2(i, j))
		}
	}
	return nil
}
