package main

// Syrk computes the symmetric rank-k update C := alpha*A*A_transposed + beta*C
// on the lower triangle of C.
type Syrk struct {
	m, n int
}

func NewSyrk() *Syrk { return &Syrk{} }

func (s *Syrk) Name() string { return "linear-algebra/blas/syrk" }

func (s *Syrk) Init(sizes Dims, padding int) (*ArraySet, error) {
	s.m, s.n = sizes["M"], sizes["N"]
	c := NewArray("C", Float, padding, s.n, s.n)
	c.Output = true
	a := NewArray("A", Float, padding, s.n, s.m)

	for i := 0; i < s.n; i++ {
		for j := 0; j < s.m; j++ {
			a.Set2(i, j, float64((i*j+1)%s.n)/float64(s.n))
		}
	}
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			c.Set2(i, j, float64((i*j+2)%s.m)/float64(s.m))
		}
	}

	arrays := NewArraySet()
	arrays.Add(c, a)
	return arrays, nil
}

func (s *Syrk) Run(arrays *ArraySet) error {
	c := arrays.MustGet("C")
	a := arrays.MustGet("A")
	alpha, beta := 1.5, 1.2

	for i := 0; i < s.n; i++ {
		for j := 0; j <= i; j++ {
			c.Set2(i, j, c.At2(i, j)*beta)
		}
		for k := 0; k < s.m; k++ {
			for j := 0; j <= i; j++ {
				c.Set2(i, j, c.At2(i, j)+alpha*a.At2(i, k)*a.At2(j, k))
			}
		}
	}
	return nil
}
