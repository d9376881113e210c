package main

// Symm computes C := alpha*A*B + beta*C where A is symmetric and only its
// lower triangle is stored.
type Symm struct {
	m, n int
}

func NewSymm() *Symm { return &Symm{} }

func (s *Symm) Name() string { return "linear-algebra/blas/symm" }

func (s *Symm) Init(sizes Dims, padding int) (*ArraySet, error) {
	s.m, s.n = sizes["M"], sizes["N"]
	c := NewArray("C", Float, padding, s.m, s.n)
	c.Output = true
	a := NewArray("A", Float, padding, s.m, s.m)
	b := NewArray("B", Float, padding, s.m, s.n)

	for i := 0; i < s.m; i++ {
		for j := 0; j < s.n; j++ {
			c.Set2(i, j, float64((i+j)%100)/float64(s.m))
			b.Set2(i, j, float64((s.n+i-j)%100)/float64(s.m))
		}
	}
	for i := 0; i < s.m; i++ {
		for j := 0; j <= i; j++ {
			a.Set2(i, j, float64((i+j)%100)/float64(s.m))
		}
		// The strict upper triangle must never be read by the kernel.
		for j := i + 1; j < s.m; j++ {
			a.Set2(i, j, -999)
		}
	}

	arrays := NewArraySet()
	arrays.Add(c, a, b)
	return arrays, nil
}

func (s *Symm) Run(arrays *ArraySet) error {
	c := arrays.MustGet("C")
	a := arrays.MustGet("A")
	b := arrays.MustGet("B")
	alpha, beta := 1.5, 1.2

	for i := 0; i < s.m; i++ {
		for j := 0; j < s.n; j++ {
			temp2 := 0.0
			for k := 0; k < i; k++ {
				c.Set2(k, j, c.At2(k, j)+alpha*b.At2(i, j)*a.At2(i, k))
				temp2 += b.At2(k, j) * a.At2(i, k)
			}
			c.Set2(i, j, beta*c.At2(i, j)+alpha*b.At2(i, j)*a.At2(i, i)+alpha*temp2)
		}
	}
	return nil
}
