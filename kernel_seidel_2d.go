package main

// Seidel2D runs a 2-dimensional nine-point Gauss-Seidel stencil, updating the
// grid in place so each sweep sees already-updated neighbors.
type Seidel2D struct {
	tsteps, n int
}

func NewSeidel2D() *Seidel2D { return &Seidel2D{} }

func (s *Seidel2D) Name() string { return "stencils/seidel-2d" }

func (s *Seidel2D) Init(sizes Dims, padding int) (*ArraySet, error) {
	s.tsteps, s.n = sizes["TSTEPS"], sizes["N"]
	a := NewArray("A", Float, padding, s.n, s.n)
	a.Output = true

	floatN := float64(s.n)
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			a.Set2(i, j, (float64(i)*float64(j+2)+2)/floatN)
		}
	}

	arrays := NewArraySet()
	arrays.Add(a)
	return arrays, nil
}

func (s *Seidel2D) Run(arrays *ArraySet) error {
	a := arrays.MustGet("A")

	for t := 0; t < s.tsteps-1; t++ {
		for i := 1; i <= s.n-2; i++ {
			for j := 1; j <= s.n-2; j++ {
				a.Set2(i, j, (a.At2(i-1, j-1)+a.At2(i-1, j)+a.At2(i-1, j+1)+
					a.At2(i, j-1)+a.At2(i, j)+a.At2(i, j+1)+
					a.At2(i+1, j-1)+a.At2(i+1, j)+a.At2(i+1, j+1))/9.0)
			}
		}
	}
	return nil
}
