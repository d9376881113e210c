package main

// Gemm computes C := alpha*A*B + beta*C.
type Gemm struct {
	ni, nj, nk int
}

func NewGemm() *Gemm { return &Gemm{} }

func (g *Gemm) Name() string { return "linear-algebra/blas/gemm" }

func (g *Gemm) Init(sizes Dims, padding int) (*ArraySet, error) {
	g.ni, g.nj, g.nk = sizes["NI"], sizes["NJ"], sizes["NK"]
	c := NewArray("C", Float, padding, g.ni, g.nj)
	c.Output = true
	a := NewArray("A", Float, padding, g.ni, g.nk)
	b := NewArray("B", Float, padding, g.nk, g.nj)

	for i := 0; i < g.ni; i++ {
		for j := 0; j < g.nj; j++ {
			c.Set2(i, j, float64((i*j+1)%g.ni)/float64(g.ni))
		}
	}
	for i := 0; i < g.ni; i++ {
		for j := 0; j < g.nk; j++ {
			a.Set2(i, j, float64(i*(j+1)%g.nk)/float64(g.nk))
		}
	}
	for i := 0; i < g.nk; i++ {
		for j := 0; j < g.nj; j++ {
			b.Set2(i, j, float64(i*(j+2)%g.nj)/float64(g.nj))
		}
	}

	arrays := NewArraySet()
	arrays.Add(c, a, b)
	return arrays, nil
}

func (g *Gemm) Run(arrays *ArraySet) error {
	c := arrays.MustGet("C")
	a := arrays.MustGet("A")
	b := arrays.MustGet("B")
	alpha, beta := 1.5, 1.2

	for i := 0; i < g.ni; i++ {
		for j := 0; j < g.nj; j++ {
			c.Set2(i, j, c.At2(i, j)*beta)
		}
		for k := 0; k < g.nk; k++ {
			for j := 0; j < g.nj; j++ {
				c.Set2(i, j, c.At2(i, j)+alpha*a.At2(i, k)*b.At2(k, j))
			}
		}
	}
	return nil
}
