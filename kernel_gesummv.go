package main

// Gesummv computes y := alpha*A*x + beta*B*x.
type Gesummv struct {
	n int
}

func NewGesummv() *Gesummv { return &Gesummv{} }

func (g *Gesummv) Name() string { return "linear-algebra/blas/gesummv" }

func (g *Gesummv) Init(sizes Dims, padding int) (*ArraySet, error) {
	g.n = sizes["N"]
	a := NewArray("A", Float, padding, g.n, g.n)
	b := NewArray("B", Float, padding, g.n, g.n)
	tmp := NewArray("tmp", Float, padding, g.n)
	x := NewArray("x", Float, padding, g.n)
	y := NewArray("y", Float, padding, g.n)
	y.Output = true

	for i := 0; i < g.n; i++ {
		x.Set(i, float64(i%g.n)/float64(g.n))
		for j := 0; j < g.n; j++ {
			a.Set2(i, j, float64((i*j+1)%g.n)/float64(g.n))
			b.Set2(i, j, float64((i*j+2)%g.n)/float64(g.n))
		}
	}

	arrays := NewArraySet()
	arrays.Add(y, a, b, tmp, x)
	return arrays, nil
}

func (g *Gesummv) Run(arrays *ArraySet) error {
	a := arrays.MustGet("A")
	b := arrays.MustGet("B")
	tmp := arrays.MustGet("tmp")
	x := arrays.MustGet("x")
	y := arrays.MustGet("y")
	alpha, beta := 1.5, 1.2

	for i := 0; i < g.n; i++ {
		tmp.Set(i, 0.0)
		y.Set(i, 0.0)
		for j := 0; j < g.n; j++ {
			tmp.Set(i, a.At2(i, j)*x.At(j)+tmp.At(i))
			y.Set(i, b.At2(i, j)*x.At(j)+y.At(i))
		}
		y.Set(i, alpha*tmp.At(i)+beta*y.At(i))
	}
	return nil
}
