package main

// Atax computes y := A_transposed * (A * x).
type Atax struct {
	m, n int
}

func NewAtax() *Atax { return &Atax{} }

func (a *Atax) Name() string { return "linear-algebra/kernels/atax" }

func (a *Atax) Init(sizes Dims, padding int) (*ArraySet, error) {
	a.m, a.n = sizes["M"], sizes["N"]
	mat := NewArray("A", Float, padding, a.m, a.n)
	x := NewArray("x", Float, padding, a.n)
	y := NewArray("y", Float, padding, a.n)
	y.Output = true
	tmp := NewArray("tmp", Float, padding, a.m)

	floatN := float64(a.n)
	for i := 0; i < a.n; i++ {
		x.Set(i, 1.0+float64(i)/floatN)
	}
	for i := 0; i < a.m; i++ {
		for j := 0; j < a.n; j++ {
			mat.Set2(i, j, float64((i+j)%a.n)/float64(5*a.m))
		}
	}

	arrays := NewArraySet()
	arrays.Add(y, mat, x, tmp)
	return arrays, nil
}

func (a *Atax) Run(arrays *ArraySet) error {
	mat := arrays.MustGet("A")
	x := arrays.MustGet("x")
	y := arrays.MustGet("y")
	tmp := arrays.MustGet("tmp")

	for i := 0; i < a.n; i++ {
		y.Set(i, 0.0)
	}
	for i := 0; i < a.m; i++ {
		tmp.Set(i, 0.0)
		for j := 0; j < a.n; j++ {
			tmp.Set(i, tmp.At(i)+mat.At2(i, j)*x.At(j))
		}
		for j := 0; j < a.n; j++ {
			y.Set(j, y.At(j)+mat.At2(i, j)*tmp.At(i))
		}
	}
	return nil
}
