package main

// Jacobi1D runs TSTEPS sweeps of a 1-dimensional three-point Jacobi stencil
// over two alternating arrays.
type Jacobi1D struct {
	tsteps, n int
}

func NewJacobi1D() *Jacobi1D { return &Jacobi1D{} }

func (j *Jacobi1D) Name() string { return "stencils/jacobi-1d" }

func (j *Jacobi1D) Init(sizes Dims, padding int) (*ArraySet, error) {
	j.tsteps, j.n = sizes["TSTEPS"], sizes["N"]
	a := NewArray("A", Float, padding, j.n)
	a.Output = true
	b := NewArray("B", Float, padding, j.n)

	for i := 0; i < j.n; i++ {
		a.Set(i, (float64(i)+2)/float64(j.n))
		b.Set(i, (float64(i)+3)/float64(j.n))
	}

	arrays := NewArraySet()
	arrays.Add(a, b)
	return arrays, nil
}

func (j *Jacobi1D) Run(arrays *ArraySet) error {
	a := arrays.MustGet("A")
	b := arrays.MustGet("B")

	for t := 0; t < j.tsteps; t++ {
		for i := 1; i < j.n-1; i++ {
			b.Set(i, 0.33333*(a.At(i-1)+a.At(i)+a.At(i+1)))
		}
		for i := 1; i < j.n-1; i++ {
			a.Set(i, 0.33333*(b.At(i-1)+b.At(i)+b.At(i+1)))
		}
	}
	return nil
}
