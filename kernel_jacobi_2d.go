package main

// Jacobi2D runs TSTEPS sweeps of a 2-dimensional five-point Jacobi stencil
// over two alternating grids.
type Jacobi2D struct {
	tsteps, n int
}

func NewJacobi2D() *Jacobi2D { return &Jacobi2D{} }

func (j *Jacobi2D) Name() string { return "stencils/jacobi-2d" }

func (j *Jacobi2D) Init(sizes Dims, padding int) (*ArraySet, error) {
	j.tsteps, j.n = sizes["TSTEPS"], sizes["N"]
	a := NewArray("A", Float, padding, j.n, j.n)
	a.Output = true
	b := NewArray("B", Float, padding, j.n, j.n)

	floatN := float64(j.n)
	for i := 0; i < j.n; i++ {
		for k := 0; k < j.n; k++ {
			a.Set2(i, k, (float64(i)*float64(k+2)+2)/floatN)
			b.Set2(i, k, (float64(i)*float64(k+3)+3)/floatN)
		}
	}

	arrays := NewArraySet()
	arrays.Add(a, b)
	return arrays, nil
}

func (j *Jacobi2D) Run(arrays *ArraySet) error {
	a := arrays.MustGet("A")
	b := arrays.MustGet("B")

	for t := 0; t < j.tsteps; t++ {
		for i := 1; i < j.n-1; i++ {
			for k := 1; k < j.n-1; k++ {
				b.Set2(i, k, 0.2*(a.At2(i, k)+a.At2(i, k-1)+a.At2(i, k+1)+a.At2(i+1, k)+a.At2(i-1, k)))
			}
		}
		for i := 1; i < j.n-1; i++ {
			for k := 1; k < j.n-1; k++ {
				a.Set2(i, k, 0.2*(b.At2(i, k)+b.At2(i, k-1)+b.At2(i, k+1)+b.At2(i+1, k)+b.At2(i-1, k)))
			}
		}
	}
	return nil
}
