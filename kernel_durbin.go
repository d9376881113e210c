package main

// Durbin solves the Yule-Walker equations with a Toeplitz coefficient matrix
// using the Levinson-Durbin recursion.
type Durbin struct {
	n int
}

func NewDurbin() *Durbin { return &Durbin{} }

func (d *Durbin) Name() string { return "linear-algebra/solvers/durbin" }

func (d *Durbin) Init(sizes Dims, padding int) (*ArraySet, error) {
	d.n = sizes["N"]
	r := NewArray("r", Float, padding, d.n)
	y := NewArray("y", Float, padding, d.n)
	y.Output = true

	for i := 0; i < d.n; i++ {
		r.Set(i, float64(d.n+1-i))
	}

	arrays := NewArraySet()
	arrays.Add(y, r)
	return arrays, nil
}

func (d *Durbin) Run(arrays *ArraySet) error {
	r := arrays.MustGet("r")
	y := arrays.MustGet("y")

	// z is scratch allocated inside the measured region, matching the
	// reference recursion.
	z := make([]float64, d.n)
	y.Set(0, -r.At(0))
	beta := 1.0
	alpha := -r.At(0)
	for k := 1; k < d.n; k++ {
		beta = (1.0 - alpha*alpha) * beta
		sum := 0.0
		for i := 0; i < k; i++ {
			sum += r.At(k-i-1) * y.At(i)
		}
		alpha = -(r.At(k) + sum) / beta
		for i := 0; i < k; i++ {
			z[i] = y.At(i) + alpha*y.At(k-i-1)
		}
		for i := 0; i < k; i++ {
			y.Set(i, z[i])
		}
		y.Set(k, alpha)
	}
	return nil
}
