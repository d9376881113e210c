package main

// Doitgen applies the multi-resolution analysis kernel: every (r, q) slice of
// the 3-dimensional array A is replaced by its product with C4.
type Doitgen struct {
	nq, nr, np int
}

func NewDoitgen() *Doitgen { return &Doitgen{} }

func (d *Doitgen) Name() string { return "linear-algebra/kernels/doitgen" }

func (d *Doitgen) Init(sizes Dims, padding int) (*ArraySet, error) {
	d.nq, d.nr, d.np = sizes["NQ"], sizes["NR"], sizes["NP"]
	a := NewArray("A", Float, padding, d.nr, d.nq, d.np)
	a.Output = true
	c4 := NewArray("C4", Float, padding, d.np, d.np)
	sum := NewArray("sum", Float, padding, d.np)

	for i := 0; i < d.nr; i++ {
		for j := 0; j < d.nq; j++ {
			for k := 0; k < d.np; k++ {
				a.Set3(i, j, k, float64((i*j+k)%d.np)/float64(d.np))
			}
		}
	}
	for i := 0; i < d.np; i++ {
		for j := 0; j < d.np; j++ {
			c4.Set2(i, j, float64(i*j%d.np)/float64(d.np))
		}
	}

	arrays := NewArraySet()
	arrays.Add(a, c4, sum)
	return arrays, nil
}

func (d *Doitgen) Run(arrays *ArraySet) error {
	a := arrays.MustGet("A")
	c4 := arrays.MustGet("C4")
	sum := arrays.MustGet("sum")

	for r := 0; r < d.nr; r++ {
		for q := 0; q < d.nq; q++ {
			for p := 0; p < d.np; p++ {
				sum.Set(p, 0.0)
				for s := 0; s < d.np; s++ {
					sum.Set(p, sum.At(p)+a.At3(r, q, s)*c4.At2(s, p))
				}
			}
			for p := 0; p < d.np; p++ {
				a.Set3(r, q, p, sum.At(p))
			}
		}
	}
	return nil
}
