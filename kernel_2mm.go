package main

// TwoMM computes the chained matrix product D := beta*D + alpha*A*B*C.
type TwoMM struct {
	ni, nj, nk, nl int
}

func NewTwoMM() *TwoMM { return &TwoMM{} }

func (t *TwoMM) Name() string { return "linear-algebra/kernels/2mm" }

func (t *TwoMM) Init(sizes Dims, padding int) (*ArraySet, error) {
	t.ni, t.nj, t.nk, t.nl = sizes["NI"], sizes["NJ"], sizes["NK"], sizes["NL"]
	tmp := NewArray("tmp", Float, padding, t.ni, t.nj)
	a := NewArray("A", Float, padding, t.ni, t.nk)
	b := NewArray("B", Float, padding, t.nk, t.nj)
	c := NewArray("C", Float, padding, t.nj, t.nl)
	d := NewArray("D", Float, padding, t.ni, t.nl)
	d.Output = true

	for i := 0; i < t.ni; i++ {
		for j := 0; j < t.nk; j++ {
			a.Set2(i, j, float64((i*j+1)%t.ni)/float64(t.ni))
		}
	}
	for i := 0; i < t.nk; i++ {
		for j := 0; j < t.nj; j++ {
			b.Set2(i, j, float64(i*(j+1)%t.nj)/float64(t.nj))
		}
	}
	for i := 0; i < t.nj; i++ {
		for j := 0; j < t.nl; j++ {
			c.Set2(i, j, float64((i*(j+3)+1)%t.nl)/float64(t.nl))
		}
	}
	for i := 0; i < t.ni; i++ {
		for j := 0; j < t.nl; j++ {
			d.Set2(i, j, float64(i*(j+2)%t.nk)/float64(t.nk))
		}
	}

	arrays := NewArraySet()
	arrays.Add(d, tmp, a, b, c)
	return arrays, nil
}

func (t *TwoMM) Run(arrays *ArraySet) error {
	tmp := arrays.MustGet("tmp")
	a := arrays.MustGet("A")
	b := arrays.MustGet("B")
	c := arrays.MustGet("C")
	d := arrays.MustGet("D")
	alpha, beta := 1.5, 1.2

	for i := 0; i < t.ni; i++ {
		for j := 0; j < t.nj; j++ {
			tmp.Set2(i, j, 0.0)
			for k := 0; k < t.nk; k++ {
				tmp.Set2(i, j, tmp.At2(i, j)+alpha*a.At2(i, k)*b.At2(k, j))
			}
		}
	}
	for i := 0; i < t.ni; i++ {
		for j := 0; j < t.nl; j++ {
			d.Set2(i, j, d.At2(i, j)*beta)
			for k := 0; k < t.nj; k++ {
				d.Set2(i, j, d.At2(i, j)+tmp.At2(i, k)*c.At2(k, j))
			}
		}
	}
	return nil
}
