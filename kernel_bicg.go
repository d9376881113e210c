package main

// Bicg computes the two matrix-vector products of the BiCGStab subkernel:
// s := A_transposed * r and q := A * p.
type Bicg struct {
	m, n int
}

func NewBicg() *Bicg { return &Bicg{} }

func (b *Bicg) Name() string { return "linear-algebra/kernels/bicg" }

func (b *Bicg) Init(sizes Dims, padding int) (*ArraySet, error) {
	b.m, b.n = sizes["M"], sizes["N"]
	a := NewArray("A", Float, padding, b.n, b.m)
	s := NewArray("s", Float, padding, b.m)
	s.Output = true
	q := NewArray("q", Float, padding, b.n)
	q.Output = true
	p := NewArray("p", Float, padding, b.m)
	r := NewArray("r", Float, padding, b.n)

	for i := 0; i < b.m; i++ {
		p.Set(i, float64(i%b.m)/float64(b.m))
	}
	for i := 0; i < b.n; i++ {
		r.Set(i, float64(i%b.n)/float64(b.n))
		for j := 0; j < b.m; j++ {
			a.Set2(i, j, float64(i*(j+1)%b.n)/float64(b.n))
		}
	}

	arrays := NewArraySet()
	arrays.Add(s, q, a, p, r)
	return arrays, nil
}

func (b *Bicg) Run(arrays *ArraySet) error {
	a := arrays.MustGet("A")
	s := arrays.MustGet("s")
	q := arrays.MustGet("q")
	p := arrays.MustGet("p")
	r := arrays.MustGet("r")

	for i := 0; i < b.m; i++ {
		s.Set(i, 0.0)
	}
	for i := 0; i < b.n; i++ {
		q.Set(i, 0.0)
		for j := 0; j < b.m; j++ {
			s.Set(j, s.At(j)+r.At(i)*a.At2(i, j))
			q.Set(i, q.At(i)+a.At2(i, j)*p.At(j))
		}
	}
	return nil
}
