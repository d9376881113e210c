package main

// Mvt computes the two transposed matrix-vector products
// x1 := x1 + A*y1 and x2 := x2 + A_transposed*y2.
type Mvt struct {
	n int
}

func NewMvt() *Mvt { return &Mvt{} }

func (m *Mvt) Name() string { return "linear-algebra/kernels/mvt" }

func (m *Mvt) Init(sizes Dims, padding int) (*ArraySet, error) {
	m.n = sizes["N"]
	a := NewArray("A", Float, padding, m.n, m.n)
	x1 := NewArray("x1", Float, padding, m.n)
	x1.Output = true
	x2 := NewArray("x2", Float, padding, m.n)
	x2.Output = true
	y1 := NewArray("y_1", Float, padding, m.n)
	y2 := NewArray("y_2", Float, padding, m.n)

	floatN := float64(m.n)
	for i := 0; i < m.n; i++ {
		x1.Set(i, float64(i%m.n)/floatN)
		x2.Set(i, float64((i+1)%m.n)/floatN)
		y1.Set(i, float64((i+3)%m.n)/floatN)
		y2.Set(i, float64((i+4)%m.n)/floatN)
		for j := 0; j < m.n; j++ {
			a.Set2(i, j, float64(i*j%m.n)/floatN)
		}
	}

	arrays := NewArraySet()
	arrays.Add(x1, x2, a, y1, y2)
	return arrays, nil
}

func (m *Mvt) Run(arrays *ArraySet) error {
	a := arrays.MustGet("A")
	x1 := arrays.MustGet("x1")
	x2 := arrays.MustGet("x2")
	y1 := arrays.MustGet("y_1")
	y2 := arrays.MustGet("y_2")

	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			x1.Set(i, x1.At(i)+a.At2(i, j)*y1.At(j))
		}
	}
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			x2.Set(i, x2.At(i)+a.At2(j, i)*y2.At(j))
		}
	}
	return nil
}
