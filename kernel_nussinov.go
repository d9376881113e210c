package main

// Nussinov fills the dynamic-programming table of the Nussinov RNA folding
// algorithm. Bases are encoded 0..3; i and j pair when their codes sum to 3.
type Nussinov struct {
	n int
}

func NewNussinov() *Nussinov { return &Nussinov{} }

func (u *Nussinov) Name() string { return "medley/nussinov" }

func (u *Nussinov) Init(sizes Dims, padding int) (*ArraySet, error) {
	u.n = sizes["N"]
	seq := NewArray("seq", Int, padding, u.n)
	table := NewArray("table", Int, padding, u.n, u.n)
	table.Output = true

	for i := 0; i < u.n; i++ {
		seq.Set(i, float64((i+1)%4))
	}

	arrays := NewArraySet()
	arrays.Add(table, seq)
	return arrays, nil
}

func (u *Nussinov) Run(arrays *ArraySet) error {
	seq := arrays.MustGet("seq")
	table := arrays.MustGet("table")

	for i := u.n - 1; i >= 0; i-- {
		for j := i + 1; j < u.n; j++ {
			if j-1 >= 0 && table.At2(i, j) < table.At2(i, j-1) {
				table.Set2(i, j, table.At2(i, j-1))
			}
			if i+1 < u.n && table.At2(i, j) < table.At2(i+1, j) {
				table.Set2(i, j, table.At2(i+1, j))
			}
			if j-1 >= 0 && i+1 < u.n {
				if i < j-1 {
					paired := 0.0
					if seq.At(i)+seq.At(j) == 3 {
						paired = 1.0
					}
					if table.At2(i, j) < table.At2(i+1, j-1)+paired {
						table.Set2(i, j, table.At2(i+1, j-1)+paired)
					}
				} else if table.At2(i, j) < table.At2(i+1, j-1) {
					table.Set2(i, j, table.At2(i+1, j-1))
				}
			}
			for k := i + 1; k < j; k++ {
				split := table.At2(i, k) + table.At2(k+1, j)
				if table.At2(i, j) < split {
					table.Set2(i, j, split)
				}
			}
		}
	}
	return nil
}
