package main

// FloydWarshall computes all-pairs shortest paths over an integer weight
// matrix, in place.
type FloydWarshall struct {
	n int
}

func NewFloydWarshall() *FloydWarshall { return &FloydWarshall{} }

func (f *FloydWarshall) Name() string { return "medley/floyd-warshall" }

func (f *FloydWarshall) Init(sizes Dims, padding int) (*ArraySet, error) {
	f.n = sizes["N"]
	path := NewArray("path", Int, padding, f.n, f.n)
	path.Output = true

	for i := 0; i < f.n; i++ {
		for j := 0; j < f.n; j++ {
			path.Set2(i, j, float64(i*j%7+1))
			if (i+j)%13 == 0 || (i+j)%7 == 0 || (i+j)%11 == 0 {
				path.Set2(i, j, 999)
			}
		}
	}

	arrays := NewArraySet()
	arrays.Add(path)
	return arrays, nil
}

func (f *FloydWarshall) Run(arrays *ArraySet) error {
	path := arrays.MustGet("path")

	for k := 0; k < f.n; k++ {
		for i := 0; i < f.n; i++ {
			for j := 0; j < f.n; j++ {
				through := path.At2(i, k) + path.At2(k, j)
				if through < path.At2(i, j) {
					path.Set2(i, j, through)
				}
			}
		}
	}
	return nil
}
