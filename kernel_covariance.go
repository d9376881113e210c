package main

// Covariance computes the covariance matrix of an NxM data set.
type Covariance struct {
	m, n int
}

func NewCovariance() *Covariance { return &Covariance{} }

func (c *Covariance) Name() string { return "datamining/covariance" }

func (c *Covariance) Init(sizes Dims, padding int) (*ArraySet, error) {
	c.m, c.n = sizes["M"], sizes["N"]
	data := NewArray("data", Float, padding, c.n, c.m)
	cov := NewArray("cov", Float, padding, c.m, c.m)
	cov.Output = true
	mean := NewArray("mean", Float, padding, c.m)

	for i := 0; i < c.n; i++ {
		for j := 0; j < c.m; j++ {
			data.Set2(i, j, float64(i*j)/float64(c.m))
		}
	}

	arrays := NewArraySet()
	arrays.Add(cov, data, mean)
	return arrays, nil
}

func (c *Covariance) Run(arrays *ArraySet) error {
	data := arrays.MustGet("data")
	cov := arrays.MustGet("cov")
	mean := arrays.MustGet("mean")
	floatN := float64(c.n)

	for j := 0; j < c.m; j++ {
		mean.Set(j, 0.0)
		for i := 0; i < c.n; i++ {
			mean.Set(j, mean.At(j)+data.At2(i, j))
		}
		mean.Set(j, mean.At(j)/floatN)
	}

	for i := 0; i < c.n; i++ {
		for j := 0; j < c.m; j++ {
			data.Set2(i, j, data.At2(i, j)-mean.At(j))
		}
	}

	for i := 0; i < c.m; i++ {
		for j := i; j < c.m; j++ {
			cov.Set2(i, j, 0.0)
			for k := 0; k < c.n; k++ {
				cov.Set2(i, j, cov.At2(i, j)+data.At2(k, i)*data.At2(k, j))
			}
			cov.Set2(i, j, cov.At2(i, j)/(floatN-1.0))
			cov.Set2(j, i, cov.At2(i, j))
		}
	}
	return nil
}
