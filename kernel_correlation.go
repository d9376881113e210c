package main

import "math"

// Correlation computes the correlation matrix of an NxM data set.
type Correlation struct {
	m, n int
}

func NewCorrelation() *Correlation { return &Correlation{} }

func (c *Correlation) Name() string { return "datamining/correlation" }

func (c *Correlation) Init(sizes Dims, padding int) (*ArraySet, error) {
	c.m, c.n = sizes["M"], sizes["N"]
	data := NewArray("data", Float, padding, c.n, c.m)
	corr := NewArray("corr", Float, padding, c.m, c.m)
	corr.Output = true
	mean := NewArray("mean", Float, padding, c.m)
	stddev := NewArray("stddev", Float, padding, c.m)

	for i := 0; i < c.n; i++ {
		for j := 0; j < c.m; j++ {
			data.Set2(i, j, float64(i*j)/float64(c.m)+float64(i))
		}
	}

	arrays := NewArraySet()
	arrays.Add(corr, data, mean, stddev)
	return arrays, nil
}

func (c *Correlation) Run(arrays *ArraySet) error {
	data := arrays.MustGet("data")
	corr := arrays.MustGet("corr")
	mean := arrays.MustGet("mean")
	stddev := arrays.MustGet("stddev")
	floatN := float64(c.n)
	eps := 0.1

	for j := 0; j < c.m; j++ {
		mean.Set(j, 0.0)
		for i := 0; i < c.n; i++ {
			mean.Set(j, mean.At(j)+data.At2(i, j))
		}
		mean.Set(j, mean.At(j)/floatN)
	}

	for j := 0; j < c.m; j++ {
		stddev.Set(j, 0.0)
		for i := 0; i < c.n; i++ {
			d := data.At2(i, j) - mean.At(j)
			stddev.Set(j, stddev.At(j)+d*d)
		}
		stddev.Set(j, math.Sqrt(stddev.At(j)/floatN))
		// Near-zero standard deviations would divide by zero below.
		if stddev.At(j) <= eps {
			stddev.Set(j, 1.0)
		}
	}

	for i := 0; i < c.n; i++ {
		for j := 0; j < c.m; j++ {
			data.Set2(i, j, (data.At2(i, j)-mean.At(j))/(math.Sqrt(floatN)*stddev.At(j)))
		}
	}

	for i := 0; i < c.m-1; i++ {
		corr.Set2(i, i, 1.0)
		for j := i + 1; j < c.m; j++ {
			corr.Set2(i, j, 0.0)
			for k := 0; k < c.n; k++ {
				corr.Set2(i, j, corr.At2(i, j)+data.At2(k, i)*data.At2(k, j))
			}
			corr.Set2(j, i, corr.At2(i, j))
		}
	}
	corr.Set2(c.m-1, c.m-1, 1.0)
	return nil
}
