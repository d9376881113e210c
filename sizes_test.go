package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveSizes(t *testing.T) {
	dims, err := ResolveSizes("linear-algebra/blas/gemm", Mini)
	require.Nil(t, err)
	require.Equal(t, Dims{"NI": 20, "NJ": 25, "NK": 30}, dims)

	dims, err = ResolveSizes("stencils/jacobi-1d", ExtraLarge)
	require.Nil(t, err)
	require.Equal(t, Dims{"TSTEPS": 1000, "N": 4000}, dims)
}

func TestResolveSizesUnknownKernel(t *testing.T) {
	_, err := ResolveSizes("linear-algebra/blas/made-up", Mini)
	require.True(t, errors.Is(err, ErrConfiguration))
}

func TestParseDatasetSize(t *testing.T) {
	size, err := ParseDatasetSize("MEDIUM")
	require.Nil(t, err)
	require.Equal(t, Medium, size)

	_, err = ParseDatasetSize("HUGE")
	require.True(t, errors.Is(err, ErrConfiguration))
}

func TestEveryKernelHasAllSizeVariants(t *testing.T) {
	for _, kernel := range AllKernels() {
		for _, size := range []DatasetSize{Mini, Small, Medium, Large, ExtraLarge} {
			dims, err := ResolveSizes(kernel.Name(), size)
			require.Nil(t, err, "kernel %v size %v", kernel.Name(), size)
			require.NotEmpty(t, dims)
		}
	}
}
