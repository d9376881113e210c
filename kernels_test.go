package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKernelByName(t *testing.T) {
	require.NotNil(t, KernelByName("linear-algebra/blas/gemm"))
	require.NotNil(t, KernelByName("gemm"))
	require.NotNil(t, KernelByName("floyd-warshall"))
	require.Nil(t, KernelByName("made-up"))
}

func TestKernelNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, kernel := range AllKernels() {
		require.False(t, seen[kernel.Name()], "duplicate kernel %v", kernel.Name())
		seen[kernel.Name()] = true
	}
}

// Every kernel at MINI: initialize, run, dump, and verify the dump against
// itself. Catches non-determinism, dump/verify disagreements and any output
// array the kernel forgot to register.
func TestKernelsMiniSelfVerify(t *testing.T) {
	for _, kernel := range AllKernels() {
		kernel := kernel
		t.Run(kernel.Name(), func(t *testing.T) {
			sizes, err := ResolveSizes(kernel.Name(), Mini)
			require.Nil(t, err)

			arrays, err := kernel.Init(sizes, 0)
			require.Nil(t, err)
			require.NotEmpty(t, arrays.Outputs(), "kernel has no live-out arrays")
			require.Nil(t, kernel.Run(arrays))

			var sb strings.Builder
			require.Nil(t, DumpArrays(&sb, arrays))
			reference, err := ParseReferenceDump(strings.NewReader(sb.String()))
			require.Nil(t, err)

			result := Verify(arrays, reference, DefaultVerifyTolerance)
			require.True(t, result.Match, "self-verification failed:\n%v", result)
		})
	}
}

// Padding changes memory layout but must never change results.
func TestKernelsPaddingInvariant(t *testing.T) {
	for _, name := range []string{"gemm", "doitgen", "jacobi-2d", "nussinov", "durbin"} {
		name := name
		t.Run(name, func(t *testing.T) {
			dumps := make([]string, 2)
			for i, padding := range []int{0, 3} {
				kernel := KernelByName(name)
				require.NotNil(t, kernel)
				sizes, err := ResolveSizes(kernel.Name(), Mini)
				require.Nil(t, err)
				arrays, err := kernel.Init(sizes, padding)
				require.Nil(t, err)
				require.Nil(t, kernel.Run(arrays))
				var sb strings.Builder
				require.Nil(t, DumpArrays(&sb, arrays))
				dumps[i] = sb.String()
			}
			require.Equal(t, dumps[0], dumps[1])
		})
	}
}

func TestKernelArrayShapes(t *testing.T) {
	kernel := NewGemm()
	sizes, err := ResolveSizes(kernel.Name(), Mini)
	require.Nil(t, err)
	arrays, err := kernel.Init(sizes, 0)
	require.Nil(t, err)
	require.Equal(t, []int{20, 25}, arrays.MustGet("C").Dims)
	require.Equal(t, []int{20, 30}, arrays.MustGet("A").Dims)
	require.Equal(t, []int{30, 25}, arrays.MustGet("B").Dims)
	require.True(t, arrays.MustGet("C").Output)
}

func TestIntKernelsStayIntegral(t *testing.T) {
	for _, name := range []string{"floyd-warshall", "nussinov"} {
		kernel := KernelByName(name)
		require.NotNil(t, kernel)
		sizes, err := ResolveSizes(kernel.Name(), Mini)
		require.Nil(t, err)
		arrays, err := kernel.Init(sizes, 0)
		require.Nil(t, err)
		require.Nil(t, kernel.Run(arrays))
		for _, array := range arrays.Outputs() {
			require.Equal(t, Int, array.Kind)
			for i := 0; i < array.Len(); i++ {
				value := logicalAt(array, i)
				require.Equal(t, float64(int64(value)), value, "%v[%v] not integral", array.Name, i)
			}
		}
	}
}
