package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayPadding(t *testing.T) {
	array := NewArray("A", Float, 2, 3, 4)
	require.Equal(t, []int{3, 4}, array.Dims)
	require.Equal(t, []int{5, 6}, array.phys)
	require.Equal(t, 12, array.Len())

	unpadded := NewArray("B", Float, 0, 3, 4)
	require.Equal(t, []int{3, 4}, unpadded.phys)

	// Logical accessors must address the same elements regardless of the
	// padded physical layout.
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			array.Set2(i, j, float64(i*4+j))
		}
	}
	for i := 0; i < array.Len(); i++ {
		require.Equal(t, float64(i), logicalAt(array, i))
	}
}

func TestArrayRank3(t *testing.T) {
	array := NewArray("A", Float, 1, 2, 3, 4)
	require.Equal(t, 24, array.Len())
	value := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				array.Set3(i, j, k, value)
				value++
			}
		}
	}
	for i := 0; i < array.Len(); i++ {
		require.Equal(t, float64(i), logicalAt(array, i))
	}
}

func TestArraySetOutputs(t *testing.T) {
	arrays := NewArraySet()
	y := NewArray("y", Float, 0, 4)
	y.Output = true
	x := NewArray("x", Float, 0, 4)
	s := NewArray("s", Float, 0, 4)
	s.Output = true
	arrays.Add(y, x, s)

	outputs := arrays.Outputs()
	require.Len(t, outputs, 2)
	require.Equal(t, "y", outputs[0].Name)
	require.Equal(t, "s", outputs[1].Name)
	require.Nil(t, arrays.Get("missing"))
	require.Panics(t, func() { arrays.MustGet("missing") })
}
