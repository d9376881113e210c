package main

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func dumpFixture() *ArraySet {
	x := NewArray("x", Float, 1, 25)
	x.Output = true
	for i := 0; i < 25; i++ {
		x.Set(i, float64(i)*0.25)
	}
	tbl := NewArray("tbl", Int, 0, 2, 3)
	tbl.Output = true
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			tbl.Set2(i, j, float64(i*3+j+1))
		}
	}
	hidden := NewArray("hidden", Float, 0, 4)

	arrays := NewArraySet()
	arrays.Add(x, tbl, hidden)
	return arrays
}

func TestDumpArrays(t *testing.T) {
	buf := bytes.Buffer{}
	require.Nil(t, DumpArrays(&buf, dumpFixture()))

	g := goldie.New(t)
	g.Assert(t, "dump_fixture", buf.Bytes())
}

func TestDumpRoundTrip(t *testing.T) {
	buf := bytes.Buffer{}
	require.Nil(t, DumpArrays(&buf, dumpFixture()))

	reference, err := ParseReferenceDump(&buf)
	require.Nil(t, err)
	require.Equal(t, []string{"x", "tbl"}, reference.Names)
	require.Len(t, reference.Values["x"], 25)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, reference.Values["tbl"])
}

func TestFormatValue(t *testing.T) {
	require.Equal(t, "2.000100", formatValue(Float, 2.0001))
	require.Equal(t, "-0.500000", formatValue(Float, -0.5))
	require.Equal(t, "999", formatValue(Int, 999.0))
}
