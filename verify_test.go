package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func verifyFixture(values ...float64) *ArraySet {
	y := NewArray("y", Float, 0, len(values))
	y.Output = true
	for i, v := range values {
		y.Set(i, v)
	}
	arrays := NewArraySet()
	arrays.Add(y)
	return arrays
}

func referenceFor(t *testing.T, arrays *ArraySet) *ReferenceDump {
	t.Helper()
	var sb strings.Builder
	require.Nil(t, DumpArrays(&sb, arrays))
	reference, err := ParseReferenceDump(strings.NewReader(sb.String()))
	require.Nil(t, err)
	return reference
}

func TestVerifyMatch(t *testing.T) {
	arrays := verifyFixture(1.0, 2.0, 3.0)
	result := Verify(arrays, referenceFor(t, arrays), DefaultVerifyTolerance)
	require.True(t, result.Match)
	require.Equal(t, "OK", result.String())
}

func TestVerifyMismatch(t *testing.T) {
	reference := referenceFor(t, verifyFixture(1.0, 2.0, 3.0))
	result := Verify(verifyFixture(1.0, 2.0001, 3.0), reference, DefaultVerifyTolerance)
	require.False(t, result.Match)
	require.Equal(t, 1, result.TotalDiffs)
	require.Equal(t, "y", result.Diffs[0].Array)
	require.Equal(t, 1, result.Diffs[0].Index)
	require.Equal(t, 2.0, result.Diffs[0].Expected)
	require.Equal(t, 2.0001, result.Diffs[0].Actual)
	require.Contains(t, result.String(), "y[1]")
}

func TestVerifyTolerance(t *testing.T) {
	reference := referenceFor(t, verifyFixture(1.0, 2.0, 3.0))
	// A loose tolerance accepts the same divergence.
	result := Verify(verifyFixture(1.0, 2.0001, 3.0), reference, 1e-3)
	require.True(t, result.Match)
}

func TestVerifyStructuralMismatch(t *testing.T) {
	reference := referenceFor(t, verifyFixture(1.0, 2.0))

	// Extra produced array.
	arrays := verifyFixture(1.0, 2.0)
	extra := NewArray("z", Float, 0, 2)
	extra.Output = true
	arrays.Add(extra)
	result := Verify(arrays, reference, DefaultVerifyTolerance)
	require.False(t, result.Match)
	require.Len(t, result.Structural, 1)
	require.Empty(t, result.Diffs)

	// Element count disagreement is structural, not element-wise.
	result = Verify(verifyFixture(1.0, 2.0, 3.0), reference, DefaultVerifyTolerance)
	require.False(t, result.Match)
	require.Len(t, result.Structural, 1)
	require.Zero(t, result.TotalDiffs)
}

func TestVerifyIntExact(t *testing.T) {
	path := NewArray("path", Int, 0, 3)
	path.Output = true
	path.Set(0, 1)
	path.Set(1, 2)
	path.Set(2, 3)
	arrays := NewArraySet()
	arrays.Add(path)
	reference := referenceFor(t, arrays)

	path.Set(2, 4)
	result := Verify(arrays, reference, 100.0)
	require.False(t, result.Match)
	require.Equal(t, 1, result.TotalDiffs)
}

func TestParseReferenceDumpErrors(t *testing.T) {
	for name, contents := range map[string]string{
		"missing begin":    "begin dump: y\n1.0\nend   dump: y\n==END   DUMP_ARRAYS==\n",
		"missing end":      "==BEGIN DUMP_ARRAYS==\nbegin dump: y\n1.0\nend   dump: y\n",
		"unclosed array":   "==BEGIN DUMP_ARRAYS==\nbegin dump: y\n1.0\n==END   DUMP_ARRAYS==\n",
		"wrong end marker": "==BEGIN DUMP_ARRAYS==\nbegin dump: y\n1.0\nend   dump: z\n==END   DUMP_ARRAYS==\n",
		"bad value":        "==BEGIN DUMP_ARRAYS==\nbegin dump: y\noops\nend   dump: y\n==END   DUMP_ARRAYS==\n",
		"duplicate array":  "==BEGIN DUMP_ARRAYS==\nbegin dump: y\nend   dump: y\nbegin dump: y\nend   dump: y\n==END   DUMP_ARRAYS==\n",
		"trailing content": "==BEGIN DUMP_ARRAYS==\n==END   DUMP_ARRAYS==\nleftover\n",
	} {
		_, err := ParseReferenceDump(strings.NewReader(contents))
		require.NotNil(t, err, "case %q", name)
	}
}
