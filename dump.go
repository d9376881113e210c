package main

import (
	"bufio"
	"fmt"
	"io"
)

// Dump framing, kept byte-compatible with the PolyBench/C diagnostic output
// so dumps from either implementation verify against each other.
const (
	dumpBegin      = "==BEGIN DUMP_ARRAYS=="
	dumpEnd        = "==END   DUMP_ARRAYS=="
	dumpValuesLine = 20
)

func formatValue(kind Kind, value float64) string {
	if kind == Int {
		return fmt.Sprintf("%d", int64(value))
	}
	return fmt.Sprintf("%.6f", value)
}

// DumpArrays serializes the live-out arrays of a set: a begin/end header per
// array, row-major values, 20 per line. The output is exactly the grammar
// ParseReferenceDump accepts, so a dump feeds back as a reference.
func DumpArrays(w io.Writer, arrays *ArraySet) error {
	buf := bufio.NewWriter(w)
	fmt.Fprintf(buf, "%v\n", dumpBegin)
	for _, array := range arrays.Outputs() {
		if err := dumpArray(buf, array); err != nil {
			return err
		}
	}
	fmt.Fprintf(buf, "%v\n", dumpEnd)
	return buf.Flush()
}

func dumpArray(w io.Writer, array *Array) error {
	fmt.Fprintf(w, "begin dump: %v", array.Name)
	for i := 0; i < array.Len(); i++ {
		if i%dumpValuesLine == 0 {
			fmt.Fprint(w, "\n")
		}
		fmt.Fprintf(w, "%v ", formatValue(array.Kind, logicalAt(array, i)))
	}
	_, err := fmt.Fprintf(w, "\nend   dump: %v\n", array.Name)
	return err
}

// logicalAt reads the i-th element of the logical (unpadded) region in
// row-major order, mapping through the padded physical layout.
func logicalAt(array *Array, i int) float64 {
	switch len(array.Dims) {
	case 1:
		return array.At(i)
	case 2:
		cols := array.Dims[1]
		return array.At2(i/cols, i%cols)
	case 3:
		planes, cols := array.Dims[1]*array.Dims[2], array.Dims[2]
		return array.At3(i/planes, (i%planes)/cols, i%cols)
	}
	panic(fmt.Sprintf("array %q has unsupported rank %d", array.Name, len(array.Dims)))
}
