package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultVerifyTolerance is the default absolute/relative tolerance used by
// Verify. It tolerates floating-point non-associativity across interpreters
// and optimization levels while catching 1e-4 scale divergence.
const DefaultVerifyTolerance = 1e-6

// maxReportedDiffs bounds the number of differing elements enumerated in a
// Mismatch, enough to diagnose without dumping entire arrays.
const maxReportedDiffs = 10

// ReferenceDump is a parsed reference serialization of an ArraySet.
type ReferenceDump struct {
	Names  []string
	Values map[string][]float64
}

// ParseReferenceDump reads the dump format produced by DumpArrays.
func ParseReferenceDump(r io.Reader) (*ReferenceDump, error) {
	dump := &ReferenceDump{Values: make(map[string][]float64)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	started, finished := false, false
	current := ""
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \r")
		switch {
		case !started:
			if strings.TrimSpace(line) == "" {
				continue
			}
			if line != dumpBegin {
				return nil, fmt.Errorf("reference dump must start with %q, got %q", dumpBegin, line)
			}
			started = true
		case line == dumpEnd:
			if current != "" {
				return nil, fmt.Errorf("reference dump ended inside array %q", current)
			}
			finished = true
		case finished:
			if strings.TrimSpace(line) != "" {
				return nil, fmt.Errorf("trailing content after %q: %q", dumpEnd, line)
			}
		case current == "":
			name, ok := strings.CutPrefix(line, "begin dump: ")
			if !ok {
				return nil, fmt.Errorf("expected array header, got %q", line)
			}
			if _, dup := dump.Values[name]; dup {
				return nil, fmt.Errorf("duplicate array %q in reference dump", name)
			}
			current = name
			dump.Names = append(dump.Names, name)
			dump.Values[name] = nil
		default:
			if name, ok := strings.CutPrefix(line, "end   dump: "); ok {
				if name != current {
					return nil, fmt.Errorf("array %q closed by end marker for %q", current, name)
				}
				current = ""
				continue
			}
			for _, field := range strings.Fields(line) {
				value, err := strconv.ParseFloat(field, 64)
				if err != nil {
					return nil, fmt.Errorf("bad value %q in array %q: %w", field, current, err)
				}
				dump.Values[current] = append(dump.Values[current], value)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !finished {
		return nil, fmt.Errorf("reference dump missing %q marker", dumpEnd)
	}
	return dump, nil
}

// Difference is one element-level divergence between reference and produced.
type Difference struct {
	Array    string
	Index    int
	Expected float64
	Actual   float64
}

// VerificationResult is either a Match or a Mismatch carrying structural
// problems and the first differing elements.
type VerificationResult struct {
	Match      bool
	Structural []string
	Diffs      []Difference
	TotalDiffs int
}

func (r VerificationResult) String() string {
	if r.Match {
		return "OK"
	}
	var sb strings.Builder
	sb.WriteString("FAIL")
	for _, problem := range r.Structural {
		fmt.Fprintf(&sb, "\n  %v", problem)
	}
	for _, diff := range r.Diffs {
		fmt.Fprintf(&sb, "\n  %v[%v]: expected %v, actual %v", diff.Array, diff.Index, diff.Expected, diff.Actual)
	}
	if r.TotalDiffs > len(r.Diffs) {
		fmt.Fprintf(&sb, "\n  ... and %v more differing elements", r.TotalDiffs-len(r.Diffs))
	}
	return sb.String()
}

// Verify compares the produced live-out arrays against a reference dump.
// Structural differences (arrays missing on either side, element count
// disagreement) are reported before any numeric comparison. Numeric
// comparison quantizes produced values through the dump formatter first, so
// verifying an ArraySet against its own dump is exact by construction.
func Verify(produced *ArraySet, reference *ReferenceDump, tolerance float64) VerificationResult {
	result := VerificationResult{}

	outputs := produced.Outputs()
	byName := make(map[string]*Array, len(outputs))
	for _, array := range outputs {
		byName[array.Name] = array
		if _, ok := reference.Values[array.Name]; !ok {
			result.Structural = append(result.Structural, fmt.Sprintf("array %q produced but missing from reference", array.Name))
		}
	}
	for _, name := range reference.Names {
		if _, ok := byName[name]; !ok {
			result.Structural = append(result.Structural, fmt.Sprintf("array %q present in reference but not produced", name))
		}
	}
	if len(result.Structural) > 0 {
		return result
	}

	for _, name := range reference.Names {
		array := byName[name]
		expected := reference.Values[name]
		if len(expected) != array.Len() {
			result.Structural = append(result.Structural,
				fmt.Sprintf("array %q has %v reference elements, produced %v", name, len(expected), array.Len()))
			continue
		}
		for i := range expected {
			actual := quantize(array.Kind, logicalAt(array, i))
			if !withinTolerance(array.Kind, expected[i], actual, tolerance) {
				result.TotalDiffs++
				if len(result.Diffs) < maxReportedDiffs {
					result.Diffs = append(result.Diffs, Difference{
						Array:    name,
						Index:    i,
						Expected: expected[i],
						Actual:   actual,
					})
				}
			}
		}
	}
	result.Match = len(result.Structural) == 0 && result.TotalDiffs == 0
	return result
}

// quantize rounds a produced value through its dump representation, matching
// what the reference file itself went through when it was written.
func quantize(kind Kind, value float64) float64 {
	parsed, err := strconv.ParseFloat(formatValue(kind, value), 64)
	if err != nil {
		return value
	}
	return parsed
}

func withinTolerance(kind Kind, expected, actual, tolerance float64) bool {
	if kind == Int {
		return expected == actual
	}
	diff := expected - actual
	if diff < 0 {
		diff = -diff
	}
	bound := tolerance
	if scale := max(abs(expected), abs(actual)) * tolerance; scale > bound {
		bound = scale
	}
	return diff <= bound
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
