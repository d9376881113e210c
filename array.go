package main

import "fmt"

// Kind selects how array elements are formatted when dumped: floating point
// kernels print fixed-precision decimals, integer kernels (nussinov,
// floyd-warshall) print plain integers and verify exactly.
type Kind int

const (
	Float Kind = iota
	Int
)

// Array is a named, flattened row-major numeric array. Dims are the logical
// kernel dimensions; the backing slice is laid out over dimensions padded by
// the configured padding factor, so padding changes memory layout and cache
// behavior without changing the logical problem size.
type Array struct {
	Name   string
	Kind   Kind
	Dims   []int
	Output bool

	phys []int
	data []float64
}

// NewArray allocates a zero-initialized array. Every dimension is padded by
// padding elements; element accessors keep addressing the logical region.
func NewArray(name string, kind Kind, padding int, dims ...int) *Array {
	phys := make([]int, len(dims))
	total := 1
	for i, dim := range dims {
		phys[i] = dim + padding
		total *= phys[i]
	}
	return &Array{
		Name: name,
		Kind: kind,
		Dims: append([]int(nil), dims...),
		phys: phys,
		data: make([]float64, total),
	}
}

func (a *Array) At(i int) float64            { return a.data[i] }
func (a *Array) Set(i int, v float64)        { a.data[i] = v }
func (a *Array) At2(i, j int) float64        { return a.data[i*a.phys[1]+j] }
func (a *Array) Set2(i, j int, v float64)    { a.data[i*a.phys[1]+j] = v }
func (a *Array) At3(i, j, k int) float64     { return a.data[(i*a.phys[1]+j)*a.phys[2]+k] }
func (a *Array) Set3(i, j, k int, v float64) { a.data[(i*a.phys[1]+j)*a.phys[2]+k] = v }

// Len is the logical element count, ignoring padding.
func (a *Array) Len() int {
	total := 1
	for _, dim := range a.Dims {
		total *= dim
	}
	return total
}

// ArraySet is the ordered collection of arrays owned by one benchmark
// invocation. Kernel init populates it, kernel run mutates it in place.
type ArraySet struct {
	arrays []*Array
	byName map[string]*Array
}

func NewArraySet() *ArraySet {
	return &ArraySet{byName: make(map[string]*Array)}
}

func (s *ArraySet) Add(arrays ...*Array) {
	for _, array := range arrays {
		s.arrays = append(s.arrays, array)
		s.byName[array.Name] = array
	}
}

func (s *ArraySet) Get(name string) *Array {
	return s.byName[name]
}

func (s *ArraySet) MustGet(name string) *Array {
	array, ok := s.byName[name]
	if !ok {
		panic(fmt.Sprintf("array %q missing from array set", name))
	}
	return array
}

// Outputs returns the live-out arrays, in declaration order. These are the
// arrays dumped by the Array Dumper and checked by the Output Verifier.
func (s *ArraySet) Outputs() []*Array {
	outputs := make([]*Array, 0, len(s.arrays))
	for _, array := range s.arrays {
		if array.Output {
			outputs = append(outputs, array)
		}
	}
	return outputs
}
