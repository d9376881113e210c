package main

// Dims maps a kernel's size parameter names (NI, NJ, TSTEPS, ...) to the
// values of one problem-size variant.
type Dims map[string]int

// Kernel is the capability set every benchmark implementation exposes: array
// initialization for a resolved problem size and an in-place run over those
// arrays. Implementations live in kernel_*.go, one file per kernel.
type Kernel interface {
	Name() string
	Init(sizes Dims, padding int) (*ArraySet, error)
	Run(arrays *ArraySet) error
}

// AllKernels returns fresh instances of every registered kernel.
func AllKernels() []Kernel {
	return []Kernel{
		NewCorrelation(),
		NewCovariance(),
		NewGemm(),
		NewGesummv(),
		NewSymm(),
		NewSyrk(),
		NewTrmm(),
		NewTwoMM(),
		NewAtax(),
		NewBicg(),
		NewDoitgen(),
		NewMvt(),
		NewCholesky(),
		NewDurbin(),
		NewFloydWarshall(),
		NewNussinov(),
		NewJacobi1D(),
		NewJacobi2D(),
		NewSeidel2D(),
	}
}

// KernelByName resolves a kernel by its category path (accepting the bare
// kernel name as a shorthand when it is unambiguous).
func KernelByName(name string) Kernel {
	for _, kernel := range AllKernels() {
		if kernel.Name() == name {
			return kernel
		}
	}
	var match Kernel
	for _, kernel := range AllKernels() {
		if baseName(kernel.Name()) == name {
			if match != nil {
				return nil
			}
			match = kernel
		}
	}
	return match
}

func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
