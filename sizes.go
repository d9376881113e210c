package main

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed sizes.yaml
var sizesYaml []byte

// DatasetSize names a problem-size variant of a kernel.
type DatasetSize string

const (
	Mini       DatasetSize = "MINI"
	Small      DatasetSize = "SMALL"
	Medium     DatasetSize = "MEDIUM"
	Large      DatasetSize = "LARGE"
	ExtraLarge DatasetSize = "EXTRALARGE"
)

// ParseDatasetSize validates a user-supplied dataset size name.
func ParseDatasetSize(name string) (DatasetSize, error) {
	switch DatasetSize(name) {
	case Mini, Small, Medium, Large, ExtraLarge:
		return DatasetSize(name), nil
	}
	return "", fmt.Errorf("%w: unknown dataset size %q", ErrConfiguration, name)
}

type kernelSpec struct {
	Datatype   string   `yaml:"datatype"`
	Params     []string `yaml:"params"`
	Mini       []int    `yaml:"MINI"`
	Small      []int    `yaml:"SMALL"`
	Medium     []int    `yaml:"MEDIUM"`
	Large      []int    `yaml:"LARGE"`
	ExtraLarge []int    `yaml:"EXTRALARGE"`
}

func (s *kernelSpec) values(size DatasetSize) []int {
	switch size {
	case Mini:
		return s.Mini
	case Small:
		return s.Small
	case Medium:
		return s.Medium
	case Large:
		return s.Large
	case ExtraLarge:
		return s.ExtraLarge
	}
	return nil
}

var kernelSpecs = func() map[string]kernelSpec {
	specs := make(map[string]kernelSpec)
	if err := yaml.Unmarshal(sizesYaml, &specs); err != nil {
		panic(fmt.Errorf("failed to parse embedded size table: %w", err))
	}
	return specs
}()

// ResolveSizes looks up the dimension set of one kernel variant.
func ResolveSizes(kernel string, size DatasetSize) (Dims, error) {
	spec, ok := kernelSpecs[kernel]
	if !ok {
		return nil, fmt.Errorf("%w: kernel %q has no size table entry", ErrConfiguration, kernel)
	}
	values := spec.values(size)
	if len(values) != len(spec.Params) {
		return nil, fmt.Errorf("%w: kernel %q has no %v variant", ErrConfiguration, kernel, size)
	}
	dims := make(Dims, len(spec.Params))
	for i, param := range spec.Params {
		dims[param] = values[i]
	}
	return dims, nil
}
