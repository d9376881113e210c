package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Options is the runtime configuration of one benchmark invocation, parsed
// from a comma-separated POLYBENCH_* option list. It is constructed once and
// never mutated afterwards.
type Options struct {
	Time               bool
	DumpArrays         bool
	PaddingFactor      int
	Papi               bool
	PapiVerbose        bool
	CacheSizeKB        int
	FlushCache         bool
	CycleAccurateTimer bool
	FifoScheduler      bool
}

// DefaultOptions mirrors the PolyBench/C defaults: cache flushing on with a
// 32 MiB+ scratch buffer, everything else off.
func DefaultOptions() Options {
	return Options{
		PaddingFactor: 0,
		CacheSizeKB:   32770,
		FlushCache:    true,
	}
}

type optionSetter func(opts *Options, value string, hasValue bool) error

func flagOption(name string, set func(opts *Options)) optionSetter {
	return func(opts *Options, value string, hasValue bool) error {
		if hasValue {
			return fmt.Errorf("%w: option %v does not take a value (got %q)", ErrConfiguration, name, value)
		}
		set(opts)
		return nil
	}
}

func intOption(name string, min int, set func(opts *Options, value int)) optionSetter {
	return func(opts *Options, value string, hasValue bool) error {
		if !hasValue {
			return fmt.Errorf("%w: option %v requires a value", ErrConfiguration, name)
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: option %v has unparsable value %q", ErrConfiguration, name, value)
		}
		if parsed < min {
			return fmt.Errorf("%w: option %v must be >= %v (got %v)", ErrConfiguration, name, min, parsed)
		}
		set(opts, parsed)
		return nil
	}
}

var optionTable = map[string]optionSetter{
	"POLYBENCH_TIME":           flagOption("POLYBENCH_TIME", func(o *Options) { o.Time = true }),
	"POLYBENCH_DUMP_ARRAYS":    flagOption("POLYBENCH_DUMP_ARRAYS", func(o *Options) { o.DumpArrays = true }),
	"POLYBENCH_PADDING_FACTOR": intOption("POLYBENCH_PADDING_FACTOR", 0, func(o *Options, v int) { o.PaddingFactor = v }),
	"POLYBENCH_PAPI":           flagOption("POLYBENCH_PAPI", func(o *Options) { o.Papi = true }),
	"POLYBENCH_PAPI_VERBOSE":   flagOption("POLYBENCH_PAPI_VERBOSE", func(o *Options) { o.PapiVerbose = true }),
	"POLYBENCH_CACHE_SIZE_KB":  intOption("POLYBENCH_CACHE_SIZE_KB", 1, func(o *Options, v int) { o.CacheSizeKB = v }),
	"POLYBENCH_NO_FLUSH_CACHE": flagOption("POLYBENCH_NO_FLUSH_CACHE", func(o *Options) { o.FlushCache = false }),
	"POLYBENCH_CYCLE_ACCURATE_TIMER": flagOption("POLYBENCH_CYCLE_ACCURATE_TIMER", func(o *Options) {
		o.CycleAccurateTimer = true
	}),
	"POLYBENCH_LINUX_FIFO_SCHEDULER": flagOption("POLYBENCH_LINUX_FIFO_SCHEDULER", func(o *Options) {
		o.FifoScheduler = true
	}),
}

// ParseOptions parses a comma-separated list of NAME or NAME=VALUE tokens
// into Options. Empty input yields the defaults.
func ParseOptions(list string) (Options, error) {
	opts := DefaultOptions()
	if strings.TrimSpace(list) == "" {
		return opts, nil
	}
	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		name, value, hasValue := strings.Cut(token, "=")
		setter, ok := optionTable[name]
		if !ok {
			return Options{}, fmt.Errorf("%w: unknown option %q", ErrConfiguration, name)
		}
		if err := setter(&opts, value, hasValue); err != nil {
			return Options{}, err
		}
	}
	// Timing and counter sampling instrument the same region and cannot
	// compose: exactly one Measurement is produced per run.
	if opts.Time && opts.Papi {
		return Options{}, fmt.Errorf("%w: POLYBENCH_TIME and POLYBENCH_PAPI are mutually exclusive", ErrConfiguration)
	}
	return opts, nil
}
