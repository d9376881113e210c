package main

import (
	"fmt"
	"os"
	"strings"
)

// CounterValue is one sampled hardware counter.
type CounterValue struct {
	Name  string
	Value int64
}

// CounterListFile is the optional file naming the counters to sample, in the
// PolyBench papi_counters.list format (C-style comments allowed, one quoted
// or bare counter name per line). When absent, defaultCounters is used.
const CounterListFile = "papi_counters.list"

var defaultCounters = []string{"PAPI_TOT_CYC", "PAPI_TOT_INS"}

// knownCounters lists the PAPI preset names the harness understands. The
// platform counter backend maps them to perf events; names outside this set
// fail before any event is opened.
var knownCounters = map[string]bool{
	"PAPI_TOT_CYC": true, // total cycles
	"PAPI_REF_CYC": true, // reference cycles
	"PAPI_TOT_INS": true, // instructions completed
	"PAPI_BR_INS":  true, // branch instructions
	"PAPI_BR_MSP":  true, // mispredicted branches
	"PAPI_L3_TCA":  true, // last-level cache accesses
	"PAPI_L3_TCM":  true, // last-level cache misses
}

// resolveCounterNames picks the counter set fixed at arm() time: the counter
// list file when present, the default set otherwise.
func resolveCounterNames() ([]string, error) {
	data, err := os.ReadFile(CounterListFile)
	if os.IsNotExist(err) {
		return defaultCounters, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %v: %v", ErrCounterUnavailable, CounterListFile, err)
	}
	names := parseCounterList(string(data))
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %v names no counters", ErrCounterUnavailable, CounterListFile)
	}
	return names, nil
}

// parseCounterList extracts counter names from the papi_counters.list
// format: bare or quoted names, optionally trailing commas, with // line
// comments and /* */ block comments.
func parseCounterList(contents string) []string {
	names := make([]string, 0)
	inComment := false
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)
		if inComment {
			if strings.HasSuffix(line, "*/") {
				inComment = false
			}
			continue
		}
		if strings.HasPrefix(line, "/*") {
			if !strings.HasSuffix(line, "*/") {
				inComment = true
			}
			continue
		}
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		names = append(names, strings.Trim(line, `",`))
	}
	return names
}

func validateCounterNames(names []string) error {
	for _, name := range names {
		if !knownCounters[name] {
			return fmt.Errorf("%w: unknown counter %q", ErrCounterUnavailable, name)
		}
	}
	return nil
}
