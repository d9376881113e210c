//go:build !linux

package main

import "fmt"

// counterGroup is a stub on platforms without perf events: requesting
// hardware counters fails the run instead of silently reporting nothing.
type counterGroup struct{}

func openCounterGroup(names []string) (*counterGroup, error) {
	if err := validateCounterNames(names); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: hardware counters require Linux perf events", ErrCounterUnavailable)
}

func (g *counterGroup) Start() error { return ErrCounterUnavailable }

func (g *counterGroup) Stop() ([]CounterValue, error) { return nil, ErrCounterUnavailable }

func (g *counterGroup) Close() {}
