package main

import (
	"fmt"
	"time"
)

type engineState int

const (
	stateIdle engineState = iota
	stateArmed
	stateRunning
	stateStopped
)

func (s engineState) String() string {
	switch s {
	case stateIdle:
		return "Idle"
	case stateArmed:
		return "Armed"
	case stateRunning:
		return "Running"
	case stateStopped:
		return "Stopped"
	}
	return fmt.Sprintf("engineState(%d)", int(s))
}

// MeasurementMode selects what a Measurement carries.
type MeasurementMode int

const (
	// ModeNone runs the kernel without instrumentation.
	ModeNone MeasurementMode = iota
	// ModeTime measures wall-clock seconds.
	ModeTime
	// ModeCycles measures elapsed time stamp counter cycles.
	ModeCycles
	// ModePapi samples a hardware performance-counter group.
	ModePapi
)

// Measurement is the single result of one timed or counted kernel run.
// Degraded is set when cycle-accurate timing was requested but the platform
// has no cycle counter and wall-clock timing was substituted.
type Measurement struct {
	Mode     MeasurementMode
	Seconds  float64
	Cycles   uint64
	Counters []CounterValue
	Degraded bool
}

// Engine drives one measurement through the Idle -> Armed -> Running ->
// Stopped lifecycle. Arm acquires the counter/timer source, Start and Stop
// bracket exactly the kernel run, Close releases process-wide counter
// handles and is safe to defer in any state.
type Engine struct {
	opts  Options
	state engineState

	mode     MeasurementMode
	degraded bool

	group     *counterGroup
	startTime time.Time
	startTSC  uint64
}

func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts, state: stateIdle}
}

// Arm initializes the measurement source without starting it. The counter
// set is fixed here: counters the host cannot provide fail the whole run.
func (e *Engine) Arm() error {
	if e.state != stateIdle {
		return fmt.Errorf("%w: arm() called in state %v", ErrSequence, e.state)
	}
	switch {
	case e.opts.Papi:
		names, err := resolveCounterNames()
		if err != nil {
			return err
		}
		group, err := openCounterGroup(names)
		if err != nil {
			return err
		}
		e.group = group
		e.mode = ModePapi
		Logger.Infof("armed counter group %v", names)
	case e.opts.Time && e.opts.CycleAccurateTimer:
		if tscSupported() {
			e.mode = ModeCycles
		} else {
			Logger.Warnf("cycle-accurate timer not supported on this platform, falling back to wall clock")
			e.mode = ModeTime
			e.degraded = true
		}
	case e.opts.Time:
		e.mode = ModeTime
	default:
		e.mode = ModeNone
	}
	e.state = stateArmed
	return nil
}

// Start records the measurement baseline. From here to Stop the caller must
// execute nothing but the kernel run.
func (e *Engine) Start() error {
	if e.state != stateArmed {
		return fmt.Errorf("%w: start() called in state %v", ErrSequence, e.state)
	}
	switch e.mode {
	case ModePapi:
		if err := e.group.Start(); err != nil {
			return err
		}
	case ModeCycles:
		e.startTSC = readTSC()
	case ModeTime:
		e.startTime = time.Now()
	}
	e.state = stateRunning
	return nil
}

// Stop computes the delta from Start and produces the run's Measurement.
func (e *Engine) Stop() (Measurement, error) {
	if e.state != stateRunning {
		return Measurement{}, fmt.Errorf("%w: stop() called in state %v", ErrSequence, e.state)
	}
	measurement := Measurement{Mode: e.mode, Degraded: e.degraded}
	switch e.mode {
	case ModePapi:
		counters, err := e.group.Stop()
		if err != nil {
			return Measurement{}, err
		}
		measurement.Counters = counters
	case ModeCycles:
		measurement.Cycles = readTSC() - e.startTSC
	case ModeTime:
		measurement.Seconds = time.Since(e.startTime).Seconds()
	}
	e.state = stateStopped
	return measurement, nil
}

// Close releases counter handles. It is idempotent and valid in any state,
// so counter fds are never leaked across invocations even when the kernel
// run fails between Start and Stop.
func (e *Engine) Close() {
	if e.group != nil {
		e.group.Close()
		e.group = nil
	}
}
