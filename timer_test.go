package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineSequence(t *testing.T) {
	engine := NewEngine(DefaultOptions())
	defer engine.Close()

	err := engine.Start()
	require.True(t, errors.Is(err, ErrSequence))
	_, err = engine.Stop()
	require.True(t, errors.Is(err, ErrSequence))

	require.Nil(t, engine.Arm())
	require.True(t, errors.Is(engine.Arm(), ErrSequence))
	require.Nil(t, engine.Start())
	require.True(t, errors.Is(engine.Start(), ErrSequence))
	_, err = engine.Stop()
	require.Nil(t, err)
	_, err = engine.Stop()
	require.True(t, errors.Is(err, ErrSequence))
}

func TestEngineModeNone(t *testing.T) {
	engine := NewEngine(DefaultOptions())
	defer engine.Close()

	require.Nil(t, engine.Arm())
	require.Nil(t, engine.Start())
	measurement, err := engine.Stop()
	require.Nil(t, err)
	require.Equal(t, ModeNone, measurement.Mode)
	require.False(t, measurement.Degraded)
}

func TestEngineWallClock(t *testing.T) {
	opts := DefaultOptions()
	opts.Time = true
	engine := NewEngine(opts)
	defer engine.Close()

	require.Nil(t, engine.Arm())
	require.Nil(t, engine.Start())
	measurement, err := engine.Stop()
	require.Nil(t, err)
	require.Equal(t, ModeTime, measurement.Mode)
	require.GreaterOrEqual(t, measurement.Seconds, 0.0)
}

func TestEngineCycleAccurate(t *testing.T) {
	opts := DefaultOptions()
	opts.Time = true
	opts.CycleAccurateTimer = true
	engine := NewEngine(opts)
	defer engine.Close()

	require.Nil(t, engine.Arm())
	require.Nil(t, engine.Start())
	measurement, err := engine.Stop()
	require.Nil(t, err)
	if tscSupported() {
		require.Equal(t, ModeCycles, measurement.Mode)
		require.False(t, measurement.Degraded)
	} else {
		// Platforms without a cycle counter fall back to wall clock and
		// mark the measurement as degraded.
		require.Equal(t, ModeTime, measurement.Mode)
		require.True(t, measurement.Degraded)
	}
}

func TestEngineCloseIdempotent(t *testing.T) {
	engine := NewEngine(DefaultOptions())
	engine.Close()
	engine.Close()
}
