//go:build amd64

package main

// readTSC returns the current value of the time stamp counter.
func readTSC() uint64

func tscSupported() bool { return true }
