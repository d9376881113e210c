//go:build !amd64

package main

func readTSC() uint64 { return 0 }

func tscSupported() bool { return false }
