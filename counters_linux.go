//go:build linux

package main

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// perfEvents maps PAPI preset names to Linux perf hardware events.
var perfEvents = map[string]struct {
	typ    uint32
	config uint64
}{
	"PAPI_TOT_CYC": {unix.PERF_TYPE_HARDWARE, unix.PERF_COUNT_HW_CPU_CYCLES},
	"PAPI_REF_CYC": {unix.PERF_TYPE_HARDWARE, unix.PERF_COUNT_HW_REF_CPU_CYCLES},
	"PAPI_TOT_INS": {unix.PERF_TYPE_HARDWARE, unix.PERF_COUNT_HW_INSTRUCTIONS},
	"PAPI_BR_INS":  {unix.PERF_TYPE_HARDWARE, unix.PERF_COUNT_HW_BRANCH_INSTRUCTIONS},
	"PAPI_BR_MSP":  {unix.PERF_TYPE_HARDWARE, unix.PERF_COUNT_HW_BRANCH_MISSES},
	"PAPI_L3_TCA":  {unix.PERF_TYPE_HARDWARE, unix.PERF_COUNT_HW_CACHE_REFERENCES},
	"PAPI_L3_TCM":  {unix.PERF_TYPE_HARDWARE, unix.PERF_COUNT_HW_CACHE_MISSES},
}

// counterGroup is one perf event group sampling the current process on any
// CPU. All events are opened under one leader so they are scheduled onto the
// PMU together and read as one atomic snapshot.
type counterGroup struct {
	names  []string
	leader int
	fds    []int
}

// openCounterGroup opens every named counter. Any counter the host cannot
// provide fails the whole group: partial counter sets are never reported.
func openCounterGroup(names []string) (*counterGroup, error) {
	if err := validateCounterNames(names); err != nil {
		return nil, err
	}
	group := &counterGroup{names: names, leader: -1}
	for _, name := range names {
		event := perfEvents[name]
		attr := unix.PerfEventAttr{
			Type:        event.typ,
			Config:      event.config,
			Read_format: unix.PERF_FORMAT_GROUP,
		}
		attr.Size = uint32(unsafe.Sizeof(attr))
		if group.leader == -1 {
			attr.Bits = unix.PerfBitDisabled
		}
		fd, err := unix.PerfEventOpen(&attr, 0, -1, group.leader, unix.PERF_FLAG_FD_CLOEXEC)
		if err != nil {
			group.Close()
			return nil, fmt.Errorf("%w: counter %v not supported on this host: %v", ErrCounterUnavailable, name, err)
		}
		if group.leader == -1 {
			group.leader = fd
		}
		group.fds = append(group.fds, fd)
	}
	return group, nil
}

func (g *counterGroup) Start() error {
	if err := unix.IoctlSetInt(g.leader, unix.PERF_EVENT_IOC_RESET, unix.PERF_IOC_FLAG_GROUP); err != nil {
		return fmt.Errorf("%w: failed to reset counter group: %v", ErrCounterUnavailable, err)
	}
	if err := unix.IoctlSetInt(g.leader, unix.PERF_EVENT_IOC_ENABLE, unix.PERF_IOC_FLAG_GROUP); err != nil {
		return fmt.Errorf("%w: failed to enable counter group: %v", ErrCounterUnavailable, err)
	}
	return nil
}

// Stop disables the group and reads the final snapshot. The group read
// format is nr followed by one u64 per event, in open order.
func (g *counterGroup) Stop() ([]CounterValue, error) {
	if err := unix.IoctlSetInt(g.leader, unix.PERF_EVENT_IOC_DISABLE, unix.PERF_IOC_FLAG_GROUP); err != nil {
		return nil, fmt.Errorf("%w: failed to disable counter group: %v", ErrCounterUnavailable, err)
	}
	buf := make([]byte, 8*(1+len(g.fds)))
	n, err := unix.Read(g.leader, buf)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read counter group: %v", ErrCounterUnavailable, err)
	}
	if n < len(buf) {
		return nil, fmt.Errorf("%w: short counter group read: %v bytes", ErrCounterUnavailable, n)
	}
	nr := binary.LittleEndian.Uint64(buf[0:8])
	if int(nr) != len(g.fds) {
		return nil, fmt.Errorf("%w: counter group read returned %v of %v events", ErrCounterUnavailable, nr, len(g.fds))
	}
	values := make([]CounterValue, len(g.fds))
	for i := range g.fds {
		values[i] = CounterValue{
			Name:  g.names[i],
			Value: int64(binary.LittleEndian.Uint64(buf[8*(i+1) : 8*(i+2)])),
		}
	}
	return values, nil
}

func (g *counterGroup) Close() {
	for _, fd := range g.fds {
		unix.Close(fd)
	}
	g.fds = nil
	g.leader = -1
}
