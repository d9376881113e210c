package main

import "fmt"

// flushCache evicts the kernel's working set from the CPU caches by writing
// through a scratch buffer of sizeKB KiB and folding it into a checksum so
// the traversal cannot be optimized away. Its cost is paid strictly before
// the timed region.
func flushCache(sizeKB int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: failed to allocate %v KB flush buffer: %v", ErrResource, sizeKB, r)
		}
	}()
	count := sizeKB * 1024 / 8
	flush := make([]float64, count)
	for i := range flush {
		flush[i] = 0.0
	}
	sum := 0.0
	for i := range flush {
		sum += flush[i]
	}
	if sum > 10.0 {
		return fmt.Errorf("%w: flush buffer checksum out of range: %v", ErrResource, sum)
	}
	return nil
}
