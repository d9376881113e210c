package main

import (
	"errors"
	"fmt"
)

// Execute runs one kernel under the configured instrumentation and returns
// its live-out arrays together with exactly one Measurement. The step order
// is fixed: scheduling policy, kernel init (with padding), cache flush,
// arm+start, kernel run, stop. Only the kernel run sits inside the measured
// region.
func Execute(kernel Kernel, size DatasetSize, opts Options) (*ArraySet, Measurement, error) {
	if opts.FifoScheduler {
		if err := useFifoScheduler(); err != nil {
			if !errors.Is(err, ErrPrivilege) {
				return nil, Measurement{}, err
			}
			// Non-fatal: the run proceeds under the default scheduler.
			Logger.Warnf("%v", err)
		} else {
			Logger.Infof("running under FIFO scheduler")
			defer func() {
				if err := useStandardScheduler(); err != nil {
					Logger.Warnf("%v", err)
				}
			}()
		}
	}

	sizes, err := ResolveSizes(kernel.Name(), size)
	if err != nil {
		return nil, Measurement{}, err
	}
	Logger.Infof("kernel %v sizes %v padding %v", kernel.Name(), sizes, opts.PaddingFactor)

	arrays, err := initKernel(kernel, sizes, opts.PaddingFactor)
	if err != nil {
		return nil, Measurement{}, err
	}

	if opts.FlushCache {
		if err := flushCache(opts.CacheSizeKB); err != nil {
			return nil, Measurement{}, err
		}
	}

	engine := NewEngine(opts)
	defer engine.Close()

	if err := engine.Arm(); err != nil {
		return nil, Measurement{}, err
	}
	if err := engine.Start(); err != nil {
		return nil, Measurement{}, err
	}
	if err := runKernel(kernel, arrays); err != nil {
		return nil, Measurement{}, err
	}
	measurement, err := engine.Stop()
	if err != nil {
		return nil, Measurement{}, err
	}
	return arrays, measurement, nil
}

func initKernel(kernel Kernel, sizes Dims, padding int) (arrays *ArraySet, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: kernel %v init panicked: %v", ErrKernelExecution, kernel.Name(), r)
		}
	}()
	arrays, err = kernel.Init(sizes, padding)
	if err != nil {
		return nil, fmt.Errorf("%w: kernel %v init failed: %v", ErrKernelExecution, kernel.Name(), err)
	}
	return arrays, nil
}

func runKernel(kernel Kernel, arrays *ArraySet) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: kernel %v run panicked: %v", ErrKernelExecution, kernel.Name(), r)
		}
	}()
	if err := kernel.Run(arrays); err != nil {
		return fmt.Errorf("%w: kernel %v run failed: %v", ErrKernelExecution, kernel.Name(), err)
	}
	return nil
}
