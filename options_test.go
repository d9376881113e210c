package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts, err := ParseOptions("")
	require.Nil(t, err)
	require.Equal(t, Options{CacheSizeKB: 32770, FlushCache: true}, opts)
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions("POLYBENCH_TIME,POLYBENCH_DUMP_ARRAYS,POLYBENCH_PADDING_FACTOR=3,POLYBENCH_CACHE_SIZE_KB=1024")
	require.Nil(t, err)
	require.True(t, opts.Time)
	require.True(t, opts.DumpArrays)
	require.Equal(t, 3, opts.PaddingFactor)
	require.Equal(t, 1024, opts.CacheSizeKB)
	require.True(t, opts.FlushCache)
}

func TestParseOptionsFlags(t *testing.T) {
	opts, err := ParseOptions("POLYBENCH_PAPI,POLYBENCH_PAPI_VERBOSE,POLYBENCH_NO_FLUSH_CACHE,POLYBENCH_LINUX_FIFO_SCHEDULER")
	require.Nil(t, err)
	require.True(t, opts.Papi)
	require.True(t, opts.PapiVerbose)
	require.False(t, opts.FlushCache)
	require.True(t, opts.FifoScheduler)
}

func TestParseOptionsWhitespaceAndEmptyTokens(t *testing.T) {
	opts, err := ParseOptions(" POLYBENCH_TIME , ,POLYBENCH_CYCLE_ACCURATE_TIMER ")
	require.Nil(t, err)
	require.True(t, opts.Time)
	require.True(t, opts.CycleAccurateTimer)
}

func TestParseOptionsErrors(t *testing.T) {
	for _, list := range []string{
		"POLYBENCH_FROBNICATE",
		"POLYBENCH_TIME=1",
		"POLYBENCH_PADDING_FACTOR",
		"POLYBENCH_PADDING_FACTOR=abc",
		"POLYBENCH_PADDING_FACTOR=-1",
		"POLYBENCH_CACHE_SIZE_KB=0",
		"POLYBENCH_TIME,POLYBENCH_PAPI",
	} {
		_, err := ParseOptions(list)
		require.NotNil(t, err, "list %q", list)
		require.True(t, errors.Is(err, ErrConfiguration), "list %q: %v", list, err)
	}
}
