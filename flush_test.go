package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlushCache(t *testing.T) {
	require.Nil(t, flushCache(64))
}

func TestFlushCacheDefaultSize(t *testing.T) {
	require.Nil(t, flushCache(DefaultOptions().CacheSizeKB))
}
