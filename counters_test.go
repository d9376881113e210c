package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCounterList(t *testing.T) {
	contents := `/* This file lists the counters to sample.
	   One name per line. */
	// PAPI_L3_TCM is commented out
	"PAPI_TOT_CYC",
	"PAPI_TOT_INS",
	PAPI_BR_MSP
	`
	require.Equal(t, []string{"PAPI_TOT_CYC", "PAPI_TOT_INS", "PAPI_BR_MSP"}, parseCounterList(contents))
}

func TestParseCounterListEmpty(t *testing.T) {
	require.Empty(t, parseCounterList("// nothing enabled\n/* still\nnothing */\n"))
}

func TestValidateCounterNames(t *testing.T) {
	require.Nil(t, validateCounterNames([]string{"PAPI_TOT_CYC", "PAPI_L3_TCM"}))
	err := validateCounterNames([]string{"PAPI_MADE_UP"})
	require.True(t, errors.Is(err, ErrCounterUnavailable))
}
