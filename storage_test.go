package main

import (
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	db, err := os.CreateTemp("", "test-results")
	require.Nil(t, err)
	db.Close()
	defer os.Remove(db.Name())

	storage, err := OpenStorage(db.Name())
	require.Nil(t, err)
	defer storage.Close()

	info := SysInfo{Arch: "amd64", Hostname: "test", Platform: "linux", CPUCount: 4, CPUFreq: 2600, RAM: 16}
	require.Nil(t, storage.InitResultsDb(info))
	// Re-initializing must keep the first parameter set.
	require.Nil(t, storage.InitResultsDb(info))

	require.Nil(t, storage.SaveMeasurement("linear-algebra/blas/gemm", Mini, Measurement{Mode: ModeTime, Seconds: 0.125}))
	require.Nil(t, storage.SaveMeasurement("linear-algebra/blas/gemm", Mini, Measurement{
		Mode: ModePapi,
		Counters: []CounterValue{
			{Name: "PAPI_TOT_CYC", Value: 123456},
			{Name: "PAPI_TOT_INS", Value: 654321},
		},
	}))

	conn, err := sql.Open("sqlite3", db.Name())
	require.Nil(t, err)
	defer conn.Close()

	var count int
	require.Nil(t, conn.QueryRow("select count(*) from measurements").Scan(&count))
	require.Equal(t, 3, count)

	var seconds float64
	require.Nil(t, conn.QueryRow("select value from measurements where measurement = 'seconds'").Scan(&seconds))
	require.Equal(t, 0.125, seconds)

	var params int
	require.Nil(t, conn.QueryRow("select count(*) from parameters").Scan(&params))
	require.Equal(t, 7, params)
}
