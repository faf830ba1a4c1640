package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func write_solar_position_csv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solar_position.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadSolarPosition(t *testing.T) {
	path := write_solar_position_csv(t,
		"time,apparent_zenith,azimuth\n"+
			"2019-01-01T08:00:00Z,87.595713,122.791770\n"+
			"2019-01-01T09:00:00Z,78.736942,133.288729\n"+
			"2019-01-01T10:00:00Z,71.266442,145.285552\n")

	zenith, azimuth := read_solar_position(path, IntervalH1)

	assert.Equal(t, 3, zenith.Len())
	assert.True(t, zenith.same_index(azimuth))
	assert.InDelta(t, 87.595713, zenith.At(0), 1e-9)
	assert.InDelta(t, 145.285552, azimuth.At(2), 1e-9)
	assert.Equal(t, time.Date(2019, 1, 1, 9, 0, 0, 0, time.UTC), zenith.Index()[1].UTC())
}

func TestReadSolarPositionWithoutTimeColumn(t *testing.T) {
	// time 列が空の場合は基準年の 1/1 0:00 からのインデックスを生成する
	path := write_solar_position_csv(t,
		"time,apparent_zenith,azimuth\n"+
			",90.0,90.0\n"+
			",80.0,100.0\n")

	zenith, _ := read_solar_position(path, IntervalM30)

	assert.Equal(t, time.Date(YEAR, 1, 1, 0, 0, 0, 0, time.UTC), zenith.Index()[0])
	assert.Equal(t, time.Date(YEAR, 1, 1, 0, 30, 0, 0, time.UTC), zenith.Index()[1])
}

func TestReadSolarPositionIntervalMismatch(t *testing.T) {
	// 時刻列の間隔がインターバルと一致しない場合は整列違反
	path := write_solar_position_csv(t,
		"time,apparent_zenith,azimuth\n"+
			"2019-01-01T08:00:00Z,87.6,122.8\n"+
			"2019-01-01T08:30:00Z,78.7,133.3\n")

	assert.Panics(t, func() {
		read_solar_position(path, IntervalH1)
	})
}

func TestReadSolarPositionMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		read_solar_position(filepath.Join(t.TempDir(), "no_such.csv"), IntervalH1)
	})
}
