package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecorderExportCsv(t *testing.T) {
	index := IntervalH1.make_index(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), 2)
	r := NewRecorder(index)
	r.recording(0, -45.0, -45.0, 0.0, 7.2098, 0.0039534)
	r.recording(1, 30.0, 30.0, 0.5, 7.2098, 0.0039534)

	path := filepath.Join(t.TempDir(), "result_shading.csv")
	r.export_csv(path)

	file, err := os.Open(path)
	assert.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	assert.NoError(t, err)

	// ヘッダー + 2 ステップ
	assert.Len(t, records, 3)
	assert.Equal(t, "time", records[0][0])
	assert.Equal(t, "shaded_fraction", records[0][3])
	assert.Equal(t, "2019-01-01T00:00:00Z", records[1][0])
	assert.Equal(t, "0.500000", records[2][3])
}

func TestMakeRotationNs(t *testing.T) {
	theta_s_ns := []float64{-70.0, -30.0, 0.0, 30.0, 70.0}

	fixed := make_rotation_ns(Config{RotationSpecifyMethod: "fixed", FixedRotation: 20.0}, theta_s_ns)
	assert.Equal(t, _full(20.0, 5), fixed)

	// 追尾は投影太陽天頂角に追従し、最大回転角で打ち切る
	tracking := make_rotation_ns(Config{RotationSpecifyMethod: "tracking", MaxRotation: 60.0}, theta_s_ns)
	assert.Equal(t, []float64{-60.0, -30.0, 0.0, 30.0, 60.0}, tracking)

	assert.Panics(t, func() {
		make_rotation_ns(Config{RotationSpecifyMethod: "unknown"}, theta_s_ns)
	})
}
