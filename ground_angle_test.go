package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroundAngle(t *testing.T) {
	surface_tilt := 30.0
	gcr := 0.5
	x_ns := []float64{0.0, 0.5, 1.0}

	// Passias and Källbäck (1984) の幾何から導いた参照値
	expected := []float64{0.0, 5.866738789543952, 9.896090638982903}

	actual := get_ground_angle_ns(surface_tilt, gcr, x_ns)

	assert.InDeltaSlice(t, expected, actual, 1e-9)
}

func TestGroundAngleZeroGcr(t *testing.T) {
	// gcr = 0 は隣接列が存在しない縮退入力であり、常に 0 を返す。
	surface_tilt := 30.0
	x_ns := []float64{0.0, 0.5, 1.0}

	actual := get_ground_angle_ns(surface_tilt, 0.0, x_ns)

	assert.InDeltaSlice(t, []float64{0.0, 0.0, 0.0}, actual, 1e-12)
}

func TestGroundAngleScalar(t *testing.T) {
	// スカラー入力とスカラー出力
	assert.InDelta(t, 5.866738789543952, get_ground_angle(30.0, 0.5, 0.5), 1e-9)
	assert.InDelta(t, 0.0, get_ground_angle(30.0, 0.5, 0.0), 1e-12)
}
