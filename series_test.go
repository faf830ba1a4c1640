package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSeriesLengthMismatch(t *testing.T) {
	index := IntervalH1.make_index(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), 3)

	assert.Panics(t, func() {
		NewSeries(index, []float64{1.0, 2.0})
	})
}

func TestSeriesSameIndex(t *testing.T) {
	index := IntervalH1.make_index(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), 3)
	other := IntervalH1.make_index(time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC), 3)

	a := NewSeries(index, []float64{1, 2, 3})
	b := NewSeries(index, []float64{4, 5, 6})
	c := NewSeries(other, []float64{4, 5, 6})

	assert.True(t, a.same_index(b))
	assert.False(t, a.same_index(c))
}

func TestCheckSameIndexPanics(t *testing.T) {
	// 整列の異なる系列の混在は契約違反
	index := IntervalH1.make_index(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), 3)
	other := IntervalM30.make_index(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), 3)

	a := NewSeries(index, []float64{1, 2, 3})
	b := NewSeries(other, []float64{1, 2, 3})

	assert.Panics(t, func() {
		_check_same_index(a, b)
	})
}

func TestSeriesWithValuesPreservesIndex(t *testing.T) {
	index := IntervalM15.make_index(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), 4)
	a := NewSeries(index, []float64{1, 2, 3, 4})

	b := a.with_values([]float64{5, 6, 7, 8})

	assert.True(t, a.same_index(b))
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 7.0, b.At(2))
}

func TestSeriesVecDense(t *testing.T) {
	index := IntervalH1.make_index(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), 3)
	a := NewSeries(index, []float64{1, 2, 3})

	v := a.VecDense()

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 2.0, v.AtVec(1))
}

func TestFull(t *testing.T) {
	assert.Equal(t, []float64{1.5, 1.5, 1.5}, _full(1.5, 3))
}

func TestCheckSameLength(t *testing.T) {
	assert.NotPanics(t, func() {
		_check_same_length(3, 3, 3)
	})
	assert.Panics(t, func() {
		_check_same_length(3, 2)
	})
}
