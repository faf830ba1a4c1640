package main

import "time"

// 太陽位置データの時間間隔
type Interval string

// 太陽位置データの時間間隔
const (
	IntervalH1  Interval = "1h"
	IntervalM30 Interval = "30m"
	IntervalM15 Interval = "15m"
)

func IntervalFromString(str string) Interval {
	switch str {
	case "1h":
		return IntervalH1
	case "30m":
		return IntervalM30
	case "15m":
		return IntervalM15
	default:
		panic("invalid interval")
	}
}

/*
ステップの時間幅を取得する。

	Returns:
		ステップの時間幅
*/
func (i Interval) get_duration() time.Duration {
	switch i {
	case IntervalH1:
		return time.Hour
	case IntervalM30:
		return 30 * time.Minute
	case IntervalM15:
		return 15 * time.Minute
	default:
		panic("invalid interval")
	}
}

/*
開始時刻とステップ数から時刻インデックスを作成する。

	Args:
		start: 開始時刻
		n: ステップ数

	Returns:
		時刻インデックス, [n]
*/
func (i Interval) make_index(start time.Time, n int) []time.Time {
	d := i.get_duration()
	index := make([]time.Time, n)
	for k := 0; k < n; k++ {
		index[k] = start.Add(time.Duration(k) * d)
	}
	return index
}
