package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
)

// 太陽位置データの基準年（時刻列を持たないファイル用）
const YEAR = 1989

type SolarPositionRow struct {
	Time           string  `csv:"time"`
	ApparentZenith float64 `csv:"apparent_zenith"`
	Azimuth        float64 `csv:"azimuth"`
}

/*
太陽位置データを読み込む。

太陽位置（みかけの天頂角・方位角）は外部の太陽位置計算の検証済み出力で
あり、本エンジンでは数値入力としてのみ扱う。

	Args:
		file_path: 太陽位置データのファイルのパス
		itv: Interval 列挙体

	Returns:
		(1) 太陽天頂角（みかけ）の系列, deg
		(2) 太陽方位角の系列, deg

	Notes:
		time 列は RFC3339 形式とする。
		time 列を持つ場合、隣接する時刻の間隔が itv と一致しない行が
		あれば整列違反として panic する。
		time 列が空の場合は基準年の 1/1 0:00 を開始時刻として
		itv 刻みの時刻インデックスを生成する。
*/
func read_solar_position(file_path string, itv Interval) (*Series, *Series) {

	// file is exist
	if _, err := os.Stat(file_path); os.IsNotExist(err) {
		panic(fmt.Sprintf("Error File %s is not exist.", file_path))
	}

	// Open the CSV file
	file, err := os.Open(file_path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	var pp []*SolarPositionRow

	if err := gocsv.UnmarshalFile(file, &pp); err != nil {
		panic(err)
	}

	if len(pp) == 0 {
		panic("Error Row length of the file should be more than 0.")
	}

	var index []time.Time
	if pp[0].Time == "" {
		index = itv.make_index(time.Date(YEAR, 1, 1, 0, 0, 0, 0, time.UTC), len(pp))
	} else {
		index = make([]time.Time, len(pp))
		for i, row := range pp {
			t, err := time.Parse(time.RFC3339, row.Time)
			if err != nil {
				panic(err)
			}
			index[i] = t
		}
		d := itv.get_duration()
		for i := 1; i < len(index); i++ {
			if index[i].Sub(index[i-1]) != d {
				panic(fmt.Sprintf(
					"時刻列の間隔がインターバル %s と一致していません。（行 %d）", itv, i,
				))
			}
		}
	}

	zenith_ns := make([]float64, len(pp))
	azimuth_ns := make([]float64, len(pp))
	for i, row := range pp {
		zenith_ns[i] = row.ApparentZenith
		azimuth_ns[i] = row.Azimuth
	}

	return NewSeries(index, zenith_ns), NewSeries(index, azimuth_ns)
}
