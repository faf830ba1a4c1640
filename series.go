package main

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"
)

/*
時刻ラベル付きの整列済み数値系列。

値と時刻インデックスは同じ長さを持ち、要素 i の値は時刻 i に対応する。
複数の系列を同時に演算へ渡す場合、全系列のインデックスは一致しなければ
ならない。
*/
type Series struct {
	_index  []time.Time
	_values []float64
}

/*
Series を作成する。

	Args:
		index: 時刻インデックス, [n]
		values: 値, [n]

	Returns:
		Series クラス
*/
func NewSeries(index []time.Time, values []float64) *Series {
	if len(index) != len(values) {
		panic(fmt.Sprintf(
			"時刻インデックスの長さ %d と値の長さ %d が一致していません。",
			len(index), len(values),
		))
	}

	return &Series{
		_index:  index,
		_values: values,
	}
}

// データの数を取得する。
func (self *Series) Len() int {
	return len(self._values)
}

// 時刻インデックスを取得する。
func (self *Series) Index() []time.Time {
	return self._index
}

// 値を取得する。
func (self *Series) Values() []float64 {
	return self._values
}

// ステップ n の値を取得する。
func (self *Series) At(n int) float64 {
	return self._values[n]
}

// 値を gonum のベクトルとして取得する。
func (self *Series) VecDense() *mat.VecDense {
	return mat.NewVecDense(len(self._values), self._values)
}

/*
2つの系列が同じ時刻インデックスを持つか判定する。

	Args:
		other: 比較対象の系列

	Returns:
		インデックスが一致する場合 true
*/
func (self *Series) same_index(other *Series) bool {
	if len(self._index) != len(other._index) {
		return false
	}
	for i := range self._index {
		if !self._index[i].Equal(other._index[i]) {
			return false
		}
	}
	return true
}

/*
同じ時刻インデックスを持つ系列から、同じインデックスの新しい系列を作成する。

	Args:
		values: 値, [n]

	Returns:
		Series クラス
*/
func (self *Series) with_values(values []float64) *Series {
	return NewSeries(self._index, values)
}

/*
同時に渡される系列のインデックスが一致しているか検証する。

	Args:
		ss: 系列, [m]

	Notes:
		一致しない場合は panic する。整列済み系列を混在して渡す際の
		整合性条件であり、呼び出し側の契約違反として扱う。
*/
func _check_same_index(ss ...*Series) {
	for i := 1; i < len(ss); i++ {
		if !ss[0].same_index(ss[i]) {
			panic("系列の時刻インデックスが一致していません。")
		}
	}
}

/*
同時に渡される系列の長さが一致しているか検証する。

	Args:
		ns: 各系列の長さ, [m]

	Notes:
		一致しない場合は panic する。
*/
func _check_same_length(ns ...int) {
	for i := 1; i < len(ns); i++ {
		if ns[i] != ns[0] {
			panic(fmt.Sprintf(
				"系列の長さが一致していません。（%d と %d）", ns[0], ns[i],
			))
		}
	}
}

/*
スカラー値を長さ n の系列に引き延ばす。

	Args:
		v: スカラー値
		n: 系列の長さ

	Returns:
		全要素が v の系列, [n]
*/
func _full(v float64, n int) []float64 {
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = v
	}
	return ret
}

/*
傾斜角の系列に対してマスキング角を計算する。

	Args:
		surface_tilt: 集熱面の傾斜角, deg
		gcr: 地面被覆率, -
		slant_height: 評価点の集熱面に沿った規格化高さ, -

	Returns:
		マスキング角の系列（入力と同じ時刻インデックス）, deg
*/
func get_masking_angle_series(surface_tilt *Series, gcr float64, slant_height float64) *Series {
	return surface_tilt.with_values(
		get_masking_angle_ns(surface_tilt.Values(), gcr, slant_height),
	)
}

/*
傾斜角の系列に対して平均マスキング角を計算する。

	Args:
		surface_tilt: 集熱面の傾斜角, deg
		gcr: 地面被覆率, -

	Returns:
		平均マスキング角の系列（入力と同じ時刻インデックス）, deg
*/
func get_masking_angle_passias_series(surface_tilt *Series, gcr float64) *Series {
	return surface_tilt.with_values(
		get_masking_angle_passias_ns(surface_tilt.Values(), gcr),
	)
}

/*
平均マスキング角の系列に対して天空日射の損失比率を計算する。

	Args:
		masking_angle: 平均マスキング角, deg

	Returns:
		天空日射の損失比率の系列（入力と同じ時刻インデックス）, -
*/
func get_sky_diffuse_passias_series(masking_angle *Series) *Series {
	return masking_angle.with_values(
		get_sky_diffuse_passias_ns(masking_angle.Values()),
	)
}

/*
太陽位置の系列に対して投影太陽天頂角を計算する。

	Args:
		solar_zenith: 太陽天頂角（みかけ）, deg
		solar_azimuth: 太陽方位角, deg
		axis_tilt: 回転軸の傾斜角, deg
		axis_azimuth: 回転軸の方位角, deg

	Returns:
		投影太陽天頂角の系列（入力と同じ時刻インデックス）, deg
*/
func get_projected_solar_zenith_angle_series(
	solar_zenith *Series,
	solar_azimuth *Series,
	axis_tilt float64,
	axis_azimuth float64,
) *Series {
	_check_same_index(solar_zenith, solar_azimuth)

	return solar_zenith.with_values(
		get_projected_solar_zenith_angle_ns(
			solar_zenith.Values(), solar_azimuth.Values(), axis_tilt, axis_azimuth,
		),
	)
}

/*
系列入力に対して1次元影面積比率を計算する。

	Args:
		shaded_row_rotation: 被陰列の回転角, deg
		shading_row_rotation: 遮蔽列の回転角, deg
		surface_to_axis_offset: 回転軸から集熱面までの距離, m
		collector_width: 集熱面幅, m
		solar_zenith: 太陽天頂角（みかけ）, deg
		cross_axis_slope: 回転軸に直交する方向の地表勾配, deg
		pitch: 列間隔（水平投影）, m
		solar_azimuth: 太陽方位角, deg
		axis_azimuth: 回転軸の方位角, deg

	Returns:
		影面積比率の系列（入力と同じ時刻インデックス）, -
*/
func get_shaded_fraction1d_series(
	shaded_row_rotation *Series,
	shading_row_rotation *Series,
	surface_to_axis_offset float64,
	collector_width float64,
	solar_zenith *Series,
	cross_axis_slope float64,
	pitch float64,
	solar_azimuth *Series,
	axis_azimuth float64,
) *Series {
	_check_same_index(shaded_row_rotation, shading_row_rotation, solar_zenith, solar_azimuth)

	return solar_zenith.with_values(
		get_shaded_fraction1d_ns(
			shaded_row_rotation.Values(),
			shading_row_rotation.Values(),
			surface_to_axis_offset,
			collector_width,
			solar_zenith.Values(),
			cross_axis_slope,
			pitch,
			solar_azimuth.Values(),
			axis_azimuth,
		),
	)
}
