package main

import (
	"math"
)

// 影の方向。どちら側の隣接列が影を落とすかを表す。
type ShadowDirection string

const (
	// 投影太陽天頂角が正。正符号側の隣接列が影を落とす。
	ShadowDirectionPositive ShadowDirection = "positive"
	// 投影太陽天頂角が負。負符号側の隣接列が影を落とす。
	ShadowDirectionNegative ShadowDirection = "negative"
)

/*
投影太陽天頂角から影の方向を判別する。

	Args:
		theta_s: 投影太陽天頂角, deg

	Returns:
		ShadowDirection 列挙体
*/
func shadow_direction_from_theta_s(theta_s float64) ShadowDirection {
	if theta_s >= 0.0 {
		return ShadowDirectionPositive
	}
	return ShadowDirectionNegative
}

/*
隣接2列間の1次元影面積比率を計算する。

被陰列の集熱面幅のうち、隣接する遮蔽列の影に入る部分の比率を求める。
地形の横断勾配と回転軸から集熱面までのオフセットを考慮する。

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
		影面積比率, - （0 以上 1 以下）

	Notes:
		Luis, E. ほか "Shaded fraction in sloped terrain",
		doi:10.5281/zenodo.10513987 の幾何モデルによる。
		回転軸直交断面内で太陽光線に直交する座標をとり、遮蔽列の
		最も高い端部が落とす影の境界線より横断座標の低い側を影とする
		（遮蔽列とその下の地面を不透明な障壁とみなすモデル）。
		投影太陽天頂角の符号（ShadowDirection）で断面を鏡映し、
		交差の式は正方向の1通りのみ記述する。
		幾何学的に影がかからない場合は 0、全面被陰の場合は 1 に
		打ち切られ、負値や 1 を超える値は返さない。
*/
func get_shaded_fraction1d(
	shaded_row_rotation float64,
	shading_row_rotation float64,
	surface_to_axis_offset float64,
	collector_width float64,
	solar_zenith float64,
	cross_axis_slope float64,
	pitch float64,
	solar_azimuth float64,
	axis_azimuth float64,
) float64 {
	// 投影太陽天頂角, deg
	theta_s := get_projected_solar_zenith_angle(solar_zenith, solar_azimuth, 0.0, axis_azimuth)

	// 断面を正方向に正規化する。負方向の場合は断面を鏡映する
	// （回転角と勾配の符号を反転し、投影太陽天頂角を正にとり直す）。
	if shadow_direction_from_theta_s(theta_s) == ShadowDirectionNegative {
		theta_s = -theta_s
		shaded_row_rotation = -shaded_row_rotation
		shading_row_rotation = -shading_row_rotation
		cross_axis_slope = -cross_axis_slope
	}

	// 正規化後の断面では太陽は常に遮蔽列側（x 正側）にあり、
	// 遮蔽列の回転軸は被陰列の回転軸から水平距離 pitch、
	// 高さ pitch * tan(勾配) だけ離れた位置にある。
	axis_x := pitch
	axis_z := -pitch * tand(cross_axis_slope)

	// 太陽光線に直交する断面内の単位ベクトル（横断座標軸）
	p_x := cosd(theta_s)
	p_z := -sind(theta_s)

	// 集熱面中心の横断座標と、集熱面に沿う単位長さあたりの横断座標の変化
	w_center := func(rotation, x0, z0 float64) float64 {
		c_x := x0 + surface_to_axis_offset*sind(rotation)
		c_z := z0 + surface_to_axis_offset*cosd(rotation)
		return c_x*p_x + c_z*p_z
	}
	w_slope := func(rotation float64) float64 {
		return cosd(rotation)*p_x - sind(rotation)*p_z
	}

	// 遮蔽列の両端部のうち横断座標が最小の端部（光線に対して最も高い端部）が
	// 影の境界をつくる。
	w_boundary := w_center(shading_row_rotation, axis_x, axis_z) -
		math.Abs(w_slope(shading_row_rotation))*collector_width/2.0

	// 被陰列の両端部のうち横断座標が最大の端部（光線に対して最も低い端部）
	w_shaded_slope := w_slope(shaded_row_rotation)
	w_low_end := w_center(shaded_row_rotation, 0.0, 0.0) +
		math.Abs(w_shaded_slope)*collector_width/2.0

	// 被陰列が太陽光線と平行な場合、横断座標は集熱面全長で一定となる。
	if w_shaded_slope == 0.0 {
		if w_low_end > w_boundary {
			return 1.0
		}
		return 0.0
	}

	f_sh := (w_low_end - w_boundary) / (math.Abs(w_shaded_slope) * collector_width)

	return clip(f_sh, 0.0, 1.0)
}

/*
遮蔽列の回転角が与えられない場合の1次元影面積比率を計算する。

遮蔽列の回転角として被陰列の回転角を代用する
（全列が同一回転角で連動するトラッカーを想定する）。

	Args:
		shaded_row_rotation: 被陰列の回転角, deg
		surface_to_axis_offset: 回転軸から集熱面までの距離, m
		collector_width: 集熱面幅, m
		solar_zenith: 太陽天頂角（みかけ）, deg
		cross_axis_slope: 回転軸に直交する方向の地表勾配, deg
		pitch: 列間隔（水平投影）, m
		solar_azimuth: 太陽方位角, deg
		axis_azimuth: 回転軸の方位角, deg

	Returns:
		影面積比率, -
*/
func get_shaded_fraction1d_unison(
	shaded_row_rotation float64,
	surface_to_axis_offset float64,
	collector_width float64,
	solar_zenith float64,
	cross_axis_slope float64,
	pitch float64,
	solar_azimuth float64,
	axis_azimuth float64,
) float64 {
	return get_shaded_fraction1d(
		shaded_row_rotation,
		shaded_row_rotation,
		surface_to_axis_offset,
		collector_width,
		solar_zenith,
		cross_axis_slope,
		pitch,
		solar_azimuth,
		axis_azimuth,
	)
}

/*
系列入力に対して1次元影面積比率を計算する。

	Args:
		shaded_row_rotation_ns: 被陰列の回転角, deg, [n]
		shading_row_rotation_ns: 遮蔽列の回転角, deg, [n]
		surface_to_axis_offset: 回転軸から集熱面までの距離, m
		collector_width: 集熱面幅, m
		solar_zenith_ns: 太陽天頂角（みかけ）, deg, [n]
		cross_axis_slope: 回転軸に直交する方向の地表勾配, deg
		pitch: 列間隔（水平投影）, m
		solar_azimuth_ns: 太陽方位角, deg, [n]
		axis_azimuth: 回転軸の方位角, deg

	Returns:
		影面積比率, -, [n]
*/
func get_shaded_fraction1d_ns(
	shaded_row_rotation_ns []float64,
	shading_row_rotation_ns []float64,
	surface_to_axis_offset float64,
	collector_width float64,
	solar_zenith_ns []float64,
	cross_axis_slope float64,
	pitch float64,
	solar_azimuth_ns []float64,
	axis_azimuth float64,
) []float64 {
	_check_same_length(
		len(shaded_row_rotation_ns),
		len(shading_row_rotation_ns),
		len(solar_zenith_ns),
		len(solar_azimuth_ns),
	)

	f_sh_ns := make([]float64, len(shaded_row_rotation_ns))
	for i := range f_sh_ns {
		f_sh_ns[i] = get_shaded_fraction1d(
			shaded_row_rotation_ns[i],
			shading_row_rotation_ns[i],
			surface_to_axis_offset,
			collector_width,
			solar_zenith_ns[i],
			cross_axis_slope,
			pitch,
			solar_azimuth_ns[i],
			axis_azimuth,
		)
	}

	return f_sh_ns
}
