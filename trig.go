package main

import "math"

// 度からラジアンへ変換する。
func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// ラジアンから度へ変換する。
func degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// 度で与えられた角度の正弦を計算する。
func sind(deg float64) float64 {
	return math.Sin(radians(deg))
}

// 度で与えられた角度の余弦を計算する。
func cosd(deg float64) float64 {
	return math.Cos(radians(deg))
}

// 度で与えられた角度の正接を計算する。
func tand(deg float64) float64 {
	return math.Tan(radians(deg))
}

/*
逆正接を度で計算する。

	Args:
		x: 正接の値

	Returns:
		角度, deg

	Notes:
		値域は (-90, 90) である。
*/
func atand(x float64) float64 {
	return degrees(math.Atan(x))
}

/*
2引数の逆正接を度で計算する。

	Args:
		y: 分子
		x: 分母

	Returns:
		角度, deg

	Notes:
		値域は [-180, 180] である。
		1引数の逆正接と異なり、y, x の符号から象限を判別する。
*/
func atan2d(y, x float64) float64 {
	return degrees(math.Atan2(y, x))
}

/*
値を区間 [lower, upper] に制限する。

	Args:
		v: 値
		lower: 下限値
		upper: 上限値

	Returns:
		制限後の値
*/
func clip(v, lower, upper float64) float64 {
	return math.Min(math.Max(v, lower), upper)
}
