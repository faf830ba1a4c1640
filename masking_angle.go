package main

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

/*
集熱面上の1点から見た隣接列によるマスキング角を計算する。

	Args:
		surface_tilt: 集熱面の傾斜角, deg
		gcr: 地面被覆率（集熱面幅を列ピッチで除した値）, -
		slant_height: 評価点の集熱面に沿った規格化高さ（0 = 下端, 1 = 上端）, -

	Returns:
		マスキング角, deg

	Notes:
		Passias, D. and Källbäck, B. "Shading effects in rows of solar cell
		panels", Solar Cells, 1984 式(8) を gcr で無次元化したもの。
		gcr = 0 のときは隣接列が存在しないため 0 を返す。
*/
func get_masking_angle(surface_tilt float64, gcr float64, slant_height float64) float64 {
	if gcr == 0.0 {
		return 0.0
	}

	numerator := (1.0 - slant_height) * sind(surface_tilt)
	denominator := 1.0/gcr - (1.0-slant_height)*cosd(surface_tilt)

	return atand(numerator / denominator)
}

/*
複数の傾斜角に対してマスキング角を計算する。

	Args:
		surface_tilt_ns: 集熱面の傾斜角, deg, [n]
		gcr: 地面被覆率, -
		slant_height: 評価点の集熱面に沿った規格化高さ, -

	Returns:
		マスキング角, deg, [n]
*/
func get_masking_angle_ns(surface_tilt_ns []float64, gcr float64, slant_height float64) []float64 {
	psi_ns := make([]float64, len(surface_tilt_ns))
	for i, surface_tilt := range surface_tilt_ns {
		psi_ns[i] = get_masking_angle(surface_tilt, gcr, slant_height)
	}

	return psi_ns
}

/*
集熱面全長にわたって平均したマスキング角を計算する。

	Args:
		surface_tilt: 集熱面の傾斜角, deg
		gcr: 地面被覆率, -

	Returns:
		平均マスキング角, deg

	Notes:
		Passias, D. and Källbäck, B. "Shading effects in rows of solar cell
		panels", Solar Cells, 1984 の閉形式積分（数値求積ではない）。
		マスキング角を集熱面に沿った位置について 0 から 1 まで積分したもの。
		gcr = 0 または傾斜角 0 のときは 0 を返す（分母が発散する分岐を
		通らないよう先に打ち切る）。
*/
func get_masking_angle_passias(surface_tilt float64, gcr float64) float64 {
	if gcr == 0.0 || surface_tilt == 0.0 {
		return 0.0
	}

	beta := radians(surface_tilt)
	sin_b := math.Sin(beta)
	cos_b := math.Cos(beta)

	// 列ピッチを集熱面幅で規格化した値, -
	b := 1.0 / gcr

	term1 := math.Atan(sin_b / (b - cos_b))
	term2 := sin_b * b / 2.0 * math.Log((b*b-2.0*b*cos_b+1.0)/(b*b))
	term3 := b * cos_b * (math.Atan((1.0-b*cos_b)/(b*sin_b)) + math.Pi/2.0 - beta)

	return degrees(term1 - term2 - term3)
}

/*
複数の傾斜角に対して平均マスキング角を計算する。

	Args:
		surface_tilt_ns: 集熱面の傾斜角, deg, [n]
		gcr: 地面被覆率, -

	Returns:
		平均マスキング角, deg, [n]
*/
func get_masking_angle_passias_ns(surface_tilt_ns []float64, gcr float64) []float64 {
	psi_ns := make([]float64, len(surface_tilt_ns))
	for i, surface_tilt := range surface_tilt_ns {
		psi_ns[i] = get_masking_angle_passias(surface_tilt, gcr)
	}

	return psi_ns
}

/*
平均マスキング角から天空日射の損失比率を計算する。

	Args:
		masking_angle: 平均マスキング角, deg

	Returns:
		天空日射の損失比率, -

	Notes:
		等方性天空モデルの閉形式積分による。
		損失比率 = 1 - cos^2(マスキング角 / 2)
		マスキング角 0 のとき損失は 0 であり、マスキング角に対して単調増加する。
*/
func get_sky_diffuse_passias(masking_angle float64) float64 {
	c := cosd(masking_angle / 2.0)
	return 1.0 - c*c
}

/*
平均マスキング角の系列から天空日射の損失比率を計算する。

	Args:
		masking_angle_ns: 平均マスキング角, deg, [n]

	Returns:
		天空日射の損失比率, -, [n]
*/
func get_sky_diffuse_passias_ns(masking_angle_ns []float64) []float64 {
	f_ns := make([]float64, len(masking_angle_ns))
	for i, psi := range masking_angle_ns {
		f_ns[i] = get_sky_diffuse_passias(psi)
	}

	return f_ns
}

/*
平均マスキング角のベクトルから天空日射の損失比率を計算する。

	Args:
		masking_angle_ns: 平均マスキング角, deg, [n]

	Returns:
		天空日射の損失比率, -, [n]
*/
func get_sky_diffuse_passias_vec(masking_angle_ns mat.Vector) []float64 {
	n := masking_angle_ns.Len()
	f_ns := make([]float64, n)
	for i := 0; i < n; i++ {
		f_ns[i] = get_sky_diffuse_passias(masking_angle_ns.AtVec(i))
	}

	return f_ns
}
