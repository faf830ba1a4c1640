package main

/*
集熱面上の点から見た隣接列の基部がつくる地面の見上げ角を計算する。

	Args:
		surface_tilt: 集熱面の傾斜角, deg
		gcr: 地面被覆率（集熱面幅を列ピッチで除した値）, -
		x: 集熱面に沿った規格化位置（0 = 下端, 1 = 上端）, -

	Returns:
		地面の見上げ角, deg

	Notes:
		Passias, D. and Källbäck, B. "Shading effects in rows of solar cell
		panels", Solar Cells, 1984 の幾何に基づく。
		gcr = 0 のときは隣接列が存在しないため 0 を返す。
*/
func get_ground_angle(surface_tilt float64, gcr float64, x float64) float64 {
	if gcr == 0.0 {
		return 0.0
	}

	// 点から隣接列基部までの水平距離と高さの比の逆正接をとる。
	x1 := x * sind(surface_tilt)
	x2 := x*cosd(surface_tilt) + 1.0/gcr

	return atan2d(x1, x2)
}

/*
集熱面に沿った複数の規格化位置に対して地面の見上げ角を計算する。

	Args:
		surface_tilt: 集熱面の傾斜角, deg
		gcr: 地面被覆率, -
		x_ns: 集熱面に沿った規格化位置, -, [n]

	Returns:
		地面の見上げ角, deg, [n]
*/
func get_ground_angle_ns(surface_tilt float64, gcr float64, x_ns []float64) []float64 {
	psi_ns := make([]float64, len(x_ns))
	for i, x := range x_ns {
		psi_ns[i] = get_ground_angle(surface_tilt, gcr, x)
	}

	return psi_ns
}
