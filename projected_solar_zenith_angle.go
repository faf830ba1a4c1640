package main

/*
投影太陽天頂角を計算する。

太陽位置（天頂角・方位角）を架台回転軸に直交する平面へ投影し、
その平面内での符号付き角度を求める。

	Args:
		solar_zenith: 太陽天頂角（みかけ）, deg
		solar_azimuth: 太陽方位角（北 = 0, 東回り）, deg
		axis_tilt: 回転軸の傾斜角, deg
		axis_azimuth: 回転軸の方位角（北 = 0, 東回り）, deg

	Returns:
		投影太陽天頂角, deg

	Notes:
		Marion, B. and Dobos, A. "Rotation Angle for the Optimum Tracking of
		One-Axis Trackers", NREL/TP-6A20-58891, 2013 式(4), 式(5)。
		架台座標系は右手系とし、y軸を回転軸方向（北から axis_azimuth だけ
		時計回りに回転し axis_tilt だけ持ち上げた向き）、x軸をy軸から90°
		時計回りの水平方向、z軸を天頂側にとる。
		太陽単位ベクトルを x-z 平面へ投影した符号付き角度を 2引数の
		逆正接で求めるため、値域は [-180, 180] である。
		太陽が天頂にある場合（solar_zenith = 0）は軸の向きによらず 0 となる。
*/
func get_projected_solar_zenith_angle(
	solar_zenith float64,
	solar_azimuth float64,
	axis_tilt float64,
	axis_azimuth float64,
) float64 {
	// 太陽単位ベクトル（x: 東, y: 北, z: 天頂）
	sin_zenith := sind(solar_zenith)
	s_x := sin_zenith * sind(solar_azimuth)
	s_y := sin_zenith * cosd(solar_azimuth)
	s_z := cosd(solar_zenith)

	cos_axis_azimuth := cosd(axis_azimuth)
	sin_axis_azimuth := sind(axis_azimuth)
	sin_axis_tilt := sind(axis_tilt)

	// 架台座標系へ回転した太陽ベクトルの x', z' 成分
	s_x_prime := s_x*cos_axis_azimuth - s_y*sin_axis_azimuth
	s_z_prime := s_x*sin_axis_azimuth*sin_axis_tilt +
		s_y*sin_axis_tilt*cos_axis_azimuth +
		s_z*cosd(axis_tilt)

	return atan2d(s_x_prime, s_z_prime)
}

/*
太陽位置の系列に対して投影太陽天頂角を計算する。

	Args:
		solar_zenith_ns: 太陽天頂角（みかけ）, deg, [n]
		solar_azimuth_ns: 太陽方位角, deg, [n]
		axis_tilt: 回転軸の傾斜角, deg
		axis_azimuth: 回転軸の方位角, deg

	Returns:
		投影太陽天頂角, deg, [n]
*/
func get_projected_solar_zenith_angle_ns(
	solar_zenith_ns []float64,
	solar_azimuth_ns []float64,
	axis_tilt float64,
	axis_azimuth float64,
) []float64 {
	_check_same_length(len(solar_zenith_ns), len(solar_azimuth_ns))

	theta_s_ns := make([]float64, len(solar_zenith_ns))
	for i := range solar_zenith_ns {
		theta_s_ns[i] = get_projected_solar_zenith_angle(
			solar_zenith_ns[i], solar_azimuth_ns[i], axis_tilt, axis_azimuth,
		)
	}

	return theta_s_ns
}
