package main

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/floats"
)

type Config struct {
	Pitch                 float64 `json:"pitch"`
	CollectorWidth        float64 `json:"collector_width"`
	SurfaceToAxisOffset   float64 `json:"surface_to_axis_offset"`
	CrossAxisSlope        float64 `json:"cross_axis_slope"`
	AxisTilt              float64 `json:"axis_tilt"`
	AxisAzimuth           float64 `json:"axis_azimuth"`
	RotationSpecifyMethod string  `json:"rotation_specify_method"`
	FixedRotation         float64 `json:"fixed_rotation"`
	MaxRotation           float64 `json:"max_rotation"`
}

/*
影計算処理の実行

	Args:
		array_data_path: アレイ計算条件JSONファイルへのパス
		solar_position_path: 太陽位置データのファイルパス
		interval: 太陽位置データの時間間隔
		output_data_dir: 出力フォルダへのパス
*/
func run(
	array_data_path string,
	solar_position_path string,
	interval string,
	output_data_dir string,
) {

	_, err := os.Stat(output_data_dir)
	if os.IsNotExist(err) {
		log.Fatalf("`%s` is not a directory", output_data_dir)
	}

	// アレイ計算条件JSONファイルの読み込み
	log.Printf("アレイ計算条件JSONファイルの読み込み開始")
	var conf Config
	if len(array_data_path) >= 4 && array_data_path[0:4] == "http" {
		resp, err := http.Get(array_data_path)
		if err != nil {
			log.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			log.Fatal(err)
		}
		json.Unmarshal(body, &conf)
	} else {
		file, err := os.Open(array_data_path)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		bytes, err := ioutil.ReadAll(file)
		if err != nil {
			log.Fatal(err)
		}
		json.Unmarshal(bytes, &conf)
	}

	// 太陽位置データの読み込み
	log.Printf("Load solar position data from `%s`", solar_position_path)
	itv := IntervalFromString(interval)
	solar_zenith, solar_azimuth := read_solar_position(solar_position_path, itv)
	n := solar_zenith.Len()

	// ステップ n における投影太陽天頂角, deg, [n]
	log.Printf("投影太陽天頂角の計算開始")
	theta_s := get_projected_solar_zenith_angle_series(
		solar_zenith, solar_azimuth, conf.AxisTilt, conf.AxisAzimuth,
	)

	// ステップ n における集熱面の回転角, deg, [n]
	rotation_ns := make_rotation_ns(conf, theta_s.Values())
	rotation := theta_s.with_values(rotation_ns)

	// ステップ n における影面積比率, -, [n]
	// 全列が同一回転角で連動するため、遮蔽列の回転角には被陰列の回転角を用いる。
	log.Printf("影面積比率の計算開始")
	f_sh := get_shaded_fraction1d_series(
		rotation,
		rotation,
		conf.SurfaceToAxisOffset,
		conf.CollectorWidth,
		solar_zenith,
		conf.CrossAxisSlope,
		conf.Pitch,
		solar_azimuth,
		conf.AxisAzimuth,
	)

	// 地面被覆率, -
	gcr := conf.CollectorWidth / conf.Pitch

	// ステップ n における平均マスキング角, deg, [n]
	//   マスキング角は傾斜の向きによらないため、回転角の絶対値を傾斜角とする。
	log.Printf("天空日射損失の計算開始")
	surface_tilt_ns := make([]float64, n)
	for i, r := range rotation_ns {
		if r < 0 {
			surface_tilt_ns[i] = -r
		} else {
			surface_tilt_ns[i] = r
		}
	}
	psi_avg_ns := get_masking_angle_passias_ns(surface_tilt_ns, gcr)

	// ステップ n における天空日射の損失比率, -, [n]
	f_sky_loss_ns := get_sky_diffuse_passias_ns(psi_avg_ns)

	// ---- 計算結果ファイルの保存 ----

	r := NewRecorder(solar_zenith.Index())
	for i := 0; i < n; i++ {
		r.recording(i, theta_s.At(i), rotation_ns[i], f_sh.At(i), psi_avg_ns[i], f_sky_loss_ns[i])
	}
	r.export_csv(filepath.Join(output_data_dir, "result_shading.csv"))

	log.Printf("max shaded fraction: %f", floats.Max(f_sh.Values()))
	log.Printf("mean sky diffuse loss: %f", floats.Sum(f_sky_loss_ns)/float64(n))
}

/*
ステップごとの集熱面の回転角を作成する。

	Args:
		conf: Config クラス
		theta_s_ns: 投影太陽天頂角, deg, [n]

	Returns:
		集熱面の回転角, deg, [n]

	Notes:
		rotation_specify_method が fixed の場合は固定角とする。
		tracking の場合は投影太陽天頂角に追従し、最大回転角で打ち切る
		（ストーイング・バックトラッキングは行わない）。
*/
func make_rotation_ns(conf Config, theta_s_ns []float64) []float64 {
	if conf.RotationSpecifyMethod == "fixed" {
		return _full(conf.FixedRotation, len(theta_s_ns))
	} else if conf.RotationSpecifyMethod == "tracking" {
		rotation_ns := make([]float64, len(theta_s_ns))
		for i, theta_s := range theta_s_ns {
			rotation_ns[i] = clip(theta_s, -conf.MaxRotation, conf.MaxRotation)
		}
		return rotation_ns
	} else {
		panic(conf.RotationSpecifyMethod)
	}
}

func main() {
	var array_data string
	flag.StringVar(&array_data, "input", "", "計算を実行するJSONファイル")

	var solar_position string
	flag.StringVar(&solar_position, "solar", "", "太陽位置データのCSVファイル")

	var interval string
	flag.StringVar(&interval, "itv", "1h", "太陽位置データの時間間隔（1h, 30m, 15m）")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "出力フォルダ")

	// 引数を受け取る
	flag.Parse()

	if array_data == "" {
		log.Fatal("inputオプションを指定してください。")
	}

	if solar_position == "" {
		log.Fatal("solarオプションを指定してください。")
	}

	start := time.Now()

	run(
		array_data,
		solar_position,
		interval,
		output_data_dir,
	)

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
