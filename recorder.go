package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"time"
)

/*
計算結果の系列を蓄積し、CSVファイルへ書き出すクラス。
*/
type Recorder struct {
	_index []time.Time

	// 投影太陽天頂角, deg, [n]
	theta_s_ns []float64

	// 集熱面の回転角, deg, [n]
	rotation_ns []float64

	// 直達日射に対する影面積比率, -, [n]
	f_sh_ns []float64

	// 平均マスキング角, deg, [n]
	psi_avg_ns []float64

	// 天空日射の損失比率, -, [n]
	f_sky_loss_ns []float64
}

/*
Args:

	index: 時刻インデックス, [n]

Returns:

	Recorder クラス
*/
func NewRecorder(index []time.Time) *Recorder {
	n := len(index)
	return &Recorder{
		_index:        index,
		theta_s_ns:    make([]float64, n),
		rotation_ns:   make([]float64, n),
		f_sh_ns:       make([]float64, n),
		psi_avg_ns:    make([]float64, n),
		f_sky_loss_ns: make([]float64, n),
	}
}

// ステップ n の瞬時値を書き込む。
func (self *Recorder) recording(n int, theta_s, rotation, f_sh, psi_avg, f_sky_loss float64) {
	self.theta_s_ns[n] = theta_s
	self.rotation_ns[n] = rotation
	self.f_sh_ns[n] = f_sh
	self.psi_avg_ns[n] = psi_avg
	self.f_sky_loss_ns[n] = f_sky_loss
}

/*
蓄積した計算結果をCSVファイルへ書き出す。

	Args:
		file_path: 出力ファイルのパス
*/
func (self *Recorder) export_csv(file_path string) {
	log.Printf("Save calculation results data to `%s`", file_path)

	file, err := os.Create(file_path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{
		"time",
		"projected_solar_zenith_angle",
		"rotation",
		"shaded_fraction",
		"average_masking_angle",
		"sky_diffuse_loss",
	}
	if err := w.Write(header); err != nil {
		panic(err)
	}

	f := func(v float64) string {
		return strconv.FormatFloat(v, 'f', 6, 64)
	}

	for n := range self._index {
		record := []string{
			self._index[n].Format(time.RFC3339),
			f(self.theta_s_ns[n]),
			f(self.rotation_ns[n]),
			f(self.f_sh_ns[n]),
			f(self.psi_avg_ns[n]),
			f(self.f_sky_loss_ns[n]),
		}
		if err := w.Write(record); err != nil {
			panic(err)
		}
	}
}
