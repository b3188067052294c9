package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

/*
計算結果（サンプルグリッドと一覧表）を保持し、CSVファイルとして保存する。
*/
type Recorder struct {
	_grid    *SampleGrid
	_summary []*SummaryRow
	_unit    PressureUnit
}

func NewRecorder(grid *SampleGrid, summary []*SummaryRow, unit PressureUnit) *Recorder {
	return &Recorder{
		_grid:    grid,
		_summary: summary,
		_unit:    unit,
	}
}

/*
蒸気圧曲線のサンプルグリッドをCSVファイルとして保存する。

    Args:
        output_data_dir: 出力フォルダのパス

    Notes:
        1列目は温度, degree C。2列目以降は化合物ごとの蒸気圧（表示単位）。
        未定義の点は空欄とする。
*/
func (self *Recorder) save_curve(output_data_dir string) {
	path := filepath.Join(output_data_dir, "curve.csv")
	log.Printf("Save vapor pressure curve to `%s`", path)

	names := self._grid.get_names()
	theta_ns := self._grid.get_theta_ns()

	stringData := make([][]string, 0, len(theta_ns)+1)

	header := make([]string, 0, len(names)+1)
	header = append(header, "temperature")
	header = append(header, names...)
	stringData = append(stringData, header)

	for n, theta := range theta_ns {
		row := make([]string, 0, len(names)+1)
		row = append(row, strconv.FormatFloat(theta, 'f', -1, 64))
		for i := range names {
			p, ok := self._grid.get_p(i, n)
			if ok {
				row = append(row, strconv.FormatFloat(p, 'f', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		stringData = append(stringData, row)
	}

	_write_csv(path, stringData)
}

/*
一覧表をCSVファイルとして保存する。

    Args:
        output_data_dir: 出力フォルダのパス

    Notes:
        未定義の蒸気圧・沸点は空欄とする。
*/
func (self *Recorder) save_summary(output_data_dir string) {
	path := filepath.Join(output_data_dir, "summary.csv")
	log.Printf("Save summary table to `%s`", path)

	stringData := make([][]string, 0, len(self._summary)+1)
	stringData = append(stringData, []string{
		"name",
		"vapor_pressure_" + string(self._unit),
		"boiling_point",
		"phase",
		"melting_point",
		"molar_mass",
	})

	for _, row := range self._summary {
		p_vp := ""
		if row.p_vp_defined {
			p_vp = strconv.FormatFloat(row.p_vp, 'f', -1, 64)
		}
		theta_bp := ""
		if row.theta_bp_defined {
			theta_bp = strconv.FormatFloat(row.theta_bp, 'f', -1, 64)
		}
		stringData = append(stringData, []string{
			row.name,
			p_vp,
			theta_bp,
			string(row.phase),
			strconv.FormatFloat(row.theta_mp, 'f', -1, 64),
			strconv.FormatFloat(row.m, 'f', -1, 64),
		})
	}

	_write_csv(path, stringData)
}

// 文字列の2次元スライスをCSVファイルに書き込む。
func _write_csv(path string, stringData [][]string) {
	file, err := os.Create(path)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	err = writer.WriteAll(stringData)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	writer.Flush()
}
