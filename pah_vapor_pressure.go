package main

import (
	"flag"
	"log"
	"os"
	"strings"
)

/*
蒸気圧計算処理の実行

    Args:
        compound_data_path (str): 化合物データCSVファイルへのパス（空の場合は組み込みテーブルを使用）
        output_data_dir (str): 出力フォルダへのパス
        selected: 選択された化合物名（カンマ区切り、空の場合は全化合物）
        theta_min: 温度範囲の下限, degree C
        theta_max: 温度範囲の上限, degree C
        theta: カーソル温度, degree C
        p_ref: 参照圧力（表示単位）
        unit: 圧力の表示単位
*/
func run(
	compound_data_path string,
	output_data_dir string,
	selected string,
	theta_min float64,
	theta_max float64,
	theta float64,
	p_ref float64,
	unit PressureUnit,
) {

	// ---- 事前準備 ----

	// 出力ディレクトリの作成
	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		os.Mkdir(output_data_dir, 0755)
	}

	_, err := os.Stat(output_data_dir)
	if os.IsNotExist(err) {
		log.Fatalf("`%s` is not a directory", output_data_dir)
	}

	// 化合物データの読み込み
	var cs *Compounds
	if compound_data_path != "" {
		log.Printf("Load compound data from `%s`", compound_data_path)
		cs = make_compounds_from_csv(compound_data_path)
	} else {
		log.Printf("化合物の組み込みテーブルの読み込み開始")
		cs = make_builtin_compounds()
	}

	// 選択された化合物名
	var selected_names []string
	if selected == "" {
		selected_names = cs.get_names()
	} else {
		for _, name := range strings.Split(selected, ",") {
			selected_names = append(selected_names, strings.TrimSpace(name))
		}
	}

	// ---- 計算 ----

	// 蒸気圧曲線のサンプルグリッドの作成
	log.Printf("蒸気圧曲線の計算開始")
	grid, err := make_sample_grid(cs, selected_names, theta_min, theta_max, unit)
	if err != nil {
		log.Fatal(err)
	}

	// 一覧表の作成
	log.Printf("一覧表の計算開始")
	summary, err := make_summary(cs, selected_names, theta, p_ref, unit)
	if err != nil {
		log.Fatal(err)
	}

	// 参照圧力のガイド線の値（表示単位）
	p_ref_mmhg := convert_to_mmhg(p_ref, unit)
	log.Printf("Reference pressure guide line: %f %s", get_guide_line_value(p_ref_mmhg, unit), unit)

	// ---- 計算結果ファイルの保存 ----

	rec := NewRecorder(grid, summary, unit)
	rec.save_curve(output_data_dir)
	rec.save_summary(output_data_dir)
}

func main() {
	var compound_data string
	flag.StringVar(&compound_data, "input", "", "化合物データCSVファイル（省略時は組み込みテーブルを使用）")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "出力フォルダ")

	var selected string
	flag.StringVar(&selected, "compounds", "", "計算対象の化合物名をカンマ区切りで指定します。省略時は全化合物を対象とします。")

	var theta_min float64
	flag.Float64Var(&theta_min, "tmin", -80.0, "温度範囲の下限, degree C")

	var theta_max float64
	flag.Float64Var(&theta_max, "tmax", 600.0, "温度範囲の上限, degree C")

	var theta float64
	flag.Float64Var(&theta, "t", 25.0, "カーソル温度, degree C")

	var p_ref float64
	flag.Float64Var(&p_ref, "pref", 760.0, "参照圧力（表示単位で指定）")

	var unit string
	flag.StringVar(&unit, "unit", "mmHg", "圧力の表示単位（mmHg/Torr/Pa/atm/bar）")

	flag.Parse()

	if theta_min >= theta_max {
		log.Fatalf("tmin (%f) must be less than tmax (%f)", theta_min, theta_max)
	}

	if p_ref <= 0.0 {
		log.Fatalf("pref (%f) must be positive", p_ref)
	}

	run(
		compound_data,
		output_data_dir,
		selected,
		theta_min,
		theta_max,
		theta,
		p_ref,
		PressureUnit(unit),
	)
}
