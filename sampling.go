package main

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

/*
温度範囲の幅からサンプリング間隔を求める。

    Args:
        theta_min: 温度範囲の下限, degree C
        theta_max: 温度範囲の上限, degree C

    Returns:
        サンプリング間隔, degree C

    Notes:
        幅 > 200 のとき 5
        幅 > 50 のとき 2
        それ以外のとき 1
        曲線の滑らかさと点数のバランスを取るための3段階のポリシーであり、
        意図的な設計値である。
*/
func get_sampling_step(theta_min, theta_max float64) float64 {
	width := theta_max - theta_min

	if width > 200.0 {
		return 5.0
	} else if width > 50.0 {
		return 2.0
	} else {
		return 1.0
	}
}

/*
蒸気圧曲線のサンプルグリッド。
入力（選択・温度範囲・単位）が変わるたびに作り直す使い捨てのデータであり、
呼び出しをまたいで保持しない。
*/
type SampleGrid struct {
	_names    []string     // 選択された化合物名（登録順）, [i]
	_theta_ns []float64    // 温度, degree C, [n]
	_p_is_ns  *mat.Dense   // 化合物 i のステップ n における蒸気圧（表示単位）, [i, n]
	_unit     PressureUnit // 圧力の表示単位
}

/*
選択された化合物の蒸気圧曲線のサンプルグリッドを作成する。

    Args:
        cs: Compounds クラス
        selected_names: 選択された化合物名の集合
        theta_min: 温度範囲の下限, degree C
        theta_max: 温度範囲の上限, degree C
        unit: 圧力の表示単位

    Returns:
        SampleGrid クラス

    Notes:
        theta_min < theta_max でなければならない。違反は呼び出し側の契約違反。
        サンプルは theta_min から間隔刻みで theta_max 以下まで生成する。
        幅が間隔の整数倍でない場合、最後のサンプルは theta_max より
        小さくなる（端点の一致よりも等間隔の刻みを優先する）。
        蒸気圧が定義されない点は行列上は NaN とし、get_p を通してのみ
        参照させる。
*/
func make_sample_grid(
	cs *Compounds,
	selected_names []string,
	theta_min float64,
	theta_max float64,
	unit PressureUnit,
) (*SampleGrid, error) {
	if theta_min >= theta_max {
		panic("theta_min must be less than theta_max")
	}

	names, err := cs.filter_names(selected_names)
	if err != nil {
		return nil, err
	}

	step := get_sampling_step(theta_min, theta_max)

	// サンプル数
	n_step := int(math.Floor((theta_max-theta_min)/step)) + 1

	// 温度, degree C, [n]
	theta_ns := make([]float64, n_step)
	for n := 0; n < n_step; n++ {
		theta_ns[n] = theta_min + step*float64(n)
	}

	// 化合物 i のステップ n における蒸気圧（表示単位）, [i, n]
	// mat.NewDense は 0 行を許容しないため、選択が空の場合はダミーの1行とする。
	n_row := len(names)
	if n_row == 0 {
		n_row = 1
	}
	p_is_ns := mat.NewDense(n_row, n_step, nil)

	for i, name := range names {
		r, err := cs.get(name)
		if err != nil {
			return nil, err
		}

		for n, theta := range theta_ns {
			p_mmhg, ok := get_p_vp(r.a, r.b, r.c, theta)
			if ok {
				p_is_ns.Set(i, n, convert_pressure(p_mmhg, unit))
			} else {
				p_is_ns.Set(i, n, math.NaN())
			}
		}
	}

	return &SampleGrid{
		_names:    names,
		_theta_ns: theta_ns,
		_p_is_ns:  p_is_ns,
		_unit:     unit,
	}, nil
}

// サンプル点の数を取得する。
func (self *SampleGrid) number_of_data() int {
	return len(self._theta_ns)
}

// 化合物名の一覧を登録順で取得する。
func (self *SampleGrid) get_names() []string {
	return self._names
}

// 温度の一覧を取得する。, degree C, [n]
func (self *SampleGrid) get_theta_ns() []float64 {
	return self._theta_ns
}

// 圧力の表示単位を取得する。
func (self *SampleGrid) get_unit() PressureUnit {
	return self._unit
}

/*
化合物 i のステップ n における蒸気圧を取得する。

    Args:
        i: 化合物の番号
        n: ステップの番号

    Returns:
        以下のタプル
            (1) 蒸気圧（表示単位）
            (2) 値が定義されるか否か

    Notes:
        未定義の点を数値として描画させないため、定義の有無とあわせて返す。
*/
func (self *SampleGrid) get_p(i int, n int) (float64, bool) {
	p := self._p_is_ns.At(i, n)
	if math.IsNaN(p) {
		return 0.0, false
	}
	return p, true
}
