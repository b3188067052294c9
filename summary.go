package main

// カーソル温度における相の分類
type Phase string

// 相の分類の定数
const (
	PhaseLiquid Phase = "liquid" // 液相
	PhaseVapor  Phase = "vapor"  // 気相
)

/*
一覧表の1行。選択された化合物ごとに作成する。
蒸気圧・沸点は定義されない場合があるため、定義の有無とあわせて保持する。
*/
type SummaryRow struct {
	name             string  // 化合物名
	p_vp             float64 // カーソル温度における蒸気圧（表示単位）
	p_vp_defined     bool    // 蒸気圧が定義されるか否か
	theta_bp         float64 // 参照圧力における沸点, degree C
	theta_bp_defined bool    // 沸点が定義されるか否か
	phase            Phase   // カーソル温度における相
	theta_mp         float64 // 融点, degree C（参考値）
	m                float64 // 分子量, g/mol（参考値）
}

/*
選択された化合物の一覧表を作成する。

    Args:
        cs: Compounds クラス
        selected_names: 選択された化合物名の集合
        theta: カーソル温度, degree C
        p_ref: 参照圧力（表示単位）
        unit: 圧力の表示単位

    Returns:
        SummaryRow クラスのリスト（登録順）

    Notes:
        参照圧力は表示単位から mmHg へ換算してから沸点の計算に用いる。
        p_ref は正の値でなければならない。
        相の分類は、沸点が定義され theta >= 沸点 のとき気相、
        それ以外のとき液相とする。
        これは単一成分を仮定した簡易的な判定であり、混合物の効果や
        準安定状態は考慮しない。
*/
func make_summary(
	cs *Compounds,
	selected_names []string,
	theta float64,
	p_ref float64,
	unit PressureUnit,
) ([]*SummaryRow, error) {
	names, err := cs.filter_names(selected_names)
	if err != nil {
		return nil, err
	}

	// 参照圧力, mmHg
	p_ref_mmhg := convert_to_mmhg(p_ref, unit)

	rows := make([]*SummaryRow, 0, len(names))

	for _, name := range names {
		r, err := cs.get(name)
		if err != nil {
			return nil, err
		}

		// カーソル温度における蒸気圧, mmHg
		p_vp_mmhg, p_vp_defined := get_p_vp(r.a, r.b, r.c, theta)

		p_vp := 0.0
		if p_vp_defined {
			p_vp = convert_pressure(p_vp_mmhg, unit)
		}

		// 参照圧力における沸点, degree C
		theta_bp, theta_bp_defined := get_theta_bp(r.a, r.b, r.c, p_ref_mmhg)

		phase := PhaseLiquid
		if theta_bp_defined && theta >= theta_bp {
			phase = PhaseVapor
		}

		rows = append(rows, &SummaryRow{
			name:             name,
			p_vp:             p_vp,
			p_vp_defined:     p_vp_defined,
			theta_bp:         theta_bp,
			theta_bp_defined: theta_bp_defined,
			phase:            phase,
			theta_mp:         r.theta_mp,
			m:                r.m,
		})
	}

	return rows, nil
}

/*
参照圧力の水平ガイド線の値を取得する。

    Args:
        p_ref_mmhg: 参照圧力, mmHg
        unit: 圧力の表示単位

    Returns:
        表示単位で表された参照圧力
*/
func get_guide_line_value(p_ref_mmhg float64, unit PressureUnit) float64 {
	return convert_pressure(p_ref_mmhg, unit)
}
