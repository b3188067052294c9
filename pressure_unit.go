package main

// 圧力の表示単位
type PressureUnit string

// 圧力の表示単位の定数
const (
	UnitMmHg PressureUnit = "mmHg" // 水銀柱ミリメートル
	UnitTorr PressureUnit = "Torr" // トル（mmHg と数値的に同一）
	UnitPa   PressureUnit = "Pa"   // パスカル
	UnitAtm  PressureUnit = "atm"  // 標準大気圧
	UnitBar  PressureUnit = "bar"  // バール
)

/*
mmHg で表された圧力を表示単位へ換算する係数を取得する。

    Returns:
        換算係数, -

    Notes:
        本モデルの内部単位は mmHg とし、各単位への換算は固定の係数を乗じる。
        1 mmHg = 133.322368 Pa
        760 mmHg = 1 atm
*/
func (u PressureUnit) get_factor() float64 {
	switch u {
	case UnitMmHg:
		return 1.0
	case UnitTorr:
		return 1.0
	case UnitPa:
		return 133.322368
	case UnitAtm:
		return 1.0 / 760.0
	case UnitBar:
		return 0.00133322368
	default:
		panic("invalid pressure unit")
	}
}

/*
mmHg で表された圧力を表示単位の値へ換算する。

    Args:
        p_mmhg: 圧力, mmHg
        unit: 表示単位

    Returns:
        表示単位で表された圧力
*/
func convert_pressure(p_mmhg float64, unit PressureUnit) float64 {
	return p_mmhg * unit.get_factor()
}

/*
表示単位で表された圧力を mmHg の値へ換算する。

    Args:
        p: 表示単位で表された圧力
        unit: 表示単位

    Returns:
        圧力, mmHg
*/
func convert_to_mmhg(p float64, unit PressureUnit) float64 {
	return p / unit.get_factor()
}
