package main

import (
	"math"
)

/*
Antoine の式により蒸気圧を計算する。

    Args:
        a: Antoine 定数 A, -
        b: Antoine 定数 B, degree C
        c: Antoine 定数 C, degree C
        theta: 温度, degree C

    Returns:
        以下のタプル
            (1) 蒸気圧, mmHg
            (2) 値が定義されるか否か

    Notes:
        log10(P) = A - B / (C + theta)
        C + theta = 0 のとき分母がゼロとなり式は定義されない。
        また計算結果が有限値とならない場合も未定義として扱い、
        無限大や NaN をそのまま返すことはしない。
*/
func get_p_vp(a, b, c, theta float64) (float64, bool) {
	if c+theta == 0.0 {
		return 0.0, false
	}

	p_vp := math.Pow(10.0, a-b/(c+theta))

	if math.IsInf(p_vp, 0) || math.IsNaN(p_vp) {
		return 0.0, false
	}

	return p_vp, true
}

/*
Antoine の式を温度について解き、圧力 p における沸点を計算する。

    Args:
        a: Antoine 定数 A, -
        b: Antoine 定数 B, degree C
        c: Antoine 定数 C, degree C
        p: 圧力, mmHg

    Returns:
        以下のタプル
            (1) 沸点, degree C
            (2) 値が定義されるか否か

    Notes:
        theta_bp = B / (A - log10(p)) - C
        A - log10(p) <= 0 のとき、このパラメータでは圧力 p に対応する
        実数解が存在しない（モデルの適用範囲外）ため未定義とする。
        p は正の値でなければならない。p <= 0 は呼び出し側の契約違反。
*/
func get_theta_bp(a, b, c, p float64) (float64, bool) {
	if p <= 0.0 {
		panic("p must be positive")
	}

	denom := a - math.Log10(p)
	if denom <= 0.0 {
		return 0.0, false
	}

	return b/denom - c, true
}
