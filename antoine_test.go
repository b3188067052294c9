package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Naphthalene の Antoine 定数
const (
	naphA = 7.01065
	naphB = 1733.71
	naphC = 202.700
)

// 融点（80 degree C）における蒸気圧は沸点（218 degree C）における蒸気圧より
// 十分小さいこと、および 218 degree C における蒸気圧が標準大気圧
// （約 760 mmHg）に近いことを確認する。
func TestGetPVpNaphthalene(t *testing.T) {
	p80, ok := get_p_vp(naphA, naphB, naphC, 80.0)
	require.True(t, ok)

	p218, ok := get_p_vp(naphA, naphB, naphC, 218.0)
	require.True(t, ok)

	assert.Less(t, p80, p218/10.0)
	assert.InDelta(t, 760.0, p218, 25.0)
}

// 往復則: theta_bp(p_vp(theta)) = theta
func TestGetThetaBpRoundTrip(t *testing.T) {
	cs := make_builtin_compounds()

	for _, name := range cs.get_names() {
		r, err := cs.get(name)
		require.NoError(t, err)

		for _, theta := range []float64{0.0, 25.0, 100.0, 200.0, 300.0} {
			p, ok := get_p_vp(r.a, r.b, r.c, theta)
			require.True(t, ok, "%s at %f degree C", name, theta)

			theta_bp, ok := get_theta_bp(r.a, r.b, r.c, p)
			require.True(t, ok, "%s at %f degree C", name, theta)
			assert.InDelta(t, theta, theta_bp, 1e-8, "%s at %f degree C", name, theta)
		}
	}
}

// C + theta = 0 のとき蒸気圧は定義されない。
func TestGetPVpSingularDenominator(t *testing.T) {
	_, ok := get_p_vp(7.0, 1700.0, 200.0, -200.0)
	assert.False(t, ok)
}

// 計算結果が有限値とならない場合も未定義として扱う。
func TestGetPVpNonFinite(t *testing.T) {
	// C + theta が負の微小量のとき 10^x がオーバーフローする
	_, ok := get_p_vp(7.0, 1700.0, 200.0, -200.001)
	assert.False(t, ok)
}

// A - log10(p) <= 0 のとき沸点は定義されない。
func TestGetThetaBpUndefined(t *testing.T) {
	_, ok := get_theta_bp(7.0, 1700.0, 200.0, 1.0e8)
	assert.False(t, ok)

	_, ok = get_theta_bp(7.0, 1700.0, 200.0, 1.0e7)
	assert.False(t, ok)
}

func TestGetThetaBpPanicsOnNonPositivePressure(t *testing.T) {
	assert.Panics(t, func() { get_theta_bp(7.0, 1700.0, 200.0, 0.0) })
	assert.Panics(t, func() { get_theta_bp(7.0, 1700.0, 200.0, -760.0) })
}
