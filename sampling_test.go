package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSamplingStep(t *testing.T) {
	tests := []struct {
		theta_min float64
		theta_max float64
		step      float64
	}{
		{-80.0, 600.0, 5.0},
		{0.0, 201.0, 5.0},
		{0.0, 200.0, 2.0},
		{0.0, 51.0, 2.0},
		{0.0, 50.0, 1.0},
		{0.0, 10.0, 1.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.step, get_sampling_step(tt.theta_min, tt.theta_max))
	}
}

// -80～600 degree C（幅 680 > 200、間隔 5）のとき floor(680/5)+1 = 137 点になる。
func TestMakeSampleGridCount(t *testing.T) {
	cs := make_builtin_compounds()

	grid, err := make_sample_grid(cs, []string{"Naphthalene"}, -80.0, 600.0, UnitMmHg)
	require.NoError(t, err)

	assert.Equal(t, 137, grid.number_of_data())

	theta_ns := grid.get_theta_ns()
	assert.Equal(t, -80.0, theta_ns[0])
	assert.Equal(t, 600.0, theta_ns[len(theta_ns)-1])
}

// 幅が間隔の整数倍でない場合、最後のサンプルは上限より小さくなる。
func TestMakeSampleGridUndershoot(t *testing.T) {
	cs := make_builtin_compounds()

	grid, err := make_sample_grid(cs, []string{"Naphthalene"}, 0.0, 7.5, UnitMmHg)
	require.NoError(t, err)

	assert.Equal(t, 8, grid.number_of_data())

	theta_ns := grid.get_theta_ns()
	assert.Equal(t, 7.0, theta_ns[len(theta_ns)-1])
}

// 化合物の並び順は選択の指定順ではなく登録順に従う。
func TestMakeSampleGridOrder(t *testing.T) {
	cs := make_builtin_compounds()

	grid, err := make_sample_grid(cs, []string{"Pyrene", "Naphthalene"}, 0.0, 100.0, UnitMmHg)
	require.NoError(t, err)

	assert.Equal(t, []string{"Naphthalene", "Pyrene"}, grid.get_names())
}

func TestMakeSampleGridNotFound(t *testing.T) {
	cs := make_builtin_compounds()

	_, err := make_sample_grid(cs, []string{"Benzene"}, 0.0, 100.0, UnitMmHg)
	assert.Error(t, err)
}

func TestMakeSampleGridPanicsOnInvalidRange(t *testing.T) {
	cs := make_builtin_compounds()

	assert.Panics(t, func() { make_sample_grid(cs, nil, 100.0, 100.0, UnitMmHg) })
	assert.Panics(t, func() { make_sample_grid(cs, nil, 200.0, 100.0, UnitMmHg) })
}

// 蒸気圧が定義されない点は数値として取り出せない。
func TestMakeSampleGridUndefinedSuppressed(t *testing.T) {
	cs := &Compounds{
		_names: []string{"X"},
		_records: map[string]*CompoundRecord{
			"X": {a: 7.0, b: 1700.0, c: 200.0},
		},
	}

	// -203～-193 degree C: -200 degree C で C + theta = 0 となる
	grid, err := make_sample_grid(cs, []string{"X"}, -203.0, -193.0, UnitMmHg)
	require.NoError(t, err)
	require.Equal(t, 11, grid.number_of_data())

	// theta = -202, -201: C + theta < 0 でオーバーフローし未定義
	_, ok := grid.get_p(0, 1)
	assert.False(t, ok)

	// theta = -200: 分母がゼロで未定義
	_, ok = grid.get_p(0, 3)
	assert.False(t, ok)

	// theta = -193: 定義される
	_, ok = grid.get_p(0, 10)
	assert.True(t, ok)
}

// グリッドの値には単位換算が適用される。
func TestMakeSampleGridUnitConversion(t *testing.T) {
	cs := make_builtin_compounds()

	grid_mmhg, err := make_sample_grid(cs, []string{"Naphthalene"}, 200.0, 240.0, UnitMmHg)
	require.NoError(t, err)
	grid_atm, err := make_sample_grid(cs, []string{"Naphthalene"}, 200.0, 240.0, UnitAtm)
	require.NoError(t, err)

	p_mmhg, ok := grid_mmhg.get_p(0, 0)
	require.True(t, ok)
	p_atm, ok := grid_atm.get_p(0, 0)
	require.True(t, ok)

	assert.InDelta(t, convert_pressure(p_mmhg, UnitAtm), p_atm, 1e-12)
}
