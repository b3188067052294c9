package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

/*
多環芳香族炭化水素（PAH）の物性データ。
Antoine 定数 A, B, C は mmHg・degree C 基準の係数。
融点・沸点・分子量は表示用の参考値であり、蒸気圧の計算には使用しない。
*/
type CompoundRecord struct {
	a        float64 // Antoine 定数 A, -
	b        float64 // Antoine 定数 B, degree C
	c        float64 // Antoine 定数 C, degree C
	theta_mp float64 // 融点, degree C
	theta_bp float64 // 沸点（1 atm における参考値）, degree C
	m        float64 // 分子量, g/mol
}

/*
化合物の物性データの集合。
名前の並び順は登録順で固定とし、初期化後は変更しない。
*/
type Compounds struct {
	_names   []string
	_records map[string]*CompoundRecord
}

// 組み込みの化合物テーブルの1行
type _builtin_row struct {
	name string
	r    CompoundRecord
}

// 組み込みの化合物テーブル（14物質）
// Antoine 定数は mmHg・degree C 基準の文献値
var _builtin_table = []_builtin_row{
	{"Naphthalene", CompoundRecord{a: 7.01065, b: 1733.71, c: 202.700, theta_mp: 80.3, theta_bp: 218.0, m: 128.17}},
	{"1-Methylnaphthalene", CompoundRecord{a: 7.03592, b: 1826.95, c: 195.002, theta_mp: -30.4, theta_bp: 240.3, m: 142.20}},
	{"2-Methylnaphthalene", CompoundRecord{a: 7.06850, b: 1840.27, c: 198.395, theta_mp: 34.6, theta_bp: 241.1, m: 142.20}},
	{"Biphenyl", CompoundRecord{a: 7.24541, b: 1998.73, c: 202.733, theta_mp: 69.2, theta_bp: 255.0, m: 154.21}},
	{"Acenaphthylene", CompoundRecord{a: 7.06900, b: 1878.80, c: 185.000, theta_mp: 91.8, theta_bp: 280.0, m: 152.19}},
	{"Acenaphthene", CompoundRecord{a: 7.72819, b: 2534.84, c: 235.000, theta_mp: 93.4, theta_bp: 279.0, m: 154.21}},
	{"Fluorene", CompoundRecord{a: 7.44500, b: 2323.70, c: 219.000, theta_mp: 114.8, theta_bp: 295.0, m: 166.22}},
	{"Phenanthrene", CompoundRecord{a: 7.26970, b: 2329.54, c: 203.000, theta_mp: 99.2, theta_bp: 340.0, m: 178.23}},
	{"Anthracene", CompoundRecord{a: 7.38000, b: 2500.40, c: 205.000, theta_mp: 215.8, theta_bp: 339.9, m: 178.23}},
	{"Fluoranthene", CompoundRecord{a: 7.37400, b: 2646.00, c: 206.000, theta_mp: 110.8, theta_bp: 375.0, m: 202.25}},
	{"Pyrene", CompoundRecord{a: 7.32000, b: 2656.00, c: 199.000, theta_mp: 150.6, theta_bp: 404.0, m: 202.25}},
	{"Benz[a]anthracene", CompoundRecord{a: 7.42000, b: 2970.00, c: 190.000, theta_mp: 160.7, theta_bp: 438.0, m: 228.29}},
	{"Chrysene", CompoundRecord{a: 7.44000, b: 3020.00, c: 185.000, theta_mp: 253.8, theta_bp: 448.0, m: 228.29}},
	{"Benzo[a]pyrene", CompoundRecord{a: 7.50000, b: 3280.00, c: 180.000, theta_mp: 178.1, theta_bp: 495.0, m: 252.31}},
}

/*
組み込みの化合物テーブルから Compounds クラスを作成する。

    Returns:
        Compounds クラス
*/
func make_builtin_compounds() *Compounds {
	names := make([]string, 0, len(_builtin_table))
	records := make(map[string]*CompoundRecord, len(_builtin_table))

	for i := range _builtin_table {
		row := &_builtin_table[i]
		names = append(names, row.name)
		r := row.r
		records[row.name] = &r
	}

	return &Compounds{_names: names, _records: records}
}

// 化合物データCSVファイルの1行
type CompoundDataRow struct {
	Name         string  `csv:"name"`
	A            float64 `csv:"a"`
	B            float64 `csv:"b"`
	C            float64 `csv:"c"`
	MeltingPoint float64 `csv:"melting_point"`
	BoilingPoint float64 `csv:"boiling_point"`
	MolarMass    float64 `csv:"molar_mass"`
}

/*
化合物データCSVファイルを読み込み Compounds クラスを作成する。
化合物の追加はこのCSVファイルの行の追加のみで行い、ロジックの変更は不要。

    Args:
        file_path: 化合物データCSVファイルのパス

    Returns:
        Compounds クラス

    Notes:
        ファイル内の行の並び順がそのまま化合物の並び順になる。
*/
func make_compounds_from_csv(file_path string) *Compounds {

	// file is exist
	if _, err := os.Stat(file_path); os.IsNotExist(err) {
		panic(fmt.Sprintf("Error File %s is not exist.", file_path))
	}

	file, err := os.Open(file_path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	var pp []*CompoundDataRow

	if err := gocsv.UnmarshalFile(file, &pp); err != nil {
		panic(err)
	}

	if len(pp) == 0 {
		panic("Error Compound file should have at least one row.")
	}

	names := make([]string, 0, len(pp))
	records := make(map[string]*CompoundRecord, len(pp))

	for _, row := range pp {
		names = append(names, row.Name)
		records[row.Name] = &CompoundRecord{
			a:        row.A,
			b:        row.B,
			c:        row.C,
			theta_mp: row.MeltingPoint,
			theta_bp: row.BoilingPoint,
			m:        row.MolarMass,
		}
	}

	return &Compounds{_names: names, _records: records}
}

// 化合物名の一覧を登録順で取得する。
func (self *Compounds) get_names() []string {
	return self._names
}

// 登録されている化合物の数を取得する。
func (self *Compounds) number_of_compounds() int {
	return len(self._names)
}

/*
化合物名から物性データを取得する。

    Args:
        name: 化合物名

    Returns:
        CompoundRecord クラス

    Notes:
        存在しない名前が指定された場合はエラーを返す。
        検証済みの入力では発生しないはずであり、発生した場合は
        呼び出し側の統合上のバグを意味する。
*/
func (self *Compounds) get(name string) (*CompoundRecord, error) {
	r, ok := self._records[name]
	if !ok {
		return nil, fmt.Errorf("compound `%s` is not found", name)
	}
	return r, nil
}

/*
選択された化合物名を登録順に並べ替えて取得する。

    Args:
        selected_names: 選択された化合物名の集合

    Returns:
        登録順に並べた化合物名のリスト

    Notes:
        選択に未登録の名前が含まれる場合はエラーを返す。
*/
func (self *Compounds) filter_names(selected_names []string) ([]string, error) {
	set := make(map[string]bool, len(selected_names))
	for _, name := range selected_names {
		if _, err := self.get(name); err != nil {
			return nil, err
		}
		set[name] = true
	}

	names := make([]string, 0, len(set))
	for _, name := range self._names {
		if set[name] {
			names = append(names, name)
		}
	}

	return names, nil
}
