// Package catalog: the builtin puzzle set bundled with the module.
package catalog

// Builtin returns the bundled puzzle set. Each call returns a fresh slice,
// so callers may modify the result freely.
func Builtin() []Puzzle {
	return []Puzzle{
		{
			Name: "easy-9x9-a",
			Givens: []string{
				"5.1.7...6",
				"6.....14.",
				".....4.2.",
				".5...92.8",
				"....8....",
				"2.85...7.",
				".3.1.....",
				".65.....2",
				"9...6.3.7",
			},
			Solution: []string{
				"541372896",
				"627958143",
				"389614725",
				"156749238",
				"473286951",
				"298531674",
				"834127569",
				"765893412",
				"912465387",
			},
			Repeats: 5,
		},
		{
			Name: "easy-9x9-b",
			Givens: []string{
				"...4....1",
				"...9.28..",
				"3......57",
				".7.3.....",
				"..2.4.1..",
				"..8.2..65",
				".....9..8",
				"....1.2..",
				".8.....3.",
			},
			Solution: []string{
				"859437621",
				"617952843",
				"324186957",
				"176395482",
				"532648179",
				"498721365",
				"243569718",
				"765813294",
				"981274536",
			},
			Repeats: 5,
		},
		{
			// seventeen givens, the fewest a proper 9×9 puzzle can carry
			Name: "sparse-9x9",
			Givens: []string{
				".......1.",
				"4........",
				".2.......",
				"....5.4.7",
				"..8...3..",
				"..1.9....",
				"3..4..2..",
				".5.1.....",
				"...8.6...",
			},
			Solution: []string{
				"693784512",
				"487512936",
				"125963874",
				"932651487",
				"568247391",
				"741398625",
				"319475268",
				"856129743",
				"274836159",
			},
			Repeats: 5,
		},
		{
			// propagation alone leaves 60 cells open; search has to work
			Name: "hard-9x9",
			Givens: []string{
				"..9...2..",
				".8.5...1.",
				"7.......6",
				"..6.9....",
				".5.8..3..",
				"4....7...",
				".....4..9",
				".3..1..8.",
				"...2..5..",
			},
			Solution: []string{
				"319468275",
				"682573914",
				"745921836",
				"876392451",
				"251846397",
				"493157628",
				"528734169",
				"934615782",
				"167289543",
			},
			Repeats: 3,
		},
		{
			Name:     "dozen-12x12",
			BoxRows:  3,
			BoxCols:  4,
			Alphabet: "123456789ABC",
			Givens: []string{
				"..1.6.2.A7..",
				"62.5B...1...",
				".8....C3B.62",
				"A97.2.6..B5.",
				".5.......37C",
				"3B.....7...9",
				"57B.4......1",
				"8......A.9..",
				".4..97...6..",
				".1C........B",
				"4......2.C..",
				"....5C..7126",
			},
			Solution: []string{
				"C31B6425A798",
				"62A5B97814C3",
				"7894A1C3B562",
				"A97C23618B54",
				"15468BA9237C",
				"3B28C5476A19",
				"57B9468C32A1",
				"8C61325A49B7",
				"243A971BC685",
				"91C27A36584B",
				"465718B29C3A",
				"BA835C947126",
			},
			Repeats: 3,
		},
		{
			// the two diagonal regions leave no legal placement anywhere
			Name: "diagonal-2x2",
			Size: 2,
			Regions: []string{
				"AB",
				"BA",
			},
			Repeats: 1,
		},
	}
}
