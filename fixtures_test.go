package minimizer

// Canned machines shared by the tests.

func mooreRow(output string, next ...string) []Cell {
	row := make([]Cell, 0, len(next)+1)
	for _, n := range next {
		row = append(row, Cell{Next: n})
	}
	return append(row, Cell{Output: output})
}

func mealyRow(cells ...string) []Cell {
	row := make([]Cell, 0, len(cells))
	for _, c := range cells {
		row = append(row, ParseCell(c))
	}
	return row
}

// twoPairsMoore A, B output 0 and C, D output 1; A and B merge, C and D merge.
func twoPairsMoore() Table {
	return Table{
		Variant:  Moore,
		States:   []string{"A", "B", "C", "D"},
		Initial:  "A",
		Alphabet: []string{"0", "1"},
		Rows: [][]Cell{
			mooreRow("0", "B", "C"),
			mooreRow("0", "A", "D"),
			mooreRow("1", "C", "C"),
			mooreRow("1", "D", "D"),
		},
	}
}

// twoPairsMooreWithOrphan twoPairsMoore plus E, which nothing points at.
func twoPairsMooreWithOrphan() Table {
	t := twoPairsMoore()
	t.States = append(t.States, "E")
	t.Rows = append(t.Rows, mooreRow("0", "E", "E"))
	return t
}

// crossedMealy A and B already differ in their outputs.
func crossedMealy() Table {
	return Table{
		Variant:  Mealy,
		States:   []string{"A", "B"},
		Initial:  "A",
		Alphabet: []string{"0", "1"},
		Rows: [][]Cell{
			mealyRow("B/x", "A/y"),
			mealyRow("A/y", "B/x"),
		},
	}
}

// chainMoore Six states on a line; only the last outputs 1, so every pass splits off one more
// state and refinement needs several passes.
func chainMoore() Table {
	return Table{
		Variant:  Moore,
		States:   []string{"S0", "S1", "S2", "S3", "S4", "S5"},
		Initial:  "S0",
		Alphabet: []string{"a"},
		Rows: [][]Cell{
			mooreRow("0", "S1"),
			mooreRow("0", "S2"),
			mooreRow("0", "S3"),
			mooreRow("0", "S4"),
			mooreRow("0", "S5"),
			mooreRow("1", "S5"),
		},
	}
}

// textbookMealy A Mealy machine with a redundant pair (C, E) and an unreachable state (F).
func textbookMealy() Table {
	return Table{
		Variant:  Mealy,
		States:   []string{"A", "B", "C", "D", "E", "F"},
		Initial:  "A",
		Alphabet: []string{"a", "b"},
		Rows: [][]Cell{
			mealyRow("B/0", "C/1"),
			mealyRow("D/1", "A/0"),
			mealyRow("E/0", "D/1"),
			mealyRow("A/1", "B/0"),
			mealyRow("C/0", "D/1"),
			mealyRow("A/1", "F/1"),
		},
	}
}

// sameTargetsMoore A and B share their successors but differ in output.
func sameTargetsMoore() Table {
	return Table{
		Variant:  Moore,
		States:   []string{"A", "B", "C"},
		Initial:  "A",
		Alphabet: []string{"0"},
		Rows: [][]Cell{
			mooreRow("0", "B"),
			mooreRow("1", "C"),
			mooreRow("0", "C"),
		},
	}
}
