package minimizer

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/multierr"
)

// Cell One entry of a transition table. Next-state cells set Next (and Output for Mealy machines);
// the trailing output column of a Moore row sets Output only.
type Cell struct {
	Next   string
	Output string
}

// Table The raw tabular description of a machine, one row per state in States order.
// Moore rows hold len(Alphabet) next-state cells followed by one output cell; Mealy rows hold
// len(Alphabet) cells carrying both next state and output.
type Table struct {
	Variant  Variant
	States   []string
	Initial  string
	Alphabet []string
	Rows     [][]Cell
}

// width Returns the number of cells every row must hold.
func (t Table) width() int {
	if t.Variant == Moore {
		return len(t.Alphabet) + 1
	}
	return len(t.Alphabet)
}

// BuildMachine Decodes t into a Machine. t is trusted to be fully filled and well formed.
func BuildMachine(t Table) *Machine {
	m := NewMachineV1(t.Variant, t.Initial, t.Alphabet, len(t.States))

	for i, label := range t.States {
		row := t.Rows[i]
		s := &State{
			Label:       label,
			Transitions: make([]Transition, len(t.Alphabet)),
		}
		for j := range t.Alphabet {
			s.Transitions[j] = Transition{Next: row[j].Next}
			if t.Variant == Mealy {
				s.Transitions[j].Output = row[j].Output
			}
		}
		if t.Variant == Moore {
			// The state output is stored in the last column.
			s.Output = row[len(t.Alphabet)].Output
		}
		m.AddState(s)
	}
	return m
}

// IsFullyFilled Returns true if t has a row per state and every cell of every row is filled in.
func IsFullyFilled(t Table) bool {
	if len(t.Rows) == 0 || len(t.Rows) != len(t.States) {
		return false
	}

	width := t.width()
	for _, row := range t.Rows {
		if len(row) != width {
			return false
		}
		for j, c := range row {
			if !cellFilled(t, j, c) {
				return false
			}
		}
	}
	return true
}

func cellFilled(t Table, col int, c Cell) bool {
	switch {
	case t.Variant == Moore && col == len(t.Alphabet):
		return c.Output != ""
	case t.Variant == Moore:
		return c.Next != ""
	default:
		return c.Next != "" && c.Output != ""
	}
}

// Validate Checks everything Minimize takes for granted and reports every problem found:
// label and symbol syntax, duplicates, the initial state, row shape, empty cells and next states
// that do not name a declared state.
func Validate(t Table) error {
	var err error

	err = multierr.Append(err, validateLabels("state", t.States))
	err = multierr.Append(err, validateLabels("input symbol", t.Alphabet))

	declared := make(map[string]struct{}, len(t.States))
	for _, s := range t.States {
		declared[s] = struct{}{}
	}

	if _, ok := declared[t.Initial]; !ok {
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrMissingInitial, t.Initial))
	}

	if len(t.Rows) != len(t.States) {
		err = multierr.Append(err, fmt.Errorf("%w: %d rows for %d states", ErrRowCount, len(t.Rows), len(t.States)))
		return err
	}

	width := t.width()
	for i, row := range t.Rows {
		if len(row) != width {
			err = multierr.Append(err, fmt.Errorf("%w: state %q has %d cells, want %d", ErrRowWidth, t.States[i], len(row), width))
			continue
		}
		for j, c := range row {
			if !cellFilled(t, j, c) {
				err = multierr.Append(err, fmt.Errorf("%w: state %q column %d", ErrEmptyCell, t.States[i], j))
				continue
			}
			if c.Next == "" || (t.Variant == Moore && j == len(t.Alphabet)) {
				continue
			}
			if _, ok := declared[c.Next]; !ok {
				err = multierr.Append(err, fmt.Errorf("%w: state %q on %q goes to %q", ErrUnknownState, t.States[i], t.Alphabet[j], c.Next))
			}
		}
	}
	return err
}

func validateLabels(kind string, labels []string) error {
	var err error
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if !ValidSymbol(l) {
			err = multierr.Append(err, fmt.Errorf("%w: %s %q", ErrInvalidSymbol, kind, l))
			continue
		}
		if _, ok := seen[l]; ok {
			err = multierr.Append(err, fmt.Errorf("%w: %s %q", ErrDuplicateLabel, kind, l))
			continue
		}
		seen[l] = struct{}{}
	}
	return err
}

// ValidSymbol Returns true if s is a non-empty run of letters, digits and underscores.
func ValidSymbol(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// ParseLabels Splits a comma separated list such as "A,B,,C," into labels, dropping blanks left by
// leading, repeated or trailing commas.
func ParseLabels(s string) []string {
	labels := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		labels = append(labels, part)
	}
	return labels
}

// ParseCell Parses the text form of a cell: "B" for a next state, "B/x" for a next state with output.
func ParseCell(s string) Cell {
	next, out, found := strings.Cut(strings.TrimSpace(s), "/")
	if !found {
		return Cell{Next: next}
	}
	return Cell{Next: strings.TrimSpace(next), Output: strings.TrimSpace(out)}
}
