package minimizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestBuildMachine(t *testing.T) {
	t.Run("moore", func(t *testing.T) {
		m := BuildMachine(twoPairsMoore())
		assert.Equal(t, Moore, m.Variant())
		assert.Equal(t, "A", m.Initial())
		assert.Equal(t, []string{"A", "B", "C", "D"}, m.Labels())
		assert.Equal(t, &State{
			Label:       "A",
			Output:      "0",
			Transitions: []Transition{{Next: "B"}, {Next: "C"}},
		}, m.State("A"))
	})

	t.Run("mealy", func(t *testing.T) {
		m := BuildMachine(crossedMealy())
		assert.Equal(t, Mealy, m.Variant())
		assert.Equal(t, &State{
			Label:       "B",
			Transitions: []Transition{{"A", "y"}, {"B", "x"}},
		}, m.State("B"))
	})
}

func TestIsFullyFilled(t *testing.T) {
	tests := []struct {
		name  string
		table func() Table
		want  bool
	}{
		{"moore complete", twoPairsMoore, true},
		{"mealy complete", crossedMealy, true},
		{"no rows", func() Table { return Table{Variant: Moore, States: []string{"A"}} }, false},
		{"missing output column", func() Table {
			tb := twoPairsMoore()
			tb.Rows[2] = tb.Rows[2][:2]
			return tb
		}, false},
		{"empty moore output", func() Table {
			tb := twoPairsMoore()
			tb.Rows[1][2] = Cell{}
			return tb
		}, false},
		{"empty mealy output", func() Table {
			tb := crossedMealy()
			tb.Rows[0][1] = Cell{Next: "A"}
			return tb
		}, false},
		{"row missing", func() Table {
			tb := twoPairsMoore()
			tb.Rows = tb.Rows[:3]
			return tb
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFullyFilled(tt.table()))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Validate(twoPairsMoore()))
		assert.NoError(t, Validate(textbookMealy()))
	})

	tests := []struct {
		name   string
		mutate func(*Table)
		want   []error
	}{
		{"duplicate state", func(tb *Table) { tb.States[1] = "A" }, []error{ErrDuplicateLabel, ErrUnknownState}},
		{"invalid symbol", func(tb *Table) { tb.Alphabet[0] = "a b" }, []error{ErrInvalidSymbol}},
		{"missing initial", func(tb *Table) { tb.Initial = "Q" }, []error{ErrMissingInitial}},
		{"dangling reference", func(tb *Table) { tb.Rows[0][0].Next = "Q" }, []error{ErrUnknownState}},
		{"empty cell", func(tb *Table) { tb.Rows[3][1] = Cell{} }, []error{ErrEmptyCell}},
		{"row width", func(tb *Table) { tb.Rows[0] = tb.Rows[0][:1] }, []error{ErrRowWidth}},
		{"row count", func(tb *Table) { tb.Rows = tb.Rows[:2] }, []error{ErrRowCount}},
		{"several problems", func(tb *Table) {
			tb.Initial = ""
			tb.Rows[2][0].Next = "Z"
		}, []error{ErrMissingInitial, ErrUnknownState}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := twoPairsMoore()
			tt.mutate(&tb)
			err := Validate(tb)
			require.Error(t, err)
			assert.Len(t, multierr.Errors(err), len(tt.want))
			for _, want := range tt.want {
				assert.True(t, errors.Is(err, want), "want %v in %v", want, err)
			}
		})
	}
}

func TestValidSymbol(t *testing.T) {
	assert.True(t, ValidSymbol("q0"))
	assert.True(t, ValidSymbol("Ω_1"))
	assert.False(t, ValidSymbol(""))
	assert.False(t, ValidSymbol("a,b"))
	assert.False(t, ValidSymbol("{A}"))
}

func TestParseLabels(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"A,B,C", []string{"A", "B", "C"}},
		{",A,,B,", []string{"A", "B"}},
		{" q0 , q1 ", []string{"q0", "q1"}},
		{"", []string{}},
		{",,,", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLabels(tt.in))
		})
	}
}

func TestParseCell(t *testing.T) {
	assert.Equal(t, Cell{Next: "B"}, ParseCell("B"))
	assert.Equal(t, Cell{Next: "B", Output: "x"}, ParseCell(" B / x "))
	assert.Equal(t, Cell{Next: "B", Output: ""}, ParseCell("B/"))
}
