// Package machinefile reads machine descriptions written in YAML:
//
//	variant: moore
//	initial: A
//	states: A,B,C,D
//	alphabet: [0, 1]
//	rows:
//	  - [B, C, 0]   # next state on 0, next state on 1, output
//	  - [A, D, 0]
//	  - [C, C, 1]
//	  - [D, D, 1]
//
// Mealy rows hold one "next/output" cell per input symbol. States and alphabet may be written as a
// YAML list or as a comma separated string.
package machinefile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/geange/minimizer"
)

var ErrNoRows = errors.New("machine description has no rows")

// Description The YAML document.
type Description struct {
	Variant  string     `yaml:"variant"`
	Initial  string     `yaml:"initial"`
	States   LabelList  `yaml:"states"`
	Alphabet LabelList  `yaml:"alphabet"`
	Rows     [][]string `yaml:"rows"`
}

// LabelList Decodes from either a sequence or a comma separated scalar.
type LabelList []string

func (l *LabelList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = minimizer.ParseLabels(value.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	return fmt.Errorf("line %d: labels must be a list or a comma separated string", value.Line)
}

// Load Reads and decodes the file at path.
func Load(path string) (minimizer.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return minimizer.Table{}, fmt.Errorf("read machine: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return minimizer.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse Decodes a YAML machine description into a table. The table is not validated.
func Parse(data []byte) (minimizer.Table, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return minimizer.Table{}, fmt.Errorf("parse machine: %w", err)
	}
	return d.Table()
}

// Table Converts the description into a table.
func (d Description) Table() (minimizer.Table, error) {
	variant, err := minimizer.ParseVariant(d.Variant)
	if err != nil {
		return minimizer.Table{}, err
	}
	if len(d.Rows) == 0 {
		return minimizer.Table{}, ErrNoRows
	}

	t := minimizer.Table{
		Variant:  variant,
		States:   []string(d.States),
		Initial:  d.Initial,
		Alphabet: []string(d.Alphabet),
		Rows:     make([][]minimizer.Cell, len(d.Rows)),
	}
	for i, row := range d.Rows {
		cells := make([]minimizer.Cell, len(row))
		for j, text := range row {
			if variant == minimizer.Moore && j == len(t.Alphabet) {
				cells[j] = minimizer.Cell{Output: text}
				continue
			}
			cells[j] = minimizer.ParseCell(text)
		}
		t.Rows[i] = cells
	}
	return t, nil
}
