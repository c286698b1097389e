// Package render prints minimization results as a text table, YAML or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/geange/minimizer"
)

// Document The serialisable view of a result.
type Document struct {
	Variant       string     `yaml:"variant" json:"variant"`
	Initial       string     `yaml:"initial" json:"initial"`
	Alphabet      []string   `yaml:"alphabet" json:"alphabet"`
	States        []StateDoc `yaml:"states" json:"states"`
	Partitions    []string   `yaml:"partitions" json:"partitions"`
	RemovedStates []string   `yaml:"removed_states" json:"removed_states"`
}

type StateDoc struct {
	Label       string   `yaml:"label" json:"label"`
	Output      string   `yaml:"output,omitempty" json:"output,omitempty"`
	Transitions []string `yaml:"transitions" json:"transitions"`
}

// NewDocument Flattens res. Mealy transitions are written "next/output".
func NewDocument(res *minimizer.Result) Document {
	m := res.Machine
	doc := Document{
		Variant:       m.Variant().String(),
		Initial:       m.Initial(),
		Alphabet:      m.Alphabet(),
		States:        make([]StateDoc, 0, m.Len()),
		Partitions:    make([]string, 0, len(res.Partitions)),
		RemovedStates: append([]string{}, res.RemovedStates.Removed...),
	}
	for _, s := range m.States() {
		doc.States = append(doc.States, StateDoc{
			Label:       s.Label,
			Output:      s.Output,
			Transitions: cells(m.Variant(), s),
		})
	}
	for _, p := range res.Partitions {
		doc.Partitions = append(doc.Partitions, p.String())
	}
	return doc
}

func cells(v minimizer.Variant, s *minimizer.State) []string {
	out := make([]string, len(s.Transitions))
	for i, t := range s.Transitions {
		if v == minimizer.Mealy {
			out[i] = t.Next + "/" + t.Output
		} else {
			out[i] = t.Next
		}
	}
	return out
}

// Write Prints res to w in format (text, yaml or json).
func Write(w io.Writer, format string, res *minimizer.Result) error {
	switch format {
	case "", "text":
		return Text(w, res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(res)); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewDocument(res))
	}
	return fmt.Errorf("unsupported format %q", format)
}

// Text Prints the removed-state report, the partition history and the minimized transition table.
// The initial state is marked with "->".
func Text(w io.Writer, res *minimizer.Result) error {
	m := res.Machine

	if _, err := fmt.Fprintf(w, "Removed states: %s\n\n", res.RemovedStates); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", minimizer.FormatHistory(res.Partitions)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := append([]string{"", "State"}, m.Alphabet()...)
	if m.Variant() == minimizer.Moore {
		header = append(header, "Output")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, s := range m.States() {
		marker := ""
		if s.Label == m.Initial() {
			marker = "->"
		}
		row := append([]string{marker, s.Label}, cells(m.Variant(), s)...)
		if m.Variant() == minimizer.Moore {
			row = append(row, s.Output)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
