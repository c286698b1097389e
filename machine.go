package minimizer

import (
	"fmt"
	"strings"
)

// Variant Selects where a machine's output lives: on states (Moore) or on transitions (Mealy).
type Variant int

const (
	Moore Variant = iota
	Mealy
)

func (v Variant) String() string {
	switch v {
	case Moore:
		return "moore"
	case Mealy:
		return "mealy"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant Parses "moore" or "mealy" (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "moore":
		return Moore, nil
	case "mealy":
		return Mealy, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Transition One entry of a state's transition row. Output is only meaningful for Mealy machines.
type Transition struct {
	Next   string
	Output string
}

// State A labelled state. Transitions are stored in alphabet order; Output is only meaningful for
// Moore machines.
type State struct {
	Label       string
	Output      string
	Transitions []Transition
}

// Machine Represents a Moore or Mealy machine. States keep their insertion order, which is the order
// every partition and merged label is derived from. Use NewMachine and AddState to build one.
type Machine struct {
	variant  Variant
	initial  string
	alphabet []string

	// States in insertion order.
	states []*State

	// Label to position in states.
	index map[string]int
}

func NewMachine(variant Variant, initial string, alphabet []string) *Machine {
	return NewMachineV1(variant, initial, alphabet, 2)
}

func NewMachineV1(variant Variant, initial string, alphabet []string, numStates int) *Machine {
	return &Machine{
		variant:  variant,
		initial:  initial,
		alphabet: append([]string(nil), alphabet...),
		states:   make([]*State, 0, numStates),
		index:    make(map[string]int, numStates),
	}
}

// AddState Appends a state. A label that is already present replaces the earlier state in place,
// keeping its position.
func (m *Machine) AddState(s *State) {
	if i, ok := m.index[s.Label]; ok {
		m.states[i] = s
		return
	}
	m.index[s.Label] = len(m.states)
	m.states = append(m.states, s)
}

func (m *Machine) Variant() Variant {
	return m.variant
}

// Initial Returns the label of the initial state.
func (m *Machine) Initial() string {
	return m.initial
}

// Alphabet Returns the input alphabet in column order.
func (m *Machine) Alphabet() []string {
	return m.alphabet
}

// Len How many states this machine has.
func (m *Machine) Len() int {
	return len(m.states)
}

// State Returns the state with the given label, or nil.
func (m *Machine) State(label string) *State {
	i, ok := m.index[label]
	if !ok {
		return nil
	}
	return m.states[i]
}

// Index Returns the insertion position of label, or -1.
func (m *Machine) Index(label string) int {
	i, ok := m.index[label]
	if !ok {
		return -1
	}
	return i
}

// States Returns the states in insertion order. The slice must not be modified.
func (m *Machine) States() []*State {
	return m.states
}

// Labels Returns the state labels in insertion order.
func (m *Machine) Labels() []string {
	labels := make([]string, len(m.states))
	for i, s := range m.states {
		labels[i] = s.Label
	}
	return labels
}

// Clone Returns a deep copy of the machine.
func (m *Machine) Clone() *Machine {
	c := NewMachineV1(m.variant, m.initial, m.alphabet, len(m.states))
	for _, s := range m.states {
		c.AddState(s.clone())
	}
	return c
}

func (s *State) clone() *State {
	return &State{
		Label:       s.Label,
		Output:      s.Output,
		Transitions: append([]Transition(nil), s.Transitions...),
	}
}

// outputKey Returns what one step of observation reveals about a state: its own output for Moore
// machines, the outputs of every transition in alphabet order for Mealy machines.
func (m *Machine) outputKey(s *State) string {
	if m.variant == Moore {
		return s.Output
	}

	// Join with a separator so that ("a","bc") and ("ab","c") stay distinct.
	var sb strings.Builder
	for i, t := range s.Transitions {
		if i > 0 {
			sb.WriteByte(0x1f)
		}
		sb.WriteString(t.Output)
	}
	return sb.String()
}
