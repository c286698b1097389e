package minimizer

import "fmt"

// Step Performs one transition from the state labelled label on input symbol.
// Returns the next state's label and the observed output: the output attached to the transition for
// Mealy machines, the output of the next state for Moore machines.
func (m *Machine) Step(label, symbol string) (next, output string, err error) {
	s := m.State(label)
	if s == nil {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownState, label)
	}

	col := m.column(symbol)
	if col == -1 {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}

	t := s.Transitions[col]
	if m.variant == Mealy {
		return t.Next, t.Output, nil
	}

	ns := m.State(t.Next)
	if ns == nil {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownState, t.Next)
	}
	return t.Next, ns.Output, nil
}

// Trace Feeds inputs to the machine starting at start and returns one output per input.
func (m *Machine) Trace(start string, inputs []string) ([]string, error) {
	outputs := make([]string, 0, len(inputs))
	state := start
	for _, in := range inputs {
		next, out, err := m.Step(state, in)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
		state = next
	}
	return outputs, nil
}

// Run Traces inputs from the initial state.
func Run(m *Machine, inputs []string) ([]string, error) {
	return m.Trace(m.initial, inputs)
}

func (m *Machine) column(symbol string) int {
	for i, v := range m.alphabet {
		if v == symbol {
			return i
		}
	}
	return -1
}
