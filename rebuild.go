package minimizer

// MergedLabel Returns the label of the state a block collapses into: its members, in the order they
// were added, joined as "{m1,m2,...}".
func MergedLabel(b *Block) string {
	return b.String()
}

// Equivalences Maps every state label covered by p to the merged label of its block.
func Equivalences(p Partition) map[string]string {
	eq := make(map[string]string)
	for _, b := range p {
		merged := MergedLabel(b)
		for _, label := range b.Members() {
			eq[label] = merged
		}
	}
	return eq
}

// Rebuild Collapses every block of the last partition in history into a single state.
// Each merged state takes the transition row of its block's representative with next states
// relabelled; outputs are copied unchanged. The result has one state per block, in block order.
func Rebuild(m *Machine, history []Partition) *Machine {
	if len(history) == 0 {
		return m.Clone()
	}

	last := history[len(history)-1]
	eq := Equivalences(last)

	r := NewMachineV1(m.variant, eq[m.initial], m.alphabet, last.Len())
	for _, b := range last {
		rep := m.State(b.Representative())
		if rep == nil {
			continue
		}

		merged := &State{
			Label:       MergedLabel(b),
			Output:      rep.Output,
			Transitions: make([]Transition, len(rep.Transitions)),
		}
		for i, t := range rep.Transitions {
			next, ok := eq[t.Next]
			if !ok {
				next = t.Next
			}
			merged.Transitions[i] = Transition{Next: next, Output: t.Output}
		}
		r.AddState(merged)
	}
	return r
}
