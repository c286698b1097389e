package minimizer

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const noStateRemoved = "No state was removed"

// Report Lists the states dropped by RemoveInaccessibleStates, in their original order.
type Report struct {
	Removed []string
}

// Empty Returns true if no state was removed.
func (r Report) Empty() bool {
	return len(r.Removed) == 0
}

// String Renders the report as "[ E,F ]", or "No state was removed".
func (r Report) String() string {
	if r.Empty() {
		return noStateRemoved
	}
	return "[ " + strings.Join(r.Removed, ",") + " ]"
}

// RemoveInaccessibleStates Returns a copy of m without the states that cannot be reached from the
// initial state, and a report naming the removed ones. m itself is left untouched.
// The initial state must be a state of m.
func RemoveInaccessibleStates(m *Machine) (*Machine, Report) {
	seen := accessibleStates(m)

	var report Report
	if seen.Count() == uint(m.Len()) {
		return m.Clone(), report
	}

	kept := NewMachineV1(m.variant, m.initial, m.alphabet, int(seen.Count()))
	for i, s := range m.states {
		if seen.Test(uint(i)) {
			kept.AddState(s.clone())
		} else {
			report.Removed = append(report.Removed, s.Label)
		}
	}
	return kept, report
}

// accessibleStates Walks the transition graph depth-first from the initial state.
func accessibleStates(m *Machine) *bitset.BitSet {
	seen := bitset.New(uint(m.Len()))

	start := m.Index(m.initial)
	if start == -1 {
		return seen
	}

	stack := make([]int, 0, m.Len())
	stack = append(stack, start)
	seen.Set(uint(start))

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, t := range m.states[state].Transitions {
			dest := m.Index(t.Next)
			if dest == -1 {
				continue
			}
			if !seen.Test(uint(dest)) {
				seen.Set(uint(dest))
				stack = append(stack, dest)
			}
		}
	}
	return seen
}
