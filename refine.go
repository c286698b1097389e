package minimizer

// Refine Splits the blocks of initial until no block can be split any further, and returns every
// partition produced along the way. The first entry is initial, the last is the fixpoint.
//
// Each pass scans the states of m in order and places every state into the first block whose
// representative is compatible with it under the previous partition, opening a new block
// otherwise. A pass that does not split anything ends the loop, so at most m.Len() passes run.
func Refine(m *Machine, initial Partition) []Partition {
	history := []Partition{initial.Clone()}
	prev := history[0]

	for pass := 0; pass < m.Len(); pass++ {
		next := refinePass(m, prev)
		if next.Equal(prev) {
			break
		}
		history = append(history, next)
		prev = next
	}
	return history
}

func refinePass(m *Machine, prev Partition) Partition {
	blockOf := prev.lookup(m.Len())
	next := make(Partition, 0, len(prev))

	for i, s := range m.states {
		assigned := false
		for _, b := range next {
			rep := m.Index(b.Representative())
			if m.compatible(i, rep, blockOf) {
				b.Add(s.Label, i)
				assigned = true
				break
			}
		}

		if !assigned {
			b := NewBlock(m.Len())
			b.Add(s.Label, i)
			next = append(next, b)
		}
	}
	return next
}

// compatible Returns true if the states at a and b cannot be told apart by one more input under the
// partition described by blockOf. Both states must already share a block, which in turn implies
// equal observable output; the output check is repeated so that a caller-supplied initial
// partition that mixes outputs can never merge distinguishable states.
func (m *Machine) compatible(a, b int, blockOf []int) bool {
	if blockOf[a] != blockOf[b] {
		return false
	}

	sa, sb := m.states[a], m.states[b]
	if m.outputKey(sa) != m.outputKey(sb) {
		return false
	}

	for col := range sa.Transitions {
		ta := m.Index(sa.Transitions[col].Next)
		tb := m.Index(sb.Transitions[col].Next)
		if ta == -1 || tb == -1 {
			if sa.Transitions[col].Next != sb.Transitions[col].Next {
				return false
			}
			continue
		}
		if blockOf[ta] != blockOf[tb] {
			return false
		}
	}
	return true
}
