package minimizer

// FirstPartition Groups the states of m by what a single step of observation reveals about them:
// the state output for Moore machines, the transition outputs in alphabet order for Mealy machines.
// Blocks appear in order of first occurrence.
func FirstPartition(m *Machine) Partition {
	p := make(Partition, 0)
	byKey := make(map[string]int)

	for i, s := range m.states {
		key := m.outputKey(s)
		pos, ok := byKey[key]
		if !ok {
			pos = len(p)
			byKey[key] = pos
			p = append(p, NewBlock(m.Len()))
		}
		p[pos].Add(s.Label, i)
	}
	return p
}
