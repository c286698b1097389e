package minimizer

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Block One equivalence class of a partition. Members keep the order in which they were added;
// the first member is the block's representative. Membership is also tracked as a bitset over the
// owning machine's state indices.
type Block struct {
	members []string
	set     *bitset.BitSet
}

// NewBlock Creates an empty block for a machine with numStates states.
func NewBlock(numStates int) *Block {
	return &Block{
		members: make([]string, 0, 1),
		set:     bitset.New(uint(numStates)),
	}
}

// Add Appends a member. index is the member's position in the owning machine.
func (b *Block) Add(label string, index int) {
	if b.set.Test(uint(index)) {
		return
	}
	b.set.Set(uint(index))
	b.members = append(b.members, label)
}

// Has Returns true if the state at index is a member of this block.
func (b *Block) Has(index int) bool {
	return index >= 0 && b.set.Test(uint(index))
}

// Members Returns member labels in insertion order. The slice must not be modified.
func (b *Block) Members() []string {
	return b.members
}

// Representative Returns the first member added to the block.
func (b *Block) Representative() string {
	if len(b.members) == 0 {
		return ""
	}
	return b.members[0]
}

func (b *Block) Size() int {
	return len(b.members)
}

// Equals Returns true if both blocks hold the same set of states, regardless of member order.
func (b *Block) Equals(other *Block) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.set.Equal(other.set)
}

func (b *Block) clone() *Block {
	return &Block{
		members: append([]string(nil), b.members...),
		set:     b.set.Clone(),
	}
}

func (b *Block) String() string {
	return "{" + strings.Join(b.members, ",") + "}"
}

// Partition An ordered list of disjoint blocks covering every state of a machine.
type Partition []*Block

// Len How many blocks this partition has.
func (p Partition) Len() int {
	return len(p)
}

// BlockOf Returns the position of the block holding the state at index, or -1.
func (p Partition) BlockOf(index int) int {
	for i, b := range p {
		if b.Has(index) {
			return i
		}
	}
	return -1
}

// Equal Compares two partitions block for block, in order.
func (p Partition) Equal(other Partition) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !p[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

// Clone Returns a deep copy so that later changes cannot reach a recorded partition.
func (p Partition) Clone() Partition {
	c := make(Partition, len(p))
	for i, b := range p {
		c[i] = b.clone()
	}
	return c
}

// String Renders the partition as "{A,B},{C,D}".
func (p Partition) String() string {
	parts := make([]string, len(p))
	for i, b := range p {
		parts[i] = b.String()
	}
	return strings.Join(parts, ",")
}

// lookup Returns, for every state index of m, the position of its block in p.
func (p Partition) lookup(numStates int) []int {
	blockOf := make([]int, numStates)
	for i := range blockOf {
		blockOf[i] = -1
	}
	for i, b := range p {
		for idx, ok := b.set.NextSet(0); ok; idx, ok = b.set.NextSet(idx + 1) {
			if int(idx) < numStates {
				blockOf[idx] = i
			}
		}
	}
	return blockOf
}
