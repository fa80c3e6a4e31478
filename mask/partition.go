package mask

import "github.com/csa-go/csa/log"

// Partition returns the slice of m assigned to process `selected` out
// of the given partitions (partitions[selected] intersected with m),
// injecting the partition context into the State every later
// BeginIteration call receives so that partition-aware random masks
// (SampleN, FanIn) nested inside m can draw partition-consistent
// numbers. seed, if non-empty, is shared across every cooperating
// process so they all derive the same partition-selection draw.
func Partition(m Mask, partitions []Mask, selected int, seed string) Mask {
	sub := Intersect(partitions[selected], m)
	if f, ok := sub.(Finite); ok {
		low0, high0, low1, high1 := f.Bounds()
		csalog.Window(low0, high0, low1, high1, "partition ", selected, " of ", len(partitions), " seed=", seed)
	}
	return &maskPartition{
		sub: sub,
		state: State{
			Partitions:    partitions,
			Selected:      selected,
			Seed:          seed,
			HasSeed:       seed != "",
			HasPartitions: true,
		},
	}
}

type maskPartition struct {
	sub   Mask
	state State
}

func (m *maskPartition) BeginIteration(state State) Mask {
	merged := m.state
	merged.Partitions = m.state.Partitions
	return &maskPartition{sub: m.sub.BeginIteration(merged), state: m.state}
}

func (m *maskPartition) Bounds() (low0, high0, low1, high1 int) {
	f, ok := m.sub.(Finite)
	if !ok {
		return 0, 0, 0, 0
	}
	return f.Bounds()
}

func (m *maskPartition) BoundedIterate(low0, high0, low1, high1 int) func(yield func(i, j int) bool) {
	return m.sub.BoundedIterate(low0, high0, low1, high1)
}
