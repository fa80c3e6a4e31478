package connset

import "github.com/csa-go/csa/mask"

// Partition returns the slice of c assigned to process `selected` out
// of partitions, mirroring mask.Partition but over a connection set's
// mask while keeping c's value sets.
func Partition(c CSet, partitions []mask.Mask, selected int, seed string) CSet {
	return New(mask.Partition(c.Mask(), partitions, selected, seed), c.Values()...)
}
