package driver_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csa-go/csa/driver"
	"github.com/csa-go/csa/ival"
	"github.com/csa-go/csa/mask"
)

func TestRunPartitionConsistency(t *testing.T) {
	sources, err := ival.New(ival.Span(0, 9))
	require.NoError(t, err)
	targets, err := ival.New(ival.Span(0, 19))
	require.NoError(t, err)
	whole := mask.Cross(sources, targets).(mask.Finite)

	const numPartitions = 4
	partitions := make([]mask.Mask, numPartitions)
	for k := 0; k < numPartitions; k++ {
		lo, hi := 5*k, 5*k+4
		band, err := ival.New(ival.Span(lo, hi))
		require.NoError(t, err)
		partitions[k] = mask.Cross(ival.Full(), band)
	}

	var mu sync.Mutex
	var got []mask.Pair
	err = driver.Run(context.Background(), numPartitions, 2, func(_ context.Context, selected int) error {
		part := mask.Partition(whole, partitions, selected, "shared-seed").(mask.Finite)
		var local []mask.Pair
		for i, j := range mask.Pairs(part) {
			local = append(local, mask.Pair{I: i, J: j})
		}
		mu.Lock()
		got = append(got, local...)
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)

	var want []mask.Pair
	for i, j := range mask.Pairs(whole) {
		want = append(want, mask.Pair{I: i, J: j})
	}

	sort.Slice(got, func(a, b int) bool { return mask.Less(got[a], got[b]) })
	sort.Slice(want, func(a, b int) bool { return mask.Less(want[a], want[b]) })
	require.Equal(t, want, got, "partitions must cover the whole mask exactly once each")
}
