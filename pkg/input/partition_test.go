package input

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("path%d", i)
	}
	return items
}

func TestPartition(t *testing.T) {
	shards := Partition(makeItems(10), 3)
	require.Len(t, shards, 3)
	require.Len(t, shards[0], 4)
	require.Len(t, shards[1], 3)
	require.Len(t, shards[2], 3)
	require.Equal(t, []string{"path0", "path1", "path2", "path3"}, shards[0])
	require.Equal(t, []string{"path7", "path8", "path9"}, shards[2])
}

func TestPartition_Properties(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 100, 1001} {
		for _, parts := range []int{1, 2, 3, 4, 8, 16} {
			items := makeItems(n)
			shards := Partition(items, parts)
			require.Len(t, shards, parts)

			var joined []string
			limit := (n + parts - 1) / parts
			for _, shard := range shards {
				require.LessOrEqual(t, len(shard), limit)
				joined = append(joined, shard...)
			}
			if n == 0 {
				require.Empty(t, joined)
				continue
			}
			require.Equal(t, items, joined, "n=%d parts=%d", n, parts)
		}
	}
}

func TestPartition_NonPositiveParts(t *testing.T) {
	items := makeItems(5)
	for _, parts := range []int{0, -3} {
		shards := Partition(items, parts)
		require.Len(t, shards, 1)
		require.Equal(t, items, shards[0])
	}
}

func TestPartition_MorePartsThanItems(t *testing.T) {
	shards := Partition(makeItems(2), 4)
	require.Len(t, shards, 4)
	require.Len(t, shards[0], 1)
	require.Len(t, shards[1], 1)
	require.Empty(t, shards[2])
	require.Empty(t, shards[3])
}
