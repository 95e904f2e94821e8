package input

// Partition splits items into parts contiguous shards. Every shard gets
// len/parts items and the first len%parts shards get one more, so shard
// sizes differ by at most one and concatenating the shards gives items back.
// Shards may be empty when there are fewer items than parts.
func Partition(items []string, parts int) [][]string {
	if parts <= 0 {
		parts = 1
	}
	size, rem := len(items)/parts, len(items)%parts
	shards := make([][]string, 0, parts)
	start := 0
	for i := 0; i < parts; i++ {
		end := start + size
		if i < rem {
			end++
		}
		shards = append(shards, items[start:end:end])
		start = end
	}
	return shards
}
