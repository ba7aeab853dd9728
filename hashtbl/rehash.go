package hashtbl

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
	"go.uber.org/zap"

	"hashtbl_code/chain"
	"hashtbl_code/primes"
)

// growSize is the bucket count after growing from n buckets.
func growSize(n uint64) uint64 {
	return primes.AtLeast(std.SumAssumeNoOverflow(n, n))
}

// rehash moves every entry into a larger bucket array. The new array and every
// new bucket index are computed before any entry moves, so a failing
// allocation or a panicking hash function leaves the table as it was.
func (t *Table[K, V]) rehash() {
	old := t.buckets
	n := growSize(uint64(len(old)))
	next := make([]chain.List[K, V], n)

	idx := make([]uint64, 0, t.count)
	for i := range old {
		old[i].Range(func(e *chain.Entry[K, V]) bool {
			idx = append(idx, bucketIdx(t.hash(e.Key), n))
			return true
		})
	}
	primitive.Assert(uint64(len(idx)) == t.count)

	// pops visit entries in the same order Range did
	var moved uint64
	for i := range old {
		for {
			e, ok := old[i].Pop()
			if !ok {
				break
			}
			next[idx[moved]].Push(e)
			moved++
		}
	}
	primitive.Assert(moved == t.count)

	t.buckets = next
	t.checkBuckets()
	t.log.Debug("rehashed table",
		zap.Int("old_buckets", len(old)),
		zap.Uint64("new_buckets", n),
		zap.Uint64("size", t.count))
}
