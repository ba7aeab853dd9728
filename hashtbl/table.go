// Package hashtbl implements a generic hash table with separate chaining.
//
// Each bucket is a chain of entries. When an insert pushes the load factor
// (entries per bucket) above the table's maximum, the bucket count is doubled
// and rounded up to a prime, and every entry is moved to its new bucket.
package hashtbl

import (
	"github.com/cockroachdb/errors"
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
	"go.uber.org/zap"

	"hashtbl_code/chain"
	"hashtbl_code/keyhash"
	"hashtbl_code/primes"
)

// ErrKeyNotFound is returned by At when the key is not in the table.
var ErrKeyNotFound = errors.New("key not found")

// Pair is a key/value pair used to build or assign a table.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// A Table maps keys to values. Keys are hashed with the table's hash function
// and compared with its equality function; the two must agree, so that equal
// keys hash equally.
//
// Pointers returned by At and Index are valid until the next insert of a new
// key, Erase, Clear, or assignment into the table.
//
// A Table is not safe for concurrent use. Tables must be created with New,
// NewFunc, or one of the FromPairs constructors.
type Table[K, V any] struct {
	buckets       []chain.List[K, V]
	count         uint64
	minBuckets    uint64
	maxLoadFactor float64

	hash  func(K) uint64
	equal func(K, K) bool
	log   *zap.Logger
}

// New creates a table for a comparable key type using the default hash and ==.
func New[K comparable, V any](opts ...Option) *Table[K, V] {
	return NewFunc[K, V](keyhash.Of[K], keyhash.Equal[K], opts...)
}

// NewFunc creates a table with a caller-supplied hash and equality.
func NewFunc[K, V any](hash func(K) uint64, equal func(K, K) bool, opts ...Option) *Table[K, V] {
	c := newConfig(opts)
	n := primes.AtLeast(uint64(c.size))
	t := &Table[K, V]{
		buckets:       make([]chain.List[K, V], n),
		minBuckets:    n,
		maxLoadFactor: c.maxLoadFactor,
		hash:          hash,
		equal:         equal,
		log:           c.logger,
	}
	t.checkBuckets()
	return t
}

// FromPairs creates a table sized for pairs and inserts them in order; a
// later pair overwrites an earlier one with an equal key.
func FromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option) *Table[K, V] {
	return FromPairsFunc(keyhash.Of[K], keyhash.Equal[K], pairs, opts...)
}

// FromPairsFunc is FromPairs with a caller-supplied hash and equality.
func FromPairsFunc[K, V any](hash func(K) uint64, equal func(K, K) bool, pairs []Pair[K, V], opts ...Option) *Table[K, V] {
	sized := append([]Option{WithSize(len(pairs))}, opts...)
	t := NewFunc[K, V](hash, equal, sized...)
	for _, p := range pairs {
		t.Insert(p.Key, p.Value)
	}
	return t
}

func bucketIdx(h uint64, numBuckets uint64) uint64 {
	return h % numBuckets
}

func (t *Table[K, V]) bucket(key K) *chain.List[K, V] {
	return &t.buckets[bucketIdx(t.hash(key), uint64(len(t.buckets)))]
}

func (t *Table[K, V]) find(key K) *chain.Entry[K, V] {
	return t.bucket(key).Find(key, t.equal)
}

// checkBuckets asserts that the bucket count is a usable prime.
func (t *Table[K, V]) checkBuckets() {
	n := uint64(len(t.buckets))
	primitive.Assert(n >= t.minBuckets)
	primitive.Assert(primes.IsPrime(n))
}

// insert returns the entry now holding key and whether it was newly added.
// The entry survives a rehash, since rehashing moves entries.
func (t *Table[K, V]) insert(key K, val V) (*chain.Entry[K, V], bool) {
	b := t.bucket(key)
	if e := b.Find(key, t.equal); e != nil {
		e.Value = val
		return e, false
	}
	e := b.Prepend(key, val)
	t.count = std.SumAssumeNoOverflow(t.count, 1)
	if t.LoadFactor() > t.maxLoadFactor {
		t.rehash()
	}
	return e, true
}

// Insert stores val under key. It returns true if key was not present and
// false if an existing value was overwritten.
func (t *Table[K, V]) Insert(key K, val V) bool {
	_, added := t.insert(key, val)
	return added
}

// Retrieve returns the value stored under key. The boolean is false if key is
// not present.
func (t *Table[K, V]) Retrieve(key K) (V, bool) {
	if e := t.find(key); e != nil {
		return e.Value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

// At returns a pointer to the value stored under key, or an error matching
// ErrKeyNotFound. It never inserts.
func (t *Table[K, V]) At(key K) (*V, error) {
	e := t.find(key)
	if e == nil {
		return nil, errors.Wrapf(ErrKeyNotFound, "key %v", key)
	}
	return &e.Value, nil
}

// Index returns a pointer to the value stored under key, first inserting the
// zero value if key is absent.
func (t *Table[K, V]) Index(key K) *V {
	if e := t.find(key); e != nil {
		return &e.Value
	}
	var zero V
	e, _ := t.insert(key, zero)
	return &e.Value
}

// Erase removes key and reports whether it was present.
func (t *Table[K, V]) Erase(key K) bool {
	removed := uint64(t.bucket(key).Delete(key, t.equal))
	primitive.Assert(removed <= t.count)
	t.count -= removed
	return removed > 0
}

// Count returns the number of entries with a key equal to key: 0 or 1.
func (t *Table[K, V]) Count(key K) int {
	return t.bucket(key).Count(key, t.equal)
}

// Clear removes every entry. The bucket count is unchanged.
func (t *Table[K, V]) Clear() {
	for i := range t.buckets {
		t.buckets[i].Clear()
	}
	t.count = 0
}

func (t *Table[K, V]) Empty() bool {
	return t.count == 0
}

// Size returns the number of entries.
func (t *Table[K, V]) Size() int {
	return int(t.count)
}

func (t *Table[K, V]) BucketCount() int {
	return len(t.buckets)
}

// BucketSize returns the number of entries in bucket i.
func (t *Table[K, V]) BucketSize(i int) int {
	return t.buckets[i].Len()
}

// LoadFactor returns the current number of entries per bucket.
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.count) / float64(len(t.buckets))
}

func (t *Table[K, V]) MaxLoadFactor() float64 {
	return t.maxLoadFactor
}

// SetMaxLoadFactor replaces the growth threshold. The table is not rehashed
// until the next insert of a new key. Negative and NaN factors are ignored.
func (t *Table[K, V]) SetMaxLoadFactor(f float64) {
	if !validLoadFactor(f) {
		t.log.Warn("ignoring invalid max load factor",
			zap.Float64("max_load_factor", f),
			zap.Float64("current", t.maxLoadFactor))
		return
	}
	t.maxLoadFactor = f
}

// Range calls fn for each entry, bucket by bucket, until fn returns false.
// The table must not be modified during the call, except through assignment
// to values already seen.
func (t *Table[K, V]) Range(fn func(key K, val V) bool) {
	for i := range t.buckets {
		complete := t.buckets[i].Range(func(e *chain.Entry[K, V]) bool {
			return fn(e.Key, e.Value)
		})
		if !complete {
			return
		}
	}
}

// Keys returns every key in the table, in bucket order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	t.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func cloneBuckets[K, V any](src []chain.List[K, V]) []chain.List[K, V] {
	out := make([]chain.List[K, V], len(src))
	for i := range src {
		out[i] = src[i].Clone()
	}
	return out
}

// Clone returns a deep copy that shares no storage with t.
func (t *Table[K, V]) Clone() *Table[K, V] {
	return &Table[K, V]{
		buckets:       cloneBuckets(t.buckets),
		count:         t.count,
		minBuckets:    t.minBuckets,
		maxLoadFactor: t.maxLoadFactor,
		hash:          t.hash,
		equal:         t.equal,
		log:           t.log,
	}
}

// CopyFrom replaces the contents of t with a deep copy of other, including
// its bucket count, load factor, hash and equality. The logger is kept.
func (t *Table[K, V]) CopyFrom(other *Table[K, V]) {
	if t == other {
		return
	}
	t.buckets = cloneBuckets(other.buckets)
	t.count = other.count
	t.minBuckets = other.minBuckets
	t.maxLoadFactor = other.maxLoadFactor
	t.hash = other.hash
	t.equal = other.equal
}

// Assign replaces the contents of t with pairs, inserted in order.
func (t *Table[K, V]) Assign(pairs ...Pair[K, V]) {
	t.Clear()
	for _, p := range pairs {
		t.Insert(p.Key, p.Value)
	}
}
