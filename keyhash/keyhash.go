// Package keyhash provides the default hash and equality capabilities used by
// hash tables whose key type is comparable.
//
// Equal keys always produce equal hashes. Hashes are not stable across
// releases and must not be persisted.
package keyhash

import (
	"encoding/binary"
	"hash/maphash"
	"math"

	"github.com/cespare/xxhash/v2"
)

// seed for composite keys; fixed for the life of the process
var seed = maphash.MakeSeed()

// Bytes hashes a byte slice.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// String hashes a string without copying it.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Uint64 hashes a fixed-width integer by its little-endian encoding.
func Uint64(x uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], x)
	return xxhash.Sum64(buf[:])
}

// Float64 hashes a float so that 0.0 and -0.0, which compare equal, hash
// equally.
func Float64(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return Uint64(math.Float64bits(f))
}

// Of is the default hash function for comparable keys.
func Of[K comparable](k K) uint64 {
	switch v := any(k).(type) {
	case string:
		return String(v)
	case int:
		return Uint64(uint64(v))
	case int8:
		return Uint64(uint64(v))
	case int16:
		return Uint64(uint64(v))
	case int32:
		return Uint64(uint64(v))
	case int64:
		return Uint64(uint64(v))
	case uint:
		return Uint64(uint64(v))
	case uint8:
		return Uint64(uint64(v))
	case uint16:
		return Uint64(uint64(v))
	case uint32:
		return Uint64(uint64(v))
	case uint64:
		return Uint64(v)
	case uintptr:
		return Uint64(uint64(v))
	case float32:
		return Float64(float64(v))
	case float64:
		return Float64(v)
	case bool:
		if v {
			return Uint64(1)
		}
		return Uint64(0)
	}
	// structs, arrays, pointers, channels and named types use the runtime's
	// hash, which agrees with ==: pointers by address, -0 and +0 alike
	return maphash.Comparable(seed, k)
}

// Equal is the default equality predicate for comparable keys.
func Equal[K comparable](a, b K) bool {
	return a == b
}
