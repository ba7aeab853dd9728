// Package chain implements the bucket of a separately-chained hash table: a
// singly-linked list of key/value entries, newest first.
//
// A List is not safe for concurrent use.
package chain

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// Entry is one key/value pair owned by a List.
type Entry[K, V any] struct {
	Key   K
	Value V
	next  *Entry[K, V]
}

// List is a chain of entries. The zero value is an empty list.
type List[K, V any] struct {
	head *Entry[K, V]
	len  uint64
}

func (l *List[K, V]) Len() int {
	return int(l.len)
}

func (l *List[K, V]) Empty() bool {
	return l.head == nil
}

// Find returns the first entry whose key is equal to key, or nil.
func (l *List[K, V]) Find(key K, equal func(K, K) bool) *Entry[K, V] {
	var n = l.head
	for n != nil {
		if equal(n.Key, key) {
			return n
		}
		n = n.next
	}
	return nil
}

// Prepend adds a new entry at the front of the list and returns it. It does
// not check for an existing entry with the same key.
func (l *List[K, V]) Prepend(key K, val V) *Entry[K, V] {
	e := &Entry[K, V]{Key: key, Value: val}
	l.Push(e)
	return e
}

// Push links an existing, detached entry at the front of the list.
func (l *List[K, V]) Push(e *Entry[K, V]) {
	primitive.Assert(e.next == nil)
	e.next = l.head
	l.head = e
	l.len = std.SumAssumeNoOverflow(l.len, 1)
}

// Pop detaches the front entry. The boolean is false if the list was empty.
func (l *List[K, V]) Pop() (*Entry[K, V], bool) {
	e := l.head
	if e == nil {
		return nil, false
	}
	l.head = e.next
	e.next = nil
	l.len--
	return e, true
}

func deleteAll[K, V any](n *Entry[K, V], key K, equal func(K, K) bool, removed *uint64) *Entry[K, V] {
	if n == nil {
		return nil
	}
	if equal(n.Key, key) {
		// keep going to delete any copies
		*removed++
		next := n.next
		n.next = nil
		return deleteAll(next, key, equal, removed)
	}
	n.next = deleteAll(n.next, key, equal, removed)
	return n
}

// Delete removes every entry whose key is equal to key and returns how many
// were removed.
func (l *List[K, V]) Delete(key K, equal func(K, K) bool) int {
	var removed uint64
	l.head = deleteAll(l.head, key, equal, &removed)
	primitive.Assert(removed <= l.len)
	l.len -= removed
	return int(removed)
}

// Count returns the number of entries whose key is equal to key.
func (l *List[K, V]) Count(key K, equal func(K, K) bool) int {
	var c = 0
	for n := l.head; n != nil; n = n.next {
		if equal(n.Key, key) {
			c++
		}
	}
	return c
}

// Range calls fn on each entry from front to back until fn returns false. It
// reports whether the whole list was visited.
func (l *List[K, V]) Range(fn func(e *Entry[K, V]) bool) bool {
	for n := l.head; n != nil; n = n.next {
		if !fn(n) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the list with the same entry order. Values are
// copied by assignment.
func (l *List[K, V]) Clone() List[K, V] {
	var out List[K, V]
	var tail *Entry[K, V]
	for n := l.head; n != nil; n = n.next {
		e := &Entry[K, V]{Key: n.Key, Value: n.Value}
		if tail == nil {
			out.head = e
		} else {
			tail.next = e
		}
		tail = e
	}
	out.len = l.len
	return out
}

// Clear drops every entry.
func (l *List[K, V]) Clear() {
	l.head = nil
	l.len = 0
}
