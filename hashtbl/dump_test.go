package hashtbl_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"hashtbl_code/hashtbl"
)

func TestDump(t *testing.T) {
	// identity hash makes bucket placement predictable
	h := hashtbl.NewFunc[int, string](
		func(k int) uint64 { return uint64(k) },
		func(a, b int) bool { return a == b },
		hashtbl.WithSize(3),
	)
	h.Insert(1, "one")
	h.Insert(4, "four")
	h.Insert(2, "two")

	assert.Equal(t, "[0]->\n[1]->\nfour\none\n[2]->\ntwo\n\n", h.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestDumpWriteError(t *testing.T) {
	h := hashtbl.New[int, int]()
	err := h.Dump(failingWriter{})
	assert.ErrorContains(t, err, "disk full")
}
