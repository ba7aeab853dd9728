package hashtbl

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"hashtbl_code/chain"
)

// Dump writes every bucket as "[i]->" followed by the value of each entry on
// its own line, then a blank line. The format is for diagnostics only.
func (t *Table[K, V]) Dump(w io.Writer) error {
	for i := range t.buckets {
		if _, err := fmt.Fprintf(w, "[%d]->\n", i); err != nil {
			return errors.Wrap(err, "dump hash table")
		}
		var err error
		t.buckets[i].Range(func(e *chain.Entry[K, V]) bool {
			_, err = fmt.Fprintf(w, "%v\n", e.Value)
			return err == nil
		})
		if err != nil {
			return errors.Wrap(err, "dump hash table")
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return errors.Wrap(err, "dump hash table")
	}
	return nil
}

func (t *Table[K, V]) String() string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = t.Dump(&sb)
	return sb.String()
}
