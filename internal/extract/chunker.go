package extract

import (
	"fmt"
	"strings"
	"unicode"
)

// Record is one fixed-width group of cells emitted by a Chunker
type Record struct {
	keys   []string
	Values []string
}

// Field returns the value stored under key, or "" when the key is unknown.
func (r Record) Field(key string) string {
	for i, k := range r.keys {
		if k == key && i < len(r.Values) {
			return r.Values[i]
		}
	}
	return ""
}

// Chunker groups a flat stream of cells into records of len(keys) cells.
type Chunker struct {
	keys      []string
	skipEmpty bool
	synthetic bool
	nextID    int
	buf       []string
}

// ChunkerOption configures a Chunker
type ChunkerOption func(*Chunker)

// SkipEmpty makes the chunker ignore empty cells.
func SkipEmpty() ChunkerOption {
	return func(c *Chunker) { c.skipEmpty = true }
}

// SyntheticIDs makes the chunker prepend "None<n>" to a record whose first
// cell is alphabetic, i.e. a record printed without its identifying number.
// The counter starts at 0 and belongs to this chunker only.
func SyntheticIDs() ChunkerOption {
	return func(c *Chunker) { c.synthetic = true }
}

// NewChunker creates a chunker emitting one record per len(keys) cells.
func NewChunker(keys []string, opts ...ChunkerOption) *Chunker {
	c := &Chunker{
		keys: keys,
		buf:  make([]string, 0, len(keys)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Width is the number of cells in one record.
func (c *Chunker) Width() int {
	return len(c.keys)
}

// Push adds one cell. It returns a record and true once the buffer is full.
func (c *Chunker) Push(cell string) (Record, bool) {
	if cell == "" && c.skipEmpty {
		return Record{}, false
	}

	c.buf = append(c.buf, cell)
	if c.synthetic && len(c.buf) == 1 && isAlphabetic(cell) {
		c.buf = append([]string{fmt.Sprintf("None%d", c.nextID)}, c.buf...)
		c.nextID++
	}

	if len(c.buf) < c.Width() {
		return Record{}, false
	}

	rec := Record{
		keys:   c.keys,
		Values: append([]string(nil), c.buf[:c.Width()]...),
	}
	c.buf = c.buf[:0]
	return rec, true
}

// Flush returns the cells of an incomplete trailing record and resets the buffer.
func (c *Chunker) Flush() []string {
	if len(c.buf) == 0 {
		return nil
	}
	tail := append([]string(nil), c.buf...)
	c.buf = c.buf[:0]
	return tail
}

// Feed pushes every cell and returns the complete records plus the leftover tail.
func (c *Chunker) Feed(cells []string) ([]Record, []string) {
	var records []Record
	for _, cell := range cells {
		if rec, ok := c.Push(cell); ok {
			records = append(records, rec)
		}
	}
	return records, c.Flush()
}

// isAlphabetic reports whether s, ignoring whitespace, is made of letters only.
func isAlphabetic(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if !unicode.IsLetter(r) {
			return false
		}
		letters++
	}
	return letters > 0
}

// firstNonEmpty returns the first value that is not blank.
func firstNonEmpty(values []string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
