// Package history keeps submitted input lines for up/down recall.
package history

// Buffer stores lines in submission order. The cursor ranges over
// [0, Len()]; Len() means no entry is selected.
type Buffer struct {
	entries []string
	cursor  int
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// Append adds line to the end and resets the cursor. Duplicates are kept.
func (b *Buffer) Append(line string) {
	b.entries = append(b.entries, line)
	b.cursor = len(b.entries)
}

// Previous moves the cursor back one entry and returns it.
// It returns false and leaves the cursor alone at the oldest entry or
// when the buffer is empty.
func (b *Buffer) Previous() (string, bool) {
	if len(b.entries) == 0 || b.cursor == 0 {
		return "", false
	}
	b.cursor--
	return b.entries[b.cursor], true
}

// Next moves the cursor forward one entry and returns it. Moving past
// the newest entry resets the cursor and returns "" so the caller can
// clear its input. It returns false only for an empty buffer.
func (b *Buffer) Next() (string, bool) {
	if len(b.entries) == 0 {
		return "", false
	}
	if b.cursor < len(b.entries)-1 {
		b.cursor++
		return b.entries[b.cursor], true
	}
	b.cursor = len(b.entries)
	return "", true
}

// Len returns the number of stored lines.
func (b *Buffer) Len() int { return len(b.entries) }
