package terminal

import (
	"bytes"
	"sync"
)

// Buffer accumulates process output between drains. It only grows via
// Append and is emptied atomically by Drain; a drain returns everything
// appended strictly before it, exactly once.
type Buffer struct {
	mu   sync.Mutex
	data bytes.Buffer
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds process output to the buffer.
func (b *Buffer) Append(p []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data.Write(p)
}

// AppendString adds a string to the buffer.
func (b *Buffer) AppendString(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data.WriteString(s)
}

// Drain returns the accumulated contents and resets the buffer. Returns
// the empty string when nothing arrived since the last drain.
func (b *Buffer) Drain() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.data.String()
	b.data.Reset()
	return out
}

// Len reports the number of buffered bytes.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.data.Len()
}
