package terminal

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferDrainEmpty(t *testing.T) {
	b := NewBuffer()

	assert.Equal(t, "", b.Drain())
}

func TestBufferDrainExactlyOnce(t *testing.T) {
	b := NewBuffer()
	b.Append([]byte("hello "))
	b.Append([]byte("world"))

	assert.Equal(t, "hello world", b.Drain())
	assert.Equal(t, "", b.Drain())
}

func TestBufferAppendAfterDrain(t *testing.T) {
	b := NewBuffer()
	b.AppendString("first")
	b.Drain()
	b.AppendString("second")

	assert.Equal(t, "second", b.Drain())
}

func TestBufferLen(t *testing.T) {
	b := NewBuffer()
	b.AppendString("abcd")

	assert.Equal(t, 4, b.Len())
	b.Drain()
	assert.Equal(t, 0, b.Len())
}

func TestBufferConcurrentAppendsNotLost(t *testing.T) {
	b := NewBuffer()

	const writers = 8
	const perWriter = 100

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				b.AppendString(fmt.Sprintf("w%d-%d;", w, i))
			}
		}(w)
	}

	done := make(chan struct{})
	var drained strings.Builder
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			drained.WriteString(b.Drain())
		}
	}()

	wg.Wait()
	<-done
	drained.WriteString(b.Drain())

	// Every append shows up exactly once across all drains.
	total := strings.Count(drained.String(), ";")
	assert.Equal(t, writers*perWriter, total)
}
