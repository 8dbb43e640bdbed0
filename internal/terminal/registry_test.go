package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryAddGet(t *testing.T) {
	r := NewRegistry()
	sess := &Session{ID: "term_a"}

	r.Add(sess)

	got, ok := r.Get("term_a")
	assert.True(t, ok)
	assert.Same(t, sess, got)
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get("term_missing")
	assert.False(t, ok)
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	r.Add(&Session{ID: "term_a"})

	r.Remove("term_a")

	_, ok := r.Get("term_a")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())

	// Removing an unknown id is a no-op.
	r.Remove("term_a")
}

func TestRegistryIDsSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Add(&Session{ID: "term_a"})
	r.Add(&Session{ID: "term_b"})

	ids := r.IDs()
	assert.ElementsMatch(t, []string{"term_a", "term_b"}, ids)

	// Mutating the registry does not affect the returned snapshot.
	r.Remove("term_a")
	assert.Len(t, ids, 2)
}

func TestRegistriesAreIsolated(t *testing.T) {
	r1 := NewRegistry()
	r2 := NewRegistry()

	r1.Add(&Session{ID: "term_a"})

	_, ok := r2.Get("term_a")
	assert.False(t, ok)
}
