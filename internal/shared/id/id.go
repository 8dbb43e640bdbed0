// Package id provides centralized ID generation.
//
// Session ids are prefixed ULIDs (term_*): lexicographically sortable,
// collision-resistant, and readable in logs. Entropy is injectable so
// tests can run with a deterministic source.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// TerminalID identifies a terminal session.
type TerminalID string

// TerminalPrefix marks terminal session ids.
const TerminalPrefix = "term"

// Generator generates ULIDs with optional prefixes.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance.
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a new ULID generator with cryptographically secure
// entropy.
func NewGenerator() *Generator {
	return &Generator{
		entropy: rand.Reader,
	}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy
// source. Useful for testing with deterministic entropy.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{
		entropy: entropy,
	}
}

// Generate creates a new ULID.
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string.
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a prefixed ULID string.
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// NewTerminalID generates a new terminal session ID.
func NewTerminalID() TerminalID {
	return TerminalID(Default().GenerateWithPrefix(TerminalPrefix))
}

// String returns the id as a plain string.
func (id TerminalID) String() string { return string(id) }

// IsValid checks if an ID string is a valid ULID.
func IsValid(id string) bool {
	_, err := ulid.Parse(id)
	return err == nil
}
