// Package terminal implements the terminal session control plane.
//
// Each session wraps one PTY-backed shell process together with an
// append/drain output buffer and a stable identity. Sessions live in an
// explicitly owned Registry; the Manager performs the lifecycle operations
// (create, write, drain, kill, list) against it.
//
// Architecture:
//   - Session: one shell process attached to a PTY master, plus its buffer
//   - Buffer: unbounded accumulator; drain atomically swaps it for empty
//   - Registry: id -> session map, the only shared mutable structure
//   - Manager: lifecycle controller; spawns, feeds and tears down sessions
//
// A background goroutine per session copies PTY output into the buffer, and
// a second goroutine waits on the process. Spontaneous exit appends a
// sentinel marker and flags the session but does NOT remove it from the
// registry: the final buffer stays readable until an explicit kill.
//
// Root-mode sessions differ only in the launch arguments (the shell is
// wrapped by sudo reading its password from stdin) and one initial write of
// the password into the PTY before create returns.
package terminal
