// Package trace is the append-and-flush log sink a scheduling run writes
// its human-readable trace to. The sink is injected, never global, and
// lives for exactly one invocation.
package trace

import (
	"fmt"
	"strings"
)

// Sink receives the trace of a scheduling run. Append must leave the
// underlying file readable even if the run dies halfway through.
type Sink interface {
	Append(msg string)
	Appendf(format string, args ...any)
	Flush()
}

// Nop discards everything.
type Nop struct{}

func (Nop) Append(string)          {}
func (Nop) Appendf(string, ...any) {}
func (Nop) Flush()                 {}

// Buffer collects trace lines in memory so tests can assert on them.
type Buffer struct {
	Lines []string
}

func (b *Buffer) Append(msg string) {
	b.Lines = append(b.Lines, msg)
}

func (b *Buffer) Appendf(format string, args ...any) {
	b.Lines = append(b.Lines, fmt.Sprintf(format, args...))
}

func (b *Buffer) Flush() {}

// Contains reports whether any collected line contains substr.
func (b *Buffer) Contains(substr string) bool {
	for _, line := range b.Lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
