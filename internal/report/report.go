package report

import (
	"fmt"
	"go/token"
	"io"
	"sort"
	"sync"

	"github.com/sirkon/globalclass/internal/gcrules"
)

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	severityInvalid Severity = iota
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	default:
		return fmt.Sprintf("unknown-severity(%d)", s)
	}
}

// Diagnostic represents a single located rule violation.
type Diagnostic struct {
	Rule     gcrules.Rule
	Severity Severity
	Pos      token.Pos
	End      token.Pos
	Message  string
}

// Collector accumulates diagnostics coming from concurrent checks.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// Add appends diagnostics of one declaration as a single block.
func (c *Collector) Add(diags ...Diagnostic) {
	if len(diags) == 0 {
		return
	}

	c.mu.Lock()
	c.diags = append(c.diags, diags...)
	c.mu.Unlock()
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

// Diagnostics returns a snapshot of all collected records ordered by position.
// The sort is stable, diagnostics sharing a position keep the order they were added in.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	c.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pos < out[j].Pos
	})
	return out
}

// PrintSummary prints all collected diagnostics in a compact, human-readable form.
func (c *Collector) PrintSummary(w io.Writer, fset *token.FileSet) {
	for _, d := range c.Diagnostics() {
		pos := fset.Position(d.Pos)
		fmt.Fprintf(w, "[%s] %s — %s (%s:%d:%d)\n",
			d.Severity,
			d.Rule,
			d.Message,
			pos.Filename,
			pos.Line,
			pos.Column,
		)
	}
}
