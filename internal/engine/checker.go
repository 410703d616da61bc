package engine

import (
	"github.com/sirkon/globalclass/internal/gcrules"
	"github.com/sirkon/globalclass/internal/wellknown"
)

// DefaultMaxDepth limits ancestry walks.
const DefaultMaxDepth = 64

// Checker runs global class rules against declarations.
// It keeps no mutable state and is safe for concurrent use.
type Checker struct {
	table    *wellknown.Table
	maxDepth int
	disabled map[gcrules.Rule]struct{}
}

// Option customizes a Checker.
type Option func(*Checker)

// WithMaxDepth sets the maximum number of base hops an ancestry walk takes.
// Non-positive values keep the default.
func WithMaxDepth(depth int) Option {
	return func(c *Checker) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithDisabledRules turns reporting of the given rules off. Disabling
// MustDeriveFromRoot does not lift its short-circuit: ParentMustBeEligible is
// still evaluated only for classes deriving from the root type.
func WithDisabledRules(rules ...gcrules.Rule) Option {
	return func(c *Checker) {
		for _, rule := range rules {
			if c.disabled == nil {
				c.disabled = make(map[gcrules.Rule]struct{}, len(rules))
			}
			c.disabled[rule] = struct{}{}
		}
	}
}

// Enabled reports whether violations of the rule are reported.
func (c *Checker) Enabled(rule gcrules.Rule) bool {
	_, off := c.disabled[rule]
	return !off
}

// New creates a checker over the given well-known identity table.
func New(table *wellknown.Table, opts ...Option) *Checker {
	c := &Checker{
		table:    table,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Table returns the identity table the checker works with.
func (c *Checker) Table() *wellknown.Table {
	return c.table
}

// Classify computes the set of well-known markers the symbol carries.
func (c *Checker) Classify(sym Symbol) wellknown.MarkerSet {
	var set wellknown.MarkerSet
	for _, attr := range sym.Attributes() {
		if kind, ok := c.table.Marker(attr); ok {
			set = set.With(kind)
		}
	}

	return set
}

// DerivesFromRoot checks if the root object type is reachable by following bases of sym.
// The symbol itself counts: the root type derives from itself.
func (c *Checker) DerivesFromRoot(sym Symbol) bool {
	visited := make(map[wellknown.Identity]struct{})
	for depth := 0; sym != nil && depth <= c.maxDepth; depth++ {
		id := sym.Identity()
		if c.table.IsRoot(id) {
			return true
		}

		if !id.IsZero() {
			if _, ok := visited[id]; ok {
				// Cycle through pointer embedding.
				return false
			}
			visited[id] = struct{}{}
		}

		sym = sym.Base()
	}

	return false
}

// ImmediateBase returns the direct base of sym, nil for the root type itself
// or when there is no resolvable base.
func (c *Checker) ImmediateBase(sym Symbol) Symbol {
	if c.table.IsRoot(sym.Identity()) {
		return nil
	}

	return sym.Base()
}
