package engine

import (
	"go/token"

	"github.com/sirkon/globalclass/internal/gcrules"
	"github.com/sirkon/globalclass/internal/wellknown"
)

// Violation is a single broken rule of a global class.
type Violation struct {
	Rule  gcrules.Rule
	Class string

	// Parent is set for ParentMustBeEligible.
	Parent string

	// Root is set for MustDeriveFromRoot.
	Root string

	Pos token.Pos
	End token.Pos
}

// Evaluate runs the rules against a declaration. It returns nothing for declarations
// without the global registration marker. Violations follow the rule evaluation order.
func (c *Checker) Evaluate(decl Declaration) []Violation {
	sym := decl.Symbol
	if sym == nil {
		return nil
	}

	markers := c.Classify(sym)
	if !markers.Has(wellknown.GlobalRegistration) {
		return nil
	}

	violation := func(rule gcrules.Rule) Violation {
		return Violation{
			Rule:  rule,
			Class: sym.Name(),
			Pos:   decl.Pos,
			End:   decl.End,
		}
	}

	var res []Violation
	add := func(v Violation) {
		if c.Enabled(v.Rule) {
			res = append(res, v)
		}
	}

	if sym.Generic() {
		add(violation(gcrules.MustNotBeGeneric()))
	}

	derives := c.DerivesFromRoot(sym)
	if !derives {
		v := violation(gcrules.MustDeriveFromRoot())
		v.Root = c.table.Root().Name
		add(v)
	}

	if markers.Has(wellknown.ToolOnly) {
		add(violation(gcrules.MustNotBeTool()))
	}

	// Only the direct parent is examined. A marked grandparent does not make
	// an unmarked parent eligible.
	if derives {
		if parent := c.ImmediateBase(sym); parent != nil && !c.table.IsRoot(parent.Identity()) {
			if !c.Classify(parent).Has(wellknown.GlobalRegistration) {
				v := violation(gcrules.ParentMustBeEligible())
				v.Parent = parent.Name()
				add(v)
			}
		}
	}

	return res
}
