// Package gcrules defines the canonical rule codes (GCL-series) enforced by globalclass.
// Each rule is one structural requirement a global class has to satisfy.
//
// Rule numbering scheme:
//
//	000–099  Type shape and ancestry of a global class
package gcrules

import "fmt"

// Rule represents a globalclass rule code (GCL-series).
type Rule int

const (
	ruleInvalid Rule = iota

	GCL010MustNotBeGeneric
	GCL020MustDeriveFromRoot
	GCL030MustNotBeTool
	GCL040ParentMustBeEligible
)

// All lists rules in their evaluation order.
func All() []Rule {
	return []Rule{
		GCL010MustNotBeGeneric,
		GCL020MustDeriveFromRoot,
		GCL030MustNotBeTool,
		GCL040ParentMustBeEligible,
	}
}

// Code returns the bare rule code, e.g. "GCL010".
func (r Rule) Code() string {
	switch r {
	case GCL010MustNotBeGeneric:
		return "GCL010"
	case GCL020MustDeriveFromRoot:
		return "GCL020"
	case GCL030MustNotBeTool:
		return "GCL030"
	case GCL040ParentMustBeEligible:
		return "GCL040"
	default:
		return fmt.Sprintf("GCL???(%d)", r)
	}
}

// Name returns the short name of the rule.
func (r Rule) Name() string {
	switch r {
	case GCL010MustNotBeGeneric:
		return "MustNotBeGeneric"
	case GCL020MustDeriveFromRoot:
		return "MustDeriveFromRoot"
	case GCL030MustNotBeTool:
		return "MustNotBeTool"
	case GCL040ParentMustBeEligible:
		return "ParentMustBeEligible"
	default:
		return ""
	}
}

// String returns the canonical code and short name of the rule.
// Example: "GCL010: MustNotBeGeneric"
func (r Rule) String() string {
	if r.Name() == "" {
		return fmt.Sprintf("rule-unknown(%d)", r)
	}

	return r.Code() + ": " + r.Name()
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case GCL010MustNotBeGeneric:
		return "Global class must not declare type parameters."
	case GCL020MustDeriveFromRoot:
		return "Global class must derive from the host root object type."
	case GCL030MustNotBeTool:
		return "Global class must not be marked as an editor-only tool class."
	case GCL040ParentMustBeEligible:
		return "Immediate parent of a global class must be the root object type or a global class itself."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// UnmarshalText accepts either the bare code ("GCL020") or the short name ("MustDeriveFromRoot").
func (r *Rule) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for _, rule := range All() {
		if rule.Code() == text || rule.Name() == text {
			*r = rule
			return nil
		}
	}

	return fmt.Errorf("unknown rule %q", text)
}

// MarshalText renders the bare rule code.
func (r Rule) MarshalText() ([]byte, error) {
	if r.Name() == "" {
		return nil, fmt.Errorf("cannot marshal invalid Rule(%d)", r)
	}

	return []byte(r.Code()), nil
}

// Canonical constructors, for stable call sites.

func MustNotBeGeneric() Rule     { return GCL010MustNotBeGeneric }
func MustDeriveFromRoot() Rule   { return GCL020MustDeriveFromRoot }
func MustNotBeTool() Rule        { return GCL030MustNotBeTool }
func ParentMustBeEligible() Rule { return GCL040ParentMustBeEligible }
