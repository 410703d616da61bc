package engine

import (
	"fmt"

	"github.com/sirkon/globalclass/internal/gcrules"
	"github.com/sirkon/globalclass/internal/report"
)

// Report turns a violation into a diagnostic anchored at the class name.
func Report(v Violation) report.Diagnostic {
	return report.Diagnostic{
		Rule:     v.Rule,
		Severity: report.SevError,
		Pos:      v.Pos,
		End:      v.End,
		Message:  message(v),
	}
}

func message(v Violation) string {
	switch v.Rule {
	case gcrules.GCL010MustNotBeGeneric:
		return fmt.Sprintf("global class %s must not be generic", v.Class)
	case gcrules.GCL020MustDeriveFromRoot:
		return fmt.Sprintf("global class %s must derive from %s", v.Class, v.Root)
	case gcrules.GCL030MustNotBeTool:
		return fmt.Sprintf("global class %s must not be a tool class", v.Class)
	case gcrules.GCL040ParentMustBeEligible:
		return fmt.Sprintf("global class %s must derive from a global class, parent %s is not global", v.Class, v.Parent)
	default:
		return fmt.Sprintf("global class %s: %s", v.Class, v.Rule.Description())
	}
}

// Check evaluates a declaration and reports its violations.
func (c *Checker) Check(decl Declaration) []report.Diagnostic {
	violations := c.Evaluate(decl)
	if len(violations) == 0 {
		return nil
	}

	res := make([]report.Diagnostic, 0, len(violations))
	for _, v := range violations {
		res = append(res, Report(v))
	}

	return res
}
