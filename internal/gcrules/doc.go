// Package gcrules defines the canonical GCL-series rule codes enforced by globalclass.
//
// Every type that carries the global registration marker is checked against a
// fixed list of structural rules before downstream tooling may register it in
// the host's global class list. The GCL-series gives each of these rules a stable
// numeric and textual identity, so violations can be filtered, suppressed and
// cross-referenced consistently between batch builds and editor feedback.
//
// # Structure
//
// Rule codes follow the format “GCL<NNN>: <Name>”:
//
//	GCL010: MustNotBeGeneric
//	GCL020: MustDeriveFromRoot
//	GCL030: MustNotBeTool
//	GCL040: ParentMustBeEligible
//
// The numeric order is the evaluation order. Diagnostics of a single declaration
// are always produced in this order.
//
// Example:
//
//	gcrules.GCL020MustDeriveFromRoot.String()      → "GCL020: MustDeriveFromRoot"
//	gcrules.GCL020MustDeriveFromRoot.Code()        → "GCL020"
//
// # Notes
//
//   - Rule identifiers are stable; never renumber existing codes.
//   - The bare code is used as the go/analysis diagnostic category.
package gcrules
