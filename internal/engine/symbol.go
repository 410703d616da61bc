package engine

import (
	"go/token"

	"github.com/sirkon/globalclass/internal/wellknown"
)

// Symbol is the resolved semantic view of a class declaration.
// Implementations must be immutable for the duration of a check.
type Symbol interface {
	// Name is the class name as it is shown in messages.
	Name() string

	// Identity of the type itself. Zero for types that cannot be referenced
	// from other packages, such as function-local ones.
	Identity() wellknown.Identity

	// Generic reports whether the type declares type parameters.
	Generic() bool

	// Attributes returns declaring type identities of attribute instances the
	// type carries, in declaration order. Duplicates are allowed.
	Attributes() []wellknown.Identity

	// Base returns the direct base type or nil when there is none or it cannot be resolved.
	Base() Symbol
}

// Declaration is a class declaration handed to the checker.
type Declaration struct {
	Symbol Symbol

	// Pos and End delimit the class name token.
	Pos token.Pos
	End token.Pos
}
