package gosym

import (
	"go/types"

	"github.com/sirkon/globalclass/internal/engine"
	"github.com/sirkon/globalclass/internal/wellknown"
)

var _ engine.Symbol = (*Class)(nil)

// Class is an [engine.Symbol] over a named struct type.
//
// Attributes are blank fields of named types:
//
//	type Player struct {
//		_ godot.GlobalClass `icon:"res://player.svg"`
//		godot.Node
//	}
//
// The base is the first embedded field whose type, after pointer
// dereference, is a named struct type.
type Class struct {
	named *types.Named
}

// FromTypeName returns a class for the type name when it names a struct type.
func FromTypeName(tn *types.TypeName) (*Class, bool) {
	if tn == nil || tn.IsAlias() {
		return nil, false
	}

	return FromType(tn.Type())
}

// FromType returns a class for a named struct type or a pointer to it.
func FromType(typ types.Type) (*Class, bool) {
	typ = types.Unalias(typ)
	if ptr, ok := typ.(*types.Pointer); ok {
		typ = ptr.Elem()
	}

	named, ok := types.Unalias(typ).(*types.Named)
	if !ok {
		return nil, false
	}
	if _, ok := named.Underlying().(*types.Struct); !ok {
		return nil, false
	}

	return &Class{named: named}, true
}

func (c *Class) Name() string {
	return c.named.Obj().Name()
}

func (c *Class) Identity() wellknown.Identity {
	return identityOf(c.named)
}

func (c *Class) Generic() bool {
	return c.named.Origin().TypeParams().Len() > 0
}

func (c *Class) Attributes() []wellknown.Identity {
	st := c.structure()
	if st == nil {
		return nil
	}

	var res []wellknown.Identity
	for i := range st.NumFields() {
		field := st.Field(i)
		if field.Name() != "_" {
			continue
		}

		named, ok := types.Unalias(field.Type()).(*types.Named)
		if !ok {
			continue
		}
		res = append(res, identityOf(named))
	}

	return res
}

func (c *Class) Base() engine.Symbol {
	st := c.structure()
	if st == nil {
		return nil
	}

	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Embedded() {
			continue
		}

		// Interface and basic embeds are not classes, keep looking. A broken
		// type in the first class position still ends the chain.
		base, ok := FromType(field.Type())
		if !ok {
			if isInvalid(field.Type()) {
				return nil
			}
			continue
		}

		return base
	}

	return nil
}

func (c *Class) structure() *types.Struct {
	st, _ := c.named.Underlying().(*types.Struct)
	return st
}

// identityOf returns the identity of the generic origin of a named type.
// Types not declared at package level have no identity.
func identityOf(named *types.Named) wellknown.Identity {
	obj := named.Origin().Obj()
	pkg := obj.Pkg()
	if pkg == nil || obj.Parent() != pkg.Scope() {
		return wellknown.Identity{}
	}

	return wellknown.Of(pkg.Path(), obj.Name())
}

func isInvalid(typ types.Type) bool {
	typ = types.Unalias(typ)
	if ptr, ok := typ.(*types.Pointer); ok {
		typ = ptr.Elem()
	}

	basic, ok := typ.(*types.Basic)
	return ok && basic.Kind() == types.Invalid
}
