package engine

import (
	"github.com/sirkon/globalclass/internal/wellknown"
)

const host = "godot"

var (
	rootID   = wellknown.Of(host, "GodotObject")
	globalID = wellknown.Of(host, "GlobalClass")
	toolID   = wellknown.Of(host, "Tool")
)

// fakeSymbol is an in-memory Symbol.
type fakeSymbol struct {
	name    string
	id      wellknown.Identity
	generic bool
	attrs   []wellknown.Identity
	base    *fakeSymbol
	lost    bool // base cannot be resolved
}

func (s *fakeSymbol) Name() string                     { return s.name }
func (s *fakeSymbol) Identity() wellknown.Identity     { return s.id }
func (s *fakeSymbol) Generic() bool                    { return s.generic }
func (s *fakeSymbol) Attributes() []wellknown.Identity { return s.attrs }

func (s *fakeSymbol) Base() Symbol {
	if s.base == nil || s.lost {
		return nil
	}
	return s.base
}

func class(name string, base *fakeSymbol, attrs ...wellknown.Identity) *fakeSymbol {
	return &fakeSymbol{
		name:  name,
		id:    wellknown.Of("example.com/game", name),
		attrs: attrs,
		base:  base,
	}
}

func root() *fakeSymbol {
	return &fakeSymbol{name: "GodotObject", id: rootID}
}

func decl(sym Symbol) Declaration {
	return Declaration{Symbol: sym, Pos: 10, End: 15}
}

func newChecker() *Checker {
	return New(wellknown.Default(host))
}
