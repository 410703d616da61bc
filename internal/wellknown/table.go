package wellknown

import (
	"fmt"
	"maps"
)

// DefaultHostPackage is the package path of the host binding the predefined identities live in.
const DefaultHostPackage = "godot"

// Type names of the predefined host identities.
const (
	RootTypeName        = "GodotObject"
	GlobalClassTypeName = "GlobalClass"
	ToolTypeName        = "Tool"
)

// Table is the well-known identity table: one root object type and a set of marker types.
// It is built once and never mutated, so it is safe to share between concurrent checks.
type Table struct {
	root    Identity
	markers map[Identity]MarkerKind
}

// NewTable merges predefined host identities of hostPkg with custom ones.
// Custom markers take precedence over predefined ones with the same identity.
// A zero root means the predefined root of hostPkg.
func NewTable(hostPkg string, root Identity, custom map[Identity]MarkerKind) (*Table, error) {
	if hostPkg == "" {
		hostPkg = DefaultHostPackage
	}

	predefined := map[Identity]MarkerKind{
		Of(hostPkg, GlobalClassTypeName): GlobalRegistration,
		Of(hostPkg, ToolTypeName):        ToolOnly,
	}

	markers := maps.Clone(predefined)
	for id, kind := range custom {
		if id.Package == "" || id.Name == "" {
			return nil, fmt.Errorf("marker identity %s must be package qualified", id)
		}
		if _, ok := markerKindValueMap[kind]; !ok {
			return nil, fmt.Errorf("marker %s has invalid kind %s", id, kind)
		}
		markers[id] = kind
	}

	if root.IsZero() {
		root = Of(hostPkg, RootTypeName)
	}
	if root.Package == "" || root.Name == "" {
		return nil, fmt.Errorf("root identity %s must be package qualified", root)
	}
	if kind, ok := markers[root]; ok {
		return nil, fmt.Errorf("root identity %s is also registered as %s marker", root, kind)
	}

	return &Table{
		root:    root,
		markers: markers,
	}, nil
}

// Default returns the table of predefined identities of the given host package.
func Default(hostPkg string) *Table {
	t, err := NewTable(hostPkg, Identity{}, nil)
	if err != nil {
		panic(fmt.Errorf("predefined identities of %q: %w", hostPkg, err))
	}

	return t
}

// Root returns the root object type identity.
func (t *Table) Root() Identity {
	return t.root
}

// IsRoot checks if id is the root object type.
func (t *Table) IsRoot(id Identity) bool {
	return !id.IsZero() && id == t.root
}

// Marker returns the marker kind of the given attribute type identity.
func (t *Table) Marker(id Identity) (MarkerKind, bool) {
	if id.IsZero() {
		return MarkerKindInvalid, false
	}

	kind, ok := t.markers[id]
	return kind, ok
}

// Markers returns a copy of registered marker identities.
func (t *Table) Markers() map[Identity]MarkerKind {
	return maps.Clone(t.markers)
}
