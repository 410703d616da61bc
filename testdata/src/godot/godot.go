// Package godot mimics the host binding classes register with.
package godot

// GodotObject is the root of the object model.
type GodotObject struct {
	id uint64
}

// GlobalClass opts a class into the global class list. An optional icon path
// goes to the struct tag of the marker field.
type GlobalClass struct{}

// Tool marks editor-only classes.
type Tool struct{}

type Node struct {
	_ GlobalClass
	GodotObject
}

type Resource struct {
	_ GlobalClass
	GodotObject
}

// RefCounted is part of the object model but cannot be globally registered.
type RefCounted struct {
	GodotObject
}
