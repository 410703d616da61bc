package custom

import (
	"customhost"
	"godot"
)

type Good struct {
	_ customhost.Registered
	customhost.Object
}

type Editor struct { // want "global class Editor must not be a tool class"
	_ customhost.Registered
	_ customhost.EditorOnly
	customhost.Object
}

type HostTool struct { // want "global class HostTool must not be a tool class"
	_ customhost.Registered
	_ customhost.Tool
	customhost.Object
}

type OldRoot struct { // want "global class OldRoot must derive from Object"
	_ customhost.Registered
	godot.GodotObject
}

type OldMarker struct {
	_ godot.GlobalClass
}

// GCL010 is disabled by the configuration.
type Boxed[T any] struct {
	_ customhost.Registered
	customhost.Object
	value T
}
