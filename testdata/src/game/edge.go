package game

import (
	"attrs"
	"godot"
	"sync"
)

// Unmarked classes are never checked, whatever their shape.
type Unchecked[T any] struct {
	_ godot.Tool
	attrs.GodotObject
	value T
}

type Everything[T any] struct { // want "global class Everything must not be generic" "global class Everything must derive from GodotObject" "global class Everything must not be a tool class"
	_ godot.GlobalClass
	_ godot.Tool
	value T
}

type Namesake struct {
	_ attrs.GlobalClass
	_ attrs.Tool
}

type FakeRoot struct { // want "global class FakeRoot must derive from GodotObject"
	_ godot.GlobalClass
	attrs.GodotObject
}

type Twice struct {
	_ godot.GlobalClass
	_ godot.GlobalClass
	*godot.Node
}

type Player struct {
	_ godot.GlobalClass
	godot.Node
}

type Sprite struct { // want "global class Sprite must derive from a global class, parent RefCounted is not global"
	_ godot.GlobalClass
	godot.RefCounted
}

type Intermediate struct {
	Player
}

type Grandchild struct { // want "global class Grandchild must derive from a global class, parent Intermediate is not global"
	_ godot.GlobalClass
	Intermediate
}

type Ping struct { // want "global class Ping must derive from GodotObject"
	_ godot.GlobalClass
	*Pong
}

type Pong struct {
	*Ping
}

type Wrapper[T any] struct { // want "global class Wrapper must not be generic"
	_ godot.GlobalClass
	godot.GodotObject
	value T
}

type Concrete struct {
	_ godot.GlobalClass
	Wrapper[int]
}

type Embeds struct {
	error
	_ godot.GlobalClass
	godot.Resource
}

type Alias = B

type Level int

func local() {
	type Local struct { // want "global class Local must derive from a global class, parent A is not global"
		_ godot.GlobalClass
		A
	}
	_ = Local{}
}

// The base must be the first embedded struct: a mutex embedded ahead of it
// takes its place.
type Locked struct { // want "global class Locked must derive from GodotObject"
	_ godot.GlobalClass
	sync.Mutex
	godot.Node
}

type LockedAfter struct {
	_ godot.GlobalClass
	godot.Node
	sync.Mutex
}
