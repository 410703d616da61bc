package game

import "godot"

type A struct {
	godot.GodotObject
}

type B struct {
	_ godot.GlobalClass `icon:"res://b.svg"`
	godot.GodotObject
}

type C[T any] struct { // want "global class C must not be generic"
	_ godot.GlobalClass
	godot.GodotObject
	value T
}

type D struct { // want "global class D must derive from GodotObject"
	_ godot.GlobalClass
}

type E struct { // want "global class E must not be a tool class"
	_ godot.Tool
	_ godot.GlobalClass
	godot.GodotObject
}

type F struct {
	_ godot.GlobalClass
	B
}

type I struct {
	godot.GodotObject
}

type G2 struct { // want "global class G2 must derive from a global class, parent I is not global"
	_ godot.GlobalClass
	I
}
