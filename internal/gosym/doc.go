// Package gosym adapts go/types named struct types to the symbols the engine checks.
//
// Host contract: the base class must be the first embedded struct of a class.
// Helper structs such as sync.Mutex embedded ahead of it are taken for the base
// and cut the class off the object model:
//
//	type Player struct {
//		_ godot.GlobalClass
//		godot.Node  // base
//		sync.Mutex  // fine after the base
//	}
package gosym
