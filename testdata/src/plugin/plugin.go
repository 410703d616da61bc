package plugin

import (
	"game"
	"godot"
)

type Weapon struct {
	_ godot.GlobalClass
	game.B
}

type Shield struct { // want "global class Shield must derive from a global class, parent I is not global"
	_ godot.GlobalClass
	game.I
}

type Broken struct { // want "global class Broken must derive from GodotObject"
	_ godot.GlobalClass
	game.D
}
