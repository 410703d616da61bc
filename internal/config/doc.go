// Package config loads globalclass settings from YAML.
//
//	host_package: github.com/example/godot
//	root: github.com/example/godot.GodotObject
//	global_markers:
//	  - github.com/example/godot.GlobalClass
//	tool_markers:
//	  - '"github.com/example/godot".Tool'
//	max_depth: 64
//	jobs: 0
//	disabled_rules:
//	  - GCL030
//	  - ParentMustBeEligible
//
// Every key is optional.
package config
