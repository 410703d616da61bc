// Package attrs declares namesakes of host markers that mean nothing to the host.
package attrs

type GlobalClass struct{}

type Tool struct{}

type GodotObject struct{}
