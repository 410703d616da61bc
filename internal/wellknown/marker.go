package wellknown

import (
	"fmt"
	"strings"
)

// MarkerKind describes what a well-known marker attribute means for a class.
type MarkerKind int

const (
	MarkerKindInvalid MarkerKind = iota

	// GlobalRegistration opts a class into the host's global class registry.
	GlobalRegistration

	// ToolOnly marks a class as editor-only tooling.
	ToolOnly
)

var markerKindValueMap = map[MarkerKind]string{
	GlobalRegistration: "global",
	ToolOnly:           "tool",
}

func (k MarkerKind) String() string {
	v, ok := markerKindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (k *MarkerKind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for kind, v := range markerKindValueMap {
		if v == text {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("unknown marker kind %q", text)
}

// MarkerSet is an immutable set of marker kinds.
type MarkerSet uint8

// NewMarkerSet builds a set out of the given kinds.
func NewMarkerSet(kinds ...MarkerKind) MarkerSet {
	var s MarkerSet
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// With returns a set that also contains k. Invalid kinds are ignored.
func (s MarkerSet) With(k MarkerKind) MarkerSet {
	if _, ok := markerKindValueMap[k]; !ok {
		return s
	}

	return s | 1<<uint(k)
}

// Has reports whether k is in the set.
func (s MarkerSet) Has(k MarkerKind) bool {
	return k > MarkerKindInvalid && s&(1<<uint(k)) != 0
}

// Len returns the number of kinds in the set.
func (s MarkerSet) Len() int {
	var n int
	for k := range markerKindValueMap {
		if s.Has(k) {
			n++
		}
	}
	return n
}

func (s MarkerSet) String() string {
	var parts []string
	for _, k := range []MarkerKind{GlobalRegistration, ToolOnly} {
		if s.Has(k) {
			parts = append(parts, k.String())
		}
	}

	return "{" + strings.Join(parts, ",") + "}"
}
