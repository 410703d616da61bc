// Package engine validates classes that opt into the host's global class registry.
//
// A class is checked only when it carries the global registration marker.
// Checks run in a fixed order:
//
//  1. the class must not be generic;
//  2. the class must derive from the root object type;
//  3. the class must not be a tool class;
//  4. the immediate parent must be the root type or a global class itself.
//
// The fourth check is skipped when the second one fails. It looks at the
// direct parent only, a marked grandparent behind an unmarked parent is still
// reported.
//
// The engine works on the [Symbol] abstraction and knows nothing about
// go/types; see package gosym for the adapter.
package engine
