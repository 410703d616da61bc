// Package wellknown holds the identities of host types globalclass recognizes:
// the root object type and the marker types classes opt in with.
//
// Types are recognized by (package path, type name) identity, never by the
// short name alone, so an unrelated GlobalClass declared in some other package
// is not a marker.
package wellknown
