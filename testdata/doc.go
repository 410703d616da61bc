// Package testdata is not a package: it holds GOPATH-style sources under src/ the analyzer
// is run against in tests. Nothing here is meant to be built or imported.
package testdata
