// Package globalclass provides a go/analysis analyzer validating classes that opt
// into the host scripting framework's global class registry.
//
// The analyzer is usable with any go/analysis driver: go vet -vettool,
// gopls, multicheckers or the bundled cmd/globalclass binary.
package globalclass
