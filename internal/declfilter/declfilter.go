package declfilter

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/ast/inspector"
)

// InsideDocumentation checks if the node under cursor belongs to documentation
// rather than compiled code: any enclosing node is an example function of a
// test file.
func InsideDocumentation(cur inspector.Cursor, fset *token.FileSet) bool {
	for enc := range cur.Enclosing((*ast.FuncDecl)(nil)) {
		if isExample(enc.Node().(*ast.FuncDecl), fset) {
			return true
		}
	}

	return false
}

// InsideGenerated checks if the node under cursor lives in a generated file,
// see [ast.IsGenerated].
func InsideGenerated(cur inspector.Cursor) bool {
	for enc := range cur.Enclosing((*ast.File)(nil)) {
		if ast.IsGenerated(enc.Node().(*ast.File)) {
			return true
		}
	}

	return false
}

// Accept returns the type name a type spec under cursor declares when it is a
// class declaration worth checking. Documentation examples, generated code,
// aliases, non-struct types and specs without type information are rejected
// silently.
func Accept(cur inspector.Cursor, fset *token.FileSet, info *types.Info) (*types.TypeName, bool) {
	spec, ok := cur.Node().(*ast.TypeSpec)
	if !ok || spec.Name == nil {
		return nil, false
	}
	if spec.Assign.IsValid() {
		return nil, false
	}

	if InsideDocumentation(cur, fset) || InsideGenerated(cur) {
		return nil, false
	}

	if info == nil {
		return nil, false
	}
	tn, ok := info.Defs[spec.Name].(*types.TypeName)
	if !ok || tn.IsAlias() {
		return nil, false
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, false
	}
	if _, ok := named.Underlying().(*types.Struct); !ok {
		return nil, false
	}

	return tn, true
}

// isExample matches testable examples: ExampleXxx functions without receiver
// declared in _test.go files.
func isExample(fn *ast.FuncDecl, fset *token.FileSet) bool {
	if fn.Recv != nil || fn.Name == nil || !strings.HasPrefix(fn.Name.Name, "Example") {
		return false
	}

	file := fset.File(fn.Pos())
	if file == nil {
		return false
	}

	return strings.HasSuffix(file.Name(), "_test.go")
}
