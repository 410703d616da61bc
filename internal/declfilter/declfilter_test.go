package declfilter

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/ast/inspector"
)

const source = `package game

type Object struct{}

type Number int

type Alias = Object

func ExamplePlayer() {
	type Documented struct{ Object }
	_ = Documented{}

	func() {
		type Nested struct{}
		_ = Nested{}
	}()
}

func (Object) ExampleMethod() {
	type InMethod struct{}
	_ = InMethod{}
}

func helper() {
	type Helper struct{}
	_ = Helper{}
}
`

func load(t *testing.T, filename string) (*inspector.Inspector, *token.FileSet, *types.Info) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, source, 0)
	require.NoError(t, err)

	info := &types.Info{Defs: map[*ast.Ident]types.Object{}}
	_, err = (&types.Config{}).Check("game", fset, []*ast.File{file}, info)
	require.NoError(t, err)

	return inspector.New([]*ast.File{file}), fset, info
}

func accepted(t *testing.T, filename string, info func(*types.Info) *types.Info) map[string]bool {
	t.Helper()

	insp, fset, typesInfo := load(t, filename)
	res := map[string]bool{}
	for cur := range insp.Root().Preorder((*ast.TypeSpec)(nil)) {
		spec := cur.Node().(*ast.TypeSpec)
		_, ok := Accept(cur, fset, info(typesInfo))
		res[spec.Name.Name] = ok
	}

	return res
}

func same(info *types.Info) *types.Info { return info }

func TestAcceptTestFile(t *testing.T) {
	got := accepted(t, "game_test.go", same)

	assert.Equal(t, map[string]bool{
		"Object":     true,
		"Number":     false,
		"Alias":      false,
		"Documented": false,
		"Nested":     false,
		"InMethod":   true,
		"Helper":     true,
	}, got)
}

func TestAcceptRegularFile(t *testing.T) {
	got := accepted(t, "game.go", same)

	assert.Equal(t, map[string]bool{
		"Object":     true,
		"Number":     false,
		"Alias":      false,
		"Documented": true,
		"Nested":     true,
		"InMethod":   true,
		"Helper":     true,
	}, got)
}

func TestAcceptWithoutTypes(t *testing.T) {
	got := accepted(t, "game.go", func(*types.Info) *types.Info {
		return &types.Info{Defs: map[*ast.Ident]types.Object{}}
	})
	for name, ok := range got {
		assert.False(t, ok, name)
	}

	got = accepted(t, "game.go", func(*types.Info) *types.Info { return nil })
	for name, ok := range got {
		assert.False(t, ok, name)
	}
}

func TestInsideDocumentation(t *testing.T) {
	insp, fset, _ := load(t, "game_test.go")

	inside := map[string]bool{}
	for cur := range insp.Root().Preorder((*ast.Ident)(nil)) {
		id := cur.Node().(*ast.Ident)
		if id.Name == "_" {
			continue
		}
		inside[id.Name] = InsideDocumentation(cur, fset)
	}

	assert.True(t, inside["Documented"])
	assert.True(t, inside["Nested"])
	assert.False(t, inside["Helper"])
	assert.False(t, inside["InMethod"])
	assert.False(t, inside["Number"])
}

const generatedSource = `// Code generated by bindgen. DO NOT EDIT.

package game

type Generated struct{}
`

func TestAcceptGenerated(t *testing.T) {
	fset := token.NewFileSet()
	gen, err := parser.ParseFile(fset, "bindings.go", generatedSource, parser.ParseComments)
	require.NoError(t, err)
	plain, err := parser.ParseFile(fset, "game.go", source, parser.ParseComments)
	require.NoError(t, err)

	files := []*ast.File{gen, plain}
	info := &types.Info{Defs: map[*ast.Ident]types.Object{}}
	_, err = (&types.Config{}).Check("game", fset, files, info)
	require.NoError(t, err)

	got := map[string]bool{}
	for cur := range inspector.New(files).Root().Preorder((*ast.TypeSpec)(nil)) {
		spec := cur.Node().(*ast.TypeSpec)
		_, ok := Accept(cur, fset, info)
		got[spec.Name.Name] = ok
		assert.Equal(t, spec.Name.Name == "Generated", InsideGenerated(cur), spec.Name.Name)
	}

	assert.False(t, got["Generated"], "generated code is not checked")
	assert.True(t, got["Object"])
}
