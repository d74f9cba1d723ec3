package convert

import (
	"github.com/shinyvision/phpast/ast"
)

// newDecl builds a declaration node, encoding name, doc comment, end line and
// declaration id per the active schema version. Handlers stay
// version-agnostic: all layout differences live here.
//
// At V2 the leading children are name, docComment (omitted when absent) and
// the synthetic declaration id, in that order, before the kind-specific
// children. At V1 name, doc comment and end line are out-of-band node
// attributes and no id exists.
func (s *session) newDecl(kind ast.Kind, flags, line, endLine int, name any, doc *string, kids ...ast.Child) *ast.Node {
	node := &ast.Node{Kind: kind, Flags: flags, Line: line, EndLine: endLine}
	if s.version < V2 {
		if str, ok := name.(string); ok {
			node.Name = str
		}
		node.Doc = doc
		node.Children = kids
		return node
	}
	children := make([]ast.Child, 0, len(kids)+3)
	children = append(children, ast.Child{Key: "name", Val: name})
	if doc != nil {
		children = append(children, ast.Child{Key: "docComment", Val: *doc})
	}
	children = append(children, ast.Child{Key: "__declId", Val: int64(s.allocDeclID())})
	node.Children = append(children, kids...)
	return node
}

// docChild builds the docComment child for constant-element and
// property-element nodes. These two kinds always carry the key, with an
// explicit null when the comment is absent; every other kind omits the key
// instead. This is the full exception set.
func docChild(doc *string) ast.Child {
	if doc == nil {
		return ast.Child{Key: "docComment", Val: nil}
	}
	return ast.Child{Key: "docComment", Val: *doc}
}
