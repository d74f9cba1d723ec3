package convert

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/shinyvision/phpast/ast"
)

// nodeLine returns the 1-based start line of an input node, or 0 when the
// node is null or a zero-width missing token.
func nodeLine(n sitter.Node) int {
	if n.IsNull() || n.IsMissing() {
		return 0
	}
	return int(n.StartPoint().Row) + 1
}

// nodeEndLine returns the 1-based end line of an input node, or 0 when
// unknown.
func nodeEndLine(n sitter.Node) int {
	if n.IsNull() || n.IsMissing() {
		return 0
	}
	return int(n.EndPoint().Row) + 1
}

// resolveLine infers a line for a construct whose handler has no explicit
// one: the first positive line among the immediate named children in source
// order, then the construct's own line, then 0.
func resolveLine(n sitter.Node) int {
	if n.IsNull() {
		return 0
	}
	for i := uint32(0); i < n.NamedChildCount(); i++ {
		if l := nodeLine(n.NamedChild(i)); l > 0 {
			return l
		}
	}
	return nodeLine(n)
}

// childLine picks a line for a node built purely from already-converted
// children: the first resolved child line, falling back to the supplied
// default. Scalar children carry no line of their own.
func childLine(def int, vals ...any) int {
	for _, v := range vals {
		if n, ok := v.(*ast.Node); ok && n != nil && n.Line > 0 {
			return n.Line
		}
	}
	return def
}
