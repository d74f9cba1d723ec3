package convert

import (
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/shinyvision/phpast/ast"
)

// triviaTypes are input node types that never produce output on their own.
var triviaTypes = map[string]bool{
	"comment":            true,
	"text":               true,
	"text_interpolation": true,
	"php_tag":            true,
	"attribute_list":     true,
}

func firstNamedChild(n sitter.Node) sitter.Node {
	if n.IsNull() || n.NamedChildCount() == 0 {
		return sitter.Node{}
	}
	return n.NamedChild(0)
}

func namedChildren(n sitter.Node) []sitter.Node {
	if n.IsNull() {
		return nil
	}
	out := make([]sitter.Node, 0, n.NamedChildCount())
	for i := uint32(0); i < n.NamedChildCount(); i++ {
		out = append(out, n.NamedChild(i))
	}
	return out
}

// flattenSequence expands a comma-joined expression group into its parts.
// Any other node comes back as a one-element slice.
func flattenSequence(n sitter.Node) []sitter.Node {
	if n.Type() != "sequence_expression" {
		return []sitter.Node{n}
	}
	var out []sitter.Node
	for _, k := range namedChildren(n) {
		if triviaTypes[k.Type()] {
			continue
		}
		out = append(out, flattenSequence(k)...)
	}
	return out
}

// fieldChildren returns every named child stored under the given field.
func fieldChildren(n sitter.Node, field string) []sitter.Node {
	var out []sitter.Node
	for i := uint32(0); i < n.NamedChildCount(); i++ {
		if n.FieldNameForNamedChild(i) == field {
			out = append(out, n.NamedChild(i))
		}
	}
	return out
}

// childrenOfType returns every named child of one of the given types.
func childrenOfType(n sitter.Node, types ...string) []sitter.Node {
	var out []sitter.Node
	for i := uint32(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		for _, t := range types {
			if child.Type() == t {
				out = append(out, child)
				break
			}
		}
	}
	return out
}

func hasChildOfType(n sitter.Node, types ...string) bool {
	return len(childrenOfType(n, types...)) > 0
}

// docCommentFor returns the doc comment attached to a declaration: the
// nearest preceding named sibling, when it is a comment opening with "/**".
func (s *session) docCommentFor(n sitter.Node) *string {
	parent := n.Parent()
	if parent.IsNull() {
		return nil
	}
	var prev sitter.Node
	found := false
	for i := uint32(0); i < parent.NamedChildCount(); i++ {
		child := parent.NamedChild(i)
		if child.StartByte() >= n.StartByte() {
			break
		}
		prev = child
		found = true
	}
	if !found || prev.Type() != "comment" {
		return nil
	}
	text := s.text(prev)
	if !strings.HasPrefix(text, "/**") {
		return nil
	}
	return &text
}

// appendConverted splices a handler result into a flat output sequence:
// sequences are flattened, dropped constructs are skipped.
func appendConverted(out []any, v any) []any {
	switch res := v.(type) {
	case nil:
		return out
	case []*ast.Node:
		for _, n := range res {
			out = append(out, n)
		}
		return out
	case []any:
		return append(out, res...)
	default:
		return append(out, res)
	}
}

// convertList converts a slice of input nodes into a flat output sequence,
// splicing and skipping per appendConverted.
func (s *session) convertList(nodes []sitter.Node) ([]any, error) {
	var out []any
	for _, child := range nodes {
		if triviaTypes[child.Type()] {
			continue
		}
		v, err := s.convert(child)
		if err != nil {
			return nil, err
		}
		out = appendConverted(out, v)
	}
	return out, nil
}

// stmtListOf converts the named children of a block-like construct into a
// statement-list node. Children appear in source order; an empty list is
// valid output.
func (s *session) stmtListOf(n sitter.Node) (*ast.Node, error) {
	out, err := s.convertList(namedChildren(n))
	if err != nil {
		return nil, err
	}
	return ast.NewList(ast.KindStmtList, resolveLine(n), out...), nil
}

// stmtBody wraps the body of a control construct in a statement list,
// whether the input is a braced block, an alternative-syntax block, or a
// single statement.
func (s *session) stmtBody(n sitter.Node) (*ast.Node, error) {
	if n.IsNull() {
		return ast.NewList(ast.KindStmtList, 0), nil
	}
	switch n.Type() {
	case "compound_statement", "colon_block", "declaration_list", "switch_block", "enum_declaration_list":
		return s.stmtListOf(n)
	default:
		out, err := s.convertList([]sitter.Node{n})
		if err != nil {
			return nil, err
		}
		return ast.NewList(ast.KindStmtList, nodeLine(n), out...), nil
	}
}

// exprOf converts a child subexpression, returning nil for a null input.
func (s *session) exprOf(n sitter.Node) (any, error) {
	if n.IsNull() {
		return nil, nil
	}
	return s.convert(n)
}

// Sentinel names substituted under the placeholder policy.
const (
	placeholderExpr       = "__INCOMPLETE_EXPR__"
	placeholderVariable   = "__INCOMPLETE_VARIABLE__"
	placeholderProperty   = "__INCOMPLETE_PROPERTY__"
	placeholderClassConst = "__INCOMPLETE_CLASS_CONST__"
)

// incompleteExpr applies the run's incomplete-construct policy to a missing
// required sub-expression: nil under the drop policy, a sentinel constant
// node otherwise.
func (s *session) incompleteExpr(line int) *ast.Node {
	if s.policy == PolicyDrop {
		return nil
	}
	return ast.New(ast.KindConst, 0, line,
		ast.Child{Key: "name", Val: nameNode(placeholderExpr, line)})
}

// incompleteName applies the policy to a missing required name, returning
// the sentinel string and whether a value is available.
func (s *session) incompleteName(sentinel string) (string, bool) {
	if s.policy == PolicyDrop {
		return "", false
	}
	return sentinel, true
}

// isMissingNode reports whether a required input node is unusable.
func isMissingNode(n sitter.Node) bool {
	return n.IsNull() || n.IsMissing() || n.Type() == "ERROR"
}

// variableName extracts the bare name of a variable_name node, without the
// dollar sign.
func (s *session) variableName(n sitter.Node) (string, bool) {
	if isMissingNode(n) {
		return "", false
	}
	if inner := firstNamedChild(n); !inner.IsNull() && inner.Type() == "name" {
		return s.text(inner), true
	}
	name := strings.TrimPrefix(s.text(n), "$")
	if name == "" {
		return "", false
	}
	return name, true
}
