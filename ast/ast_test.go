package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func assign(line int) *Node {
	return New(KindAssign, 0, line,
		Child{Key: "var", Val: New(KindVar, 0, line, Child{Key: "name", Val: "x"})},
		Child{Key: "expr", Val: int64(1)})
}

func TestChildAccessors(t *testing.T) {
	n := assign(3)
	v, ok := n.Child("expr")
	require.True(t, ok)
	require.Equal(t, int64(1), v)

	_, ok = n.Child("missing")
	require.False(t, ok)

	require.NotNil(t, n.ChildNode("var"))
	require.Nil(t, n.ChildNode("expr"))
	require.Equal(t, []string{"var", "expr"}, n.Keys())
}

func TestValidateAcceptsSchemaShapes(t *testing.T) {
	require.NoError(t, Validate(assign(1)))
	require.NoError(t, Validate(NewList(KindStmtList, 1, assign(1), int64(2), "s", nil)))

	// The catch list may be omitted from a try, the finally child may not.
	try := New(KindTry, 0, 1,
		Child{Key: "try", Val: NewList(KindStmtList, 1)},
		Child{Key: "finally", Val: nil})
	require.NoError(t, Validate(try))
}

func TestValidateRejectsWrongShapes(t *testing.T) {
	swapped := New(KindAssign, 0, 1,
		Child{Key: "expr", Val: int64(1)},
		Child{Key: "var", Val: nil})
	require.Error(t, Validate(swapped))

	missing := New(KindTry, 0, 1, Child{Key: "try", Val: NewList(KindStmtList, 1)})
	require.Error(t, Validate(missing))

	extra := New(KindVar, 0, 1,
		Child{Key: "name", Val: "x"},
		Child{Key: "bogus", Val: nil})
	require.Error(t, Validate(extra))

	keyedList := NewList(KindStmtList, 1)
	keyedList.Children = []Child{{Key: "oops", Val: nil}}
	require.Error(t, Validate(keyedList))
}

func TestValidateDeclPrefix(t *testing.T) {
	fn := &Node{Kind: KindFuncDecl, Line: 1, Children: []Child{
		{Key: "name", Val: "f"},
		{Key: "docComment", Val: "/** d */"},
		{Key: "__declId", Val: int64(0)},
		{Key: "params", Val: NewList(KindParamList, 1)},
		{Key: "uses", Val: nil},
		{Key: "stmts", Val: NewList(KindStmtList, 1)},
		{Key: "returnType", Val: nil},
	}}
	require.NoError(t, Validate(fn))
}

func TestMarshalJSONKeepsChildOrder(t *testing.T) {
	out, err := json.Marshal(assign(3))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"kind": 517,
		"kindName": "AST_ASSIGN",
		"lineno": 3,
		"children": {
			"var": {"kind": 256, "kindName": "AST_VAR", "lineno": 3, "children": {"name": "x"}},
			"expr": 1
		}
	}`, string(out))
	// Order matters beyond JSON equality: var must precede expr.
	require.Less(t, indexOf(string(out), `"var"`), indexOf(string(out), `"expr"`))
}

func TestMarshalJSONListAsArray(t *testing.T) {
	out, err := json.Marshal(NewList(KindStmtList, 1, int64(1), "s"))
	require.NoError(t, err)
	require.JSONEq(t, `{"kind": 132, "kindName": "AST_STMT_LIST", "lineno": 1, "children": [1, "s"]}`, string(out))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestDump(t *testing.T) {
	out := Dump(assign(3))
	require.Contains(t, out, "AST_ASSIGN @ 3")
	require.Contains(t, out, "AST_VAR @ 3")
	require.Contains(t, out, `name: "x"`)
	require.Contains(t, out, "expr: 1")
}

func TestKindPredicates(t *testing.T) {
	require.True(t, KindFuncDecl.IsDecl())
	require.False(t, KindAssign.IsDecl())
	require.True(t, KindStmtList.IsList())
	require.False(t, KindVar.IsList())
	require.Equal(t, "AST_ASSIGN", KindAssign.String())
	require.Equal(t, "AST_UNKNOWN", Kind(9999).String())
}
