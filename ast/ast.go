// Package ast defines the canonical node representation produced by the
// converter and consumed by downstream static-analysis tooling. Kind and flag
// numbering is an external compatibility contract; see kind.go and flags.go.
package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Node is a single output tree node. Nodes are built once, bottom-up, and are
// never mutated afterwards; the whole tree is owned by the caller.
//
// Children is an ordered mapping: the key set and order are fixed per kind by
// the schema (see schema.go). For list kinds the children are positional and
// every key is empty. Child values are *Node, int64, float64, string, bool,
// or nil for an explicit null.
//
// Name, Doc and EndLine are only populated on declaration kinds. At schema
// version 40 name and doc comment live here, out of band; at version 50 they
// are encoded as leading children instead and these fields stay zero.
type Node struct {
	Kind     Kind
	Flags    int
	Line     int
	EndLine  int
	Name     string
	Doc      *string
	Children []Child
}

// Child is one entry of a node's ordered child mapping.
type Child struct {
	Key string
	Val any
}

// New constructs a node with the given ordered children.
func New(kind Kind, flags, line int, children ...Child) *Node {
	return &Node{Kind: kind, Flags: flags, Line: line, Children: children}
}

// NewList constructs a list node with positional children.
func NewList(kind Kind, line int, vals ...any) *Node {
	children := make([]Child, len(vals))
	for i, v := range vals {
		children[i] = Child{Val: v}
	}
	return &Node{Kind: kind, Line: line, Children: children}
}

// Child returns the value stored under key and whether the key is present.
func (n *Node) Child(key string) (any, bool) {
	for _, c := range n.Children {
		if c.Key == key {
			return c.Val, true
		}
	}
	return nil, false
}

// ChildNode returns the child stored under key when it is a node.
func (n *Node) ChildNode(key string) *Node {
	v, ok := n.Child(key)
	if !ok {
		return nil
	}
	node, _ := v.(*Node)
	return node
}

// Keys returns the child keys in order.
func (n *Node) Keys() []string {
	keys := make([]string, len(n.Children))
	for i, c := range n.Children {
		keys[i] = c.Key
	}
	return keys
}

// List returns the positional child values of a list node.
func (n *Node) List() []any {
	vals := make([]any, len(n.Children))
	for i, c := range n.Children {
		vals[i] = c.Val
	}
	return vals
}

// MarshalJSON renders the node with its children in schema order. List kinds
// marshal children as an array, everything else as an object; encoding/json
// alone cannot express the ordered mapping, so the object is assembled by
// hand.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"kind":`)
	fmt.Fprintf(&buf, "%d", n.Kind)
	fmt.Fprintf(&buf, `,"kindName":%q`, n.Kind.String())
	if n.Flags != 0 {
		fmt.Fprintf(&buf, `,"flags":%d`, n.Flags)
	}
	fmt.Fprintf(&buf, `,"lineno":%d`, n.Line)
	if n.EndLine != 0 {
		fmt.Fprintf(&buf, `,"endLineno":%d`, n.EndLine)
	}
	if n.Name != "" {
		fmt.Fprintf(&buf, `,"name":%q`, n.Name)
	}
	if n.Doc != nil {
		fmt.Fprintf(&buf, `,"docComment":%q`, *n.Doc)
	}
	buf.WriteString(`,"children":`)
	if n.Kind.IsList() {
		buf.WriteByte('[')
		for i, c := range n.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(&buf, c.Val); err != nil {
				return nil, err
			}
		}
		buf.WriteByte(']')
	} else {
		buf.WriteByte('{')
		for i, c := range n.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, "%q:", c.Key)
			if err := writeJSONValue(&buf, c.Val); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
