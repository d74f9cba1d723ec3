package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders the tree in an indented text form, one node per line, for
// diagnostics and golden tests.
func Dump(n *Node) string {
	var b strings.Builder
	dumpValue(&b, n, 0)
	return b.String()
}

func dumpValue(b *strings.Builder, v any, depth int) {
	indent := strings.Repeat("    ", depth)
	switch val := v.(type) {
	case nil:
		b.WriteString(indent + "null\n")
	case *Node:
		dumpNode(b, val, depth)
	case string:
		b.WriteString(indent + strconv.Quote(val) + "\n")
	default:
		fmt.Fprintf(b, "%s%v\n", indent, val)
	}
}

func dumpNode(b *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("    ", depth)
	b.WriteString(indent + n.Kind.String())
	if n.Flags != 0 {
		fmt.Fprintf(b, " flags(%d)", n.Flags)
	}
	fmt.Fprintf(b, " @ %d", n.Line)
	if n.EndLine != 0 {
		fmt.Fprintf(b, "-%d", n.EndLine)
	}
	if n.Name != "" {
		fmt.Fprintf(b, " name(%s)", n.Name)
	}
	b.WriteByte('\n')
	for i, c := range n.Children {
		key := c.Key
		if n.Kind.IsList() {
			key = strconv.Itoa(i)
		}
		b.WriteString(strings.Repeat("    ", depth+1) + key + ":")
		if child, ok := c.Val.(*Node); ok {
			b.WriteByte('\n')
			dumpNode(b, child, depth+2)
			continue
		}
		b.WriteByte(' ')
		switch val := c.Val.(type) {
		case nil:
			b.WriteString("null\n")
		case string:
			b.WriteString(strconv.Quote(val) + "\n")
		default:
			fmt.Fprintf(b, "%v\n", val)
		}
	}
}
