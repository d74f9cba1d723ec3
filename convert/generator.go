package convert

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// generatorBoundaries are the node types at which the yield scan stops;
// anything declaring its own function body is classified independently.
var generatorBoundaries = map[string]bool{
	"function_definition":                    true,
	"method_declaration":                     true,
	"anonymous_function_creation_expression": true,
	"anonymous_function":                     true,
	"arrow_function":                         true,
	"class_declaration":                      true,
	"interface_declaration":                  true,
	"trait_declaration":                      true,
	"enum_declaration":                       true,
}

// isGenerator reports whether a function body's own statement tree contains a
// yield or yield-from construct. The scan short-circuits on the first match
// and never descends into a nested function, closure or class.
func isGenerator(body sitter.Node) bool {
	if body.IsNull() {
		return false
	}
	var scan func(n sitter.Node) bool
	scan = func(n sitter.Node) bool {
		if n.Type() == "yield_expression" {
			return true
		}
		for i := uint32(0); i < n.NamedChildCount(); i++ {
			child := n.NamedChild(i)
			if generatorBoundaries[child.Type()] {
				continue
			}
			if scan(child) {
				return true
			}
		}
		return false
	}
	return scan(body)
}
