package convert

import (
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/shinyvision/phpast/ast"
)

// primitiveTypes maps lower-cased primitive type names to their numeric type
// flags.
var primitiveTypes = map[string]int{
	"null":     ast.TypeNull,
	"bool":     ast.TypeBool,
	"int":      ast.TypeLong,
	"float":    ast.TypeDouble,
	"string":   ast.TypeString,
	"array":    ast.TypeArray,
	"object":   ast.TypeObject,
	"callable": ast.TypeCallable,
	"void":     ast.TypeVoid,
	"iterable": ast.TypeIterable,
}

// TypeFromName is the standalone type-mapping entry point: it maps a type
// name to a type node or a class-name reference node for the given schema
// version, rejecting unsupported versions before any work.
func TypeFromName(version Version, name string, line int) (*ast.Node, error) {
	if err := CheckVersion(version); err != nil {
		return nil, err
	}
	return typeFromName(name, line), nil
}

func typeFromName(name string, line int) *ast.Node {
	if !strings.ContainsRune(name, '\\') {
		if flag, ok := primitiveTypes[strings.ToLower(name)]; ok {
			return ast.New(ast.KindType, flag, line)
		}
	}
	return nameNode(name, line)
}

// nameNode builds a class/interface-name reference node, deriving the
// qualification flag from the spelling: a leading backslash means fully
// qualified, a `namespace\` prefix means namespace-relative, anything else is
// unqualified.
func nameNode(name string, line int) *ast.Node {
	flags := ast.NameNotFQ
	switch {
	case strings.HasPrefix(name, `\`):
		flags = ast.NameFQ
		name = name[1:]
	case len(name) > 10 && strings.EqualFold(name[:10], `namespace\`):
		flags = ast.NameRelative
		name = name[10:]
	}
	return ast.New(ast.KindName, flags, line, ast.Child{Key: "name", Val: name})
}

// convertType maps a type annotation subtree to its output node. The nullable
// wrapper becomes a dedicated nullable-type node carrying no flags of its
// own; the nullability is structural, unlike the flag-encoded primitives, and
// that asymmetry is part of the output contract.
func (s *session) convertType(n sitter.Node) *ast.Node {
	if n.IsNull() {
		return nil
	}
	line := nodeLine(n)
	switch n.Type() {
	case "optional_type", "nullable_type":
		inner := firstNamedChild(n)
		return ast.New(ast.KindNullableType, 0, line,
			ast.Child{Key: "type", Val: s.convertType(inner)})
	case "primitive_type", "bottom_type":
		return typeFromName(s.text(n), line)
	case "named_type":
		inner := firstNamedChild(n)
		if inner.IsNull() {
			return typeFromName(s.text(n), line)
		}
		return s.convertType(inner)
	case "union_type", "intersection_type":
		kind := ast.KindTypeUnion
		if n.Type() == "intersection_type" {
			kind = ast.KindTypeIntersection
		}
		var parts []any
		for i := uint32(0); i < n.NamedChildCount(); i++ {
			parts = append(parts, s.convertType(n.NamedChild(i)))
		}
		return ast.NewList(kind, line, parts...)
	case "name", "qualified_name", "relative_name":
		return typeFromName(s.text(n), line)
	default:
		return nameNode(s.text(n), line)
	}
}

// modifierFlags maps modifier nodes to their flag bits. implicitPublic
// controls whether the absence of a visibility modifier implies public; this
// is a per-call-site choice (method declarations say yes, trait aliases say
// no), not a global default.
func (s *session) modifierFlags(mods []sitter.Node, implicitPublic bool) int {
	flags := 0
	for _, m := range mods {
		switch m.Type() {
		case "visibility_modifier":
			switch strings.ToLower(s.text(m)) {
			case "public":
				flags |= ast.ModifierPublic
			case "protected":
				flags |= ast.ModifierProtected
			case "private":
				flags |= ast.ModifierPrivate
			}
		case "static_modifier":
			flags |= ast.ModifierStatic
		case "abstract_modifier":
			flags |= ast.ModifierAbstract
		case "final_modifier":
			flags |= ast.ModifierFinal
		case "readonly_modifier":
			flags |= ast.ModifierReadonly
		}
	}
	if implicitPublic && flags&(ast.ModifierPublic|ast.ModifierProtected|ast.ModifierPrivate) == 0 {
		flags |= ast.ModifierPublic
	}
	return flags
}

// castFlags maps the spelling inside a cast to its target type flag.
var castFlags = map[string]int{
	"int":     ast.TypeLong,
	"integer": ast.TypeLong,
	"bool":    ast.TypeBool,
	"boolean": ast.TypeBool,
	"float":   ast.TypeDouble,
	"double":  ast.TypeDouble,
	"real":    ast.TypeDouble,
	"string":  ast.TypeString,
	"binary":  ast.TypeString,
	"array":   ast.TypeArray,
	"object":  ast.TypeObject,
	"unset":   ast.TypeNull,
}
