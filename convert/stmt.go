package convert

import (
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/shinyvision/phpast/ast"
)

// childVal converts a possibly-nil node into a child value without producing
// a typed nil inside the interface.
func childVal(n *ast.Node) any {
	if n == nil {
		return nil
	}
	return n
}

func (s *session) convertProgram(n sitter.Node) (any, error) {
	return s.stmtListOf(n)
}

func (s *session) convertCompound(n sitter.Node) (any, error) {
	return s.stmtListOf(n)
}

// convertError applies the incomplete-construct policy to an error subtree
// left behind by the front end.
func (s *session) convertError(n sitter.Node) (any, error) {
	if node := s.incompleteExpr(nodeLine(n)); node != nil {
		return node, nil
	}
	return nil, nil
}

func (s *session) convertExpressionStatement(n sitter.Node) (any, error) {
	var exprs, broken []sitter.Node
	for _, child := range namedChildren(n) {
		if triviaTypes[child.Type()] {
			continue
		}
		if child.Type() == "ERROR" || child.IsMissing() {
			broken = append(broken, child)
			continue
		}
		exprs = append(exprs, child)
	}
	if len(broken) == 0 {
		if len(exprs) == 0 {
			return nil, nil
		}
		return s.convert(exprs[0])
	}

	// The statement did not parse as a whole; converting the intact
	// fragments alone would silently change its meaning.
	line := nodeLine(n)
	if s.policy == PolicyDrop {
		return nil, nil
	}
	if len(exprs) == 1 && len(broken) == 1 && strings.TrimSpace(s.text(broken[0])) == "=" {
		varV, err := s.convert(exprs[0])
		if err != nil {
			return nil, err
		}
		if node, ok := varV.(*ast.Node); ok && node != nil {
			return ast.New(ast.KindAssign, 0, line,
				ast.Child{Key: "var", Val: node},
				ast.Child{Key: "expr", Val: s.incompleteExpr(line)}), nil
		}
	}
	return childVal(s.incompleteExpr(line)), nil
}

func (s *session) convertIf(n sitter.Node) (any, error) {
	line := nodeLine(n)
	cond, err := s.exprOf(n.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	body, err := s.stmtBody(n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	elems := []any{ast.New(ast.KindIfElem, 0, line,
		ast.Child{Key: "cond", Val: cond},
		ast.Child{Key: "stmts", Val: body})}

	for _, alt := range fieldChildren(n, "alternative") {
		altLine := nodeLine(alt)
		switch alt.Type() {
		case "else_if_clause":
			altCond, err := s.exprOf(alt.ChildByFieldName("condition"))
			if err != nil {
				return nil, err
			}
			altBody, err := s.stmtBody(alt.ChildByFieldName("body"))
			if err != nil {
				return nil, err
			}
			elems = append(elems, ast.New(ast.KindIfElem, 0, altLine,
				ast.Child{Key: "cond", Val: altCond},
				ast.Child{Key: "stmts", Val: altBody}))
		case "else_clause":
			altBody, err := s.stmtBody(alt.ChildByFieldName("body"))
			if err != nil {
				return nil, err
			}
			elems = append(elems, ast.New(ast.KindIfElem, 0, altLine,
				ast.Child{Key: "cond", Val: nil},
				ast.Child{Key: "stmts", Val: altBody}))
		}
	}
	return ast.NewList(ast.KindIf, line, elems...), nil
}

func (s *session) convertWhile(n sitter.Node) (any, error) {
	cond, err := s.exprOf(n.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	body, err := s.stmtBody(n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindWhile, 0, nodeLine(n),
		ast.Child{Key: "cond", Val: cond},
		ast.Child{Key: "stmts", Val: body}), nil
}

func (s *session) convertDoWhile(n sitter.Node) (any, error) {
	body, err := s.stmtBody(n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	cond, err := s.exprOf(n.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindDoWhile, 0, nodeLine(n),
		ast.Child{Key: "stmts", Val: body},
		ast.Child{Key: "cond", Val: cond}), nil
}

// exprClause builds a for-loop clause: nil for an empty clause, never an
// empty list.
func (s *session) exprClause(nodes []sitter.Node) (*ast.Node, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	var exprs []sitter.Node
	for _, n := range nodes {
		exprs = append(exprs, flattenSequence(n)...)
	}
	vals, err := s.convertList(exprs)
	if err != nil {
		return nil, err
	}
	return ast.NewList(ast.KindExprList, nodeLine(nodes[0]), vals...), nil
}

func (s *session) convertFor(n sitter.Node) (any, error) {
	init, err := s.exprClause(fieldChildren(n, "initialize"))
	if err != nil {
		return nil, err
	}
	cond, err := s.exprClause(fieldChildren(n, "condition"))
	if err != nil {
		return nil, err
	}
	loop, err := s.exprClause(fieldChildren(n, "update"))
	if err != nil {
		return nil, err
	}
	body, err := s.stmtBody(n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindFor, 0, nodeLine(n),
		ast.Child{Key: "init", Val: childVal(init)},
		ast.Child{Key: "cond", Val: childVal(cond)},
		ast.Child{Key: "loop", Val: childVal(loop)},
		ast.Child{Key: "stmts", Val: body}), nil
}

func (s *session) convertForeach(n sitter.Node) (any, error) {
	line := nodeLine(n)
	body := n.ChildByFieldName("body")

	var parts []sitter.Node
	for _, k := range namedChildren(n) {
		if triviaTypes[k.Type()] {
			continue
		}
		if !body.IsNull() && k.StartByte() == body.StartByte() {
			continue
		}
		parts = append(parts, k)
	}
	if body.IsNull() && len(parts) > 1 {
		last := parts[len(parts)-1]
		t := last.Type()
		if t == "compound_statement" || t == "colon_block" || strings.HasSuffix(t, "_statement") {
			body = last
			parts = parts[:len(parts)-1]
		}
	}
	if len(parts) == 0 {
		return s.stub(n), nil
	}

	exprV, err := s.convert(parts[0])
	if err != nil {
		return nil, err
	}
	var keyV, valV any
	if len(parts) > 1 {
		target := parts[len(parts)-1]
		if target.Type() == "pair" {
			pair := namedChildren(target)
			if len(pair) > 0 {
				if keyV, err = s.convert(pair[0]); err != nil {
					return nil, err
				}
			}
			if len(pair) > 1 {
				if valV, err = s.convert(pair[1]); err != nil {
					return nil, err
				}
			}
		} else if valV, err = s.convert(target); err != nil {
			return nil, err
		}
	}
	stmts, err := s.stmtBody(body)
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindForeach, 0, line,
		ast.Child{Key: "expr", Val: exprV},
		ast.Child{Key: "value", Val: valV},
		ast.Child{Key: "key", Val: keyV},
		ast.Child{Key: "stmts", Val: stmts}), nil
}

func (s *session) convertSwitch(n sitter.Node) (any, error) {
	line := nodeLine(n)
	cond, err := s.exprOf(n.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	body := n.ChildByFieldName("body")
	var cases []any
	for _, c := range namedChildren(body) {
		switch c.Type() {
		case "case_statement", "default_statement":
		default:
			continue
		}
		caseLine := nodeLine(c)
		var condV any
		var stmtNodes []sitter.Node
		for i := uint32(0); i < c.NamedChildCount(); i++ {
			child := c.NamedChild(i)
			if c.FieldNameForNamedChild(i) == "value" {
				if condV, err = s.convert(child); err != nil {
					return nil, err
				}
				continue
			}
			stmtNodes = append(stmtNodes, child)
		}
		vals, err := s.convertList(stmtNodes)
		if err != nil {
			return nil, err
		}
		cases = append(cases, ast.New(ast.KindSwitchCase, 0, caseLine,
			ast.Child{Key: "cond", Val: condV},
			ast.Child{Key: "stmts", Val: ast.NewList(ast.KindStmtList, caseLine, vals...)}))
	}
	return ast.New(ast.KindSwitch, 0, line,
		ast.Child{Key: "cond", Val: cond},
		ast.Child{Key: "stmts", Val: ast.NewList(ast.KindSwitchList, line, cases...)}), nil
}

func (s *session) convertTry(n sitter.Node) (any, error) {
	line := nodeLine(n)
	tryBody, err := s.stmtListOf(n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}

	var catches []any
	for _, cc := range childrenOfType(n, "catch_clause") {
		catchLine := nodeLine(cc)
		classes := ast.NewList(ast.KindNameList, catchLine)
		if typeList := cc.ChildByFieldName("type"); !typeList.IsNull() {
			var names []any
			for _, t := range namedChildren(typeList) {
				names = append(names, nameNode(s.text(t), nodeLine(t)))
			}
			classes = ast.NewList(ast.KindNameList, catchLine, names...)
		}
		var varV any
		if v := cc.ChildByFieldName("name"); !v.IsNull() {
			if name, ok := s.variableName(v); ok {
				varV = ast.New(ast.KindVar, 0, nodeLine(v), ast.Child{Key: "name", Val: name})
			}
		}
		catchBody, err := s.stmtBody(cc.ChildByFieldName("body"))
		if err != nil {
			return nil, err
		}
		catches = append(catches, ast.New(ast.KindCatch, 0, catchLine,
			ast.Child{Key: "class", Val: classes},
			ast.Child{Key: "var", Val: varV},
			ast.Child{Key: "stmts", Val: catchBody}))
	}

	var finallyV any
	if fc := childrenOfType(n, "finally_clause"); len(fc) > 0 {
		body, err := s.stmtBody(fc[0].ChildByFieldName("body"))
		if err != nil {
			return nil, err
		}
		finallyV = body
	}

	// An empty catch list is omitted entirely; finally is always present,
	// explicitly nil when absent.
	children := []ast.Child{{Key: "try", Val: tryBody}}
	if len(catches) > 0 {
		children = append(children, ast.Child{Key: "catches", Val: ast.NewList(ast.KindCatchList, line, catches...)})
	}
	children = append(children, ast.Child{Key: "finally", Val: finallyV})
	return ast.New(ast.KindTry, 0, line, children...), nil
}

func (s *session) convertReturn(n sitter.Node) (any, error) {
	var exprV any
	var err error
	for _, child := range namedChildren(n) {
		if triviaTypes[child.Type()] {
			continue
		}
		if exprV, err = s.convert(child); err != nil {
			return nil, err
		}
		break
	}
	return ast.New(ast.KindReturn, 0, nodeLine(n), ast.Child{Key: "expr", Val: exprV}), nil
}

func (s *session) convertBreak(n sitter.Node) (any, error) {
	return s.breakLike(n, ast.KindBreak)
}

func (s *session) convertContinue(n sitter.Node) (any, error) {
	return s.breakLike(n, ast.KindContinue)
}

func (s *session) breakLike(n sitter.Node, kind ast.Kind) (any, error) {
	var depth any
	var err error
	if inner := firstNamedChild(n); !inner.IsNull() {
		if depth, err = s.convert(inner); err != nil {
			return nil, err
		}
	}
	return ast.New(kind, 0, nodeLine(n), ast.Child{Key: "depth", Val: depth}), nil
}

func (s *session) convertGoto(n sitter.Node) (any, error) {
	label := ""
	if inner := firstNamedChild(n); !inner.IsNull() {
		label = s.text(inner)
	}
	return ast.New(ast.KindGoto, 0, nodeLine(n), ast.Child{Key: "label", Val: label}), nil
}

func (s *session) convertLabel(n sitter.Node) (any, error) {
	name := ""
	if inner := firstNamedChild(n); !inner.IsNull() {
		name = s.text(inner)
	}
	return ast.New(ast.KindLabel, 0, nodeLine(n), ast.Child{Key: "name", Val: name}), nil
}

// convertEcho desugars a multi-expression echo statement into one echo node
// per expression, all siblings on the statement's source line.
func (s *session) convertEcho(n sitter.Node) (any, error) {
	line := nodeLine(n)
	var out []*ast.Node
	for _, child := range namedChildren(n) {
		if triviaTypes[child.Type()] {
			continue
		}
		for _, part := range flattenSequence(child) {
			v, err := s.convert(part)
			if err != nil {
				return nil, err
			}
			if v == nil {
				continue
			}
			out = append(out, ast.New(ast.KindEcho, 0, line, ast.Child{Key: "expr", Val: v}))
		}
	}
	return out, nil
}

func (s *session) convertUnset(n sitter.Node) (any, error) {
	line := nodeLine(n)
	var out []*ast.Node
	for _, child := range namedChildren(n) {
		if triviaTypes[child.Type()] {
			continue
		}
		v, err := s.convert(child)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		out = append(out, ast.New(ast.KindUnset, 0, line, ast.Child{Key: "var", Val: v}))
	}
	return out, nil
}

func (s *session) convertGlobal(n sitter.Node) (any, error) {
	line := nodeLine(n)
	var out []*ast.Node
	for _, child := range childrenOfType(n, "variable_name", "dynamic_variable_name") {
		v, err := s.convert(child)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		out = append(out, ast.New(ast.KindGlobal, 0, line, ast.Child{Key: "var", Val: v}))
	}
	return out, nil
}

func (s *session) convertFunctionStatic(n sitter.Node) (any, error) {
	line := nodeLine(n)
	var out []*ast.Node
	for _, decl := range childrenOfType(n, "static_variable_declaration") {
		kids := namedChildren(decl)
		if len(kids) == 0 {
			continue
		}
		name, ok := s.variableName(kids[0])
		if !ok {
			continue
		}
		varNode := ast.New(ast.KindVar, 0, nodeLine(kids[0]), ast.Child{Key: "name", Val: name})
		var defV any
		if len(kids) > 1 {
			var err error
			if defV, err = s.convert(kids[1]); err != nil {
				return nil, err
			}
		}
		out = append(out, ast.New(ast.KindStatic, 0, line,
			ast.Child{Key: "var", Val: varNode},
			ast.Child{Key: "default", Val: defV}))
	}
	return out, nil
}

func (s *session) convertConstDeclaration(n sitter.Node) (any, error) {
	line := nodeLine(n)
	kind := ast.KindConstDecl
	flags := 0
	if p := n.Parent(); !p.IsNull() {
		switch p.Type() {
		case "declaration_list", "enum_declaration_list":
			kind = ast.KindClassConstDecl
			flags = s.modifierFlags(namedChildren(n), false)
		}
	}
	doc := s.docCommentFor(n)
	var elems []any
	for i, elem := range childrenOfType(n, "const_element") {
		kids := namedChildren(elem)
		if len(kids) == 0 {
			continue
		}
		var valV any
		var err error
		if len(kids) > 1 {
			if valV, err = s.convert(kids[1]); err != nil {
				return nil, err
			}
		}
		var elemDoc *string
		if i == 0 {
			elemDoc = doc
		}
		elems = append(elems, ast.New(ast.KindConstElem, 0, nodeLine(elem),
			ast.Child{Key: "name", Val: s.text(kids[0])},
			ast.Child{Key: "value", Val: valV},
			docChild(elemDoc)))
	}
	node := ast.NewList(kind, line, elems...)
	node.Flags = flags
	return node, nil
}

func (s *session) convertDeclareStatement(n sitter.Node) (any, error) {
	line := nodeLine(n)
	var elems []any
	for _, d := range childrenOfType(n, "declare_directive") {
		// The directive name is an anonymous token; only the value node is
		// named, so the name comes from the text before the equals sign.
		name := strings.TrimSpace(s.text(d))
		if i := strings.IndexByte(name, '='); i >= 0 {
			name = strings.TrimSpace(name[:i])
		}
		var valV any
		var err error
		if kids := namedChildren(d); len(kids) > 0 {
			if valV, err = s.convert(kids[len(kids)-1]); err != nil {
				return nil, err
			}
		}
		elems = append(elems, ast.New(ast.KindConstElem, 0, nodeLine(d),
			ast.Child{Key: "name", Val: name},
			ast.Child{Key: "value", Val: valV},
			docChild(nil)))
	}
	var stmtsV any
	for _, child := range namedChildren(n) {
		if child.Type() == "declare_directive" || triviaTypes[child.Type()] {
			continue
		}
		body, err := s.stmtBody(child)
		if err != nil {
			return nil, err
		}
		stmtsV = body
		break
	}
	return ast.New(ast.KindDeclare, 0, line,
		ast.Child{Key: "declares", Val: ast.NewList(ast.KindConstDecl, line, elems...)},
		ast.Child{Key: "stmts", Val: stmtsV}), nil
}

func (s *session) convertExitStatement(n sitter.Node) (any, error) {
	var exprV any
	var err error
	if inner := firstNamedChild(n); !inner.IsNull() {
		if exprV, err = s.convert(inner); err != nil {
			return nil, err
		}
	}
	return ast.New(ast.KindExit, 0, nodeLine(n), ast.Child{Key: "expr", Val: exprV}), nil
}

func (s *session) convertThrowStatement(n sitter.Node) (any, error) {
	exprV, err := s.exprOf(firstNamedChild(n))
	if err != nil {
		return nil, err
	}
	if exprV == nil {
		if node := s.incompleteExpr(nodeLine(n)); node != nil {
			exprV = node
		} else {
			return nil, nil
		}
	}
	return ast.New(ast.KindThrow, 0, nodeLine(n), ast.Child{Key: "expr", Val: exprV}), nil
}

// convertNamespace applies the namespace normalization: an anonymous block,
// or a block whose statements occupy the wrapper's own line range, nests its
// statement list; any other braced form becomes a marker node followed by the
// statements spliced as siblings. The line-range comparison is a heuristic
// and can misclassify unusually formatted namespaces.
func (s *session) convertNamespace(n sitter.Node) (any, error) {
	line := nodeLine(n)
	var nameV any
	if name := n.ChildByFieldName("name"); !name.IsNull() {
		nameV = s.text(name)
	}
	body := n.ChildByFieldName("body")
	if body.IsNull() {
		return ast.New(ast.KindNamespace, 0, line,
			ast.Child{Key: "name", Val: nameV},
			ast.Child{Key: "stmts", Val: nil}), nil
	}

	// Compare the contained statements' rows, not the brace block's: the
	// block's closing brace always shares the wrapper's last row.
	var inner []sitter.Node
	for _, k := range namedChildren(body) {
		if triviaTypes[k.Type()] {
			continue
		}
		inner = append(inner, k)
	}
	sameRange := len(inner) == 0 ||
		(int(inner[0].StartPoint().Row) == int(n.StartPoint().Row) &&
			int(inner[len(inner)-1].EndPoint().Row) == int(n.EndPoint().Row))
	if nameV == nil || sameRange {
		stmts, err := s.stmtListOf(body)
		if err != nil {
			return nil, err
		}
		return ast.New(ast.KindNamespace, 0, line,
			ast.Child{Key: "name", Val: nameV},
			ast.Child{Key: "stmts", Val: stmts}), nil
	}

	out := []any{ast.New(ast.KindNamespace, 0, line,
		ast.Child{Key: "name", Val: nameV},
		ast.Child{Key: "stmts", Val: nil})}
	vals, err := s.convertList(inner)
	if err != nil {
		return nil, err
	}
	return append(out, vals...), nil
}

func (s *session) convertNamespaceUse(n sitter.Node) (any, error) {
	line := nodeLine(n)
	flags := ast.UseNormal
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s.text(n)), "use"))
	switch {
	case strings.HasPrefix(rest, "function"):
		flags = ast.UseFunction
	case strings.HasPrefix(rest, "const"):
		flags = ast.UseConst
	}

	if groups := childrenOfType(n, "namespace_use_group"); len(groups) > 0 {
		prefix := ""
		if names := childrenOfType(n, "namespace_name", "qualified_name", "name"); len(names) > 0 {
			prefix = strings.TrimPrefix(s.text(names[0]), `\`)
		}
		var elems []any
		for _, clause := range childrenOfType(groups[0], "namespace_use_clause", "namespace_use_group_clause") {
			elems = append(elems, s.useElem(clause))
		}
		uses := ast.NewList(ast.KindUse, line, elems...)
		uses.Flags = flags
		node := ast.New(ast.KindGroupUse, flags, line,
			ast.Child{Key: "prefix", Val: prefix},
			ast.Child{Key: "uses", Val: uses})
		return node, nil
	}

	var elems []any
	for _, clause := range childrenOfType(n, "namespace_use_clause") {
		elems = append(elems, s.useElem(clause))
	}
	node := ast.NewList(ast.KindUse, line, elems...)
	node.Flags = flags
	return node, nil
}

func (s *session) useElem(clause sitter.Node) *ast.Node {
	line := nodeLine(clause)
	name := ""
	var aliasV any
	for _, child := range namedChildren(clause) {
		switch child.Type() {
		case "name", "qualified_name":
			if name == "" {
				name = strings.TrimPrefix(s.text(child), `\`)
			} else {
				aliasV = s.text(child)
			}
		case "namespace_aliasing_clause":
			if alias := firstNamedChild(child); !alias.IsNull() {
				aliasV = s.text(alias)
			}
		}
	}
	return ast.New(ast.KindUseElem, 0, line,
		ast.Child{Key: "name", Val: name},
		ast.Child{Key: "alias", Val: aliasV})
}

// convertTraitUse handles `use Trait;` inside a class body, including alias
// and precedence adaptations.
func (s *session) convertTraitUse(n sitter.Node) (any, error) {
	line := nodeLine(n)
	var traits []any
	for _, t := range childrenOfType(n, "name", "qualified_name") {
		traits = append(traits, nameNode(s.text(t), nodeLine(t)))
	}

	var adaptV any
	if lists := childrenOfType(n, "use_list"); len(lists) > 0 {
		var items []any
		for _, clause := range namedChildren(lists[0]) {
			switch clause.Type() {
			case "use_as_clause":
				items = append(items, s.traitAlias(clause))
			case "use_instead_of_clause":
				items = append(items, s.traitPrecedence(clause))
			}
		}
		adaptV = ast.NewList(ast.KindTraitAdaptations, line, items...)
	}

	return ast.New(ast.KindUseTrait, 0, line,
		ast.Child{Key: "traits", Val: ast.NewList(ast.KindNameList, line, traits...)},
		ast.Child{Key: "adaptations", Val: adaptV}), nil
}

func (s *session) traitAlias(clause sitter.Node) *ast.Node {
	line := nodeLine(clause)
	kids := namedChildren(clause)
	var method *ast.Node
	flags := 0
	var aliasV any
	for i, k := range kids {
		if i == 0 {
			method = s.methodRef(k)
			continue
		}
		switch k.Type() {
		case "visibility_modifier":
			// Trait aliases never assume public: absence means absence.
			flags |= s.modifierFlags([]sitter.Node{k}, false)
		case "name":
			aliasV = s.text(k)
		}
	}
	return ast.New(ast.KindTraitAlias, flags, line,
		ast.Child{Key: "method", Val: childVal(method)},
		ast.Child{Key: "alias", Val: aliasV})
}

func (s *session) traitPrecedence(clause sitter.Node) *ast.Node {
	line := nodeLine(clause)
	kids := namedChildren(clause)
	var method *ast.Node
	var insteadof []any
	for i, k := range kids {
		if i == 0 {
			method = s.methodRef(k)
			continue
		}
		switch k.Type() {
		case "name", "qualified_name":
			insteadof = append(insteadof, nameNode(s.text(k), nodeLine(k)))
		}
	}
	return ast.New(ast.KindTraitPrecedence, 0, line,
		ast.Child{Key: "method", Val: childVal(method)},
		ast.Child{Key: "insteadof", Val: ast.NewList(ast.KindNameList, line, insteadof...)})
}

// methodRef builds the method-reference node of a trait adaptation from
// either a bare method name or a Class::method pair.
func (s *session) methodRef(n sitter.Node) *ast.Node {
	line := nodeLine(n)
	if n.Type() == "class_constant_access_expression" {
		kids := namedChildren(n)
		var classV, methodV any
		if len(kids) > 0 {
			classV = nameNode(s.text(kids[0]), nodeLine(kids[0]))
		}
		if len(kids) > 1 {
			methodV = s.text(kids[1])
		}
		return ast.New(ast.KindMethodReference, 0, line,
			ast.Child{Key: "class", Val: classV},
			ast.Child{Key: "method", Val: methodV})
	}
	return ast.New(ast.KindMethodReference, 0, line,
		ast.Child{Key: "class", Val: nil},
		ast.Child{Key: "method", Val: s.text(n)})
}
