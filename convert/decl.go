package convert

import (
	"bytes"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/shinyvision/phpast/ast"
)

// ampersandBetween reports whether a by-reference marker appears in the
// source between the end of from and the start of until. The span must not
// cover type annotations, which can contain '&' themselves.
func (s *session) ampersandBetween(from, until uint) bool {
	if until <= from || int(until) > len(s.src) {
		return false
	}
	return bytes.ContainsRune(s.src[from:until], '&')
}

func (s *session) convertFunction(n sitter.Node) (any, error) {
	line, endLine := nodeLine(n), nodeEndLine(n)
	doc := s.docCommentFor(n)

	nameN := n.ChildByFieldName("name")
	var nameV any
	if name := s.text(nameN); name != "" {
		nameV = name
	} else if name, ok := s.incompleteName(placeholderExpr); ok {
		nameV = name
	} else {
		return nil, nil
	}

	paramsN := n.ChildByFieldName("parameters")
	params, err := s.convertParams(paramsN, line)
	if err != nil {
		return nil, err
	}

	flags := 0
	if !nameN.IsNull() && s.ampersandBetween(n.StartByte(), nameN.StartByte()) {
		flags |= ast.FlagReturnsRef
	}
	body := n.ChildByFieldName("body")
	if isGenerator(body) {
		flags |= ast.FlagGenerator
	}
	stmts, err := s.stmtBody(body)
	if err != nil {
		return nil, err
	}
	return s.newDecl(ast.KindFuncDecl, flags, line, endLine, nameV, doc,
		ast.Child{Key: "params", Val: params},
		ast.Child{Key: "uses", Val: nil},
		ast.Child{Key: "stmts", Val: stmts},
		ast.Child{Key: "returnType", Val: childVal(s.convertType(n.ChildByFieldName("return_type")))}), nil
}

func (s *session) convertMethod(n sitter.Node) (any, error) {
	line, endLine := nodeLine(n), nodeEndLine(n)
	doc := s.docCommentFor(n)

	nameN := n.ChildByFieldName("name")
	var nameV any
	if name := s.text(nameN); name != "" {
		nameV = name
	} else if name, ok := s.incompleteName(placeholderExpr); ok {
		nameV = name
	} else {
		return nil, nil
	}

	params, err := s.convertParams(n.ChildByFieldName("parameters"), line)
	if err != nil {
		return nil, err
	}

	// A method with no visibility modifier is public.
	flags := s.modifierFlags(namedChildren(n), true)
	if !nameN.IsNull() && s.ampersandBetween(n.StartByte(), nameN.StartByte()) {
		flags |= ast.FlagReturnsRef
	}
	body := n.ChildByFieldName("body")
	if isGenerator(body) {
		flags |= ast.FlagGenerator
	}
	var stmtsV any
	if !body.IsNull() {
		stmts, err := s.stmtBody(body)
		if err != nil {
			return nil, err
		}
		stmtsV = stmts
	}
	return s.newDecl(ast.KindMethod, flags, line, endLine, nameV, doc,
		ast.Child{Key: "params", Val: params},
		ast.Child{Key: "uses", Val: nil},
		ast.Child{Key: "stmts", Val: stmtsV},
		ast.Child{Key: "returnType", Val: childVal(s.convertType(n.ChildByFieldName("return_type")))}), nil
}

func (s *session) convertClassDeclaration(n sitter.Node) (any, error) {
	return s.classLike(n, 0)
}

func (s *session) convertInterfaceDeclaration(n sitter.Node) (any, error) {
	return s.classLike(n, ast.ClassInterface)
}

func (s *session) convertTraitDeclaration(n sitter.Node) (any, error) {
	return s.classLike(n, ast.ClassTrait)
}

func (s *session) convertEnumDeclaration(n sitter.Node) (any, error) {
	return s.classLike(n, ast.ClassEnum)
}

// classLike converts any class-style declaration. Interface parents land in
// the implements child so that downstream consumers see one shape for all
// inheritance lists.
func (s *session) classLike(n sitter.Node, flags int) (any, error) {
	line, endLine := nodeLine(n), nodeEndLine(n)
	doc := s.docCommentFor(n)

	for _, m := range namedChildren(n) {
		switch m.Type() {
		case "abstract_modifier":
			flags |= ast.ClassAbstract
		case "final_modifier":
			flags |= ast.ClassFinal
		}
	}

	var nameV any
	if nameN := n.ChildByFieldName("name"); !nameN.IsNull() {
		nameV = s.text(nameN)
	}

	var extendsV, implementsV any
	if bases := childrenOfType(n, "base_clause"); len(bases) > 0 {
		names := childrenOfType(bases[0], "name", "qualified_name")
		if flags&ast.ClassInterface != 0 {
			var parents []any
			for _, p := range names {
				parents = append(parents, nameNode(s.text(p), nodeLine(p)))
			}
			implementsV = ast.NewList(ast.KindNameList, nodeLine(bases[0]), parents...)
		} else if len(names) > 0 {
			extendsV = nameNode(s.text(names[0]), nodeLine(names[0]))
		}
	}
	if ifaces := childrenOfType(n, "class_interface_clause"); len(ifaces) > 0 {
		var parents []any
		for _, p := range childrenOfType(ifaces[0], "name", "qualified_name") {
			parents = append(parents, nameNode(s.text(p), nodeLine(p)))
		}
		implementsV = ast.NewList(ast.KindNameList, nodeLine(ifaces[0]), parents...)
	}

	body := n.ChildByFieldName("body")
	if body.IsNull() {
		if lists := childrenOfType(n, "declaration_list", "enum_declaration_list"); len(lists) > 0 {
			body = lists[0]
		}
	}
	stmts, err := s.stmtBody(body)
	if err != nil {
		return nil, err
	}
	return s.newDecl(ast.KindClass, flags, line, endLine, nameV, doc,
		ast.Child{Key: "extends", Val: extendsV},
		ast.Child{Key: "implements", Val: implementsV},
		ast.Child{Key: "stmts", Val: stmts}), nil
}

func (s *session) convertEnumCase(n sitter.Node) (any, error) {
	line := nodeLine(n)
	doc := s.docCommentFor(n)
	name := s.text(n.ChildByFieldName("name"))
	var valV any
	var err error
	if v := n.ChildByFieldName("value"); !v.IsNull() {
		if valV, err = s.convert(v); err != nil {
			return nil, err
		}
	}
	elem := ast.New(ast.KindConstElem, 0, line,
		ast.Child{Key: "name", Val: name},
		ast.Child{Key: "value", Val: valV},
		docChild(doc))
	return ast.NewList(ast.KindClassConstDecl, line, elem), nil
}

func (s *session) convertPropertyDeclaration(n sitter.Node) (any, error) {
	line := nodeLine(n)
	doc := s.docCommentFor(n)
	flags := s.modifierFlags(namedChildren(n), true)

	var elems []any
	for i, elem := range childrenOfType(n, "property_element") {
		kids := namedChildren(elem)
		if len(kids) == 0 {
			continue
		}
		name, ok := s.variableName(kids[0])
		if !ok {
			continue
		}
		var defV any
		var err error
		if len(kids) > 1 {
			def := kids[1]
			if def.Type() == "property_initializer" {
				def = firstNamedChild(def)
			}
			if !def.IsNull() {
				if defV, err = s.convert(def); err != nil {
					return nil, err
				}
			}
		}
		var elemDoc *string
		if i == 0 {
			elemDoc = doc
		}
		elems = append(elems, ast.New(ast.KindPropElem, 0, nodeLine(elem),
			ast.Child{Key: "name", Val: name},
			ast.Child{Key: "default", Val: defV},
			docChild(elemDoc)))
	}
	node := ast.NewList(ast.KindPropDecl, line, elems...)
	node.Flags = flags
	return node, nil
}

func (s *session) convertClosure(n sitter.Node) (any, error) {
	line, endLine := nodeLine(n), nodeEndLine(n)
	doc := s.docCommentFor(n)

	paramsN := n.ChildByFieldName("parameters")
	params, err := s.convertParams(paramsN, line)
	if err != nil {
		return nil, err
	}

	flags := 0
	if !paramsN.IsNull() && s.ampersandBetween(n.StartByte(), paramsN.StartByte()) {
		flags |= ast.FlagReturnsRef
	}
	body := n.ChildByFieldName("body")
	if isGenerator(body) {
		flags |= ast.FlagGenerator
	}

	var usesV any
	if clauses := childrenOfType(n, "anonymous_function_use_clause"); len(clauses) > 0 {
		var uses []any
		for _, u := range namedChildren(clauses[0]) {
			v := u
			byRef := false
			if v.Type() == "by_ref" {
				byRef = true
				v = firstNamedChild(v)
			}
			if v.IsNull() || v.Type() != "variable_name" {
				continue
			}
			if !byRef && v.StartByte() > 0 && s.src[v.StartByte()-1] == '&' {
				byRef = true
			}
			name, ok := s.variableName(v)
			if !ok {
				continue
			}
			useFlags := 0
			if byRef {
				useFlags = ast.ClosureUseRef
			}
			uses = append(uses, ast.New(ast.KindClosureVar, useFlags, nodeLine(v),
				ast.Child{Key: "name", Val: name}))
		}
		usesV = ast.NewList(ast.KindClosureUses, nodeLine(clauses[0]), uses...)
	}

	stmts, err := s.stmtBody(body)
	if err != nil {
		return nil, err
	}
	return s.newDecl(ast.KindClosure, flags, line, endLine, "{closure}", doc,
		ast.Child{Key: "params", Val: params},
		ast.Child{Key: "uses", Val: usesV},
		ast.Child{Key: "stmts", Val: stmts},
		ast.Child{Key: "returnType", Val: childVal(s.convertType(n.ChildByFieldName("return_type")))}), nil
}

// convertArrowFunction lowers fn-syntax to a closure whose body is a single
// return of the arrow expression.
func (s *session) convertArrowFunction(n sitter.Node) (any, error) {
	line, endLine := nodeLine(n), nodeEndLine(n)
	doc := s.docCommentFor(n)

	paramsN := n.ChildByFieldName("parameters")
	params, err := s.convertParams(paramsN, line)
	if err != nil {
		return nil, err
	}

	flags := 0
	if !paramsN.IsNull() && s.ampersandBetween(n.StartByte(), paramsN.StartByte()) {
		flags |= ast.FlagReturnsRef
	}
	body := n.ChildByFieldName("body")
	if isGenerator(body) {
		flags |= ast.FlagGenerator
	}

	exprV, err := s.exprOf(body)
	if err != nil {
		return nil, err
	}
	bodyLine := nodeLine(body)
	if bodyLine == 0 {
		bodyLine = childLine(line, exprV)
	}
	stmts := ast.NewList(ast.KindStmtList, bodyLine,
		ast.New(ast.KindReturn, 0, bodyLine, ast.Child{Key: "expr", Val: exprV}))

	return s.newDecl(ast.KindClosure, flags, line, endLine, "{closure}", doc,
		ast.Child{Key: "params", Val: params},
		ast.Child{Key: "uses", Val: nil},
		ast.Child{Key: "stmts", Val: stmts},
		ast.Child{Key: "returnType", Val: childVal(s.convertType(n.ChildByFieldName("return_type")))}), nil
}

func (s *session) convertParams(params sitter.Node, line int) (*ast.Node, error) {
	if params.IsNull() {
		return ast.NewList(ast.KindParamList, line), nil
	}
	var out []any
	for _, p := range namedChildren(params) {
		switch p.Type() {
		case "simple_parameter", "variadic_parameter", "property_promotion_parameter":
		default:
			continue
		}
		param, err := s.convertParam(p)
		if err != nil {
			return nil, err
		}
		if param != nil {
			out = append(out, param)
		}
	}
	return ast.NewList(ast.KindParamList, nodeLine(params), out...), nil
}

func (s *session) convertParam(p sitter.Node) (*ast.Node, error) {
	line := nodeLine(p)
	typeN := p.ChildByFieldName("type")
	nameN := p.ChildByFieldName("name")

	name, ok := s.variableName(nameN)
	if !ok {
		if name, ok = s.incompleteName(placeholderVariable); !ok {
			return nil, nil
		}
	}

	flags := 0
	if p.Type() == "variadic_parameter" {
		flags |= ast.ParamVariadic
	}
	refFrom := p.StartByte()
	if !typeN.IsNull() {
		refFrom = typeN.EndByte()
	}
	if !nameN.IsNull() && s.ampersandBetween(refFrom, nameN.StartByte()) {
		flags |= ast.ParamRef
	}
	if p.Type() == "property_promotion_parameter" {
		flags |= s.modifierFlags(namedChildren(p), false)
	}

	var defV any
	var err error
	if def := p.ChildByFieldName("default_value"); !def.IsNull() {
		if defV, err = s.convert(def); err != nil {
			return nil, err
		}
	}
	return ast.New(ast.KindParam, flags, line,
		ast.Child{Key: "type", Val: childVal(s.convertType(typeN))},
		ast.Child{Key: "name", Val: name},
		ast.Child{Key: "default", Val: defV}), nil
}
