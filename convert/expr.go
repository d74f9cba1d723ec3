package convert

import (
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/shinyvision/phpast/ast"
)

// magicConsts maps the case-insensitive magic constant spellings to their
// flag values.
var magicConsts = map[string]int{
	"__LINE__":      ast.MagicLine,
	"__FILE__":      ast.MagicFile,
	"__DIR__":       ast.MagicDir,
	"__NAMESPACE__": ast.MagicNamespace,
	"__FUNCTION__":  ast.MagicFunction,
	"__METHOD__":    ast.MagicMethod,
	"__CLASS__":     ast.MagicClass,
	"__TRAIT__":     ast.MagicTrait,
}

var binaryOps = map[string]int{
	"+":   ast.BinaryAdd,
	"-":   ast.BinarySub,
	"*":   ast.BinaryMul,
	"/":   ast.BinaryDiv,
	"%":   ast.BinaryMod,
	"**":  ast.BinaryPow,
	".":   ast.BinaryConcat,
	"<<":  ast.BinaryShiftLeft,
	">>":  ast.BinaryShiftRight,
	"|":   ast.BinaryBitwiseOr,
	"&":   ast.BinaryBitwiseAnd,
	"^":   ast.BinaryBitwiseXor,
	"==":  ast.BinaryIsEqual,
	"!=":  ast.BinaryIsNotEqual,
	"<>":  ast.BinaryIsNotEqual,
	"===": ast.BinaryIsIdentical,
	"!==": ast.BinaryIsNotIdentical,
	"<":   ast.BinaryIsSmaller,
	"<=":  ast.BinaryIsSmallerOrEq,
	"<=>": ast.BinarySpaceship,
}

var assignOps = map[string]int{
	"+=":  ast.BinaryAdd,
	"-=":  ast.BinarySub,
	"*=":  ast.BinaryMul,
	"/=":  ast.BinaryDiv,
	"%=":  ast.BinaryMod,
	"**=": ast.BinaryPow,
	".=":  ast.BinaryConcat,
	"<<=": ast.BinaryShiftLeft,
	">>=": ast.BinaryShiftRight,
	"&=":  ast.BinaryBitwiseAnd,
	"|=":  ast.BinaryBitwiseOr,
	"^=":  ast.BinaryBitwiseXor,
}

func (s *session) convertVariable(n sitter.Node) (any, error) {
	line := nodeLine(n)
	inner := firstNamedChild(n)
	if !inner.IsNull() && inner.Type() == "name" {
		return ast.New(ast.KindVar, 0, line, ast.Child{Key: "name", Val: s.text(inner)}), nil
	}
	if name := strings.TrimPrefix(s.text(n), "$"); name != "" && !strings.HasPrefix(name, "$") {
		return ast.New(ast.KindVar, 0, line, ast.Child{Key: "name", Val: name}), nil
	}
	name, ok := s.incompleteName(placeholderVariable)
	if !ok {
		return nil, nil
	}
	return ast.New(ast.KindVar, 0, line, ast.Child{Key: "name", Val: name}), nil
}

// convertDynamicVariable handles $$x and ${expr}: the name child is itself an
// expression node.
func (s *session) convertDynamicVariable(n sitter.Node) (any, error) {
	line := nodeLine(n)
	inner := firstNamedChild(n)
	if isMissingNode(inner) {
		name, ok := s.incompleteName(placeholderVariable)
		if !ok {
			return nil, nil
		}
		return ast.New(ast.KindVar, 0, line, ast.Child{Key: "name", Val: name}), nil
	}
	nameV, err := s.convert(inner)
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindVar, 0, line, ast.Child{Key: "name", Val: nameV}), nil
}

func (s *session) convertNameExpr(n sitter.Node) (any, error) {
	line := nodeLine(n)
	text := s.text(n)
	if flag, ok := magicConsts[strings.ToUpper(text)]; ok {
		return ast.New(ast.KindMagicConst, flag, line), nil
	}
	return ast.New(ast.KindConst, 0, line,
		ast.Child{Key: "name", Val: nameNode(text, line)}), nil
}

// convertSequence splits a comma-joined expression group. The grammar only
// builds these inside echo statements and for-loop clauses, where the parts
// are independent expressions, so they splice into the surrounding list.
func (s *session) convertSequence(n sitter.Node) (any, error) {
	parts := flattenSequence(n)
	if len(parts) == 1 {
		return s.convert(parts[0])
	}
	var out []*ast.Node
	for _, p := range parts {
		v, err := s.convert(p)
		if err != nil {
			return nil, err
		}
		if node, ok := v.(*ast.Node); ok && node != nil {
			out = append(out, node)
		}
	}
	return out, nil
}

func (s *session) convertParenthesized(n sitter.Node) (any, error) {
	inner := firstNamedChild(n)
	if isMissingNode(inner) {
		if node := s.incompleteExpr(nodeLine(n)); node != nil {
			return node, nil
		}
		return nil, nil
	}
	return s.convert(inner)
}

func (s *session) convertAssignment(n sitter.Node) (any, error) {
	return s.assignLike(n, ast.KindAssign)
}

func (s *session) convertAssignmentRef(n sitter.Node) (any, error) {
	return s.assignLike(n, ast.KindAssignRef)
}

func (s *session) assignLike(n sitter.Node, kind ast.Kind) (any, error) {
	line := nodeLine(n)
	varV, err := s.assignTarget(n.ChildByFieldName("left"), line)
	if err != nil || varV == nil {
		return nil, err
	}
	exprV, err := s.assignSource(n.ChildByFieldName("right"), line)
	if err != nil || exprV == nil {
		return nil, err
	}
	return ast.New(kind, 0, line,
		ast.Child{Key: "var", Val: varV},
		ast.Child{Key: "expr", Val: exprV}), nil
}

func (s *session) convertAssignmentOp(n sitter.Node) (any, error) {
	line := nodeLine(n)
	varV, err := s.assignTarget(n.ChildByFieldName("left"), line)
	if err != nil || varV == nil {
		return nil, err
	}
	exprV, err := s.assignSource(n.ChildByFieldName("right"), line)
	if err != nil || exprV == nil {
		return nil, err
	}

	op := s.text(n.ChildByFieldName("operator"))
	// ??= has no augmented form in the output schema: lower it to a plain
	// assignment of a coalesce expression.
	if op == "??=" {
		rhs := ast.New(ast.KindCoalesce, 0, childLine(line, varV, exprV),
			ast.Child{Key: "left", Val: varV},
			ast.Child{Key: "right", Val: exprV})
		leftAgain, err := s.assignTarget(n.ChildByFieldName("left"), line)
		if err != nil || leftAgain == nil {
			return nil, err
		}
		return ast.New(ast.KindAssign, 0, line,
			ast.Child{Key: "var", Val: leftAgain},
			ast.Child{Key: "expr", Val: rhs}), nil
	}
	flags, ok := assignOps[op]
	if !ok {
		if s.strict {
			return nil, &UnrecognizedNodeError{Type: n.Type() + " " + op, Line: line}
		}
		s.log.Debugf("unknown compound assignment operator %q at line %d", op, line)
	}
	return ast.New(ast.KindAssignOp, flags, line,
		ast.Child{Key: "var", Val: varV},
		ast.Child{Key: "expr", Val: exprV}), nil
}

func (s *session) assignTarget(n sitter.Node, line int) (any, error) {
	if isMissingNode(n) {
		name, ok := s.incompleteName(placeholderVariable)
		if !ok {
			return nil, nil
		}
		return ast.New(ast.KindVar, 0, line, ast.Child{Key: "name", Val: name}), nil
	}
	return s.convert(n)
}

func (s *session) assignSource(n sitter.Node, line int) (any, error) {
	if isMissingNode(n) {
		if node := s.incompleteExpr(line); node != nil {
			return node, nil
		}
		return nil, nil
	}
	return s.convert(n)
}

func (s *session) convertBinary(n sitter.Node) (any, error) {
	line := nodeLine(n)
	leftV, err := s.assignSource(n.ChildByFieldName("left"), line)
	if err != nil || leftV == nil {
		return nil, err
	}
	rightN := n.ChildByFieldName("right")
	op := s.text(n.ChildByFieldName("operator"))
	if lower := strings.ToLower(op); lower == "and" || lower == "or" || lower == "xor" || lower == "instanceof" {
		op = lower
	}
	if op == "instanceof" {
		classV, err := s.classRef(rightN)
		if err != nil {
			return nil, err
		}
		return ast.New(ast.KindInstanceof, 0, line,
			ast.Child{Key: "expr", Val: leftV},
			ast.Child{Key: "class", Val: classV}), nil
	}
	rightV, err := s.assignSource(rightN, line)
	if err != nil || rightV == nil {
		return nil, err
	}
	pair := []ast.Child{{Key: "left", Val: leftV}, {Key: "right", Val: rightV}}
	switch op {
	case "&&", "and":
		return ast.New(ast.KindAnd, 0, line, pair...), nil
	case "||", "or":
		return ast.New(ast.KindOr, 0, line, pair...), nil
	case "xor":
		return ast.New(ast.KindBinaryOp, ast.BinaryBoolXor, line, pair...), nil
	case ">":
		return ast.New(ast.KindGreater, 0, line, pair...), nil
	case ">=":
		return ast.New(ast.KindGreaterEqual, 0, line, pair...), nil
	case "??":
		return ast.New(ast.KindCoalesce, 0, line, pair...), nil
	}
	flags, ok := binaryOps[op]
	if !ok {
		if s.strict {
			return nil, &UnrecognizedNodeError{Type: n.Type() + " " + op, Line: line}
		}
		s.log.Debugf("unknown binary operator %q at line %d", op, line)
	}
	return ast.New(ast.KindBinaryOp, flags, line, pair...), nil
}

func (s *session) convertUnary(n sitter.Node) (any, error) {
	line := nodeLine(n)
	exprV, err := s.assignSource(firstNamedChild(n), line)
	if err != nil || exprV == nil {
		return nil, err
	}
	flags := 0
	if text := s.text(n); text != "" {
		switch text[0] {
		case '!':
			flags = ast.UnaryBoolNot
		case '-':
			flags = ast.UnaryMinus
		case '+':
			flags = ast.UnaryPlus
		case '~':
			flags = ast.UnaryBitwiseNot
		}
	}
	return ast.New(ast.KindUnaryOp, flags, line, ast.Child{Key: "expr", Val: exprV}), nil
}

func (s *session) convertUpdate(n sitter.Node) (any, error) {
	line := nodeLine(n)
	arg := n.ChildByFieldName("argument")
	if arg.IsNull() {
		arg = firstNamedChild(n)
	}
	varV, err := s.assignTarget(arg, line)
	if err != nil || varV == nil {
		return nil, err
	}
	inc := strings.Contains(s.text(n), "++")
	prefix := !arg.IsNull() && arg.StartByte() > n.StartByte()
	kind := ast.KindPostInc
	switch {
	case prefix && inc:
		kind = ast.KindPreInc
	case prefix:
		kind = ast.KindPreDec
	case !inc:
		kind = ast.KindPostDec
	}
	return ast.New(kind, 0, line, ast.Child{Key: "var", Val: varV}), nil
}

func (s *session) convertCast(n sitter.Node) (any, error) {
	line := nodeLine(n)
	exprV, err := s.assignSource(n.ChildByFieldName("value"), line)
	if err != nil || exprV == nil {
		return nil, err
	}
	flags := castFlags[strings.ToLower(s.text(n.ChildByFieldName("type")))]
	return ast.New(ast.KindCast, flags, line, ast.Child{Key: "expr", Val: exprV}), nil
}

func (s *session) convertConditional(n sitter.Node) (any, error) {
	line := nodeLine(n)
	condV, err := s.assignSource(n.ChildByFieldName("condition"), line)
	if err != nil || condV == nil {
		return nil, err
	}
	// The short form `a ?: b` leaves the true branch null.
	var trueV any
	if body := n.ChildByFieldName("body"); !body.IsNull() {
		if trueV, err = s.convert(body); err != nil {
			return nil, err
		}
	}
	falseV, err := s.assignSource(n.ChildByFieldName("alternative"), line)
	if err != nil || falseV == nil {
		return nil, err
	}
	return ast.New(ast.KindConditional, 0, line,
		ast.Child{Key: "cond", Val: condV},
		ast.Child{Key: "true", Val: trueV},
		ast.Child{Key: "false", Val: falseV}), nil
}

func (s *session) convertMatch(n sitter.Node) (any, error) {
	line := nodeLine(n)
	condV, err := s.exprOf(n.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	body := n.ChildByFieldName("body")
	var arms []any
	for _, arm := range namedChildren(body) {
		armLine := nodeLine(arm)
		var armCondV any
		switch arm.Type() {
		case "match_conditional_expression":
			if lists := childrenOfType(arm, "match_condition_list"); len(lists) > 0 {
				vals, err := s.convertList(namedChildren(lists[0]))
				if err != nil {
					return nil, err
				}
				armCondV = ast.NewList(ast.KindExprList, nodeLine(lists[0]), vals...)
			}
		case "match_default_expression":
		default:
			continue
		}
		ret := arm.ChildByFieldName("return_expression")
		if ret.IsNull() {
			kids := namedChildren(arm)
			if len(kids) > 0 {
				ret = kids[len(kids)-1]
			}
		}
		retV, err := s.assignSource(ret, armLine)
		if err != nil {
			return nil, err
		}
		if retV == nil {
			continue
		}
		arms = append(arms, ast.New(ast.KindMatchArm, 0, armLine,
			ast.Child{Key: "cond", Val: armCondV},
			ast.Child{Key: "expr", Val: retV}))
	}
	return ast.New(ast.KindMatch, 0, line,
		ast.Child{Key: "cond", Val: condV},
		ast.Child{Key: "stmts", Val: ast.NewList(ast.KindMatchArmList, line, arms...)}), nil
}

func (s *session) convertInstanceof(n sitter.Node) (any, error) {
	line := nodeLine(n)
	kids := namedChildren(n)
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	if left.IsNull() && len(kids) > 0 {
		left = kids[0]
	}
	if right.IsNull() && len(kids) > 1 {
		right = kids[len(kids)-1]
	}
	exprV, err := s.assignSource(left, line)
	if err != nil || exprV == nil {
		return nil, err
	}
	classV, err := s.classRef(right)
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindInstanceof, 0, line,
		ast.Child{Key: "expr", Val: exprV},
		ast.Child{Key: "class", Val: classV}), nil
}

func (s *session) convertSilence(n sitter.Node) (any, error) {
	exprV, err := s.assignSource(firstNamedChild(n), nodeLine(n))
	if err != nil || exprV == nil {
		return nil, err
	}
	return ast.New(ast.KindSilence, 0, nodeLine(n), ast.Child{Key: "expr", Val: exprV}), nil
}

func (s *session) convertClone(n sitter.Node) (any, error) {
	exprV, err := s.assignSource(firstNamedChild(n), nodeLine(n))
	if err != nil || exprV == nil {
		return nil, err
	}
	return ast.New(ast.KindClone, 0, nodeLine(n), ast.Child{Key: "expr", Val: exprV}), nil
}

func (s *session) convertPrint(n sitter.Node) (any, error) {
	exprV, err := s.assignSource(firstNamedChild(n), nodeLine(n))
	if err != nil || exprV == nil {
		return nil, err
	}
	return ast.New(ast.KindPrint, 0, nodeLine(n), ast.Child{Key: "expr", Val: exprV}), nil
}

func (s *session) convertInclude(n sitter.Node) (any, error) {
	line := nodeLine(n)
	exprV, err := s.assignSource(firstNamedChild(n), line)
	if err != nil || exprV == nil {
		return nil, err
	}
	flags := ast.ExecInclude
	switch n.Type() {
	case "include_once_expression":
		flags = ast.ExecIncludeOnce
	case "require_expression":
		flags = ast.ExecRequire
	case "require_once_expression":
		flags = ast.ExecRequireOnce
	}
	return ast.New(ast.KindIncludeOrEval, flags, line, ast.Child{Key: "expr", Val: exprV}), nil
}

func (s *session) convertShellExec(n sitter.Node) (any, error) {
	line := nodeLine(n)
	exprV, err := s.encapsParts(n, line)
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindShellExec, 0, line, ast.Child{Key: "expr", Val: exprV}), nil
}

// classRef converts the class position of instanceof, new and static access:
// plain names stay name nodes, anything else converts as an expression.
func (s *session) classRef(n sitter.Node) (any, error) {
	if isMissingNode(n) {
		if node := s.incompleteExpr(nodeLine(n)); node != nil {
			return node, nil
		}
		return nil, nil
	}
	switch n.Type() {
	case "name", "qualified_name", "relative_name", "relative_scope":
		return nameNode(s.text(n), nodeLine(n)), nil
	default:
		return s.convert(n)
	}
}

// argExprs returns the raw value expressions of a call's argument list,
// unwrapping the per-argument wrapper nodes.
func argExprs(args sitter.Node) []sitter.Node {
	if args.IsNull() {
		return nil
	}
	var out []sitter.Node
	for _, arg := range namedChildren(args) {
		if arg.Type() != "argument" {
			out = append(out, arg)
			continue
		}
		for i := uint32(0); i < arg.NamedChildCount(); i++ {
			if arg.FieldNameForNamedChild(i) == "name" {
				continue
			}
			out = append(out, arg.NamedChild(i))
			break
		}
	}
	return out
}

func (s *session) convertArgs(args sitter.Node, line int) (*ast.Node, error) {
	if !args.IsNull() {
		line = nodeLine(args)
	}
	var out []any
	for _, value := range argExprs(args) {
		var v any
		var err error
		if value.Type() == "variadic_unpacking" {
			v, err = s.convertUnpack(value)
		} else {
			v, err = s.assignSource(value, nodeLine(value))
		}
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		out = append(out, v)
	}
	return ast.NewList(ast.KindArgList, line, out...), nil
}

// convertCall also lowers the pseudo-functions that the output schema gives
// dedicated kinds: isset, empty, eval, exit and die.
func (s *session) convertCall(n sitter.Node) (any, error) {
	line := nodeLine(n)
	fn := n.ChildByFieldName("function")
	args := n.ChildByFieldName("arguments")

	if !fn.IsNull() && (fn.Type() == "name" || fn.Type() == "qualified_name") {
		exprs := argExprs(args)
		switch strings.ToLower(s.text(fn)) {
		case "isset":
			if len(exprs) > 0 {
				return s.issetChain(exprs, line)
			}
		case "empty":
			if len(exprs) == 1 {
				exprV, err := s.assignSource(exprs[0], line)
				if err != nil || exprV == nil {
					return nil, err
				}
				return ast.New(ast.KindEmpty, 0, line, ast.Child{Key: "expr", Val: exprV}), nil
			}
		case "eval":
			if len(exprs) == 1 {
				exprV, err := s.assignSource(exprs[0], line)
				if err != nil || exprV == nil {
					return nil, err
				}
				return ast.New(ast.KindIncludeOrEval, ast.ExecEval, line, ast.Child{Key: "expr", Val: exprV}), nil
			}
		case "exit", "die":
			var exprV any
			var err error
			if len(exprs) == 1 {
				if exprV, err = s.assignSource(exprs[0], line); err != nil {
					return nil, err
				}
			}
			return ast.New(ast.KindExit, 0, line, ast.Child{Key: "expr", Val: exprV}), nil
		case "__halt_compiler":
			// The offset child is the byte position where compilation halts,
			// directly after the call.
			end := n.EndByte()
			if p := n.Parent(); !p.IsNull() && p.Type() == "expression_statement" {
				end = p.EndByte()
			}
			return ast.New(ast.KindHaltCompiler, 0, line,
				ast.Child{Key: "offset", Val: int64(end)}), nil
		}
	}

	var calleeV any
	var err error
	if isMissingNode(fn) {
		node := s.incompleteExpr(line)
		if node == nil {
			return nil, nil
		}
		calleeV = node
	} else if fn.Type() == "name" || fn.Type() == "qualified_name" {
		calleeV = nameNode(s.text(fn), nodeLine(fn))
	} else if calleeV, err = s.convert(fn); err != nil || calleeV == nil {
		return nil, err
	}
	argList, err := s.convertArgs(args, line)
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindCall, 0, line,
		ast.Child{Key: "expr", Val: calleeV},
		ast.Child{Key: "args", Val: argList}), nil
}

// issetChain folds a multi-argument isset into a left-deep chain of boolean
// ands over single-argument isset nodes.
func (s *session) issetChain(exprs []sitter.Node, line int) (any, error) {
	var acc *ast.Node
	for _, e := range exprs {
		v, err := s.assignSource(e, line)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		node := ast.New(ast.KindIsset, 0, childLine(line, v), ast.Child{Key: "var", Val: v})
		if acc == nil {
			acc = node
			continue
		}
		acc = ast.New(ast.KindAnd, 0, childLine(line, acc),
			ast.Child{Key: "left", Val: acc},
			ast.Child{Key: "right", Val: node})
	}
	if acc == nil {
		return nil, nil
	}
	return acc, nil
}

// memberName converts the name position of a member access or call: a plain
// name becomes a string, a dynamic name converts as an expression, a missing
// name falls under the incomplete-construct policy.
func (s *session) memberName(n sitter.Node) (any, error) {
	if isMissingNode(n) {
		name, ok := s.incompleteName(placeholderProperty)
		if !ok {
			return nil, nil
		}
		return name, nil
	}
	if n.Type() == "name" {
		return s.text(n), nil
	}
	return s.convert(n)
}

func (s *session) convertMethodCall(n sitter.Node) (any, error) {
	line := nodeLine(n)
	objV, err := s.assignSource(n.ChildByFieldName("object"), line)
	if err != nil || objV == nil {
		return nil, err
	}
	methodV, err := s.memberName(n.ChildByFieldName("name"))
	if err != nil || methodV == nil {
		return nil, err
	}
	argList, err := s.convertArgs(n.ChildByFieldName("arguments"), line)
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindMethodCall, 0, line,
		ast.Child{Key: "expr", Val: objV},
		ast.Child{Key: "method", Val: methodV},
		ast.Child{Key: "args", Val: argList}), nil
}

func (s *session) convertStaticCall(n sitter.Node) (any, error) {
	line := nodeLine(n)
	classV, err := s.classRef(n.ChildByFieldName("scope"))
	if err != nil || classV == nil {
		return nil, err
	}
	methodV, err := s.memberName(n.ChildByFieldName("name"))
	if err != nil || methodV == nil {
		return nil, err
	}
	argList, err := s.convertArgs(n.ChildByFieldName("arguments"), line)
	if err != nil {
		return nil, err
	}
	return ast.New(ast.KindStaticCall, 0, line,
		ast.Child{Key: "class", Val: classV},
		ast.Child{Key: "method", Val: methodV},
		ast.Child{Key: "args", Val: argList}), nil
}

func (s *session) convertPropAccess(n sitter.Node) (any, error) {
	line := nodeLine(n)
	objV, err := s.assignSource(n.ChildByFieldName("object"), line)
	if err != nil || objV == nil {
		return nil, err
	}
	propV, err := s.memberName(n.ChildByFieldName("name"))
	if err != nil || propV == nil {
		return nil, err
	}
	return ast.New(ast.KindProp, 0, line,
		ast.Child{Key: "expr", Val: objV},
		ast.Child{Key: "prop", Val: propV}), nil
}

func (s *session) convertStaticProp(n sitter.Node) (any, error) {
	line := nodeLine(n)
	classV, err := s.classRef(n.ChildByFieldName("scope"))
	if err != nil || classV == nil {
		return nil, err
	}
	nameN := n.ChildByFieldName("name")
	var propV any
	if nameN.IsNull() {
		kids := namedChildren(n)
		if len(kids) > 1 {
			nameN = kids[len(kids)-1]
		}
	}
	switch {
	case isMissingNode(nameN):
		name, ok := s.incompleteName(placeholderProperty)
		if !ok {
			return nil, nil
		}
		propV = name
	case nameN.Type() == "variable_name":
		name, ok := s.variableName(nameN)
		if !ok {
			return nil, nil
		}
		propV = name
	default:
		if propV, err = s.convert(nameN); err != nil || propV == nil {
			return nil, err
		}
	}
	return ast.New(ast.KindStaticProp, 0, line,
		ast.Child{Key: "class", Val: classV},
		ast.Child{Key: "prop", Val: propV}), nil
}

func (s *session) convertClassConst(n sitter.Node) (any, error) {
	line := nodeLine(n)
	kids := namedChildren(n)
	if len(kids) == 0 {
		if node := s.incompleteExpr(line); node != nil {
			return node, nil
		}
		return nil, nil
	}
	classV, err := s.classRef(kids[0])
	if err != nil || classV == nil {
		return nil, err
	}
	var constV any
	if len(kids) > 1 {
		name := kids[len(kids)-1]
		if name.Type() == "name" {
			constV = s.text(name)
		} else if constV, err = s.convert(name); err != nil || constV == nil {
			return nil, err
		}
	} else if strings.HasSuffix(strings.ToLower(s.text(n)), "::class") {
		constV = "class"
	} else {
		name, ok := s.incompleteName(placeholderClassConst)
		if !ok {
			return nil, nil
		}
		constV = name
	}
	return ast.New(ast.KindClassConst, 0, line,
		ast.Child{Key: "class", Val: classV},
		ast.Child{Key: "const", Val: constV}), nil
}

func (s *session) convertSubscript(n sitter.Node) (any, error) {
	line := nodeLine(n)
	kids := namedChildren(n)
	if len(kids) == 0 {
		if node := s.incompleteExpr(line); node != nil {
			return node, nil
		}
		return nil, nil
	}
	exprV, err := s.convert(kids[0])
	if err != nil || exprV == nil {
		return nil, err
	}
	var dimV any
	if len(kids) > 1 {
		if dimV, err = s.convert(kids[1]); err != nil {
			return nil, err
		}
	}
	return ast.New(ast.KindDim, 0, line,
		ast.Child{Key: "expr", Val: exprV},
		ast.Child{Key: "dim", Val: dimV}), nil
}

func (s *session) convertNew(n sitter.Node) (any, error) {
	line := nodeLine(n)

	// An anonymous class nests its argument list, inheritance clauses and
	// declarations under its own node; the outer creation expression keeps
	// nothing but the keyword.
	anon := n
	isAnon := hasChildOfType(n, "declaration_list")
	if inner := childrenOfType(n, "anonymous_class"); len(inner) > 0 {
		anon = inner[0]
		isAnon = true
	}

	args := anon.ChildByFieldName("arguments")
	if args.IsNull() {
		if lists := childrenOfType(anon, "arguments"); len(lists) > 0 {
			args = lists[0]
		}
	}
	if args.IsNull() {
		args = n.ChildByFieldName("arguments")
	}
	argList, err := s.convertArgs(args, line)
	if err != nil {
		return nil, err
	}

	if isAnon {
		classV, err := s.classLike(anon, ast.ClassAnonymous)
		if err != nil {
			return nil, err
		}
		return ast.New(ast.KindNew, 0, line,
			ast.Child{Key: "class", Val: classV},
			ast.Child{Key: "args", Val: argList}), nil
	}

	var designator sitter.Node
	for _, k := range namedChildren(n) {
		if k.Type() == "arguments" || triviaTypes[k.Type()] {
			continue
		}
		designator = k
		break
	}
	classV, err := s.classRef(designator)
	if err != nil || classV == nil {
		return nil, err
	}
	return ast.New(ast.KindNew, 0, line,
		ast.Child{Key: "class", Val: classV},
		ast.Child{Key: "args", Val: argList}), nil
}

func (s *session) convertArray(n sitter.Node) (any, error) {
	line := nodeLine(n)
	flags := ast.ArraySyntaxLong
	if text := s.text(n); text != "" && text[0] == '[' {
		flags = ast.ArraySyntaxShort
	}
	elems, err := s.arrayElems(n)
	if err != nil {
		return nil, err
	}
	node := ast.NewList(ast.KindArray, line, elems...)
	node.Flags = flags
	return node, nil
}

func (s *session) convertListLiteral(n sitter.Node) (any, error) {
	line := nodeLine(n)
	elems, err := s.arrayElems(n)
	if err != nil {
		return nil, err
	}
	elems = withListHoles(n, elems)
	node := ast.NewList(ast.KindArray, line, elems...)
	node.Flags = ast.ArraySyntaxList
	return node, nil
}

// withListHoles re-slots converted elements so skipped destructuring
// positions, as in list(, $b), come out as explicit nils. Holes have no
// node of their own, so they are recovered from the comma layout.
func withListHoles(n sitter.Node, elems []any) []any {
	var out []any
	next := 0
	sawValue := false
	for i := uint32(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c.IsNamed() {
			if !triviaTypes[c.Type()] {
				sawValue = true
				if next < len(elems) {
					out = append(out, elems[next])
					next++
				}
			}
			continue
		}
		if c.Type() == "," {
			if !sawValue {
				out = append(out, nil)
			}
			sawValue = false
		}
	}
	if next < len(elems) {
		out = append(out, elems[next:]...)
	}
	return out
}

func (s *session) arrayElems(n sitter.Node) ([]any, error) {
	var elems []any
	for _, el := range namedChildren(n) {
		if triviaTypes[el.Type()] {
			continue
		}
		switch el.Type() {
		case "array_element_initializer":
			elem, err := s.arrayElem(el)
			if err != nil {
				return nil, err
			}
			if elem != nil {
				elems = append(elems, elem)
			}
		case "variadic_unpacking":
			v, err := s.convertUnpack(el)
			if err != nil {
				return nil, err
			}
			if v != nil {
				elems = append(elems, v)
			}
		default:
			v, err := s.convert(el)
			if err != nil {
				return nil, err
			}
			if v == nil {
				continue
			}
			elems = append(elems, ast.New(ast.KindArrayElem, 0, nodeLine(el),
				ast.Child{Key: "value", Val: v},
				ast.Child{Key: "key", Val: nil}))
		}
	}
	return elems, nil
}

func (s *session) arrayElem(el sitter.Node) (any, error) {
	line := nodeLine(el)
	var kids []sitter.Node
	for _, k := range namedChildren(el) {
		if triviaTypes[k.Type()] {
			continue
		}
		kids = append(kids, k)
	}
	if len(kids) == 0 {
		return nil, nil
	}
	if kids[0].Type() == "variadic_unpacking" {
		return s.convertUnpack(kids[0])
	}

	flags := 0
	var keyV any
	var err error
	value := kids[0]
	if len(kids) > 1 {
		if keyV, err = s.convert(kids[0]); err != nil {
			return nil, err
		}
		value = kids[len(kids)-1]
	}
	if value.Type() == "by_ref" {
		flags |= ast.ArrayElemRef
		value = firstNamedChild(value)
	}
	valV, err := s.assignSource(value, line)
	if err != nil || valV == nil {
		return nil, err
	}
	return ast.New(ast.KindArrayElem, flags, line,
		ast.Child{Key: "value", Val: valV},
		ast.Child{Key: "key", Val: keyV}), nil
}

func (s *session) convertYield(n sitter.Node) (any, error) {
	line := nodeLine(n)
	words := strings.Fields(s.text(n))
	if len(words) >= 2 && words[0] == "yield" && words[1] == "from" {
		exprV, err := s.assignSource(firstNamedChild(n), line)
		if err != nil || exprV == nil {
			return nil, err
		}
		return ast.New(ast.KindYieldFrom, 0, line, ast.Child{Key: "expr", Val: exprV}), nil
	}

	inner := firstNamedChild(n)
	var valV, keyV any
	var err error
	if !inner.IsNull() {
		if inner.Type() == "array_element_initializer" {
			kids := namedChildren(inner)
			if len(kids) > 1 {
				if keyV, err = s.convert(kids[0]); err != nil {
					return nil, err
				}
				if valV, err = s.convert(kids[len(kids)-1]); err != nil {
					return nil, err
				}
			} else if len(kids) == 1 {
				if valV, err = s.convert(kids[0]); err != nil {
					return nil, err
				}
			}
		} else if valV, err = s.convert(inner); err != nil {
			return nil, err
		}
	}
	return ast.New(ast.KindYield, 0, line,
		ast.Child{Key: "value", Val: valV},
		ast.Child{Key: "key", Val: keyV}), nil
}

func (s *session) convertUnpack(n sitter.Node) (any, error) {
	exprV, err := s.assignSource(firstNamedChild(n), nodeLine(n))
	if err != nil || exprV == nil {
		return nil, err
	}
	return ast.New(ast.KindUnpack, 0, nodeLine(n), ast.Child{Key: "expr", Val: exprV}), nil
}

func (s *session) convertByRef(n sitter.Node) (any, error) {
	varV, err := s.assignTarget(firstNamedChild(n), nodeLine(n))
	if err != nil || varV == nil {
		return nil, err
	}
	return ast.New(ast.KindRef, 0, nodeLine(n), ast.Child{Key: "var", Val: varV}), nil
}
