package convert

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shinyvision/phpast/ast"
	"github.com/shinyvision/phpast/parser"
)

func mustConvert(t *testing.T, source string, opts Options) *ast.Node {
	t.Helper()
	c, err := New(opts)
	require.NoError(t, err)
	root, err := c.Convert(context.Background(), []byte(source))
	require.NoError(t, err)
	require.NotNil(t, root)
	require.NoError(t, ast.Validate(root))
	return root
}

func stmts(t *testing.T, root *ast.Node) []any {
	t.Helper()
	require.Equal(t, ast.KindStmtList, root.Kind)
	return root.List()
}

func nodeAt(t *testing.T, vals []any, i int) *ast.Node {
	t.Helper()
	require.Greater(t, len(vals), i)
	node, ok := vals[i].(*ast.Node)
	require.True(t, ok, "value %d is %T, not a node", i, vals[i])
	return node
}

func walk(n *ast.Node, visit func(*ast.Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		if child, ok := c.Val.(*ast.Node); ok {
			walk(child, visit)
		}
	}
}

func find(root *ast.Node, kind ast.Kind) []*ast.Node {
	var out []*ast.Node
	walk(root, func(n *ast.Node) {
		if n.Kind == kind {
			out = append(out, n)
		}
	})
	return out
}

func TestEmptyProgram(t *testing.T) {
	root := mustConvert(t, "<?php\n", Options{Version: V2})
	require.Equal(t, ast.KindStmtList, root.Kind)
	require.GreaterOrEqual(t, root.Line, 1)
	require.Empty(t, root.List())
}

func TestVersionGate(t *testing.T) {
	_, err := New(Options{Version: 42})
	var verr *VersionError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, Version(42), verr.Version)

	_, err = New(Options{Version: V1})
	require.NoError(t, err)
}

func TestDeterminism(t *testing.T) {
	source := "<?php\nfunction f(int $a) { return $a + 1; }\nf(2);\n"
	first := mustConvert(t, source, Options{Version: V2})
	second := mustConvert(t, source, Options{Version: V2})
	require.Equal(t, first, second)
}

func TestEchoDesugaring(t *testing.T) {
	root := mustConvert(t, "<?php\necho 1, 2;\n", Options{Version: V2})
	vals := stmts(t, root)
	require.Len(t, vals, 2)
	for i, want := range []int64{1, 2} {
		echo := nodeAt(t, vals, i)
		require.Equal(t, ast.KindEcho, echo.Kind)
		require.Equal(t, 2, echo.Line)
		expr, ok := echo.Child("expr")
		require.True(t, ok)
		require.Equal(t, want, expr)
	}
}

func TestFunctionByRefParam(t *testing.T) {
	root := mustConvert(t, "<?php\nfunction f(&$x) {}\n", Options{Version: V2})
	fn := nodeAt(t, stmts(t, root), 0)
	require.Equal(t, ast.KindFuncDecl, fn.Kind)

	name, ok := fn.Child("name")
	require.True(t, ok)
	require.Equal(t, "f", name)

	params := fn.ChildNode("params")
	require.NotNil(t, params)
	require.Equal(t, ast.KindParamList, params.Kind)
	param := nodeAt(t, params.List(), 0)
	require.Equal(t, ast.KindParam, param.Kind)
	require.NotZero(t, param.Flags&ast.ParamRef)
	pname, _ := param.Child("name")
	require.Equal(t, "x", pname)
	ptype, ok := param.Child("type")
	require.True(t, ok)
	require.Nil(t, ptype)

	ret, ok := fn.Child("returnType")
	require.True(t, ok)
	require.Nil(t, ret)
}

func TestVariadicTypedParam(t *testing.T) {
	root := mustConvert(t, "<?php function f(int ...$rest) {} ", Options{Version: V2})
	fn := nodeAt(t, stmts(t, root), 0)
	param := nodeAt(t, fn.ChildNode("params").List(), 0)
	require.NotZero(t, param.Flags&ast.ParamVariadic)
	ptype := param.ChildNode("type")
	require.NotNil(t, ptype)
	require.Equal(t, ast.KindType, ptype.Kind)
	require.Equal(t, ast.TypeLong, ptype.Flags)
}

func TestNullableTypes(t *testing.T) {
	root := mustConvert(t, "<?php function f(?int $x): ?string {} ", Options{Version: V2})
	fn := nodeAt(t, stmts(t, root), 0)

	param := nodeAt(t, fn.ChildNode("params").List(), 0)
	ptype := param.ChildNode("type")
	require.NotNil(t, ptype)
	require.Equal(t, ast.KindNullableType, ptype.Kind)
	require.Zero(t, ptype.Flags)
	inner := ptype.ChildNode("type")
	require.NotNil(t, inner)
	require.Equal(t, ast.TypeLong, inner.Flags)

	ret := fn.ChildNode("returnType")
	require.NotNil(t, ret)
	require.Equal(t, ast.KindNullableType, ret.Kind)
	require.Equal(t, ast.TypeString, ret.ChildNode("type").Flags)
}

func TestTryCatchFinally(t *testing.T) {
	root := mustConvert(t, "<?php\ntry {\n} catch (\\Exception $e) {\n} finally {\n}\n", Options{Version: V2})
	try := nodeAt(t, stmts(t, root), 0)
	require.Equal(t, ast.KindTry, try.Kind)
	require.Equal(t, []string{"try", "catches", "finally"}, try.Keys())

	tryBody := try.ChildNode("try")
	require.NotNil(t, tryBody)
	require.Empty(t, tryBody.List())

	catches := try.ChildNode("catches")
	require.NotNil(t, catches)
	catch := nodeAt(t, catches.List(), 0)
	require.Equal(t, ast.KindCatch, catch.Kind)
	class := nodeAt(t, catch.ChildNode("class").List(), 0)
	require.Equal(t, ast.KindName, class.Kind)
	require.Equal(t, ast.NameFQ, class.Flags)
	cname, _ := class.Child("name")
	require.Equal(t, "Exception", cname)
	v := catch.ChildNode("var")
	require.NotNil(t, v)
	vname, _ := v.Child("name")
	require.Equal(t, "e", vname)

	finally, ok := try.Child("finally")
	require.True(t, ok)
	require.NotNil(t, finally)
}

func TestTryWithoutCatchOmitsKey(t *testing.T) {
	root := mustConvert(t, "<?php try { } finally { } ", Options{Version: V2})
	try := nodeAt(t, stmts(t, root), 0)
	require.Equal(t, []string{"try", "finally"}, try.Keys())
}

func TestTryWithoutFinallyKeepsKey(t *testing.T) {
	root := mustConvert(t, "<?php try { } catch (E $e) { } ", Options{Version: V2})
	try := nodeAt(t, stmts(t, root), 0)
	require.Equal(t, []string{"try", "catches", "finally"}, try.Keys())
	finally, ok := try.Child("finally")
	require.True(t, ok)
	require.Nil(t, finally)
}

func TestGeneratorFlag(t *testing.T) {
	source := "<?php\n" +
		"function gen() { yield 1; }\n" +
		"function outer() { $f = function () { yield 2; }; }\n"
	root := mustConvert(t, source, Options{Version: V2})
	vals := stmts(t, root)

	gen := nodeAt(t, vals, 0)
	require.NotZero(t, gen.Flags&ast.FlagGenerator)

	outer := nodeAt(t, vals, 1)
	require.Zero(t, outer.Flags&ast.FlagGenerator)

	closures := find(outer, ast.KindClosure)
	require.Len(t, closures, 1)
	require.NotZero(t, closures[0].Flags&ast.FlagGenerator)
}

func TestDeclIDOrder(t *testing.T) {
	source := "<?php\nfunction a() {}\nfunction b() {}\nclass C { }\n"
	root := mustConvert(t, source, Options{Version: V2})
	var ids []int64
	walk(root, func(n *ast.Node) {
		if !n.Kind.IsDecl() {
			return
		}
		id, ok := n.Child("__declId")
		require.True(t, ok, "%s has no declaration id", n.Kind)
		ids = append(ids, id.(int64))
	})
	require.Equal(t, []int64{0, 1, 2}, ids)
}

func TestDeclLayoutV1(t *testing.T) {
	source := "<?php\n/** doc */\nfunction f() {\n}\n"
	root := mustConvert(t, source, Options{Version: V1})
	fn := nodeAt(t, stmts(t, root), 0)
	require.Equal(t, ast.KindFuncDecl, fn.Kind)
	require.Equal(t, "f", fn.Name)
	require.NotNil(t, fn.Doc)
	require.Equal(t, "/** doc */", *fn.Doc)
	require.GreaterOrEqual(t, fn.EndLine, fn.Line)
	require.Equal(t, []string{"params", "uses", "stmts", "returnType"}, fn.Keys())
}

func TestDeclLayoutV2(t *testing.T) {
	source := "<?php\n/** doc */\nfunction f() {\n}\n"
	root := mustConvert(t, source, Options{Version: V2})
	fn := nodeAt(t, stmts(t, root), 0)
	require.Empty(t, fn.Name)
	require.Nil(t, fn.Doc)
	require.Equal(t, []string{"name", "docComment", "__declId", "params", "uses", "stmts", "returnType"}, fn.Keys())
	doc, _ := fn.Child("docComment")
	require.Equal(t, "/** doc */", doc)
}

func TestUndocumentedDeclOmitsDocKey(t *testing.T) {
	root := mustConvert(t, "<?php function f() {} ", Options{Version: V2})
	fn := nodeAt(t, stmts(t, root), 0)
	require.Equal(t, []string{"name", "__declId", "params", "uses", "stmts", "returnType"}, fn.Keys())
}

func TestMethodModifiers(t *testing.T) {
	source := "<?php\nclass C {\n" +
		"    function m() {}\n" +
		"    private static function p() {}\n" +
		"    abstract function a();\n" +
		"}\n"
	root := mustConvert(t, source, Options{Version: V2})
	class := nodeAt(t, stmts(t, root), 0)
	require.Equal(t, ast.KindClass, class.Kind)
	methods := find(class, ast.KindMethod)
	require.Len(t, methods, 3)

	require.NotZero(t, methods[0].Flags&ast.ModifierPublic)
	require.NotZero(t, methods[1].Flags&ast.ModifierPrivate)
	require.NotZero(t, methods[1].Flags&ast.ModifierStatic)
	require.Zero(t, methods[1].Flags&ast.ModifierPublic)
	require.NotZero(t, methods[2].Flags&ast.ModifierAbstract)
	// Abstract methods carry an explicit null body.
	body, ok := methods[2].Child("stmts")
	require.True(t, ok)
	require.Nil(t, body)
}

func TestClassHierarchy(t *testing.T) {
	source := "<?php\nclass C extends B implements I, J {}\ninterface K extends I, J {}\ntrait T {}\nenum E {}\n"
	root := mustConvert(t, source, Options{Version: V2})
	vals := stmts(t, root)

	class := nodeAt(t, vals, 0)
	extends := class.ChildNode("extends")
	require.NotNil(t, extends)
	bname, _ := extends.Child("name")
	require.Equal(t, "B", bname)
	impl := class.ChildNode("implements")
	require.NotNil(t, impl)
	require.Len(t, impl.List(), 2)

	iface := nodeAt(t, vals, 1)
	require.NotZero(t, iface.Flags&ast.ClassInterface)
	parents := iface.ChildNode("implements")
	require.NotNil(t, parents)
	require.Len(t, parents.List(), 2)
	ext, ok := iface.Child("extends")
	require.True(t, ok)
	require.Nil(t, ext)

	require.NotZero(t, nodeAt(t, vals, 2).Flags&ast.ClassTrait)
	require.NotZero(t, nodeAt(t, vals, 3).Flags&ast.ClassEnum)
}

func TestAnonymousClass(t *testing.T) {
	root := mustConvert(t, "<?php $o = new class(1) extends B {}; ", Options{Version: V2})
	assigns := find(root, ast.KindAssign)
	require.Len(t, assigns, 1)
	instantiation := assigns[0].ChildNode("expr")
	require.Equal(t, ast.KindNew, instantiation.Kind)
	class := instantiation.ChildNode("class")
	require.Equal(t, ast.KindClass, class.Kind)
	require.NotZero(t, class.Flags&ast.ClassAnonymous)
	name, ok := class.Child("name")
	require.True(t, ok)
	require.Nil(t, name)
	args := instantiation.ChildNode("args")
	require.Len(t, args.List(), 1)
}

func TestClosureUses(t *testing.T) {
	root := mustConvert(t, "<?php $f = function () use (&$a, $b) {}; ", Options{Version: V2})
	closures := find(root, ast.KindClosure)
	require.Len(t, closures, 1)
	name, _ := closures[0].Child("name")
	require.Equal(t, "{closure}", name)

	uses := closures[0].ChildNode("uses")
	require.NotNil(t, uses)
	vars := uses.List()
	require.Len(t, vars, 2)
	first := nodeAt(t, vars, 0)
	require.Equal(t, ast.KindClosureVar, first.Kind)
	require.NotZero(t, first.Flags&ast.ClosureUseRef)
	second := nodeAt(t, vars, 1)
	require.Zero(t, second.Flags&ast.ClosureUseRef)
}

func TestArrowFunctionLowering(t *testing.T) {
	root := mustConvert(t, "<?php $f = fn($a) => $a + 1; ", Options{Version: V2})
	closures := find(root, ast.KindClosure)
	require.Len(t, closures, 1)

	body := closures[0].ChildNode("stmts")
	require.NotNil(t, body)
	require.Equal(t, ast.KindStmtList, body.Kind)
	ret := nodeAt(t, body.List(), 0)
	require.Equal(t, ast.KindReturn, ret.Kind)
	add := ret.ChildNode("expr")
	require.Equal(t, ast.KindBinaryOp, add.Kind)
	require.Equal(t, ast.BinaryAdd, add.Flags)
}

func TestNamespaceSemicolonForm(t *testing.T) {
	root := mustConvert(t, "<?php\nnamespace App;\n$x = 1;\n", Options{Version: V2})
	vals := stmts(t, root)
	require.Len(t, vals, 2)

	ns := nodeAt(t, vals, 0)
	require.Equal(t, ast.KindNamespace, ns.Kind)
	name, _ := ns.Child("name")
	require.Equal(t, "App", name)
	body, ok := ns.Child("stmts")
	require.True(t, ok)
	require.Nil(t, body)

	require.Equal(t, ast.KindAssign, nodeAt(t, vals, 1).Kind)
}

func TestNamespaceBracedSingleLine(t *testing.T) {
	root := mustConvert(t, "<?php namespace App { $x = 1; } ", Options{Version: V2})
	vals := stmts(t, root)
	require.Len(t, vals, 1)
	ns := nodeAt(t, vals, 0)
	require.Equal(t, ast.KindNamespace, ns.Kind)
	body := ns.ChildNode("stmts")
	require.NotNil(t, body)
	require.Len(t, body.List(), 1)
}

func TestUseDeclarations(t *testing.T) {
	source := "<?php\nuse A\\B;\nuse function c\\d as e;\nuse const F;\n"
	root := mustConvert(t, source, Options{Version: V2})
	vals := stmts(t, root)
	require.Len(t, vals, 3)

	normal := nodeAt(t, vals, 0)
	require.Equal(t, ast.KindUse, normal.Kind)
	require.Equal(t, ast.UseNormal, normal.Flags)
	elem := nodeAt(t, normal.List(), 0)
	name, _ := elem.Child("name")
	require.Equal(t, "A\\B", name)
	alias, ok := elem.Child("alias")
	require.True(t, ok)
	require.Nil(t, alias)

	fn := nodeAt(t, vals, 1)
	require.Equal(t, ast.UseFunction, fn.Flags)
	fnElem := nodeAt(t, fn.List(), 0)
	fnAlias, _ := fnElem.Child("alias")
	require.Equal(t, "e", fnAlias)

	require.Equal(t, ast.UseConst, nodeAt(t, vals, 2).Flags)
}

func TestConditionalAndShortTernary(t *testing.T) {
	root := mustConvert(t, "<?php $a = $b ? 1 : 2; $c = $d ?: 3; ", Options{Version: V2})
	conds := find(root, ast.KindConditional)
	require.Len(t, conds, 2)

	full, ok := conds[0].Child("true")
	require.True(t, ok)
	require.Equal(t, int64(1), full)

	short, ok := conds[1].Child("true")
	require.True(t, ok)
	require.Nil(t, short)
	f, _ := conds[1].Child("false")
	require.Equal(t, int64(3), f)
}

func TestIssetAndEmptyLowering(t *testing.T) {
	root := mustConvert(t, "<?php isset($a, $b); empty($c); eval('1;'); exit(2); ", Options{Version: V2})
	vals := stmts(t, root)

	chain := nodeAt(t, vals, 0)
	require.Equal(t, ast.KindAnd, chain.Kind)
	left := chain.ChildNode("left")
	require.Equal(t, ast.KindIsset, left.Kind)
	right := chain.ChildNode("right")
	require.Equal(t, ast.KindIsset, right.Kind)

	require.Equal(t, ast.KindEmpty, nodeAt(t, vals, 1).Kind)

	eval := nodeAt(t, vals, 2)
	require.Equal(t, ast.KindIncludeOrEval, eval.Kind)
	require.Equal(t, ast.ExecEval, eval.Flags)

	exit := nodeAt(t, vals, 3)
	require.Equal(t, ast.KindExit, exit.Kind)
	depth, _ := exit.Child("expr")
	require.Equal(t, int64(2), depth)
}

func TestCoalesceAssignLowering(t *testing.T) {
	root := mustConvert(t, "<?php $a ??= 1; ", Options{Version: V2})
	assign := nodeAt(t, stmts(t, root), 0)
	require.Equal(t, ast.KindAssign, assign.Kind)
	rhs := assign.ChildNode("expr")
	require.Equal(t, ast.KindCoalesce, rhs.Kind)
	fallback, _ := rhs.Child("right")
	require.Equal(t, int64(1), fallback)
}

func TestBinaryOperatorSelection(t *testing.T) {
	root := mustConvert(t, "<?php $a && $b; $a > $b; $a >= $b; $a ?? $b; $a <=> $b; $a xor $b; ", Options{Version: V2})
	vals := stmts(t, root)
	require.Equal(t, ast.KindAnd, nodeAt(t, vals, 0).Kind)
	require.Equal(t, ast.KindGreater, nodeAt(t, vals, 1).Kind)
	require.Equal(t, ast.KindGreaterEqual, nodeAt(t, vals, 2).Kind)
	require.Equal(t, ast.KindCoalesce, nodeAt(t, vals, 3).Kind)
	spaceship := nodeAt(t, vals, 4)
	require.Equal(t, ast.KindBinaryOp, spaceship.Kind)
	require.Equal(t, ast.BinarySpaceship, spaceship.Flags)
	boolXor := nodeAt(t, vals, 5)
	require.Equal(t, ast.KindBinaryOp, boolXor.Kind)
	require.Equal(t, ast.BinaryBoolXor, boolXor.Flags)
}

func TestClassConstAndMagic(t *testing.T) {
	root := mustConvert(t, "<?php C::FOO; C::class; __LINE__; ", Options{Version: V2})
	vals := stmts(t, root)

	cc := nodeAt(t, vals, 0)
	require.Equal(t, ast.KindClassConst, cc.Kind)
	constName, _ := cc.Child("const")
	require.Equal(t, "FOO", constName)

	classMagic := nodeAt(t, vals, 1)
	magicName, _ := classMagic.Child("const")
	require.Equal(t, "class", magicName)

	magic := nodeAt(t, vals, 2)
	require.Equal(t, ast.KindMagicConst, magic.Kind)
	require.Equal(t, ast.MagicLine, magic.Flags)
}

func TestForeachForms(t *testing.T) {
	root := mustConvert(t, "<?php foreach ($xs as $k => &$v) {} ", Options{Version: V2})
	each := nodeAt(t, stmts(t, root), 0)
	require.Equal(t, ast.KindForeach, each.Kind)
	require.Equal(t, []string{"expr", "value", "key", "stmts"}, each.Keys())

	key := each.ChildNode("key")
	require.NotNil(t, key)
	kname, _ := key.Child("name")
	require.Equal(t, "k", kname)

	value := each.ChildNode("value")
	require.NotNil(t, value)
	require.Equal(t, ast.KindRef, value.Kind)
}

func TestForEmptyClausesAreNull(t *testing.T) {
	root := mustConvert(t, "<?php for (;;) {} ", Options{Version: V2})
	loop := nodeAt(t, stmts(t, root), 0)
	require.Equal(t, ast.KindFor, loop.Kind)
	for _, key := range []string{"init", "cond", "loop"} {
		v, ok := loop.Child(key)
		require.True(t, ok)
		require.Nil(t, v, "clause %q should be null, not an empty list", key)
	}
}

func TestMatchExpression(t *testing.T) {
	root := mustConvert(t, "<?php $r = match ($x) { 1, 2 => 'a', default => 'b' }; ", Options{Version: V2})
	matches := find(root, ast.KindMatch)
	require.Len(t, matches, 1)
	arms := matches[0].ChildNode("stmts")
	require.Equal(t, ast.KindMatchArmList, arms.Kind)
	require.Len(t, arms.List(), 2)

	first := nodeAt(t, arms.List(), 0)
	condList := first.ChildNode("cond")
	require.NotNil(t, condList)
	require.Len(t, condList.List(), 2)

	dflt := nodeAt(t, arms.List(), 1)
	cond, ok := dflt.Child("cond")
	require.True(t, ok)
	require.Nil(t, cond)
	expr, _ := dflt.Child("expr")
	require.Equal(t, "b", expr)
}

func TestArrayLiterals(t *testing.T) {
	root := mustConvert(t, "<?php $a = [1, 'k' => 2]; $b = array(3); ", Options{Version: V2})
	arrays := find(root, ast.KindArray)
	require.Len(t, arrays, 2)

	short := arrays[0]
	require.Equal(t, ast.ArraySyntaxShort, short.Flags)
	elems := short.List()
	require.Len(t, elems, 2)
	plain := nodeAt(t, elems, 0)
	k, ok := plain.Child("key")
	require.True(t, ok)
	require.Nil(t, k)
	keyed := nodeAt(t, elems, 1)
	kk, _ := keyed.Child("key")
	require.Equal(t, "k", kk)
	vv, _ := keyed.Child("value")
	require.Equal(t, int64(2), vv)

	require.Equal(t, ast.ArraySyntaxLong, arrays[1].Flags)
}

func TestSyntaxErrorFatalByDefault(t *testing.T) {
	c, err := New(Options{Version: V2})
	require.NoError(t, err)
	_, err = c.Convert(context.Background(), []byte("<?php function ( { "))
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	require.NotEmpty(t, serr.Errors)
}

func TestSyntaxErrorCollection(t *testing.T) {
	var errs []parser.ParseError
	c, err := New(Options{Version: V2, Errors: &errs})
	require.NoError(t, err)
	root, err := c.Convert(context.Background(), []byte("<?php $x = ; "))
	require.NoError(t, err)
	require.NotNil(t, root)
	require.NotEmpty(t, errs)
}

func TestIncompletePolicies(t *testing.T) {
	source := "<?php $x = ; "
	sentinel := func(root *ast.Node) bool {
		found := false
		walk(root, func(n *ast.Node) {
			if n.Kind != ast.KindName {
				return
			}
			if name, _ := n.Child("name"); name == placeholderExpr {
				found = true
			}
		})
		return found
	}

	var errs []parser.ParseError
	c, err := New(Options{Version: V2, Errors: &errs})
	require.NoError(t, err)
	root, err := c.Convert(context.Background(), []byte(source))
	require.NoError(t, err)
	require.True(t, sentinel(root), "placeholder policy should substitute the sentinel")

	errs = nil
	c, err = New(Options{Version: V2, Policy: PolicyDrop, Errors: &errs})
	require.NoError(t, err)
	root, err = c.Convert(context.Background(), []byte(source))
	require.NoError(t, err)
	require.False(t, sentinel(root), "drop policy should remove the construct")
}

func TestChildLineFallback(t *testing.T) {
	n := ast.New(ast.KindVar, 0, 7, ast.Child{Key: "name", Val: "x"})
	require.Equal(t, 7, childLine(3, int64(1), n))
	require.Equal(t, 3, childLine(3, nil, int64(1)))
}

func TestIssetLineFromArgument(t *testing.T) {
	source := "<?php\nisset(\n    $a,\n    $b\n);\n"
	root := mustConvert(t, source, Options{Version: V2})
	issets := find(root, ast.KindIsset)
	require.Len(t, issets, 2)
	require.Equal(t, 3, issets[0].Line)
	require.Equal(t, 4, issets[1].Line)
}

func TestErrorValueRoundtrip(t *testing.T) {
	require.Contains(t, (&VersionError{Version: 42}).Error(), "unsupported schema version 42")
	uerr := &UnrecognizedNodeError{Type: "mystery", Line: 7}
	require.Contains(t, uerr.Error(), "mystery")
	require.True(t, errors.Is(ErrInvalidNode, ErrInvalidNode))
}
