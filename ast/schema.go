package ast

import "fmt"

// childKeys fixes the child-key set and order per kind. List kinds are not
// listed; their children are positional.
var childKeys = map[Kind][]string{
	KindMagicConst: {},
	KindType:       {},

	KindFuncDecl: {"params", "uses", "stmts", "returnType"},
	KindClosure:  {"params", "uses", "stmts", "returnType"},
	KindMethod:   {"params", "uses", "stmts", "returnType"},
	KindClass:    {"extends", "implements", "stmts"},

	KindVar:           {"name"},
	KindConst:         {"name"},
	KindUnpack:        {"expr"},
	KindCast:          {"expr"},
	KindEmpty:         {"expr"},
	KindIsset:         {"var"},
	KindSilence:       {"expr"},
	KindShellExec:     {"expr"},
	KindClone:         {"expr"},
	KindExit:          {"expr"},
	KindPrint:         {"expr"},
	KindIncludeOrEval: {"expr"},
	KindUnaryOp:       {"expr"},
	KindPreInc:        {"var"},
	KindPreDec:        {"var"},
	KindPostInc:       {"var"},
	KindPostDec:       {"var"},
	KindYieldFrom:     {"expr"},
	KindGlobal:        {"var"},
	KindUnset:         {"var"},
	KindReturn:        {"expr"},
	KindLabel:         {"name"},
	KindRef:           {"var"},
	KindHaltCompiler:  {"offset"},
	KindEcho:          {"expr"},
	KindThrow:         {"expr"},
	KindGoto:          {"label"},
	KindBreak:         {"depth"},
	KindContinue:      {"depth"},

	KindDim:             {"expr", "dim"},
	KindProp:            {"expr", "prop"},
	KindStaticProp:      {"class", "prop"},
	KindCall:            {"expr", "args"},
	KindClassConst:      {"class", "const"},
	KindAssign:          {"var", "expr"},
	KindAssignRef:       {"var", "expr"},
	KindAssignOp:        {"var", "expr"},
	KindBinaryOp:        {"left", "right"},
	KindGreater:         {"left", "right"},
	KindGreaterEqual:    {"left", "right"},
	KindAnd:             {"left", "right"},
	KindOr:              {"left", "right"},
	KindArrayElem:       {"value", "key"},
	KindNew:             {"class", "args"},
	KindInstanceof:      {"expr", "class"},
	KindYield:           {"value", "key"},
	KindCoalesce:        {"left", "right"},
	KindStatic:          {"var", "default"},
	KindWhile:           {"cond", "stmts"},
	KindDoWhile:         {"stmts", "cond"},
	KindIfElem:          {"cond", "stmts"},
	KindSwitch:          {"cond", "stmts"},
	KindSwitchCase:      {"cond", "stmts"},
	KindDeclare:         {"declares", "stmts"},
	KindUseTrait:        {"traits", "adaptations"},
	KindTraitPrecedence: {"method", "insteadof"},
	KindMethodReference: {"class", "method"},
	KindNamespace:       {"name", "stmts"},
	KindUseElem:         {"name", "alias"},
	KindTraitAlias:      {"method", "alias"},
	KindGroupUse:        {"prefix", "uses"},
	KindMatch:           {"cond", "stmts"},
	KindMatchArm:        {"cond", "expr"},

	KindMethodCall:  {"expr", "method", "args"},
	KindStaticCall:  {"class", "method", "args"},
	KindConditional: {"cond", "true", "false"},
	KindTry:         {"try", "catches", "finally"},
	KindCatch:       {"class", "var", "stmts"},
	KindParam:       {"type", "name", "default"},
	KindPropElem:    {"name", "default", "docComment"},
	KindConstElem:   {"name", "value", "docComment"},

	KindFor:     {"init", "cond", "loop", "stmts"},
	KindForeach: {"expr", "value", "key", "stmts"},

	KindName:         {"name"},
	KindClosureVar:   {"name"},
	KindNullableType: {"type"},
	KindStub:         {"kind"},
}

// optionalChildKeys lists the keys a kind may omit entirely. Everything else
// must be present, absent children included (with an explicit nil value).
var optionalChildKeys = map[Kind]map[string]bool{
	KindTry: {"catches": true},
}

// declPrefixKeys are the children the version adapter prepends to declaration
// nodes at the id-bearing schema version.
var declPrefixKeys = map[string]bool{
	"name":       true,
	"docComment": true,
	"__declId":   true,
}

// ChildKeys returns the schema child keys for a fixed-shape kind.
func ChildKeys(k Kind) ([]string, bool) {
	keys, ok := childKeys[k]
	return keys, ok
}

// Validate checks the whole tree rooted at n against the schema: every node's
// child keys must match its kind's shape in order, allowing declared-optional
// omissions and the declaration prefix children.
func Validate(n *Node) error {
	if n == nil {
		return nil
	}
	if n.Line < 0 {
		return fmt.Errorf("%s: negative line %d", n.Kind, n.Line)
	}
	if n.Kind.IsList() {
		for i, c := range n.Children {
			if c.Key != "" {
				return fmt.Errorf("%s: list child %d has key %q", n.Kind, i, c.Key)
			}
			if err := validateValue(c.Val); err != nil {
				return err
			}
		}
		return nil
	}
	keys, ok := childKeys[n.Kind]
	if !ok {
		return fmt.Errorf("%s: kind not in schema", n.Kind)
	}
	got := n.Children
	if n.Kind.IsDecl() {
		for len(got) > 0 && declPrefixKeys[got[0].Key] {
			if err := validateValue(got[0].Val); err != nil {
				return err
			}
			got = got[1:]
		}
	}
	optional := optionalChildKeys[n.Kind]
	gi := 0
	for _, want := range keys {
		if gi < len(got) && got[gi].Key == want {
			if err := validateValue(got[gi].Val); err != nil {
				return err
			}
			gi++
			continue
		}
		if !optional[want] {
			return fmt.Errorf("%s: missing child %q", n.Kind, want)
		}
	}
	if gi != len(got) {
		return fmt.Errorf("%s: unexpected child %q", n.Kind, got[gi].Key)
	}
	return nil
}

func validateValue(v any) error {
	switch val := v.(type) {
	case nil, int64, float64, string, bool:
		return nil
	case *Node:
		return Validate(val)
	default:
		return fmt.Errorf("unexpected child value of type %T", v)
	}
}
