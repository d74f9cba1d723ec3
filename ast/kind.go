package ast

// Kind identifies the shape of an output node. The numeric values are part of
// the compatibility contract with downstream tooling and must not be
// renumbered.
//
// Kinds are grouped into ranges by arity: 0..63 are childless, 64..127 are
// declarations, 128..255 are lists of uniform children, 256, 512, 768 and
// 1024 open the one-, two-, three- and four-child ranges, and 2048 opens the
// range of kinds synthesized by this tool rather than inherited from the
// upstream numbering.
type Kind uint16

// Childless kinds.
const (
	KindMagicConst Kind = iota
	KindType
)

// Declaration kinds. These are the only kinds that carry a name, a doc
// comment, an end line and (at the id-bearing schema version) a declaration
// id.
const (
	KindFuncDecl Kind = 65 + iota
	KindClosure
	KindMethod
	KindClass
)

// List kinds. Their children are positional and share one shape.
const (
	KindArgList Kind = 128 + iota
	KindArray
	KindEncapsList
	KindExprList
	KindStmtList
	KindIf
	KindSwitchList
	KindCatchList
	KindParamList
	KindClosureUses
	KindPropDecl
	KindConstDecl
	KindClassConstDecl
	KindNameList
	KindTraitAdaptations
	KindUse
	KindMatchArmList
	KindTypeUnion
	KindTypeIntersection
)

// One-child kinds.
const (
	KindVar Kind = 256 + iota
	KindConst
	KindUnpack
	KindCast
	KindEmpty
	KindIsset
	KindSilence
	KindShellExec
	KindClone
	KindExit
	KindPrint
	KindIncludeOrEval
	KindUnaryOp
	KindPreInc
	KindPreDec
	KindPostInc
	KindPostDec
	KindYieldFrom
	KindGlobal
	KindUnset
	KindReturn
	KindLabel
	KindRef
	KindHaltCompiler
	KindEcho
	KindThrow
	KindGoto
	KindBreak
	KindContinue
)

// Two-child kinds.
const (
	KindDim Kind = 512 + iota
	KindProp
	KindStaticProp
	KindCall
	KindClassConst
	KindAssign
	KindAssignRef
	KindAssignOp
	KindBinaryOp
	KindGreater
	KindGreaterEqual
	KindAnd
	KindOr
	KindArrayElem
	KindNew
	KindInstanceof
	KindYield
	KindCoalesce
	KindStatic
	KindWhile
	KindDoWhile
	KindIfElem
	KindSwitch
	KindSwitchCase
	KindDeclare
	KindUseTrait
	KindTraitPrecedence
	KindMethodReference
	KindNamespace
	KindUseElem
	KindTraitAlias
	KindGroupUse
	KindMatch
	KindMatchArm
)

// Three-child kinds.
const (
	KindMethodCall Kind = 768 + iota
	KindStaticCall
	KindConditional
	KindTry
	KindCatch
	KindParam
	KindPropElem
	KindConstElem
)

// Four-child kinds.
const (
	KindFor Kind = 1024 + iota
	KindForeach
)

// Kinds synthesized by this tool.
const (
	KindName Kind = 2048 + iota
	KindClosureVar
	KindNullableType
	KindStub
)

var kindNames = map[Kind]string{
	KindMagicConst:       "AST_MAGIC_CONST",
	KindType:             "AST_TYPE",
	KindFuncDecl:         "AST_FUNC_DECL",
	KindClosure:          "AST_CLOSURE",
	KindMethod:           "AST_METHOD",
	KindClass:            "AST_CLASS",
	KindArgList:          "AST_ARG_LIST",
	KindArray:            "AST_ARRAY",
	KindEncapsList:       "AST_ENCAPS_LIST",
	KindExprList:         "AST_EXPR_LIST",
	KindStmtList:         "AST_STMT_LIST",
	KindIf:               "AST_IF",
	KindSwitchList:       "AST_SWITCH_LIST",
	KindCatchList:        "AST_CATCH_LIST",
	KindParamList:        "AST_PARAM_LIST",
	KindClosureUses:      "AST_CLOSURE_USES",
	KindPropDecl:         "AST_PROP_DECL",
	KindConstDecl:        "AST_CONST_DECL",
	KindClassConstDecl:   "AST_CLASS_CONST_DECL",
	KindNameList:         "AST_NAME_LIST",
	KindTraitAdaptations: "AST_TRAIT_ADAPTATIONS",
	KindUse:              "AST_USE",
	KindMatchArmList:     "AST_MATCH_ARM_LIST",
	KindTypeUnion:        "AST_TYPE_UNION",
	KindTypeIntersection: "AST_TYPE_INTERSECTION",
	KindVar:              "AST_VAR",
	KindConst:            "AST_CONST",
	KindUnpack:           "AST_UNPACK",
	KindCast:             "AST_CAST",
	KindEmpty:            "AST_EMPTY",
	KindIsset:            "AST_ISSET",
	KindSilence:          "AST_SILENCE",
	KindShellExec:        "AST_SHELL_EXEC",
	KindClone:            "AST_CLONE",
	KindExit:             "AST_EXIT",
	KindPrint:            "AST_PRINT",
	KindIncludeOrEval:    "AST_INCLUDE_OR_EVAL",
	KindUnaryOp:          "AST_UNARY_OP",
	KindPreInc:           "AST_PRE_INC",
	KindPreDec:           "AST_PRE_DEC",
	KindPostInc:          "AST_POST_INC",
	KindPostDec:          "AST_POST_DEC",
	KindYieldFrom:        "AST_YIELD_FROM",
	KindGlobal:           "AST_GLOBAL",
	KindUnset:            "AST_UNSET",
	KindReturn:           "AST_RETURN",
	KindLabel:            "AST_LABEL",
	KindRef:              "AST_REF",
	KindHaltCompiler:     "AST_HALT_COMPILER",
	KindEcho:             "AST_ECHO",
	KindThrow:            "AST_THROW",
	KindGoto:             "AST_GOTO",
	KindBreak:            "AST_BREAK",
	KindContinue:         "AST_CONTINUE",
	KindDim:              "AST_DIM",
	KindProp:             "AST_PROP",
	KindStaticProp:       "AST_STATIC_PROP",
	KindCall:             "AST_CALL",
	KindClassConst:       "AST_CLASS_CONST",
	KindAssign:           "AST_ASSIGN",
	KindAssignRef:        "AST_ASSIGN_REF",
	KindAssignOp:         "AST_ASSIGN_OP",
	KindBinaryOp:         "AST_BINARY_OP",
	KindGreater:          "AST_GREATER",
	KindGreaterEqual:     "AST_GREATER_EQUAL",
	KindAnd:              "AST_AND",
	KindOr:               "AST_OR",
	KindArrayElem:        "AST_ARRAY_ELEM",
	KindNew:              "AST_NEW",
	KindInstanceof:       "AST_INSTANCEOF",
	KindYield:            "AST_YIELD",
	KindCoalesce:         "AST_COALESCE",
	KindStatic:           "AST_STATIC",
	KindWhile:            "AST_WHILE",
	KindDoWhile:          "AST_DO_WHILE",
	KindIfElem:           "AST_IF_ELEM",
	KindSwitch:           "AST_SWITCH",
	KindSwitchCase:       "AST_SWITCH_CASE",
	KindDeclare:          "AST_DECLARE",
	KindUseTrait:         "AST_USE_TRAIT",
	KindTraitPrecedence:  "AST_TRAIT_PRECEDENCE",
	KindMethodReference:  "AST_METHOD_REFERENCE",
	KindNamespace:        "AST_NAMESPACE",
	KindUseElem:          "AST_USE_ELEM",
	KindTraitAlias:       "AST_TRAIT_ALIAS",
	KindGroupUse:         "AST_GROUP_USE",
	KindMatch:            "AST_MATCH",
	KindMatchArm:         "AST_MATCH_ARM",
	KindMethodCall:       "AST_METHOD_CALL",
	KindStaticCall:       "AST_STATIC_CALL",
	KindConditional:      "AST_CONDITIONAL",
	KindTry:              "AST_TRY",
	KindCatch:            "AST_CATCH",
	KindParam:            "AST_PARAM",
	KindPropElem:         "AST_PROP_ELEM",
	KindConstElem:        "AST_CONST_ELEM",
	KindFor:              "AST_FOR",
	KindForeach:          "AST_FOREACH",
	KindName:             "AST_NAME",
	KindClosureVar:       "AST_CLOSURE_VAR",
	KindNullableType:     "AST_NULLABLE_TYPE",
	KindStub:             "AST_STUB",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "AST_UNKNOWN"
}

// IsDecl reports whether nodes of this kind carry declaration attributes.
func (k Kind) IsDecl() bool {
	switch k {
	case KindFuncDecl, KindClosure, KindMethod, KindClass:
		return true
	}
	return false
}

// IsList reports whether nodes of this kind hold positional children.
func (k Kind) IsList() bool {
	return k >= 128 && k < 256
}
