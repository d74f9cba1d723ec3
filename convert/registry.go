package convert

import (
	"sync"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// handler converts one input node. It may return a single node, a sequence
// of sibling nodes (spliced by the caller), a scalar, or nil when the
// construct is dropped.
type handler func(*session, sitter.Node) (any, error)

var (
	registryOnce sync.Once
	registry     map[string]handler
)

// handlers returns the dispatch table, built once for the lifetime of the
// process and shared by all conversions.
func handlers() map[string]handler {
	registryOnce.Do(func() { registry = buildRegistry() })
	return registry
}

func buildRegistry() map[string]handler {
	h := map[string]handler{
		// Program structure and trivia.
		"program":            (*session).convertProgram,
		"compound_statement": (*session).convertCompound,
		"ERROR":              (*session).convertError,

		// Statements.
		"expression_statement":        (*session).convertExpressionStatement,
		"if_statement":                (*session).convertIf,
		"while_statement":             (*session).convertWhile,
		"do_statement":                (*session).convertDoWhile,
		"for_statement":               (*session).convertFor,
		"foreach_statement":           (*session).convertForeach,
		"switch_statement":            (*session).convertSwitch,
		"try_statement":               (*session).convertTry,
		"return_statement":            (*session).convertReturn,
		"break_statement":             (*session).convertBreak,
		"continue_statement":          (*session).convertContinue,
		"goto_statement":              (*session).convertGoto,
		"named_label_statement":       (*session).convertLabel,
		"echo_statement":              (*session).convertEcho,
		"unset_statement":             (*session).convertUnset,
		"global_declaration":          (*session).convertGlobal,
		"function_static_declaration": (*session).convertFunctionStatic,
		"const_declaration":           (*session).convertConstDeclaration,
		"declare_statement":           (*session).convertDeclareStatement,
		"exit_statement":              (*session).convertExitStatement,
		"throw_statement":             (*session).convertThrowStatement,

		// Namespaces and imports.
		"namespace_definition":        (*session).convertNamespace,
		"namespace_use_declaration":   (*session).convertNamespaceUse,
		"use_declaration":             (*session).convertTraitUse,

		// Declarations.
		"function_definition":                    (*session).convertFunction,
		"method_declaration":                     (*session).convertMethod,
		"class_declaration":                      (*session).convertClassDeclaration,
		"interface_declaration":                  (*session).convertInterfaceDeclaration,
		"trait_declaration":                      (*session).convertTraitDeclaration,
		"enum_declaration":                       (*session).convertEnumDeclaration,
		"enum_case":                              (*session).convertEnumCase,
		"property_declaration":                   (*session).convertPropertyDeclaration,
		"anonymous_function_creation_expression": (*session).convertClosure,
		"anonymous_function":                     (*session).convertClosure,
		"arrow_function":                         (*session).convertArrowFunction,

		// Expressions.
		"variable_name":                     (*session).convertVariable,
		"dynamic_variable_name":             (*session).convertDynamicVariable,
		"name":                              (*session).convertNameExpr,
		"qualified_name":                    (*session).convertNameExpr,
		"relative_name":                     (*session).convertNameExpr,
		"parenthesized_expression":          (*session).convertParenthesized,
		"sequence_expression":               (*session).convertSequence,
		"assignment_expression":             (*session).convertAssignment,
		"reference_assignment_expression":   (*session).convertAssignmentRef,
		"augmented_assignment_expression":   (*session).convertAssignmentOp,
		"binary_expression":                 (*session).convertBinary,
		"unary_op_expression":               (*session).convertUnary,
		"update_expression":                 (*session).convertUpdate,
		"cast_expression":                   (*session).convertCast,
		"conditional_expression":            (*session).convertConditional,
		"match_expression":                  (*session).convertMatch,
		"instanceof_expression":             (*session).convertInstanceof,
		"error_suppression_expression":      (*session).convertSilence,
		"clone_expression":                  (*session).convertClone,
		"print_intrinsic":                   (*session).convertPrint,
		"include_expression":                (*session).convertInclude,
		"include_once_expression":           (*session).convertInclude,
		"require_expression":                (*session).convertInclude,
		"require_once_expression":           (*session).convertInclude,
		"shell_command_expression":          (*session).convertShellExec,
		"function_call_expression":          (*session).convertCall,
		"member_call_expression":            (*session).convertMethodCall,
		"nullsafe_member_call_expression":   (*session).convertMethodCall,
		"scoped_call_expression":            (*session).convertStaticCall,
		"member_access_expression":          (*session).convertPropAccess,
		"nullsafe_member_access_expression": (*session).convertPropAccess,
		"scoped_property_access_expression": (*session).convertStaticProp,
		"class_constant_access_expression":  (*session).convertClassConst,
		"subscript_expression":              (*session).convertSubscript,
		"object_creation_expression":        (*session).convertNew,
		"array_creation_expression":         (*session).convertArray,
		"list_literal":                      (*session).convertListLiteral,
		"yield_expression":                  (*session).convertYield,
		"throw_expression":                  (*session).convertThrowStatement,
		"variadic_unpacking":                (*session).convertUnpack,
		"by_ref":                            (*session).convertByRef,

		// Scalars.
		"integer":         (*session).convertInteger,
		"float":           (*session).convertFloat,
		"string":          (*session).convertString,
		"encapsed_string": (*session).convertEncapsedString,
		"heredoc":         (*session).convertHeredoc,
		"nowdoc":          (*session).convertHeredoc,
		"boolean":         (*session).convertBoolean,
		"null":            (*session).convertNull,
	}

	// Trivia inside statement lists produces nothing; the handlers exist so
	// strict mode does not trip over them.
	discard := func(*session, sitter.Node) (any, error) { return nil, nil }
	for _, t := range []string{"comment", "text", "text_interpolation", "php_tag", "empty_statement", "attribute_list"} {
		h[t] = discard
	}

	return h
}
