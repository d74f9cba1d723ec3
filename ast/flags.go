package ast

// Flag values below are, like the kind numbers, an external compatibility
// contract. Flag families are scoped to the kinds that use them; values from
// different families may collide.

// Member and declaration modifiers.
const (
	ModifierStatic    = 1 << 0
	ModifierAbstract  = 1 << 1
	ModifierFinal     = 1 << 2
	ModifierPublic    = 1 << 8
	ModifierProtected = 1 << 9
	ModifierPrivate   = 1 << 10
	ModifierReadonly  = 1 << 14
)

// Function and method flags, combined with modifiers.
const (
	FlagGenerator  = 1 << 23
	FlagReturnsRef = 1 << 26
)

// Parameter flags.
const (
	ParamRef      = 1 << 0
	ParamVariadic = 1 << 1
)

// Closure use flags (AST_CLOSURE_VAR).
const ClosureUseRef = 1 << 0

// Class flags (AST_CLASS).
const (
	ClassFinal     = 1 << 2
	ClassAbstract  = 1 << 5
	ClassInterface = 1 << 6
	ClassTrait     = 1 << 7
	ClassAnonymous = 1 << 8
	ClassEnum      = 1 << 12
)

// Name qualification flags (AST_NAME).
const (
	NameFQ       = 0
	NameNotFQ    = 1
	NameRelative = 2
)

// Primitive type flags (AST_TYPE, and cast targets on AST_CAST).
const (
	TypeNull     = 1
	TypeLong     = 4
	TypeDouble   = 5
	TypeString   = 6
	TypeArray    = 7
	TypeObject   = 8
	TypeBool     = 13
	TypeCallable = 14
	TypeVoid     = 18
	TypeIterable = 19
)

// Binary operator flags (AST_BINARY_OP, reused by AST_ASSIGN_OP).
const (
	BinaryAdd            = 1
	BinarySub            = 2
	BinaryMul            = 3
	BinaryDiv            = 4
	BinaryMod            = 5
	BinaryShiftLeft      = 6
	BinaryShiftRight     = 7
	BinaryConcat         = 8
	BinaryBitwiseOr      = 9
	BinaryBitwiseAnd     = 10
	BinaryBitwiseXor     = 11
	BinaryBoolXor        = 14
	BinaryIsIdentical    = 15
	BinaryIsNotIdentical = 16
	BinaryIsEqual        = 17
	BinaryIsNotEqual     = 18
	BinaryIsSmaller      = 19
	BinaryIsSmallerOrEq  = 20
	BinaryPow            = 166
	BinarySpaceship      = 170
)

// Unary operator flags (AST_UNARY_OP).
const (
	UnaryMinus      = 3
	UnaryPlus       = 4
	UnaryBitwiseNot = 12
	UnaryBoolNot    = 13
)

// Magic constant flags (AST_MAGIC_CONST).
const (
	MagicLine = 1 + iota
	MagicFile
	MagicDir
	MagicNamespace
	MagicFunction
	MagicMethod
	MagicClass
	MagicTrait
)

// Execution flags (AST_INCLUDE_OR_EVAL).
const (
	ExecEval        = 1
	ExecInclude     = 2
	ExecIncludeOnce = 4
	ExecRequire     = 8
	ExecRequireOnce = 16
)

// Use kinds (AST_USE, AST_USE_ELEM, AST_GROUP_USE).
const (
	UseNormal   = 1
	UseFunction = 2
	UseConst    = 4
)

// Array literal syntax flags (AST_ARRAY).
const (
	ArraySyntaxList  = 1
	ArraySyntaxLong  = 2
	ArraySyntaxShort = 3
)

// Array element flags (AST_ARRAY_ELEM).
const ArrayElemRef = 1 << 0
