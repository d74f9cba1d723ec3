package convert

import (
	"errors"
	"fmt"

	"github.com/shinyvision/phpast/parser"
)

// ErrInvalidNode signals that a null node reached the dispatch core. This is
// an internal contract violation, not an input error.
var ErrInvalidNode = errors.New("convert: null node reached dispatch")

// VersionError reports a request for an output schema version other than the
// two supported ones.
type VersionError struct {
	Version Version
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported schema version %d (supported: %d and %d)", e.Version, V1, V2)
}

// UnrecognizedNodeError is returned in strict mode when the input tree holds
// a node type missing from the registry. Outside strict mode the node becomes
// a stub instead.
type UnrecognizedNodeError struct {
	Type string
	Line int
}

func (e *UnrecognizedNodeError) Error() string {
	return fmt.Sprintf("unrecognized node type %q at line %d", e.Type, e.Line)
}

// SyntaxError carries the front-end syntax errors of a conversion that was
// not run in error-collection mode.
type SyntaxError struct {
	Errors []parser.ParseError
}

func (e *SyntaxError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", e.Errors[0].Error(), len(e.Errors)-1)
}
