// Package convert turns syntax trees produced by the tree-sitter PHP grammar
// into the canonical, versioned node representation defined by package ast.
//
// Conversion is a single synchronous depth-first walk. All per-run state (the
// declaration-id counter, the incomplete-construct policy, the target schema
// version) lives in a session created at the top-level entry point, so a
// Converter value is safe for concurrent use. Recursion depth is bounded only
// by input nesting depth; pathologically deep expressions can exhaust the
// stack.
//
// Constructs that postdate both supported schema versions are lowered rather
// than rejected: arrow functions become closures with a single return
// statement, nullsafe accesses use the plain access kinds, and `??=` becomes
// an assignment of a coalesce expression. PHP 8 attributes and argument names
// have no slot in either schema version and are skipped.
package convert

import (
	"context"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/tliron/commonlog"

	"github.com/shinyvision/phpast/ast"
	"github.com/shinyvision/phpast/parser"
)

// Version selects the output schema layout.
type Version int

const (
	// V1 keeps declaration name, doc comment and end line out of band as
	// node attributes and has no declaration ids.
	V1 Version = 40
	// V2 encodes declaration name, doc comment and a synthetic declaration
	// id as the leading children of declaration nodes.
	V2 Version = 50
)

// CheckVersion rejects any schema version other than the two supported ones.
// It runs before any conversion or type-mapping work is performed.
func CheckVersion(v Version) error {
	switch v {
	case V1, V2:
		return nil
	}
	return &VersionError{Version: v}
}

// Policy governs what happens when a required sub-expression cannot be
// produced from the input.
type Policy int

const (
	// PolicyPlaceholder substitutes a fixed sentinel constant for the
	// missing sub-expression.
	PolicyPlaceholder Policy = iota
	// PolicyDrop removes the enclosing construct, propagating the absence
	// upward.
	PolicyDrop
)

// Options configure a Converter.
type Options struct {
	Version Version
	Policy  Policy
	// Strict makes an unrecognized input node type an error instead of a
	// stub node. Intended for tests and diagnostics.
	Strict bool
	// Errors, when non-nil, collects front-end syntax errors instead of
	// failing the conversion.
	Errors *[]parser.ParseError
}

// Converter converts parsed PHP source into output trees. A Converter is
// immutable and safe for concurrent use.
type Converter struct {
	opts Options
	log  commonlog.Logger
}

// New validates the requested schema version and returns a Converter.
func New(opts Options) (*Converter, error) {
	if err := CheckVersion(opts.Version); err != nil {
		return nil, err
	}
	return &Converter{opts: opts, log: commonlog.GetLoggerf("phpast.convert")}, nil
}

// Convert parses source text and converts the resulting tree. The returned
// tree is owned by the caller; the intermediate syntax tree is released
// before returning.
func (c *Converter) Convert(ctx context.Context, source []byte) (*ast.Node, error) {
	tree, err := parser.New().Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()
	return c.ConvertTree(tree.RootNode(), source)
}

// ConvertTree converts an already-parsed syntax tree. The input tree is not
// modified and stays owned by the caller.
func (c *Converter) ConvertTree(root sitter.Node, source []byte) (*ast.Node, error) {
	if err := CheckVersion(c.opts.Version); err != nil {
		return nil, err
	}
	if root.IsNull() {
		return nil, ErrInvalidNode
	}
	if errs := parser.SyntaxErrors(root, source); len(errs) > 0 {
		if c.opts.Errors == nil {
			return nil, &SyntaxError{Errors: errs}
		}
		*c.opts.Errors = append(*c.opts.Errors, errs...)
	}

	s := &session{
		src:     source,
		version: c.opts.Version,
		policy:  c.opts.Policy,
		strict:  c.opts.Strict,
		log:     c.log,
	}
	v, err := s.convert(root)
	if err != nil {
		return nil, err
	}
	node, ok := v.(*ast.Node)
	if !ok {
		return nil, ErrInvalidNode
	}
	return node, nil
}

// session holds the state of one top-level conversion call. It is created at
// the entry point and never shared across calls.
type session struct {
	src        []byte
	version    Version
	policy     Policy
	strict     bool
	log        commonlog.Logger
	nextDeclID int
}

func (s *session) text(n sitter.Node) string {
	if n.IsNull() {
		return ""
	}
	return n.Content(s.src)
}

// allocDeclID hands out declaration ids in depth-first encounter order,
// starting from zero for every conversion call.
func (s *session) allocDeclID() int {
	id := s.nextDeclID
	s.nextDeclID++
	return id
}

// convert dispatches a single input node through the registry. It returns a
// node, a sequence of sibling nodes to be spliced by the caller, a scalar, or
// nil when the construct was dropped.
func (s *session) convert(n sitter.Node) (any, error) {
	if n.IsNull() {
		return nil, ErrInvalidNode
	}
	if h, ok := handlers()[n.Type()]; ok {
		return h(s, n)
	}
	if s.strict {
		return nil, &UnrecognizedNodeError{Type: n.Type(), Line: nodeLine(n)}
	}
	s.log.Debugf("stub node substituted for %q at line %d", n.Type(), nodeLine(n))
	return s.stub(n), nil
}

// stub builds the placeholder node substituted for an unrecognized input
// construct.
func (s *session) stub(n sitter.Node) *ast.Node {
	return ast.New(ast.KindStub, 0, resolveLine(n),
		ast.Child{Key: "kind", Val: n.Type()})
}
