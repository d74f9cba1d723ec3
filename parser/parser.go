// Package parser wraps the tree-sitter PHP grammar used as the front end of
// the converter. It owns parser lifecycle and syntax-error reporting; it
// performs no conversion of its own.
package parser

import (
	"context"
	"fmt"

	phpforest "github.com/alexaandru/go-sitter-forest/php"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/tliron/commonlog"
)

// ParseError describes a single syntax error reported by the front end.
// Lines are 1-based, columns 0-based.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Message)
}

// Parser is a tree-sitter parser configured for PHP. A Parser is not safe for
// concurrent use; construct one per goroutine.
type Parser struct {
	parser *sitter.Parser
}

// New constructs a Parser with the PHP grammar loaded.
func New() *Parser {
	p := sitter.NewParser()
	lang := sitter.NewLanguage(phpforest.GetLanguage())
	_ = p.SetLanguage(lang)
	return &Parser{parser: p}
}

// Parse parses source text into a syntax tree. The caller owns the returned
// tree and must Close it. A tree is returned even when the source contains
// syntax errors; use SyntaxErrors to inspect them.
func (p *Parser) Parse(ctx context.Context, source []byte) (*sitter.Tree, error) {
	tree, err := p.parser.ParseString(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if tree == nil || tree.RootNode().IsNull() {
		return nil, fmt.Errorf("parse: grammar produced no tree")
	}
	return tree, nil
}

// SyntaxErrors walks the tree and collects every error and missing node in
// source order.
func SyntaxErrors(root sitter.Node, source []byte) []ParseError {
	logger := commonlog.GetLoggerf("phpast.parser")

	var errs []ParseError
	var walk func(n sitter.Node)
	walk = func(n sitter.Node) {
		if n.IsNull() {
			return
		}
		if n.Type() == "ERROR" {
			excerpt := n.Content(source)
			if len(excerpt) > 40 {
				excerpt = excerpt[:40] + "..."
			}
			errs = append(errs, ParseError{
				Line:    int(n.StartPoint().Row) + 1,
				Column:  int(n.StartPoint().Column),
				Message: fmt.Sprintf("unexpected input %q", excerpt),
			})
		} else if n.IsMissing() {
			errs = append(errs, ParseError{
				Line:    int(n.StartPoint().Row) + 1,
				Column:  int(n.StartPoint().Column),
				Message: fmt.Sprintf("missing %s", n.Type()),
			})
		}
		// Missing tokens can be anonymous, so walk all children, not just
		// named ones.
		for i := uint32(0); i < n.ChildCount(); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	if len(errs) > 0 {
		logger.Debugf("collected %d syntax errors", len(errs))
	}
	return errs
}
