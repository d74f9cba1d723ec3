package convert

import (
	"strconv"
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/shinyvision/phpast/ast"
)

func (s *session) convertInteger(n sitter.Node) (any, error) {
	text := strings.ReplaceAll(s.text(n), "_", "")
	if v, err := strconv.ParseInt(text, 0, 64); err == nil {
		return v, nil
	}
	// Literals past the signed 64-bit range degrade to floats, matching the
	// runtime's own overflow behavior.
	if u, err := strconv.ParseUint(text, 0, 64); err == nil {
		return float64(u), nil
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f, nil
	}
	return int64(0), nil
}

func (s *session) convertFloat(n sitter.Node) (any, error) {
	text := strings.ReplaceAll(s.text(n), "_", "")
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f, nil
	}
	return float64(0), nil
}

func (s *session) convertBoolean(n sitter.Node) (any, error) {
	line := nodeLine(n)
	return ast.New(ast.KindConst, 0, line,
		ast.Child{Key: "name", Val: nameNode(s.text(n), line)}), nil
}

func (s *session) convertNull(n sitter.Node) (any, error) {
	line := nodeLine(n)
	return ast.New(ast.KindConst, 0, line,
		ast.Child{Key: "name", Val: nameNode(s.text(n), line)}), nil
}

// convertString handles single-quoted literals, which never interpolate.
func (s *session) convertString(n sitter.Node) (any, error) {
	if n.NamedChildCount() == 0 {
		return rawStringBody(s.text(n)), nil
	}
	var b strings.Builder
	for _, c := range namedChildren(n) {
		switch c.Type() {
		case "string_content":
			b.WriteString(s.text(c))
		case "escape_sequence":
			b.WriteString(decodeEscape(s.text(c)))
		}
	}
	return b.String(), nil
}

func (s *session) convertEncapsedString(n sitter.Node) (any, error) {
	return s.encapsParts(n, nodeLine(n))
}

func (s *session) convertHeredoc(n sitter.Node) (any, error) {
	return s.encapsParts(n, nodeLine(n))
}

// encapsParts folds a double-quoted, heredoc or backtick body into either a
// plain string (no interpolations) or an encaps list whose children alternate
// between literal runs and interpolated expressions. Adjacent literal pieces
// are merged.
func (s *session) encapsParts(n sitter.Node, line int) (any, error) {
	var parts []any
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, lit.String())
			lit.Reset()
		}
	}

	var walk func(n sitter.Node) error
	walk = func(n sitter.Node) error {
		for _, c := range namedChildren(n) {
			switch c.Type() {
			case "string_content":
				lit.WriteString(s.text(c))
			case "escape_sequence":
				lit.WriteString(decodeEscape(s.text(c)))
			case "heredoc_body", "nowdoc_body":
				if err := walk(c); err != nil {
					return err
				}
			case "heredoc_start", "heredoc_end", "comment":
			default:
				v, err := s.convert(c)
				if err != nil {
					return err
				}
				if v == nil {
					continue
				}
				flush()
				parts = append(parts, v)
			}
		}
		return nil
	}
	if err := walk(n); err != nil {
		return nil, err
	}
	flush()

	interpolated := false
	for _, p := range parts {
		if _, ok := p.(string); !ok {
			interpolated = true
			break
		}
	}
	if !interpolated {
		var b strings.Builder
		for _, p := range parts {
			b.WriteString(p.(string))
		}
		return b.String(), nil
	}
	return ast.NewList(ast.KindEncapsList, line, parts...), nil
}

// rawStringBody strips the delimiters of an uninterpolated literal: the
// optional binary prefix and the surrounding quotes.
func rawStringBody(text string) string {
	if len(text) > 0 && (text[0] == 'b' || text[0] == 'B') {
		text = text[1:]
	}
	if len(text) >= 2 {
		switch text[0] {
		case '\'', '"', '`':
			text = text[1 : len(text)-1]
		}
	}
	return text
}

// decodeEscape expands one escape sequence the way the runtime's scanner
// does. Unknown sequences keep their backslash.
func decodeEscape(seq string) string {
	if len(seq) < 2 || seq[0] != '\\' {
		return seq
	}
	switch seq[1] {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case 'v':
		return "\v"
	case 'f':
		return "\f"
	case 'e':
		return "\x1b"
	case '\\', '\'', '"', '$', '`':
		return seq[1:2]
	case 'x', 'X':
		if v, err := strconv.ParseUint(seq[2:], 16, 8); err == nil {
			return string([]byte{byte(v)})
		}
	case 'u':
		inner := strings.TrimSuffix(strings.TrimPrefix(seq[2:], "{"), "}")
		if v, err := strconv.ParseUint(inner, 16, 32); err == nil {
			return string(rune(v))
		}
	case '0', '1', '2', '3', '4', '5', '6', '7':
		if v, err := strconv.ParseUint(seq[1:], 8, 16); err == nil {
			return string([]byte{byte(v)})
		}
	}
	return seq
}
