// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// parse.go - compact tree notation reader.
//
// Grammar (whitespace between tokens is ignored):
//
//	tree  := "_" | value [ "(" tree "," tree ")" ]
//	value := a run of bytes up to "(", ")", "," or ASCII space, not starting with "_"
//
// "_" is an absent tree. A node written without parentheses is a leaf.
// core.Node.String emits exactly this notation, so Parse(root.String())
// rebuilds an equal tree when parseValue inverts fmt.Sprint.

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtree/core"
)

// Parse reads compact notation such as "1(2(4,5),3(_,6))" and returns the
// tree it describes, converting each value token with parseValue.
//
// Errors: ErrSyntax wrapped with the byte offset; a parseValue failure is
// wrapped alongside ErrSyntax so both remain visible to errors.Is.
func Parse[T any](s string, parseValue func(string) (T, error)) (*core.Node[T], error) {
	if parseValue == nil {
		return nil, fmt.Errorf("%s: nil value parser: %w", methodParse, ErrConstructFailed)
	}
	p := &parser[T]{src: s, parseValue: parseValue}
	root, err := p.tree()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected trailing input %q", p.src[p.pos:])
	}

	return root, nil
}

// ParseInts is Parse with strconv.Atoi as the value parser.
func ParseInts(s string) (*core.Node[int], error) {
	return Parse(s, strconv.Atoi)
}

// parser is a recursive-descent reader over src.
type parser[T any] struct {
	src        string
	pos        int
	parseValue func(string) (T, error)
}

// tree parses one tree production.
func (p *parser[T]) tree() (*core.Node[T], error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, p.errorf("unexpected end of input")
	}
	if p.src[p.pos] == '_' {
		p.pos++
		return nil, nil
	}

	start := p.pos
	for p.pos < len(p.src) && !isDelimiter(p.src[p.pos]) {
		p.pos++
	}
	tok := p.src[start:p.pos]
	if tok == "" {
		return nil, p.errorf("expected value, got %q", p.src[p.pos])
	}
	v, err := p.parseValue(tok)
	if err != nil {
		return nil, fmt.Errorf("%s: offset %d: bad value %q: %w: %w", methodParse, start, tok, ErrSyntax, err)
	}
	node := core.NewLeaf(v)

	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '(' {
		return node, nil
	}
	p.pos++
	if node.Left, err = p.tree(); err != nil {
		return nil, err
	}
	if err = p.expect(','); err != nil {
		return nil, err
	}
	if node.Right, err = p.tree(); err != nil {
		return nil, err
	}
	if err = p.expect(')'); err != nil {
		return nil, err
	}

	return node, nil
}

// expect consumes c after optional whitespace.
func (p *parser[T]) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return p.errorf("expected %q, got end of input", c)
	}
	if p.src[p.pos] != c {
		return p.errorf("expected %q, got %q", c, p.src[p.pos])
	}
	p.pos++

	return nil
}

func (p *parser[T]) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

// errorf builds an ErrSyntax error annotated with the current offset.
func (p *parser[T]) errorf(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: offset %d: %s: %w", methodParse, p.pos, msg, ErrSyntax)
}

// isDelimiter reports whether c ends a value token.
func isDelimiter(c byte) bool {
	return strings.IndexByte("(),", c) >= 0 || isSpace(c)
}

// isSpace matches ASCII whitespace only, so multi-byte values stay intact.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
