// internal/sshconfig/parser.go

package sshconfig

import "strings"

// ManagedFileHeader is the sentinel comment that marks the local ssh
// config as machine-managed. It is elided on parse (wherever it appears
// between blocks) and written as the first line of a rendered document.
// Compared verbatim, including the "#".
const ManagedFileHeader = "# This file is managed by ssh_manager"

// Parser consumes the token stream with two-token lookahead and produces
// host entries in source order. Single pass, no backtracking.
type Parser struct {
	lexer   *Lexer
	current *Token
	next    *Token
}

// NewParser creates a parser over the given lexer and primes the
// lookahead window.
func NewParser(lexer *Lexer) (*Parser, error) {
	p := &Parser{lexer: lexer}
	if err := p.shift(); err != nil {
		return nil, err
	}
	if err := p.shift(); err != nil {
		return nil, err
	}
	return p, nil
}

// shift moves the lookahead window one token forward. A nil token means
// the input is exhausted.
func (p *Parser) shift() error {
	p.current = p.next
	tok, ok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	if !ok {
		p.next = nil
		return nil
	}
	p.next = &tok
	return nil
}

// parseHostHeader consumes "Host <name>" and returns the name.
func (p *Parser) parseHostHeader() (string, error) {
	if p.current == nil {
		return "", &UnexpectedEOFError{Context: "'Host'"}
	}
	if p.current.Kind != TokenHostKeyword {
		return "", &UnexpectedTokenError{
			Expected: TokenHostKeyword,
			Actual:   p.current.Kind,
			Line:     p.current.Line,
			Column:   p.current.Column,
		}
	}
	if err := p.shift(); err != nil {
		return "", err
	}
	if p.current == nil {
		return "", &UnexpectedEOFError{Context: "host name"}
	}
	if p.current.Kind != TokenItem {
		return "", &UnexpectedTokenError{
			Expected: TokenItem,
			Actual:   p.current.Kind,
			Line:     p.current.Line,
			Column:   p.current.Column,
		}
	}
	name := p.current.Text
	if err := p.shift(); err != nil {
		return "", err
	}
	return name, nil
}

// parseDirective consumes two consecutive items: a key and its value.
func (p *Parser) parseDirective() (key, value string, err error) {
	if p.current == nil {
		return "", "", &UnexpectedEOFError{Context: "directive key"}
	}
	if p.next == nil {
		return "", "", &UnexpectedEOFError{Context: "directive value"}
	}
	if p.current.Kind != TokenItem {
		return "", "", &UnexpectedTokenError{
			Expected: TokenItem,
			Actual:   p.current.Kind,
			Line:     p.current.Line,
			Column:   p.current.Column,
		}
	}
	if p.next.Kind != TokenItem {
		return "", "", &UnexpectedTokenError{
			Expected: TokenItem,
			Actual:   p.next.Kind,
			Line:     p.next.Line,
			Column:   p.next.Column,
		}
	}
	key, value = p.current.Text, p.next.Text
	if err := p.shift(); err != nil {
		return "", "", err
	}
	if err := p.shift(); err != nil {
		return "", "", err
	}
	return key, value, nil
}

// stripComment drops the leading "#" of a comment token's text.
func stripComment(text string) string {
	return strings.TrimSpace(strings.TrimPrefix(text, "#"))
}

// joinComments strips and space-joins a run of raw comment tokens.
func joinComments(raw []string) string {
	var joined string
	for _, text := range raw {
		joined = appendComment(joined, stripComment(text))
	}
	return joined
}

// parseHostBlock parses one host block. leading is a comment carried over
// from the previous block's trailing comment run. The returned leftover is
// the raw comment run that directly precedes the next Host keyword; it
// belongs to the next block, not to this one.
func (p *Parser) parseHostBlock(leading string) (*HostEntry, []string, error) {
	hostComment := leading
	for {
		if p.current == nil {
			return nil, nil, &UnexpectedEOFError{Context: "host block"}
		}
		if p.current.Kind != TokenComment {
			break
		}
		// The managed-file sentinel never starts or describes a block.
		if p.current.Text != ManagedFileHeader {
			hostComment = appendComment(hostComment, stripComment(p.current.Text))
		}
		if err := p.shift(); err != nil {
			return nil, nil, err
		}
	}

	name, err := p.parseHostHeader()
	if err != nil {
		return nil, nil, err
	}
	entry := NewHostEntry(name, hostComment)

	var pending []string
	for {
		if p.current == nil {
			// Trailing comments at end of input have no owner.
			return entry, nil, nil
		}
		if p.current.Kind == TokenComment {
			pending = append(pending, p.current.Text)
			if err := p.shift(); err != nil {
				return nil, nil, err
			}
			continue
		}
		if p.current.Kind == TokenHostKeyword {
			return entry, pending, nil
		}
		key, value, err := p.parseDirective()
		if err != nil {
			return nil, nil, err
		}
		if err := entry.ApplyDirective(key, value, joinComments(pending)); err != nil {
			return nil, nil, err
		}
		pending = nil
	}
}

// Parse reads the whole config text into host entries, in source order.
// The managed-file sentinel comment is silently dropped wherever it
// appears at the top level. The parse is atomic: any error returns no
// entries at all.
func Parse(text string) ([]*HostEntry, error) {
	parser, err := NewParser(NewLexer(text))
	if err != nil {
		return nil, err
	}

	var entries []*HostEntry
	var leading string
	for {
		if parser.current == nil {
			break
		}
		if parser.current.Kind == TokenComment && parser.current.Text == ManagedFileHeader {
			if err := parser.shift(); err != nil {
				return nil, err
			}
			continue
		}
		entry, leftover, err := parser.parseHostBlock(leading)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)

		// A comment run between this block and the next one describes the
		// next block, minus any sentinel lines.
		var kept []string
		for _, text := range leftover {
			if text != ManagedFileHeader {
				kept = append(kept, text)
			}
		}
		leading = joinComments(kept)
	}
	return entries, nil
}
