// internal/sshconfig/token.go

package sshconfig

// TokenKind classifies a lexeme of the ssh config text.
type TokenKind int

const (
	// TokenComment is a "#" comment running to end of line.
	TokenComment TokenKind = iota
	// TokenHostKeyword is the literal word "Host" standing on its own.
	TokenHostKeyword
	// TokenItem is any other run of non-whitespace: directive keys,
	// directive values and host names all lex as items.
	TokenItem
	// TokenWhitespace is consumed by the lexer and never yielded.
	TokenWhitespace
)

func (k TokenKind) String() string {
	switch k {
	case TokenComment:
		return "Comment"
	case TokenHostKeyword:
		return "HostKeyword"
	case TokenItem:
		return "Item"
	case TokenWhitespace:
		return "Whitespace"
	default:
		return "Unknown"
	}
}

// Token is a single classified lexeme with its source position.
type Token struct {
	Kind   TokenKind
	Text   string
	Line   int
	Column int
}

// Lexer scans ssh config text into tokens. It is single-pass and
// non-restartable: Next consumes input and cannot be rewound.
type Lexer struct {
	input  string
	pos    int
	line   int
	column int
}

// NewLexer creates a lexer over the given config text.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// Next returns the next non-whitespace token. The second return value is
// false once the input is exhausted. A position where no lexical class
// matches yields a LexError.
func (l *Lexer) Next() (Token, bool, error) {
	for {
		if l.pos >= len(l.input) {
			return Token{}, false, nil
		}

		kind, text := l.match()
		if text == "" {
			return Token{}, false, &LexError{Offset: l.pos, Line: l.line, Column: l.column}
		}

		tok := Token{Kind: kind, Text: text, Line: l.line, Column: l.column}
		l.advance(text)

		if kind == TokenWhitespace {
			continue
		}
		return tok, true, nil
	}
}

// match tries the lexical classes in fixed priority order at the current
// position and returns the matched text (empty when nothing matches).
func (l *Lexer) match() (TokenKind, string) {
	rest := l.input[l.pos:]

	// Comment: "#" up to (not including) the newline.
	if rest[0] == '#' {
		end := 0
		for end < len(rest) && rest[end] != '\n' {
			end++
		}
		return TokenComment, rest[:end]
	}

	// The Host keyword, only as a whole word.
	const hostWord = "Host"
	if len(rest) >= len(hostWord) && rest[:len(hostWord)] == hostWord {
		if len(rest) == len(hostWord) || isSpace(rest[len(hostWord)]) {
			return TokenHostKeyword, hostWord
		}
	}

	// Item: a run of non-whitespace.
	if !isSpace(rest[0]) {
		end := 0
		for end < len(rest) && !isSpace(rest[end]) {
			end++
		}
		return TokenItem, rest[:end]
	}

	// Whitespace: a run of whitespace, discarded by Next.
	end := 0
	for end < len(rest) && isSpace(rest[end]) {
		end++
	}
	return TokenWhitespace, rest[:end]
}

// advance moves the position past text, counting newlines for the
// line/column diagnostics.
func (l *Lexer) advance(text string) {
	l.pos += len(text)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
}
