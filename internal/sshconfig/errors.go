// internal/sshconfig/errors.go

package sshconfig

import "fmt"

// LexError reports a position where no lexical class matched.
type LexError struct {
	Offset int
	Line   int
	Column int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character at offset %d (line %d, column %d)", e.Offset, e.Line, e.Column)
}

// UnexpectedTokenError reports a grammar violation: the parser wanted one
// token kind and saw another.
type UnexpectedTokenError struct {
	Expected TokenKind
	Actual   TokenKind
	Line     int
	Column   int
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %s, but got %s at line %d, column %d", e.Expected, e.Actual, e.Line, e.Column)
}

// UnexpectedEOFError reports input that ended in the middle of a
// construct. Context names what the parser was expecting.
type UnexpectedEOFError struct {
	Context string
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("expected %s, but input ended", e.Context)
}

// MissingNameError reports a host entry serialized without a name.
type MissingNameError struct{}

func (e *MissingNameError) Error() string {
	return "host entry has no name"
}

// MissingFieldError reports an entity serialized with a required field
// absent.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s has no %s", e.Entity, e.Field)
}

// IndexOutOfRangeError reports a choice resolution with an alternative
// index outside the descriptor's list.
type IndexOutOfRangeError struct {
	Kind  string // "endpoint" or "auth"
	Index int
	Max   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s index out of range: %d (have %d)", e.Kind, e.Index, e.Max)
}
