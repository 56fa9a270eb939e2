package token

import "errors"

// ErrExhausted is returned by Advance when no tokens remain.
var ErrExhausted = errors.New("token: no more tokens")

// Source is the cursor the parser reads from. Current is only meaningful
// while HasMoreTokens reports true.
type Source interface {
	HasMoreTokens() bool
	Current() Token
	Advance() error
	// Peek returns the token offset positions past the current one without
	// consuming anything. offset must be at least 1.
	Peek(offset int) (Token, bool)
}

// Stream is a Source over a fixed slice of tokens.
type Stream struct {
	tokens []Token
	pos    int
}

// NewStream creates a stream positioned at the first token.
func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

func (s *Stream) HasMoreTokens() bool {
	return s.pos < len(s.tokens)
}

func (s *Stream) Current() Token {
	if s.pos >= len(s.tokens) {
		return Token{}
	}
	return s.tokens[s.pos]
}

func (s *Stream) Advance() error {
	if s.pos >= len(s.tokens) {
		return ErrExhausted
	}
	s.pos++
	return nil
}

func (s *Stream) Peek(offset int) (Token, bool) {
	if offset < 1 {
		return Token{}, false
	}
	i := s.pos + offset
	if i >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[i], true
}
