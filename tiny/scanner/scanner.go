package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/tinylang/tinyc/tiny/token"
)

type Error struct {
	message string
}

func (err *Error) Error() string {
	return err.message
}

// Mode selects per-call scanning behavior.
type Mode uint

const (
	// NewlineSensitive makes '\n' a significant token instead of skippable
	// whitespace.
	NewlineSensitive Mode = 1 << iota
)

type Scanner struct {
	src    []byte
	offset int

	nextRune     rune
	nextRuneSize int

	token token.Token
	text  string

	// scanStart is the offset at the beginning of the last Scan call, before
	// any whitespace was skipped. Unread rewinds to it.
	scanStart int
}

func New(src []byte) *Scanner {
	s := &Scanner{src: src}
	s.readNextRune()
	return s
}

func (s *Scanner) errorf(message string, args ...interface{}) *Error {
	return &Error{
		message: fmt.Sprintf(message, args...),
	}
}

func (s *Scanner) isDone() bool {
	return len(s.src) == s.offset
}

func (s *Scanner) readNextRune() {
	if s.isDone() {
		s.nextRune = -1
		s.nextRuneSize = 0
	} else if r, size := utf8.DecodeRune(s.src[s.offset:]); r == utf8.RuneError && size != 0 {
		s.nextRune = r
		s.nextRuneSize = 1
	} else {
		s.nextRune = r
		s.nextRuneSize = size
	}
}

func (s *Scanner) consumeRune() rune {
	r := s.nextRune
	s.offset += s.nextRuneSize
	s.readNextRune()
	return r
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Scan advances the scanner to the next token, returning an *Error as soon
// as a malformed token is encountered. In newline-sensitive mode a '\n' is
// produced as a NEWLINE token; otherwise it is skipped like any other
// whitespace. At the end of the input Scan produces EOF indefinitely.
func (s *Scanner) Scan(mode Mode) error {
	s.scanStart = s.offset
	s.text = ""

	sensitive := mode&NewlineSensitive != 0
	for isSpace(s.nextRune) && !(sensitive && s.nextRune == '\n') {
		s.consumeRune()
	}

	if s.isDone() {
		s.token = token.EOF
		return nil
	}

	if s.nextRune == '\n' {
		// Only reachable in newline-sensitive mode.
		s.consumeRune()
		s.token = token.NEWLINE
		return nil
	}

	start := s.offset
	switch r := s.nextRune; {
	case isAlpha(r):
		s.consumeName()
		s.text = string(s.src[start:s.offset])
		s.token = token.Lookup(s.text)
	case isDigit(r) || r == '.':
		if err := s.consumeNumber(); err != nil {
			return err
		}
		s.text = string(s.src[start:s.offset])
		s.token = token.NUMBER
	case r == '"':
		text, err := s.consumeStringValue()
		if err != nil {
			return err
		}
		s.text = text
		s.token = token.STRING
	default:
		tok, err := s.consumeOperator()
		if err != nil {
			return err
		}
		s.text = string(s.src[start:s.offset])
		s.token = tok
	}
	return nil
}

func (s *Scanner) consumeName() {
	for isAlpha(s.nextRune) || isDigit(s.nextRune) {
		s.consumeRune()
	}
}

func (s *Scanner) consumeOperator() (token.Token, error) {
	r := s.consumeRune()
	switch r {
	case '>':
		if s.nextRune == '=' {
			s.consumeRune()
			return token.GREATER_EQUAL, nil
		}
		return token.GREATER, nil
	case '<':
		if s.nextRune == '=' {
			s.consumeRune()
			return token.LESS_EQUAL, nil
		}
		return token.LESS, nil
	case '=':
		if s.nextRune == '=' {
			s.consumeRune()
			return token.EQUAL, nil
		}
		return token.ASSIGN, nil
	case '+':
		return token.PLUS, nil
	case '-':
		return token.MINUS, nil
	case '*':
		return token.MUL, nil
	case '/':
		return token.DIV, nil
	}
	return token.INVALID, s.errorf("unexpected character %q", r)
}

// Token returns the token produced by the most recent call to Scan.
func (s *Scanner) Token() token.Token {
	return s.token
}

// Text returns the text of the current token: the content between the quotes
// for string literals, the exact lexeme for everything else.
func (s *Scanner) Text() string {
	return s.text
}

// Unread restores the source position to just before the most recent call to
// Scan, skipped whitespace included, so the token can be scanned again,
// possibly in a different newline mode. The current token and text are left
// as they are. Only the most recent Scan can be undone.
func (s *Scanner) Unread() {
	s.offset = s.scanStart
	s.readNextRune()
}
