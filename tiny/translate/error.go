package translate

import "fmt"

// ErrorKind distinguishes malformed tokens from grammar and identifier
// binding violations.
type ErrorKind int

const (
	KindLexical ErrorKind = iota
	KindSyntax
)

func (k ErrorKind) String() string {
	switch k {
	case KindLexical:
		return "Lexical Error"
	case KindSyntax:
		return "Syntax Error"
	default:
		return "Error"
	}
}

// Error is a translation failure. The first one raised anywhere during a run
// aborts the whole run.
type Error struct {
	Kind    ErrorKind
	message string
}

func (err *Error) Error() string {
	return fmt.Sprintf("%v: %v", err.Kind, err.message)
}

// Message returns the description without the kind prefix.
func (err *Error) Message() string {
	return err.message
}
