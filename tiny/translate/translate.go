// Package translate implements a one-pass, syntax-directed translator from
// the TINY teaching language to C++. There is no syntax tree: each grammar
// production emits its target fragment as it is recognized.
package translate

import (
	"bytes"
	"fmt"

	"github.com/tinylang/tinyc/tiny/scanner"
	"github.com/tinylang/tinyc/tiny/token"
)

// Translate translates a whole TINY program and returns the generated C++
// source. On failure it returns an *Error and no output; nothing is emitted
// from a failed run.
func Translate(src []byte) (out string, err error) {
	t := &translator{
		scanner: scanner.New(src),
		symbols: NewSymbolTable(),
		out:     &bytes.Buffer{},
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				out, err = "", e
			} else {
				panic(r)
			}
		}
	}()
	t.program()
	return t.out.String(), nil
}

type translator struct {
	scanner *scanner.Scanner
	symbols *SymbolTable
	out     *bytes.Buffer
	nesting int
}

const maxNesting = 1000

func (t *translator) enter() {
	t.nesting++
	if t.nesting > maxNesting {
		panic(t.errorf("maximum nesting depth exceeded"))
	}
}

func (t *translator) exit() {
	t.nesting--
}

func (t *translator) errorf(message string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindSyntax,
		message: fmt.Sprintf(message, args...),
	}
}

// advance moves the scanner to the next token, skipping newlines. Scanner
// failures become lexical errors and abort the run.
func (t *translator) advance() {
	t.scan(0)
}

// advanceLine is like advance, but stops at a '\n' and produces it as a
// NEWLINE token.
func (t *translator) advanceLine() {
	t.scan(scanner.NewlineSensitive)
}

func (t *translator) scan(mode scanner.Mode) {
	if err := t.scanner.Scan(mode); err != nil {
		panic(&Error{
			Kind:    KindLexical,
			message: err.Error(),
		})
	}
}

func (t *translator) emit(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format, args...)
}

func (t *translator) write(s string) {
	t.out.WriteString(s)
}

var arithmeticOps = map[token.Token]string{
	token.PLUS:  "+",
	token.MINUS: "-",
	token.MUL:   "*",
	token.DIV:   "/",
	token.MOD:   "%",
}

var comparisonOps = map[token.Token]string{
	token.GREATER:       ">",
	token.LESS:          "<",
	token.EQUAL:         "==",
	token.GREATER_EQUAL: ">=",
	token.LESS_EQUAL:    "<=",
}

// program := BEGIN newline statements newline END
func (t *translator) program() {
	t.write("#include <iostream>\n\nusing namespace std;\n\n")

	t.advance()
	if t.scanner.Token() != token.BEGIN {
		panic(t.errorf("cannot find the beginning of the program"))
	}

	t.write("int main(int argc, char *argv[])\n{\n")

	t.newline("BEGIN")
	t.advance()

	// A program may have an empty body, in which case END follows directly.
	// lastText covers the case where END is the very last bytes of the input:
	// the statement loop's lookahead can leave the scanner reporting EOF even
	// though the lexeme it consumed was END.
	var lastText string
	if t.scanner.Token() != token.END {
		t.statements("\t")
		lastText = t.scanner.Text()
		t.advance()
	}

	if tok := t.scanner.Token(); tok != token.END && !(tok == token.EOF && lastText == "END") {
		panic(t.errorf("cannot find the end of the program"))
	}
	t.advance()

	t.write("\treturn 0;\n}\n")

	if t.scanner.Token() != token.EOF {
		panic(t.errorf("unexpected tokens after END"))
	}
}

// newline requires a line break after the construct named by name.
func (t *translator) newline(name string) {
	t.advanceLine()
	if t.scanner.Token() != token.NEWLINE {
		panic(t.errorf("%v must be followed by a newline", name))
	}
}

// statements := statement*
//
// The loop ends on the first token that begins no statement; that token is
// unread so the enclosing production sees it again.
func (t *translator) statements(prefix string) {
	t.enter()

	for {
		switch t.scanner.Token() {
		case token.PRINT:
			t.printStatement(prefix)
			t.newline("print_statement")
		case token.INPUT:
			t.inputStatement(prefix)
			t.newline("input_statement")
		case token.LET:
			t.letStatement(prefix)
			t.newline("let_statement")
		case token.IF:
			t.ifStatement(prefix)
			t.newline("if_statement")
		case token.WHILE:
			t.whileStatement(prefix)
			t.newline("while_statement")
		default:
			t.scanner.Unread()
			t.exit()
			return
		}
		t.advance() // move past the newline
	}
}

// print_stmt := PRINT (string-literal | identifier)
func (t *translator) printStatement(prefix string) {
	t.advance() // move past PRINT

	t.emit("%vcout << ", prefix)

	switch t.scanner.Token() {
	case token.STRING:
		t.emit("\"%v\";\n", t.scanner.Text())
	case token.IDENT:
		if !t.symbols.Declared(t.scanner.Text()) {
			panic(t.errorf("attempt to print an undeclared identifier"))
		}
		t.emit("%v;\n", t.scanner.Text())
	default:
		panic(t.errorf("unexpected tokens after PRINT"))
	}
}

// input_stmt := INPUT identifier
//
// The identifier is declared by this statement if it isn't already.
func (t *translator) inputStatement(prefix string) {
	t.advance() // move past INPUT

	if t.scanner.Token() != token.IDENT {
		panic(t.errorf("unexpected tokens after INPUT"))
	}
	if t.symbols.Declare(t.scanner.Text()) {
		t.emit("%vint %v;\n", prefix, t.scanner.Text())
	}
	t.emit("%vcin >> %v;\n", prefix, t.scanner.Text())
}

// let_stmt := LET assignment
//
// The assignment target is declared by this statement if it isn't already.
func (t *translator) letStatement(prefix string) {
	t.write(prefix)

	t.advance() // move past LET

	if t.scanner.Token() == token.IDENT && t.symbols.Declare(t.scanner.Text()) {
		t.write("int ")
	}

	t.assignment("")
}

// assignment := identifier '=' expression
func (t *translator) assignment(prefix string) {
	if t.scanner.Token() != token.IDENT {
		panic(t.errorf("target of assignment must be an identifier"))
	} else if !t.symbols.Declared(t.scanner.Text()) {
		panic(t.errorf("attempt to assign to an undeclared identifier"))
	}

	t.emit("%v%v", prefix, t.scanner.Text())

	t.advance()
	if t.scanner.Token() != token.ASSIGN {
		panic(t.errorf("unexpected token in assignment"))
	}

	t.write(" = ")

	t.advance() // move past '='
	t.expression("")
	t.write(";\n")
}

// if_stmt := IF condition newline statements (ELSEIF condition newline
// statements)* (ELSE newline statements)? ENDIF
func (t *translator) ifStatement(prefix string) {
	t.enter()

	t.emit("%vif(", prefix)

	t.advance() // move past IF
	t.condition("")
	t.newline("if_statement's condition")

	t.emit(")\n%v{\n", prefix)

	t.advance() // move past the newline
	t.statements(prefix + "\t")

	t.emit("%v}\n", prefix)

	t.advance()
	for t.scanner.Token() == token.ELSEIF {
		t.emit("%velse if(", prefix)

		t.advance() // move past ELSEIF
		t.condition("")
		t.newline("elseif_statement's condition")

		t.emit(")\n%v{\n", prefix)

		t.advance() // move past the newline
		t.statements(prefix + "\t")

		t.emit("%v}\n", prefix)

		t.advance()
	}

	if t.scanner.Token() == token.ELSE {
		t.newline("ELSE")

		t.emit("%velse\n%v{\n", prefix, prefix)

		t.advance() // move past the newline
		t.statements(prefix + "\t")

		t.emit("%v}\n", prefix)

		t.advance()
	}

	if t.scanner.Token() != token.ENDIF {
		panic(t.errorf("cannot find the end of if_statement"))
	}

	t.exit()
}

// while_stmt := WHILE condition REPEAT newline statements ENDWHILE
//
// REPEAT must appear on the same source line as its WHILE, so the token
// after the condition is read in newline-sensitive mode.
func (t *translator) whileStatement(prefix string) {
	t.enter()

	t.emit("%vwhile(", prefix)

	t.advance() // move past WHILE
	t.condition("")

	t.emit(")\n%v{\n", prefix)

	t.advanceLine()
	if t.scanner.Token() != token.REPEAT {
		panic(t.errorf("a WHILE literal and a REPEAT literal must be on the same line"))
	}
	t.newline("REPEAT")

	t.advance() // move past the newline
	t.statements(prefix + "\t")

	t.emit("%v}\n", prefix)

	t.advance()
	if t.scanner.Token() != token.ENDWHILE {
		panic(t.errorf("cannot find the end of while_statement"))
	}

	t.exit()
}

// condition := expression compare_op expression
func (t *translator) condition(prefix string) {
	t.write(prefix)

	t.expression("")

	t.advance()
	op, ok := comparisonOps[t.scanner.Token()]
	if !ok {
		panic(t.errorf("unexpected tokens in condition"))
	}
	t.emit(" %v ", op)

	t.advance() // move past the comparison
	t.expression("")
}

// expression := exp (('+'|'-'|'*'|'/'|'mod') exp)?
//
// At most one binary operator is allowed; chained expressions are not part
// of the language. If the lookahead is not an operator it is unread for the
// enclosing production.
func (t *translator) expression(prefix string) {
	t.write(prefix)

	t.exp("")

	t.advance() // move past the exp
	if op, ok := arithmeticOps[t.scanner.Token()]; ok {
		t.emit(" %v ", op)
		t.advance() // move past the operator
		t.exp("")
	} else {
		t.scanner.Unread()
	}
}

// exp := identifier | number
func (t *translator) exp(prefix string) {
	t.write(prefix)

	if t.scanner.Token() == token.IDENT {
		if !t.symbols.Declared(t.scanner.Text()) {
			panic(t.errorf("attempt to use an undeclared identifier in exp"))
		}
		t.write(t.scanner.Text())
		return
	}
	t.number("")
}

// number := ('-'|'+')? number-literal
func (t *translator) number(prefix string) {
	t.write(prefix)

	switch t.scanner.Token() {
	case token.MINUS, token.PLUS:
		t.write(t.scanner.Text())
		t.advance()
		if t.scanner.Token() != token.NUMBER {
			panic(t.errorf("unexpected tokens in number"))
		}
		t.write(t.scanner.Text())
	case token.NUMBER:
		t.write(t.scanner.Text())
	default:
		panic(t.errorf("unexpected tokens in number"))
	}
}
