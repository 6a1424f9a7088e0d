package scanner

// isStringCharacter reports whether r may appear inside a string literal:
// letters, digits, punctuation, or the space character.
func isStringCharacter(r rune) bool {
	return r >= ' ' && r <= '~'
}

// consumeStringValue consumes a string literal and returns the text between
// the quotes. There are no escape sequences; every character up to the
// closing quote is kept verbatim. Reaching the end of the input before the
// closing quote is a lexical error rather than undefined behavior.
func (s *Scanner) consumeStringValue() (string, error) {
	s.consumeRune() // '"'

	start := s.offset
	for {
		if s.isDone() {
			return "", s.errorf("unterminated string %q", s.src[start:s.offset])
		}
		switch {
		case s.nextRune == '"':
			value := string(s.src[start:s.offset])
			s.consumeRune()
			return value, nil
		case !isStringCharacter(s.nextRune):
			return "", s.errorf("unexpected character in string %q", s.src[start:s.offset])
		default:
			s.consumeRune()
		}
	}
}
