package scanner

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// consumeNumber consumes a numeric literal: an integer part, an optional
// fraction, and an optional exponent. The literal may instead begin with the
// decimal point. The spelling is kept verbatim; parsing the value is left to
// the target language's own literal syntax.
func (s *Scanner) consumeNumber() error {
	if s.nextRune == '.' {
		s.consumeRune()
		if !isDigit(s.nextRune) {
			return s.errorf("no digits after decimal point")
		}
		s.consumeDigits()
	} else {
		s.consumeDigits()
		if s.nextRune == '.' {
			s.consumeRune()
			if !isDigit(s.nextRune) {
				return s.errorf("no digits after decimal point")
			}
			s.consumeDigits()
		}
	}

	if s.nextRune == 'E' || s.nextRune == 'e' {
		s.consumeRune()
		if s.nextRune == '+' || s.nextRune == '-' {
			s.consumeRune()
		}
		if !isDigit(s.nextRune) {
			return s.errorf("no digits in exponent part")
		}
		s.consumeDigits()
	}
	return nil
}

func (s *Scanner) consumeDigits() {
	for isDigit(s.nextRune) {
		s.consumeRune()
	}
}
