package fortparse

// Tok returns a parser matching the fixed token spelling. Matching skips
// leading blanks, ignores case and consumes trailing blanks. A space in the
// spelling marks a medial position where zero or more blanks are accepted,
// so Tok("end if") matches both "ENDIF" and "End  If".
// On mismatch an expected text message is posted and the cursor is rewound.
func Tok(spelling string) Parser[Success] {
	return TokN(spelling, len(spelling))
}

// TokN is like [Tok] but matches only the first n bytes of spelling.
func TokN(spelling string, n int) Parser[Success] {
	if n > len(spelling) {
		n = len(spelling)
	}
	return func(s *State) (Success, bool) {
		start := s.Snapshot()
		if !matchToken(s, spelling, n) {
			s.Restore(start)
			return Success{}, false
		}
		return Success{}, true
	}
}

func matchToken(s *State, spelling string, n int) bool {
	at := s.Pos()
	Spaces(s)
	var ch byte
	full := false // ch holds a character read but not yet matched.
	for j := 0; j < n; j++ {
		medial := spelling[j] == ' '
		if medial && (j+1 == n || spelling[j+1] == ' ') {
			continue // Redundant space.
		}
		if !full {
			var ok bool
			if ch, ok = s.NextChar(); !ok {
				return false
			}
			full = true
		}
		if medial {
			for isBlank(ch) {
				var ok bool
				if ch, ok = s.NextChar(); !ok {
					return false
				}
			}
			// ch stays full for the next spelling character.
		} else if ToLower(ch) == ToLower(spelling[j]) {
			full = false
		} else {
			s.SayExpected(at, spelling[:n])
			return false
		}
	}
	Spaces(s)
	return true
}

// Lead matches the token lit and then p, yielding p's result.
func Lead[T any](lit string, p Parser[T]) Parser[T] {
	return Then(Tok(lit), p)
}

// Trail matches p and then the token lit, yielding p's result.
func Trail[T any](p Parser[T], lit string) Parser[T] {
	return Skip(p, Tok(lit))
}

// Parenthesized recognizes "(" p ")".
func Parenthesized[T any](p Parser[T]) Parser[T] {
	return Lead("(", Trail(p, ")"))
}

// Bracketed recognizes "[" p "]".
func Bracketed[T any](p Parser[T]) Parser[T] {
	return Lead("[", Trail(p, "]"))
}

// OptionalBeforeColons recognizes the common declaration idiom
//
//	[[, p] ::]
//
// When p is present it must follow a comma and precede a double colon.
// When p is absent the comma must not appear and the double colon is
// optional; the zero T is produced. Use it with [NonemptyList] for the
// "[[, p]... ::]" form.
func OptionalBeforeColons[T any](p Parser[T]) Parser[T] {
	return Or(
		Lead(",", Trail(p, "::")),
		Lead("::", Default[T]()),
		Then(Not(Tok(",")), Default[T]()),
	)
}
