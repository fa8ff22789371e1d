package fortparse

// Parser recognizes a T at the state's cursor. It returns false on failure,
// which is always backtrackable and carries no payload.
type Parser[T any] func(s *State) (T, bool)

// Parse runs the parser on s.
func (p Parser[T]) Parse(s *State) (T, bool) { return p(s) }

// Success is the result of parsers that only recognize.
type Success struct{}

// Pair is the result of [Seq].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Optional is the result of [Maybe].
type Optional[T any] struct {
	Value T
	Valid bool
}

// Seq runs a then b and yields both results. Input consumed by a
// is not given back if b fails.
func Seq[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(s *State) (Pair[A, B], bool) {
		ra, ok := a(s)
		if !ok {
			return Pair[A, B]{}, false
		}
		rb, ok := b(s)
		if !ok {
			return Pair[A, B]{}, false
		}
		return Pair[A, B]{First: ra, Second: rb}, true
	}
}

// Then runs a then b and yields b's result.
func Then[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return func(s *State) (B, bool) {
		if _, ok := a(s); !ok {
			var zero B
			return zero, false
		}
		return b(s)
	}
}

// Skip runs a then b and yields a's result.
func Skip[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return func(s *State) (A, bool) {
		ra, ok := a(s)
		if !ok {
			return ra, false
		}
		if _, ok = b(s); !ok {
			var zero A
			return zero, false
		}
		return ra, true
	}
}

// Or is ordered choice: each alternative is tried from the original
// position and the first one to succeed wins. Messages posted by failed
// alternatives are kept.
func Or[T any](alts ...Parser[T]) Parser[T] {
	return func(s *State) (T, bool) {
		start := s.Snapshot()
		for _, alt := range alts {
			if v, ok := alt(s); ok {
				return v, true
			}
			s.Restore(start)
		}
		var zero T
		return zero, false
	}
}

// Attempt runs p and rewinds the cursor if p fails.
func Attempt[T any](p Parser[T]) Parser[T] {
	return func(s *State) (T, bool) {
		start := s.Snapshot()
		v, ok := p(s)
		if !ok {
			s.Restore(start)
		}
		return v, ok
	}
}

// Many runs p as many times as it succeeds and never fails. A failed
// iteration is rewound. Repetition stops when p succeeds without consuming input.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(s *State) ([]T, bool) {
		var results []T
		for {
			start := s.Snapshot()
			v, ok := p(s)
			if !ok {
				s.Restore(start)
				return results, true
			}
			results = append(results, v)
			if s.Pos() <= start {
				return results, true
			}
		}
	}
}

// Some is like [Many] but requires at least one success.
func Some[T any](p Parser[T]) Parser[[]T] {
	many := Many(p)
	return func(s *State) ([]T, bool) {
		first, ok := p(s)
		if !ok {
			return nil, false
		}
		rest, _ := many(s)
		return append([]T{first}, rest...), true
	}
}

// SkipMany is [Many] discarding results.
func SkipMany[T any](p Parser[T]) Parser[Success] {
	return func(s *State) (Success, bool) {
		for {
			start := s.Snapshot()
			if _, ok := p(s); !ok {
				s.Restore(start)
				return Success{}, true
			}
			if s.Pos() <= start {
				return Success{}, true
			}
		}
	}
}

// Pure always succeeds with v and consumes nothing.
func Pure[T any](v T) Parser[T] {
	return func(*State) (T, bool) { return v, true }
}

// Default always succeeds with T's zero value. It closes alternative
// chains with an absent case.
func Default[T any]() Parser[T] {
	var zero T
	return Pure(zero)
}

// Map transforms the result of p with f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(s *State) (B, bool) {
		v, ok := p(s)
		if !ok {
			var zero B
			return zero, false
		}
		return f(v), true
	}
}

// Not succeeds without consuming input if and only if p fails.
func Not[T any](p Parser[T]) Parser[Success] {
	return func(s *State) (Success, bool) {
		start := s.Snapshot()
		_, ok := p(s)
		s.Restore(start)
		return Success{}, !ok
	}
}

// Maybe runs p and never fails. The cursor is rewound if p fails.
func Maybe[T any](p Parser[T]) Parser[Optional[T]] {
	return func(s *State) (Optional[T], bool) {
		start := s.Snapshot()
		v, ok := p(s)
		if !ok {
			s.Restore(start)
			return Optional[T]{}, true
		}
		return Optional[T]{Value: v, Valid: true}, true
	}
}

// NonemptySeparated recognizes one or more p separated by the sep token.
func NonemptySeparated[T any](p Parser[T], sep string) Parser[[]T] {
	rest := Many(Lead(sep, p))
	return func(s *State) ([]T, bool) {
		first, ok := p(s)
		if !ok {
			return nil, false
		}
		more, _ := rest(s)
		return append([]T{first}, more...), true
	}
}

// NonemptyList recognizes a comma separated list of one or more p.
func NonemptyList[T any](p Parser[T]) Parser[[]T] {
	return NonemptySeparated(p, ",")
}

// ConsumedAllInput succeeds only at the end of the stream.
var ConsumedAllInput Parser[Success] = func(s *State) (Success, bool) {
	return Success{}, s.AtEnd()
}

// SkipPast consumes characters up to and including goal.
// It fails if goal is not found before the end of the stream.
func SkipPast(goal byte) Parser[Success] {
	return func(s *State) (Success, bool) {
		for {
			ch, ok := s.NextChar()
			if !ok {
				return Success{}, false
			} else if ch == goal {
				return Success{}, true
			}
		}
	}
}
