// Package fortparse implements the token recognition layer of a Fortran
// front end as backtracking parser combinators over a prescanned character stream.
//
// A [Parser] is a function over a [State] that either yields a result and
// true, or fails by returning false. Failure carries no payload and only
// drives backtracking; diagnostics are posted to the state's message sink
// independently and are never rolled back by backtracking.
package fortparse

import (
	"github.com/soypat/fortparse/message"
	"github.com/soypat/fortparse/provenance"
)

// Options hold the session configuration of a parse. They are read only
// for the duration of a parse.
type Options struct {
	// StrictConformance disables nonstandard extensions such as the X
	// hexadecimal marker and suffixed BOZ literals.
	StrictConformance bool
	// BackslashEscapes enables C-like escapes in character literals.
	BackslashEscapes bool
}

// State is a cursor over a cooked character stream. A State serves a single
// single-threaded parse and must not be shared between goroutines.
type State struct {
	input []byte
	pos   int
	msgs  *message.Messages
	prov  *provenance.Map
	opts  Options
}

// NewState returns a state positioned at the start of input. A nil msgs
// allocates a new sink; a nil prov locates messages by offset only.
func NewState(input []byte, opts Options, msgs *message.Messages, prov *provenance.Map) *State {
	if msgs == nil {
		msgs = new(message.Messages)
	}
	return &State{
		input: input,
		msgs:  msgs,
		prov:  prov,
		opts:  opts,
	}
}

// Pos returns the cursor offset into the stream.
func (s *State) Pos() int { return s.pos }

// AtEnd reports whether all input was consumed.
func (s *State) AtEnd() bool { return s.pos >= len(s.input) }

// Remaining returns the unconsumed input. The returned slice must not be modified.
func (s *State) Remaining() []byte { return s.input[s.pos:] }

// Consumed returns the input consumed since offset from, a position
// previously returned by [State.Pos]. The returned slice must not be modified.
func (s *State) Consumed(from int) []byte { return s.input[from:s.pos] }

// NextChar consumes and returns the next character.
func (s *State) NextChar() (byte, bool) {
	if s.pos >= len(s.input) {
		return 0, false
	}
	ch := s.input[s.pos]
	s.pos++
	return ch, true
}

// Peek returns the next character without consuming it.
func (s *State) Peek() (byte, bool) {
	if s.pos >= len(s.input) {
		return 0, false
	}
	return s.input[s.pos], true
}

// Snapshot returns the cursor position for a later [State.Restore].
func (s *State) Snapshot() int { return s.pos }

// Restore moves the cursor back to a position returned by [State.Snapshot].
// Posted messages are kept.
func (s *State) Restore(snapshot int) {
	if snapshot < 0 || snapshot > len(s.input) {
		panic("fortparse: restore to invalid position")
	}
	s.pos = snapshot
}

// StrictConformance reports whether nonstandard extensions are disabled.
func (s *State) StrictConformance() bool { return s.opts.StrictConformance }

// BackslashEscapes reports whether backslash escapes are enabled in character literals.
func (s *State) BackslashEscapes() bool { return s.opts.BackslashEscapes }

// Options returns the session configuration.
func (s *State) Options() Options { return s.opts }

// Messages returns the diagnostic sink.
func (s *State) Messages() *message.Messages { return s.msgs }

// Location resolves a stream offset to its original source location.
func (s *State) Location(offset int) provenance.Location {
	return s.prov.Locate(offset)
}

// Say posts a message with template id at stream offset at.
func (s *State) Say(at int, id message.ID) {
	s.msgs.Put(message.Message{ID: id, Offset: at, At: s.prov.Locate(at)})
}

// SayExpected posts an [message.ExpectedText] message naming text.
func (s *State) SayExpected(at int, text string) {
	s.msgs.Put(message.Message{
		ID:       message.ExpectedText,
		Expected: text,
		Offset:   at,
		At:       s.prov.Locate(at),
	})
}
