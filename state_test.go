package fortparse

import (
	"testing"

	"github.com/soypat/fortparse/message"
	"github.com/soypat/fortparse/provenance"
)

func TestState_cursor(t *testing.T) {
	s := newState("ab")
	if ch, ok := s.Peek(); !ok || ch != 'a' || s.Pos() != 0 {
		t.Fatalf("peek consumed or failed: %q %v", ch, ok)
	}
	snap := s.Snapshot()
	s.NextChar()
	s.NextChar()
	if _, ok := s.NextChar(); ok || !s.AtEnd() {
		t.Error("read past end of input")
	}
	s.Say(1, message.ExpectedDigit)
	s.Restore(snap)
	if s.Pos() != 0 {
		t.Errorf("restore left cursor at %d", s.Pos())
	}
	if s.Messages().Len() != 1 {
		t.Error("restore must keep posted messages")
	}
}

func TestState_sharedSink(t *testing.T) {
	var msgs message.Messages
	prov := provenance.NewMap("shared.f90")
	prov.Add(0, 0, 10, 1)
	a := NewState([]byte("x"), Options{StrictConformance: true}, &msgs, prov)
	b := NewState([]byte("y"), Options{BackslashEscapes: true}, &msgs, prov)
	a.SayExpected(0, "::")
	b.Say(0, message.NoDigitBOZ)
	if msgs.Len() != 2 {
		t.Fatalf("want 2 messages in shared sink, got %d", msgs.Len())
	}
	if got := msgs.All()[0].At.String(); got != "shared.f90:10:1" {
		t.Errorf("got location %q", got)
	}
	if !a.StrictConformance() || a.BackslashEscapes() || !b.BackslashEscapes() || b.StrictConformance() {
		t.Error("options leaked between states")
	}
}

func TestState_restoreInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic restoring past end of input")
		}
	}()
	newState("abc").Restore(4)
}
