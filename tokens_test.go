package fortparse

import (
	"strings"
	"testing"

	"github.com/soypat/fortparse/message"
)

func TestTok_spellings(t *testing.T) {
	cases := []struct {
		spelling string
		src      string
		ok       bool
		wantPos  int
	}{
		0:  {spelling: "end if", src: "ENDIF", ok: true, wantPos: 5},
		1:  {spelling: "end if", src: "end if", ok: true, wantPos: 6},
		2:  {spelling: "end if", src: " End\t If ", ok: true, wantPos: 9},
		3:  {spelling: "end if", src: "end  if x", ok: true, wantPos: 8},
		4:  {spelling: "end if", src: "endjf", ok: false},
		5:  {spelling: "end if", src: "e nd if", ok: false},
		6:  {spelling: "double precision", src: "DOUBLEPRECISION", ok: true, wantPos: 15},
		7:  {spelling: "go to", src: "goto 10", ok: true, wantPos: 5},
		8:  {spelling: "::", src: ": :", ok: false},
		9:  {spelling: "::", src: " ::x", ok: true, wantPos: 3},
		10: {spelling: "end ", src: "END   ", ok: true, wantPos: 6},
		11: {spelling: "end", src: "en", ok: false},
		12: {spelling: "(", src: "\t(", ok: true, wantPos: 2},
	}
	for i, test := range cases {
		s := newState(test.src)
		_, ok := Tok(test.spelling)(s)
		if ok != test.ok {
			t.Errorf("case %d: Tok(%q) on %q: want ok=%v", i, test.spelling, test.src, test.ok)
			continue
		}
		wantPos := test.wantPos // Failed matches leave the cursor untouched.
		if s.Pos() != wantPos {
			t.Errorf("case %d: Tok(%q) on %q: want pos %d, got %d", i, test.spelling, test.src, wantPos, s.Pos())
		}
	}
}

func TestTok_properties(t *testing.T) {
	keywords := []struct {
		spelling string
		medial   int // index of the medial space, or -1.
	}{
		{"program", -1},
		{"end do", 3},
		{"select case", 6},
		{"block data", 5},
		{"=>", -1},
	}
	for _, kw := range keywords {
		compact := strings.ReplaceAll(kw.spelling, " ", "")
		inputs := []string{compact, " " + compact, compact + " ", strings.ToUpper(compact)}
		if kw.medial >= 0 {
			inputs = append(inputs, compact[:kw.medial]+" "+compact[kw.medial:])
		}
		for _, in := range inputs {
			s := newState(in)
			if _, ok := Tok(kw.spelling)(s); !ok {
				t.Errorf("Tok(%q) failed on %q", kw.spelling, in)
			} else if !s.AtEnd() {
				t.Errorf("Tok(%q) on %q did not consume through trailing whitespace: %d", kw.spelling, in, s.Pos())
			}
		}
		// Mutate each non medial character.
		for j := 0; j < len(compact); j++ {
			mutated := []byte(compact)
			mutated[j] = '#'
			s := newState(string(mutated))
			if _, ok := Tok(kw.spelling)(s); ok {
				t.Errorf("Tok(%q) matched mutation %q", kw.spelling, mutated)
			}
			if s.Pos() != 0 {
				t.Errorf("Tok(%q) on %q left cursor at %d", kw.spelling, mutated, s.Pos())
			}
		}
	}
}

func TestTok_expectedMessage(t *testing.T) {
	s := newState("  endx")
	if _, ok := Tok("end if")(s); ok {
		t.Fatal("matched")
	}
	msgs := s.Messages().All()
	if len(msgs) != 1 {
		t.Fatalf("want 1 message, got %d", len(msgs))
	}
	got := msgs[0]
	if got.ID != message.ExpectedText || got.Expected != "end if" || got.Offset != 0 {
		t.Errorf("unexpected message %+v", got)
	}
	// End of input fails silently.
	s = newState("en")
	Tok("end")(s)
	if s.Messages().Len() != 0 {
		t.Errorf("unexpected messages at end of input: %v", s.Messages().All())
	}
}

func TestTokN_abbreviation(t *testing.T) {
	s := newState("PRINT*")
	if _, ok := TokN("print", 2)(s); !ok || s.Pos() != 2 {
		t.Errorf("abbreviated match failed: pos %d", s.Pos())
	}
	s = newState("pZ")
	TokN("print", 2)(s)
	msgs := s.Messages().All()
	if len(msgs) != 1 || msgs[0].Expected != "pr" {
		t.Errorf("want expected text %q, got %+v", "pr", msgs)
	}
	if _, ok := TokN("go", 10)(newState("go")); !ok {
		t.Error("count larger than spelling must match full spelling")
	}
}

func TestLeadTrail(t *testing.T) {
	p := Lead("kind", Parenthesized(DigitString))
	s := newState("KIND ( 8 )")
	v, ok := p(s)
	if !ok || v != 8 || !s.AtEnd() {
		t.Errorf("got %d %v pos %d", v, ok, s.Pos())
	}
	q := Trail(Name, "=")
	s = newState("x = 1")
	name, ok := q(s)
	if !ok || name != "x" || string(s.Remaining()) != "1" {
		t.Errorf("got %q %v remaining %q", name, ok, s.Remaining())
	}
}
