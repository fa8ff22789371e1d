package fortparse

import (
	"testing"

	"github.com/soypat/fortparse/message"
)

func TestClassifiers(t *testing.T) {
	for c := 0; c < 256; c++ {
		ch := byte(c)
		isAF := 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
		if IsHexDigit(ch) != (IsDecimalDigit(ch) || isAF) {
			t.Errorf("IsHexDigit(%q) mismatch", ch)
		}
		if IsOctalDigit(ch) && !IsDecimalDigit(ch) {
			t.Errorf("octal digit %q is not decimal", ch)
		}
		if IsLetter(ch) && IsLetter(ToLower(ch)) && ToLower(ch) < 'a' {
			t.Errorf("ToLower(%q) = %q", ch, ToLower(ch))
		}
		if !IsLetter(ch) && ToLower(ch) != ch {
			t.Errorf("ToLower changed non letter %q", ch)
		}
	}
	if IsOctalDigit('8') || !IsOctalDigit('7') {
		t.Error("octal digit range")
	}
}

func TestLetterDigit(t *testing.T) {
	s := newState("Qz9")
	for _, want := range []byte("qz") {
		got, ok := Letter(s)
		if !ok || got != want {
			t.Errorf("want letter %q, got %q", want, got)
		}
	}
	if _, ok := Letter(s); ok {
		t.Error("digit accepted as letter")
	}
	if !s.Messages().Has(message.ExpectedLetter) {
		t.Error("missing expected letter message")
	}
	s = newState("x")
	if _, ok := Digit(s); ok || !s.Messages().Has(message.ExpectedDigit) {
		t.Error("letter accepted as digit")
	}
}

func TestName(t *testing.T) {
	cases := []struct {
		src  string
		want string
		ok   bool
	}{
		0: {src: "  Alpha_2 = 1", want: "alpha_2", ok: true},
		1: {src: "x", want: "x", ok: true},
		2: {src: "_x", ok: false},
		3: {src: "9a", ok: false},
	}
	for i, test := range cases {
		got, ok := Name(newState(test.src))
		if ok != test.ok || got != test.want {
			t.Errorf("case %d: want %q %v, got %q %v", i, test.want, test.ok, got, ok)
		}
	}
}

func TestCharMatch(t *testing.T) {
	s := newState("ab")
	if _, ok := CharMatch('a')(s); !ok {
		t.Error("no match")
	}
	if _, ok := CharMatch('a')(s); ok {
		t.Error("matched b")
	}
	msgs := s.Messages().All()
	if len(msgs) != 1 || msgs[0].Expected != "a" || msgs[0].Offset != 1 {
		t.Errorf("unexpected messages %+v", msgs)
	}
}
