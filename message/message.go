// Package message defines diagnostic templates and the sink that
// accumulates them during a parse. Messages are never used for control flow
// and are never rendered into human readable prose here.
package message

import (
	"github.com/soypat/fortparse/provenance"
)

// ID identifies a message template. Its String method returns the template text.
type ID int

//go:generate stringer -type=ID -linecomment -output stringers.go .

// List of message templates posted by the token recognizers.
const (
	// Not to be used in code. Is to catch uninitialized messages.
	Undefined ID = iota // <undefined>

	ExpectedDigit        // expected digit
	ExpectedLetter       // expected letter
	ExpectedText         // expected '%s'
	UnclosedCharConstant // unclosed character constant
	BadEscapedChar       // bad escaped character
	NoDigitBOZ           // no digit in BOZ literal
	BadDigitBOZ          // bad digit in BOZ literal
	ExcessiveDigitsBOZ   // excessive digits in BOZ literal
	DecimalOverflow      // overflow in decimal literal
	BadHollerith         // insufficient or bad characters in Hollerith
	numIDs
)

// IsFatal reports whether the template denotes a malformation that makes
// the recognizer posting it fail. The remaining templates accompany a
// successful parse with a best effort value.
func (id ID) IsFatal() bool {
	switch id {
	case DecimalOverflow, ExcessiveDigitsBOZ, BadEscapedChar:
		return false
	}
	return id != Undefined
}

// IsExpectation reports whether the template names what a recognizer
// expected to find. These are routinely posted by alternatives that do not
// apply at a position.
func (id ID) IsExpectation() bool {
	return id == ExpectedDigit || id == ExpectedLetter || id == ExpectedText
}

// Message is a template identifier attached to a source location.
type Message struct {
	ID ID
	// Expected holds the literal text for [ExpectedText] messages.
	Expected string
	// Offset is the position in the cooked stream the message was posted at.
	Offset int
	At     provenance.Location
}

// Messages is an append only diagnostic sink.
// The zero value is ready to use.
type Messages struct {
	list []Message
}

// Put appends m to the sink.
func (ms *Messages) Put(m Message) {
	ms.list = append(ms.list, m)
}

// Len returns the amount of messages posted.
func (ms *Messages) Len() int { return len(ms.list) }

// All returns the posted messages in posting order.
// The returned slice must not be modified.
func (ms *Messages) All() []Message { return ms.list }

// Truncate discards all messages posted after the first n.
// Drivers use it to drop the messages of abandoned grammar alternatives.
func (ms *Messages) Truncate(n int) {
	if n < 0 || n > len(ms.list) {
		panic("message: bad truncate length")
	}
	clear(ms.list[n:])
	ms.list = ms.list[:n]
}

// Has reports whether a message with the given template was posted.
func (ms *Messages) Has(id ID) bool {
	for i := range ms.list {
		if ms.list[i].ID == id {
			return true
		}
	}
	return false
}

// Reset discards all messages and reuses the underlying memory.
func (ms *Messages) Reset() {
	ms.Truncate(0)
}
