// Package token classifies the tokens a recognizer driver reports and lists
// the fixed spellings of Fortran keywords and operators.
package token

import (
	"cmp"
	"slices"
	"strings"
)

// Kind is the class of a recognized token.
type Kind int

//go:generate stringer -type=Kind -linecomment -output stringers.go .

// List of all token kinds reported by a driver.
const (
	// Not to be used in code. Is to catch uninitialized tokens.
	Undefined Kind = iota // <undefined>

	EOF     // <EOF>
	NewLine // <newline>

	Keyword     // <keyword>
	Name        // <name>
	IntLit      // <integer>
	BOZLit      // <boz>
	CharLit     // <string>
	Hollerith   // <hollerith>
	DotOperator // <dotop>
	Operator    // <operator>

	Illegal // <illegal>
	numKinds
)

// IsLiteral returns true if the token is a literal constant.
func (k Kind) IsLiteral() bool {
	return k >= IntLit && k <= Hollerith
}

// IsIllegalOrEOF returns true for tokens that end a scan.
func (k Kind) IsIllegalOrEOF() bool {
	return k == EOF || k == Illegal
}

// Keywords lists keyword spellings, longest first. A space marks a medial
// position where blanks are optional, so "end if" stands for ENDIF and END IF.
var Keywords = longestFirst([]string{
	// Type declaration.
	"integer", "real", "complex", "logical", "character", "double precision",
	// Program structure.
	"program", "end program", "subroutine", "end subroutine", "function",
	"end function", "module", "end module", "contains", "block data",
	"end block data", "end",
	// Control flow.
	"if", "then", "else if", "else", "end if", "do", "end do", "do while",
	"select case", "case", "case default", "end select", "cycle", "exit",
	"go to", "continue", "return", "stop", "call",
	// I/O.
	"read", "write", "print", "open", "close", "inquire", "backspace",
	"rewind", "end file", "format", "namelist",
	// Declaration and specification.
	"implicit none", "implicit", "parameter", "dimension", "data",
	"equivalence", "common", "external", "intrinsic", "save", "sequence",
	"interface", "end interface", "type", "end type", "use", "only",
	"private", "public", "intent", "optional", "pointer", "target",
	"allocatable", "allocate", "deallocate", "nullify", "recursive",
	"elemental", "pure", "result", "where", "else where", "end where",
})

// Operators lists delimiter and operator spellings, longest first.
var Operators = longestFirst([]string{
	"::", "=>", "**", "//", "==", "/=", "<=", ">=", "(/", "/)",
	"=", "+", "-", "*", "/", "<", ">", "(", ")", "[", "]",
	",", ":", ";", "%", "&", ".",
})

// DotOperators lists the dotted logical constants and operators, longest first.
var DotOperators = longestFirst([]string{
	".true.", ".false.", ".eq.", ".ne.", ".lt.", ".le.", ".gt.", ".ge.",
	".and.", ".or.", ".not.", ".eqv.", ".neqv.",
})

func longestFirst(spellings []string) []string {
	slices.SortStableFunc(spellings, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	return spellings
}

// Canonical returns the upper case spelling with medial spaces removed,
// e.g. "end if" becomes "ENDIF".
func Canonical(spelling string) string {
	return strings.ToUpper(strings.ReplaceAll(spelling, " ", ""))
}

var keywordSet = func() map[string]bool {
	m := make(map[string]bool, len(Keywords))
	for _, kw := range Keywords {
		m[Canonical(kw)] = true
	}
	return m
}()

// LookupKeyword reports whether the spelling is a keyword, ignoring case and blanks.
func LookupKeyword(spelling string) bool {
	return keywordSet[Canonical(spelling)]
}
