// Package provenance maps offsets in a prescanned (cooked) character stream
// back to the original source file, line and column.
package provenance

import (
	"sort"
	"strconv"
)

// Location is a position in original source text.
type Location struct {
	Source string
	Line   int // 1 based. Zero if unknown.
	Col    int // 1 based. Zero if unknown.
	Offset int // byte offset into the original source.
}

// IsValid reports whether the location carries line information.
func (l Location) IsValid() bool { return l.Line > 0 }

func (l Location) String() string {
	return string(l.AppendString(nil))
}

// AppendString appends the "source:line:col" representation of the location to b.
// Unknown lines are rendered with the byte offset instead: "source:@offset".
func (l Location) AppendString(b []byte) []byte {
	if b == nil {
		b = make([]byte, 0, len(l.Source)+3+3)
	}
	b = append(b, l.Source...)
	b = append(b, ':')
	if !l.IsValid() {
		b = append(b, '@')
		return strconv.AppendInt(b, int64(l.Offset), 10)
	}
	b = strconv.AppendInt(b, int64(l.Line), 10)
	if l.Col > 0 {
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(l.Col), 10)
	}
	return b
}

// run is a contiguous stretch of cooked characters that were copied
// verbatim from a single original source line.
type run struct {
	cooked int
	orig   int
	line   int
	col    int
}

// Map translates cooked stream offsets to original [Location]s.
// Runs must be added with non-decreasing cooked offsets.
type Map struct {
	source string
	runs   []run
}

// NewMap returns an empty map for the named source.
func NewMap(source string) *Map {
	return &Map{source: source}
}

// Source returns the name the map was created with.
func (m *Map) Source() string {
	if m == nil {
		return ""
	}
	return m.source
}

// Len returns the number of recorded runs.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.runs)
}

// Add records that the cooked stream starting at offset cooked continues
// from original byte offset orig, found at line and col.
// A run starting at the same cooked offset as the previous one replaces it.
func (m *Map) Add(cooked, orig, line, col int) {
	r := run{cooked: cooked, orig: orig, line: line, col: col}
	if n := len(m.runs); n > 0 {
		last := m.runs[n-1]
		if cooked < last.cooked {
			panic("provenance: runs added out of order")
		} else if cooked == last.cooked {
			m.runs[n-1] = r
			return
		}
	}
	m.runs = append(m.runs, r)
}

// Locate returns the original location of the cooked stream offset.
// A nil or empty map returns a location carrying only the offset.
func (m *Map) Locate(offset int) Location {
	if m == nil || len(m.runs) == 0 || offset < m.runs[0].cooked {
		return Location{Source: m.Source(), Offset: offset}
	}
	// Last run starting at or before offset.
	i := sort.Search(len(m.runs), func(i int) bool {
		return m.runs[i].cooked > offset
	}) - 1
	r := m.runs[i]
	delta := offset - r.cooked
	return Location{
		Source: m.source,
		Line:   r.line,
		Col:    r.col + delta,
		Offset: r.orig + delta,
	}
}
