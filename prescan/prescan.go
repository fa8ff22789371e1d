// Package prescan turns free-form Fortran source text into the cooked
// character stream consumed by the token recognizers, recording the
// provenance of every cooked character.
//
// Continuation lines are joined, comments are dropped and every statement
// line is terminated by a single '\n'. Character context is tracked so that
// '!' and '&' inside character literals are kept as text.
package prescan

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/soypat/fortparse/provenance"
)

// Result is the output of a prescan.
type Result struct {
	Cooked []byte
	Map    *provenance.Map
}

// Prescanner is a line oriented prescanner for free-form Fortran.
type Prescanner struct {
	input  bufio.Reader
	source string
	line   int // number of the line last read.
	pos    int // byte offset of the start of the next line.

	cooked []byte
	prov   *provenance.Map
	// quote is the delimiter of a character literal left open
	// by a continued line, or zero.
	quote     byte
	continued bool
}

// Prescan reads all of r and returns its cooked stream.
func Prescan(source string, r io.Reader) (Result, error) {
	var p Prescanner
	if err := p.Reset(source, r); err != nil {
		return Result{}, err
	}
	return p.Scan()
}

// Reset discards all state and begins a new prescan of the input r.
func (p *Prescanner) Reset(source string, r io.Reader) error {
	if r == nil {
		return errors.New("nil reader")
	} else if source == "" {
		return errors.New("no source name")
	}
	*p = Prescanner{
		input:  p.input,
		source: source,
		cooked: p.cooked[:0],
		prov:   provenance.NewMap(source),
	}
	p.input.Reset(r)
	return nil
}

// Source returns the name the prescanner was reset with.
func (p *Prescanner) Source() string { return p.source }

// Scan processes the remaining input. The returned cooked slice is owned by
// the caller until the next call to Reset.
func (p *Prescanner) Scan() (Result, error) {
	if p.prov == nil {
		return Result{}, errors.New("prescanner uninitialized")
	}
	for {
		raw, err := p.input.ReadBytes('\n')
		if len(raw) > 0 {
			p.line++
			offset := p.pos
			p.pos += len(raw)
			p.scanLine(trimEOL(raw), offset)
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return Result{}, fmt.Errorf("%s:%d: %w", p.source, p.line, err)
		}
	}
	if p.continued {
		// Source ended on a continuation marker; close the statement.
		p.cooked = append(p.cooked, '\n')
		p.continued = false
	}
	return Result{Cooked: p.cooked, Map: p.prov}, nil
}

// scanLine appends the contribution of a single physical line starting at
// byte offset in the original source.
func (p *Prescanner) scanLine(line []byte, offset int) {
	start := 0
	if p.continued {
		start = skipBlanks(line, 0)
		if start < len(line) && line[start] == '&' {
			start++
		} else if p.quote == 0 && isCommentOrBlank(line[start:]) {
			return // Comment lines may appear between continuation lines.
		} else if p.quote != 0 {
			// Character context resumes at the first column.
			start = 0
		}
	} else if isCommentOrBlank(line) {
		return
	}

	end := len(line)
	quote := p.quote
scan:
	for i := start; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			if c == quote {
				quote = 0 // A doubled quote reopens on the next iteration.
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '!':
			end = i
			break scan
		}
	}

	content := line[start:end]
	last := bytes.LastIndexFunc(content, func(r rune) bool { return r != ' ' && r != '\t' })
	p.continued = last >= 0 && content[last] == '&'
	if p.continued {
		content = content[:last]
		p.quote = quote
	} else {
		p.quote = 0
	}
	if len(content) > 0 {
		p.prov.Add(len(p.cooked), offset+start, p.line, start+1)
		p.cooked = append(p.cooked, content...)
	}
	if !p.continued {
		p.cooked = append(p.cooked, '\n')
	}
}

func trimEOL(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte{'\n'})
	return bytes.TrimSuffix(b, []byte{'\r'})
}

func skipBlanks(b []byte, i int) int {
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	return i
}

func isCommentOrBlank(b []byte) bool {
	i := skipBlanks(b, 0)
	return i == len(b) || b[i] == '!'
}
