package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/soypat/fortparse"
	"github.com/soypat/fortparse/config"
	"github.com/soypat/fortparse/message"
	"github.com/soypat/fortparse/prescan"
	"github.com/soypat/fortparse/provenance"
	"github.com/soypat/fortparse/token"
)

// Token is a recognized token of the cooked stream.
type Token struct {
	Kind token.Kind
	// Text is the raw spelling without surrounding blanks.
	Text string
	// Value is the decoded value: canonical keyword or dotted operator
	// spelling, folded name, decimal value of integers or the contents of
	// character literals. Operators and illegal tokens carry no value.
	Value string
	Loc   provenance.Location
}

type alternative struct {
	kind  token.Kind
	parse fortparse.Parser[string]
}

// scanner drives the token recognizers over a cooked stream as ordered
// alternatives, keeping the diagnostics of the alternative that applied.
type scanner struct {
	s    *fortparse.State
	alts []alternative
}

func newScanner(s *fortparse.State) *scanner {
	keywords := make([]fortparse.Parser[string], len(token.Keywords))
	for i, kw := range token.Keywords {
		keywords[i] = keyword(kw)
	}
	dotops := make([]fortparse.Parser[string], len(token.DotOperators))
	for i, op := range token.DotOperators {
		dotops[i] = fixed(op, strings.ToUpper(op))
	}
	ops := make([]fortparse.Parser[string], len(token.Operators))
	for i, op := range token.Operators {
		ops[i] = fixed(op, "")
	}
	formatUint := func(v uint64) string { return strconv.FormatUint(v, 10) }
	return &scanner{
		s: s,
		alts: []alternative{
			{token.Keyword, fortparse.Or(keywords...)},
			{token.DotOperator, fortparse.Or(dotops...)},
			{token.BOZLit, fortparse.Map(fortparse.BOZLiteral, formatUint)},
			{token.Hollerith, fortparse.Map(fortparse.HollerithLiteral, func(b []byte) string { return string(b) })},
			{token.CharLit, fortparse.QuotedCharLiteral},
			{token.IntLit, fortparse.Map(fortparse.DigitString, formatUint)},
			{token.Name, fortparse.Name},
			{token.Operator, fortparse.Or(ops...)},
		},
	}
}

// keyword matches spelling only when it is not the prefix of a longer name.
func keyword(spelling string) fortparse.Parser[string] {
	tok := fortparse.Tok(spelling)
	canonical := token.Canonical(spelling)
	return func(s *fortparse.State) (string, bool) {
		start := s.Pos()
		if _, ok := tok(s); !ok {
			return "", false
		}
		text := s.Consumed(start)
		last := text[len(text)-1]
		if next, ok := s.Peek(); ok && isNameChar(next) && last != ' ' && last != '\t' {
			s.Restore(start)
			return "", false
		}
		return canonical, true
	}
}

// fixed matches spelling and yields value.
func fixed(spelling, value string) fortparse.Parser[string] {
	return fortparse.Then(fortparse.Tok(spelling), fortparse.Pure(value))
}

func isNameChar(ch byte) bool {
	return fortparse.IsLetter(ch) || fortparse.IsDecimalDigit(ch) || ch == '_'
}

// Next returns the next token. Characters no recognizer accepts are
// returned as [token.Illegal] along with any malformation diagnosed.
func (sc *scanner) Next() Token {
	s := sc.s
	fortparse.Spaces(s)
	start := s.Pos()
	ch, ok := s.Peek()
	if !ok {
		return Token{Kind: token.EOF, Loc: s.Location(start)}
	} else if ch == '\n' {
		s.NextChar()
		return Token{Kind: token.NewLine, Text: "\n", Loc: s.Location(start)}
	}

	msgs := s.Messages()
	mark := msgs.Len()
	// On total failure the alternative that diagnosed a malformation wins,
	// then the one that got furthest.
	var best []message.Message
	bestPos, bestDiag := start, false
	for _, alt := range sc.alts {
		altMark := msgs.Len()
		v, ok := alt.parse(s)
		if ok {
			// Drop what previous alternatives posted, and the expectations
			// of inner alternatives that did not apply.
			kept := slices.Clone(msgs.All()[altMark:])
			msgs.Truncate(mark)
			for _, m := range kept {
				if isDiagnostic(m) {
					msgs.Put(m)
				}
			}
			return sc.token(alt.kind, start, v)
		}
		posted := msgs.All()[altMark:]
		diag := slices.ContainsFunc(posted, isDiagnostic)
		reached := s.Pos()
		if diag && !bestDiag || diag == bestDiag && reached > bestPos {
			best, bestPos, bestDiag = slices.Clone(posted), reached, diag
		}
		s.Restore(start)
	}
	msgs.Truncate(mark)
	for _, m := range best {
		if isDiagnostic(m) {
			msgs.Put(m)
		}
	}
	if bestPos <= start {
		bestPos = start + 1
	}
	for s.Pos() < bestPos {
		if ch, _ := s.Peek(); ch == '\n' && s.Pos() > start {
			break // Statement ends are reported on their own.
		}
		s.NextChar()
	}
	return sc.token(token.Illegal, start, "")
}

func isDiagnostic(m message.Message) bool { return !m.ID.IsExpectation() }

func (sc *scanner) token(kind token.Kind, start int, value string) Token {
	text := strings.TrimRight(string(sc.s.Consumed(start)), " \t")
	return Token{Kind: kind, Text: text, Value: value, Loc: sc.s.Location(start)}
}

// scanFile prescans r and writes its tokens followed by its diagnostics to w.
// It returns the amount of diagnostics reported.
func scanFile(w io.Writer, name string, r io.Reader, cfg config.Config, logger *slog.Logger) (int, error) {
	res, err := prescan.Prescan(name, r)
	if err != nil {
		return 0, fmt.Errorf("prescanning %s: %w", name, err)
	}
	logger.Debug("prescanned", slog.String("file", name), slog.Int("cooked", len(res.Cooked)), slog.Int("runs", res.Map.Len()))

	var msgs message.Messages
	st := fortparse.NewState(res.Cooked, cfg.Options(), &msgs, res.Map)
	sc := newScanner(st)
	ntok, nillegal := 0, 0
	for {
		tok := sc.Next()
		if tok.Kind == token.EOF {
			break
		}
		ntok++
		if tok.Kind == token.Illegal {
			nillegal++
		}
		if tok.Kind != token.NewLine {
			writeToken(w, tok)
		}
	}
	logger.Debug("scanned", slog.String("file", name), slog.Int("tokens", ntok), slog.Int("illegal", nillegal), slog.Int("messages", msgs.Len()))

	reported := 0
	for _, m := range msgs.All() {
		if cfg.MaxMessages > 0 && reported == cfg.MaxMessages {
			logger.Warn("too many diagnostics", slog.String("file", name), slog.Int("omitted", msgs.Len()-reported))
			break
		}
		writeMessage(w, m)
		reported++
	}
	// Illegal characters without a diagnostic of their own still fail the scan.
	if reported == 0 && nillegal > 0 {
		reported = nillegal
	}
	return reported, nil
}

func writeToken(w io.Writer, tok Token) {
	switch tok.Kind {
	case token.CharLit, token.Hollerith:
		fmt.Fprintf(w, "%s\t%s\t%s\t%q\n", tok.Loc, tok.Kind, tok.Text, tok.Value)
	case token.Illegal, token.Operator, token.DotOperator:
		fmt.Fprintf(w, "%s\t%s\t%s\n", tok.Loc, tok.Kind, tok.Text)
	default:
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", tok.Loc, tok.Kind, tok.Text, tok.Value)
	}
}

func writeMessage(w io.Writer, m message.Message) {
	text := m.ID.String()
	if m.ID == message.ExpectedText {
		text = fmt.Sprintf(text, m.Expected)
	}
	fmt.Fprintf(w, "%s: %s\n", m.At, text)
}
