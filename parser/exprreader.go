package parser

import (
	"strconv"
	"strings"

	"github.com/rfuzzo/plox/expr"
)

// exprReader parses a Note/Conflict/Requires/Patch body left to right,
// character by character, tracking bracket depth implicitly through
// recursion: a '[' opens a compound whose own body is read by a
// recursive call to list, and the ']' that balances it is consumed by
// that same call before it returns.
type exprReader struct {
	src []rune
	pos int
}

func newExprReader(body string) *exprReader {
	return &exprReader{src: []rune(body)}
}

func (r *exprReader) eof() bool { return r.pos >= len(r.src) }

func isExprSep(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '[' || c == ']'
}

// list reads bare atomics and bracketed compounds until it hits the
// ']' that closes the current level (or EOF, at the top level).
func (r *exprReader) list() []*expr.Expr {
	var out []*expr.Expr
	var tok strings.Builder
	inQuote := false

	flush := func() {
		if tok.Len() > 0 {
			out = append(out, &expr.Expr{Kind: expr.Atomic, Pattern: tok.String()})
			tok.Reset()
		}
	}

	for !r.eof() {
		c := r.src[r.pos]
		switch {
		case c == '"':
			if inQuote {
				inQuote = false
				flush()
			} else {
				inQuote = true
			}
			r.pos++
		case inQuote:
			tok.WriteRune(c)
			r.pos++
		case c == '[':
			flush()
			r.pos++
			out = append(out, r.compound())
		case c == ']':
			flush()
			r.pos++
			return out
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			flush()
			r.pos++
		default:
			tok.WriteRune(c)
			r.pos++
		}
	}
	flush()
	return out
}

// compound is called just after consuming the opening '[' of a
// compound expression. It reads the keyword token that selects
// ALL/ANY/NOT/SIZE and dispatches; an unrecognized keyword tolerantly
// becomes an Atomic named after the opening token.
func (r *exprReader) compound() *expr.Expr {
	keyword := strings.ToUpper(r.readToken())

	switch keyword {
	case "ALL":
		return &expr.Expr{Kind: expr.All, Children: r.list()}
	case "ANY":
		return &expr.Expr{Kind: expr.Any, Children: r.list()}
	case "NOT":
		children := r.list()
		var child *expr.Expr
		if len(children) > 0 {
			child = children[0]
		}
		return &expr.Expr{Kind: expr.Not, Child: child}
	case "SIZE":
		lit := r.readToken()
		negated := strings.HasPrefix(lit, "!")
		n, _ := strconv.ParseUint(strings.TrimPrefix(lit, "!"), 10, 64)
		atom := r.readToken()
		r.skipToClose()
		return &expr.Expr{Kind: expr.Size, Pattern: atom, Bytes: n, Negated: negated}
	default:
		r.skipToClose()
		return &expr.Expr{Kind: expr.Atomic, Pattern: keyword}
	}
}

// readToken skips leading whitespace and reads one whitespace- or
// bracket-delimited token, or a "..."-quoted token.
func (r *exprReader) readToken() string {
	for !r.eof() && (r.src[r.pos] == ' ' || r.src[r.pos] == '\t' || r.src[r.pos] == '\n' || r.src[r.pos] == '\r') {
		r.pos++
	}
	if r.eof() {
		return ""
	}
	if r.src[r.pos] == '"' {
		r.pos++
		var b strings.Builder
		for !r.eof() && r.src[r.pos] != '"' {
			b.WriteRune(r.src[r.pos])
			r.pos++
		}
		if !r.eof() {
			r.pos++
		}
		return b.String()
	}
	var b strings.Builder
	for !r.eof() && !isExprSep(r.src[r.pos]) {
		b.WriteRune(r.src[r.pos])
		r.pos++
	}
	return b.String()
}

// skipToClose advances past any remaining content in the current
// compound up to and including its closing ']', honoring nested
// brackets so a malformed SIZE/unknown body can't desync the reader.
func (r *exprReader) skipToClose() {
	depth := 1
	for !r.eof() {
		switch r.src[r.pos] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				r.pos++
				return
			}
		}
		r.pos++
	}
}
