// Package expr implements the boolean expression tree evaluated
// against the installed-mod set: Atomic existence, ALL/ANY/NOT
// composition, and the SIZE predicate.
package expr

import (
	"strings"

	"github.com/rfuzzo/plox/plugin"
	"github.com/rfuzzo/plox/wildcard"
)

// Kind discriminates the expression variants. There is no interface
// hierarchy here — one sum type, dispatched by Kind.
type Kind int

const (
	Atomic Kind = iota
	All
	Any
	Not
	Size
)

func (k Kind) String() string {
	switch k {
	case Atomic:
		return "Atomic"
	case All:
		return "ALL"
	case Any:
		return "ANY"
	case Not:
		return "NOT"
	case Size:
		return "SIZE"
	default:
		return "unknown"
	}
}

// Expr is a node in the expression tree. Only the fields relevant to
// Kind are populated: Atomic/Size use Pattern (and, for Size, Bytes
// and Negated); All/Any use Children; Not uses Child.
type Expr struct {
	Kind     Kind
	Pattern  string
	Children []*Expr
	Child    *Expr
	Bytes    uint64
	Negated  bool
}

// Evaluator evaluates expressions against an installed-mod set through
// an injected wildcard match strategy, so no call site open-codes glob
// behavior.
type Evaluator struct {
	Match wildcard.MatchFunc
}

// NewEvaluator returns an Evaluator using the default wildcard
// matcher.
func NewEvaluator() *Evaluator {
	return &Evaluator{Match: wildcard.Contains}
}

// Eval evaluates e against installed. It returns (matches, true) when
// e is true, where matches lists the installed plugin names that made
// it true; it returns (nil, false) when e is false. Eval is pure: the
// same (e, installed) pair always yields the same result.
func (ev *Evaluator) Eval(e *Expr, installed []plugin.Plugin) ([]string, bool) {
	if e == nil {
		return nil, false
	}
	switch e.Kind {
	case Atomic:
		return ev.match(installed, e.Pattern)

	case All:
		var matched []string
		for _, child := range e.Children {
			m, ok := ev.Eval(child, installed)
			if !ok {
				return nil, false
			}
			matched = append(matched, m...)
		}
		return matched, true

	case Any:
		var matched []string
		fired := false
		for _, child := range e.Children {
			m, ok := ev.Eval(child, installed)
			if ok {
				matched = append(matched, m...)
				fired = true
			}
		}
		if !fired {
			return nil, false
		}
		return matched, true

	case Not:
		if _, ok := ev.Eval(e.Child, installed); ok {
			return nil, false
		}
		return []string{}, true

	case Size:
		return ev.evalSize(e, installed)

	default:
		return nil, false
	}
}

func (ev *Evaluator) match(installed []plugin.Plugin, pattern string) ([]string, bool) {
	names := plugin.Names(installed)
	fn := ev.Match
	if fn == nil {
		fn = wildcard.Contains
	}
	return fn(names, pattern)
}

// evalSize runs the Atomic match on e.Pattern and keeps, existentially,
// any installed match whose size equals Bytes (or differs, if
// Negated) — a wildcard atom matching several plugins needs only one
// of them to satisfy the predicate (DESIGN.md, Open Question
// resolutions).
func (ev *Evaluator) evalSize(e *Expr, installed []plugin.Plugin) ([]string, bool) {
	candidates, ok := ev.match(installed, e.Pattern)
	if !ok {
		return nil, false
	}

	var matched []string
	for _, name := range candidates {
		size, found := plugin.SizeOf(installed, name)
		if !found {
			continue
		}
		equal := size == e.Bytes
		if equal != e.Negated {
			matched = append(matched, name)
		}
	}
	if len(matched) == 0 {
		return nil, false
	}
	return matched, true
}

// Dedupe returns names with duplicates removed, preserving first
// occurrence order. Shared by rule.Eval and the Note/Conflict/Patch
// match aggregation.
func Dedupe(names []string) []string {
	if len(names) == 0 {
		return names
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		key := strings.ToLower(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}
