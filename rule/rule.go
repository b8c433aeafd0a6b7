// Package rule implements the rule model: Order, NearStart, NearEnd,
// Note, Conflict, Requires, and Patch, collapsed into one discriminated
// union rather than the abstract "rule" interface the original source
// leaks.
package rule

import (
	"github.com/rfuzzo/plox/expr"
	"github.com/rfuzzo/plox/plugin"
)

// Kind discriminates the rule variants.
type Kind int

const (
	Order Kind = iota
	NearStart
	NearEnd
	Note
	Conflict
	Requires
	Patch
)

func (k Kind) String() string {
	switch k {
	case Order:
		return "Order"
	case NearStart:
		return "NearStart"
	case NearEnd:
		return "NearEnd"
	case Note:
		return "Note"
	case Conflict:
		return "Conflict"
	case Requires:
		return "Requires"
	case Patch:
		return "Patch"
	default:
		return "unknown"
	}
}

// Source records where a rule came from: the file path and the
// 1-based line its chunk started on.
type Source struct {
	Path string
	Line int
}

// Rule is a tagged variant over the seven rule kinds. Only the fields
// relevant to Kind are populated: Order/NearStart/NearEnd use Names;
// Note uses Comment and Expressions; Conflict/Requires/Patch use
// Comment, A and B.
type Rule struct {
	Kind        Kind
	Names       []string
	Comment     string
	Expressions []*expr.Expr
	A, B        *expr.Expr
	Source      Source
}

// IsOrdering reports whether the rule contributes to the sorter's
// graph rather than to the warning list.
func (r Rule) IsOrdering() bool {
	return r.Kind == Order || r.Kind == NearStart || r.Kind == NearEnd
}

// Eval evaluates a warning-kind rule against installed, driven by ev.
// Order/NearStart/NearEnd never fire a warning: they have no
// evaluation semantics, only sorting effect.
func (r Rule) Eval(ev *expr.Evaluator, installed []plugin.Plugin) ([]string, bool) {
	switch r.Kind {
	case Order, NearStart, NearEnd:
		return nil, false

	case Note:
		var matched []string
		fired := false
		for _, e := range r.Expressions {
			m, ok := ev.Eval(e, installed)
			if ok {
				matched = append(matched, m...)
				fired = true
			}
		}
		if !fired {
			return nil, false
		}
		return expr.Dedupe(matched), true

	case Conflict:
		ma, oka := ev.Eval(r.A, installed)
		mb, okb := ev.Eval(r.B, installed)
		if oka && okb {
			return expr.Dedupe(append(ma, mb...)), true
		}
		return nil, false

	case Requires:
		ma, oka := ev.Eval(r.A, installed)
		_, okb := ev.Eval(r.B, installed)
		if oka && !okb {
			return expr.Dedupe(ma), true
		}
		return nil, false

	case Patch:
		ma, oka := ev.Eval(r.A, installed)
		mb, okb := ev.Eval(r.B, installed)
		if oka == okb {
			return nil, false
		}
		if oka {
			return expr.Dedupe(ma), true
		}
		return expr.Dedupe(mb), true

	default:
		return nil, false
	}
}

// Split partitions rules into order rules (Order/NearStart/NearEnd,
// fed to the sorter) and warning rules (everything else, fed to the
// evaluator), preserving declaration order within each group.
func Split(rules []Rule) (order []Rule, warning []Rule) {
	for _, r := range rules {
		if r.IsOrdering() {
			order = append(order, r)
		} else {
			warning = append(warning, r)
		}
	}
	return order, warning
}
