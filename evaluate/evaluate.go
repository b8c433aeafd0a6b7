// Package evaluate drives per-rule evaluation over the installed-mod
// set and collects advisory warnings.
package evaluate

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rfuzzo/plox/expr"
	"github.com/rfuzzo/plox/plugin"
	"github.com/rfuzzo/plox/rule"
)

// Warning is one advisory emitted by a Note/Conflict/Requires/Patch
// rule that fired.
type Warning struct {
	Kind           rule.Kind
	Comment        string
	MatchedPlugins []string
	Rule           rule.Rule
}

// Evaluate runs every non-order rule's Eval against installed and
// returns the warnings that fired, in rule declaration order.
// Evaluate never fails: malformed rules were already dropped at parse
// time, and expression evaluation is total.
func Evaluate(rules []rule.Rule, installed []plugin.Plugin) []Warning {
	ev := expr.NewEvaluator()
	var warnings []Warning
	for _, r := range rules {
		if r.IsOrdering() {
			continue
		}
		matched, ok := r.Eval(ev, installed)
		if !ok {
			continue
		}
		warnings = append(warnings, Warning{
			Kind:           r.Kind,
			Comment:        r.Comment,
			MatchedPlugins: matched,
			Rule:           r,
		})
	}
	return warnings
}

// SuggestSimilar returns the installed names that most closely match
// pattern, for diagnostics when an Atomic expression matched nothing —
// a small enrichment over spec.md, grounded on the fuzzysearch
// dependency carried from the example pack (SPEC_FULL.md §3 Domain
// Stack). It never affects Eval's result, only what a caller might
// print alongside a warning that never fired.
func SuggestSimilar(installed []plugin.Plugin, pattern string, max int) []string {
	names := plugin.Names(installed)
	ranked := fuzzy.RankFindNormalizedFold(pattern, names)
	sort.Sort(ranked)
	if len(ranked) > max {
		ranked = ranked[:max]
	}
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Target
	}
	return out
}
