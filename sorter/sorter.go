// Package sorter builds a load-order DAG from order rules and the
// installed-mod set and produces a total ordering: an unstable
// cycle-detecting Kahn sort, or a stable fixed-point reorderer (with
// two equivalent variants) that disturbs the user's current order as
// little as possible.
package sorter

import (
	"log/slog"
	"strings"

	"github.com/rfuzzo/plox/plugin"
	"github.com/rfuzzo/plox/rule"
	"github.com/rfuzzo/plox/wildcard"
)

// Mode selects the sort algorithm.
type Mode int

const (
	// ModeUnstable runs a cycle-detecting Kahn topological sort. It
	// does not try to preserve the installed order among unconstrained
	// mods.
	ModeUnstable Mode = iota
	// ModeStableOpt runs the optimized fixed-point reorderer: the
	// default, minimally-perturbing sort.
	ModeStableOpt
	// ModeStableFull runs the O(n^2) parity variant of the same
	// algorithm, used to cross-check ModeStableOpt in tests.
	ModeStableFull
)

// Options configures a sort call.
type Options struct {
	// MaxIterations bounds the stable sorter's fixed-point loop.
	// Zero means DefaultMaxIterations.
	MaxIterations int
	// Logger receives structured diagnostics (skipped wildcard-only
	// pairs, self-loops). Defaults to slog.Default().
	Logger *slog.Logger
	// Match overrides the wildcard matching strategy. Defaults to
	// wildcard.Contains.
	Match wildcard.MatchFunc
	// DisableNearBias skips the NearStart/NearEnd pre-bias step,
	// treating those rules as no-ops. Only meaningful for the stable
	// modes; the unstable sort never applies near-bias.
	DisableNearBias bool
}

// DefaultMaxIterations is the stable sorter's default iteration
// bound.
const DefaultMaxIterations = 100

func (o Options) withDefaults() Options {
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Match == nil {
		o.Match = wildcard.Contains
	}
	return o
}

// Sort produces a permutation of installed satisfying every edge
// implied by the order rules in rules, under mode.
func Sort(installed []plugin.Plugin, rules []rule.Rule, mode Mode, opts Options) ([]string, error) {
	opts = opts.withDefaults()
	orderRules, _ := rule.Split(rules)
	names := plugin.Names(installed)
	edges := buildEdges(installed, orderRules, opts.Match, opts.Logger)

	if mode == ModeUnstable {
		return sortUnstable(names, edges, orderRules)
	}
	return sortStable(names, edges, orderRules, mode, opts)
}

func sortUnstable(names []string, edges []edge, orderRules []rule.Rule) ([]string, error) {
	order, ok := kahnSort(len(names), edges)
	if !ok {
		components := tarjanSCC(len(names), edges)
		return nil, &CycleError{Components: buildComponents(components, names, orderRules)}
	}

	result := make([]string, len(order))
	for i, idx := range order {
		result[i] = names[idx]
	}
	return result, nil
}

func sortStable(names []string, edges []edge, orderRules []rule.Rule, mode Mode, opts Options) ([]string, error) {
	working := append([]string(nil), names...)
	if !opts.DisableNearBias {
		working = applyNearBias(working, orderRules, opts.Match)
	}

	origIndex := make(map[string]int, len(names))
	for i, n := range names {
		origIndex[n] = i
	}

	sortedEdges := edgesSortedBySource(edges)
	edgeSet := edgeSetOf(edges)

	lastEdge := 0
	for iter := 0; iter < opts.MaxIterations; iter++ {
		var changed bool
		switch mode {
		case ModeStableFull:
			changed = stableFull(working, edgeSet, origIndex)
		default:
			changed, lastEdge = stableOpt(working, sortedEdges, names)
		}
		if !changed {
			return working, nil
		}
	}
	return nil, &IterationError{LastEdgeIndex: lastEdge}
}

// buildComponents filters SCCs down to the non-trivial ones (size > 1)
// and, for each, attributes the order rules whose name list contains
// two or more of its members, compared case-insensitively.
func buildComponents(raw [][]int, names []string, orderRules []rule.Rule) []Component {
	var out []Component
	for _, comp := range raw {
		if len(comp) <= 1 {
			continue
		}
		members := make([]string, len(comp))
		memberSet := make(map[string]bool, len(comp))
		for i, idx := range comp {
			members[i] = names[idx]
			memberSet[names[idx]] = true
		}

		var contributing []string
		for _, r := range orderRules {
			if r.Kind != rule.Order {
				continue
			}
			count := 0
			for _, n := range r.Names {
				if memberSet[strings.ToLower(n)] {
					count++
				}
			}
			if count >= 2 {
				contributing = append(contributing, describeRule(r))
			}
		}

		out = append(out, Component{Members: members, Rules: contributing})
	}
	return out
}

func describeRule(r rule.Rule) string {
	s := "Order:"
	for i, n := range r.Names {
		if i > 0 {
			s += ","
		}
		s += n
	}
	return s
}

// Verify runs a cheap unstable sort and discards the result, useful
// for a caller that only wants a pass/fail before committing to a
// full stable re-order (SPEC_FULL.md §4 "Feature supplements").
func Verify(installed []plugin.Plugin, rules []rule.Rule) (bool, error) {
	_, err := Sort(installed, rules, ModeUnstable, Options{})
	if err != nil {
		return false, err
	}
	return true, nil
}
