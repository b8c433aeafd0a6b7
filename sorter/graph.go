package sorter

import (
	"log/slog"
	"strings"

	"github.com/rfuzzo/plox/plugin"
	"github.com/rfuzzo/plox/rule"
	"github.com/rfuzzo/plox/wildcard"
)

// edge is a directed constraint x -> y between two installed-plugin
// indices (into the fixed installed-order index space, not a working
// sort's current positions).
type edge struct {
	from, to int
}

// buildEdges expands every Order rule's adjacent name pairs into
// concrete index edges over installed. Self-loops and duplicate edges
// are dropped; names
// containing the literal "<ver>" token are skipped since they have
// nothing concrete to anchor an edge to.
func buildEdges(installed []plugin.Plugin, orderRules []rule.Rule, match wildcard.MatchFunc, logger *slog.Logger) []edge {
	if logger == nil {
		logger = slog.Default()
	}
	names := plugin.Names(installed)
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}

	seen := make(map[edge]bool)
	var edges []edge

	for _, r := range orderRules {
		if r.Kind != rule.Order {
			continue
		}
		for i := 0; i+1 < len(r.Names); i++ {
			a, b := r.Names[i], r.Names[i+1]
			if strings.Contains(a, "<ver>") || strings.Contains(b, "<ver>") {
				logger.Debug("skipping wildcard-only order pair", "a", a, "b", b)
				continue
			}

			matchesA, ok := match(names, a)
			if !ok {
				continue
			}
			matchesB, ok := match(names, b)
			if !ok {
				continue
			}

			for _, x := range matchesA {
				for _, y := range matchesB {
					if strings.EqualFold(x, y) {
						logger.Warn("skipping self-loop order edge", "name", x)
						continue
					}
					e := edge{from: index[x], to: index[y]}
					if seen[e] {
						continue
					}
					seen[e] = true
					edges = append(edges, e)
				}
			}
		}
	}
	return edges
}

// applyNearBias mutates working according to NearEnd rules first, then
// NearStart rules, each applied in reverse declaration order so the
// earliest-declared rule ends up winning the most extreme position
// (SPEC_FULL.md §4).
func applyNearBias(working []string, orderRules []rule.Rule, match wildcard.MatchFunc) []string {
	for i := len(orderRules) - 1; i >= 0; i-- {
		r := orderRules[i]
		if r.Kind != rule.NearEnd {
			continue
		}
		for j := len(r.Names) - 1; j >= 0; j-- {
			working = pushMatches(working, r.Names[j], match, true)
		}
	}
	for i := len(orderRules) - 1; i >= 0; i-- {
		r := orderRules[i]
		if r.Kind != rule.NearStart {
			continue
		}
		for j := len(r.Names) - 1; j >= 0; j-- {
			working = pushMatches(working, r.Names[j], match, false)
		}
	}
	return working
}

// pushMatches resolves name against the current working order and
// moves every match to the front (toEnd=false) or the back
// (toEnd=true), preserving the relative order of the rest.
func pushMatches(working []string, name string, match wildcard.MatchFunc, toEnd bool) []string {
	matches, ok := match(working, name)
	if !ok {
		return working
	}
	for _, m := range matches {
		idx := indexOf(working, m)
		if idx < 0 {
			continue
		}
		working = remove(working, idx)
		if toEnd {
			working = append(working, m)
		} else {
			working = append([]string{m}, working...)
		}
	}
	return working
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func remove(names []string, idx int) []string {
	out := make([]string, 0, len(names)-1)
	out = append(out, names[:idx]...)
	out = append(out, names[idx+1:]...)
	return out
}
