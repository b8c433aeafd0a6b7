package sorter

import "sort"

// stableOpt performs one optimized fixed-point pass: it scans the
// edge list (already sorted by source index — deterministic, not
// semantic; it just produces a canonical fix-up order so results are
// reproducible across runs) and, for every edge whose tail currently
// sits after its head in working, splices the tail to just before the
// head. Only the span between the two positions is perturbed, and the
// edge that caused a splice holds right after it; a later splice in
// the same pass can still break an edge that held before, so callers
// repeat passes until one makes no splice. It returns whether any
// splice occurred and the index of the last edge that caused one.
func stableOpt(working []string, edgesBySource []edge, names []string) (changed bool, lastEdge int) {
	for i, e := range edgesBySource {
		x, y := names[e.from], names[e.to]
		ix := indexOf(working, x)
		iy := indexOf(working, y)
		if ix > iy {
			spliceBefore(working, ix, iy)
			changed = true
			lastEdge = i
		}
	}
	return changed, lastEdge
}

// stableFull is the O(n^2) parity variant: for i in 0..n, for j in
// 0..i, if the edge working[i]->working[j] exists (working[i] must
// come before working[j] but sits after it), splice working[i] to just
// before working[j] and restart from the top.
// It must yield the same final order as stableOpt on acyclic input.
func stableFull(working []string, edgeSet map[edge]bool, origIndex map[string]int) (changed bool) {
	n := len(working)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			x, y := working[i], working[j]
			if edgeSet[edge{from: origIndex[x], to: origIndex[y]}] {
				spliceBefore(working, i, j)
				return true
			}
		}
	}
	return false
}

// spliceBefore moves working[from] to position to (from > to),
// shifting the intervening elements right by one. Relative order
// within [to, from) is preserved.
func spliceBefore(working []string, from, to int) {
	elem := working[from]
	copy(working[to+1:from+1], working[to:from])
	working[to] = elem
}

func edgesSortedBySource(edges []edge) []edge {
	out := make([]edge, len(edges))
	copy(out, edges)
	sort.SliceStable(out, func(i, j int) bool { return out[i].from < out[j].from })
	return out
}

func edgeSetOf(edges []edge) map[edge]bool {
	set := make(map[edge]bool, len(edges))
	for _, e := range edges {
		set[e] = true
	}
	return set
}
