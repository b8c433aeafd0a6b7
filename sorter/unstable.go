package sorter

import "sort"

// kahnSort runs a cycle-detecting topological sort over n vertices.
// Among vertices with no remaining incoming edges it always picks the
// lowest index next, so the result is deterministic for a given edge
// set even though the sort doesn't try to minimize perturbation (that
// is the stable sorter's job). ok is false when a cycle prevented a
// full ordering.
func kahnSort(n int, edges []edge) (order []int, ok bool) {
	adj := make([][]int, n)
	indeg := make([]int, n)
	for _, e := range edges {
		adj[e.from] = append(adj[e.from], e.to)
		indeg[e.to]++
	}

	ready := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}
	sort.Ints(ready)

	order = make([]int, 0, n)
	for len(ready) > 0 {
		v := ready[0]
		ready = ready[1:]
		order = append(order, v)

		var newlyReady []int
		for _, to := range adj[v] {
			indeg[to]--
			if indeg[to] == 0 {
				newlyReady = append(newlyReady, to)
			}
		}
		if len(newlyReady) > 0 {
			ready = append(ready, newlyReady...)
			sort.Ints(ready)
		}
	}

	return order, len(order) == n
}

// tarjanSCC computes the strongly connected components of the graph
// (n vertices, edges) using an iterative Tarjan's algorithm, grounded
// in the same depth-first cycle-tracing shape as the teacher's
// recursion validator, generalized from "does a cycle exist" to
// "enumerate every component". Components are returned in the order
// they are completed (a component reachable from another is returned
// before it); each component's members are listed in graph-index
// order (ascending).
func tarjanSCC(n int, edges []edge) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.from] = append(adj[e.from], e.to)
	}

	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}

	var stack []int
	var components [][]int
	counter := 0

	type frame struct {
		v       int
		childIx int
	}

	for start := 0; start < n; start++ {
		if index[start] != -1 {
			continue
		}

		var call []frame
		push := func(v int) {
			index[v] = counter
			lowlink[v] = counter
			counter++
			stack = append(stack, v)
			onStack[v] = true
			call = append(call, frame{v: v, childIx: 0})
		}
		push(start)

		for len(call) > 0 {
			top := &call[len(call)-1]
			v := top.v

			if top.childIx < len(adj[v]) {
				w := adj[v][top.childIx]
				top.childIx++
				switch {
				case index[w] == -1:
					push(w)
				case onStack[w]:
					if index[w] < lowlink[v] {
						lowlink[v] = index[w]
					}
				}
				continue
			}

			// all children visited: pop frame, propagate lowlink to parent
			call = call[:len(call)-1]
			if len(call) > 0 {
				parent := &call[len(call)-1]
				if lowlink[v] < lowlink[parent.v] {
					lowlink[parent.v] = lowlink[v]
				}
			}

			if lowlink[v] == index[v] {
				var comp []int
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				sort.Ints(comp)
				components = append(components, comp)
			}
		}
	}

	return components
}
