package sorter

import (
	"fmt"
	"strings"
)

// Component is one non-trivial strongly connected component reported
// on a cycle: its member names in graph-index order, and the source
// order rules that contributed at least two of its members.
type Component struct {
	Members []string
	Rules   []string
}

// CycleError is returned when the unstable sorter's graph is not a
// DAG.
type CycleError struct {
	Components []Component
}

func (e *CycleError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "graph contains a cycle across %d component(s)", len(e.Components))
	for _, c := range e.Components {
		fmt.Fprintf(&b, "; [%s]", strings.Join(c.Members, ", "))
	}
	return b.String()
}

// IterationError is returned when the stable sorter does not converge
// within its configured iteration bound.
type IterationError struct {
	LastEdgeIndex int
}

func (e *IterationError) Error() string {
	return fmt.Sprintf("out of iterations, last modified edge index %d", e.LastEdgeIndex)
}
