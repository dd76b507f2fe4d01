package schema

import (
	"fmt"
	"strings"
)

// CycleError is returned when the dependency graph cannot be ordered because
// an ordering pass places no table while some remain unplaced.
type CycleError struct {
	Remaining []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected involving tables: %s", strings.Join(e.Remaining, ", "))
}

// Graph is a dependency graph over an ordered table enumeration. The
// enumeration order doubles as the deterministic tie-break when several
// tables become eligible in the same ordering pass.
type Graph struct {
	order []string
	deps  map[string][]string
}

// NewGraph builds a graph over the given enumeration and dependency map.
func NewGraph(order []string, deps map[string][]string) *Graph {
	return &Graph{order: order, deps: deps}
}

// DefaultGraph returns the fixed CRM dependency graph.
func DefaultGraph() *Graph {
	return NewGraph(Tables, Dependencies)
}

// Resolve computes the generation plan for the requested tables.
//
// With includeDeps false the requested tables come back unchanged, in the
// order given; the caller takes responsibility for prerequisite data already
// existing. With includeDeps true the transitive closure of the request is
// computed by fixed-point iteration, then ordered so that every table
// appears after all of its dependencies that are part of the closure.
func (g *Graph) Resolve(requested []string, includeDeps bool) ([]string, error) {
	if !includeDeps {
		plan := make([]string, len(requested))
		copy(plan, requested)
		return plan, nil
	}

	closure := make(map[string]bool, len(requested))
	for _, t := range requested {
		closure[t] = true
	}
	for added := true; added; {
		added = false
		for t := range closure {
			for _, dep := range g.deps[t] {
				if !closure[dep] {
					closure[dep] = true
					added = true
				}
			}
		}
	}

	placed := make(map[string]bool, len(closure))
	plan := make([]string, 0, len(closure))
	for len(plan) < len(closure) {
		progress := false
		for _, t := range g.order {
			if !closure[t] || placed[t] {
				continue
			}
			ready := true
			for _, dep := range g.deps[t] {
				if closure[dep] && !placed[dep] {
					ready = false
					break
				}
			}
			if ready {
				placed[t] = true
				plan = append(plan, t)
				progress = true
			}
		}
		if !progress {
			var remaining []string
			for _, t := range g.order {
				if closure[t] && !placed[t] {
					remaining = append(remaining, t)
				}
			}
			return nil, &CycleError{Remaining: remaining}
		}
	}
	return plan, nil
}

// Resolve runs the fixed CRM graph.
func Resolve(requested []string, includeDeps bool) ([]string, error) {
	return DefaultGraph().Resolve(requested, includeDeps)
}
