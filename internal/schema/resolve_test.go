package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transitiveClosure(requested []string) map[string]bool {
	closure := make(map[string]bool)
	var add func(t string)
	add = func(t string) {
		if closure[t] {
			return
		}
		closure[t] = true
		for _, dep := range Dependencies[t] {
			add(dep)
		}
	}
	for _, t := range requested {
		add(t)
	}
	return closure
}

func TestResolveIncludesTransitiveDependencies(t *testing.T) {
	plan, err := Resolve([]string{"deal_products"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"companies", "contacts", "deals", "products", "deal_products"}, plan)
}

func TestResolveClosureAndOrderForAllSubsets(t *testing.T) {
	// Walk every subset of the eight tables and check both closure equality
	// and that each table's in-closure dependencies precede it.
	for mask := 1; mask < 1<<len(Tables); mask++ {
		var requested []string
		for i, table := range Tables {
			if mask&(1<<i) != 0 {
				requested = append(requested, table)
			}
		}

		plan, err := Resolve(requested, true)
		require.NoError(t, err)

		want := transitiveClosure(requested)
		require.Len(t, plan, len(want), "requested %v", requested)

		position := make(map[string]int, len(plan))
		for i, table := range plan {
			require.True(t, want[table], "plan contains %s outside closure of %v", table, requested)
			position[table] = i
		}
		for _, table := range plan {
			for _, dep := range Dependencies[table] {
				if want[dep] {
					assert.Less(t, position[dep], position[table],
						"%s must precede %s in plan for %v", dep, table, requested)
				}
			}
		}
	}
}

func TestResolveNoDepsPassthrough(t *testing.T) {
	requested := []string{"tasks", "deals"}
	plan, err := Resolve(requested, false)
	require.NoError(t, err)
	assert.Equal(t, requested, plan)
}

func TestResolveNoDepsReturnsIndependentSlice(t *testing.T) {
	requested := []string{"tasks", "deals"}
	plan, err := Resolve(requested, false)
	require.NoError(t, err)

	// Mutating the request afterwards must not change the plan.
	requested[0] = "notes"
	assert.Equal(t, []string{"tasks", "deals"}, plan)
}

func TestResolveDeterministic(t *testing.T) {
	first, err := Resolve([]string{"tasks", "notes", "deal_products"}, true)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Resolve([]string{"tasks", "notes", "deal_products"}, true)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolveCanonicalTieBreak(t *testing.T) {
	// companies and products are both dependency-free; the canonical
	// enumeration places companies first regardless of request order.
	plan, err := Resolve([]string{"products", "companies"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"companies", "products"}, plan)
}

func TestResolveCycleFailsInsteadOfLooping(t *testing.T) {
	g := NewGraph(
		[]string{"a", "b", "c"},
		map[string][]string{
			"a": {"b"},
			"b": {"a"},
			"c": {},
		},
	)

	_, err := g.Resolve([]string{"a"}, true)
	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.ElementsMatch(t, []string{"a", "b"}, cycleErr.Remaining)

	// Nodes outside the cycle still resolve.
	plan, err := g.Resolve([]string{"c"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, plan)
}

func TestFixedGraphIsAcyclic(t *testing.T) {
	_, err := Resolve(Tables, true)
	require.NoError(t, err)
}
