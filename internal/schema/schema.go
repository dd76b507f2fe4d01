package schema

// Package schema declares the fixed CRM table set, the dependency graph
// between tables, and the built-in default record counts. Everything else in
// crmseed derives from these three declarations.

// Tables is the canonical enumeration. Plan ordering and tie-breaking are
// defined in terms of this slice, so its order must never change.
var Tables = []string{
	"companies",
	"contacts",
	"deals",
	"products",
	"deal_products",
	"activities",
	"notes",
	"tasks",
}

// Dependencies maps each table to the tables whose primary keys it needs as
// foreign-key sources. The graph is acyclic by construction.
var Dependencies = map[string][]string{
	"companies":     {},
	"contacts":      {"companies"},
	"deals":         {"companies", "contacts"},
	"products":      {},
	"deal_products": {"deals", "products"},
	"activities":    {"contacts"},
	"notes":         {"contacts"},
	"tasks":         {"deals"},
}

// DefaultCounts holds per-table record counts used when neither the table
// spec nor the global --count flag supplies one.
var DefaultCounts = map[string]int{
	"companies":     100,
	"contacts":      500,
	"deals":         200,
	"products":      50,
	"deal_products": 300,
	"activities":    400,
	"notes":         300,
	"tasks":         150,
}

// IsTable reports whether name is part of the fixed enumeration.
func IsTable(name string) bool {
	_, ok := Dependencies[name]
	return ok
}

// TableDesc describes one table for the listing surface.
type TableDesc struct {
	Name         string
	DefaultCount int
	Dependencies []string
}

// Describe returns every table in canonical order with its default count and
// direct dependencies.
func Describe() []TableDesc {
	descs := make([]TableDesc, 0, len(Tables))
	for _, name := range Tables {
		descs = append(descs, TableDesc{
			Name:         name,
			DefaultCount: DefaultCounts[name],
			Dependencies: Dependencies[name],
		})
	}
	return descs
}

// PlanCounts builds the final per-table count mapping for a resolved plan.
// Tables the user asked for keep their requested count; auto-included
// dependencies fall back to globalCount when set, else their built-in
// default.
func PlanCounts(requested map[string]int, plan []string, globalCount int) map[string]int {
	counts := make(map[string]int, len(plan))
	for _, table := range plan {
		if c, ok := requested[table]; ok {
			counts[table] = c
		} else if globalCount != 0 {
			counts[table] = globalCount
		} else {
			counts[table] = DefaultCounts[table]
		}
	}
	return counts
}
