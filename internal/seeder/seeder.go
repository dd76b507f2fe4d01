package seeder

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/mintlab-dev/crmseed/internal/schema"
	"github.com/mintlab-dev/crmseed/internal/store"
)

// Options fully determine a run: the table-selection expression, the global
// count override, and whether dependency tables are auto-included.
type Options struct {
	TableSpec string
	Count     int
	NoDeps    bool
	Quiet     bool
}

// Result reports what a run produced.
type Result struct {
	Plan      []string
	Requested []string
	Counts    map[string]int
	Generated map[string]int
}

// Seeder walks a resolved plan, generating each table in dependency order
// and committing everything at the end as one unit. For prerequisite tables
// that are not part of the plan it falls back to fetching existing ids from
// the store.
type Seeder struct {
	store    store.Store
	faker    *Faker
	registry map[string]Generator
	pools    *Pools
	fetched  map[string]bool
}

func New(st store.Store, seed int64) *Seeder {
	return &Seeder{
		store:    st,
		faker:    NewFaker(seed),
		registry: Registry(),
		pools:    NewPools(),
		fetched:  make(map[string]bool),
	}
}

func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	counts, requested, err := schema.ParseSpec(opts.TableSpec, opts.Count)
	if err != nil {
		return nil, err
	}

	plan, err := schema.Resolve(requested, !opts.NoDeps)
	if err != nil {
		return nil, err
	}
	finalCounts := schema.PlanCounts(counts, plan, opts.Count)

	requestedSet := make(map[string]bool, len(requested))
	for _, t := range requested {
		requestedSet[t] = true
	}

	if !opts.Quiet {
		color.Cyan("Tables to generate:")
		autoIncluded := false
		for _, table := range plan {
			marker := " "
			if !requestedSet[table] {
				marker = "*"
				autoIncluded = true
			}
			fmt.Printf("  %s %s: %d records\n", marker, table, finalCounts[table])
		}
		if autoIncluded {
			fmt.Println("  * = auto-included dependency")
		}
		fmt.Println()
	}

	result := &Result{
		Plan:      plan,
		Requested: requested,
		Counts:    finalCounts,
		Generated: make(map[string]int, len(plan)),
	}

	for _, table := range plan {
		count := finalCounts[table]

		gen, ok := s.registry[table]
		if !ok {
			return nil, fmt.Errorf("no generator registered for table %s", table)
		}

		// Prerequisites outside the plan are not regenerated; their ids are
		// pulled from the store instead. A zero-count table touches no pools,
		// so it needs none.
		if count > 0 {
			if err := s.ensurePrerequisites(ctx, table, opts); err != nil {
				return nil, err
			}
		}

		if !opts.Quiet {
			color.Cyan("Generating %d %s...", count, table)
		}
		rows, bind, err := gen.Generate(s.faker, s.pools, count)
		if err != nil {
			return nil, err
		}

		ids, err := s.store.InsertRows(ctx, table, "id", rows)
		if err != nil {
			return nil, fmt.Errorf("failed to persist %s: %w", table, err)
		}
		s.pools.IDs[table] = append(s.pools.IDs[table], ids...)
		if bind != nil {
			bind(ids, s.pools)
		}
		result.Generated[table] = len(rows)
		if !opts.Quiet {
			color.Green("  created %d %s", len(rows), table)
		}
	}

	if err := s.store.Commit(ctx); err != nil {
		return nil, err
	}
	return result, nil
}

// ensurePrerequisites fills the pools for every dependency of table that was
// not generated earlier in this run, fetching from the persisted store. An
// empty result is fatal: the table's rows would have nothing to reference.
func (s *Seeder) ensurePrerequisites(ctx context.Context, table string, opts Options) error {
	for _, dep := range schema.Dependencies[table] {
		if len(s.pools.IDs[dep]) > 0 || s.fetched[dep] {
			continue
		}
		s.fetched[dep] = true

		ids, err := s.store.FetchIDs(ctx, dep)
		if err != nil {
			return fmt.Errorf("failed to fetch existing %s ids: %w", dep, err)
		}
		if len(ids) == 0 {
			return &MissingPrerequisiteError{Table: dep, Needed: table}
		}
		s.pools.IDs[dep] = ids

		switch dep {
		case "contacts":
			pairs, err := s.store.FetchRefPairs(ctx, "contacts", "id", "company_id")
			if err != nil {
				return fmt.Errorf("failed to fetch contact companies: %w", err)
			}
			s.pools.ContactCompany = pairs
		case "products":
			prices, err := s.store.FetchNumericPairs(ctx, "products", "id", "price")
			if err != nil {
				return fmt.Errorf("failed to fetch product prices: %w", err)
			}
			s.pools.ProductPrice = prices
		}

		if !opts.Quiet {
			color.Yellow("  using %d existing %s", len(ids), dep)
		}
	}
	return nil
}
