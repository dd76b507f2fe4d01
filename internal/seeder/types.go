package seeder

import (
	"fmt"

	"github.com/mintlab-dev/crmseed/internal/store"
)

// Pools holds the identifier state of one run: every primary key created (or
// fetched) so far per table, plus the secondary lookups downstream
// generators key off. The driver owns and mutates it; generators only read.
type Pools struct {
	IDs map[string][]int64

	// ContactCompany maps each contact id to its owning company, so deals
	// can pick a contact that belongs to the deal's company.
	ContactCompany map[int64]int64

	// ProductPrice maps each product id to its list price, the base for
	// deal-product unit pricing.
	ProductPrice map[int64]float64
}

func NewPools() *Pools {
	return &Pools{
		IDs:            make(map[string][]int64),
		ContactCompany: make(map[int64]int64),
		ProductPrice:   make(map[int64]float64),
	}
}

// BindFunc folds the primary keys assigned by the store into a generator's
// secondary lookups (contact -> company, product -> price). ids[i] is the
// key of the i-th generated row.
type BindFunc func(ids []int64, p *Pools)

// Generator produces synthetic rows for one table. Implementations draw
// foreign keys from the pools and randomness only from the given faker, so a
// fixed seed reproduces the run.
type Generator interface {
	Table() string
	Generate(f *Faker, p *Pools, count int) ([]store.Row, BindFunc, error)
}

// MissingPrerequisiteError reports that a dependency table was not generated
// in this run and holds no existing rows to draw foreign keys from.
type MissingPrerequisiteError struct {
	Table  string // the empty prerequisite
	Needed string // the table that needed it
}

func (e *MissingPrerequisiteError) Error() string {
	return fmt.Sprintf("no %s rows available: generate %s first (required by %s)", e.Table, e.Table, e.Needed)
}

// UniquenessExhaustedError reports that a uniqueness-constrained value could
// not be found within the retry bound.
type UniquenessExhaustedError struct {
	Table  string
	Column string
}

func (e *UniquenessExhaustedError) Error() string {
	return fmt.Sprintf("could not generate a unique %s.%s value: value space exhausted", e.Table, e.Column)
}
