package seeder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintlab-dev/crmseed/internal/store"
)

func poolsWith(ids map[string][]int64) *Pools {
	p := NewPools()
	for table, tableIDs := range ids {
		p.IDs[table] = tableIDs
	}
	return p
}

func values(t *testing.T, rows []store.Row, col string) []any {
	t.Helper()
	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowValue(t, row, col))
	}
	return out
}

func TestRegistryCoversAllTables(t *testing.T) {
	registry := Registry()
	for _, table := range []string{
		"companies", "contacts", "deals", "products",
		"deal_products", "activities", "notes", "tasks",
	} {
		gen, ok := registry[table]
		require.True(t, ok, "missing generator for %s", table)
		assert.Equal(t, table, gen.Table())
	}
}

func TestContactEmailsUnique(t *testing.T) {
	f := NewFaker(1)
	p := poolsWith(map[string][]int64{"companies": {1, 2, 3}})

	// Enough rows that name collisions are guaranteed and the suffix retry
	// path actually runs.
	rows, bind, err := (contactGenerator{}).Generate(f, p, 500)
	require.NoError(t, err)
	require.Len(t, rows, 500)
	require.NotNil(t, bind)

	seen := make(map[any]bool, len(rows))
	for _, email := range values(t, rows, "email") {
		assert.False(t, seen[email], "duplicate email %v", email)
		seen[email] = true
	}
}

func TestContactBindRecordsCompanyMapping(t *testing.T) {
	f := NewFaker(1)
	p := poolsWith(map[string][]int64{"companies": {10, 20}})

	rows, bind, err := (contactGenerator{}).Generate(f, p, 6)
	require.NoError(t, err)

	ids := []int64{100, 101, 102, 103, 104, 105}
	bind(ids, p)
	for i, row := range rows {
		assert.Equal(t, rowValue(t, row, "company_id"), p.ContactCompany[ids[i]])
	}
}

func TestContactsRequireCompanies(t *testing.T) {
	f := NewFaker(1)
	_, _, err := (contactGenerator{}).Generate(f, NewPools(), 3)

	var missing *MissingPrerequisiteError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "companies", missing.Table)
}

func TestProductSKUsUnique(t *testing.T) {
	f := NewFaker(2)
	rows, bind, err := (productGenerator{}).Generate(f, NewPools(), 200)
	require.NoError(t, err)
	require.NotNil(t, bind)

	seen := make(map[any]bool, len(rows))
	for _, sku := range values(t, rows, "sku") {
		assert.False(t, seen[sku], "duplicate sku %v", sku)
		seen[sku] = true
	}
}

func TestProductBindRecordsPrices(t *testing.T) {
	f := NewFaker(2)
	p := NewPools()
	rows, bind, err := (productGenerator{}).Generate(f, p, 5)
	require.NoError(t, err)

	ids := []int64{1, 2, 3, 4, 5}
	bind(ids, p)
	for i, row := range rows {
		assert.Equal(t, rowValue(t, row, "price"), p.ProductPrice[ids[i]])
	}
}

func TestDealStageDerivedFields(t *testing.T) {
	f := NewFaker(3)
	p := poolsWith(map[string][]int64{
		"companies": {1, 2, 3},
		"contacts":  {10, 11, 12},
	})
	p.ContactCompany = map[int64]int64{10: 1, 11: 2, 12: 3}

	rows, _, err := (dealGenerator{}).Generate(f, p, 100)
	require.NoError(t, err)

	for _, row := range rows {
		stage := rowValue(t, row, "stage").(string)
		probability := rowValue(t, row, "probability").(int)
		actualClose := rowValue(t, row, "actual_close_date")

		switch stage {
		case "closed_won":
			assert.Equal(t, 100, probability)
			assert.NotNil(t, actualClose)
		case "closed_lost":
			assert.Equal(t, 0, probability)
			assert.NotNil(t, actualClose)
		default:
			assert.GreaterOrEqual(t, probability, 0)
			assert.LessOrEqual(t, probability, 100)
			assert.Nil(t, actualClose)
		}
	}
}

func TestDealContactMatchesCompany(t *testing.T) {
	f := NewFaker(4)
	p := poolsWith(map[string][]int64{
		"companies": {1, 2},
		"contacts":  {10, 11},
	})
	// Company 2 has no contacts; its deals must carry a NULL contact.
	p.ContactCompany = map[int64]int64{10: 1, 11: 1}

	rows, _, err := (dealGenerator{}).Generate(f, p, 50)
	require.NoError(t, err)

	for _, row := range rows {
		companyID := rowValue(t, row, "company_id").(int64)
		contact := rowValue(t, row, "contact_id")
		if companyID == 2 {
			assert.Nil(t, contact)
		} else if contact != nil {
			assert.Equal(t, int64(1), p.ContactCompany[contact.(int64)])
		}
	}
}

func TestDealProductPairsUnique(t *testing.T) {
	f := NewFaker(5)
	p := poolsWith(map[string][]int64{
		"deals":    {1, 2, 3, 4},
		"products": {10, 11, 12},
	})
	p.ProductPrice = map[int64]float64{10: 100, 11: 200, 12: 300}

	// 12 is the full capacity; every pair must appear exactly once.
	rows, _, err := (dealProductGenerator{}).Generate(f, p, 12)
	require.NoError(t, err)
	require.Len(t, rows, 12)

	seen := make(map[[2]int64]bool)
	for _, row := range rows {
		pair := [2]int64{
			rowValue(t, row, "deal_id").(int64),
			rowValue(t, row, "product_id").(int64),
		}
		assert.False(t, seen[pair], "duplicate pair %v", pair)
		seen[pair] = true
	}
}

func TestDealProductCountBeyondCapacity(t *testing.T) {
	f := NewFaker(5)
	p := poolsWith(map[string][]int64{
		"deals":    {1, 2},
		"products": {10},
	})
	p.ProductPrice = map[int64]float64{10: 100}

	_, _, err := (dealProductGenerator{}).Generate(f, p, 3)
	var exhausted *UniquenessExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, "deal_products", exhausted.Table)
}

func TestActivityDurationOnlyForTimedTypes(t *testing.T) {
	f := NewFaker(6)
	p := poolsWith(map[string][]int64{"contacts": {1, 2, 3}})

	rows, _, err := (activityGenerator{}).Generate(f, p, 100)
	require.NoError(t, err)

	for _, row := range rows {
		activityType := rowValue(t, row, "type").(string)
		duration := rowValue(t, row, "duration_minutes")
		switch activityType {
		case "call", "meeting", "demo":
			assert.NotNil(t, duration)
		default:
			assert.Nil(t, duration)
		}
	}
}

func TestTaskCompletedAtMatchesStatus(t *testing.T) {
	f := NewFaker(7)
	p := poolsWith(map[string][]int64{"deals": {1, 2, 3}})

	rows, _, err := (taskGenerator{}).Generate(f, p, 200)
	require.NoError(t, err)

	for _, row := range rows {
		status := rowValue(t, row, "status").(string)
		completed := rowValue(t, row, "completed_at")
		if status == "completed" {
			require.NotNil(t, completed)
			due := rowValue(t, row, "due_date").(time.Time)
			completedAt := completed.(time.Time)
			assert.False(t, completedAt.After(time.Now()), "completed_at in the future")
			assert.False(t, completedAt.After(due.AddDate(0, 0, 3)))
		} else {
			assert.Nil(t, completed)
		}
	}
}

func TestZeroCountGeneratesNothingWithoutPools(t *testing.T) {
	f := NewFaker(8)
	for table, gen := range Registry() {
		rows, _, err := gen.Generate(f, NewPools(), 0)
		require.NoError(t, err, "table %s", table)
		assert.Empty(t, rows, "table %s", table)
	}
}

func TestNegativeCountGeneratesNothing(t *testing.T) {
	f := NewFaker(8)
	for table, gen := range Registry() {
		rows, _, err := gen.Generate(f, NewPools(), -3)
		require.NoError(t, err, "table %s", table)
		assert.Empty(t, rows, "table %s", table)
	}
}

func TestContactEmailRetriesExhausted(t *testing.T) {
	old := maxUniqueAttempts
	maxUniqueAttempts = 0
	defer func() { maxUniqueAttempts = old }()

	f := NewFaker(9)
	p := poolsWith(map[string][]int64{"companies": {1}})

	// More contacts than distinct name/domain combinations, so with no
	// retries allowed some first attempt must collide.
	_, _, err := (contactGenerator{}).Generate(f, p, 9000)
	var exhausted *UniquenessExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, "contacts", exhausted.Table)
	assert.Equal(t, "email", exhausted.Column)
}

func TestProductSKURetriesExhausted(t *testing.T) {
	old := maxUniqueAttempts
	maxUniqueAttempts = 0
	defer func() { maxUniqueAttempts = old }()

	f := NewFaker(9)
	_, _, err := (productGenerator{}).Generate(f, NewPools(), 5000)
	var exhausted *UniquenessExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, "products", exhausted.Table)
	assert.Equal(t, "sku", exhausted.Column)
}

func TestFakerDeterministic(t *testing.T) {
	a := NewFaker(99)
	b := NewFaker(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.CompanyName(), b.CompanyName())
		assert.Equal(t, a.Phone(), b.Phone())
		assert.Equal(t, a.intBetween(1, 1000), b.intBetween(1, 1000))
	}
}
