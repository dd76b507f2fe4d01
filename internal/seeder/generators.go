package seeder

import (
	"fmt"
	"math"
	"strings"

	"github.com/mintlab-dev/crmseed/internal/store"
)

// maxUniqueAttempts bounds the retry loops for uniqueness-constrained values
// (emails, SKUs). Past this the generator fails instead of spinning. A
// variable so tests can tighten the bound.
var maxUniqueAttempts = 100

// Registry maps each table to its generator. Looked up once per plan entry.
func Registry() map[string]Generator {
	gens := []Generator{
		&companyGenerator{},
		&contactGenerator{},
		&dealGenerator{},
		&productGenerator{},
		&dealProductGenerator{},
		&activityGenerator{},
		&noteGenerator{},
		&taskGenerator{},
	}
	registry := make(map[string]Generator, len(gens))
	for _, g := range gens {
		registry[g.Table()] = g
	}
	return registry
}

func pickID(f *Faker, ids []int64) int64 {
	return ids[f.rand.Intn(len(ids))]
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type companyGenerator struct{}

func (companyGenerator) Table() string { return "companies" }

func (companyGenerator) Generate(f *Faker, p *Pools, count int) ([]store.Row, BindFunc, error) {
	// Negative counts generate nothing, same as zero.
	if count < 0 {
		count = 0
	}
	columns := []string{
		"name", "industry", "website", "address", "city", "state", "country",
		"postal_code", "phone", "employee_count", "annual_revenue", "created_at",
	}
	rows := make([]store.Row, 0, count)
	for i := 0; i < count; i++ {
		rows = append(rows, store.Row{Columns: columns, Values: []any{
			f.CompanyName(),
			f.pick(industries),
			f.URL(),
			f.StreetAddress(),
			f.City(),
			f.StateAbbr(),
			"USA",
			f.Zipcode(),
			f.Phone(),
			f.intBetween(10, 10000),
			float64(f.intBetween(100000, 100000000)),
			f.pastTime(3 * 365),
		}})
	}
	return rows, nil, nil
}

type contactGenerator struct{}

func (contactGenerator) Table() string { return "contacts" }

func (contactGenerator) Generate(f *Faker, p *Pools, count int) ([]store.Row, BindFunc, error) {
	if count < 0 {
		count = 0
	}
	companies := p.IDs["companies"]
	if count > 0 && len(companies) == 0 {
		return nil, nil, &MissingPrerequisiteError{Table: "companies", Needed: "contacts"}
	}

	columns := []string{
		"company_id", "first_name", "last_name", "email", "phone", "mobile",
		"title", "department", "linkedin_url", "is_primary", "created_at",
	}
	usedEmails := make(map[string]bool, count)
	chosenCompanies := make([]int64, 0, count)
	rows := make([]store.Row, 0, count)

	for i := 0; i < count; i++ {
		companyID := pickID(f, companies)
		department := f.pick(departments)
		title := f.pick(jobTitles[department])
		first := f.FirstName()
		last := f.LastName()

		local := strings.ToLower(first) + "." + strings.ToLower(last)
		email := local + "@" + f.Domain()
		for suffix := 1; usedEmails[email]; suffix++ {
			if suffix > maxUniqueAttempts {
				return nil, nil, &UniquenessExhaustedError{Table: "contacts", Column: "email"}
			}
			email = fmt.Sprintf("%s%d@%s", local, suffix, f.Domain())
		}
		usedEmails[email] = true

		chosenCompanies = append(chosenCompanies, companyID)
		rows = append(rows, store.Row{Columns: columns, Values: []any{
			companyID,
			first,
			last,
			email,
			f.Phone(),
			f.Phone(),
			title,
			department,
			fmt.Sprintf("https://linkedin.com/in/%s-%s-%s", strings.ToLower(first), strings.ToLower(last), f.Hex(8)),
			i%5 == 0,
			f.pastTime(2 * 365),
		}})
	}

	bind := func(ids []int64, p *Pools) {
		for i, id := range ids {
			p.ContactCompany[id] = chosenCompanies[i]
		}
	}
	return rows, bind, nil
}

type productGenerator struct{}

func (productGenerator) Table() string { return "products" }

func (productGenerator) Generate(f *Faker, p *Pools, count int) ([]store.Row, BindFunc, error) {
	if count < 0 {
		count = 0
	}
	columns := []string{"name", "description", "price", "sku", "category", "is_active", "created_at"}
	usedSKUs := make(map[string]bool, count)
	prices := make([]float64, 0, count)
	rows := make([]store.Row, 0, count)

	for i := 0; i < count; i++ {
		category := f.pick(productCategories)
		name := fmt.Sprintf("%s %s %s", f.pick(productPrefixes), category, f.pick(productTypes))

		sku := fmt.Sprintf("%s-%d", strings.ToUpper(category[:3]), f.intBetween(1000, 9999))
		attempts := 0
		for usedSKUs[sku] {
			attempts++
			if attempts > maxUniqueAttempts {
				return nil, nil, &UniquenessExhaustedError{Table: "products", Column: "sku"}
			}
			sku = fmt.Sprintf("%s-%d", strings.ToUpper(category[:3]), f.intBetween(1000, 9999))
		}
		usedSKUs[sku] = true

		price := round2(float64(f.intBetween(99, 99999)) + float64(f.rand.Intn(100))/100)
		prices = append(prices, price)
		rows = append(rows, store.Row{Columns: columns, Values: []any{
			name,
			f.Paragraph(2),
			price,
			sku,
			category,
			f.rand.Float64() > 0.1,
			f.pastTime(2 * 365),
		}})
	}

	bind := func(ids []int64, p *Pools) {
		for i, id := range ids {
			p.ProductPrice[id] = prices[i]
		}
	}
	return rows, bind, nil
}

type dealGenerator struct{}

func (dealGenerator) Table() string { return "deals" }

func (dealGenerator) Generate(f *Faker, p *Pools, count int) ([]store.Row, BindFunc, error) {
	if count < 0 {
		count = 0
	}
	companies := p.IDs["companies"]
	contacts := p.IDs["contacts"]
	if count > 0 && len(companies) == 0 {
		return nil, nil, &MissingPrerequisiteError{Table: "companies", Needed: "deals"}
	}
	if count > 0 && len(contacts) == 0 {
		return nil, nil, &MissingPrerequisiteError{Table: "contacts", Needed: "deals"}
	}

	columns := []string{
		"company_id", "contact_id", "title", "description", "value", "stage",
		"probability", "expected_close_date", "actual_close_date", "source", "created_at",
	}
	rows := make([]store.Row, 0, count)
	for i := 0; i < count; i++ {
		companyID := pickID(f, companies)

		// Only a contact belonging to the deal's company may be attached.
		// Iterate the ordered contact pool, not the map, so a fixed seed
		// reproduces the choice.
		var companyContacts []int64
		for _, cid := range contacts {
			if p.ContactCompany[cid] == companyID {
				companyContacts = append(companyContacts, cid)
			}
		}
		var contactID any
		if len(companyContacts) > 0 {
			contactID = pickID(f, companyContacts)
		}

		stage := dealStages[f.rand.Intn(len(dealStages))]
		probability := stage.Probability
		closed := stage.Name == "closed_won" || stage.Name == "closed_lost"
		if !closed {
			probability = clamp(probability+f.intBetween(-10, 10), 0, 100)
		}

		var actualClose any
		if closed {
			actualClose = f.dateAround(180, 0)
		}

		rows = append(rows, store.Row{Columns: columns, Values: []any{
			companyID,
			contactID,
			f.Buzz() + " Project",
			f.Paragraph(2),
			float64(f.intBetween(1000, 500000)),
			stage.Name,
			probability,
			f.dateAround(180, 180),
			actualClose,
			f.pick(dealSources),
			f.pastTime(365),
		}})
	}
	return rows, nil, nil
}

type dealProductGenerator struct{}

func (dealProductGenerator) Table() string { return "deal_products" }

func (dealProductGenerator) Generate(f *Faker, p *Pools, count int) ([]store.Row, BindFunc, error) {
	if count < 0 {
		count = 0
	}
	deals := p.IDs["deals"]
	products := p.IDs["products"]
	if count > 0 && len(deals) == 0 {
		return nil, nil, &MissingPrerequisiteError{Table: "deals", Needed: "deal_products"}
	}
	if count > 0 && len(products) == 0 {
		return nil, nil, &MissingPrerequisiteError{Table: "products", Needed: "deal_products"}
	}
	// Each (deal, product) pair is unique; past capacity the retry loop could
	// never finish, so refuse up front.
	if count > len(deals)*len(products) {
		return nil, nil, &UniquenessExhaustedError{Table: "deal_products", Column: "deal_id, product_id"}
	}

	columns := []string{"deal_id", "product_id", "quantity", "unit_price", "discount_percent"}
	discounts := []int{0, 0, 0, 5, 10, 15, 20}
	usedPairs := make(map[[2]int64]bool, count)
	rows := make([]store.Row, 0, count)

	for len(rows) < count {
		dealID := pickID(f, deals)
		productID := pickID(f, products)
		pair := [2]int64{dealID, productID}
		if usedPairs[pair] {
			continue
		}
		usedPairs[pair] = true

		base := p.ProductPrice[productID]
		unitPrice := round2(base * (0.8 + f.rand.Float64()*0.4))
		rows = append(rows, store.Row{Columns: columns, Values: []any{
			dealID,
			productID,
			f.intBetween(1, 20),
			unitPrice,
			discounts[f.rand.Intn(len(discounts))],
		}})
	}
	return rows, nil, nil
}

type activityGenerator struct{}

func (activityGenerator) Table() string { return "activities" }

func (activityGenerator) Generate(f *Faker, p *Pools, count int) ([]store.Row, BindFunc, error) {
	if count < 0 {
		count = 0
	}
	contacts := p.IDs["contacts"]
	if count > 0 && len(contacts) == 0 {
		return nil, nil, &MissingPrerequisiteError{Table: "contacts", Needed: "activities"}
	}

	columns := []string{"contact_id", "type", "subject", "notes", "duration_minutes", "activity_date"}
	rows := make([]store.Row, 0, count)
	for i := 0; i < count; i++ {
		activityType := f.pick(activityTypes)

		var notes any
		if f.rand.Float64() > 0.3 {
			notes = f.Paragraph(3)
		}
		// Only timed interactions carry a duration.
		var duration any
		if activityType == "call" || activityType == "meeting" || activityType == "demo" {
			duration = f.intBetween(5, 120)
		}

		rows = append(rows, store.Row{Columns: columns, Values: []any{
			pickID(f, contacts),
			activityType,
			f.pick(activitySubjects[activityType]),
			notes,
			duration,
			f.pastTime(365),
		}})
	}
	return rows, nil, nil
}

type noteGenerator struct{}

func (noteGenerator) Table() string { return "notes" }

func (noteGenerator) Generate(f *Faker, p *Pools, count int) ([]store.Row, BindFunc, error) {
	if count < 0 {
		count = 0
	}
	contacts := p.IDs["contacts"]
	if count > 0 && len(contacts) == 0 {
		return nil, nil, &MissingPrerequisiteError{Table: "contacts", Needed: "notes"}
	}

	columns := []string{"contact_id", "content", "created_at"}
	rows := make([]store.Row, 0, count)
	for i := 0; i < count; i++ {
		rows = append(rows, store.Row{Columns: columns, Values: []any{
			pickID(f, contacts),
			noteContent(f),
			f.pastTime(365),
		}})
	}
	return rows, nil, nil
}

// noteContent fills one of the note templates with matching arguments.
func noteContent(f *Faker) string {
	switch idx := f.rand.Intn(len(noteTemplates)); idx {
	case 0:
		return fmt.Sprintf(noteTemplates[idx], f.FullName(), strings.ToLower(f.Buzz()))
	case 1:
		return fmt.Sprintf(noteTemplates[idx], f.pick(decisionRoles), f.pick(budgetDepartments))
	case 2:
		return fmt.Sprintf(noteTemplates[idx], strings.ToLower(f.Buzz()), f.pick(callWindows))
	case 3:
		return fmt.Sprintf(noteTemplates[idx], f.CompanyName(), strings.ToLower(f.Buzz()))
	case 4:
		return fmt.Sprintf(noteTemplates[idx], f.pick(productPrefixes)+" "+f.pick(productTypes))
	case 5:
		return fmt.Sprintf(noteTemplates[idx], f.dateAround(0, 30).Format("January 2"))
	case 6:
		return fmt.Sprintf(noteTemplates[idx], strings.ToLower(f.Buzz()))
	default:
		return fmt.Sprintf(noteTemplates[idx],
			fmt.Sprintf("$%dK", f.intBetween(10, 500)),
			fmt.Sprintf("%d months", f.intBetween(1, 6)))
	}
}

type taskGenerator struct{}

func (taskGenerator) Table() string { return "tasks" }

func (taskGenerator) Generate(f *Faker, p *Pools, count int) ([]store.Row, BindFunc, error) {
	if count < 0 {
		count = 0
	}
	deals := p.IDs["deals"]
	if count > 0 && len(deals) == 0 {
		return nil, nil, &MissingPrerequisiteError{Table: "deals", Needed: "tasks"}
	}

	columns := []string{"deal_id", "title", "description", "due_date", "status", "priority", "completed_at", "created_at"}
	rows := make([]store.Row, 0, count)
	for i := 0; i < count; i++ {
		template := taskTemplates[f.rand.Intn(len(taskTemplates))]
		status := taskStatuses[f.pickWeighted(taskStatusWeights)]
		dueDate := f.dateAround(30, 60)

		// completed_at exists exactly when the status says completed, and
		// lands near the due date without reaching into the future.
		var completedAt any
		if status == "completed" {
			earliest := dueDate.AddDate(0, 0, -7)
			latest := dueDate.AddDate(0, 0, 3)
			if latest.After(f.now) {
				latest = f.now
			}
			if earliest.After(latest) {
				earliest = latest.AddDate(0, 0, -7)
			}
			completedAt = f.timeBetween(earliest, latest)
		}

		rows = append(rows, store.Row{Columns: columns, Values: []any{
			pickID(f, deals),
			template.Title,
			template.Description,
			dueDate,
			status,
			f.pick(taskPriorities),
			completedAt,
			f.pastTime(60),
		}})
	}
	return rows, nil, nil
}
