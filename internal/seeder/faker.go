package seeder

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Faker is the synthetic value source. It owns its *rand.Rand, so two fakers
// built from the same seed produce the same stream and nothing touches the
// process-wide random state.
type Faker struct {
	rand *rand.Rand
	now  time.Time
}

func NewFaker(seed int64) *Faker {
	// The anchor is truncated to midnight so two fakers built with the same
	// seed on the same day emit identical timestamps.
	return &Faker{
		rand: rand.New(rand.NewSource(seed)),
		now:  time.Now().UTC().Truncate(24 * time.Hour),
	}
}

func (f *Faker) pick(values []string) string {
	return values[f.rand.Intn(len(values))]
}

// pickWeighted samples an index with the given relative weights.
func (f *Faker) pickWeighted(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := f.rand.Intn(total)
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

func (f *Faker) intBetween(low, high int) int {
	return low + f.rand.Intn(high-low+1)
}

// timeBetween returns a timestamp uniformly drawn from [from, to].
func (f *Faker) timeBetween(from, to time.Time) time.Time {
	span := to.Unix() - from.Unix()
	if span <= 0 {
		return from
	}
	return time.Unix(from.Unix()+f.rand.Int63n(span+1), 0).UTC()
}

// pastTime returns a timestamp up to daysBack days before the run started.
func (f *Faker) pastTime(daysBack int) time.Time {
	return f.timeBetween(f.now.AddDate(0, 0, -daysBack), f.now)
}

// dateAround returns a date between daysBack days ago and daysAhead days out,
// truncated to midnight.
func (f *Faker) dateAround(daysBack, daysAhead int) time.Time {
	t := f.timeBetween(f.now.AddDate(0, 0, -daysBack), f.now.AddDate(0, 0, daysAhead))
	return t.Truncate(24 * time.Hour)
}

func (f *Faker) CompanyName() string {
	return f.pick(companyStems) + " " + f.pick(companySuffixes)
}

func (f *Faker) FirstName() string {
	return f.pick(firstNames)
}

func (f *Faker) LastName() string {
	return f.pick(lastNames)
}

func (f *Faker) FullName() string {
	return f.FirstName() + " " + f.LastName()
}

func (f *Faker) Domain() string {
	return f.pick(emailDomains)
}

func (f *Faker) URL() string {
	return fmt.Sprintf("https://www.%s/page/%d", f.Domain(), f.rand.Intn(1000))
}

func (f *Faker) StreetAddress() string {
	return fmt.Sprintf("%d %s %s", f.intBetween(1, 9999), f.pick(streetNames), f.pick(streetTypes))
}

func (f *Faker) City() string {
	return f.pick(cities)
}

func (f *Faker) StateAbbr() string {
	return f.pick(stateAbbrs)
}

func (f *Faker) Zipcode() string {
	return fmt.Sprintf("%05d", f.rand.Intn(100000))
}

func (f *Faker) Phone() string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", f.intBetween(200, 999), f.rand.Intn(1000), f.rand.Intn(10000))
}

// Buzz produces a marketing phrase like "Streamline Scalable Workflows".
func (f *Faker) Buzz() string {
	return f.pick(buzzVerbs) + " " + f.pick(buzzAdjectives) + " " + f.pick(buzzNouns)
}

// Paragraph strings together n stock sentences.
func (f *Faker) Paragraph(n int) string {
	sentences := make([]string, 0, n)
	for i := 0; i < n; i++ {
		sentences = append(sentences, f.pick(sentenceStock))
	}
	return strings.Join(sentences, " ")
}

func (f *Faker) Hex(n int) string {
	const digits = "0123456789abcdef"
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(digits[f.rand.Intn(len(digits))])
	}
	return b.String()
}
