package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// UnknownTableError reports a table-spec token that is not part of the fixed
// enumeration. It is raised before any connection or generation happens.
type UnknownTableError struct {
	Token string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("unknown table %q (available tables: %s)", e.Token, strings.Join(Tables, ", "))
}

// ParseSpec parses a table-selection expression into a per-table count map.
//
// The grammar is a comma-separated list of tokens. The literal "all"
// (case-insensitive) expands to the full enumeration. Every other token is
// either "table" or "table:count". A bare table resolves to defaultCount
// when non-zero, else the table's built-in default. An explicit count is
// taken verbatim, including zero and negative values. Whitespace around
// tokens and the colon is ignored.
//
// The second return value lists the requested tables in the order they were
// named, without duplicates.
func ParseSpec(spec string, defaultCount int) (map[string]int, []string, error) {
	var tokens []string
	if strings.EqualFold(strings.TrimSpace(spec), "all") {
		tokens = Tables
	} else {
		tokens = strings.Split(spec, ",")
	}

	counts := make(map[string]int, len(tokens))
	var requested []string
	for _, token := range tokens {
		name := strings.TrimSpace(token)
		count := 0
		hasCount := false

		if idx := strings.Index(name, ":"); idx >= 0 {
			countStr := strings.TrimSpace(name[idx+1:])
			name = strings.TrimSpace(name[:idx])
			c, err := strconv.Atoi(countStr)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid count %q for table %q", countStr, name)
			}
			count = c
			hasCount = true
		}

		if !IsTable(name) {
			return nil, nil, &UnknownTableError{Token: name}
		}
		if !hasCount {
			if defaultCount != 0 {
				count = defaultCount
			} else {
				count = DefaultCounts[name]
			}
		}
		if _, seen := counts[name]; !seen {
			requested = append(requested, name)
		}
		counts[name] = count
	}
	return counts, requested, nil
}
