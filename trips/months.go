package trips

import (
	"sort"
	"time"
)

// MonthOption is a selectable month filter value with a display label.
type MonthOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AvailableMonths lists "all" followed by the distinct calendar months
// observed in the dataset, ascending.
func AvailableMonths(records []TripRecord) []MonthOption {
	seen := map[string]bool{}
	for _, r := range records {
		if t, ok := parseStartTime(r.StartTime); ok {
			seen[monthToken(t)] = true
		}
	}
	tokens := make([]string, 0, len(seen))
	for tok := range seen {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)

	out := make([]MonthOption, 0, len(tokens)+1)
	out = append(out, MonthOption{Value: FilterAll, Label: "All Months"})
	for _, tok := range tokens {
		label := tok
		if t, err := time.Parse("2006-01", tok); err == nil {
			label = t.Format("January 2006")
		}
		out = append(out, MonthOption{Value: tok, Label: label})
	}
	return out
}
