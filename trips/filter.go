package trips

import "regexp"

// FilterAll retains every record.
const FilterAll = "all"

var monthTokenRE = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidFilterToken reports whether token is "all" or a zero-padded YYYY-MM
// calendar month.
func ValidFilterToken(token string) bool {
	return token == FilterAll || monthTokenRE.MatchString(token)
}

// FilterByMonth retains the records whose start timestamp falls in the given
// calendar month. The token "all" (or an empty token) short-circuits to the
// unfiltered input. Records with unparseable start times never match a
// concrete month.
func FilterByMonth(records []TripRecord, token string) []TripRecord {
	if token == "" || token == FilterAll {
		return records
	}
	out := make([]TripRecord, 0, len(records))
	for _, r := range records {
		t, ok := parseStartTime(r.StartTime)
		if !ok {
			continue
		}
		if monthToken(t) == token {
			out = append(out, r)
		}
	}
	return out
}
