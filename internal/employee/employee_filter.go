package employee

import "strings"

// Filter applies the status filter first, then the search filter, keeping
// the source order. A fresh slice is always returned; the source is never
// mutated. With an empty term and a status other than active/inactive the
// result equals the input.
func Filter(records []Record, term, status string) []Record {
	want := strings.ToLower(status)
	byStatus := want == StatusActive || want == StatusInactive
	lowerTerm := strings.ToLower(term)

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if byStatus && strings.ToLower(r.Status) != want {
			continue
		}
		if term != "" && !matchesTerm(r, lowerTerm, term) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesTerm reports whether any searchable field matches: case-insensitive
// substring over name, email, department and role, and a digits-only
// case-sensitive substring over the mobile number.
func matchesTerm(r Record, lowerTerm, rawTerm string) bool {
	return strings.Contains(strings.ToLower(r.UserName), lowerTerm) ||
		strings.Contains(r.MobileNumber, rawTerm) ||
		strings.Contains(strings.ToLower(r.Email), lowerTerm) ||
		strings.Contains(strings.ToLower(r.Department), lowerTerm) ||
		strings.Contains(strings.ToLower(r.Role), lowerTerm)
}

// Page returns the 0-based page window, clipped to the list bounds. An
// out-of-range index yields an empty slice, never an error. Page is
// stateless: resetting the index to 0 when the filtered list changes is the
// caller's responsibility.
func Page(records []Record, pageIndex, pageSize int) []Record {
	if pageIndex < 0 || pageSize <= 0 {
		return []Record{}
	}

	start := pageIndex * pageSize
	if start >= len(records) {
		return []Record{}
	}

	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
