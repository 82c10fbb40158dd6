package roles

import (
	"slices"
	"sort"
	"strings"
)

// Separator is used between roles in a serialized role string.
const Separator = ","

// Parse converts a comma-separated role string into a normalized slice.
// Entries are trimmed, empties dropped. Returns nil for empty input.
//
// Example:
//
//	r := roles.Parse("OrgLeader, Payroll, ")
//	// Returns: []string{"OrgLeader", "Payroll"}
func Parse(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	parts := strings.Split(s, Separator)
	out := make([]string, 0, len(parts))
	for i := range parts {
		if p := strings.TrimSpace(parts[i]); p != "" {
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// Join serializes a role slice back to a comma-separated string.
func Join(rs []string) string {
	if len(rs) == 0 {
		return ""
	}
	return strings.Join(rs, Separator)
}

// Normalize trims, drops empties and duplicates, and sorts the set so
// equal sets serialize identically. Returns nil for an effectively empty
// input.
func Normalize(rs []string) []string {
	if len(rs) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(rs))
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}

	if len(out) == 0 {
		return nil
	}

	sort.Strings(out)
	return out
}

// Has reports whether the set contains the role. Matching is exact; roles
// are a flat capability set, not a hierarchy.
func Has(set []string, role string) bool {
	return slices.Contains(set, role)
}

// HasAny reports whether the set contains at least one of the required
// roles. An empty required list is satisfied by definition.
func HasAny(set, required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if Has(set, r) {
			return true
		}
	}
	return false
}

// HasAll reports whether the set contains every required role.
func HasAll(set, required []string) bool {
	for _, r := range required {
		if !Has(set, r) {
			return false
		}
	}
	return true
}

// Equal reports whether two role sets hold the same members regardless of
// order or duplicates.
func Equal(a, b []string) bool {
	return slices.Equal(Normalize(a), Normalize(b))
}
