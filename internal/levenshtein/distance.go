// Package levenshtein measures edit distance between domain names.
package levenshtein

// Distance computes the Levenshtein edit distance between two strings,
// counting runes rather than bytes. Memory use is O(min(m,n)).
func Distance(s, t string) int {
	a, b := []rune(s), []rune(t)
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return len(b)
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j, bc := range b {
		diag := row[0]
		row[0] = j + 1
		for i, ac := range a {
			cost := 1
			if ac == bc {
				cost = 0
			}
			next := min(row[i+1]+1, row[i]+1, diag+cost)
			diag = row[i+1]
			row[i+1] = next
		}
	}
	return row[len(a)]
}

// Closest returns the candidate nearest to s within maxDist edits.
// An exact match returns "" because there is nothing to correct.
// Ties keep the earlier candidate.
func Closest(s string, candidates []string, maxDist int) string {
	best, bestDist := "", maxDist+1
	for _, c := range candidates {
		if c == s {
			return ""
		}
		if d := Distance(s, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
