package cluster

import (
	"sort"

	"github.com/sshhmmoonnyyaa/Basenko-friend-finder/core"
)

// TopTokens counts token occurrences across the member token lists and
// returns the n most frequent, most frequent first. Ties are broken by the
// order in which tokens were first seen, which keeps the output stable for
// identical input.
func TopTokens(members [][]string, n int) []core.TokenCount {
	counts := make(map[string]int)
	var order []string

	for _, tokens := range members {
		for _, tok := range tokens {
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	firstSeen := make(map[string]int, len(order))
	for i, tok := range order {
		firstSeen[tok] = i
	}

	sort.Slice(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if n > len(order) {
		n = len(order)
	}
	top := make([]core.TokenCount, 0, n)
	for _, tok := range order[:n] {
		top = append(top, core.TokenCount{Token: tok, Count: counts[tok]})
	}
	return top
}
