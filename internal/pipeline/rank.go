package pipeline

import (
	"sort"
	"strings"

	"cotador/internal"
	"cotador/internal/util"
)

// DefaultCandidateLimit bounds how many candidates are forwarded to the
// semantic oracle.
const DefaultCandidateLimit = 40

type scoredItem struct {
	item  internal.InventoryItem
	score int
}

// RankCandidates scores inventory items by how many query tokens appear as
// substrings of their normalized description and returns the top entries.
// Repeated query tokens count once each, so a duplicated token doubles its
// contribution. Ties keep catalog iteration order.
func RankCandidates(query string, items []internal.InventoryItem, limit int) []internal.InventoryItem {
	tokens := util.Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}

	scored := make([]scoredItem, 0)
	for _, item := range items {
		score := 0
		for _, token := range tokens {
			if strings.Contains(item.Normalized, token) {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, scoredItem{item: item, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if len(scored) > limit {
		scored = scored[:limit]
	}

	out := make([]internal.InventoryItem, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.item)
	}
	return out
}
