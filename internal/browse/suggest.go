package browse

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/bookshelf/internal/domain"
)

// Suggestions offers catalog titles close to the active title query when
// the submitted filter matched nothing. It never touches the MatchSet.
func (b *Browser) Suggestions(limit int) []string {
	query := strings.TrimSpace(b.Filter().TitleQuery)
	if !b.EmptyState() || query == "" || limit < 1 {
		return nil
	}
	return SuggestTitles(query, b.books, limit)
}

// SuggestTitles ranks titles by fuzzy distance to query, closest first.
// Ties keep catalog order.
func SuggestTitles(query string, books []*domain.Book, limit int) []string {
	titles := make([]string, len(books))
	for i, bk := range books {
		titles[i] = bk.Title
	}

	ranks := fuzzy.RankFindFold(query, titles)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	var out []string
	seen := make(map[string]bool)
	for _, r := range ranks {
		if seen[r.Target] {
			continue
		}
		seen[r.Target] = true
		out = append(out, r.Target)
		if len(out) == limit {
			break
		}
	}
	return out
}
