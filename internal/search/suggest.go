package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases a string and strips diacritics so "Tập" and "tap"
// compare equal. Đ/đ does not decompose and is mapped by hand.
func Fold(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case 'Đ', 'đ':
			return 'd'
		}
		return r
	}, s)

	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Suggest ranks past queries by edit distance to the given input over the
// diacritic-folded forms. Ties keep recency order. An empty input simply
// returns the most recent queries.
func (s *Store) Suggest(input string, n int) []string {
	history := s.History()
	if n <= 0 || len(history) == 0 {
		return nil
	}

	if strings.TrimSpace(input) == "" {
		if len(history) > n {
			history = history[:n]
		}
		return history
	}

	target := Fold(input)
	distances := make([]int, len(history))
	for i, h := range history {
		distances[i] = levenshtein.ComputeDistance(target, Fold(h))
	}

	order := make([]int, len(history))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return distances[order[a]] < distances[order[b]]
	})

	out := make([]string, 0, n)
	for _, idx := range order {
		if len(out) >= n {
			break
		}
		out = append(out, history[idx])
	}
	return out
}
