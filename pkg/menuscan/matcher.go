package menuscan

import (
	"math"
	"strings"
)

// DefaultMatchThreshold is the minimum similarity score (0..100) accepted
// when matching scanned or OCR-detected names against catalog dishes.
const DefaultMatchThreshold = 60

// Similarity scores two names on a 0..100 scale. Comparison is
// case-insensitive after trimming; an exact match scores 100, otherwise the
// score derives from the normalized Levenshtein edit distance.
func Similarity(a, b string) int {
	left := strings.ToLower(strings.TrimSpace(a))
	right := strings.ToLower(strings.TrimSpace(b))

	if left == right {
		return 100
	}

	longer := len([]rune(left))
	if l := len([]rune(right)); l > longer {
		longer = l
	}
	if longer == 0 {
		return 100
	}

	distance := levenshtein([]rune(left), []rune(right))
	return int(math.Round((1 - float64(distance)/float64(longer)) * 100))
}

// Match is a catalog candidate accepted by BestMatch.
type Match struct {
	Index int
	Name  string
	Score int
}

// BestMatch returns the candidate with the strictly highest similarity to
// name, at or above threshold. Ties keep the first candidate encountered;
// this is deterministic but makes no claim of being the best possible match.
func BestMatch(name string, candidates []string, threshold int) (Match, bool) {
	if threshold <= 0 {
		threshold = DefaultMatchThreshold
	}

	best := Match{Index: -1}
	for i, candidate := range candidates {
		score := Similarity(name, candidate)
		if score < threshold {
			continue
		}
		if best.Index == -1 || score > best.Score {
			best = Match{Index: i, Name: candidate, Score: score}
		}
	}

	return best, best.Index != -1
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	previous := make([]int, len(b)+1)
	current := make([]int, len(b)+1)
	for j := range previous {
		previous[j] = j
	}

	for i := 1; i <= len(a); i++ {
		current[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			current[j] = minInt(
				previous[j]+1,
				current[j-1]+1,
				previous[j-1]+cost,
			)
		}
		previous, current = current, previous
	}

	return previous[len(b)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
