package textutil

import (
	"regexp"
	"sort"
	"strings"
)

const (
	minTermLength   = 3
	maxDensityTerms = 10
)

var nonLetter = regexp.MustCompile(`[^a-z']+`)

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "her": {}, "was": {}, "one": {},
	"our": {}, "out": {}, "has": {}, "have": {}, "had": {}, "this": {},
	"that": {}, "with": {}, "from": {}, "they": {}, "will": {}, "would": {},
	"there": {}, "their": {}, "what": {}, "about": {}, "which": {}, "when": {},
	"your": {}, "more": {}, "been": {}, "were": {}, "into": {}, "than": {},
	"them": {}, "then": {}, "these": {}, "some": {}, "its": {}, "also": {},
}

// KeywordDensity maps the most frequent terms of a corpus to their normalized
// frequency in [0,1]. Terms shorter than three characters and common English
// stopwords are skipped; at most the top ten terms are returned. Keys are
// unique by construction.
func KeywordDensity(text string) map[string]float64 {
	tokens := strings.Fields(strings.ToLower(text))

	counts := make(map[string]int)
	total := 0
	for _, tok := range tokens {
		term := strings.Trim(nonLetter.ReplaceAllString(tok, ""), "'")
		if len(term) < minTermLength {
			continue
		}
		if _, skip := stopwords[term]; skip {
			continue
		}
		counts[term]++
		total++
	}

	density := make(map[string]float64)
	if total == 0 {
		return density
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	// Highest count first; alphabetical tie-break keeps output deterministic.
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > maxDensityTerms {
		terms = terms[:maxDensityTerms]
	}
	for _, term := range terms {
		density[term] = float64(counts[term]) / float64(total)
	}
	return density
}
