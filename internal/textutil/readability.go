package textutil

import (
	"regexp"
	"strings"
)

var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

// Readability computes the Flesch Reading Ease score for a text corpus:
//
//	206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
//
// Sentences are runs of sentence terminators. Returns 0 when the corpus has
// no words or no sentence terminators. The score may be negative for
// low-quality text.
func Readability(text string) float64 {
	words := strings.Fields(text)
	sentences := len(sentenceTerminators.FindAllString(text, -1))

	if len(words) == 0 || sentences == 0 {
		return 0
	}

	syllables := 0
	for _, word := range words {
		syllables += CountSyllables(word)
	}

	return 206.835 -
		1.015*(float64(len(words))/float64(sentences)) -
		84.6*(float64(syllables)/float64(len(words)))
}

// CountSyllables estimates syllables in a word by counting vowel-group
// transitions, with a correction for a trailing silent e. Every word counts
// as at least one syllable.
func CountSyllables(word string) int {
	word = strings.ToLower(word)
	if word == "" {
		return 1
	}

	const vowels = "aeiouy"
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
