package emotion

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// sentenceBoundaryRE treats a run of terminators as a single boundary.
var sentenceBoundaryRE = regexp.MustCompile(`[.!?]+`)

// splitSentences splits text on '.', '!' and '?'. Delimiters are dropped,
// each sentence is trimmed, and empty sentences are skipped.
func splitSentences(text string) []string {
	var sentences []string
	for _, s := range sentenceBoundaryRE.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// ExtractPatterns returns one match per (word, sentence) pair in which the
// sentence contains the word as a case-insensitive substring.
func ExtractPatterns(text string, words []string, kind PatternKind) []PatternMatch {
	return extractPatterns(splitSentences(text), words, kind)
}

// extractPatterns groups results by word: words are visited in their
// configured order and, for each word, sentences in document order.
func extractPatterns(sentences []string, words []string, kind PatternKind) []PatternMatch {
	matches := []PatternMatch{}
	if len(sentences) == 0 {
		return matches
	}

	// Casers keep internal state, so each call gets its own.
	lower := cases.Lower(language.English)
	folded := make([]string, len(sentences))
	for i, s := range sentences {
		folded[i] = lower.String(s)
	}

	for _, word := range words {
		needle := lower.String(word)
		for i, sentence := range folded {
			if strings.Contains(sentence, needle) {
				matches = append(matches, PatternMatch{
					Keyword: word,
					Context: sentences[i],
					Kind:    kind,
				})
			}
		}
	}
	return matches
}
