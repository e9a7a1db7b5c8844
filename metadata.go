package emotion

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// contentLanguage is the ISO 639-1 code handed to the stop-word filter. The
// lexicon is English-only.
const contentLanguage = "en"

// describe fills the descriptive counters of a result.
func describe(text string, sentenceCount, keywordHits int) Metadata {
	return Metadata{
		WordCount:        len(strings.Fields(text)),
		ContentWordCount: countContentWords(text),
		SentenceCount:    sentenceCount,
		KeywordHits:      keywordHits,
	}
}

// countContentWords counts the words left once English stop words are removed.
func countContentWords(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return len(strings.Fields(stopwords.CleanString(text, contentLanguage, false)))
}
