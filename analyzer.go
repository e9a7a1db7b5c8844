package emotion

import (
	"fmt"
	"math"
	"regexp"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// Analyzer scores text against a fixed emotion lexicon. It holds no mutable
// state after construction and is safe for concurrent use.
type Analyzer struct {
	matchers []categoryMatcher
	triggers []string
	glimmers []string
	insights map[Category]string
	fallback string
}

// categoryMatcher holds the compiled whole-word patterns of one category.
type categoryMatcher struct {
	category Category
	weight   float64
	keywords []*regexp.Regexp
}

// NewAnalyzer validates the configuration and compiles one case-insensitive,
// word-boundary pattern per keyword.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	base := defaultOptions()
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	if err := base.Lexicon.Validate(); err != nil {
		return nil, err
	}
	lexicon := base.Lexicon.clone()

	a := &Analyzer{
		matchers: make([]categoryMatcher, 0, len(Categories)),
		triggers: lexicon.Triggers,
		glimmers: lexicon.Glimmers,
		insights: make(map[Category]string, len(base.Insights)),
		fallback: base.Fallback,
	}
	for category, sentence := range base.Insights {
		a.insights[category] = sentence
	}

	for _, category := range Categories {
		cfg := lexicon.Categories[category]
		m := categoryMatcher{category: category, weight: cfg.Weight}
		for _, keyword := range cfg.Keywords {
			re, err := compileKeyword(keyword)
			if err != nil {
				return nil, fmt.Errorf("%w: keyword %q: %v", ErrInvalidLexicon, keyword, err)
			}
			m.keywords = append(m.keywords, re)
		}
		a.matchers = append(a.matchers, m)
	}

	return a, nil
}

// MustNewAnalyzer is like NewAnalyzer but panics on a configuration error.
func MustNewAnalyzer(opts ...Option) *Analyzer {
	a, err := NewAnalyzer(opts...)
	if err != nil {
		panic(err)
	}
	return a
}

var (
	defaultAnalyzer     *Analyzer
	defaultAnalyzerOnce sync.Once
)

// Analyze runs text through an Analyzer built from the reference lexicon.
func Analyze(text string) AnalysisResult {
	defaultAnalyzerOnce.Do(func() {
		defaultAnalyzer = MustNewAnalyzer()
	})
	return defaultAnalyzer.Analyze(text)
}

// Analyze produces the full analysis of text. Every input, including the
// empty string, yields a well-defined result.
func (a *Analyzer) Analyze(text string) AnalysisResult {
	emotions, dominant, hits := a.Score(text)

	sentences := splitSentences(text)
	triggers := extractPatterns(sentences, a.triggers, Trigger)
	glimmers := extractPatterns(sentences, a.glimmers, Glimmer)

	return AnalysisResult{
		Emotions:        emotions,
		DominantEmotion: dominant,
		Triggers:        triggers,
		Glimmers:        glimmers,
		Insights:        a.generateInsights(emotions, dominant, triggers, glimmers),
		Sentiment:       Classify(emotions),
		Metadata:        describe(text, len(sentences), hits),
	}
}

// Score returns the normalized category percentages, the dominant category
// and the total number of keyword hits.
func (a *Analyzer) Score(text string) (Scores, Category, int) {
	raw := make([]float64, len(a.matchers))
	hits := 0

	for i, m := range a.matchers {
		for _, re := range m.keywords {
			n := len(re.FindAllStringIndex(text, -1))
			hits += n
			raw[i] += float64(n) * m.weight
		}
	}

	scores := make(Scores, len(a.matchers))
	total := floats.Sum(raw)
	for i, m := range a.matchers {
		if total > 0 {
			// math.Round rounds half away from zero; raw shares are never
			// negative, so this matches round-half-up.
			scores[m.category] = int(math.Round(raw[i] / total * 100))
		} else {
			scores[m.category] = 0
		}
	}

	return scores, dominantCategory(scores), hits
}

// dominantCategory returns the highest-scoring category. Only a strictly
// greater score replaces the current best, so ties go to the earliest
// category in enumeration order.
func dominantCategory(scores Scores) Category {
	best := Categories[0]
	for _, c := range Categories[1:] {
		if scores[c] > scores[best] {
			best = c
		}
	}
	return best
}

func compileKeyword(keyword string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
}
