package emotion

// A Category is one of the fixed emotion labels scored by the Analyzer.
type Category string

const (
	Joy       Category = "joy"
	Sadness   Category = "sadness"
	Anger     Category = "anger"
	Fear      Category = "fear"
	Surprise  Category = "surprise"
	Love      Category = "love"
	Hope      Category = "hope"
	Gratitude Category = "gratitude"
)

// Categories is the fixed enumeration order. Dominant-emotion ties resolve to
// the category that appears first here.
var Categories = []Category{Joy, Sadness, Anger, Fear, Surprise, Love, Hope, Gratitude}

var (
	positiveCategories = []Category{Joy, Love, Hope, Gratitude}
	negativeCategories = []Category{Sadness, Anger, Fear}
)

// IsKnown reports whether c belongs to the fixed enumeration.
func (c Category) IsKnown() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Scores maps every category to an integer percentage in [0,100].
type Scores map[Category]int

// Positive sums joy, love, hope and gratitude.
func (s Scores) Positive() int {
	return s.sum(positiveCategories)
}

// Negative sums sadness, anger and fear. Surprise belongs to neither group.
func (s Scores) Negative() int {
	return s.sum(negativeCategories)
}

func (s Scores) sum(group []Category) int {
	total := 0
	for _, c := range group {
		total += s[c]
	}
	return total
}

// Sentiment is the overall polarity label of an analysis.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// PatternKind distinguishes stress triggers from positive glimmers.
type PatternKind string

const (
	Trigger PatternKind = "trigger"
	Glimmer PatternKind = "glimmer"
)

// A PatternMatch records a configured word found in a sentence.
type PatternMatch struct {
	Keyword string      `json:"keyword"`
	Context string      `json:"context"` // The trimmed sentence containing Keyword.
	Kind    PatternKind `json:"type"`
}

// Metadata holds descriptive counters about the analyzed text. None of them
// feed into scoring.
type Metadata struct {
	WordCount        int `json:"wordCount"`
	ContentWordCount int `json:"contentWordCount"`
	SentenceCount    int `json:"sentenceCount"`
	KeywordHits      int `json:"keywordHits"`
}

// AnalysisResult is the full output of a single Analyze call.
type AnalysisResult struct {
	Emotions        Scores         `json:"emotions"`
	DominantEmotion Category       `json:"dominantEmotion"`
	Triggers        []PatternMatch `json:"triggers"`
	Glimmers        []PatternMatch `json:"glimmers"`
	Insights        []string       `json:"insights"`
	Sentiment       Sentiment      `json:"sentiment"`
	Metadata        Metadata       `json:"metadata"`
}
