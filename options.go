package emotion

// An Option changes how NewAnalyzer builds an Analyzer.
//
// For example, it might load an alternative lexicon:
//
//	lexicon, _ := emotion.LoadLexicon("lexicon.yaml")
//	analyzer, err := emotion.NewAnalyzer(emotion.WithLexicon(lexicon))
type Option func(opts *Options)

// Options controls Analyzer construction.
type Options struct {
	Lexicon  Lexicon              // Scoring and pattern tables
	Insights map[Category]string // Sentence per dominant category
	Fallback string               // Used when Insights has no entry for the dominant category
}

// WithLexicon replaces the reference lexicon.
func WithLexicon(lexicon Lexicon) Option {
	return func(opts *Options) {
		opts.Lexicon = lexicon
	}
}

// WithInsights replaces the dominant-emotion insight table. Categories
// missing from table produce the fallback sentence.
func WithInsights(table map[Category]string) Option {
	return func(opts *Options) {
		opts.Insights = table
	}
}

// WithFallbackInsight sets the sentence used when the insight table has no
// entry for the dominant category.
func WithFallbackInsight(sentence string) Option {
	return func(opts *Options) {
		opts.Fallback = sentence
	}
}

func defaultOptions() Options {
	return Options{
		Lexicon:  DefaultLexicon(),
		Insights: defaultInsights(),
		Fallback: fallbackInsight,
	}
}
