package emotion

// sentimentMargin is how far one group must exceed the other before the
// result leaves neutral. It applies symmetrically, leaving a dead zone.
const sentimentMargin = 1.2

// Classify derives the overall sentiment from category scores. Surprise is
// counted in neither group.
func Classify(scores Scores) Sentiment {
	positive := float64(scores.Positive())
	negative := float64(scores.Negative())

	switch {
	case positive > negative*sentimentMargin:
		return Positive
	case negative > positive*sentimentMargin:
		return Negative
	default:
		return Neutral
	}
}
