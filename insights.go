package emotion

import "fmt"

const fallbackInsight = "Your emotional state shows interesting patterns worth exploring."

const (
	// dominantInsightThreshold is the percentage the dominant category must
	// exceed before its sentence is reported.
	dominantInsightThreshold = 20
	// balanceFactor is how many times larger one group must be for a
	// balance sentence.
	balanceFactor = 2
)

const (
	positiveBalanceInsight = "Your emotional balance seems quite positive today. This is wonderful for your mental health!"
	negativeBalanceInsight = "You might be experiencing some challenging emotions. Remember, it's okay to seek support when you need it."
)

func defaultInsights() map[Category]string {
	return map[Category]string{
		Joy:       "You're experiencing a lot of joy today! This positive energy can be contagious and beneficial for your overall well-being.",
		Sadness:   "It's okay to feel sad sometimes. These feelings are valid and part of the human experience. Consider reaching out to someone you trust.",
		Anger:     "You seem to be dealing with some frustration. Try taking deep breaths and identifying what's causing these feelings.",
		Fear:      "Anxiety and worry are common. Remember that it's okay to take things one step at a time.",
		Surprise:  "Something unexpected seems to have caught your attention. Take a moment to notice how it changed your day.",
		Love:      "Love and connection seem to be prominent in your thoughts. These relationships are precious - nurture them.",
		Hope:      "Your optimistic outlook is a strength. Hold onto this hope as it can guide you through challenges.",
		Gratitude: "Your grateful heart is beautiful. This appreciation for life's gifts contributes to your happiness.",
	}
}

// generateInsights composes up to four sentences, always in this order:
// dominant emotion, triggers, glimmers, balance.
func (a *Analyzer) generateInsights(emotions Scores, dominant Category, triggers, glimmers []PatternMatch) []string {
	insights := make([]string, 0, 4)

	if emotions[dominant] > dominantInsightThreshold {
		sentence, ok := a.insights[dominant]
		if !ok {
			sentence = a.fallback
		}
		insights = append(insights, sentence)
	}

	if n := len(triggers); n > 0 {
		insights = append(insights, fmt.Sprintf(
			"I noticed %d potential stress trigger%s in your entry. Identifying these patterns can help you manage them better.",
			n, plural(n)))
	}

	if n := len(glimmers); n > 0 {
		insights = append(insights, fmt.Sprintf(
			"Great news! I found %d positive moment%s in your writing. These 'glimmers' are important for your emotional well-being.",
			n, plural(n)))
	}

	positive, negative := emotions.Positive(), emotions.Negative()
	if positive > negative*balanceFactor {
		insights = append(insights, positiveBalanceInsight)
	} else if negative > positive*balanceFactor {
		insights = append(insights, negativeBalanceInsight)
	}

	return insights
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
