package journal

import (
	"fmt"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/tsawler/emotion"
	"gonum.org/v1/gonum/stat"
)

const (
	recentLimit    = 5
	moodWindow     = 10
	previewLength  = 100
	badgeThreshold = 20
	maxBadges      = 3
	tagThreshold   = 15
)

// Mood summarizes the sentiment of recent entries.
type Mood string

const (
	MoodPositive Mood = "Positive"
	MoodNegative Mood = "Negative"
	MoodNeutral  Mood = "Neutral"
)

// Summary is the short form of an entry used in history lists.
type Summary struct {
	ID      string             `json:"id"`
	Date    time.Time          `json:"date"`
	Preview string             `json:"preview"`
	Badges  []emotion.Category `json:"badges"`
}

// Report bundles every statistic for a set of entries.
type Report struct {
	EntriesToday int       `json:"entriesToday"`
	Streak       int       `json:"streak"`
	OverallMood  Mood      `json:"overallMood,omitempty"`
	MoodTrend    float64   `json:"moodTrend"`
	Recent       []Summary `json:"recent"`
}

// Stats computes journal statistics relative to the clock's current day.
// Entry slices are expected newest first.
type Stats struct {
	clock clockwork.Clock
}

func NewStats(clock clockwork.Clock) *Stats {
	return &Stats{clock: clock}
}

// Report computes all statistics at once.
func (s *Stats) Report(entries []Entry) Report {
	return Report{
		EntriesToday: s.EntriesToday(entries),
		Streak:       s.Streak(entries),
		OverallMood:  OverallMood(entries),
		MoodTrend:    MoodTrend(entries),
		Recent:       Recent(entries),
	}
}

// EntriesToday counts entries written on the current calendar day.
func (s *Stats) EntriesToday(entries []Entry) int {
	now := s.clock.Now()
	today := dayOf(now, now.Location())

	n := 0
	for _, e := range entries {
		if dayOf(e.Date, now.Location()).Equal(today) {
			n++
		}
	}
	return n
}

// Streak counts consecutive days with at least one entry, ending today. A day
// without entries today means a streak of zero.
func (s *Stats) Streak(entries []Entry) int {
	now := s.clock.Now()
	loc := now.Location()

	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, e := range entries {
		d := dayOf(e.Date, loc)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	current := dayOf(now, loc)
	for _, d := range days {
		if d.After(current) {
			continue
		}
		if !d.Equal(current) {
			break
		}
		streak++
		current = current.AddDate(0, 0, -1)
	}
	return streak
}

// OverallMood compares positive and negative sentiment across the most recent
// analyzed entries. It returns "" when no entry has an analysis.
func OverallMood(entries []Entry) Mood {
	var positive, negative, analyzed int
	for _, e := range entries {
		if e.Analysis == nil {
			continue
		}
		switch e.Analysis.Sentiment {
		case emotion.Positive:
			positive++
		case emotion.Negative:
			negative++
		}
		analyzed++
		if analyzed == moodWindow {
			break
		}
	}

	switch {
	case analyzed == 0:
		return ""
	case positive > negative:
		return MoodPositive
	case negative > positive:
		return MoodNegative
	default:
		return MoodNeutral
	}
}

// MoodTrend is the mean difference between the positive and negative shares
// of every analyzed entry, in percentage points.
func MoodTrend(entries []Entry) float64 {
	var balances []float64
	for _, e := range entries {
		if e.Analysis != nil {
			scores := e.Analysis.Emotions
			balances = append(balances, float64(scores.Positive()-scores.Negative()))
		}
	}
	if len(balances) == 0 {
		return 0
	}
	return stat.Mean(balances, nil)
}

// Recent summarizes the newest entries.
func Recent(entries []Entry) []Summary {
	if len(entries) > recentLimit {
		entries = entries[:recentLimit]
	}

	summaries := make([]Summary, 0, len(entries))
	for _, e := range entries {
		summary := Summary{
			ID:      e.ID.String(),
			Date:    e.Date,
			Preview: Preview(e.Text),
			Badges:  []emotion.Category{},
		}
		if e.Analysis != nil {
			summary.Badges = Badges(e.Analysis.Emotions)
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// Preview shortens text to previewLength runes followed by "...".
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}

// Badges returns up to three categories scoring above 20, in enumeration order.
func Badges(scores emotion.Scores) []emotion.Category {
	badges := []emotion.Category{}
	for _, c := range emotion.Categories {
		if scores[c] > badgeThreshold {
			badges = append(badges, c)
			if len(badges) == maxBadges {
				break
			}
		}
	}
	return badges
}

// Tags formats every category scoring above 15, e.g. "Joy 65%".
func Tags(scores emotion.Scores) []string {
	var tags []string
	for _, c := range emotion.Categories {
		if scores[c] > tagThreshold {
			tags = append(tags, fmt.Sprintf("%s %d%%", c.Title(), scores[c]))
		}
	}
	return tags
}

func dayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
