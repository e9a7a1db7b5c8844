package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsawler/emotion"
)

var now = time.Date(2026, time.October, 19, 15, 30, 0, 0, time.UTC)

func entryAt(t time.Time, sentiment emotion.Sentiment) Entry {
	e := Entry{Text: "entry", Date: t}
	if sentiment != "" {
		e.Analysis = &emotion.AnalysisResult{Sentiment: sentiment, Emotions: emotion.Scores{}}
	}
	return e
}

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func TestNewEntry(t *testing.T) {
	clock := clockwork.NewFakeClockAt(now)

	e, err := NewEntry("  Dear diary  ", nil, clock)
	require.NoError(t, err)
	assert.Equal(t, "Dear diary", e.Text)
	assert.Equal(t, now, e.Date)
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Nil(t, e.Analysis)
}

func TestNewEntry_Empty(t *testing.T) {
	_, err := NewEntry(" \n ", nil, clockwork.NewFakeClockAt(now))
	assert.ErrorIs(t, err, ErrEmptyEntry)
}

func TestAnnotate(t *testing.T) {
	existing := &emotion.AnalysisResult{Sentiment: emotion.Negative}
	entries := []Entry{
		{Text: "I am so happy and grateful today"},
		{Text: "kept", Analysis: existing},
	}

	annotated := Annotate(entries, emotion.MustNewAnalyzer())

	require.Len(t, annotated, 2)
	require.NotNil(t, annotated[0].Analysis)
	assert.Equal(t, emotion.Positive, annotated[0].Analysis.Sentiment)
	assert.Same(t, existing, annotated[1].Analysis)
	assert.Nil(t, entries[0].Analysis, "input must not be modified")
}

func TestEntriesToday(t *testing.T) {
	stats := NewStats(clockwork.NewFakeClockAt(now))
	entries := []Entry{
		entryAt(now, ""),
		entryAt(time.Date(2026, time.October, 19, 0, 5, 0, 0, time.UTC), ""),
		entryAt(daysAgo(1), ""),
	}

	assert.Equal(t, 2, stats.EntriesToday(entries))
	assert.Equal(t, 0, stats.EntriesToday(nil))
}

func TestStreak(t *testing.T) {
	stats := NewStats(clockwork.NewFakeClockAt(now))

	tests := []struct {
		name     string
		entries  []Entry
		expected int
	}{
		{"no entries", nil, 0},
		{"today only", []Entry{entryAt(now, "")}, 1},
		{"three consecutive days", []Entry{entryAt(now, ""), entryAt(daysAgo(1), ""), entryAt(daysAgo(2), "")}, 3},
		{"duplicates on a day", []Entry{entryAt(now, ""), entryAt(now.Add(-time.Hour), ""), entryAt(daysAgo(1), "")}, 2},
		{"gap breaks the streak", []Entry{entryAt(now, ""), entryAt(daysAgo(2), ""), entryAt(daysAgo(3), "")}, 1},
		{"nothing today", []Entry{entryAt(daysAgo(1), ""), entryAt(daysAgo(2), "")}, 0},
		{"unsorted input", []Entry{entryAt(daysAgo(1), ""), entryAt(now, "")}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stats.Streak(tt.entries))
		})
	}
}

func TestOverallMood(t *testing.T) {
	assert.Equal(t, Mood(""), OverallMood([]Entry{entryAt(now, "")}))
	assert.Equal(t, MoodPositive, OverallMood([]Entry{
		entryAt(now, emotion.Positive), entryAt(now, emotion.Neutral), entryAt(now, ""),
	}))
	assert.Equal(t, MoodNegative, OverallMood([]Entry{
		entryAt(now, emotion.Negative), entryAt(now, emotion.Negative), entryAt(now, emotion.Positive),
	}))
	assert.Equal(t, MoodNeutral, OverallMood([]Entry{
		entryAt(now, emotion.Negative), entryAt(now, emotion.Positive),
	}))
}

func TestOverallMood_OnlyTenMostRecent(t *testing.T) {
	var entries []Entry
	for i := 0; i < 10; i++ {
		entries = append(entries, entryAt(now, emotion.Neutral))
	}
	for i := 0; i < 5; i++ {
		entries = append(entries, entryAt(now, emotion.Negative))
	}

	assert.Equal(t, MoodNeutral, OverallMood(entries))
}

func TestMoodTrend(t *testing.T) {
	assert.Zero(t, MoodTrend(nil))

	entries := []Entry{
		{Analysis: &emotion.AnalysisResult{Emotions: emotion.Scores{emotion.Joy: 80, emotion.Sadness: 20}}},
		{Analysis: &emotion.AnalysisResult{Emotions: emotion.Scores{emotion.Fear: 100}}},
		{Text: "not analyzed"},
	}
	assert.InDelta(t, -20.0, MoodTrend(entries), 1e-9)
}

func TestRecent(t *testing.T) {
	long := strings.Repeat("a", 150)
	entries := []Entry{
		{Text: long, Date: now, Analysis: &emotion.AnalysisResult{Emotions: emotion.Scores{emotion.Joy: 65, emotion.Gratitude: 35}}},
	}
	for i := 0; i < 6; i++ {
		entries = append(entries, entryAt(daysAgo(i+1), ""))
	}

	recent := Recent(entries)

	require.Len(t, recent, 5)
	assert.Equal(t, strings.Repeat("a", 100)+"...", recent[0].Preview)
	assert.Equal(t, []emotion.Category{emotion.Joy, emotion.Gratitude}, recent[0].Badges)
	assert.Empty(t, recent[1].Badges)
	assert.Equal(t, "entry", recent[1].Preview)
}

func TestPreview_Runes(t *testing.T) {
	text := strings.Repeat("é", 100)
	assert.Equal(t, text, Preview(text))
	assert.Equal(t, text+"...", Preview(text+"é"))
}

func TestBadges_AtMostThree(t *testing.T) {
	scores := emotion.Scores{
		emotion.Joy: 21, emotion.Sadness: 21, emotion.Anger: 21, emotion.Fear: 21, emotion.Hope: 16,
	}
	assert.Equal(t, []emotion.Category{emotion.Joy, emotion.Sadness, emotion.Anger}, Badges(scores))
}

func TestTags(t *testing.T) {
	scores := emotion.Scores{emotion.Joy: 65, emotion.Gratitude: 35, emotion.Hope: 15}
	assert.Equal(t, []string{"Joy 65%", "Gratitude 35%"}, Tags(scores))
	assert.Empty(t, Tags(emotion.Scores{}))
}

func TestReport(t *testing.T) {
	stats := NewStats(clockwork.NewFakeClockAt(now))
	analyzer := emotion.MustNewAnalyzer()

	var entries []Entry
	for _, text := range []string{"I am so happy and grateful today", "Feeling sad and lonely"} {
		result := analyzer.Analyze(text)
		e, err := NewEntry(text, &result, clockwork.NewFakeClockAt(now))
		require.NoError(t, err)
		entries = append(entries, e)
	}

	report := stats.Report(entries)

	assert.Equal(t, 2, report.EntriesToday)
	assert.Equal(t, 1, report.Streak)
	assert.Equal(t, MoodNeutral, report.OverallMood)
	assert.InDelta(t, 0.0, report.MoodTrend, 1e-9)
	assert.Len(t, report.Recent, 2)
}
