package journal

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/tsawler/emotion"
)

var ErrEmptyEntry = errors.New("entry text is empty")

// Analyzer is the subset of emotion.Analyzer needed to annotate entries.
type Analyzer interface {
	Analyze(text string) emotion.AnalysisResult
}

// Entry is one journal entry, optionally carrying the analysis taken when it
// was saved.
type Entry struct {
	ID       uuid.UUID               `json:"id"`
	Text     string                  `json:"text"`
	Date     time.Time               `json:"date"`
	Analysis *emotion.AnalysisResult `json:"analysis,omitempty"`
}

// NewEntry creates an entry stamped with the clock's current time. The text is
// trimmed and must not be empty.
func NewEntry(text string, analysis *emotion.AnalysisResult, clock clockwork.Clock) (Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}, ErrEmptyEntry
	}
	return Entry{
		ID:       uuid.New(),
		Text:     text,
		Date:     clock.Now(),
		Analysis: analysis,
	}, nil
}

// Annotate returns a copy of entries where every entry without an analysis
// has been analyzed.
func Annotate(entries []Entry, analyzer Analyzer) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	for i := range out {
		if out[i].Analysis == nil {
			result := analyzer.Analyze(out[i].Text)
			out[i].Analysis = &result
		}
	}
	return out
}
