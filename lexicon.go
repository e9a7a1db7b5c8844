package emotion

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLexicon is wrapped by every lexicon validation failure.
var ErrInvalidLexicon = errors.New("invalid lexicon")

// CategoryConfig holds the keywords of one category and the multiplier
// applied to their hit count.
type CategoryConfig struct {
	Keywords []string `json:"keywords" yaml:"keywords"`
	Weight   float64  `json:"weight" yaml:"weight"`
}

// Lexicon is the configuration the Analyzer is built from. It is copied on
// construction, so changing a Lexicon after NewAnalyzer has no effect on the
// analyzer.
type Lexicon struct {
	Categories map[Category]CategoryConfig
	Triggers   []string // Stress words, used only for pattern extraction.
	Glimmers   []string // Positive words, used only for pattern extraction.
}

// ExternalLexicon is the on-disk shape of a lexicon override file. Only the
// listed categories are replaced; empty word lists keep the defaults.
type ExternalLexicon struct {
	Categories map[string]CategoryConfig `json:"categories" yaml:"categories"`
	Triggers   []string                  `json:"triggers,omitempty" yaml:"triggers,omitempty"`
	Glimmers   []string                  `json:"glimmers,omitempty" yaml:"glimmers,omitempty"`
}

// DefaultLexicon returns the reference configuration.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Categories: map[Category]CategoryConfig{
			Joy: {
				Keywords: []string{"happy", "joy", "excited", "cheerful", "delighted", "thrilled", "elated", "wonderful", "amazing", "fantastic", "great", "awesome", "love", "beautiful", "success", "achievement", "celebration", "blessed", "grateful", "laughed", "smile", "fun", "enjoyable"},
				Weight:   1,
			},
			Sadness: {
				Keywords: []string{"sad", "depressed", "disappointed", "heartbroken", "grief", "sorrow", "melancholy", "down", "blue", "cry", "crying", "tears", "lonely", "empty", "loss", "miss", "hurt", "pain", "devastated", "despair"},
				Weight:   1,
			},
			Anger: {
				Keywords: []string{"angry", "mad", "furious", "irritated", "annoyed", "frustrated", "rage", "hate", "disgusted", "outraged", "livid", "pissed", "upset", "resentful", "bitter", "hostile"},
				Weight:   1,
			},
			Fear: {
				Keywords: []string{"scared", "afraid", "fearful", "anxious", "worried", "nervous", "panic", "terrified", "frightened", "concerned", "stress", "stressed", "overwhelmed", "insecure", "uncertain", "doubt"},
				Weight:   1,
			},
			Surprise: {
				Keywords: []string{"surprised", "shocked", "amazed", "astonished", "unexpected", "sudden", "wow", "incredible", "unbelievable", "stunned"},
				Weight:   0.8,
			},
			Love: {
				Keywords: []string{"love", "adore", "cherish", "affection", "romantic", "relationship", "partner", "family", "care", "tender", "devoted", "passion"},
				Weight:   1.2,
			},
			Hope: {
				Keywords: []string{"hope", "optimistic", "positive", "future", "dream", "goal", "aspire", "believe", "faith", "confidence", "better", "improve"},
				Weight:   1,
			},
			Gratitude: {
				Keywords: []string{"grateful", "thankful", "appreciate", "blessed", "fortunate", "thank", "thanks", "appreciation"},
				Weight:   1.1,
			},
		},
		Triggers: []string{"stress", "pressure", "deadline", "conflict", "argument", "failure", "criticism", "rejection", "loss", "worry", "anxiety", "depression", "overwhelmed", "tired", "exhausted"},
		Glimmers: []string{"success", "achievement", "compliment", "support", "kindness", "breakthrough", "progress", "celebration", "friendship", "love", "inspiration", "creativity", "peace", "calm"},
	}
}

// LoadLexicon returns the default lexicon merged with the override file at
// path. An empty path returns the default lexicon unchanged.
func LoadLexicon(path string) (Lexicon, error) {
	lexicon := DefaultLexicon()
	if path == "" {
		return lexicon, nil
	}

	external, err := ReadExternalLexicon(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("failed to load external lexicon: %w", err)
	}
	if err := lexicon.Merge(external); err != nil {
		return Lexicon{}, err
	}
	if err := lexicon.Validate(); err != nil {
		return Lexicon{}, err
	}
	return lexicon, nil
}

// ReadExternalLexicon parses a JSON or YAML override file, chosen by extension.
func ReadExternalLexicon(path string) (ExternalLexicon, error) {
	var external ExternalLexicon

	data, err := os.ReadFile(path)
	if err != nil {
		return external, fmt.Errorf("error reading lexicon file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &external); err != nil {
			return external, fmt.Errorf("error parsing lexicon YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &external); err != nil {
			return external, fmt.Errorf("error parsing lexicon JSON: %w", err)
		}
	}
	return external, nil
}

// Merge applies an override onto the lexicon. Category names are matched
// case-insensitively and must belong to the fixed enumeration.
func (l *Lexicon) Merge(external ExternalLexicon) error {
	if l.Categories == nil {
		l.Categories = make(map[Category]CategoryConfig)
	}
	for name, cfg := range external.Categories {
		category := Category(strings.ToLower(strings.TrimSpace(name)))
		if !category.IsKnown() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidLexicon, name)
		}
		l.Categories[category] = CategoryConfig{
			Keywords: append([]string(nil), cfg.Keywords...),
			Weight:   cfg.Weight,
		}
	}
	if len(external.Triggers) > 0 {
		l.Triggers = append([]string(nil), external.Triggers...)
	}
	if len(external.Glimmers) > 0 {
		l.Glimmers = append([]string(nil), external.Glimmers...)
	}
	return nil
}

// Validate rejects tables that would distort normalization or tie-breaking.
func (l Lexicon) Validate() error {
	for name := range l.Categories {
		if !name.IsKnown() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidLexicon, name)
		}
	}

	for _, category := range Categories {
		cfg, ok := l.Categories[category]
		if !ok {
			return fmt.Errorf("%w: category %q is missing", ErrInvalidLexicon, category)
		}
		if cfg.Weight <= 0 || math.IsNaN(cfg.Weight) || math.IsInf(cfg.Weight, 0) {
			return fmt.Errorf("%w: category %q has weight %v", ErrInvalidLexicon, category, cfg.Weight)
		}
		if len(cfg.Keywords) == 0 {
			return fmt.Errorf("%w: category %q has no keywords", ErrInvalidLexicon, category)
		}
		if err := checkWords(cfg.Keywords); err != nil {
			return fmt.Errorf("%w: category %q: %v", ErrInvalidLexicon, category, err)
		}
	}

	if len(l.Triggers) == 0 {
		return fmt.Errorf("%w: trigger word list is empty", ErrInvalidLexicon)
	}
	if err := checkWords(l.Triggers); err != nil {
		return fmt.Errorf("%w: triggers: %v", ErrInvalidLexicon, err)
	}
	if len(l.Glimmers) == 0 {
		return fmt.Errorf("%w: glimmer word list is empty", ErrInvalidLexicon)
	}
	if err := checkWords(l.Glimmers); err != nil {
		return fmt.Errorf("%w: glimmers: %v", ErrInvalidLexicon, err)
	}
	return nil
}

// KeywordCount returns the number of scoring keywords across all categories.
func (l Lexicon) KeywordCount() int {
	n := 0
	for _, cfg := range l.Categories {
		n += len(cfg.Keywords)
	}
	return n
}

func (l Lexicon) clone() Lexicon {
	c := Lexicon{
		Categories: make(map[Category]CategoryConfig, len(l.Categories)),
		Triggers:   append([]string(nil), l.Triggers...),
		Glimmers:   append([]string(nil), l.Glimmers...),
	}
	for name, cfg := range l.Categories {
		c.Categories[name] = CategoryConfig{
			Keywords: append([]string(nil), cfg.Keywords...),
			Weight:   cfg.Weight,
		}
	}
	return c
}

func checkWords(words []string) error {
	for i, w := range words {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("word %d is blank", i)
		}
	}
	return nil
}
