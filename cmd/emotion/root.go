package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tsawler/emotion"
	"github.com/tsawler/emotion/internal/journal"
)

var errEmptyText = errors.New("please write something first")

// app carries the state shared by all subcommands.
type app struct {
	cfg    *viper.Viper
	clock  clockwork.Clock
	logger *slog.Logger
}

func newRootCmd(clock clockwork.Clock) *cobra.Command {
	a := &app{cfg: viper.New(), clock: clock, logger: slog.Default()}

	rootCmd := &cobra.Command{
		Use:   "emotion",
		Short: "Lexicon-based emotion analysis for journal entries",
		Long: `emotion scores free-form text against a fixed emotion lexicon, reports
the dominant emotion and overall sentiment, and points out stress triggers
and positive glimmers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = newLogger(cmd.ErrOrStderr(), a.cfg.GetString("log-level"), a.cfg.GetString("log-format"))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("lexicon", "", "lexicon override file, JSON or YAML (or set EMOTION_LEXICON)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	a.cfg.SetEnvPrefix("emotion")
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()
	_ = a.cfg.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(a.analyzeCmd(), a.lexiconCmd(), a.statsCmd())
	return rootCmd
}

func (a *app) analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Analyze text given as arguments or on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				a.logger.Warn("nothing to analyze")
				return errEmptyText
			}

			analyzer, err := a.analyzer()
			if err != nil {
				return err
			}

			result := analyzer.Analyze(text)
			a.logger.Debug("analysis complete",
				"dominant", result.DominantEmotion,
				"sentiment", result.Sentiment,
				"keyword_hits", result.Metadata.KeywordHits)

			switch format, _ := cmd.Flags().GetString("format"); format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), result)
			case "text":
				writeReport(cmd.OutOrStdout(), result)
				return nil
			default:
				return fmt.Errorf("unknown output format %q", format)
			}
		},
	}
	cmd.Flags().String("format", "json", "output format: json or text")
	return cmd
}

func (a *app) lexiconCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lexicon",
		Short: "Validate the active lexicon and print its tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lexicon, err := emotion.LoadLexicon(a.cfg.GetString("lexicon"))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range emotion.Categories {
				cfg := lexicon.Categories[c]
				fmt.Fprintf(out, "%-10s %3d keywords  weight %.2f\n", c, len(cfg.Keywords), cfg.Weight)
			}
			fmt.Fprintf(out, "%-10s %3d words\n", "triggers", len(lexicon.Triggers))
			fmt.Fprintf(out, "%-10s %3d words\n", "glimmers", len(lexicon.Glimmers))
			return nil
		},
	}
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <entries.json>",
		Short: "Print journal statistics for a JSON array of entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read entries: %w", err)
			}

			var entries []journal.Entry
			if err := json.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("failed to parse entries: %w", err)
			}

			analyzer, err := a.analyzer()
			if err != nil {
				return err
			}

			entries = journal.Annotate(entries, analyzer)
			a.logger.Info("computing journal statistics", "entries", len(entries))
			return writeJSON(cmd.OutOrStdout(), journal.NewStats(a.clock).Report(entries))
		},
	}
}

func (a *app) analyzer() (*emotion.Analyzer, error) {
	path := a.cfg.GetString("lexicon")
	lexicon, err := emotion.LoadLexicon(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		a.logger.Info("loaded lexicon override", "path", path, "keywords", lexicon.KeywordCount())
	}
	return emotion.NewAnalyzer(emotion.WithLexicon(lexicon))
}

func readText(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeReport prints a result the way the journal dashboard lays it out.
func writeReport(w io.Writer, result emotion.AnalysisResult) {
	fmt.Fprintf(w, "Mood: %s\n", emotion.StatusLabel(result.DominantEmotion))
	fmt.Fprintf(w, "Sentiment: %s\n", result.Sentiment)

	fmt.Fprintln(w, "\nEmotions:")
	shown := false
	for _, c := range emotion.Categories {
		if score := result.Emotions[c]; score > 0 {
			fmt.Fprintf(w, "  %-10s %3d%%\n", c.Title(), score)
			shown = true
		}
	}
	if !shown {
		fmt.Fprintln(w, "  Write more to see emotions")
	}
	if tags := journal.Tags(result.Emotions); len(tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(tags, ", "))
	}

	fmt.Fprintln(w, "\nTriggers:")
	if len(result.Triggers) == 0 {
		fmt.Fprintln(w, "  No stress triggers detected. Great job!")
	}
	for _, m := range result.Triggers {
		fmt.Fprintf(w, "  %s: %s\n", m.Keyword, m.Context)
	}

	fmt.Fprintln(w, "\nGlimmers:")
	if len(result.Glimmers) == 0 {
		fmt.Fprintln(w, "  No specific positive moments detected, but that doesn't mean they weren't there!")
	}
	for _, m := range result.Glimmers {
		fmt.Fprintf(w, "  %s: %s\n", m.Keyword, m.Context)
	}

	if len(result.Insights) > 0 {
		fmt.Fprintln(w, "\nInsights:")
		for _, insight := range result.Insights {
			fmt.Fprintf(w, "  - %s\n", insight)
		}
	}
}
