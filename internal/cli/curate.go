package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/triviaflag/internal/dataset"
	"github.com/ppiankov/triviaflag/internal/lexicon"
	"github.com/ppiankov/triviaflag/internal/model"
	"github.com/ppiankov/triviaflag/internal/nlp"
	"github.com/ppiankov/triviaflag/internal/pipeline"
)

var (
	curateWorkers    int
	curateMode       string
	curateThreshold  int
	curateOutputDir  string
	curatePrefix     string
	curateSampleSize int
	curateSeed       uint64
	curateAnnotated  string
	curateWordNetDir string
	curateWordlist   string
	curateStopwords  string
	curateTextField  string
	curateNoCache    bool
	curateNoPreview  bool
)

// curateCmd represents the curate command
var curateCmd = &cobra.Command{
	Use:   "curate <dataset.json>",
	Short: "Flag every question in a dataset and export samples",
	Long: `Curate evaluates every question of a JSON dataset (an array of objects)
and flags questions that contain:
- numbers: digits, spelled-out numbers or roman numerals
- non-English words: content words no English lexicon knows
- unusual proper nouns: proper nouns that occur rarely across the corpus

For each flag a seeded random sample of flagged questions is written to
<output-dir>/<prefix>_{numbers,non_english,unusual_proper_nouns}.json.

Example:
  triviaflag curate JEOPARDY_QUESTIONS1.json
  triviaflag curate questions.json --mode wordlist --threshold 3 --workers 8
  triviaflag curate questions.json --annotated all_flags.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCurate,
}

func init() {
	rootCmd.AddCommand(curateCmd)

	// Lexicon flags
	curateCmd.Flags().StringVar(&curateMode, "mode", "either", "lexicon mode (sense, wordlist, either)")
	curateCmd.Flags().StringVar(&curateWordNetDir, "wordnet-dir", "./data/wordnet", "WordNet dict directory (index.* and *.exc files)")
	curateCmd.Flags().StringVar(&curateWordlist, "wordlist", "./data/words.txt", "English wordlist, one word per line")
	curateCmd.Flags().StringVar(&curateStopwords, "stopwords", "", "stopword file (default: built-in English list)")

	// Detection flags
	curateCmd.Flags().IntVar(&curateThreshold, "threshold", 2, "highest corpus count at which a proper noun is unusual")
	curateCmd.Flags().StringVar(&curateTextField, "text-field", "question", "JSON field holding the question text")
	curateCmd.Flags().IntVarP(&curateWorkers, "workers", "c", 0, "number of evaluation workers (default: number of CPUs)")
	curateCmd.Flags().BoolVar(&curateNoCache, "no-cache", false, "disable the isolated-word tag cache")

	// Output flags
	curateCmd.Flags().StringVarP(&curateOutputDir, "output-dir", "o", "./export", "directory for sampled exports")
	curateCmd.Flags().StringVar(&curatePrefix, "prefix", "JEOPARDY_QUESTIONS", "export file name prefix")
	curateCmd.Flags().IntVar(&curateSampleSize, "sample-size", 1000, "max questions exported per flag")
	curateCmd.Flags().Uint64Var(&curateSeed, "seed", 42, "sampling seed")
	curateCmd.Flags().StringVar(&curateAnnotated, "annotated", "", "also write every question with its flags to this path")
	curateCmd.Flags().BoolVar(&curateNoPreview, "no-preview", false, "skip the console preview of sampled questions")
}

// applyCurateFlags overrides configuration with explicitly set flags
func applyCurateFlags(cmd *cobra.Command, cfg *model.Config) {
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Lexicon.Mode = curateMode
	}
	if flags.Changed("wordnet-dir") {
		cfg.Lexicon.WordNetDir = curateWordNetDir
	}
	if flags.Changed("wordlist") {
		cfg.Lexicon.WordlistPath = curateWordlist
	}
	if flags.Changed("stopwords") {
		cfg.Lexicon.StopwordsPath = curateStopwords
	}
	if flags.Changed("threshold") {
		cfg.Detection.UnusualThreshold = curateThreshold
	}
	if flags.Changed("text-field") {
		cfg.Input.TextField = curateTextField
	}
	if flags.Changed("workers") {
		cfg.Concurrency.Workers = curateWorkers
	}
	if curateNoCache {
		cfg.Cache.Enabled = false
	}
	if flags.Changed("output-dir") {
		cfg.Export.OutputDir = curateOutputDir
	}
	if flags.Changed("prefix") {
		cfg.Export.Prefix = curatePrefix
	}
	if flags.Changed("sample-size") {
		cfg.Export.SampleSize = curateSampleSize
	}
	if flags.Changed("seed") {
		cfg.Export.Seed = curateSeed
	}
	if curateNoPreview {
		cfg.Output.PreviewSamples = 0
	}
	cfg.Output.Verbose = cfg.Output.Verbose || verbose
}

func runCurate(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyCurateFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printBanner(os.Stderr, "Triviaflag Curation")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Lexicon mode: %s\n", cfg.Lexicon.Mode)
	fmt.Fprintf(os.Stderr, "  Threshold:    %d\n", cfg.Detection.UnusualThreshold)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", cfg.Export.OutputDir)
	fmt.Fprintf(os.Stderr, "\n")

	// Lexicons are loaded before anything else: without them no record can be evaluated
	fmt.Fprintf(os.Stderr, "⚙️  Loading lexicons...\n")
	res, err := lexicon.Load(cfg.Lexicon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", failMark(), err)
		return err
	}
	fmt.Fprintf(os.Stderr, "%s WordNet: %d lemmas, wordlist: %d words, stopwords: %d\n",
		okMark(), res.WordNet.Len(), res.Wordlist.Len(), len(res.Stopwords))

	analyzer, err := nlp.NewAnalyzer()
	if err != nil {
		return fmt.Errorf("load tagger: %w", err)
	}

	fmt.Fprintf(os.Stderr, "⚙️  Reading dataset...\n")
	loaded, err := dataset.Load(file, cfg.Input.TextField)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s Loaded %d questions\n", okMark(), len(loaded.Records))
	for _, merr := range loaded.Malformed {
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "%s %v\n", warnMark(), merr)
		}
	}
	if n := len(loaded.Malformed); n > 0 {
		fmt.Fprintf(os.Stderr, "%s %d malformed questions evaluated as empty text\n", warnMark(), n)
	}

	p, err := pipeline.NewPipeline(cfg, res, analyzer, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "⚙️  Evaluating with %d workers...\n", cfg.Concurrency.Workers)
	result, err := p.Run(ctx, loaded.Records)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "%s Interrupted\n", failMark())
		}
		return err
	}
	fmt.Fprintf(os.Stderr, "%s Evaluated %d questions in %v (%d distinct words, %d unusual)\n",
		okMark(), len(result.Evaluations), result.Duration.Round(time.Millisecond), result.Index.Len(), len(result.Index.Unusual()))

	if cfg.Output.Verbose {
		for _, e := range result.Evaluations {
			for _, w := range e.Warnings {
				fmt.Fprintf(os.Stderr, "%s %s\n", warnMark(), w)
			}
		}
		fmt.Fprintf(os.Stderr, "  Cached isolated tags: %d\n", p.CachedTags())
		fmt.Fprintf(os.Stderr, "  Most frequent words:")
		for _, wc := range result.Index.Top(10) {
			fmt.Fprintf(os.Stderr, " %s(%d)", wc.Word, wc.Count)
		}
		fmt.Fprintf(os.Stderr, "\n")
	}

	if cfg.Output.PreviewSamples > 0 {
		printBanner(os.Stdout, "Sample Flagged Questions")
		printPreview(os.Stdout, result.Evaluations, previewFlags, cfg.Output.PreviewSamples, cfg.Export.Seed)
	}

	paths, err := dataset.ExportSamples(cfg.Export.OutputDir, cfg.Export.Prefix, result.Evaluations,
		dataset.DefaultTargets, cfg.Export.SampleSize, cfg.Export.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", failMark(), err)
		return err
	}
	for _, path := range paths {
		fmt.Fprintf(os.Stderr, "%s Wrote %s\n", okMark(), path)
	}

	if curateAnnotated != "" {
		if err := dataset.WriteAnnotated(curateAnnotated, result.Evaluations); err != nil {
			return fmt.Errorf("write annotated dataset: %w", err)
		}
		fmt.Fprintf(os.Stderr, "%s Wrote %s\n", okMark(), curateAnnotated)
	}

	printBanner(os.Stderr, "Curation Complete")
	printSummary(os.Stderr, result.Summary)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
