package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ppiankov/triviaflag/internal/clean"
	"github.com/ppiankov/triviaflag/internal/dataset"
	"github.com/ppiankov/triviaflag/internal/lexicon"
	"github.com/ppiankov/triviaflag/internal/model"
	"github.com/ppiankov/triviaflag/internal/nlp"
	"github.com/ppiankov/triviaflag/internal/pipeline"
)

var inspectJSON bool

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <text>...",
	Short: "Show the flags of one or more question texts",
	Long: `Inspect runs every detector on the given texts and prints their flags.
The texts together form the corpus for unusual proper noun detection.

Example:
  triviaflag inspect "Henry VIII had six wives"
  triviaflag inspect --json "The zeitgeist of the Belle Époque"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "print flags as JSON")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	res, err := lexicon.Load(cfg.Lexicon)
	if err != nil {
		return err
	}

	analyzer, err := nlp.NewAnalyzer()
	if err != nil {
		return fmt.Errorf("load tagger: %w", err)
	}

	p, err := pipeline.NewPipeline(cfg, res, analyzer, nil)
	if err != nil {
		return err
	}

	records := make([]*model.Record, len(args))
	for i, text := range args {
		records[i] = &model.Record{ID: strconv.Itoa(i), Text: clean.Text(text)}
	}

	result, err := p.Run(context.Background(), records)
	if err != nil {
		return err
	}

	if inspectJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(result.Evaluations)
	}

	for _, e := range result.Evaluations {
		fmt.Printf("%s\n", bold.Sprint(e.Record.Text))
		for _, t := range dataset.DefaultTargets {
			mark := failMark()
			detail := ""
			if e.Flags.Get(t.Flag) {
				mark = okMark()
				detail = describe(e, t.Flag)
			}
			fmt.Printf("  %s %-24s %s\n", mark, t.Flag, detail)
		}
		if len(e.Flags.ProperNouns) > 0 {
			fmt.Printf("  proper nouns: %v\n", e.Flags.ProperNouns)
		}
		for _, w := range e.Warnings {
			fmt.Printf("  %s %s\n", warnMark(), w)
		}
		fmt.Println()
	}
	return nil
}
