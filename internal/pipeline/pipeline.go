// Package pipeline wires the detectors into the two-stage curation run:
// a sequential pass that freezes the corpus frequency index, then a
// parallel pass that evaluates every record against it.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ppiankov/triviaflag/internal/cache"
	"github.com/ppiankov/triviaflag/internal/detect"
	"github.com/ppiankov/triviaflag/internal/lexicon"
	"github.com/ppiankov/triviaflag/internal/model"
	"github.com/ppiankov/triviaflag/internal/nlp"
	"github.com/ppiankov/triviaflag/internal/worker"
)

// Pipeline orchestrates index building and record evaluation
type Pipeline struct {
	analyzer  nlp.TokenTagger
	numbers   *detect.NumberDetector
	foreign   *detect.ForeignDetector
	nounCache cache.Cache
	threshold int
	workers   int
	progress  io.Writer
}

// Result is the outcome of a complete run
type Result struct {
	Evaluations []model.Evaluation // One per input record, in input order
	Index       *detect.FrequencyIndex
	Summary     model.Summary
	Duration    time.Duration
}

// NewPipeline creates a pipeline over loaded lexical resources.
// progress receives throttled progress lines and may be nil.
func NewPipeline(cfg *model.Config, res *lexicon.Resources, analyzer nlp.TokenTagger, progress io.Writer) (*Pipeline, error) {
	mode, err := lexicon.ParseMode(cfg.Lexicon.Mode)
	if err != nil {
		return nil, err
	}

	oracle, err := res.Oracle(mode)
	if err != nil {
		return nil, err
	}

	var nounCache cache.Cache = cache.Nop{}
	if cfg.Cache.Enabled {
		nounCache = cache.NewMemoryCache(cfg.Cache.TTL, time.Minute)
	}

	excluded := cfg.Detection.ExcludedTags
	if excluded == nil {
		excluded = model.DefaultExcludedTags
	}

	roman := detect.NewRomanDetector(nlp.NewIsolatedNounChecker(analyzer, nounCache))

	return &Pipeline{
		analyzer:  analyzer,
		numbers:   detect.NewNumberDetector(analyzer, roman),
		foreign:   detect.NewForeignDetector(res.WordNet, oracle, res.Stopwords, excluded),
		nounCache: nounCache,
		threshold: cfg.Detection.UnusualThreshold,
		workers:   cfg.Concurrency.Workers,
		progress:  progress,
	}, nil
}

// BuildIndex counts every word of the corpus. It must complete before any
// record is evaluated for unusual proper nouns.
func (p *Pipeline) BuildIndex(records []*model.Record) (*detect.FrequencyIndex, error) {
	texts := make([]string, len(records))
	for i, rec := range records {
		texts[i] = rec.Text
	}

	index, err := detect.BuildFrequencyIndex(p.analyzer, texts, p.threshold)
	if err != nil {
		return nil, fmt.Errorf("build frequency index: %w", err)
	}
	return index, nil
}

// Evaluator returns a record evaluator bound to a frozen index
func (p *Pipeline) Evaluator(index *detect.FrequencyIndex) (worker.Evaluator, error) {
	unusual, err := detect.NewUnusualDetector(index)
	if err != nil {
		return nil, err
	}
	return &evaluator{pipeline: p, unusual: unusual}, nil
}

// Run builds the index from records and then evaluates them concurrently
func (p *Pipeline) Run(ctx context.Context, records []*model.Record) (*Result, error) {
	start := time.Now()

	index, err := p.BuildIndex(records)
	if err != nil {
		return nil, err
	}

	eval, err := p.Evaluator(index)
	if err != nil {
		return nil, err
	}

	processor := worker.NewBatchProcessor(eval, p.workers, p.progress)
	evals, err := processor.ProcessRecords(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("evaluate records: %w", err)
	}

	return &Result{
		Evaluations: evals,
		Index:       index,
		Summary:     model.Summarize(evals),
		Duration:    time.Since(start),
	}, nil
}

// CachedTags returns the number of memoized isolated-word tags
func (p *Pipeline) CachedTags() int {
	return p.nounCache.Len()
}

// evaluator runs every detector on one record. It only reads shared,
// immutable state and is safe for concurrent use.
type evaluator struct {
	pipeline *Pipeline
	unusual  *detect.UnusualDetector
}

func (e *evaluator) Evaluate(rec *model.Record) model.Evaluation {
	eval := model.Evaluation{Record: rec, Flags: model.EmptyFlags()}
	if rec.Malformed {
		eval.Warnings = append(eval.Warnings, fmt.Sprintf("record %s: %v", rec.ID, model.ErrMalformedRecord))
		return eval
	}

	numbers := e.pipeline.numbers.Detect(rec.Text)
	eval.Flags.RomanNumerals = numbers.RomanNumerals
	eval.Flags.HasSpelledNumber = numbers.HasSpelledNumber
	eval.Flags.HasRomanNumeral = numbers.HasRomanNumeral
	eval.Flags.HasNumericalValue = numbers.HasNumericalValue
	eval.Flags.HasNumber = numbers.HasNumber

	// Non-English and proper noun detection share one contextual tagging
	tokens, err := nlp.TagText(e.pipeline.analyzer, rec.Text)
	if err != nil {
		eval.Warnings = append(eval.Warnings, fmt.Sprintf("record %s: %v", rec.ID, err))
		return eval
	}

	eval.Flags.NonEnglishWords = e.pipeline.foreign.Find(tokens)
	eval.Flags.HasNonEnglishWord = len(eval.Flags.NonEnglishWords) > 0

	eval.Flags.ProperNouns = detect.ExtractProperNouns(tokens)
	eval.Flags.HasUnusualProperNoun = e.unusual.HasUnusual(eval.Flags.ProperNouns)
	eval.UnusualProperNouns = e.unusual.Unusual(eval.Flags.ProperNouns)

	return eval
}
