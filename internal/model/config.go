package model

import (
	"fmt"
	"runtime"
	"time"
)

// Config holds the complete triviaflag configuration
type Config struct {
	Lexicon     LexiconConfig     `yaml:"lexicon" mapstructure:"lexicon"`
	Detection   DetectionConfig   `yaml:"detection" mapstructure:"detection"`
	Input       InputConfig       `yaml:"input" mapstructure:"input"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Export      ExportConfig      `yaml:"export" mapstructure:"export"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// LexiconConfig locates the English lexical resources
type LexiconConfig struct {
	Mode          string `yaml:"mode" mapstructure:"mode"`                     // sense, wordlist or either
	WordNetDir    string `yaml:"wordnet_dir" mapstructure:"wordnet_dir"`       // Directory with index.* and *.exc files
	WordlistPath  string `yaml:"wordlist_path" mapstructure:"wordlist_path"`   // One English word per line
	StopwordsPath string `yaml:"stopwords_path" mapstructure:"stopwords_path"` // Optional; built-in English list if empty
}

// DetectionConfig tunes the detectors
type DetectionConfig struct {
	UnusualThreshold int      `yaml:"unusual_threshold" mapstructure:"unusual_threshold"` // Max corpus count for an unusual word
	ExcludedTags     []string `yaml:"excluded_tags" mapstructure:"excluded_tags"`         // POS tags skipped by non-English detection
}

// InputConfig describes the input dataset
type InputConfig struct {
	TextField string `yaml:"text_field" mapstructure:"text_field"`
}

// ConcurrencyConfig controls the evaluation worker pool
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// CacheConfig controls the isolated-word tag memo
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"` // 0 keeps entries for the whole run
}

// ExportConfig controls sampled exports
type ExportConfig struct {
	OutputDir  string `yaml:"output_dir" mapstructure:"output_dir"`
	Prefix     string `yaml:"prefix" mapstructure:"prefix"`
	SampleSize int    `yaml:"sample_size" mapstructure:"sample_size"`
	Seed       uint64 `yaml:"seed" mapstructure:"seed"`
}

// OutputConfig controls console output
type OutputConfig struct {
	Verbose        bool `yaml:"verbose" mapstructure:"verbose"`
	PreviewSamples int  `yaml:"preview_samples" mapstructure:"preview_samples"`
}

// DefaultExcludedTags are the closed-class Penn Treebank tags skipped by
// non-English detection: proper nouns and function words.
var DefaultExcludedTags = []string{
	"NNP", "NNPS", "IN", "DT", "WP", "WP$", "WRB", "PRP", "PRP$", "CC", "TO", "MD", "EX", "UH",
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Lexicon: LexiconConfig{
			Mode:         "either",
			WordNetDir:   "./data/wordnet",
			WordlistPath: "./data/words.txt",
		},
		Detection: DetectionConfig{
			UnusualThreshold: 2,
			ExcludedTags:     append([]string(nil), DefaultExcludedTags...),
		},
		Input: InputConfig{
			TextField: "question",
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Export: ExportConfig{
			OutputDir:  "./export",
			Prefix:     "JEOPARDY_QUESTIONS",
			SampleSize: 1000,
			Seed:       42,
		},
		Output: OutputConfig{
			PreviewSamples: 3,
		},
	}
}

// Validate checks the configuration for values the pipeline cannot run with
func (c *Config) Validate() error {
	if c.Detection.UnusualThreshold < 0 {
		return fmt.Errorf("detection.unusual_threshold must be >= 0, got %d", c.Detection.UnusualThreshold)
	}
	if c.Input.TextField == "" {
		return fmt.Errorf("input.text_field must not be empty")
	}
	if c.Export.SampleSize < 0 {
		return fmt.Errorf("export.sample_size must be >= 0, got %d", c.Export.SampleSize)
	}
	if c.Concurrency.Workers <= 0 {
		c.Concurrency.Workers = 1
	}
	return nil
}
