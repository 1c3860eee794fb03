package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/triviaflag/internal/model"
)

// version is overridden at build time with -ldflags
var version = "v0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "triviaflag",
	Short: "Triviaflag - flag trivia questions for dataset curation",
	Long: `Triviaflag scans a trivia question dataset and flags questions that
contain numbers (digits, spelled-out numbers, roman numerals), words that
are not known English, or proper nouns that are rare across the corpus.

Flagged questions are sampled into separate JSON files so each category
can be curated independently.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number of Triviaflag.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("triviaflag %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.triviaflag/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.triviaflag")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// TRIVIAFLAG_LEXICON_MODE overrides lexicon.mode, and so on
	viper.SetEnvPrefix("TRIVIAFLAG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	registerDefaults(model.DefaultConfig())

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// registerDefaults makes every config key known to viper so environment
// variables are honored by Unmarshal
func registerDefaults(cfg *model.Config) {
	viper.SetDefault("lexicon.mode", cfg.Lexicon.Mode)
	viper.SetDefault("lexicon.wordnet_dir", cfg.Lexicon.WordNetDir)
	viper.SetDefault("lexicon.wordlist_path", cfg.Lexicon.WordlistPath)
	viper.SetDefault("lexicon.stopwords_path", cfg.Lexicon.StopwordsPath)
	viper.SetDefault("detection.unusual_threshold", cfg.Detection.UnusualThreshold)
	viper.SetDefault("detection.excluded_tags", cfg.Detection.ExcludedTags)
	viper.SetDefault("input.text_field", cfg.Input.TextField)
	viper.SetDefault("concurrency.workers", cfg.Concurrency.Workers)
	viper.SetDefault("cache.enabled", cfg.Cache.Enabled)
	viper.SetDefault("cache.ttl", cfg.Cache.TTL)
	viper.SetDefault("export.output_dir", cfg.Export.OutputDir)
	viper.SetDefault("export.prefix", cfg.Export.Prefix)
	viper.SetDefault("export.sample_size", cfg.Export.SampleSize)
	viper.SetDefault("export.seed", cfg.Export.Seed)
	viper.SetDefault("output.preview_samples", cfg.Output.PreviewSamples)
}

// loadConfig merges defaults, config file and environment into a validated Config
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	return cfg, nil
}
