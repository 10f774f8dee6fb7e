// Command stimgen generates counterbalanced stimulus sets for the DOM
// grammaticality-judgment experiment: it loads the lexical-item table,
// runs the generation pipeline, and writes one CSV per presentation list.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/stimgen/export"
	"github.com/katalvlaran/stimgen/lexicon"
	"github.com/katalvlaran/stimgen/pipeline"
	"github.com/katalvlaran/stimgen/trial"
)

var (
	logger *zap.Logger

	flagConfig  string
	flagInput   string
	flagOutDir  string
	flagSeed    int64
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "stimgen",
	Short: "Counterbalanced DOM stimulus-set generator",
	Long: `stimgen builds the full stimulus table for a differential-object-marking
EEG experiment: verb×noun trials, balanced wrap-up nouns, three
counterbalanced lists, composed sentences, trigger codes and word timing.`,
	SilenceUsage: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the stimulus table and write one CSV per list",
	RunE:  runGenerate,
}

func main() {
	cobra.OnInitialize(initLogger)

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	generateCmd.Flags().StringVarP(&flagConfig, "config", "c", "stimgen.yaml", "run configuration (YAML)")
	generateCmd.Flags().StringVarP(&flagInput, "input", "i", "", "lexical-item table (CSV); overrides config")
	generateCmd.Flags().StringVarP(&flagOutDir, "out", "o", "", "output directory; overrides config")
	generateCmd.Flags().Int64Var(&flagSeed, "seed", 0, "base seed; overrides config")
	rootCmd.AddCommand(generateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initLogger builds the process logger; debug level behind --verbose.
func initLogger() {
	cfg := zap.NewProductionConfig()
	if flagVerbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	defer logger.Sync() //nolint:errcheck

	// Every log line of this run carries the run ID.
	log := logger.With(zap.String("run_id", uuid.NewString()))
	log.Info("starting generation run", zap.String("config", flagConfig))

	cfg, err := LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagInput != "" {
		cfg.Input = flagInput
	}
	if flagOutDir != "" {
		cfg.OutDir = flagOutDir
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if cfg.Input == "" {
		return fmt.Errorf("no input table: set --input or config 'input'")
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	items, err := lexicon.LoadCSV(f)
	f.Close()
	if err != nil {
		return err
	}
	log.Debug("lexicon loaded", zap.Int("items", len(items)))

	res, err := pipeline.Generate(items, opts)
	if err != nil {
		return err
	}
	log.Info("table generated",
		zap.Int("rows", len(res.Rows)),
		zap.Int64("seed", opts.Seed),
		zap.String("session", opts.Session),
		zap.String("language", opts.Language))

	for _, w := range res.Warnings {
		log.Warn("balance check failed", zap.String("column", w.Column), zap.Any("counts", w.Counts))
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	names, lists := export.SplitByList(res.Rows)
	for _, name := range names {
		path := filepath.Join(cfg.OutDir, fmt.Sprintf("stimuli_%s.csv", name))
		if err := writeList(path, lists[name]); err != nil {
			return err
		}
		log.Info("list written", zap.String("list", name), zap.String("path", path), zap.Int("rows", len(lists[name])))
	}
	return nil
}

// writeList serializes one list to its own file.
func writeList(path string, rows []trial.Trial) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
