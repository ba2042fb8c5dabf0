package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/mindguard"
	"github.com/tsawler/mindguard/internal/config"
)

var (
	// Global flags
	configPath    string
	datasetPath   string
	minConfidence float64
	verbose       bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd runs the interactive loop
var rootCmd = &cobra.Command{
	Use:   "mindguard",
	Short: "MindGuard: Mental Stress Detector",
	Long: `MindGuard classifies how you describe your feelings as stress, no stress
or unsure.

A short keyword rule table answers first; anything it does not recognise is
passed to a Naive Bayes classifier trained at startup on the CSV dataset
(columns "text" and "label").

Run without arguments to start the interactive prompt; type 'exit' to quit.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default mindguard.yml if present)")
	rootCmd.PersistentFlags().StringVarP(&datasetPath, "dataset", "d", mindguard.DefaultDatasetPath, "training CSV with text and label columns")
	rootCmd.PersistentFlags().Float64Var(&minConfidence, "min-confidence", float64(mindguard.DefaultConfidence), "minimum class probability to trust the classifier")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	rootCmd.AddCommand(classifyCmd)
}

// setup loads configuration, applies flags over it and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dataset") {
		cfg.Dataset.Path = datasetPath
	}
	if flags.Changed("min-confidence") {
		cfg.Model.MinConfidence = minConfidence
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = cfg.NewLogger(verbose)
	return err
}

// buildPredictor loads the dataset and trains the model once.
func buildPredictor(cfg *config.Config, logger *zap.Logger) (*mindguard.Predictor, error) {
	records, err := mindguard.LoadCSV(cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("dataset loaded", zap.String("path", cfg.Dataset.Path), zap.Int("records", len(records)))

	stops, err := mindguard.StopwordsFromSource(mindguard.StopwordSource(cfg.Stopwords.Source))
	if err != nil {
		return nil, err
	}

	training := mindguard.DefaultTrainingConfig()
	training.Alpha = cfg.Model.Alpha
	training.NGramMin = cfg.Model.NGramMin
	training.NGramMax = cfg.Model.NGramMax
	training.Normalizer = mindguard.NewNormalizer(mindguard.UsingStopwords(stops))
	training.Logger = logger

	model, _, err := mindguard.NewTrainer(training).Train(records)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	model.Name = cfg.Dataset.Path

	predictorConfig := mindguard.DefaultPredictorConfig()
	predictorConfig.MinConfidence = mindguard.ConfidenceLevel(cfg.Model.MinConfidence)
	return mindguard.NewPredictor(model, predictorConfig, logger), nil
}

// reportError prints err the way the user should see it: a missing dataset
// on out, anything else on errOut.
func reportError(out, errOut io.Writer, err error) {
	if errors.Is(err, mindguard.ErrDatasetMissing) {
		path := mindguard.DefaultDatasetPath
		if cfg != nil {
			path = cfg.Dataset.Path
		}
		fmt.Fprintf(out, "ERROR: '%s' not found!\n", path)
		return
	}
	fmt.Fprintf(errOut, "ERROR: %v\n", err)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
