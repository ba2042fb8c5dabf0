package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the optional config file read from the working directory.
const DefaultPath = "mindguard.yml"

// Config holds all MindGuard configuration.
type Config struct {
	Dataset   DatasetConfig   `yaml:"dataset"`
	Model     ModelConfig     `yaml:"model"`
	Stopwords StopwordsConfig `yaml:"stopwords"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// DatasetConfig locates the training CSV.
type DatasetConfig struct {
	Path string `yaml:"path"`
}

// ModelConfig configures training and the confidence floor.
type ModelConfig struct {
	MinConfidence float64 `yaml:"min_confidence"`
	Alpha         float64 `yaml:"alpha"`
	NGramMin      int     `yaml:"ngram_min"`
	NGramMax      int     `yaml:"ngram_max"`
}

// StopwordsConfig selects the stop word corpus: "nltk" or "bbalet".
type StopwordsConfig struct {
	Source string `yaml:"source"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{Path: "mental_stress_data.csv"},
		Model: ModelConfig{
			MinConfidence: 0.55,
			Alpha:         1.0,
			NGramMin:      1,
			NGramMax:      2,
		},
		Stopwords: StopwordsConfig{Source: "nltk"},
		Logging:   LoggingConfig{Level: "warn"},
	}
}

// Load reads the YAML file at path over the defaults, then applies a .env
// file if present and MINDGUARD_* environment overrides. Keys absent from the
// file keep their defaults; keys present keep their value, zero included. A
// missing file at the default path is not an error; a missing explicit path
// is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	// .env is optional
	_ = godotenv.Load()

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("MINDGUARD_DATASET"); v != "" {
		c.Dataset.Path = v
	}
	if v := os.Getenv("MINDGUARD_MIN_CONFIDENCE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("MINDGUARD_MIN_CONFIDENCE: %w", err)
		}
		c.Model.MinConfidence = f
	}
	if v := os.Getenv("MINDGUARD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MINDGUARD_STOPWORDS"); v != "" {
		c.Stopwords.Source = v
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return errors.New("dataset.path must not be empty")
	}
	if c.Model.MinConfidence < 0 || c.Model.MinConfidence > 1 {
		return fmt.Errorf("model.min_confidence must be within [0, 1], got %g", c.Model.MinConfidence)
	}
	if c.Model.Alpha <= 0 {
		return fmt.Errorf("model.alpha must be > 0, got %g", c.Model.Alpha)
	}
	if c.Model.NGramMin < 1 || c.Model.NGramMax < c.Model.NGramMin {
		return fmt.Errorf("invalid n-gram range [%d, %d]", c.Model.NGramMin, c.Model.NGramMax)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// NewLogger builds a logger writing to stderr, leaving stdout to the
// interactive dialogue.
func (c *Config) NewLogger(verbose bool) (*zap.Logger, error) {
	var zc zap.Config
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
