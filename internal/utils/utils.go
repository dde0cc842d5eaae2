package utils

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/vitebski/mysql-model-generator/pkg/models"
)

// ConfigurationError reports missing or contradictory run settings.
// It is fatal and aborts before any query is issued.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// SetupLogging configures the logging system
func SetupLogging(logLevel string) *logrus.Logger {
	// Create a new logger
	logger := logrus.New()

	// Get log level from environment variable or parameter
	levelStr := logLevel
	if levelStr == "" {
		levelStr = os.Getenv("MODELGEN_LOG_LEVEL")
		if levelStr == "" {
			levelStr = "info"
		}
	}

	// Parse log level
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}

	// Configure logger
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stdout)

	return logger
}

// LoadEnvironmentVariables loads environment variables from .env file
func LoadEnvironmentVariables(envFile string, logger *logrus.Logger) {
	// Check if a sample .env file exists but not the actual .env file
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		sampleEnvFile := envFile + ".sample"
		if _, err := os.Stat(sampleEnvFile); err == nil {
			logger.Infof("No %s file found, but %s exists. Consider copying %s to %s and updating it.",
				envFile, sampleEnvFile, sampleEnvFile, envFile)
		}
	}

	// Load environment variables from .env file if it exists
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			logger.Warningf("Error loading %s file: %v", envFile, err)
		} else {
			logger.Infof("Loaded environment variables from %s", envFile)
		}
	} else {
		logger.Debugf("No %s file found, using existing environment variables", envFile)
	}

	// Log all available MODELGEN_* environment variables (for debugging)
	if logger.Level == logrus.DebugLevel {
		for _, env := range os.Environ() {
			if strings.HasPrefix(env, "MODELGEN_") {
				parts := strings.SplitN(env, "=", 2)
				if len(parts) == 2 {
					// Mask password
					if parts[0] == "MODELGEN_PASSWORD" {
						logger.Debugf("%s=********", parts[0])
					} else {
						logger.Debugf("%s=%s", parts[0], parts[1])
					}
				}
			}
		}
	}
}

// ValidateConfig checks that the resolved configuration is usable
// before any connection is attempted
func ValidateConfig(cfg models.RunConfiguration) error {
	if cfg.Package == "" {
		return &ConfigurationError{Reason: "package name is required (use -j/--package)"}
	}

	if cfg.ConnectionString == "" && cfg.Database == "" {
		return &ConfigurationError{Reason: "provide either a connection string (-c) or a database name (-d)"}
	}

	return nil
}

// PrintSummary prints a summary of the generation run
func PrintSummary(result *models.GenerationResult, outputDir string) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("MODEL GENERATION SUMMARY")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Output directory: %s\n", outputDir)
	fmt.Printf("Generated files: %s\n", color.New(color.FgGreen).Sprintf("%d", len(result.Generated)))
	fmt.Printf("Failed tables: %s\n", color.New(color.FgRed).Sprintf("%d", len(result.Failed)))

	if len(result.Generated) > 0 {
		fmt.Println("\nGenerated:")
		for _, file := range result.Generated {
			fmt.Printf("  %s %s\n", color.New(color.FgGreen).Sprint("✓"), file)
		}
	}

	if len(result.Failed) > 0 {
		fmt.Println("\nFailed:")
		tables := make([]string, 0, len(result.Failed))
		for table := range result.Failed {
			tables = append(tables, table)
		}
		sort.Strings(tables)
		for _, table := range tables {
			fmt.Printf("  %s %s: %v\n", color.New(color.FgRed).Sprint("✗"), table, result.Failed[table])
		}
	}

	fmt.Println(strings.Repeat("=", 50))
}
