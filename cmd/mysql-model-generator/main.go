package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vitebski/mysql-model-generator/internal/catalog"
	"github.com/vitebski/mysql-model-generator/internal/connector"
	"github.com/vitebski/mysql-model-generator/internal/emitter"
	"github.com/vitebski/mysql-model-generator/internal/generator"
	"github.com/vitebski/mysql-model-generator/internal/typemap"
	"github.com/vitebski/mysql-model-generator/internal/utils"
	"github.com/vitebski/mysql-model-generator/pkg/models"
)

func main() {
	var (
		connectionString string
		driver           string
		host             string
		port             string
		user             string
		password         string
		database         string
		packageName      string
		indent           string
		outputDir        string
		table            string
		envFile          string
		logLevel         string
	)

	rootCmd := &cobra.Command{
		Use:   "mysql-model-generator",
		Short: "Generates Java entity model classes from a database schema",
		Long: `MySQL Model Generator

A Go tool that reads a database's INFORMATION_SCHEMA and generates one
annotated Java/JPA entity class per table, with typed fields mirroring
the table's columns.`,
		Run: func(cmd *cobra.Command, args []string) {
			// Setup logging
			logger := utils.SetupLogging(logLevel)

			// Load environment variables
			utils.LoadEnvironmentVariables(envFile, logger)

			// Get connection parameters from environment if not provided
			if driver == "" {
				driver = os.Getenv("MODELGEN_DRIVER")
				if driver == "" {
					driver = connector.DriverMySQL
				}
			}
			if host == "" {
				host = os.Getenv("MODELGEN_HOST")
			}
			if user == "" {
				user = os.Getenv("MODELGEN_USER")
			}
			if password == "" {
				password = os.Getenv("MODELGEN_PASSWORD")
			}
			if database == "" {
				database = os.Getenv("MODELGEN_DATABASE")
			}
			if port == "" {
				port = os.Getenv("MODELGEN_PORT")
			}
			if packageName == "" {
				packageName = os.Getenv("MODELGEN_PACKAGE")
			}
			if outputDir == "" {
				outputDir = os.Getenv("MODELGEN_OUTPUT")
				if outputDir == "" {
					outputDir = "models"
				}
			}

			cfg := models.RunConfiguration{
				Driver:           driver,
				Host:             host,
				Port:             port,
				User:             user,
				Password:         password,
				Database:         database,
				ConnectionString: connectionString,
				Package:          packageName,
				Indent:           indent,
				OutputDir:        outputDir,
				Table:            table,
			}

			// Validate configuration before touching the database
			if err := utils.ValidateConfig(cfg); err != nil {
				logger.Error(err)
				os.Exit(1)
			}

			// Create database connector
			db := connector.NewDatabaseConnector(cfg.Driver, cfg.Host, cfg.User, cfg.Password,
				cfg.Database, cfg.Port, cfg.ConnectionString, logger)
			if err := db.Connect(); err != nil {
				logger.Errorf("Failed to connect to database: %v", err)
				os.Exit(1)
			}
			defer db.Disconnect()

			// Wire the generation pipeline
			reader := catalog.NewReader(db, logger)
			em := emitter.NewEmitter(typemap.Default(), logger)
			drv := generator.NewDriver(reader, em, logger)

			logger.Info("Starting model generation...")
			result, err := drv.Run(cfg)
			if err != nil {
				logger.Errorf("Generation aborted: %v", err)
				os.Exit(1)
			}

			// Print summary
			utils.PrintSummary(result, cfg.OutputDir)

			// Return appropriate exit code
			if !result.Success() {
				os.Exit(1)
			}
		},
	}

	// Define flags
	rootCmd.Flags().StringVarP(&connectionString, "connection-string", "c", "", "Opaque driver DSN, used instead of the host/database flags")
	rootCmd.Flags().StringVarP(&driver, "driver", "D", "", "Database driver: mysql or postgres (default: mysql)")
	rootCmd.Flags().StringVarP(&host, "host", "H", "", "Database host (default: localhost)")
	rootCmd.Flags().StringVarP(&port, "port", "P", "", "Database port (default: driver-specific)")
	rootCmd.Flags().StringVarP(&user, "user", "u", "", "Database user (default: root)")
	rootCmd.Flags().StringVarP(&password, "password", "p", "", "Database password")
	rootCmd.Flags().StringVarP(&database, "database", "d", "", "Database name")
	rootCmd.Flags().StringVarP(&packageName, "package", "j", "", "Package name to insert into generated model classes (required)")
	rootCmd.Flags().StringVarP(&indent, "indent", "i", "    ", "Indentation for class members")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory to write generated .java files (default: models)")
	rootCmd.Flags().StringVarP(&table, "table", "t", "", "Generate a model class for this table only (default: every table)")
	rootCmd.Flags().StringVarP(&envFile, "env-file", "e", ".env", "Path to .env file")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "Log level (debug, info, warn, error)")

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
