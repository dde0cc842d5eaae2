package connector

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// Supported driver names
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// DatabaseConnector handles database connection and read-only query execution
type DatabaseConnector struct {
	Driver           string
	Host             string
	User             string
	Password         string
	Database         string
	Port             string
	ConnectionString string
	DB               *sql.DB
	Logger           *logrus.Logger
}

// NewDatabaseConnector creates a new database connector, falling back to
// MODELGEN_* environment variables for parameters that were not provided
func NewDatabaseConnector(driver, host, user, password, database, port, connectionString string, logger *logrus.Logger) *DatabaseConnector {
	if driver == "" {
		driver = getEnvOrDefault("MODELGEN_DRIVER", DriverMySQL)
	}
	if host == "" {
		host = getEnvOrDefault("MODELGEN_HOST", "localhost")
	}
	if user == "" {
		user = getEnvOrDefault("MODELGEN_USER", "root")
	}
	if password == "" {
		password = getEnvOrDefault("MODELGEN_PASSWORD", "")
	}
	if database == "" {
		database = getEnvOrDefault("MODELGEN_DATABASE", "")
	}
	if port == "" {
		port = getEnvOrDefault("MODELGEN_PORT", defaultPort(driver))
	}

	return &DatabaseConnector{
		Driver:           driver,
		Host:             host,
		User:             user,
		Password:         password,
		Database:         database,
		Port:             port,
		ConnectionString: connectionString,
		Logger:           logger,
	}
}

func defaultPort(driver string) string {
	if driver == DriverPostgres {
		return "5432"
	}
	return "3306"
}

// DSN returns the driver-specific connection string
func (dc *DatabaseConnector) DSN() (string, error) {
	if dc.ConnectionString != "" {
		return dc.ConnectionString, nil
	}

	switch dc.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
			dc.User, dc.Password, dc.Host, dc.Port, dc.Database), nil
	case DriverPostgres:
		parts := []string{
			fmt.Sprintf("host=%s", dc.Host),
			fmt.Sprintf("port=%s", dc.Port),
			fmt.Sprintf("user=%s", dc.User),
			fmt.Sprintf("dbname=%s", dc.Database),
			"sslmode=disable",
		}
		if dc.Password != "" {
			parts = append(parts, fmt.Sprintf("password=%s", dc.Password))
		}
		return strings.Join(parts, " "), nil
	default:
		return "", fmt.Errorf("unsupported driver %q (supported: %s, %s)", dc.Driver, DriverMySQL, DriverPostgres)
	}
}

// Connect establishes a connection to the database
func (dc *DatabaseConnector) Connect() error {
	if dc.ConnectionString == "" && dc.Database == "" {
		return fmt.Errorf("database name must be provided either as an argument or as MODELGEN_DATABASE environment variable")
	}

	dsn, err := dc.DSN()
	if err != nil {
		return err
	}

	db, err := sql.Open(dc.Driver, dsn)
	if err != nil {
		dc.Logger.Errorf("Error connecting to %s database: %v", dc.Driver, err)
		return err
	}

	// Test the connection
	err = db.Ping()
	if err != nil {
		dc.Logger.Errorf("Error pinging %s database: %v", dc.Driver, err)
		return err
	}

	dc.DB = db
	dc.Logger.Infof("Connected to %s database: %s", dc.Driver, dc.Database)
	return nil
}

// Disconnect closes the database connection
func (dc *DatabaseConnector) Disconnect() {
	if dc.DB != nil {
		err := dc.DB.Close()
		if err != nil {
			dc.Logger.Errorf("Error closing database connection: %v", err)
		} else {
			dc.Logger.Info("Database connection closed")
		}
	}
}

// Rebind rewrites '?' placeholders into the bindvar syntax of the
// configured driver. MySQL queries pass through unchanged; PostgreSQL
// gets ordinal $1, $2, ... placeholders.
func (dc *DatabaseConnector) Rebind(query string) string {
	if dc.Driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ExecuteQuery executes a read-only SQL query, written with '?'
// placeholders, and fully materializes the results
func (dc *DatabaseConnector) ExecuteQuery(query string, params ...interface{}) ([]map[string]interface{}, error) {
	if dc.DB == nil {
		if err := dc.Connect(); err != nil {
			return nil, err
		}
	}

	rows, err := dc.DB.Query(dc.Rebind(query), params...)
	if err != nil {
		dc.Logger.Errorf("Error executing query: %v", err)
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		dc.Logger.Errorf("Error getting columns: %v", err)
		return nil, err
	}

	var results []map[string]interface{}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range columns {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			dc.Logger.Errorf("Error scanning row: %v", err)
			return nil, err
		}

		row := make(map[string]interface{})
		for i, col := range columns {
			val := values[i]
			if val == nil {
				row[col] = nil
			} else {
				// Convert []byte to string for text fields
				if b, ok := val.([]byte); ok {
					row[col] = string(b)
				} else {
					row[col] = val
				}
			}
		}

		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		dc.Logger.Errorf("Error iterating rows: %v", err)
		return nil, err
	}

	return results, nil
}

// getEnvOrDefault gets an environment variable or returns a default value
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
