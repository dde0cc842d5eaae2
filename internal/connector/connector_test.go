package connector

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func createTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel) // Suppress log output during tests
	return logger
}

func TestNewDatabaseConnector(t *testing.T) {
	// Set environment variables for testing
	os.Setenv("MODELGEN_DRIVER", "mysql")
	os.Setenv("MODELGEN_HOST", "test-host")
	os.Setenv("MODELGEN_USER", "test-user")
	os.Setenv("MODELGEN_PASSWORD", "test-password")
	os.Setenv("MODELGEN_DATABASE", "test-database")
	os.Setenv("MODELGEN_PORT", "3307")
	defer func() {
		os.Unsetenv("MODELGEN_DRIVER")
		os.Unsetenv("MODELGEN_HOST")
		os.Unsetenv("MODELGEN_USER")
		os.Unsetenv("MODELGEN_PASSWORD")
		os.Unsetenv("MODELGEN_DATABASE")
		os.Unsetenv("MODELGEN_PORT")
	}()

	logger := createTestLogger()

	// Create a new database connector
	db := NewDatabaseConnector("", "", "", "", "", "", "", logger)

	// Check that environment variables were used
	if db.Driver != "mysql" {
		t.Errorf("Expected driver to be 'mysql', got '%s'", db.Driver)
	}
	if db.Host != "test-host" {
		t.Errorf("Expected host to be 'test-host', got '%s'", db.Host)
	}
	if db.User != "test-user" {
		t.Errorf("Expected user to be 'test-user', got '%s'", db.User)
	}
	if db.Password != "test-password" {
		t.Errorf("Expected password to be 'test-password', got '%s'", db.Password)
	}
	if db.Database != "test-database" {
		t.Errorf("Expected database to be 'test-database', got '%s'", db.Database)
	}
	if db.Port != "3307" {
		t.Errorf("Expected port to be '3307', got '%s'", db.Port)
	}

	// Test with explicit parameters
	db = NewDatabaseConnector("postgres", "explicit-host", "explicit-user", "explicit-password", "explicit-database", "5433", "", logger)

	if db.Driver != "postgres" {
		t.Errorf("Expected driver to be 'postgres', got '%s'", db.Driver)
	}
	if db.Host != "explicit-host" {
		t.Errorf("Expected host to be 'explicit-host', got '%s'", db.Host)
	}
	if db.Port != "5433" {
		t.Errorf("Expected port to be '5433', got '%s'", db.Port)
	}
}

func TestDefaultPorts(t *testing.T) {
	logger := createTestLogger()

	db := NewDatabaseConnector("mysql", "h", "u", "p", "d", "", "", logger)
	if db.Port != "3306" {
		t.Errorf("Expected default MySQL port 3306, got '%s'", db.Port)
	}

	db = NewDatabaseConnector("postgres", "h", "u", "p", "d", "", "", logger)
	if db.Port != "5432" {
		t.Errorf("Expected default PostgreSQL port 5432, got '%s'", db.Port)
	}
}

func TestDSN(t *testing.T) {
	logger := createTestLogger()

	db := NewDatabaseConnector("mysql", "db.local", "alice", "secret", "shop", "3306", "", logger)
	dsn, err := db.DSN()
	if err != nil {
		t.Fatalf("Expected DSN to build, got error: %v", err)
	}
	want := "alice:secret@tcp(db.local:3306)/shop?parseTime=true"
	if dsn != want {
		t.Errorf("Expected DSN %q, got %q", want, dsn)
	}

	db = NewDatabaseConnector("postgres", "db.local", "alice", "secret", "shop", "5432", "", logger)
	dsn, err = db.DSN()
	if err != nil {
		t.Fatalf("Expected DSN to build, got error: %v", err)
	}
	want = "host=db.local port=5432 user=alice dbname=shop sslmode=disable password=secret"
	if dsn != want {
		t.Errorf("Expected DSN %q, got %q", want, dsn)
	}

	// An explicit connection string wins over the tuple
	db = NewDatabaseConnector("mysql", "db.local", "alice", "secret", "shop", "3306", "alice@tcp(other:3306)/x", logger)
	dsn, err = db.DSN()
	if err != nil {
		t.Fatalf("Expected DSN to build, got error: %v", err)
	}
	if dsn != "alice@tcp(other:3306)/x" {
		t.Errorf("Expected connection string to take precedence, got %q", dsn)
	}

	// Unsupported drivers are rejected
	db = NewDatabaseConnector("oracle", "h", "u", "p", "d", "1521", "", logger)
	if _, err := db.DSN(); err == nil {
		t.Error("Expected error for unsupported driver, got nil")
	}
}

func TestRebind(t *testing.T) {
	logger := createTestLogger()

	query := "SELECT x FROM t WHERE a = ? AND b = ?"

	db := NewDatabaseConnector("mysql", "h", "u", "p", "d", "", "", logger)
	if got := db.Rebind(query); got != query {
		t.Errorf("Expected MySQL query unchanged, got %q", got)
	}

	db = NewDatabaseConnector("postgres", "h", "u", "p", "d", "", "", logger)
	want := "SELECT x FROM t WHERE a = $1 AND b = $2"
	if got := db.Rebind(query); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestConnectRequiresDatabase(t *testing.T) {
	logger := createTestLogger()

	db := NewDatabaseConnector("mysql", "h", "u", "p", "", "", "", logger)
	db.Database = "" // force past env fallback
	if err := db.Connect(); err == nil {
		t.Error("Expected error when no database name is configured, got nil")
	}
}
