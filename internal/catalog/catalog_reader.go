package catalog

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vitebski/mysql-model-generator/internal/connector"
	"github.com/vitebski/mysql-model-generator/pkg/models"
)

// CatalogQueryError wraps a failed metadata query together with the
// query text. Introspection failures are not transient, so callers
// abort instead of retrying.
type CatalogQueryError struct {
	Query string
	Err   error
}

func (e *CatalogQueryError) Error() string {
	return fmt.Sprintf("catalog query failed: %v (query: %s)", e.Err, e.Query)
}

func (e *CatalogQueryError) Unwrap() error {
	return e.Err
}

// Reader enumerates tables and columns from information_schema
type Reader struct {
	DB     *connector.DatabaseConnector
	Logger *logrus.Logger
}

// NewReader creates a new catalog reader
func NewReader(db *connector.DatabaseConnector, logger *logrus.Logger) *Reader {
	return &Reader{
		DB:     db,
		Logger: logger,
	}
}

// schemaFilter returns the predicate that scopes catalog queries to the
// connected database. MySQL keys information_schema by schema name;
// PostgreSQL tables live in the 'public' schema of the connected
// database.
func (r *Reader) schemaFilter() (string, []interface{}) {
	if r.DB.Driver == connector.DriverPostgres {
		return "table_schema = 'public'", nil
	}
	return "table_schema = ?", []interface{}{r.DB.Database}
}

// ListTables returns the names of all base tables in the connected
// database, in catalog order. When filter is non-empty, the result
// contains at most that one table; an empty result is not an error.
func (r *Reader) ListTables(filter string) ([]string, error) {
	predicate, params := r.schemaFilter()

	query := fmt.Sprintf(`
		SELECT t.table_name AS table_name
		FROM information_schema.tables AS t
		WHERE t.%s
		AND t.table_type = 'BASE TABLE'`, predicate)
	if filter != "" {
		query += `
		AND t.table_name = ?`
		params = append(params, filter)
	}
	query += `
		ORDER BY t.table_name`

	result, err := r.DB.ExecuteQuery(query, params...)
	if err != nil {
		return nil, &CatalogQueryError{Query: query, Err: err}
	}

	var tables []string
	for _, row := range result {
		name, ok := row["table_name"].(string)
		if !ok {
			return nil, &CatalogQueryError{Query: query, Err: fmt.Errorf("unexpected table_name value %v", row["table_name"])}
		}
		tables = append(tables, name)
	}

	r.Logger.Debugf("Catalog lists %d table(s)", len(tables))
	return tables, nil
}

// ListColumns returns the (name, data type) descriptors for a table in
// ordinal position order, which becomes field order in the emitted
// class
func (r *Reader) ListColumns(table string) ([]models.ColumnDescriptor, error) {
	predicate, params := r.schemaFilter()

	query := fmt.Sprintf(`
		SELECT c.column_name AS column_name, c.data_type AS data_type
		FROM information_schema.columns AS c
		WHERE c.%s
		AND c.table_name = ?
		ORDER BY c.ordinal_position`, predicate)
	params = append(params, table)

	result, err := r.DB.ExecuteQuery(query, params...)
	if err != nil {
		return nil, &CatalogQueryError{Query: query, Err: err}
	}

	var columns []models.ColumnDescriptor
	for _, row := range result {
		name, nameOK := row["column_name"].(string)
		dataType, typeOK := row["data_type"].(string)
		if !nameOK || !typeOK {
			return nil, &CatalogQueryError{Query: query, Err: fmt.Errorf("unexpected column row %v", row)}
		}
		columns = append(columns, models.ColumnDescriptor{
			Name:     name,
			DataType: dataType,
		})
	}

	r.Logger.Debugf("Table %s has %d column(s)", table, len(columns))
	return columns, nil
}
