package typemap

import (
	"fmt"
	"strings"
)

// JavaType is the Java field type a SQL column type maps to, plus the
// fully-qualified class the generated file must import for it (empty
// when the type lives in java.lang default scope)
type JavaType struct {
	FieldType string
	Import    string
}

// UnknownTypeError is returned when a column type has no mapping entry.
// Generation must stop for the affected table rather than guess a type.
type UnknownTypeError struct {
	SQLType string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("no Java type mapping for SQL type %q", e.SQLType)
}

// Mapping is an immutable lookup from SQL data type names to Java types.
// Keys are stored upper-cased; lookups are case-insensitive.
type Mapping struct {
	entries map[string]JavaType
}

// New creates a mapping from the given entries, canonicalizing keys to
// upper case
func New(entries map[string]JavaType) Mapping {
	m := make(map[string]JavaType, len(entries))
	for k, v := range entries {
		m[strings.ToUpper(k)] = v
	}
	return Mapping{entries: m}
}

// Resolve looks up the Java type for a SQL data type name
func (m Mapping) Resolve(sqlType string) (JavaType, error) {
	jt, ok := m.entries[strings.ToUpper(sqlType)]
	if !ok {
		return JavaType{}, &UnknownTypeError{SQLType: sqlType}
	}
	return jt, nil
}

// Default returns the standard SQL-to-Java mapping. The extra entries
// beyond the core families (TEXT, BOOLEAN, TIMESTAMP, BYTEA, the
// CHARACTER spellings) cover the names the PostgreSQL catalog reports.
func Default() Mapping {
	return New(map[string]JavaType{
		"INT":               {FieldType: "Integer"},
		"INTEGER":           {FieldType: "Integer"},
		"BIGINT":            {FieldType: "Long"},
		"SMALLINT":          {FieldType: "Short"},
		"TINYINT":           {FieldType: "Byte"},
		"REAL":              {FieldType: "Float"},
		"FLOAT":             {FieldType: "Float"},
		"DOUBLE":            {FieldType: "Double"},
		"DOUBLE PRECISION":  {FieldType: "Double"},
		"DECIMAL":           {FieldType: "BigDecimal", Import: "java.math.BigDecimal"},
		"NUMERIC":           {FieldType: "BigDecimal", Import: "java.math.BigDecimal"},
		"CHAR":              {FieldType: "String"},
		"NCHAR":             {FieldType: "String"},
		"VARCHAR":           {FieldType: "String"},
		"NVARCHAR":          {FieldType: "String"},
		"CHARACTER":         {FieldType: "String"},
		"CHARACTER VARYING": {FieldType: "String"},
		"TEXT":              {FieldType: "String"},
		"BIT":               {FieldType: "Boolean"},
		"BOOLEAN":           {FieldType: "Boolean"},
		"DATE":              {FieldType: "Date", Import: "java.util.Date"},
		"DATETIME":          {FieldType: "Date", Import: "java.util.Date"},
		"TIMESTAMP":         {FieldType: "Date", Import: "java.util.Date"},
		"BINARY":            {FieldType: "Byte[]"},
		"VARBINARY":         {FieldType: "Byte[]"},
		"IMAGE":             {FieldType: "Byte[]"},
		"BYTEA":             {FieldType: "Byte[]"},
	})
}
