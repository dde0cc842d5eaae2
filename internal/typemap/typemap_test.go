package typemap

import (
	"errors"
	"testing"
)

func TestResolveCaseInsensitive(t *testing.T) {
	m := Default()

	variants := []string{"int", "INT", "Int", "iNt"}
	for _, v := range variants {
		jt, err := m.Resolve(v)
		if err != nil {
			t.Errorf("Expected %q to resolve, got error: %v", v, err)
			continue
		}
		if jt.FieldType != "Integer" {
			t.Errorf("Expected %q to resolve to Integer, got %s", v, jt.FieldType)
		}
		if jt.Import != "" {
			t.Errorf("Expected no import for %q, got %s", v, jt.Import)
		}
	}
}

func TestResolveCoreFamilies(t *testing.T) {
	m := Default()

	cases := []struct {
		sqlType   string
		fieldType string
		imp       string
	}{
		{"INTEGER", "Integer", ""},
		{"BIGINT", "Long", ""},
		{"SMALLINT", "Short", ""},
		{"TINYINT", "Byte", ""},
		{"REAL", "Float", ""},
		{"FLOAT", "Float", ""},
		{"DOUBLE", "Double", ""},
		{"DECIMAL", "BigDecimal", "java.math.BigDecimal"},
		{"NUMERIC", "BigDecimal", "java.math.BigDecimal"},
		{"CHAR", "String", ""},
		{"NCHAR", "String", ""},
		{"VARCHAR", "String", ""},
		{"NVARCHAR", "String", ""},
		{"BIT", "Boolean", ""},
		{"DATE", "Date", "java.util.Date"},
		{"DATETIME", "Date", "java.util.Date"},
		{"BINARY", "Byte[]", ""},
		{"VARBINARY", "Byte[]", ""},
		{"IMAGE", "Byte[]", ""},
	}

	for _, c := range cases {
		jt, err := m.Resolve(c.sqlType)
		if err != nil {
			t.Errorf("Expected %s to resolve, got error: %v", c.sqlType, err)
			continue
		}
		if jt.FieldType != c.fieldType {
			t.Errorf("Expected %s to map to %s, got %s", c.sqlType, c.fieldType, jt.FieldType)
		}
		if jt.Import != c.imp {
			t.Errorf("Expected %s import to be %q, got %q", c.sqlType, c.imp, jt.Import)
		}
	}
}

func TestResolveUnknownType(t *testing.T) {
	m := Default()

	for _, v := range []string{"GEOMETRY", "json", ""} {
		_, err := m.Resolve(v)
		if err == nil {
			t.Errorf("Expected error for unmapped type %q, got nil", v)
			continue
		}
		var ute *UnknownTypeError
		if !errors.As(err, &ute) {
			t.Errorf("Expected UnknownTypeError for %q, got %T", v, err)
		}
	}
}

func TestResolvePostgresAliases(t *testing.T) {
	m := Default()

	cases := map[string]string{
		"character varying": "String",
		"double precision":  "Double",
		"boolean":           "Boolean",
		"timestamp":         "Date",
		"bytea":             "Byte[]",
		"text":              "String",
	}

	for sqlType, want := range cases {
		jt, err := m.Resolve(sqlType)
		if err != nil {
			t.Errorf("Expected %q to resolve, got error: %v", sqlType, err)
			continue
		}
		if jt.FieldType != want {
			t.Errorf("Expected %q to map to %s, got %s", sqlType, want, jt.FieldType)
		}
	}
}

func TestNewCanonicalizesKeys(t *testing.T) {
	m := New(map[string]JavaType{"money": {FieldType: "BigDecimal", Import: "java.math.BigDecimal"}})

	jt, err := m.Resolve("MONEY")
	if err != nil {
		t.Fatalf("Expected MONEY to resolve against lower-cased entry, got error: %v", err)
	}
	if jt.FieldType != "BigDecimal" {
		t.Errorf("Expected BigDecimal, got %s", jt.FieldType)
	}
}
