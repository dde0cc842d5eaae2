package models

// ColumnDescriptor represents one column as reported by the catalog
type ColumnDescriptor struct {
	Name     string
	DataType string
}

// TableDescriptor represents a table and its columns in ordinal order
type TableDescriptor struct {
	Name    string
	Columns []ColumnDescriptor
}

// Field represents one generated class member derived from a column
type Field struct {
	ColumnName string
	FieldName  string
	FieldType  string
}

// ClassSpec is the structured form of a generated entity class,
// built by the emitter and rendered through its template
type ClassSpec struct {
	PackageName string
	ClassName   string
	TableName   string
	Indent      string
	Imports     []string
	Fields      []Field
}

// RunConfiguration holds the resolved settings for one generation run
type RunConfiguration struct {
	Driver           string
	Host             string
	Port             string
	User             string
	Password         string
	Database         string
	ConnectionString string
	Package          string
	Indent           string
	OutputDir        string
	Table            string
}

// GenerationResult summarizes one generation run
type GenerationResult struct {
	Generated []string
	Failed    map[string]error
}

// Success reports whether every processed table generated cleanly
func (gr *GenerationResult) Success() bool {
	return len(gr.Failed) == 0
}
