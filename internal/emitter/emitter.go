package emitter

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"
	"github.com/vitebski/mysql-model-generator/internal/naming"
	"github.com/vitebski/mysql-model-generator/internal/typemap"
	"github.com/vitebski/mysql-model-generator/pkg/models"
)

// DuplicateFieldNameError is returned when two columns of one table
// normalize to the same field name (e.g. user_id and user-id). The
// emitted class would declare the field twice, so generation fails for
// that table instead of writing broken code.
type DuplicateFieldNameError struct {
	Table     string
	FieldName string
	Columns   []string
}

func (e *DuplicateFieldNameError) Error() string {
	return fmt.Sprintf("table %s: columns %s normalize to the same field name %q",
		e.Table, strings.Join(e.Columns, " and "), e.FieldName)
}

// classTemplate renders a ClassSpec into a complete Java source file.
// The framework import block and the class annotations are fixed; only
// the value-type imports and the fields vary with the schema. The
// @Table and @Column annotations reference the raw catalog identifiers
// so the mapping layer still resolves physical names.
var classTemplate = template.Must(template.New("class").Parse(`package {{.PackageName}};

import jakarta.persistence.Entity;
import java.io.Serial;
import java.io.Serializable;
import jakarta.persistence.Column;
import jakarta.persistence.Id;
import jakarta.persistence.Table;
import lombok.AllArgsConstructor;
import lombok.Data;
import lombok.NoArgsConstructor;
{{range .Imports}}import {{.}};
{{end}}
@Data
@NoArgsConstructor
@AllArgsConstructor
@Entity
@Table(name = "{{.TableName}}")
public class {{.ClassName}} implements Serializable {

{{.Indent}}@Serial
{{.Indent}}@Id
{{.Indent}}private static final long serialVersionUID = 1L;
{{range .Fields}}
{{$.Indent}}@Column(name = "{{.ColumnName}}")
{{$.Indent}}private {{.FieldType}} {{.FieldName}};
{{end}}}
`))

// Emitter turns table descriptors into Java entity class sources
type Emitter struct {
	Types  typemap.Mapping
	Logger *logrus.Logger
}

// NewEmitter creates a new emitter using the given type mapping
func NewEmitter(types typemap.Mapping, logger *logrus.Logger) *Emitter {
	return &Emitter{
		Types:  types,
		Logger: logger,
	}
}

// FileName returns the output file name for a table
func (e *Emitter) FileName(table models.TableDescriptor) string {
	return naming.Normalize(table.Name, false) + ".java"
}

// BuildSpec assembles the structured class spec for a table: class and
// field names via normalization, field types via the type mapping,
// value-type imports deduplicated and sorted
func (e *Emitter) BuildSpec(table models.TableDescriptor, pkg, indent string) (*models.ClassSpec, error) {
	spec := &models.ClassSpec{
		PackageName: pkg,
		ClassName:   naming.Normalize(table.Name, false),
		TableName:   table.Name,
		Indent:      indent,
	}

	importSet := make(map[string]bool)
	fieldSource := make(map[string]string, len(table.Columns))

	for _, col := range table.Columns {
		javaType, err := e.Types.Resolve(col.DataType)
		if err != nil {
			return nil, fmt.Errorf("table %s, column %s: %w", table.Name, col.Name, err)
		}

		fieldName := naming.Normalize(col.Name, true)
		if prev, seen := fieldSource[fieldName]; seen {
			return nil, &DuplicateFieldNameError{
				Table:     table.Name,
				FieldName: fieldName,
				Columns:   []string{prev, col.Name},
			}
		}
		fieldSource[fieldName] = col.Name

		if javaType.Import != "" {
			importSet[javaType.Import] = true
		}

		spec.Fields = append(spec.Fields, models.Field{
			ColumnName: col.Name,
			FieldName:  fieldName,
			FieldType:  javaType.FieldType,
		})
	}

	for imp := range importSet {
		spec.Imports = append(spec.Imports, imp)
	}
	sort.Strings(spec.Imports)

	return spec, nil
}

// Emit produces the complete source text of the entity class for a
// table. A table without columns yields a class holding only the
// identity field.
func (e *Emitter) Emit(table models.TableDescriptor, pkg, indent string) (string, error) {
	spec, err := e.BuildSpec(table, pkg, indent)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := classTemplate.Execute(&b, spec); err != nil {
		return "", fmt.Errorf("table %s: rendering class: %w", table.Name, err)
	}

	e.Logger.Debugf("Emitted class %s with %d field(s)", spec.ClassName, len(spec.Fields))
	return b.String(), nil
}
