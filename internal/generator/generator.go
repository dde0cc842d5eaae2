package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/vitebski/mysql-model-generator/internal/catalog"
	"github.com/vitebski/mysql-model-generator/internal/emitter"
	"github.com/vitebski/mysql-model-generator/pkg/models"
)

// FileWriteError wraps a failed write of one generated file. It fails
// only that table; the run continues with the remaining tables.
type FileWriteError struct {
	Table string
	Path  string
	Err   error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("table %s: writing %s: %v", e.Table, e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}

// Driver orchestrates the catalog reader and the emitter across every
// table, writing one class file per table
type Driver struct {
	Catalog *catalog.Reader
	Emitter *emitter.Emitter
	Logger  *logrus.Logger
}

// NewDriver creates a new generation driver
func NewDriver(reader *catalog.Reader, em *emitter.Emitter, logger *logrus.Logger) *Driver {
	return &Driver{
		Catalog: reader,
		Emitter: em,
		Logger:  logger,
	}
}

// Run generates one entity class file per table. Catalog failures abort
// the run; per-table emission and write failures are recorded in the
// result and the remaining tables are still processed. A table filter
// that matches nothing is a no-op, not an error. Tables reporting zero
// columns are skipped with a warning (usually a permissions or metadata
// issue, not a generation target).
func (d *Driver) Run(cfg models.RunConfiguration) (*models.GenerationResult, error) {
	result := &models.GenerationResult{
		Failed: make(map[string]error),
	}

	tables, err := d.Catalog.ListTables(cfg.Table)
	if err != nil {
		return result, err
	}

	if len(tables) == 0 {
		if cfg.Table != "" {
			d.Logger.Warningf("Table %s not found in catalog, nothing to generate", cfg.Table)
		} else {
			d.Logger.Warning("No tables found in catalog, nothing to generate")
		}
		return result, nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return result, fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}

	for _, table := range tables {
		columns, err := d.Catalog.ListColumns(table)
		if err != nil {
			return result, err
		}

		if len(columns) == 0 {
			d.Logger.Warningf("Table %s reports no columns, skipping", table)
			continue
		}

		descriptor := models.TableDescriptor{
			Name:    table,
			Columns: columns,
		}

		// Render fully before touching the filesystem so a failed
		// table never leaves a partial file behind
		content, err := d.Emitter.Emit(descriptor, cfg.Package, cfg.Indent)
		if err != nil {
			d.Logger.Errorf("Failed to generate model for table %s: %v", table, err)
			result.Failed[table] = err
			continue
		}

		fileName := d.Emitter.FileName(descriptor)
		path := filepath.Join(cfg.OutputDir, fileName)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			werr := &FileWriteError{Table: table, Path: path, Err: err}
			d.Logger.Errorf("Failed to write model for table %s: %v", table, werr)
			result.Failed[table] = werr
			continue
		}

		d.Logger.Infof("Generated %s", path)
		result.Generated = append(result.Generated, fileName)
	}

	return result, nil
}
