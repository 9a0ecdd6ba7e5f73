// Package csv escribe las exportaciones tabulares en CSV (RFC 4180, separador coma).
package csv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jhoicas/backoffice-api/internal/application/export"
)

var _ export.TableWriter = (*Writer)(nil)

// Writer implementa export.TableWriter.
type Writer struct {
	// UTF8BOM antepone el BOM para que Excel reconozca tildes y eñes.
	UTF8BOM bool
}

// NewWriter construye el writer con BOM activado.
func NewWriter() *Writer { return &Writer{UTF8BOM: true} }

// ContentType del archivo generado.
func (w *Writer) ContentType() string { return "text/csv; charset=utf-8" }

// Extension del archivo generado.
func (w *Writer) Extension() string { return "csv" }

// WriteTable escribe la cabecera y las filas.
func (w *Writer) WriteTable(out io.Writer, header []string, rows [][]string) error {
	if w.UTF8BOM {
		if _, err := io.WriteString(out, "\ufeff"); err != nil {
			return fmt.Errorf("csv: escribir bom: %w", err)
		}
	}
	cw := csv.NewWriter(out)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv: escribir cabecera: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("csv: escribir filas: %w", err)
	}
	return nil
}
