package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// Querier es lo común entre *pgxpool.Pool y pgx.Tx: los repositorios funcionan con ambos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Códigos SQLSTATE usados.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// writeErr traduce errores de escritura: único → ErrDuplicate, FK → ErrConflict.
func writeErr(op string, err error) error {
	switch pgCode(err) {
	case codeUniqueViolation:
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	case codeForeignKeyViolation:
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// affectedOne devuelve ErrNotFound si el UPDATE/DELETE no tocó ninguna fila.
func affectedOne(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// where acumula condiciones con parámetros posicionales ($1, $2...).
type where struct {
	conds []string
	args  []any
}

// add agrega una condición; cond lleva %d (o %[1]d si se repite) para el número de parámetro.
func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

// addIf agrega la condición solo si v no está vacío.
func (w *where) addIf(cond, v string) {
	if v != "" {
		w.add(cond, v)
	}
}

// dates agrega el rango inclusivo sobre col.
func (w *where) dates(col string, r repository.DateRange) {
	if r.From != nil {
		w.add(col+" >= $%d", *r.From)
	}
	if r.To != nil {
		w.add(col+" <= $%d", *r.To)
	}
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page agrega LIMIT/OFFSET y devuelve los argumentos completos. Limit <= 0 no limita.
func (w *where) page(p repository.Page) (string, []any) {
	args := append([]any{}, w.args...)
	var sb strings.Builder
	if p.Limit > 0 {
		args = append(args, p.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if p.Offset > 0 {
		args = append(args, p.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}
	return sb.String(), args
}

// count ejecuta SELECT COUNT(*) con el mismo FROM/WHERE del listado.
func count(ctx context.Context, q Querier, from string, w *where) (int, error) {
	var n int
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+from+w.String(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func likePattern(s string) string {
	return "%" + s + "%"
}

// nullIfEmpty guarda "" como NULL (FKs opcionales).
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefStr(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

// noRows convierte pgx.ErrNoRows en (nil, nil).
func noRows[T any](v *T, err error, op string) (*T, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}
