package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

var _ repository.CheckerRepository = (*CheckerRepo)(nil)

// CheckerRepo implementación de CheckerRepository sobre PostgreSQL (usable con pool o tx).
type CheckerRepo struct {
	q Querier
}

// NewCheckerRepository construye el adaptador del stock de checkers. Pasar pool o tx (Querier).
func NewCheckerRepository(q Querier) *CheckerRepo {
	return &CheckerRepo{q: q}
}

const checkerColumns = `id, type, message, amount, profit, status, sold_to, sold_at, created_at`

// Create carga un checker al stock.
func (r *CheckerRepo) Create(checker *entity.Checker) error {
	query := `
		INSERT INTO checkers (` + checkerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		checker.ID, checker.Type, checker.Message, checker.Amount, checker.Profit,
		checker.Status, checker.SoldTo, checker.SoldAt, checker.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert checker: %w", err)
	}
	return nil
}

// GetByID obtiene un checker por ID.
func (r *CheckerRepo) GetByID(id string) (*entity.Checker, error) {
	return r.getOne(id, "")
}

// GetForUpdate obtiene el checker y bloquea la fila (SELECT FOR UPDATE).
// Debe llamarse dentro de una transacción; serializa la venta del mismo PIN.
func (r *CheckerRepo) GetForUpdate(id string) (*entity.Checker, error) {
	return r.getOne(id, " FOR UPDATE")
}

func (r *CheckerRepo) getOne(id, suffix string) (*entity.Checker, error) {
	query := `SELECT ` + checkerColumns + ` FROM checkers WHERE id = $1` + suffix
	var c entity.Checker
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Type, &c.Message, &c.Amount, &c.Profit,
		&c.Status, &c.SoldTo, &c.SoldAt, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checker: %w", err)
	}
	return &c, nil
}

// ListUnsold checkers disponibles de un tipo, más antiguo primero (FIFO del stock).
func (r *CheckerRepo) ListUnsold(checkerType string) ([]*entity.Checker, error) {
	query := `
		SELECT ` + checkerColumns + `
		FROM checkers WHERE status = $1 AND type = $2
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, entity.CheckerStatusNotSold, checkerType)
	if err != nil {
		return nil, fmt.Errorf("list unsold checkers: %w", err)
	}
	return scanCheckers(rows)
}

// List listado de admin con filtros opcionales (vacío = sin filtro).
func (r *CheckerRepo) List(status, checkerType string) ([]*entity.Checker, error) {
	query := `
		SELECT ` + checkerColumns + `
		FROM checkers
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR type = $2)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, status, checkerType)
	if err != nil {
		return nil, fmt.Errorf("list checkers: %w", err)
	}
	return scanCheckers(rows)
}

func scanCheckers(rows pgx.Rows) ([]*entity.Checker, error) {
	defer rows.Close()
	var checkers []*entity.Checker
	for rows.Next() {
		var c entity.Checker
		if err := rows.Scan(
			&c.ID, &c.Type, &c.Message, &c.Amount, &c.Profit,
			&c.Status, &c.SoldTo, &c.SoldAt, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan checker: %w", err)
		}
		checkers = append(checkers, &c)
	}
	return checkers, rows.Err()
}

// MarkSold marca el checker como vendido a un usuario.
func (r *CheckerRepo) MarkSold(id, soldTo string) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE checkers SET status = $2, sold_to = $3, sold_at = now()
		WHERE id = $1`, id, entity.CheckerStatusSold, soldTo)
	if err != nil {
		return fmt.Errorf("mark checker sold: %w", err)
	}
	return nil
}

// Update edita tipo, PIN y precios de un checker.
func (r *CheckerRepo) Update(checker *entity.Checker) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE checkers SET type = $2, message = $3, amount = $4, profit = $5
		WHERE id = $1`,
		checker.ID, checker.Type, checker.Message, checker.Amount, checker.Profit,
	)
	if err != nil {
		return fmt.Errorf("update checker: %w", err)
	}
	return nil
}

// Delete elimina un checker del stock.
func (r *CheckerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM checkers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete checker: %w", err)
	}
	return nil
}

// DeleteSold elimina los checkers ya vendidos; devuelve cuántos borró.
func (r *CheckerRepo) DeleteSold() (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM checkers WHERE status = $1`, entity.CheckerStatusSold)
	if err != nil {
		return 0, fmt.Errorf("delete sold checkers: %w", err)
	}
	return tag.RowsAffected(), nil
}
