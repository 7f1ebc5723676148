package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

var _ repository.ReferralRepository = (*ReferralRepo)(nil)

// ReferralRepo implementación de ReferralRepository sobre PostgreSQL.
type ReferralRepo struct {
	q Querier
}

// NewReferralRepository construye el adaptador de códigos de invitación. Pasar pool o tx (Querier).
func NewReferralRepository(q Querier) *ReferralRepo {
	return &ReferralRepo{q: q}
}

// Create persiste un código. Usuario y código tienen constraint único:
// chocar cualquiera de los dos retorna domain.ErrDuplicate.
func (r *ReferralRepo) Create(referral *entity.Referral) error {
	query := `
		INSERT INTO referrals (id, user_id, ref_code, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		referral.ID, referral.UserID, referral.RefCode, referral.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert referral: %w", err)
	}
	return nil
}

// GetByUser código del usuario, si existe.
func (r *ReferralRepo) GetByUser(userID string) (*entity.Referral, error) {
	return r.getOne(`SELECT id, user_id, ref_code, created_at FROM referrals WHERE user_id = $1`, userID)
}

// GetByCode busca el dueño de un código.
func (r *ReferralRepo) GetByCode(code string) (*entity.Referral, error) {
	return r.getOne(`SELECT id, user_id, ref_code, created_at FROM referrals WHERE ref_code = $1`, code)
}

func (r *ReferralRepo) getOne(query string, arg any) (*entity.Referral, error) {
	var ref entity.Referral
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&ref.ID, &ref.UserID, &ref.RefCode, &ref.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get referral: %w", err)
	}
	return &ref, nil
}

// List todos los códigos emitidos.
func (r *ReferralRepo) List() ([]*entity.Referral, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, user_id, ref_code, created_at FROM referrals ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list referrals: %w", err)
	}
	defer rows.Close()

	var refs []*entity.Referral
	for rows.Next() {
		var ref entity.Referral
		if err := rows.Scan(&ref.ID, &ref.UserID, &ref.RefCode, &ref.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan referral: %w", err)
		}
		refs = append(refs, &ref)
	}
	return refs, rows.Err()
}
