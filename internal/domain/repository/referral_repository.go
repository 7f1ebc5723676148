package repository

import "github.com/jhoicas/Recargas-api/internal/domain/entity"

// ReferralRepository define el puerto de persistencia de códigos de invitación.
type ReferralRepository interface {
	Create(referral *entity.Referral) error
	GetByUser(userID string) (*entity.Referral, error)
	GetByCode(code string) (*entity.Referral, error)
	List() ([]*entity.Referral, error)
}
