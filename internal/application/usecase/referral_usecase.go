package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
)

// refCodeAlphabet alfabeto del código de invitación: mayúsculas y dígitos.
const refCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ReferralUseCase códigos de invitación (uno por usuario, creado bajo demanda).
type ReferralUseCase struct {
	referralRepo repository.ReferralRepository
	inviteBase   string // base del link de invitación, ej. "https://store.example.com/signup?ref="
}

// NewReferralUseCase construye el caso de uso de referidos.
func NewReferralUseCase(referralRepo repository.ReferralRepository, inviteBase string) *ReferralUseCase {
	return &ReferralUseCase{referralRepo: referralRepo, inviteBase: inviteBase}
}

// GetOrCreate devuelve el código del usuario, generándolo la primera vez.
// Ante colisión de código (constraint único) se reintenta con uno nuevo.
func (uc *ReferralUseCase) GetOrCreate(ctx context.Context, userID string) (*dto.ReferralResponse, error) {
	existing, err := uc.referralRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return uc.toResponse(existing), nil
	}

	for attempt := 0; attempt < 5; attempt++ {
		ref := &entity.Referral{
			ID:        uuid.New().String(),
			UserID:    userID,
			RefCode:   newRefCode(),
			CreatedAt: time.Now(),
		}
		err := uc.referralRepo.Create(ref)
		if err == nil {
			return uc.toResponse(ref), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		// Pudo chocar el código o el usuario (creado por otra petición concurrente).
		if existing, _ := uc.referralRepo.GetByUser(userID); existing != nil {
			return uc.toResponse(existing), nil
		}
	}
	return nil, fmt.Errorf("referral: no se pudo generar un código único")
}

// Resolve busca el dueño de un código (para validar invitaciones en el registro).
func (uc *ReferralUseCase) Resolve(ctx context.Context, code string) (*entity.Referral, error) {
	ref, err := uc.referralRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, domain.ErrNotFound
	}
	return ref, nil
}

// ListAll todos los códigos emitidos (admin).
func (uc *ReferralUseCase) ListAll(ctx context.Context) ([]dto.ReferralResponse, error) {
	refs, err := uc.referralRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReferralResponse, 0, len(refs))
	for _, r := range refs {
		out = append(out, *uc.toResponse(r))
	}
	return out, nil
}

func (uc *ReferralUseCase) toResponse(r *entity.Referral) *dto.ReferralResponse {
	return &dto.ReferralResponse{
		RefCode:    r.RefCode,
		InviteLink: uc.inviteBase + r.RefCode,
	}
}

// newRefCode genera 6 caracteres aleatorios del alfabeto (mayúsculas + dígitos).
func newRefCode() string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	for i := range buf {
		buf[i] = refCodeAlphabet[int(buf[i])%len(refCodeAlphabet)]
	}
	return string(buf)
}
