package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/domain"
	"github.com/jhoicas/Recargas-api/internal/domain/entity"
	"github.com/jhoicas/Recargas-api/internal/domain/repository"
	"github.com/jhoicas/Recargas-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthTxRunner ejecuta el alta de usuario y su wallet en cero dentro de una transacción.
type AuthTxRunner interface {
	RunSignup(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		balanceRepo repository.BalanceRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	txRunner AuthTxRunner
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, txRunner AuthTxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, txRunner: txRunner, jwtCfg: jwtCfg}
}

// Signup registra un revendedor: verifica unicidad de username (y email si
// viene), hashea el password con bcrypt y crea usuario + wallet en cero en la
// misma transacción. Un usuario sin fila de balance no existe en este sistema.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrInvalidInput
	}
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if existing, _ := uc.userRepo.GetByUsername(username); existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" {
		if existing, _ := uc.userRepo.GetByEmail(email); existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     username,
		Email:        email,
		Phone:        in.Phone,
		BusinessName: in.BusinessName,
		Whatsapp:     in.Whatsapp,
		Referral:     strings.ToUpper(strings.TrimSpace(in.Referral)),
		PasswordHash: string(hash),
		Role:         entity.RoleCustomer,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.txRunner.RunSignup(ctx, func(
		userRepo repository.UserRepository,
		balanceRepo repository.BalanceRepository,
	) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		return balanceRepo.Upsert(&entity.Balance{
			UserID:    user.ID,
			Amount:    decimal.Zero,
			Currency:  "GHS",
			UpdatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(strings.ToLower(strings.TrimSpace(in.Username)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ChangePassword cambia el password del usuario autenticado: exige el password
// actual, que el nuevo coincida con su confirmación y re-hashea con bcrypt.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if err := dto.Validate(&in); err != nil {
		return domain.ErrInvalidInput
	}
	if in.NewPassword != in.ConfirmPassword {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// ToUserResponse mapea la entidad al DTO público (nunca expone el hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Username:     u.Username,
		Email:        u.Email,
		Phone:        u.Phone,
		BusinessName: u.BusinessName,
		Whatsapp:     u.Whatsapp,
		Role:         u.Role,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
