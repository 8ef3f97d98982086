package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/clairefro/flc-wix/internal/application/dto"
	"github.com/clairefro/flc-wix/internal/domain"
	"github.com/clairefro/flc-wix/internal/domain/entity"
	"github.com/clairefro/flc-wix/internal/domain/repository"
	"github.com/clairefro/flc-wix/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login de miembros.
type AuthUseCase struct {
	memberRepo repository.MemberRepository
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(memberRepo repository.MemberRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{memberRepo: memberRepo, jwtCfg: jwtCfg}
}

// RegisterMember crea un miembro: hashea password con bcrypt y persiste. ErrDuplicate si el email ya existe.
func (uc *AuthUseCase) RegisterMember(ctx context.Context, in dto.RegisterRequest) (*dto.MemberResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleMember
	}
	if role != entity.RoleMember && role != entity.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.memberRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	m := &entity.Member{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.memberRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMemberResponse(m), nil
}

// Login verifica email/password, genera JWT y retorna token + miembro.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	m, err := uc.memberRepo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrMemberNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if m.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, m.ID, m.Email, m.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:  token,
		Member: *toMemberResponse(m),
	}, nil
}

func toMemberResponse(m *entity.Member) *dto.MemberResponse {
	if m == nil {
		return nil
	}
	return &dto.MemberResponse{
		ID:        m.ID,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Role:      m.Role,
	}
}
