// Package auth implements login, token refresh/logout and user
// self-registration. Token issuance mechanics live in pkg/token; this package
// owns the policy: who may log in, and which refresh tokens are still good.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/okwaroh/twende-logistics/internal/application/actor"
	"github.com/okwaroh/twende-logistics/internal/application/dto"
	"github.com/okwaroh/twende-logistics/internal/domain"
	"github.com/okwaroh/twende-logistics/internal/domain/entity"
	"github.com/okwaroh/twende-logistics/internal/domain/repository"
	"github.com/okwaroh/twende-logistics/pkg/token"
	"github.com/okwaroh/twende-logistics/pkg/validate"
)

// TokenBlacklist remembers revoked refresh tokens. Entries expire with the
// token they ban, so the store never grows past the refresh window.
type TokenBlacklist interface {
	BanToken(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenBanned(ctx context.Context, jti string) (bool, error)
	// BanUserBefore invalidates every refresh token of the user issued before
	// t (used on password change).
	BanUserBefore(ctx context.Context, userID string, t time.Time, ttl time.Duration) error
	// UserBannedBefore returns the cutoff, or the zero time when none is set.
	UserBannedBefore(ctx context.Context, userID string) (time.Time, error)
}

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	AccessMin  int
	RefreshMin int
	Issuer     string
}

// UseCase authentication flows.
type UseCase struct {
	users     repository.UserRepository
	roles     repository.RoleRepository
	resolver  *actor.Resolver
	blacklist TokenBlacklist
	jwt       JWTConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(users repository.UserRepository, roles repository.RoleRepository,
	resolver *actor.Resolver, blacklist TokenBlacklist, jwt JWTConfig) *UseCase {
	return &UseCase{users: users, roles: roles, resolver: resolver, blacklist: blacklist, jwt: jwt}
}

// Register creates a bare user account (no company attached). Directors come
// through the onboarding workflow instead.
func (uc *UseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := domain.RequireAll(map[string]string{
		"full_name": req.FullName,
		"email":     req.Email,
		"phone":     req.Phone,
		"password":  req.Password,
		"role":      req.Role,
	}); err != nil {
		return nil, err
	}
	if problems := validate.PasswordStrength(req.Password); len(problems) > 0 {
		e := &domain.ValidationError{}
		for _, p := range problems {
			e.Add("password", p)
		}
		return nil, e
	}
	if req.Password != req.ConfirmedPassword {
		return nil, domain.NewValidationError("password", "passwords don't match")
	}
	if !validate.InternationalPhoneNumber(req.Phone) {
		return nil, domain.NewValidationError("phone", "Please enter a valid international phone number.")
	}
	role := entity.Role(req.Role)
	if !role.Valid() || role == entity.RoleSuperuser {
		return nil, domain.NewValidationError("role", "Unknown role title.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if _, err := uc.roles.GetOrCreate(ctx, role); err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
		IsVerified:   false,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// Login checks credentials and returns an access/refresh pair. A wrong email
// or password and an unverified account fail with distinct errors.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenPairResponse, *dto.UserResponse, error) {
	user, err := uc.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || user.IsDeleted {
		return nil, nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, domain.ErrUnauthorized
	}
	if !user.IsVerified {
		return nil, nil, domain.ErrNotVerified
	}
	if !user.IsActive {
		return nil, nil, domain.ErrForbidden
	}

	act, err := uc.resolver.Resolve(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	pair, err := token.GeneratePair(uc.jwt.Secret, user.ID, act.CompanyID, string(user.Role),
		uc.jwt.Issuer, uc.jwt.AccessMin, uc.jwt.RefreshMin)
	if err != nil {
		return nil, nil, err
	}
	out := toUserResponse(user)
	return &dto.TokenPairResponse{Access: pair.Access, Refresh: pair.Refresh}, &out, nil
}

// Refresh rotates the pair: the presented refresh token is blacklisted and a
// fresh pair issued. Banned or non-refresh tokens are rejected.
func (uc *UseCase) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := uc.checkRefresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	act, err := uc.resolver.Resolve(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	pair, err := token.GeneratePair(uc.jwt.Secret, claims.UserID, act.CompanyID, string(act.Role),
		uc.jwt.Issuer, uc.jwt.AccessMin, uc.jwt.RefreshMin)
	if err != nil {
		return nil, err
	}
	if err := uc.blacklist.BanToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{Access: pair.Access, Refresh: pair.Refresh}, nil
}

// Logout blacklists the refresh token for the remainder of its lifetime.
func (uc *UseCase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := uc.checkRefresh(ctx, refreshToken)
	if err != nil {
		return err
	}
	return uc.blacklist.BanToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

// Me returns the authenticated user.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDeleted {
		return nil, domain.ErrUserNotFound
	}
	out := toUserResponse(user)
	return &out, nil
}

// UpdateMe applies a partial self-update. A password change invalidates every
// refresh token issued before now.
func (uc *UseCase) UpdateMe(ctx context.Context, userID string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDeleted {
		return nil, domain.ErrUserNotFound
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		if !validate.InternationalPhoneNumber(*req.Phone) {
			return nil, domain.NewValidationError("phone", "Please enter a valid international phone number.")
		}
		user.Phone = *req.Phone
	}
	if req.Password != nil {
		if problems := validate.PasswordStrength(*req.Password); len(problems) > 0 {
			e := &domain.ValidationError{}
			for _, p := range problems {
				e.Add("password", p)
			}
			return nil, e
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
		ttl := time.Duration(uc.jwt.RefreshMin) * time.Minute
		if err := uc.blacklist.BanUserBefore(ctx, user.ID, time.Now(), ttl); err != nil {
			return nil, err
		}
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

func (uc *UseCase) checkRefresh(ctx context.Context, refreshToken string) (*token.Claims, error) {
	claims, err := token.Parse(uc.jwt.Secret, refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if claims.TokenType != token.TypeRefresh {
		return nil, domain.ErrUnauthorized
	}
	banned, err := uc.blacklist.IsTokenBanned(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, domain.ErrUnauthorized
	}
	cutoff, err := uc.blacklist.UserBannedBefore(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if !cutoff.IsZero() && claims.IssuedAt != nil && claims.IssuedAt.Time.Before(cutoff) {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       string(u.Role),
		EmployerID: u.EmployerID,
		IsVerified: u.IsVerified,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
