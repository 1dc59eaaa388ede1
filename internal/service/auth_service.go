package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"landingcms/internal/auth"
	errs "landingcms/internal/errors"
	"landingcms/internal/model"
	"landingcms/internal/repository"
)

// bcryptCost matches the cost the admin panel has always hashed with.
const bcryptCost = 12

// AuthService handles login, identity lookup and staff user management.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	Me(ctx context.Context, userID uint) (*model.User, error)
	CreateUser(ctx context.Context, requesterRole, username, email, password, role string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	EnsureSuperAdmin(ctx context.Context, username, email, password string) error
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{users: users, jwtService: jwtService}
}

// Login verifies credentials and issues a 24h identity token. Unknown
// usernames and wrong passwords produce the same error.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", nil, errs.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !ComparePassword(password, user.PasswordHash) {
		return "", nil, errs.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (s *authService) Me(ctx context.Context, userID uint) (*model.User, error) {
	return s.users.FindByID(ctx, userID)
}

// CreateUser provisions a staff account. Super admins may create any role;
// admins only editors; editors nothing.
func (s *authService) CreateUser(ctx context.Context, requesterRole, username, email, password, role string) (*model.User, error) {
	if !model.ValidRole(role) {
		return nil, errs.NewValidation("role", "must be editor, admin or super_admin")
	}
	if requesterRole == model.RoleEditor {
		return nil, errs.ErrForbidden
	}
	if requesterRole == model.RoleAdmin && role != model.RoleEditor {
		return nil, errs.ErrForbidden
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// EnsureSuperAdmin creates the bootstrap account once. It is a no-op when a
// user with the configured username or any super_admin already exists.
func (s *authService) EnsureSuperAdmin(ctx context.Context, username, email, password string) error {
	exists, err := s.users.ExistsByUsernameOrRole(ctx, username, model.RoleSuperAdmin)
	if err != nil {
		return fmt.Errorf("check super admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(ctx, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleSuperAdmin,
	})
}

// ComparePassword reports whether plaintext matches the stored bcrypt hash.
func ComparePassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
