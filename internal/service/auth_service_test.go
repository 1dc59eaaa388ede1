package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"landingcms/internal/auth"
	errs "landingcms/internal/errors"
	"landingcms/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByUsernameOrRole(ctx context.Context, username, role string) (bool, error) {
	args := m.Called(ctx, username, role)
	return args.Bool(0), args.Error(1)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(t *testing.T, m *MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "password123",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Username:     "alice",
					Email:        "alice@example.com",
					PasswordHash: hashOf(t, "password123"),
					Role:         model.RoleAdmin,
				}, nil)
			},
		},
		{
			name:     "unknown username",
			username: "ghost",
			password: "password123",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ghost").Return(nil, errs.ErrNotFound)
			},
			expectedError: errs.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
					ID:           1,
					Username:     "alice",
					PasswordHash: hashOf(t, "password123"),
					Role:         model.RoleAdmin,
				}, nil)
			},
			expectedError: errs.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(t, repo)

			service := NewAuthService(repo, jwtService)
			token, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)

				// The issued token must verify and carry the stored role.
				claims, err := jwtService.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, user.ID, claims.UserID)
				assert.Equal(t, user.Username, claims.Username)
				assert.Equal(t, user.Role, claims.Role)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_SameErrorForBothFailures(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	unknown := new(MockUserRepository)
	unknown.On("FindByUsername", mock.Anything, "ghost").Return(nil, errs.ErrNotFound)
	_, _, errUnknown := NewAuthService(unknown, jwtService).Login(context.Background(), "ghost", "pw")

	wrongPw := new(MockUserRepository)
	wrongPw.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
		ID: 1, Username: "alice", PasswordHash: hashOf(t, "password123"),
	}, nil)
	_, _, errWrongPw := NewAuthService(wrongPw, jwtService).Login(context.Background(), "alice", "wrong")

	// No user-existence leakage: both failures look identical to the client.
	assert.EqualError(t, errUnknown, errWrongPw.Error())
}

func TestAuthService_CreateUser(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	tests := []struct {
		name          string
		requesterRole string
		role          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:          "super admin creates admin",
			requesterRole: model.RoleSuperAdmin,
			role:          model.RoleAdmin,
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:          "admin creates editor",
			requesterRole: model.RoleAdmin,
			role:          model.RoleEditor,
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:          "admin cannot create admin",
			requesterRole: model.RoleAdmin,
			role:          model.RoleAdmin,
			expectedError: errs.ErrForbidden,
		},
		{
			name:          "admin cannot create super admin",
			requesterRole: model.RoleAdmin,
			role:          model.RoleSuperAdmin,
			expectedError: errs.ErrForbidden,
		},
		{
			name:          "editor cannot create anyone",
			requesterRole: model.RoleEditor,
			role:          model.RoleEditor,
			expectedError: errs.ErrForbidden,
		},
		{
			name:          "duplicate username or email",
			requesterRole: model.RoleSuperAdmin,
			role:          model.RoleEditor,
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(errs.ErrDuplicate)
			},
			expectedError: errs.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			service := NewAuthService(repo, jwtService)
			user, err := service.CreateUser(context.Background(),
				tt.requesterRole, "newuser", "new@example.com", "password123", tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.role, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, "password123", user.PasswordHash)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_CreateUser_InvalidRole(t *testing.T) {
	service := NewAuthService(new(MockUserRepository), auth.NewJWTService("test-secret"))
	_, err := service.CreateUser(context.Background(),
		model.RoleSuperAdmin, "newuser", "new@example.com", "password123", "owner")

	var ve *errs.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "role", ve.Field)
}

func TestAuthService_EnsureSuperAdmin(t *testing.T) {
	t.Run("creates when absent", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByUsernameOrRole", mock.Anything, "superadmin", model.RoleSuperAdmin).Return(false, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "superadmin" && u.Role == model.RoleSuperAdmin
		})).Return(nil)

		service := NewAuthService(repo, auth.NewJWTService("test-secret"))
		err := service.EnsureSuperAdmin(context.Background(), "superadmin", "sa@example.com", "admin123456")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("no-op when present", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByUsernameOrRole", mock.Anything, "superadmin", model.RoleSuperAdmin).Return(true, nil)

		service := NewAuthService(repo, auth.NewJWTService("test-secret"))
		err := service.EnsureSuperAdmin(context.Background(), "superadmin", "sa@example.com", "admin123456")
		assert.NoError(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestComparePassword(t *testing.T) {
	hash := hashOf(t, "secret")
	assert.True(t, ComparePassword("secret", hash))
	assert.False(t, ComparePassword("other", hash))
}
