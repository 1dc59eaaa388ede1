package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"landingcms/internal/auth"
	errs "landingcms/internal/errors"
	"landingcms/internal/model"
	"landingcms/internal/repository"
	"landingcms/internal/service"
)

// MockContactRepository is a mock implementation of repository.ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

// MockArticleRepository is a mock implementation of repository.ArticleRepository.
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *model.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id uint) (*model.ArticleWithAuthor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArticleWithAuthor), args.Error(1)
}

func (m *MockArticleRepository) List(ctx context.Context, opts repository.ArticleListOptions) ([]model.ArticleWithAuthor, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.ArticleWithAuthor), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) ListPublished(ctx context.Context, opts repository.ArticleListOptions) ([]model.PublishedArticle, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.PublishedArticle), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) Update(ctx context.Context, id uint, values map[string]interface{}) error {
	args := m.Called(ctx, id, values)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) IncrementViews(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

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

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newApp() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	return e
}

func jsonRequest(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestContactHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "valid submission",
			body:           `{"name":"Nguyen Van A","email":"a@example.com","phone":"0912345678","message":"please call me"}`,
			expectedStatus: http.StatusCreated,
			expectedBody:   `"success":true`,
		},
		{
			name:           "alphabetic phone",
			body:           `{"name":"A","email":"a@example.com","phone":"abc","message":"hi"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"phone`,
		},
		{
			name:           "invalid email",
			body:           `{"name":"A","email":"not-an-email","phone":"0912345678","message":"hi"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"email`,
		},
		{
			name:           "malformed json",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"success":false`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockContactRepository)
			if tt.expectedStatus == http.StatusCreated {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)
			}

			e := newApp()
			e.POST("/api/contacts", NewContactHandler(service.NewContactService(repo)).Create)

			rec := jsonRequest(e, http.MethodPost, "/api/contacts", tt.body, "")
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			if tt.expectedStatus != http.StatusCreated {
				assert.Contains(t, rec.Body.String(), `"success":false`)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestArticleHandler_GetPublished(t *testing.T) {
	publicApp := func(repo *MockArticleRepository) *echo.Echo {
		e := newApp()
		e.GET("/api/articles/public/:id", NewArticleHandler(service.NewArticleService(repo)).GetPublished)
		return e
	}

	t.Run("missing article", func(t *testing.T) {
		repo := new(MockArticleRepository)
		repo.On("FindByID", mock.Anything, uint(99)).Return(nil, errs.ErrNotFound)

		rec := jsonRequest(publicApp(repo), http.MethodGet, "/api/articles/public/99", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		repo := new(MockArticleRepository)

		rec := jsonRequest(publicApp(repo), http.MethodGet, "/api/articles/public/abc", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("published article served", func(t *testing.T) {
		article := &model.ArticleWithAuthor{
			Article: model.Article{ID: 5, Title: "hello", Status: model.StatusPublished, AuthorID: 1},
		}
		repo := new(MockArticleRepository)
		repo.On("FindByID", mock.Anything, uint(5)).Return(article, nil)
		repo.On("IncrementViews", mock.Anything, uint(5)).Return(nil)

		rec := jsonRequest(publicApp(repo), http.MethodGet, "/api/articles/public/5", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
		assert.Contains(t, rec.Body.String(), `"title":"hello"`)
	})
}

func TestAuthHandler_CreateUser_Duplicate(t *testing.T) {
	requester := &model.User{ID: 1, Username: "root", Role: model.RoleSuperAdmin}
	jwtService := auth.NewJWTService("test-secret")
	token, err := jwtService.Issue(requester)
	assert.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(requester, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(errs.ErrDuplicate)

	e := newApp()
	e.POST("/api/auth/create-user", NewAuthHandler(service.NewAuthService(repo, jwtService)).CreateUser,
		auth.Middleware("test-secret"), auth.LoadIdentity(repo), auth.RequireAdmin)

	body := `{"username":"dup","email":"dup@example.com","password":"password123","role":"editor"}`
	rec := jsonRequest(e, http.MethodPost, "/api/auth/create-user", body, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "already exists")
	repo.AssertExpectations(t)
}
