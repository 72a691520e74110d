package auth_test

import (
	"context"
	"testing"

	"github.com/mohamedibrahim3/employees-manger/internal/auth"
	autherrors "github.com/mohamedibrahim3/employees-manger/internal/auth/errors"
	authMock "github.com/mohamedibrahim3/employees-manger/internal/auth/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	password := "password123"
	pw, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	mockUser := &auth.User{
		ID:       uuid.New(),
		Username: "admin",
		Name:     "Admin User",
		Password: string(pw),
		Role:     "ADMIN",
	}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByUsername(ctx, "admin").
			Return(mockUser, nil)

		token, refreshToken, resp, err := service.Login(ctx, "admin", password)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, "admin", resp.Username)
		assert.Equal(t, "ADMIN", resp.Role)

		// The role rides in the token so the policy check never needs a
		// user lookup per request.
		parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, mockUser.ID.String(), claims["user_id"])
		assert.Equal(t, "ADMIN", claims["role"])
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByUsername(ctx, "admin").
			Return(mockUser, nil)

		_, _, _, err := service.Login(ctx, "admin", "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown username yields the same error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByUsername(ctx, "ghost").
			Return(nil, gorm.ErrRecordNotFound)

		_, _, _, err := service.Login(ctx, "ghost", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	user := &auth.User{
		ID:       uuid.New(),
		Username: "hr.lead",
		Role:     "HR",
	}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(ctx, user.Username).Return(&auth.User{
			ID:       user.ID,
			Username: user.Username,
			Password: hashed(t, "secret123"),
			Role:     user.Role,
		}, nil)

		_, refreshToken, _, err := service.Login(ctx, user.Username, "secret123")
		assert.NoError(t, err)

		mockRepo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)

		newAccess, newRefresh, resp, err := service.RefreshToken(ctx, refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, "HR", resp.Role)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, _, _, err := service.RefreshToken(ctx, "not.a.token")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	t.Run("success stores a hash, never the password", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *auth.User) error {
				assert.NotEqual(t, "secret123", u.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))
				return nil
			})

		resp, err := service.Register(ctx, auth.RegisterRequest{
			Username: "sec.officer",
			Name:     "Security Officer",
			Password: "secret123",
			Role:     "SECURITY",
		})

		assert.NoError(t, err)
		assert.Equal(t, "sec.officer", resp.Username)
		assert.Equal(t, "SECURITY", resp.Role)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(gorm.ErrDuplicatedKey)

		_, err := service.Register(ctx, auth.RegisterRequest{
			Username: "admin",
			Name:     "Admin",
			Password: "secret123",
			Role:     "ADMIN",
		})

		assert.ErrorIs(t, err, autherrors.ErrUsernameAlreadyRegistered)
	})
}

func TestService_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		_, err := service.GetMe(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GetMe(ctx, id.String())
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	pw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(pw)
}
