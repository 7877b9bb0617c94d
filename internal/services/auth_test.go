package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/grenade-guide/internal/jwt"
	"github.com/sbilibin2017/grenade-guide/internal/models"
	"github.com/sbilibin2017/grenade-guide/internal/repositories"
	"github.com/sbilibin2017/grenade-guide/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenProvider(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, mockSessions)

	tests := []struct {
		name         string
		username     string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "a@x.com",
			password: "secret1",
		},
		{
			name:         "user already exists",
			username:     "bob",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "duplicate on insert race",
			username:  "carol",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: repositories.ErrDuplicate,
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "dan",
			email:     "dan@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &tt.username, &tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, tt.email, gomock.Any(), models.RoleUser).
					DoAndReturn(func(_ context.Context, username, email, hash, role string) (*models.UserDB, error) {
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						// The stored hash must verify against the original password.
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						return &models.UserDB{
							UserID:       uuid.New(),
							Username:     username,
							Email:        email,
							PasswordHash: hash,
							Role:         role,
						}, nil
					})
			}

			user, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, models.RoleUser, user.Role)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenProvider(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, mockSessions)

	password := "secret1"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()
	sessionID := uuid.New()

	t.Run("successful login", func(t *testing.T) {
		username := "alice"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, nil).
			Return(&models.UserDB{UserID: userID, Username: username, PasswordHash: string(hashed)}, nil)
		mockTokens.EXPECT().
			Generate(gomock.Any(), userID, false).
			Return("token123", sessionID, nil)
		mockTokens.EXPECT().
			Expiration(false).
			Return(time.Hour)
		mockSessions.EXPECT().
			Save(gomock.Any(), sessionID, userID, time.Hour).
			Return(nil)

		token, err := svc.Login(context.Background(), username, password, false)
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
	})

	t.Run("remember selects extended lifetime", func(t *testing.T) {
		username := "alice"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, nil).
			Return(&models.UserDB{UserID: userID, Username: username, PasswordHash: string(hashed)}, nil)
		mockTokens.EXPECT().
			Generate(gomock.Any(), userID, true).
			Return("token456", sessionID, nil)
		mockTokens.EXPECT().
			Expiration(true).
			Return(30 * 24 * time.Hour)
		mockSessions.EXPECT().
			Save(gomock.Any(), sessionID, userID, 30*24*time.Hour).
			Return(nil)

		token, err := svc.Login(context.Background(), username, password, true)
		assert.NoError(t, err)
		assert.Equal(t, "token456", token)
	})

	t.Run("user does not exist", func(t *testing.T) {
		username := "ghost"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, nil).
			Return(nil, nil)

		token, err := svc.Login(context.Background(), username, password, false)
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
		assert.Empty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		username := "alice"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, nil).
			Return(&models.UserDB{UserID: userID, Username: username, PasswordHash: string(hashed)}, nil)

		token, err := svc.Login(context.Background(), username, "wrongpass", false)
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("session save error", func(t *testing.T) {
		username := "alice"
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, nil).
			Return(&models.UserDB{UserID: userID, Username: username, PasswordHash: string(hashed)}, nil)
		mockTokens.EXPECT().
			Generate(gomock.Any(), userID, false).
			Return("token123", sessionID, nil)
		mockTokens.EXPECT().
			Expiration(false).
			Return(time.Hour)
		mockSessions.EXPECT().
			Save(gomock.Any(), sessionID, userID, time.Hour).
			Return(errors.New("redis down"))

		token, err := svc.Login(context.Background(), username, password, false)
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}

func TestAuthService_CurrentIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenProvider(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, mockSessions)

	userID := uuid.New()
	sessionID := uuid.New()
	claims := &jwt.Claims{UserID: userID, SessionID: sessionID}

	t.Run("valid session resolves user", func(t *testing.T) {
		mockTokens.EXPECT().
			GetClaims(gomock.Any(), "token123").
			Return(claims, nil)
		mockSessions.EXPECT().
			Get(gomock.Any(), sessionID).
			Return(userID, nil)
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Username: "alice"}, nil)

		user, err := svc.CurrentIdentity(context.Background(), "token123")
		assert.NoError(t, err)
		assert.Equal(t, userID, user.UserID)
	})

	t.Run("malformed token", func(t *testing.T) {
		mockTokens.EXPECT().
			GetClaims(gomock.Any(), "garbage").
			Return(nil, errors.New("invalid token"))

		user, err := svc.CurrentIdentity(context.Background(), "garbage")
		assert.ErrorIs(t, err, services.ErrInvalidSession)
		assert.Nil(t, user)
	})

	t.Run("revoked session", func(t *testing.T) {
		mockTokens.EXPECT().
			GetClaims(gomock.Any(), "token123").
			Return(claims, nil)
		mockSessions.EXPECT().
			Get(gomock.Any(), sessionID).
			Return(uuid.Nil, repositories.ErrNotFound)

		user, err := svc.CurrentIdentity(context.Background(), "token123")
		assert.ErrorIs(t, err, services.ErrInvalidSession)
		assert.Nil(t, user)
	})

	t.Run("session bound to another user", func(t *testing.T) {
		mockTokens.EXPECT().
			GetClaims(gomock.Any(), "token123").
			Return(claims, nil)
		mockSessions.EXPECT().
			Get(gomock.Any(), sessionID).
			Return(uuid.New(), nil)

		user, err := svc.CurrentIdentity(context.Background(), "token123")
		assert.ErrorIs(t, err, services.ErrInvalidSession)
		assert.Nil(t, user)
	})

	t.Run("user row gone", func(t *testing.T) {
		mockTokens.EXPECT().
			GetClaims(gomock.Any(), "token123").
			Return(claims, nil)
		mockSessions.EXPECT().
			Get(gomock.Any(), sessionID).
			Return(userID, nil)
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, repositories.ErrNotFound)

		user, err := svc.CurrentIdentity(context.Background(), "token123")
		assert.ErrorIs(t, err, services.ErrInvalidSession)
		assert.Nil(t, user)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockTokens := services.NewMockTokenProvider(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockTokens, mockSessions)

	sessionID := uuid.New()
	claims := &jwt.Claims{UserID: uuid.New(), SessionID: sessionID}

	t.Run("logout revokes session", func(t *testing.T) {
		mockTokens.EXPECT().
			GetClaims(gomock.Any(), "token123").
			Return(claims, nil)
		mockSessions.EXPECT().
			Delete(gomock.Any(), sessionID).
			Return(nil)

		assert.NoError(t, svc.Logout(context.Background(), "token123"))
	})

	t.Run("invalid token is a no-op", func(t *testing.T) {
		mockTokens.EXPECT().
			GetClaims(gomock.Any(), "garbage").
			Return(nil, errors.New("invalid token"))

		assert.NoError(t, svc.Logout(context.Background(), "garbage"))
	})
}
