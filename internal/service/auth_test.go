package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/webauth-server/internal/mocks"
	"github.com/avolkov/webauth-server/internal/model"
	"github.com/avolkov/webauth-server/internal/testutil"
	"github.com/avolkov/webauth-server/internal/validation"
)

func validRegisterRequest() model.RegisterRequest {
	return model.RegisterRequest{
		Name:            "New User",
		Email:           "newuser@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func newAuth(t *testing.T) (*Auth, *mocks.UserStore, *mocks.PasswordHasher, *mocks.TokenManager) {
	t.Helper()

	userStore := mocks.NewUserStore(t)
	hasher := mocks.NewPasswordHasher(t)
	tokMan := mocks.NewTokenManager(t)

	a := NewAuth(userStore, hasher, tokMan, validation.DefaultPolicy(), testutil.MakeNoopLogger())
	return a, userStore, hasher, tokMan
}

func TestAuth_Register_Success(t *testing.T) {
	ctx := context.Background()
	a, userStore, hasher, _ := newAuth(t)

	hasher.On("Hash", "password123").Return("$2a$10$hash", nil)
	userStore.On("Create", mock.Anything, model.User{
		Name:         "New User",
		Email:        "newuser@example.com",
		PasswordHash: "$2a$10$hash",
	}).Return(model.User{ID: 7, Name: "New User", Email: "newuser@example.com"}, nil)

	id, err := a.Register(ctx, validRegisterRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestAuth_Register_ValidationFailure(t *testing.T) {
	ctx := context.Background()
	a, _, _, _ := newAuth(t)

	_, err := a.Register(ctx, model.RegisterRequest{
		Name:            "A",
		Email:           "invalid-email",
		Password:        "short",
		ConfirmPassword: "x",
	})
	require.Error(t, err)

	var vErr *model.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Fields, 4)
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	a, userStore, hasher, _ := newAuth(t)

	hasher.On("Hash", "password123").Return("$2a$10$hash", nil)
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrDuplicateEmail)

	_, err := a.Register(ctx, validRegisterRequest())
	assert.ErrorIs(t, err, model.ErrDuplicateEmail)
}

func TestAuth_Register_StoreFailure(t *testing.T) {
	ctx := context.Background()
	a, userStore, hasher, _ := newAuth(t)

	hasher.On("Hash", "password123").Return("$2a$10$hash", nil)
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, errors.New("connection refused"))

	_, err := a.Register(ctx, validRegisterRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrDuplicateEmail)
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	a, userStore, hasher, tokMan := newAuth(t)

	user := model.User{ID: 7, Email: "newuser@example.com", PasswordHash: "$2a$10$hash"}
	userStore.On("GetByEmail", mock.Anything, "newuser@example.com").Return(user, nil)
	hasher.On("Verify", "password123", "$2a$10$hash").Return(nil)
	tokMan.On("Generate", int64(7)).Return("signed-token", nil)

	token, err := a.Login(ctx, model.LoginRequest{Email: "newuser@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestAuth_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	ctx := context.Background()

	// Unknown email.
	a, userStore, hasher, _ := newAuth(t)
	userStore.On("GetByEmail", mock.Anything, "missing@example.com").Return(model.User{}, model.ErrNotFound)
	hasher.On("Verify", "password123", mock.Anything).Return(errors.New("password does not match"))

	_, errUnknown := a.Login(ctx, model.LoginRequest{Email: "missing@example.com", Password: "password123"})

	// Wrong password for an existing user.
	a2, userStore2, hasher2, _ := newAuth(t)
	user := model.User{ID: 7, Email: "newuser@example.com", PasswordHash: "$2a$10$hash"}
	userStore2.On("GetByEmail", mock.Anything, "newuser@example.com").Return(user, nil)
	hasher2.On("Verify", "wrongpassword", "$2a$10$hash").Return(errors.New("password does not match"))

	_, errWrong := a2.Login(ctx, model.LoginRequest{Email: "newuser@example.com", Password: "wrongpassword"})

	assert.ErrorIs(t, errUnknown, model.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, model.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuth_Login_ShapeValidation(t *testing.T) {
	ctx := context.Background()
	a, _, _, _ := newAuth(t)

	_, err := a.Login(ctx, model.LoginRequest{})
	var vErr *model.ValidationError
	require.True(t, errors.As(err, &vErr))
}

func TestAuth_Login_StoreFailure(t *testing.T) {
	ctx := context.Background()
	a, userStore, _, _ := newAuth(t)

	userStore.On("GetByEmail", mock.Anything, "newuser@example.com").Return(model.User{}, errors.New("connection refused"))

	_, err := a.Login(ctx, model.LoginRequest{Email: "newuser@example.com", Password: "password123"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_GetUserID(t *testing.T) {
	ctx := context.Background()
	a, _, _, tokMan := newAuth(t)

	tokMan.On("Parse", "signed-token").Return(int64(7), nil)

	id, err := a.GetUserID(ctx, "signed-token")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestAuth_GetUserID_TokenErrorPassesThrough(t *testing.T) {
	ctx := context.Background()
	a, _, _, tokMan := newAuth(t)

	tokMan.On("Parse", "expired-token").Return(int64(0), model.ErrTokenExpired)

	_, err := a.GetUserID(ctx, "expired-token")
	assert.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestAuth_GetUser(t *testing.T) {
	ctx := context.Background()
	a, userStore, _, _ := newAuth(t)

	user := model.User{ID: 7, Name: "New User", Email: "newuser@example.com", PasswordHash: "$2a$10$hash"}
	userStore.On("GetByID", mock.Anything, int64(7)).Return(user, nil)

	got, err := a.GetUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuth_GetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	a, userStore, _, _ := newAuth(t)

	userStore.On("GetByID", mock.Anything, int64(404)).Return(model.User{}, model.ErrNotFound)

	_, err := a.GetUser(ctx, 404)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
