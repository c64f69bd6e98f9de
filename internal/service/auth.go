package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkov/webauth-server/internal/logger"
	"github.com/avolkov/webauth-server/internal/model"
	"github.com/avolkov/webauth-server/internal/validation"
)

// dummyHash is a well-formed bcrypt digest verified against when a login
// names an unknown email, so that path costs the same as a real
// password check.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Auth orchestrates validation, hashing, persistence and token issuance
// for the register/login/verify operations. It holds no per-request
// state.
type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	policy       validation.Policy
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	policy validation.Policy,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		policy:       policy,
		logger:       logger,
	}
}

// Register validates the request, hashes the password and persists the
// user. Returns the new user's ID. A duplicate email is reported by the
// store's unique constraint, never by a pre-check, so concurrent
// registrations of the same email resolve to exactly one success.
func (a *Auth) Register(ctx context.Context, req model.RegisterRequest) (int64, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", req.Email)

	if err := validation.ValidateRegistration(req, a.policy); err != nil {
		a.logger.Info("Auth service: registration input rejected",
			"email", req.Email)
		return 0, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", req.Email,
			"error", err.Error())
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			a.logger.Info("Auth service: email already registered",
				"email", req.Email)
			return 0, err
		}
		a.logger.Error("Auth service: failed to create user",
			"email", req.Email,
			"error", err.Error())
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"email", req.Email,
		"user_id", user.ID)

	return user.ID, nil
}

// Login verifies the credentials and issues a bearer token. An unknown
// email and a wrong password both return ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", req.Email)

	if err := validation.ValidateLogin(req); err != nil {
		return "", err
	}

	user, err := a.userStore.GetByEmail(ctx, req.Email)
	if errors.Is(err, model.ErrNotFound) {
		// Burn a verification anyway to keep timing comparable.
		_ = a.hasher.Verify(req.Password, dummyHash)
		a.logger.Info("Auth service: login rejected",
			"email", req.Email)
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", req.Email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.hasher.Verify(req.Password, user.PasswordHash); err != nil {
		a.logger.Info("Auth service: login rejected",
			"email", req.Email)
		return "", model.ErrInvalidCredentials
	}

	token, err := a.tokenManager.Generate(user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"email", req.Email,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login successful",
		"email", req.Email,
		"user_id", user.ID)

	return token, nil
}

// GetUserID resolves a bearer token to the user ID it was issued for.
// Token errors pass through untouched for the boundary to map.
func (a *Auth) GetUserID(ctx context.Context, token string) (int64, error) {
	userID, err := a.tokenManager.Parse(token)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// GetUser loads the user record for an authenticated principal.
func (a *Auth) GetUser(ctx context.Context, userID int64) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, err
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by id",
			"user_id", userID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}
