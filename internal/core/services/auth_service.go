package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portsrepo "github.com/smartstore/smartstore_backend/internal/core/ports/repositories"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/utils"
	"github.com/smartstore/smartstore_backend/pkg/config"
)

// ErrInvalidCredentials is returned for any login failure. Wrong ID, wrong
// password, suspension and plan expiry all collapse into it so the response
// leaks nothing about which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// authService implements the AuthSvcFacade interface.
type authService struct {
	BaseService
	storeRepo portsrepo.StoreReader
	cfg       *config.Config
	now       func() time.Time
}

// NewAuthService creates a new auth service.
func NewAuthService(storeRepo portsrepo.StoreReader, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{
		storeRepo: storeRepo,
		cfg:       cfg,
		now:       time.Now,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// StoreLogin verifies store credentials and issues a bearer token scoped to
// that store.
func (s *authService) StoreLogin(ctx context.Context, storeID, password string) (string, *domain.Store, error) {
	store, err := s.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login attempt for unknown store", slog.String("store_id", storeID))
			return "", nil, ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to load store for login", slog.String("store_id", storeID))
		return "", nil, err
	}

	if !utils.CheckPasswordHash(password, store.PasswordHash) {
		s.LogInfo(ctx, "Login attempt with wrong password", slog.String("store_id", storeID))
		return "", nil, ErrInvalidCredentials
	}

	if store.Status != domain.StoreActive {
		s.LogInfo(ctx, "Login attempt for suspended store", slog.String("store_id", storeID))
		return "", nil, ErrInvalidCredentials
	}
	if !store.ExpiryDate.IsZero() && store.ExpiryDate.Before(s.now().UTC()) {
		s.LogInfo(ctx, "Login attempt for expired plan", slog.String("store_id", storeID))
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(store.StoreID, utils.RoleStore, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign store token", slog.String("store_id", storeID))
		return "", nil, err
	}

	s.LogInfo(ctx, "Store logged in", slog.String("store_id", storeID))
	return token, store, nil
}

// AdminLogin verifies the configured back-office credentials and issues an
// admin-scoped bearer token. There is no admin user table; the credential
// pair comes from the environment.
func (s *authService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		s.LogInfo(ctx, "Admin login attempt failed", slog.String("username", username))
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(username, utils.RoleAdmin, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign admin token")
		return "", err
	}

	s.LogInfo(ctx, "Admin logged in", slog.String("username", username))
	return token, nil
}
