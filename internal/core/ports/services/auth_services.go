package services

import (
	"context"

	"github.com/smartstore/smartstore_backend/internal/core/domain"
)

// AuthSvcFacade defines the login surface. Store logins authenticate against
// the tenant registry; the admin login is a fixed-credential check from
// configuration.
type AuthSvcFacade interface {
	// StoreLogin verifies store credentials and issues a bearer token scoped
	// to that store. Suspended or expired stores are rejected.
	StoreLogin(ctx context.Context, storeID, password string) (string, *domain.Store, error)

	// AdminLogin verifies the configured admin credentials and issues an
	// admin-scoped bearer token.
	AdminLogin(ctx context.Context, username, password string) (string, error)
}
