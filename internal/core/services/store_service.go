package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/smartstore/smartstore_backend/internal/apperrors"
	"github.com/smartstore/smartstore_backend/internal/core/domain"
	portsrepo "github.com/smartstore/smartstore_backend/internal/core/ports/repositories"
	portssvc "github.com/smartstore/smartstore_backend/internal/core/ports/services"
	"github.com/smartstore/smartstore_backend/internal/dto"
	"github.com/smartstore/smartstore_backend/internal/utils"
)

// Registering a store retries ID generation a few times before giving up;
// the four-digit space is small but collisions are rare in practice.
const storeIDRetries = 5

// storeService implements the StoreSvcFacade and SettingsSvcFacade interfaces.
type storeService struct {
	BaseService
	storeRepo portsrepo.StoreRepositoryFacade
}

// NewStoreService creates a new store registry service.
func NewStoreService(storeRepo portsrepo.StoreRepositoryFacade) *storeService {
	return &storeService{storeRepo: storeRepo}
}

var (
	_ portssvc.StoreSvcFacade    = (*storeService)(nil)
	_ portssvc.SettingsSvcFacade = (*storeService)(nil)
)

// RegisterStore creates a new tenant with generated credentials. The plaintext
// password is returned exactly once and never stored.
func (s *storeService) RegisterStore(ctx context.Context, req dto.CreateStoreRequest, actor string) (*domain.Store, string, error) {
	password, err := utils.GenerateStorePassword()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate credentials: %w", err)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	store := domain.Store{
		PasswordHash: hash,
		StoreName:    req.StoreName,
		OwnerName:    req.OwnerName,
		Mobile:       req.Mobile,
		Email:        req.Email,
		Address:      req.Address,
		PlanType:     planOrDefault(req.PlanType),
		StartDate:    dateOrNow(req.StartDate, now),
		ExpiryDate:   dateOrNow(req.ExpiryDate, now.AddDate(0, 1, 0)),
		Status:       domain.StoreActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	for attempt := 0; attempt < storeIDRetries; attempt++ {
		store.StoreID, err = utils.GenerateStoreID()
		if err != nil {
			return nil, "", fmt.Errorf("failed to generate store ID: %w", err)
		}
		err = s.storeRepo.SaveStore(ctx, store)
		if err == nil {
			s.LogInfo(ctx, "Store registered",
				slog.String("store_id", store.StoreID),
				slog.String("store_name", store.StoreName))
			return &store, password, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			break
		}
	}

	s.LogError(ctx, err, "Failed to register store", slog.String("store_name", req.StoreName))
	return nil, "", fmt.Errorf("failed to register store: %w", err)
}

// GetStoreByID retrieves one store registration.
func (s *storeService) GetStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	store, err := s.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// ListStores retrieves all registered stores.
func (s *storeService) ListStores(ctx context.Context) ([]domain.Store, error) {
	stores, err := s.storeRepo.ListStores(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stores")
		return nil, err
	}
	return stores, nil
}

// UpdateStore edits a registration. A supplied password rotates the login
// credential; a supplied status toggles suspension.
func (s *storeService) UpdateStore(ctx context.Context, storeID string, req dto.UpdateStoreRequest, actor string) (*domain.Store, error) {
	store, err := s.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if req.StoreName != nil {
		store.StoreName = *req.StoreName
	}
	if req.OwnerName != nil {
		store.OwnerName = *req.OwnerName
	}
	if req.Mobile != nil {
		store.Mobile = *req.Mobile
	}
	if req.Email != nil {
		store.Email = *req.Email
	}
	if req.Address != nil {
		store.Address = *req.Address
	}
	if req.PlanType != nil {
		store.PlanType = *req.PlanType
	}
	if req.StartDate != nil {
		store.StartDate = req.StartDate.UTC()
	}
	if req.ExpiryDate != nil {
		store.ExpiryDate = req.ExpiryDate.UTC()
	}
	if req.Status != nil {
		store.Status = *req.Status
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		store.PasswordHash = hash
	}
	store.LastUpdatedAt = time.Now().UTC()
	store.LastUpdatedBy = actor

	if err := s.storeRepo.UpdateStore(ctx, *store); err != nil {
		s.LogError(ctx, err, "Failed to update store", slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	s.LogInfo(ctx, "Store updated", slog.String("store_id", storeID))
	return store, nil
}

// DeleteStore removes a tenant. The schema cascades the delete across the
// store's products, transactions, movements, suppliers and settings.
func (s *storeService) DeleteStore(ctx context.Context, storeID string) error {
	if err := s.storeRepo.DeleteStore(ctx, storeID); err != nil {
		s.LogError(ctx, err, "Failed to delete store", slog.String("store_id", storeID))
		return err
	}
	s.LogInfo(ctx, "Store deleted", slog.String("store_id", storeID))
	return nil
}

// GetSettings retrieves a store's profile. A store that has never saved
// settings gets a profile derived from its registry record.
func (s *storeService) GetSettings(ctx context.Context, storeID string) (*domain.StoreSettings, error) {
	settings, err := s.storeRepo.GetSettings(ctx, storeID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load settings", slog.String("store_id", storeID))
		return nil, err
	}

	store, err := s.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return &domain.StoreSettings{
		StoreID:   store.StoreID,
		StoreName: store.StoreName,
		Address:   store.Address,
		Phone:     store.Mobile,
	}, nil
}

// UpdateSettings upserts a store's profile.
func (s *storeService) UpdateSettings(ctx context.Context, storeID string, req dto.UpdateSettingsRequest) (*domain.StoreSettings, error) {
	settings := domain.StoreSettings{
		StoreID:   storeID,
		StoreName: req.StoreName,
		Address:   req.Address,
		Phone:     req.Phone,
		GSTIN:     req.GSTIN,
	}
	if err := s.storeRepo.SaveSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings", slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	s.LogInfo(ctx, "Settings updated", slog.String("store_id", storeID))
	return &settings, nil
}

func planOrDefault(plan string) string {
	if plan == "" {
		return "Monthly"
	}
	return plan
}
