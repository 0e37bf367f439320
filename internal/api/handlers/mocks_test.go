package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"serviciosmarket/core/internal/models"
	"serviciosmarket/core/internal/services"
	"serviciosmarket/core/internal/store"
)

// --- Mocks ---

// MockAuthService implements services.IAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.LoginResult), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthService) SwitchUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockMarketService implements services.IMarketService
type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) ListDemands(ctx context.Context) ([]models.ServiceDemand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceDemand), args.Error(1)
}

func (m *MockMarketService) GetDemand(ctx context.Context, id string) (*models.ServiceDemand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceDemand), args.Error(1)
}

func (m *MockMarketService) PublishDemand(ctx context.Context, input models.ServiceDemand) (*models.ServiceDemand, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceDemand), args.Error(1)
}

func (m *MockMarketService) UpdateDemand(ctx context.Context, id string, patch store.ServicePatch) (*models.ServiceDemand, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceDemand), args.Error(1)
}

func (m *MockMarketService) QuotesForDemand(ctx context.Context, serviceID string) ([]models.Quote, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Quote), args.Error(1)
}

func (m *MockMarketService) SubmitQuote(ctx context.Context, input models.Quote) (*models.Quote, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quote), args.Error(1)
}

func (m *MockMarketService) UpdateQuote(ctx context.Context, id string, patch store.QuotePatch) (*models.Quote, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quote), args.Error(1)
}

func (m *MockMarketService) WithdrawQuote(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMarketService) Compare(ctx context.Context, serviceID string) (*services.Comparison, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Comparison), args.Error(1)
}

func (m *MockMarketService) SelectQuote(ctx context.Context, serviceID, quoteID string) (*models.ServiceDemand, error) {
	args := m.Called(ctx, serviceID, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceDemand), args.Error(1)
}

func (m *MockMarketService) SelectedQuote(ctx context.Context, serviceID string) (*models.Quote, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quote), args.Error(1)
}

// MockCatalogService implements services.ICatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListSupplies(ctx context.Context) ([]models.Supply, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Supply), args.Error(1)
}

func (m *MockCatalogService) GetSupply(ctx context.Context, id string) (*models.Supply, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supply), args.Error(1)
}

func (m *MockCatalogService) AddSupply(ctx context.Context, input models.Supply) (*models.Supply, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supply), args.Error(1)
}

func (m *MockCatalogService) UpdateSupply(ctx context.Context, id string, patch store.SupplyPatch) (*models.Supply, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supply), args.Error(1)
}

func (m *MockCatalogService) RemoveSupply(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) ListPacks(ctx context.Context) ([]models.SupplyPack, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SupplyPack), args.Error(1)
}

func (m *MockCatalogService) BuildPack(ctx context.Context, input services.PackInput) (*models.SupplyPack, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SupplyPack), args.Error(1)
}
