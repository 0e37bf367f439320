package services

import (
	"context"
	"errors"

	"serviciosmarket/core/internal/models"
	"serviciosmarket/core/internal/money"
	"serviciosmarket/core/internal/store"
)

var (
	ErrSupplyNotFound = errors.New("supply not found")
	ErrEmptyPack      = errors.New("pack must reference at least one supply")
)

// PackInput describes a supply pack to assemble. Quantities is keyed by
// supply id; a missing entry means quantity 1.
type PackInput struct {
	Name        string         `json:"name"`
	SupplyIDs   []string       `json:"supplyIds"`
	Quantities  map[string]int `json:"quantities"`
	DiscountPct float64        `json:"discountPct"`
	CreatedBy   string         `json:"createdBy"`
}

// ICatalogService defines the interface for supply catalog operations.
type ICatalogService interface {
	ListSupplies(ctx context.Context) ([]models.Supply, error)
	GetSupply(ctx context.Context, id string) (*models.Supply, error)
	AddSupply(ctx context.Context, input models.Supply) (*models.Supply, error)
	UpdateSupply(ctx context.Context, id string, patch store.SupplyPatch) (*models.Supply, error)
	RemoveSupply(ctx context.Context, id string) error
	ListPacks(ctx context.Context) ([]models.SupplyPack, error)
	BuildPack(ctx context.Context, input PackInput) (*models.SupplyPack, error)
}

// catalogService implements ICatalogService over the state store.
type catalogService struct {
	st *store.Store
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(st *store.Store) ICatalogService {
	return &catalogService{st: st}
}

func (s *catalogService) ListSupplies(_ context.Context) ([]models.Supply, error) {
	return s.st.Supplies(), nil
}

func (s *catalogService) GetSupply(_ context.Context, id string) (*models.Supply, error) {
	sp, ok := s.st.Supply(id)
	if !ok {
		return nil, ErrSupplyNotFound
	}
	return &sp, nil
}

func (s *catalogService) AddSupply(_ context.Context, input models.Supply) (*models.Supply, error) {
	created := s.st.AddSupply(input)
	return &created, nil
}

func (s *catalogService) UpdateSupply(_ context.Context, id string, patch store.SupplyPatch) (*models.Supply, error) {
	updated, ok := s.st.UpdateSupply(id, patch)
	if !ok {
		return nil, ErrSupplyNotFound
	}
	return &updated, nil
}

func (s *catalogService) RemoveSupply(_ context.Context, id string) error {
	if !s.st.RemoveSupply(id) {
		return ErrSupplyNotFound
	}
	return nil
}

func (s *catalogService) ListPacks(_ context.Context) ([]models.SupplyPack, error) {
	return s.st.Packs(), nil
}

// BuildPack resolves the referenced supplies, prices the bundle in USD and
// stores the resulting pack. Every referenced supply must exist.
func (s *catalogService) BuildPack(_ context.Context, input PackInput) (*models.SupplyPack, error) {
	if len(input.SupplyIDs) == 0 {
		return nil, ErrEmptyPack
	}

	supplies := make([]models.Supply, 0, len(input.SupplyIDs))
	for _, id := range input.SupplyIDs {
		sp, ok := s.st.Supply(id)
		if !ok {
			return nil, ErrSupplyNotFound
		}
		supplies = append(supplies, sp)
	}

	base, total := money.PackPrice(supplies, input.Quantities, input.DiscountPct)
	created := s.st.AddPack(models.SupplyPack{
		Name:       input.Name,
		SupplyIDs:  append([]string(nil), input.SupplyIDs...),
		BasePrice:  base,
		TotalPrice: total,
		CreatedBy:  input.CreatedBy,
	})
	return &created, nil
}
