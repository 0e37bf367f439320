package services

import (
	"context"
	"errors"

	"serviciosmarket/core/internal/models"
	"serviciosmarket/core/internal/money"
	"serviciosmarket/core/internal/store"
)

var (
	ErrDemandNotFound = errors.New("service demand not found")
	ErrQuoteNotFound  = errors.New("quote not found")
	// ErrQuoteMismatch is returned when a quote is selected for a demand it
	// was not submitted against.
	ErrQuoteMismatch = errors.New("quote does not belong to service demand")
)

// ComparisonRow is one quote with its total normalized to USD and a
// per-line subtotal for each entry in its supplies breakdown.
type ComparisonRow struct {
	Quote     models.Quote       `json:"quote"`
	TotalUSD  float64            `json:"totalUsd"`
	Breakdown []money.LineAmount `json:"breakdown,omitempty"`
}

// Comparison is the side-by-side view of every quote on a demand. Min and
// max cover the USD-normalized totals; both are zero when no quotes exist.
type Comparison struct {
	ServiceID   string          `json:"serviceId"`
	Rows        []ComparisonRow `json:"rows"`
	MinTotalUSD float64         `json:"minTotalUsd"`
	MaxTotalUSD float64         `json:"maxTotalUsd"`
}

// IMarketService defines the interface for demand and quote operations.
type IMarketService interface {
	ListDemands(ctx context.Context) ([]models.ServiceDemand, error)
	GetDemand(ctx context.Context, id string) (*models.ServiceDemand, error)
	PublishDemand(ctx context.Context, input models.ServiceDemand) (*models.ServiceDemand, error)
	UpdateDemand(ctx context.Context, id string, patch store.ServicePatch) (*models.ServiceDemand, error)
	QuotesForDemand(ctx context.Context, serviceID string) ([]models.Quote, error)
	SubmitQuote(ctx context.Context, input models.Quote) (*models.Quote, error)
	UpdateQuote(ctx context.Context, id string, patch store.QuotePatch) (*models.Quote, error)
	WithdrawQuote(ctx context.Context, id string) error
	Compare(ctx context.Context, serviceID string) (*Comparison, error)
	SelectQuote(ctx context.Context, serviceID, quoteID string) (*models.ServiceDemand, error)
	SelectedQuote(ctx context.Context, serviceID string) (*models.Quote, error)
}

// marketService implements IMarketService over the state store.
type marketService struct {
	st *store.Store
}

// NewMarketService creates a new MarketService.
func NewMarketService(st *store.Store) IMarketService {
	return &marketService{st: st}
}

func (s *marketService) ListDemands(_ context.Context) ([]models.ServiceDemand, error) {
	return s.st.Services(), nil
}

func (s *marketService) GetDemand(_ context.Context, id string) (*models.ServiceDemand, error) {
	svc, ok := s.st.Service(id)
	if !ok {
		return nil, ErrDemandNotFound
	}
	return &svc, nil
}

func (s *marketService) PublishDemand(_ context.Context, input models.ServiceDemand) (*models.ServiceDemand, error) {
	created := s.st.AddService(input)
	return &created, nil
}

func (s *marketService) UpdateDemand(_ context.Context, id string, patch store.ServicePatch) (*models.ServiceDemand, error) {
	updated, ok := s.st.UpdateService(id, patch)
	if !ok {
		return nil, ErrDemandNotFound
	}
	return &updated, nil
}

func (s *marketService) QuotesForDemand(_ context.Context, serviceID string) ([]models.Quote, error) {
	if _, ok := s.st.Service(serviceID); !ok {
		return nil, ErrDemandNotFound
	}
	return s.st.QuotesForService(serviceID), nil
}

func (s *marketService) SubmitQuote(_ context.Context, input models.Quote) (*models.Quote, error) {
	if _, ok := s.st.Service(input.ServiceID); !ok {
		return nil, ErrDemandNotFound
	}
	created := s.st.AddQuote(input)
	return &created, nil
}

func (s *marketService) UpdateQuote(_ context.Context, id string, patch store.QuotePatch) (*models.Quote, error) {
	updated, ok := s.st.UpdateQuote(id, patch)
	if !ok {
		return nil, ErrQuoteNotFound
	}
	return &updated, nil
}

func (s *marketService) WithdrawQuote(_ context.Context, id string) error {
	if !s.st.RemoveQuote(id) {
		return ErrQuoteNotFound
	}
	return nil
}

// Compare normalizes every quote on a demand to USD and reports the range.
func (s *marketService) Compare(_ context.Context, serviceID string) (*Comparison, error) {
	if _, ok := s.st.Service(serviceID); !ok {
		return nil, ErrDemandNotFound
	}
	quotes := s.st.QuotesForService(serviceID)
	rows := make([]ComparisonRow, 0, len(quotes))
	for _, q := range quotes {
		row := ComparisonRow{Quote: q, TotalUSD: money.QuoteTotalUSD(q)}
		for _, line := range q.SuppliesBreakdown {
			row.Breakdown = append(row.Breakdown, money.LineSubtotal(line, q.Currency))
		}
		rows = append(rows, row)
	}
	min, max := money.QuoteRange(quotes)
	return &Comparison{
		ServiceID:   serviceID,
		Rows:        rows,
		MinTotalUSD: min,
		MaxTotalUSD: max,
	}, nil
}

// SelectQuote validates that the quote exists and belongs to the demand
// before committing the selection.
func (s *marketService) SelectQuote(_ context.Context, serviceID, quoteID string) (*models.ServiceDemand, error) {
	if _, ok := s.st.Service(serviceID); !ok {
		return nil, ErrDemandNotFound
	}
	quote, ok := s.st.Quote(quoteID)
	if !ok {
		return nil, ErrQuoteNotFound
	}
	if quote.ServiceID != serviceID {
		return nil, ErrQuoteMismatch
	}
	s.st.SelectQuote(serviceID, quoteID)
	updated, _ := s.st.Service(serviceID)
	return &updated, nil
}

func (s *marketService) SelectedQuote(_ context.Context, serviceID string) (*models.Quote, error) {
	if _, ok := s.st.Service(serviceID); !ok {
		return nil, ErrDemandNotFound
	}
	quote, ok := s.st.SelectedQuote(serviceID)
	if !ok {
		return nil, ErrQuoteNotFound
	}
	return &quote, nil
}
