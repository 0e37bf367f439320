// Package store keeps the whole marketplace state in memory and persists
// per-collection JSON snapshots through a KV port. All mutations are
// synchronous and guarded by a single RWMutex; persistence is handed off to a
// notify hook so mutators never block on I/O.
package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"serviciosmarket/core/internal/models"
	"serviciosmarket/core/internal/seed"
)

// Snapshot keys. One KV entry per collection.
const (
	KeyServices = "servicios-market-services"
	KeyQuotes   = "servicios-market-quotes"
	KeySupplies = "servicios-market-supplies"
	KeyPacks    = "servicios-market-packs"
	KeySelected = "servicios-market-selected-quotes"
)

// Keys lists every snapshot key, in persist order.
var Keys = []string{KeyServices, KeyQuotes, KeySupplies, KeyPacks, KeySelected}

// NotifyFunc is invoked after every successful mutation with the snapshot key
// that became dirty. It must not block.
type NotifyFunc func(key string)

// Store is the in-memory state plus its persistence port.
type Store struct {
	mu       sync.RWMutex
	kv       KV
	notify   NotifyFunc
	services []models.ServiceDemand
	quotes   []models.Quote
	supplies []models.Supply
	packs    []models.SupplyPack
	selected map[string]string
}

func New(kv KV) *Store {
	return &Store{
		kv:       kv,
		selected: make(map[string]string),
	}
}

// SetNotify installs the dirty-key hook. Pass nil to disable.
func (s *Store) SetNotify(fn NotifyFunc) {
	s.mu.Lock()
	s.notify = fn
	s.mu.Unlock()
}

func (s *Store) fire(keys ...string) {
	s.mu.RLock()
	fn := s.notify
	s.mu.RUnlock()
	if fn == nil {
		return
	}
	for _, k := range keys {
		fn(k)
	}
}

// Load hydrates every collection from the KV. A key that is missing, fails to
// decode, or fails shape validation falls back to seed data for that key
// alone; other keys keep their persisted snapshots. The selection map is
// rebuilt from the loaded quotes when no valid persisted selection exists.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.services = loadSlice(ctx, s.kv, KeyServices, seed.Services(), true)
	s.quotes = loadSlice(ctx, s.kv, KeyQuotes, seed.Quotes(), false)
	s.supplies = loadSlice(ctx, s.kv, KeySupplies, seed.Supplies(), true)
	s.packs = loadSlice(ctx, s.kv, KeyPacks, []models.SupplyPack{}, false)

	s.selected = nil
	if data, err := s.kv.Get(ctx, KeySelected); err == nil {
		var sel map[string]string
		if json.Unmarshal(data, &sel) == nil && sel != nil {
			s.selected = sel
		}
	}
	if s.selected == nil {
		s.selected = BuildInitialSelection(s.quotes)
	}
	return nil
}

// loadSlice reads one collection snapshot and validates its coarse shape.
// requireNonEmpty keys reject empty arrays; the others accept any array.
func loadSlice[T any](ctx context.Context, kv KV, key string, fallback []T, requireNonEmpty bool) []T {
	data, err := kv.Get(ctx, key)
	if err != nil {
		return fallback
	}
	var out []T
	if json.Unmarshal(data, &out) != nil || out == nil {
		return fallback
	}
	if requireNonEmpty && len(out) == 0 {
		return fallback
	}
	return out
}

// BuildInitialSelection picks a default quote per service: quotes are sorted
// ascending by their raw TotalPrice and the first quote seen for each service
// wins. Totals are compared as stored, without currency normalization; the
// comparison views do normalize.
func BuildInitialSelection(quotes []models.Quote) map[string]string {
	sorted := make([]models.Quote, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalPrice < sorted[j].TotalPrice
	})
	sel := make(map[string]string)
	for _, q := range sorted {
		if _, ok := sel[q.ServiceID]; !ok {
			sel[q.ServiceID] = q.ID
		}
	}
	return sel
}

// ServicePatch carries optional service demand updates. Nil fields are left
// untouched.
type ServicePatch struct {
	Title                    *string
	Description              *string
	Categoria                *models.ServiceCategory
	Direccion                *string
	Ciudad                   *string
	FechaPreferida           *time.Time
	InsumosRequeridos        *[]models.RequiredSupply
	Estado                   *models.ServiceStatus
	CotizacionSeleccionadaID *string
}

// QuotePatch carries optional quote updates.
type QuotePatch struct {
	ProviderName      *string
	TotalPrice        *float64
	Currency          *string
	LeadTimeDays      *int
	Rating            *float64
	Message           *string
	SuppliesBreakdown *[]models.QuoteLine
}

// SupplyPatch carries optional supply updates.
type SupplyPatch struct {
	Name        *string
	Unit        *string
	Stock       *int
	Price       *float64
	Currency    *string
	Category    *string
	Description *string
}

// AddService registers a new demand. The store assigns the id, sets Estado to
// PUBLICADO and stamps CreatedAt; the demand is prepended so newest appears
// first.
func (s *Store) AddService(input models.ServiceDemand) models.ServiceDemand {
	input.ID = models.NewID(models.IDPrefixService)
	input.Estado = models.StatusPublicado
	input.CreatedAt = time.Now().UTC()
	input.CotizacionSeleccionadaID = ""

	s.mu.Lock()
	s.services = append([]models.ServiceDemand{input}, s.services...)
	s.mu.Unlock()

	s.fire(KeyServices)
	return input
}

// UpdateService merges the patch into the demand with the given id. Unknown
// ids are a silent no-op.
func (s *Store) UpdateService(id string, patch ServicePatch) (models.ServiceDemand, bool) {
	s.mu.Lock()
	var updated models.ServiceDemand
	found := false
	for i := range s.services {
		if s.services[i].ID != id {
			continue
		}
		svc := &s.services[i]
		if patch.Title != nil {
			svc.Title = *patch.Title
		}
		if patch.Description != nil {
			svc.Description = *patch.Description
		}
		if patch.Categoria != nil {
			svc.Categoria = *patch.Categoria
		}
		if patch.Direccion != nil {
			svc.Direccion = *patch.Direccion
		}
		if patch.Ciudad != nil {
			svc.Ciudad = *patch.Ciudad
		}
		if patch.FechaPreferida != nil {
			svc.FechaPreferida = *patch.FechaPreferida
		}
		if patch.InsumosRequeridos != nil {
			svc.InsumosRequeridos = *patch.InsumosRequeridos
		}
		if patch.Estado != nil {
			svc.Estado = *patch.Estado
		}
		if patch.CotizacionSeleccionadaID != nil {
			svc.CotizacionSeleccionadaID = *patch.CotizacionSeleccionadaID
		}
		updated = *svc
		found = true
		break
	}
	s.mu.Unlock()

	if found {
		s.fire(KeyServices)
	}
	return updated, found
}

// AddQuote registers a quote for a demand, prepended.
func (s *Store) AddQuote(input models.Quote) models.Quote {
	input.ID = models.NewID(models.IDPrefixQuote)

	s.mu.Lock()
	s.quotes = append([]models.Quote{input}, s.quotes...)
	s.mu.Unlock()

	s.fire(KeyQuotes)
	return input
}

func (s *Store) UpdateQuote(id string, patch QuotePatch) (models.Quote, bool) {
	s.mu.Lock()
	var updated models.Quote
	found := false
	for i := range s.quotes {
		if s.quotes[i].ID != id {
			continue
		}
		q := &s.quotes[i]
		if patch.ProviderName != nil {
			q.ProviderName = *patch.ProviderName
		}
		if patch.TotalPrice != nil {
			q.TotalPrice = *patch.TotalPrice
		}
		if patch.Currency != nil {
			q.Currency = *patch.Currency
		}
		if patch.LeadTimeDays != nil {
			q.LeadTimeDays = *patch.LeadTimeDays
		}
		if patch.Rating != nil {
			q.Rating = *patch.Rating
		}
		if patch.Message != nil {
			q.Message = *patch.Message
		}
		if patch.SuppliesBreakdown != nil {
			q.SuppliesBreakdown = *patch.SuppliesBreakdown
		}
		updated = *q
		found = true
		break
	}
	s.mu.Unlock()

	if found {
		s.fire(KeyQuotes)
	}
	return updated, found
}

// RemoveQuote filters the quote out. The selection map is left untouched even
// if it references the removed quote; readers resolve dangling references at
// lookup time.
func (s *Store) RemoveQuote(id string) bool {
	s.mu.Lock()
	removed := false
	out := s.quotes[:0]
	for _, q := range s.quotes {
		if q.ID == id {
			removed = true
			continue
		}
		out = append(out, q)
	}
	s.quotes = out
	s.mu.Unlock()

	if removed {
		s.fire(KeyQuotes)
	}
	return removed
}

// AddSupply registers a catalog supply, appended so catalog order is stable.
func (s *Store) AddSupply(input models.Supply) models.Supply {
	input.ID = models.NewID(models.IDPrefixSupply)

	s.mu.Lock()
	s.supplies = append(s.supplies, input)
	s.mu.Unlock()

	s.fire(KeySupplies)
	return input
}

func (s *Store) UpdateSupply(id string, patch SupplyPatch) (models.Supply, bool) {
	s.mu.Lock()
	var updated models.Supply
	found := false
	for i := range s.supplies {
		if s.supplies[i].ID != id {
			continue
		}
		sp := &s.supplies[i]
		if patch.Name != nil {
			sp.Name = *patch.Name
		}
		if patch.Unit != nil {
			sp.Unit = *patch.Unit
		}
		if patch.Stock != nil {
			sp.Stock = *patch.Stock
		}
		if patch.Price != nil {
			sp.Price = *patch.Price
		}
		if patch.Currency != nil {
			sp.Currency = *patch.Currency
		}
		if patch.Category != nil {
			sp.Category = *patch.Category
		}
		if patch.Description != nil {
			sp.Description = *patch.Description
		}
		updated = *sp
		found = true
		break
	}
	s.mu.Unlock()

	if found {
		s.fire(KeySupplies)
	}
	return updated, found
}

func (s *Store) RemoveSupply(id string) bool {
	s.mu.Lock()
	removed := false
	out := s.supplies[:0]
	for _, sp := range s.supplies {
		if sp.ID == id {
			removed = true
			continue
		}
		out = append(out, sp)
	}
	s.supplies = out
	s.mu.Unlock()

	if removed {
		s.fire(KeySupplies)
	}
	return removed
}

// AddPack registers a supply pack, prepended.
func (s *Store) AddPack(input models.SupplyPack) models.SupplyPack {
	input.ID = models.NewID(models.IDPrefixPack)
	input.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	s.packs = append([]models.SupplyPack{input}, s.packs...)
	s.mu.Unlock()

	s.fire(KeyPacks)
	return input
}

// SelectQuote records the chosen quote for a service and, in the same
// critical section, moves the demand to ASIGNADO with the winning quote id.
// Both changes land together or not at all.
func (s *Store) SelectQuote(serviceID, quoteID string) {
	s.mu.Lock()
	s.selected[serviceID] = quoteID
	for i := range s.services {
		if s.services[i].ID == serviceID {
			s.services[i].Estado = models.StatusAsignado
			s.services[i].CotizacionSeleccionadaID = quoteID
			break
		}
	}
	s.mu.Unlock()

	s.fire(KeySelected, KeyServices)
}

// SelectedQuote resolves the current selection for a service. A selection
// pointing at a quote that no longer exists reports ok=false, same as no
// selection at all.
func (s *Store) SelectedQuote(serviceID string) (models.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quoteID, ok := s.selected[serviceID]
	if !ok {
		return models.Quote{}, false
	}
	for _, q := range s.quotes {
		if q.ID == quoteID {
			return q, true
		}
	}
	return models.Quote{}, false
}

// SelectedQuotes returns a copy of the raw selection map.
func (s *Store) SelectedQuotes() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.selected))
	for k, v := range s.selected {
		out[k] = v
	}
	return out
}

func (s *Store) Services() []models.ServiceDemand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ServiceDemand, len(s.services))
	copy(out, s.services)
	return out
}

func (s *Store) Service(id string) (models.ServiceDemand, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.ServiceDemand{}, false
}

func (s *Store) Quotes() []models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Quote, len(s.quotes))
	copy(out, s.quotes)
	return out
}

func (s *Store) Quote(id string) (models.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.quotes {
		if q.ID == id {
			return q, true
		}
	}
	return models.Quote{}, false
}

// QuotesForService returns every quote attached to a demand, preserving
// store order.
func (s *Store) QuotesForService(serviceID string) []models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Quote
	for _, q := range s.quotes {
		if q.ServiceID == serviceID {
			out = append(out, q)
		}
	}
	return out
}

func (s *Store) Supplies() []models.Supply {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Supply, len(s.supplies))
	copy(out, s.supplies)
	return out
}

func (s *Store) Supply(id string) (models.Supply, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sp := range s.supplies {
		if sp.ID == id {
			return sp, true
		}
	}
	return models.Supply{}, false
}

func (s *Store) Packs() []models.SupplyPack {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SupplyPack, len(s.packs))
	copy(out, s.packs)
	return out
}

// Persist serializes the collection behind key and writes it through the KV.
// The write error is returned to the caller rather than swallowed, so the
// background worker can log failures.
func (s *Store) Persist(ctx context.Context, key string) error {
	s.mu.RLock()
	var payload any
	switch key {
	case KeyServices:
		payload = s.services
	case KeyQuotes:
		payload = s.quotes
	case KeySupplies:
		payload = s.supplies
	case KeyPacks:
		payload = s.packs
	case KeySelected:
		payload = s.selected
	default:
		s.mu.RUnlock()
		return ErrKeyNotFound
	}
	data, err := json.Marshal(payload)
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, data)
}

// PersistAll writes every collection, stopping at the first error.
func (s *Store) PersistAll(ctx context.Context) error {
	for _, key := range Keys {
		if err := s.Persist(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
