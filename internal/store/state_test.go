package store

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serviciosmarket/core/internal/models"
)

type fakeKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return data, nil
}

func (f *fakeKV) Set(_ context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = data
	return nil
}

func newLoadedStore(t *testing.T, kv *fakeKV) *Store {
	t.Helper()
	st := New(kv)
	require.NoError(t, st.Load(context.Background()))
	return st
}

func TestLoadSeedsWhenEmpty(t *testing.T) {
	st := newLoadedStore(t, newFakeKV())

	assert.Len(t, st.Services(), 18)
	assert.Len(t, st.Quotes(), 12)
	assert.Len(t, st.Supplies(), 27)
	assert.Empty(t, st.Packs())
	assert.NotEmpty(t, st.SelectedQuotes())
}

func TestLoadRejectsCorruptSnapshots(t *testing.T) {
	kv := newFakeKV()
	kv.data[KeyServices] = []byte(`{"not":"an array"}`)
	kv.data[KeySupplies] = []byte(`[]`)
	kv.data[KeySelected] = []byte(`null`)

	st := newLoadedStore(t, kv)

	// Corrupt services and empty supplies both fall back to seed data.
	assert.Len(t, st.Services(), 18)
	assert.Len(t, st.Supplies(), 27)
	// A null selection is rebuilt from the loaded quotes.
	assert.NotEmpty(t, st.SelectedQuotes())
}

func TestLoadAcceptsEmptyQuotesAndPacks(t *testing.T) {
	kv := newFakeKV()
	kv.data[KeyQuotes] = []byte(`[]`)
	kv.data[KeyPacks] = []byte(`[]`)

	st := newLoadedStore(t, kv)

	assert.Empty(t, st.Quotes())
	assert.Empty(t, st.Packs())
	assert.Empty(t, st.SelectedQuotes())
}

func TestBuildInitialSelectionPicksLowestRawTotal(t *testing.T) {
	quotes := []models.Quote{
		{ID: "q-a", ServiceID: "s-1", TotalPrice: 500, Currency: "USD"},
		{ID: "q-b", ServiceID: "s-1", TotalPrice: 300, Currency: "USD"},
		{ID: "q-c", ServiceID: "s-1", TotalPrice: 700, Currency: "USD"},
		{ID: "q-d", ServiceID: "s-2", TotalPrice: 100, Currency: "USD"},
	}

	sel := BuildInitialSelection(quotes)

	assert.Equal(t, "q-b", sel["s-1"])
	assert.Equal(t, "q-d", sel["s-2"])
}

func TestBuildInitialSelectionComparesRawAcrossCurrencies(t *testing.T) {
	// Totals are compared as stored, so a large UYU figure loses to a
	// smaller USD figure even when it is cheaper after conversion.
	quotes := []models.Quote{
		{ID: "q-uyu", ServiceID: "s-1", TotalPrice: 39000, Currency: "UYU"},
		{ID: "q-usd", ServiceID: "s-1", TotalPrice: 1500, Currency: "USD"},
	}

	sel := BuildInitialSelection(quotes)

	assert.Equal(t, "q-usd", sel["s-1"])
}

func TestAddServiceDefaults(t *testing.T) {
	st := newLoadedStore(t, newFakeKV())

	created := st.AddService(models.ServiceDemand{
		SolicitanteID: "usr-01",
		Title:         "Pintura de fachada",
		Categoria:     models.CategoriaOtros,
		Estado:        models.StatusCompletado, // caller-supplied state is ignored
	})

	assert.True(t, strings.HasPrefix(created.ID, models.IDPrefixService+"-"))
	assert.Equal(t, models.StatusPublicado, created.Estado)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Empty(t, created.CotizacionSeleccionadaID)

	// Newest demand first.
	services := st.Services()
	require.NotEmpty(t, services)
	assert.Equal(t, created.ID, services[0].ID)
}

func TestUpdateServiceMergesPatch(t *testing.T) {
	st := newLoadedStore(t, newFakeKV())
	created := st.AddService(models.ServiceDemand{Title: "Original", Ciudad: "Montevideo"})

	title := "Actualizado"
	updated, ok := st.UpdateService(created.ID, ServicePatch{Title: &title})

	require.True(t, ok)
	assert.Equal(t, "Actualizado", updated.Title)
	assert.Equal(t, "Montevideo", updated.Ciudad)
}

func TestUpdateServiceUnknownIDIsNoOp(t *testing.T) {
	st := newLoadedStore(t, newFakeKV())
	before := st.Services()

	title := "Nada"
	_, ok := st.UpdateService("srv-missing", ServicePatch{Title: &title})

	assert.False(t, ok)
	assert.Equal(t, before, st.Services())
}

func TestQuoteAndSupplyOrdering(t *testing.T) {
	st := newLoadedStore(t, newFakeKV())

	q := st.AddQuote(models.Quote{ServiceID: "srv-01", TotalPrice: 100, Currency: "USD"})
	assert.True(t, strings.HasPrefix(q.ID, models.IDPrefixQuote+"-"))
	assert.Equal(t, q.ID, st.Quotes()[0].ID)

	sp := st.AddSupply(models.Supply{Name: "Arena fina", Unit: "kg"})
	assert.True(t, strings.HasPrefix(sp.ID, models.IDPrefixSupply+"-"))
	supplies := st.Supplies()
	assert.Equal(t, sp.ID, supplies[len(supplies)-1].ID)
}

func TestRemoveQuote(t *testing.T) {
	st := newLoadedStore(t, newFakeKV())
	q := st.AddQuote(models.Quote{ServiceID: "srv-01", TotalPrice: 100})

	assert.True(t, st.RemoveQuote(q.ID))
	assert.False(t, st.RemoveQuote(q.ID))
	_, ok := st.Quote(q.ID)
	assert.False(t, ok)
}

func TestSelectQuoteUpdatesServiceAtomically(t *testing.T) {
	st := newLoadedStore(t, newFakeKV())
	svc := st.AddService(models.ServiceDemand{Title: "Demo"})
	q := st.AddQuote(models.Quote{ServiceID: svc.ID, TotalPrice: 100, Currency: "USD"})

	st.SelectQuote(svc.ID, q.ID)

	got, ok := st.SelectedQuote(svc.ID)
	require.True(t, ok)
	assert.Equal(t, q.ID, got.ID)

	updated, ok := st.Service(svc.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusAsignado, updated.Estado)
	assert.Equal(t, q.ID, updated.CotizacionSeleccionadaID)
}

func TestSelectedQuoteDanglingReference(t *testing.T) {
	st := newLoadedStore(t, newFakeKV())
	svc := st.AddService(models.ServiceDemand{Title: "Demo"})
	q := st.AddQuote(models.Quote{ServiceID: svc.ID, TotalPrice: 100})

	st.SelectQuote(svc.ID, q.ID)
	st.RemoveQuote(q.ID)

	_, ok := st.SelectedQuote(svc.ID)
	assert.False(t, ok)
	// The raw map still holds the stale entry; only resolution hides it.
	assert.Equal(t, q.ID, st.SelectedQuotes()[svc.ID])
}

func TestPersistAndReload(t *testing.T) {
	kv := newFakeKV()
	st := newLoadedStore(t, kv)
	svc := st.AddService(models.ServiceDemand{Title: "Persistida"})
	q := st.AddQuote(models.Quote{ServiceID: svc.ID, TotalPrice: 250, Currency: "USD"})
	st.SelectQuote(svc.ID, q.ID)

	require.NoError(t, st.PersistAll(context.Background()))

	reloaded := newLoadedStore(t, kv)
	got, ok := reloaded.Service(svc.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusAsignado, got.Estado)
	sel, ok := reloaded.SelectedQuote(svc.ID)
	require.True(t, ok)
	assert.Equal(t, q.ID, sel.ID)
}

func TestNotifyFiresPerDirtyKey(t *testing.T) {
	st := newLoadedStore(t, newFakeKV())

	var mu sync.Mutex
	var fired []string
	st.SetNotify(func(key string) {
		mu.Lock()
		fired = append(fired, key)
		mu.Unlock()
	})

	svc := st.AddService(models.ServiceDemand{Title: "Demo"})
	q := st.AddQuote(models.Quote{ServiceID: svc.ID})
	st.SelectQuote(svc.ID, q.ID)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{KeyServices, KeyQuotes, KeySelected, KeyServices}, fired)
}
