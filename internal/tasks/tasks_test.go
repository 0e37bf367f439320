package tasks_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serviciosmarket/core/internal/models"
	"serviciosmarket/core/internal/store"
	"serviciosmarket/core/internal/tasks"
)

// --- Fakes ---

// memoryKV is an in-memory KV that can be told to fail writes.
type memoryKV struct {
	mu      sync.Mutex
	data    map[string][]byte
	failSet bool
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, store.ErrKeyNotFound
	}
	return data, nil
}

func (m *memoryKV) Set(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errors.New("write failed")
	}
	m.data[key] = data
	return nil
}

// --- Tests ---

func TestNewSnapshotTask(t *testing.T) {
	task, err := tasks.NewSnapshotTask(store.KeyServices)
	require.NoError(t, err)
	assert.Equal(t, tasks.TypeSnapshotPersist, task.Type())

	var payload tasks.SnapshotPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, store.KeyServices, payload.Key)
}

func TestHandleSnapshotPersistTask_Success(t *testing.T) {
	kv := newMemoryKV()
	st := store.New(kv)
	require.NoError(t, st.Load(context.Background()))
	st.AddService(models.ServiceDemand{Title: "Persistida"})
	p := tasks.NewTaskProcessor(st)

	task, err := tasks.NewSnapshotTask(store.KeyServices)
	require.NoError(t, err)

	require.NoError(t, p.HandleSnapshotPersistTask(context.Background(), task))

	data, err := kv.Get(context.Background(), store.KeyServices)
	require.NoError(t, err)
	var services []models.ServiceDemand
	require.NoError(t, json.Unmarshal(data, &services))
	assert.Equal(t, "Persistida", services[0].Title)
}

func TestHandleSnapshotPersistTask_WriteFailureIsDropped(t *testing.T) {
	kv := newMemoryKV()
	st := store.New(kv)
	require.NoError(t, st.Load(context.Background()))
	kv.failSet = true
	p := tasks.NewTaskProcessor(st)

	task, err := tasks.NewSnapshotTask(store.KeyQuotes)
	require.NoError(t, err)

	// A failed write is logged, not surfaced, so the task never retries.
	assert.NoError(t, p.HandleSnapshotPersistTask(context.Background(), task))
}

func TestHandleSnapshotPersistTask_BadPayload(t *testing.T) {
	st := store.New(newMemoryKV())
	require.NoError(t, st.Load(context.Background()))
	p := tasks.NewTaskProcessor(st)

	task := asynq.NewTask(tasks.TypeSnapshotPersist, []byte("not json"))

	err := p.HandleSnapshotPersistTask(context.Background(), task)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}
