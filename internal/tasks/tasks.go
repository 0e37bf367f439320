package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"serviciosmarket/core/internal/store"
)

// TaskType defines the type of a background task.
const (
	TypeSnapshotPersist = "state:snapshot:persist"
)

// SnapshotPayload identifies the state collection to write through.
type SnapshotPayload struct {
	Key string `json:"key"`
}

// --- Task Client (Enqueuing tasks) ---

func NewClient(rdb *redis.Client) *asynq.Client {
	clientOpt := asynq.RedisClientOpt{
		Addr:     rdb.Options().Addr,
		Password: rdb.Options().Password,
		DB:       rdb.Options().DB,
	}
	return asynq.NewClient(clientOpt)
}

// NewSnapshotTask builds a persist task for one snapshot key. Persistence is
// fire and forget: a failed write is logged and dropped, never retried, so
// the task carries MaxRetry(0).
func NewSnapshotTask(key string) (*asynq.Task, error) {
	payload, err := json.Marshal(SnapshotPayload{Key: key})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot payload: %w", err)
	}
	return asynq.NewTask(TypeSnapshotPersist, payload, asynq.MaxRetry(0)), nil
}

// --- Task Server (Processing tasks) ---

// TaskProcessor handles the processing of tasks.
// It holds dependencies needed by task handlers.
type TaskProcessor struct {
	st *store.Store
}

func NewTaskProcessor(st *store.Store) *TaskProcessor {
	return &TaskProcessor{st: st}
}

// SetupServer configures and returns an Asynq server instance.
func SetupServer(rdb *redis.Client, processor *TaskProcessor) *asynq.Server {
	serverOpt := asynq.RedisClientOpt{
		Addr:     rdb.Options().Addr,
		Password: rdb.Options().Password,
		DB:       rdb.Options().DB,
	}

	srv := asynq.NewServer(
		serverOpt,
		asynq.Config{
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				fmt.Printf("[Asynq Error] Task Type: %s, Payload: %s, Error: %v\n", task.Type(), string(task.Payload()), err)
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSnapshotPersist, processor.HandleSnapshotPersistTask)

	if err := srv.Start(mux); err != nil {
		log.Fatalf("Could not start Asynq server: %v", err)
	}

	return srv
}

// --- Task Handlers ---

// HandleSnapshotPersistTask serializes one state collection and writes it
// through the KV. A malformed payload or an unknown key is dropped without
// retry; write errors are logged and dropped as well since every later
// mutation of the same key enqueues a fresh task.
func (p *TaskProcessor) HandleSnapshotPersistTask(ctx context.Context, t *asynq.Task) error {
	var payload SnapshotPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := p.st.Persist(ctx, payload.Key); err != nil {
		log.Printf("Snapshot persist failed for key %s: %v", payload.Key, err)
		return nil
	}
	return nil
}
