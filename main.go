package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"serviciosmarket/core/internal/api"
	"serviciosmarket/core/internal/cache"
	"serviciosmarket/core/internal/config"
	"serviciosmarket/core/internal/db"
	"serviciosmarket/core/internal/store"
	"serviciosmarket/core/internal/tasks"
)

var runMode = flag.String("m", "all", "Run mode: 'api', 'bg' (background snapshot worker), 'all' (default)")

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*runMode)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Database
	mongoClient, mongoDb, err := db.ConnectDB(cfg.MongoURI, cfg.MongoDbName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.DisconnectDB(mongoClient); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	// Initialize Cache (Redis)
	redisClient, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer func() {
		if err := cache.DisconnectRedis(redisClient); err != nil {
			log.Printf("Error disconnecting from Redis: %v", err)
		}
	}()

	// Initialize the market state store backed by Mongo snapshots
	kv := store.NewMongoKV(mongoDb)
	st := store.New(kv)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	if err := st.Load(loadCtx); err != nil {
		cancelLoad()
		log.Fatalf("Failed to load market state: %v", err)
	}
	cancelLoad()

	// Initialize Task Client
	taskClient := tasks.NewClient(redisClient)
	defer taskClient.Close()

	// Every mutation marks its snapshot key dirty; persistence happens
	// out of band through the task queue.
	st.SetNotify(func(key string) {
		task, err := tasks.NewSnapshotTask(key)
		if err != nil {
			log.Printf("Failed to build snapshot task for %q: %v", key, err)
			return
		}
		if _, err := taskClient.Enqueue(task); err != nil {
			log.Printf("Failed to enqueue snapshot task for %q: %v", key, err)
		}
	})

	// Initialize Task Processor
	taskProcessor := tasks.NewTaskProcessor(st)

	// WaitGroup for managing goroutines
	var wg sync.WaitGroup

	var mainApiSrv *http.Server
	var backgroundTaskSrv *asynq.Server

	fmt.Printf("Starting application in '%s' mode...\n", cfg.RunMode)

	apiMode := func() {
		fmt.Println("Starting main API server...")
		mainApiRouter := api.SetupRouter(cfg, st, redisClient)
		mainApiSrv = &http.Server{
			Addr:    ":" + cfg.ApiPort,
			Handler: mainApiRouter,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			fmt.Printf("Main API listening on :%s\n", cfg.ApiPort)
			if err := mainApiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Main API ListenAndServe error: %v", err)
			}
			fmt.Println("Main API server stopped.")
		}()
	}

	bgMode := func() {
		fmt.Println("Starting snapshot worker...")
		backgroundTaskSrv = tasks.SetupServer(redisClient, taskProcessor)
	}

	switch cfg.RunMode {
	case "api":
		apiMode()
	case "bg":
		bgMode()
	case "all":
		apiMode()
		bgMode()
	default:
		log.Fatalf("Invalid run mode specified in config: %s.", cfg.RunMode)
	}

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	fmt.Printf("\nReceived signal: %s. Shutting down gracefully...\n", sig)

	// Create context with timeout for shutdown
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if mainApiSrv != nil {
		fmt.Println("Shutting down Main API server...")
		if err := mainApiSrv.Shutdown(ctxShutdown); err != nil {
			log.Printf("Main API server shutdown error: %v", err)
		}
	}

	if backgroundTaskSrv != nil {
		fmt.Println("Shutting down snapshot worker...")
		backgroundTaskSrv.Shutdown()
	}

	// Flush any state that never made it through the queue.
	if err := st.PersistAll(ctxShutdown); err != nil {
		log.Printf("Final snapshot write failed: %v", err)
	}

	// Wait for all server goroutines to finish
	fmt.Println("Waiting for servers to stop...")
	wg.Wait()

	fmt.Println("Server gracefully stopped")
}
