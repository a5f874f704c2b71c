package service

import (
	"context"
	"log"
	"sync"
	"time"

	"hospital-management-api/internal/config"
	"hospital-management-api/internal/database"
	"hospital-management-api/internal/repository"

	"gorm.io/gorm"
)

// DefaultBootstrapRetry is how long the worker waits between failed
// connection or bootstrap attempts.
const DefaultBootstrapRetry = 5 * time.Second

type WorkerService struct {
	connect   func() (*gorm.DB, error)
	bootstrap func(ctx context.Context, db *gorm.DB) (bool, error)
	hospitals *HospitalService
	retry     time.Duration

	mu sync.Mutex
	db *gorm.DB
}

func NewWorkerService(cfg *config.Config, hospitals *HospitalService, retry time.Duration) *WorkerService {
	return &WorkerService{
		connect: func() (*gorm.DB, error) {
			return database.Connect(cfg)
		},
		bootstrap: bootstrapToday,
		hospitals: hospitals,
		retry:     retry,
	}
}

func bootstrapToday(ctx context.Context, db *gorm.DB) (bool, error) {
	return database.Bootstrap(ctx, db, time.Now())
}

// Start connects to the database, attaches it to the hospital service and
// then creates and seeds the schema. A failed step is retried on every tick
// until the schema is in place or ctx is cancelled. Requests are served
// meanwhile and fail with a database error until the store is attached.
func (w *WorkerService) Start(ctx context.Context) {
	if w.runOnce(ctx) {
		return
	}

	ticker := time.NewTicker(w.retry)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Schema worker stopped")
			return
		case <-ticker.C:
			if w.runOnce(ctx) {
				return
			}
		}
	}
}

// DB returns the connection opened by the worker, or nil before the first
// successful connect.
func (w *WorkerService) DB() *gorm.DB {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.db
}

func (w *WorkerService) runOnce(ctx context.Context) bool {
	db := w.DB()
	if db == nil {
		var err error
		db, err = w.connect()
		if err != nil {
			log.Printf("Database connection error: %v", err)
			return false
		}

		w.mu.Lock()
		w.db = db
		w.mu.Unlock()
		w.hospitals.SetStore(repository.NewSQLStore(db))
	}

	created, err := w.bootstrap(ctx, db)
	if err != nil {
		log.Printf("Database initialization error: %v", err)
		return false
	}
	if created {
		log.Println("Database schema created and seeded")
	}
	return true
}
