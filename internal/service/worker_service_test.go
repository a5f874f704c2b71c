package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"hospital-management-api/internal/testutil"

	"gorm.io/gorm"
)

func runWorker(t *testing.T, w *WorkerService, ctx context.Context) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not finish")
	}
}

func TestWorkerRetriesUntilBootstrapSucceeds(t *testing.T) {
	db := testutil.SetupTestDB(t)
	var calls atomic.Int32
	w := &WorkerService{
		connect: func() (*gorm.DB, error) { return db, nil },
		bootstrap: func(context.Context, *gorm.DB) (bool, error) {
			if calls.Add(1) < 3 {
				return false, errors.New("connection refused")
			}
			return true, nil
		},
		hospitals: NewHospitalService(nil, time.Second),
		retry:     time.Millisecond,
	}

	runWorker(t, w, context.Background())

	if got := calls.Load(); got != 3 {
		t.Errorf("bootstrap calls = %d, want 3", got)
	}
}

func TestWorkerRetriesConnectAndAttachesStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewHospitalService(nil, time.Second)

	var attempts atomic.Int32
	w := &WorkerService{
		connect: func() (*gorm.DB, error) {
			if attempts.Add(1) < 3 {
				return nil, errors.New("failed to ping database: connection refused")
			}
			return db, nil
		},
		bootstrap: bootstrapToday,
		hospitals: svc,
		retry:     time.Millisecond,
	}

	if svc.Available() {
		t.Fatal("store attached before the worker ran")
	}

	runWorker(t, w, context.Background())

	if got := attempts.Load(); got != 3 {
		t.Errorf("connect attempts = %d, want 3", got)
	}
	if w.DB() != db {
		t.Error("DB() does not return the connected pool")
	}
	doctors, err := svc.ListDoctors(context.Background())
	if err != nil {
		t.Fatalf("ListDoctors() after reconnect error = %v", err)
	}
	if len(doctors) != 3 {
		t.Errorf("doctors = %d, want 3", len(doctors))
	}
}

func TestWorkerStopsOnCancel(t *testing.T) {
	svc := NewHospitalService(nil, time.Second)
	w := &WorkerService{
		connect: func() (*gorm.DB, error) {
			return nil, errors.New("connection refused")
		},
		bootstrap: bootstrapToday,
		hospitals: svc,
		retry:     time.Hour,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runWorker(t, w, ctx)

	if svc.Available() || w.DB() != nil {
		t.Error("store attached although every connect failed")
	}
}
