package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"hospital-management-api/internal/models"
	"hospital-management-api/internal/repository"
)

// ErrStoreUnavailable is returned by every data call while no store is
// attached, typically because the database has not been reached yet
var ErrStoreUnavailable = errors.New("Database pool not initialized")

type storeRef struct {
	store repository.Store
}

type HospitalService struct {
	store        atomic.Pointer[storeRef]
	queryTimeout time.Duration
}

// NewHospitalService wraps store, which may be nil until SetStore attaches
// one. A positive queryTimeout bounds every store call.
func NewHospitalService(store repository.Store, queryTimeout time.Duration) *HospitalService {
	s := &HospitalService{queryTimeout: queryTimeout}
	s.SetStore(store)
	return s
}

// SetStore attaches store for all subsequent calls. It is safe to call while
// requests are being served.
func (s *HospitalService) SetStore(store repository.Store) {
	s.store.Store(&storeRef{store: store})
}

// Available reports whether a store is attached
func (s *HospitalService) Available() bool {
	return s.current() != nil
}

func (s *HospitalService) current() repository.Store {
	if ref := s.store.Load(); ref != nil {
		return ref.store
	}
	return nil
}

// CheckDatabase performs a round trip to the store and returns its clock
func (s *HospitalService) CheckDatabase(ctx context.Context) (models.DatabaseTime, error) {
	store := s.current()
	if store == nil {
		return models.DatabaseTime{}, ErrStoreUnavailable
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return store.Now(ctx)
}

// GetHospital returns the first hospital, or repository.ErrHospitalNotFound
func (s *HospitalService) GetHospital(ctx context.Context) (*models.Hospital, error) {
	store := s.current()
	if store == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return store.GetFirstHospital(ctx)
}

// ListDoctors returns all doctors ordered by name
func (s *HospitalService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	store := s.current()
	if store == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	doctors, err := store.GetAllDoctors(ctx)
	if err != nil {
		return nil, err
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	return doctors, nil
}

// ListPatients returns all patients ordered by name
func (s *HospitalService) ListPatients(ctx context.Context) ([]models.Patient, error) {
	store := s.current()
	if store == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	patients, err := store.GetAllPatients(ctx)
	if err != nil {
		return nil, err
	}
	if patients == nil {
		patients = []models.Patient{}
	}
	return patients, nil
}

// ListAppointments returns appointment summaries, most recent day first
func (s *HospitalService) ListAppointments(ctx context.Context) ([]models.AppointmentSummary, error) {
	store := s.current()
	if store == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	appointments, err := store.GetAppointmentSummaries(ctx)
	if err != nil {
		return nil, err
	}
	if appointments == nil {
		appointments = []models.AppointmentSummary{}
	}
	return appointments, nil
}

func (s *HospitalService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
