package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-management-api/internal/models"
)

type stubStore struct {
	err         error
	sawDeadline bool
}

func (s *stubStore) record(ctx context.Context) {
	_, s.sawDeadline = ctx.Deadline()
}

func (s *stubStore) Now(ctx context.Context) (models.DatabaseTime, error) {
	s.record(ctx)
	return models.DatabaseTime{Now: "2026-10-17T00:00:00Z"}, s.err
}

func (s *stubStore) GetFirstHospital(ctx context.Context) (*models.Hospital, error) {
	s.record(ctx)
	if s.err != nil {
		return nil, s.err
	}
	return &models.Hospital{ID: 1, Name: "H"}, nil
}

func (s *stubStore) GetAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	s.record(ctx)
	return nil, s.err
}

func (s *stubStore) GetAllPatients(ctx context.Context) ([]models.Patient, error) {
	s.record(ctx)
	return nil, s.err
}

func (s *stubStore) GetAppointmentSummaries(ctx context.Context) ([]models.AppointmentSummary, error) {
	s.record(ctx)
	return nil, s.err
}

func TestHospitalServiceWithoutStore(t *testing.T) {
	svc := NewHospitalService(nil, time.Second)
	ctx := context.Background()

	if svc.Available() {
		t.Error("Available() = true without a store")
	}
	if _, err := svc.CheckDatabase(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("CheckDatabase() error = %v", err)
	}
	if _, err := svc.GetHospital(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("GetHospital() error = %v", err)
	}
	if _, err := svc.ListDoctors(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("ListDoctors() error = %v", err)
	}
	if _, err := svc.ListPatients(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("ListPatients() error = %v", err)
	}
	if _, err := svc.ListAppointments(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("ListAppointments() error = %v", err)
	}
}

func TestHospitalServiceNormalisesEmptyLists(t *testing.T) {
	svc := NewHospitalService(&stubStore{}, 0)
	ctx := context.Background()

	doctors, err := svc.ListDoctors(ctx)
	if err != nil || doctors == nil {
		t.Errorf("ListDoctors() = (%v, %v), want empty slice", doctors, err)
	}
	patients, err := svc.ListPatients(ctx)
	if err != nil || patients == nil {
		t.Errorf("ListPatients() = (%v, %v), want empty slice", patients, err)
	}
	appointments, err := svc.ListAppointments(ctx)
	if err != nil || appointments == nil {
		t.Errorf("ListAppointments() = (%v, %v), want empty slice", appointments, err)
	}
}

func TestHospitalServicePropagatesErrors(t *testing.T) {
	boom := errors.New("connection reset by peer")
	svc := NewHospitalService(&stubStore{err: boom}, time.Second)
	ctx := context.Background()

	if _, err := svc.CheckDatabase(ctx); !errors.Is(err, boom) {
		t.Errorf("CheckDatabase() error = %v", err)
	}
	if _, err := svc.GetHospital(ctx); !errors.Is(err, boom) {
		t.Errorf("GetHospital() error = %v", err)
	}
	if _, err := svc.ListDoctors(ctx); !errors.Is(err, boom) {
		t.Errorf("ListDoctors() error = %v", err)
	}
	if _, err := svc.ListPatients(ctx); !errors.Is(err, boom) {
		t.Errorf("ListPatients() error = %v", err)
	}
	if _, err := svc.ListAppointments(ctx); !errors.Is(err, boom) {
		t.Errorf("ListAppointments() error = %v", err)
	}
}

func TestHospitalServiceAppliesQueryTimeout(t *testing.T) {
	store := &stubStore{}

	if _, err := NewHospitalService(store, 5*time.Second).ListDoctors(context.Background()); err != nil {
		t.Fatalf("ListDoctors() error = %v", err)
	}
	if !store.sawDeadline {
		t.Error("store call ran without a deadline")
	}

	if _, err := NewHospitalService(store, 0).ListDoctors(context.Background()); err != nil {
		t.Fatalf("ListDoctors() error = %v", err)
	}
	if store.sawDeadline {
		t.Error("zero timeout should not set a deadline")
	}
}

func TestHospitalServiceSetStore(t *testing.T) {
	svc := NewHospitalService(nil, time.Second)
	ctx := context.Background()

	if _, err := svc.GetHospital(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("GetHospital() before SetStore error = %v", err)
	}

	svc.SetStore(&stubStore{})
	if !svc.Available() {
		t.Error("Available() = false after SetStore")
	}
	hospital, err := svc.GetHospital(ctx)
	if err != nil || hospital.Name != "H" {
		t.Errorf("GetHospital() = (%v, %v)", hospital, err)
	}
}
