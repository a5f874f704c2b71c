package repository

import (
	"context"
	"fmt"

	"hospital-management-api/internal/models"

	"gorm.io/gorm"
)

// Store is the read surface the API serves from. SQLStore reads the
// relational database; FixtureStore serves the static seed data.
type Store interface {
	Now(ctx context.Context) (models.DatabaseTime, error)
	GetFirstHospital(ctx context.Context) (*models.Hospital, error)
	GetAllDoctors(ctx context.Context) ([]models.Doctor, error)
	GetAllPatients(ctx context.Context) ([]models.Patient, error)
	GetAppointmentSummaries(ctx context.Context) ([]models.AppointmentSummary, error)
}

var (
	_ Store = (*SQLStore)(nil)
	_ Store = (*FixtureStore)(nil)
)

// SQLStore groups the GORM repositories behind the Store interface
type SQLStore struct {
	*HospitalRepository
	*DoctorRepository
	*PatientRepository
	*AppointmentRepository

	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{
		HospitalRepository:    NewHospitalRepo(db),
		DoctorRepository:      NewDoctorRepo(db),
		PatientRepository:     NewPatientRepo(db),
		AppointmentRepository: NewAppointmentRepo(db),
		db:                    db,
	}
}

// Now asks the database for its current timestamp, proving a round trip
func (s *SQLStore) Now(ctx context.Context) (models.DatabaseTime, error) {
	var now string
	if err := s.db.WithContext(ctx).Raw("SELECT CURRENT_TIMESTAMP AS now").Row().Scan(&now); err != nil {
		return models.DatabaseTime{}, fmt.Errorf("database connection error: %w", err)
	}
	return models.DatabaseTime{Now: now}, nil
}
