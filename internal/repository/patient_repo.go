package repository

import (
	"context"
	"fmt"

	"hospital-management-api/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// GetAllPatients retrieves every patient ordered by name
func (r *PatientRepository) GetAllPatients(ctx context.Context) ([]models.Patient, error) {
	patients := []models.Patient{}
	err := r.db.WithContext(ctx).
		Select("id", "name", "email", "phone", "date_of_birth").
		Order("name ASC").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patients: %w", err)
	}
	return patients, nil
}
