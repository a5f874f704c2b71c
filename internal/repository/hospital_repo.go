package repository

import (
	"context"
	"errors"
	"fmt"

	"hospital-management-api/internal/models"

	"gorm.io/gorm"
)

// ErrHospitalNotFound is returned when the hospitals table is empty
var ErrHospitalNotFound = errors.New("hospital not found")

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// GetFirstHospital retrieves the hospital with the lowest ID. First orders
// by primary key.
func (r *HospitalRepository) GetFirstHospital(ctx context.Context) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.WithContext(ctx).
		Select("id", "name", "address", "phone", "email").
		First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, fmt.Errorf("failed to fetch hospital: %w", err)
	}
	return &hospital, nil
}
