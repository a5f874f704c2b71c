package repository

import (
	"context"
	"fmt"

	"hospital-management-api/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// GetAllDoctors retrieves every doctor ordered by name
func (r *DoctorRepository) GetAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	err := r.db.WithContext(ctx).
		Select("id", "name", "specialization", "phone", "email").
		Order("name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	return doctors, nil
}
