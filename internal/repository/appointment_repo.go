package repository

import (
	"context"
	"fmt"

	"hospital-management-api/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// GetAppointmentSummaries retrieves all appointments, newest day first, with
// the doctor and patient names joined in
func (r *AppointmentRepository) GetAppointmentSummaries(ctx context.Context) ([]models.AppointmentSummary, error) {
	summaries := []models.AppointmentSummary{}
	err := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select("a.id, a.date, a.time, p.name AS patient_name, d.name AS doctor_name").
		Joins("JOIN patients p ON a.patient_id = p.id").
		Joins("JOIN doctors d ON a.doctor_id = d.id").
		Order("a.date DESC, a.id ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	return summaries, nil
}
