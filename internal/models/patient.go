package models

import "time"

// Patient is a person registered with a hospital
type Patient struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HospitalID  uint      `gorm:"not null;index:idx_patients_hospital" json:"-"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Email       string    `gorm:"size:255" json:"email"`
	Phone       string    `gorm:"size:20" json:"phone"`
	DateOfBirth *Date     `gorm:"type:date" json:"date_of_birth"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
