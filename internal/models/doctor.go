package models

import "time"

// Doctor is a physician working at a hospital
type Doctor struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	HospitalID     uint      `gorm:"not null;index:idx_doctors_hospital" json:"-"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Specialization string    `gorm:"size:255" json:"specialization"`
	Phone          string    `gorm:"size:20" json:"phone"`
	Email          string    `gorm:"size:255" json:"email"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
