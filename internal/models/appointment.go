package models

import "time"

// Appointment links a doctor and a patient at a hospital on a given day.
// DoctorID and PatientID are expected to reference rows of the same hospital;
// the schema does not enforce this.
type Appointment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HospitalID uint      `gorm:"not null;index:idx_appointments_hospital" json:"hospital_id"`
	DoctorID   uint      `gorm:"not null;index:idx_appointments_doctor" json:"doctor_id"`
	PatientID  uint      `gorm:"not null;index:idx_appointments_patient" json:"patient_id"`
	Date       Date      `gorm:"type:date;not null;index:idx_appointments_date" json:"date"`
	Time       ClockTime `gorm:"type:time;not null" json:"time"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"-"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"-"`
	Doctor   *Doctor   `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
	Patient  *Patient  `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentSummary is the appointment listing row with the doctor and
// patient names resolved
type AppointmentSummary struct {
	ID          uint      `json:"id"`
	Date        Date      `json:"date"`
	Time        ClockTime `json:"time"`
	PatientName string    `json:"patient_name"`
	DoctorName  string    `json:"doctor_name"`
}
