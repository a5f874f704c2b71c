// Package seed holds the fixed sample rows that make a fresh deployment
// browsable. The schema bootstrapper inserts them and the fixture store
// serves them directly.
package seed

import (
	"time"

	"hospital-management-api/internal/models"
)

// Hospital returns the single seeded hospital
func Hospital() models.Hospital {
	return models.Hospital{
		Name:    "Maareeye Hospital",
		Address: "123 Main St, Mogadishu",
		Phone:   "+252-1-234567",
		Email:   "info@maareeye.com",
	}
}

// Doctors returns the seeded doctors attached to hospitalID
func Doctors(hospitalID uint) []models.Doctor {
	return []models.Doctor{
		{HospitalID: hospitalID, Name: "Dr. Ahmed Hassan", Specialization: "Cardiology", Phone: "+252-1-111111", Email: "ahmed@maareeye.com"},
		{HospitalID: hospitalID, Name: "Dr. Fatima Mohamed", Specialization: "Pediatrics", Phone: "+252-1-222222", Email: "fatima@maareeye.com"},
		{HospitalID: hospitalID, Name: "Dr. Mohamed Ali", Specialization: "General Surgery", Phone: "+252-1-333333", Email: "mohamed@maareeye.com"},
	}
}

// Patients returns the seeded patients attached to hospitalID
func Patients(hospitalID uint) []models.Patient {
	dob := func(y int, m time.Month, d int) *models.Date {
		date := models.NewDate(y, m, d)
		return &date
	}
	return []models.Patient{
		{HospitalID: hospitalID, Name: "Hassan Abdi", Email: "hassan@example.com", Phone: "+252-1-444444", DateOfBirth: dob(1990, time.January, 15)},
		{HospitalID: hospitalID, Name: "Amina Ahmed", Email: "amina@example.com", Phone: "+252-1-555555", DateOfBirth: dob(1985, time.June, 20)},
		{HospitalID: hospitalID, Name: "Samir Ibrahim", Email: "samir@example.com", Phone: "+252-1-666666", DateOfBirth: dob(1992, time.March, 10)},
	}
}

// Appointments books the first doctor with each of the given patients on
// day. It returns nil when either list is empty.
func Appointments(hospitalID uint, doctors []models.Doctor, patients []models.Patient, day time.Time) []models.Appointment {
	if len(doctors) == 0 || len(patients) == 0 {
		return nil
	}

	slots := []struct {
		time  models.ClockTime
		notes string
	}{
		{"09:00:00", "Regular checkup"},
		{"10:30:00", "Follow-up visit"},
		{"14:00:00", "Emergency visit"},
	}

	date := models.DateOf(day)
	appointments := make([]models.Appointment, 0, len(slots))
	for i, slot := range slots {
		if i >= len(patients) {
			break
		}
		appointments = append(appointments, models.Appointment{
			HospitalID: hospitalID,
			DoctorID:   doctors[0].ID,
			PatientID:  patients[i].ID,
			Date:       date,
			Time:       slot.time,
			Notes:      slot.notes,
		})
	}
	return appointments
}
