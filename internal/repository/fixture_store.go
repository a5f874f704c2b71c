package repository

import (
	"context"
	"sort"
	"time"

	"hospital-management-api/internal/models"
	"hospital-management-api/internal/seed"
)

// FixtureStore serves the seed data from memory. It is immutable after
// construction, so it needs no locking.
type FixtureStore struct {
	hospital     models.Hospital
	doctors      []models.Doctor
	patients     []models.Patient
	appointments []models.AppointmentSummary
	clock        func() time.Time
}

// NewFixtureStore builds the seed data set with sequential IDs, booking the
// appointments on now's calendar day.
func NewFixtureStore(now time.Time) *FixtureStore {
	hospital := seed.Hospital()
	hospital.ID = 1

	doctors := seed.Doctors(hospital.ID)
	for i := range doctors {
		doctors[i].ID = uint(i + 1)
	}
	patients := seed.Patients(hospital.ID)
	for i := range patients {
		patients[i].ID = uint(i + 1)
	}

	doctorNames := make(map[uint]string, len(doctors))
	for _, d := range doctors {
		doctorNames[d.ID] = d.Name
	}
	patientNames := make(map[uint]string, len(patients))
	for _, p := range patients {
		patientNames[p.ID] = p.Name
	}

	var summaries []models.AppointmentSummary
	for i, a := range seed.Appointments(hospital.ID, doctors, patients, now) {
		summaries = append(summaries, models.AppointmentSummary{
			ID:          uint(i + 1),
			Date:        a.Date,
			Time:        a.Time,
			PatientName: patientNames[a.PatientID],
			DoctorName:  doctorNames[a.DoctorID],
		})
	}

	sort.SliceStable(doctors, func(i, j int) bool { return doctors[i].Name < doctors[j].Name })
	sort.SliceStable(patients, func(i, j int) bool { return patients[i].Name < patients[j].Name })
	sort.SliceStable(summaries, func(i, j int) bool {
		if !summaries[i].Date.Equal(summaries[j].Date.Time) {
			return summaries[i].Date.After(summaries[j].Date.Time)
		}
		return summaries[i].ID < summaries[j].ID
	})

	return &FixtureStore{
		hospital:     hospital,
		doctors:      doctors,
		patients:     patients,
		appointments: summaries,
		clock:        time.Now,
	}
}

func (s *FixtureStore) Now(ctx context.Context) (models.DatabaseTime, error) {
	return models.DatabaseTime{Now: s.clock().UTC().Format(time.RFC3339Nano)}, nil
}

func (s *FixtureStore) GetFirstHospital(ctx context.Context) (*models.Hospital, error) {
	hospital := s.hospital
	return &hospital, nil
}

func (s *FixtureStore) GetAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	return append([]models.Doctor{}, s.doctors...), nil
}

func (s *FixtureStore) GetAllPatients(ctx context.Context) ([]models.Patient, error) {
	return append([]models.Patient{}, s.patients...), nil
}

func (s *FixtureStore) GetAppointmentSummaries(ctx context.Context) ([]models.AppointmentSummary, error) {
	return append([]models.AppointmentSummary{}, s.appointments...), nil
}
