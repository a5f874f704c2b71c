// Package testutil provides an in-memory database and HTTP helpers shared by
// the package tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-management-api/internal/database"
	"hospital-management-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory SQLite database with foreign keys
// enforced. The pool is pinned to one connection so every query sees the
// same in-memory database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// SetupTestSchema returns a test database with the empty schema in place
func SetupTestSchema(t *testing.T) *gorm.DB {
	t.Helper()

	db := SetupTestDB(t)
	if err := database.CreateSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

// CreateTestHospital inserts a hospital with the given name
func CreateTestHospital(t *testing.T, db *gorm.DB, name string) models.Hospital {
	t.Helper()

	hospital := models.Hospital{Name: name, Address: "1 Test Road", Phone: "+000", Email: "info@test.example"}
	create(t, db, &hospital)
	return hospital
}

// CreateTestDoctor inserts a doctor working at hospitalID
func CreateTestDoctor(t *testing.T, db *gorm.DB, hospitalID uint, name, specialization string) models.Doctor {
	t.Helper()

	doctor := models.Doctor{HospitalID: hospitalID, Name: name, Specialization: specialization}
	create(t, db, &doctor)
	return doctor
}

// CreateTestPatient inserts a patient registered at hospitalID
func CreateTestPatient(t *testing.T, db *gorm.DB, hospitalID uint, name string, dob models.Date) models.Patient {
	t.Helper()

	patient := models.Patient{HospitalID: hospitalID, Name: name, DateOfBirth: &dob}
	create(t, db, &patient)
	return patient
}

// CreateTestAppointment books doctor and patient on day at clock
func CreateTestAppointment(t *testing.T, db *gorm.DB, doctor models.Doctor, patient models.Patient, day time.Time, clock models.ClockTime) models.Appointment {
	t.Helper()

	appointment := models.Appointment{
		HospitalID: doctor.HospitalID,
		DoctorID:   doctor.ID,
		PatientID:  patient.ID,
		Date:       models.DateOf(day),
		Time:       clock,
	}
	create(t, db, &appointment)
	return appointment
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()

	var count int64
	if err := db.Table(table).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}

func create(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()

	if err := db.Omit(clause.Associations).Create(value).Error; err != nil {
		t.Fatalf("Failed to create %T: %v", value, err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
