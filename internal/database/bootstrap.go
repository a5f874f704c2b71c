package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"hospital-management-api/internal/models"
	"hospital-management-api/internal/seed"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// schemaModels lists the tables parents first
var schemaModels = []interface{}{
	&models.Hospital{},
	&models.Doctor{},
	&models.Patient{},
	&models.Appointment{},
}

// Bootstrap creates and seeds the schema when the hospitals table is missing.
// It reports whether any work was done; a second call is a no-op. A failed
// existence check is returned as is and never touches the schema.
//
// Table creation and seeding share one transaction, so a failure leaves
// nothing behind on databases with transactional DDL. MySQL commits DDL
// implicitly: if seeding fails there, the empty tables remain, later calls
// see hospitals and skip, and the data has to be reseeded by dropping the
// tables by hand.
func Bootstrap(ctx context.Context, db *gorm.DB, now time.Time) (bool, error) {
	db = db.WithContext(ctx)

	exists, err := tableExists(db, models.Hospital{}.TableName())
	if err != nil {
		return false, fmt.Errorf("failed to check for existing tables: %w", err)
	}
	if exists {
		log.Println("Database tables already exist, skipping initialization")
		return false, nil
	}

	log.Println("Initializing database schema...")

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := CreateSchema(tx); err != nil {
			return err
		}
		return insertSeed(tx, now)
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// CreateSchema drops any stale copies of the four tables, children first,
// and recreates them with their foreign keys and six secondary indexes.
func CreateSchema(db *gorm.DB) error {
	migrator := db.Migrator()

	// children before parents
	for i := len(schemaModels) - 1; i >= 0; i-- {
		if err := migrator.DropTable(schemaModels[i]); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", schemaModels[i], err)
		}
	}

	for _, model := range schemaModels {
		if err := migrator.CreateTable(model); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	return nil
}

// tableExists asks the catalog for table. Unlike Migrator().HasTable it
// reports query failures instead of treating them as a missing table.
func tableExists(db *gorm.DB, table string) (bool, error) {
	var query string
	switch db.Dialector.Name() {
	case "sqlite":
		query = "SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?"
	case "mysql":
		query = "SELECT count(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?"
	default:
		query = "SELECT count(*) FROM information_schema.tables WHERE table_schema = CURRENT_SCHEMA() AND table_name = ?"
	}

	var count int64
	if err := db.Raw(query, table).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func insertSeed(tx *gorm.DB, now time.Time) error {
	hospital := seed.Hospital()
	if err := tx.Omit(clause.Associations).Create(&hospital).Error; err != nil {
		return fmt.Errorf("failed to seed hospital: %w", err)
	}

	doctors := seed.Doctors(hospital.ID)
	if err := tx.Omit(clause.Associations).Create(&doctors).Error; err != nil {
		return fmt.Errorf("failed to seed doctors: %w", err)
	}

	patients := seed.Patients(hospital.ID)
	if err := tx.Omit(clause.Associations).Create(&patients).Error; err != nil {
		return fmt.Errorf("failed to seed patients: %w", err)
	}

	appointments := seed.Appointments(hospital.ID, doctors, patients, now)
	if len(appointments) == 0 {
		return nil
	}
	if err := tx.Omit(clause.Associations).Create(&appointments).Error; err != nil {
		return fmt.Errorf("failed to seed appointments: %w", err)
	}

	return nil
}
