// internal/storage/db.go
package storage

import (
	"time"

	"github.com/go-faster/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hrms_backend/internal/config"
	"hrms_backend/internal/models"
)

// Open connects to Postgres, tunes the pool and runs migrations.
// TranslateError is on so unique and foreign key violations surface as
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(cfg config.DatabaseOptions) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "access connection pool")
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema, including the composite unique
// index on (employee_id, date).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Employee{},
		&models.AttendanceRecord{},
	); err != nil {
		return errors.Wrap(err, "migrate schema")
	}
	return nil
}
