// Package testutil provides shared helpers for database-backed tests.
// Tests run against an in-memory SQLite database so no external services
// are required.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pawhaven/shelter-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an isolated in-memory database with the full schema.
// Each call gets its own database; cache=shared keeps it alive across the
// pooled connections gorm opens.
func SetupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:testdb_%s?mode=memory&cache=shared", uuid.New().String())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open in-memory test database")

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	err = db.AutoMigrate(
		&domain.Cat{},
		&domain.Photo{},
		&domain.Activity{},
	)
	require.NoError(t, err, "Failed to migrate test schema")

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// CreateTestCat inserts a cat with sensible defaults and returns it
func CreateTestCat(t *testing.T, db *gorm.DB, name string) *domain.Cat {
	id := uuid.New()
	cat := &domain.Cat{
		BaseModel:     domain.BaseModel{ID: id},
		Name:          name,
		Age:           3,
		Gender:        domain.GenderFemale,
		About:         "Friendly test cat",
		Sterilized:    true,
		RegisteredAt:  time.Now().UTC(),
		StorageFolder: "cats/" + id.String(),
	}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

// CreateTestPhoto inserts a photo row for the given cat and returns it
func CreateTestPhoto(t *testing.T, db *gorm.DB, catID uuid.UUID, filename string) *domain.Photo {
	photo := &domain.Photo{
		CatID:       catID,
		Filename:    filename,
		ContentType: "image/jpeg",
		SizeBytes:   1024,
		StoragePath: "cats/" + catID.String() + "/" + uuid.New().String() + ".jpg",
	}
	require.NoError(t, db.Create(photo).Error)
	return photo
}
