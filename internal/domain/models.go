package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns an ID when the database has no uuid default
// (the postgres migrations use gen_random_uuid(); sqlite in tests does not)
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Gender represents the sex of a cat
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// IsValidGender reports whether the given string is a known gender value
func IsValidGender(g string) bool {
	switch Gender(g) {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}

// Cat represents a shelter cat available for adoption
type Cat struct {
	BaseModel
	Name          string    `gorm:"type:varchar(200);index"`
	Age           int       `gorm:"not null;default:0"`
	Gender        Gender    `gorm:"type:varchar(20);not null"`
	About         string    `gorm:"type:text"`
	Sterilized    bool      `gorm:"not null;default:false"`
	RegisteredAt  time.Time `gorm:"not null;column:registered_at"`
	Views         int64     `gorm:"not null;default:0"`
	StorageFolder string    `gorm:"type:varchar(500);column:storage_folder"`
	Photos        []Photo   `gorm:"foreignKey:CatID;constraint:OnDelete:CASCADE"`
}

// Photo represents a single photograph stored in blob storage
type Photo struct {
	BaseModel
	CatID       uuid.UUID `gorm:"type:uuid;not null;index;column:cat_id"`
	Filename    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100);column:content_type"`
	SizeBytes   int64     `gorm:"not null;default:0;column:size_bytes"`
	StoragePath string    `gorm:"type:varchar(500);uniqueIndex;column:storage_path"`
}

// Activity is an audit trail entry for a cat.
// CatID is intentionally not a cascading foreign key: the trail outlives the cat.
type Activity struct {
	BaseModel
	CatID     uuid.UUID `gorm:"type:uuid;not null;index;column:cat_id"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Body      string    `gorm:"type:text"`
	ActorName string    `gorm:"type:varchar(200);column:actor_name"`
}
