package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document statuses
const (
	DocumentStatusDraft     = "draft"
	DocumentStatusReview    = "review"
	DocumentStatusApproved  = "approved"
	DocumentStatusPublished = "published"
)

// Document is the root a section tree hangs off (one technical manual)
type Document struct {
	ID          string `gorm:"column:document_id;primaryKey;type:uuid" json:"documentId"`
	Title       string `gorm:"column:title;not null" json:"title"`
	Description string `gorm:"column:description" json:"description"`
	Version     string `gorm:"column:version;default:'1.0'" json:"version"`
	Status      string `gorm:"column:status;default:'draft';index" json:"status"`

	// Per-document export title overrides, keyed by section id.
	// These are data, not logic: the PDF renderer applies them verbatim.
	ExportOverrides JSONB `gorm:"column:export_overrides;type:jsonb" json:"exportOverrides"`

	CreatedAt time.Time      `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name
func (Document) TableName() string {
	return "documents"
}

// BeforeCreate assigns a UUID if none was provided
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
