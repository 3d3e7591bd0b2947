package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentModule is a typed, ordered leaf attached to exactly one section.
// Content is a variant-shaped payload addressed by field name; the typed
// view lives in the modules package.
type ContentModule struct {
	ID        string `gorm:"column:module_id;primaryKey;type:uuid" json:"moduleId"`
	SectionID string `gorm:"column:section_id;not null;index" json:"sectionId"`
	Type      string `gorm:"column:type;not null;index" json:"type"`
	Order     int    `gorm:"column:sort_order;default:0" json:"order"`
	Content   JSONB  `gorm:"column:content;type:jsonb" json:"content"`

	CreatedAt time.Time      `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name
func (ContentModule) TableName() string {
	return "content_modules"
}

// BeforeCreate assigns a UUID if none was provided
func (m *ContentModule) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
