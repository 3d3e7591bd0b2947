package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Section is one node of a document's hierarchical outline.
// ParentID nil means root level. Order is the sibling sequence and
// need not be contiguous; ties are broken by id.
type Section struct {
	ID          string  `gorm:"column:section_id;primaryKey;type:uuid" json:"sectionId"`
	DocumentID  string  `gorm:"column:document_id;not null;index" json:"documentId"`
	ParentID    *string `gorm:"column:parent_id;type:uuid;index" json:"parentId"`
	Order       int     `gorm:"column:sort_order;default:0" json:"order"`
	Title       string  `gorm:"column:title;not null" json:"title"`
	Description string  `gorm:"column:description" json:"description"`
	IsModule    bool    `gorm:"column:is_module;default:false" json:"isModule"` // reusable library entry

	CreatedAt time.Time      `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name
func (Section) TableName() string {
	return "sections"
}

// BeforeCreate assigns a UUID if none was provided
func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
