package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Language is a translation target. At most one language is the default;
// the default language and any language with existing translations cannot
// be deleted (enforced in the handlers).
type Language struct {
	ID        string `gorm:"column:language_id;primaryKey;type:uuid" json:"languageId"`
	Code      string `gorm:"column:code;uniqueIndex;not null" json:"code"` // e.g. "de", "fr"
	Name      string `gorm:"column:name;not null" json:"name"`
	IsActive  bool   `gorm:"column:is_active;default:true" json:"isActive"`
	IsDefault bool   `gorm:"column:is_default;default:false" json:"isDefault"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name
func (Language) TableName() string {
	return "languages"
}

// BeforeCreate assigns a UUID if none was provided
func (l *Language) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
