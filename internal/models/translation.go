package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Translation statuses
const (
	TranslationStatusInProgress = "in_progress"
	TranslationStatusTranslated = "translated"
	TranslationStatusInReview   = "in_review"
	TranslationStatusApproved   = "approved"
)

// SectionTranslation is the language overlay for one section.
// Created lazily the first time a translator touches the pair;
// untouched sections never get a record.
type SectionTranslation struct {
	ID          string `gorm:"column:translation_id;primaryKey;type:uuid" json:"translationId"`
	SectionID   string `gorm:"column:section_id;not null;uniqueIndex:idx_section_lang" json:"sectionId"`
	LanguageID  string `gorm:"column:language_id;not null;uniqueIndex:idx_section_lang" json:"languageId"`
	Title       string `gorm:"column:title" json:"title"`
	Description string `gorm:"column:description" json:"description"`
	Status      string `gorm:"column:status;default:'in_progress'" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name
func (SectionTranslation) TableName() string {
	return "section_translations"
}

// BeforeCreate assigns a UUID if none was provided
func (t *SectionTranslation) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// ContentModuleTranslation mirrors the source module's content shape,
// possibly partially populated. Same lazy-creation rule as sections.
type ContentModuleTranslation struct {
	ID         string `gorm:"column:translation_id;primaryKey;type:uuid" json:"translationId"`
	ModuleID   string `gorm:"column:module_id;not null;uniqueIndex:idx_module_lang" json:"moduleId"`
	LanguageID string `gorm:"column:language_id;not null;uniqueIndex:idx_module_lang" json:"languageId"`
	Content    JSONB  `gorm:"column:content;type:jsonb" json:"content"`
	Status     string `gorm:"column:status;default:'in_progress'" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name
func (ContentModuleTranslation) TableName() string {
	return "content_module_translations"
}

// BeforeCreate assigns a UUID if none was provided
func (t *ContentModuleTranslation) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
