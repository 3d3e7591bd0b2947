package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Component is a physical part referenced by BOM items and component modules.
// Code is the manufacturer/ERP part number and is unique.
type Component struct {
	ID          string `gorm:"column:component_id;primaryKey;type:uuid" json:"componentId"`
	Code        string `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Description string `gorm:"column:description" json:"description"`

	// ERP linkage; zero when the component was authored locally
	ErpID   int64          `gorm:"column:erp_id;index" json:"erpId,omitempty"`
	RawData datatypes.JSON `gorm:"column:raw_data;type:jsonb" json:"rawData,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name
func (Component) TableName() string {
	return "components"
}

// BeforeCreate assigns a UUID if none was provided
func (c *Component) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Bom is a bill of materials: an ordered, leveled list of components
type Bom struct {
	ID          string `gorm:"column:bom_id;primaryKey;type:uuid" json:"bomId"`
	Title       string `gorm:"column:title;not null" json:"title"`
	Description string `gorm:"column:description" json:"description"`

	ErpID int64 `gorm:"column:erp_id;index" json:"erpId,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name
func (Bom) TableName() string {
	return "boms"
}

// BeforeCreate assigns a UUID if none was provided
func (b *Bom) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BomItem is one row of a BOM. Level is the indentation depth in the
// exploded parts tree (>= 1), Quantity is the piece count (>= 1).
type BomItem struct {
	ID          string `gorm:"column:bom_item_id;primaryKey;type:uuid" json:"bomItemId"`
	BomID       string `gorm:"column:bom_id;not null;index" json:"bomId"`
	ComponentID string `gorm:"column:component_id;not null;index" json:"componentId"`
	Level       int    `gorm:"column:level;default:1" json:"level"`
	Quantity    int    `gorm:"column:quantity;default:1" json:"quantity"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name
func (BomItem) TableName() string {
	return "bom_items"
}

// BeforeCreate assigns a UUID if none was provided
func (i *BomItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
