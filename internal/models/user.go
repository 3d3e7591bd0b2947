package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserAuth holds login credentials for editors and translators
type UserAuth struct {
	ID       string `gorm:"column:user_id;primaryKey;type:uuid" json:"userId"`
	Email    string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password string `gorm:"column:password;not null" json:"-"` // bcrypt hash
	Name     string `gorm:"column:name" json:"name"`
	Role     string `gorm:"column:role;default:'editor'" json:"role"` // editor, translator, admin

	LastLogin *time.Time `gorm:"column:last_login" json:"lastLogin,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name
func (UserAuth) TableName() string {
	return "user_auths"
}

// BeforeCreate assigns a UUID if none was provided
func (u *UserAuth) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
