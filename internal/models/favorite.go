package models

import (
	"time"

	"gorm.io/gorm"
)

// Favorite is a name a user chose to keep.
type Favorite struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uint           `gorm:"not null;index;uniqueIndex:idx_user_name" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Name      string         `gorm:"not null;uniqueIndex:idx_user_name" json:"name"`
	Type      string         `gorm:"not null" json:"type"` // "band" or "song"
	Genre     string         `json:"genre,omitempty"`
	Mood      string         `json:"mood,omitempty"`
	Notes     string         `gorm:"type:text" json:"notes,omitempty"`
}
