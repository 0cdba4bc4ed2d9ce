package models

import "time"

// GenerationLog records one generation request for usage history and
// admin dashboards. Append-only.
type GenerationLog struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UserID         uint      `gorm:"index" json:"user_id"` // 0 for anonymous
	Type           string    `gorm:"not null" json:"type"` // "band" or "song"
	Genre          string    `gorm:"index" json:"genre,omitempty"`
	SecondaryGenre string    `json:"secondary_genre,omitempty"`
	Mood           string    `json:"mood,omitempty"`
	WordCount      int       `json:"word_count"`
	Count          int       `gorm:"not null" json:"count"`
	Fusion         bool      `gorm:"default:false" json:"fusion"`
	FallbackUsed   bool      `gorm:"default:false" json:"fallback_used"`
	TopName        string    `json:"top_name,omitempty"`
	TopQuality     float64   `json:"top_quality"`
	DurationMS     int       `gorm:"not null" json:"duration_ms"`
	RequestID      string    `gorm:"index" json:"request_id"`
}
