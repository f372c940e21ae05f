package domain

import "time"

// Goal Model
type Goal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                    // Primary key
	UserID    uint      `gorm:"index;not null" json:"user_id"`           // Owner
	Task      string    `gorm:"not null" json:"task"`                    // What to do
	Completed bool      `gorm:"not null;default:false" json:"completed"` // Done flag
	CreatedAt time.Time `json:"created_at"`                              // Set by gorm on insert
}
