package domain

import "fmt"

// SeedLevel is the journey level every user starts at
const SeedLevel = "Newbie"

// Journey Model
type Journey struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                                   // Primary key
	UserID   uint   `gorm:"index" json:"user_id"`                                   // Foreign key to User, one row per user by convention
	User     *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Owning user
	Level    string `json:"level"`                                                  // Level label
	Progress int    `gorm:"not null;default:0" json:"progress"`                     // Reset to 0 on every survey
}

// TableName keeps the singular table name used by existing storage files
func (Journey) TableName() string {
	return "journey"
}

// BeginnerLevel returns the level assigned after a survey whose first subject is subject
func BeginnerLevel(subject string) string {
	return fmt.Sprintf("Beginner at %s", subject)
}
