package domain

import "gorm.io/datatypes" // JSON-encoded text columns

// DemoUserID is the identity every request acts as
const DemoUserID uint = 1

// SeedUsername is the username of the seeded demo account
const SeedUsername = "Maya"

// User Model
type User struct {
	ID            uint                         `gorm:"primaryKey" json:"id"`                // Primary key
	Username      string                       `gorm:"not null" json:"username"`            // Set at seed time
	PasswordHash  *string                      `json:"password_hash"`                       // Reserved, never written
	IsNew         bool                         `gorm:"not null;default:true" json:"is_new"` // True until the survey is submitted
	ProfilePic    *string                      `json:"profile_pic"`                         // Reserved, never written
	Skills        *string                      `json:"skills"`                              // Free text
	Subjects      *datatypes.JSONSlice[string] `json:"subjects"`                            // Stored as JSON text
	Interests     *string                      `json:"interests"`                           // Free text
	Goal          *string                      `json:"goal"`                                // Free text
	ThinkingStyle *string                      `json:"thinking_style"`                      // Free text
	ExtraInfo     *string                      `json:"extra_info"`                          // Free text
}
