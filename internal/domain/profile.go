package domain

import "gorm.io/datatypes"

// Profile is a User joined with its Journey row. Level and Progress are nil
// when the user has no journey.
type Profile struct {
	ID            uint                         `json:"id"`
	Username      string                       `json:"username"`
	PasswordHash  *string                      `json:"password_hash"`
	IsNew         bool                         `json:"is_new"`
	ProfilePic    *string                      `json:"profile_pic"`
	Skills        *string                      `json:"skills"`
	Subjects      *datatypes.JSONSlice[string] `json:"subjects"`
	Interests     *string                      `json:"interests"`
	Goal          *string                      `json:"goal"`
	ThinkingStyle *string                      `json:"thinking_style"`
	ExtraInfo     *string                      `json:"extra_info"`
	Level         *string                      `json:"level"`
	Progress      *int                         `json:"progress"`
}

// Survey holds the answers of one survey submission. Absent fields are empty.
type Survey struct {
	Subjects      []string `json:"subjects"`
	Interests     string   `json:"interests"`
	Skills        string   `json:"skills"`
	Goal          string   `json:"goal"`
	ThinkingStyle string   `json:"thinking_style"`
	ExtraInfo     string   `json:"extra_info"`
}
