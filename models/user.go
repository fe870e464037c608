package models

import "time"

type User struct {
	ID                 uint        `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
	Username           string      `gorm:"uniqueIndex;not null;size:100" json:"username"`
	PasswordHash       string      `gorm:"not null" json:"-"`
	MustChangePassword bool        `gorm:"default:true" json:"must_change_password"`
	TimeEntries        []TimeEntry `gorm:"foreignKey:UserID" json:"time_entries,omitempty"`
}
