package models

import "time"

// Setting is a named scalar configuration value, stored as text and
// interpreted by the settings store.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Key       string    `gorm:"uniqueIndex;not null;size:100" json:"key"`
	Value     string    `gorm:"not null;size:100" json:"value"`
}

// Recognized setting keys and their defaults.
const (
	SettingHourlyWage   = "hourly_wage"
	SettingMinijobLimit = "minijob_limit"
	SettingRestHours    = "rest_hours"

	DefaultHourlyWage   = 14
	DefaultMinijobLimit = 556
)
