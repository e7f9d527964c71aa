package model

import (
	"time"
)

// Setting represents one keyed configuration value
type Setting struct {
	Key       string    `gorm:"primaryKey;size:100"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Setting
func (Setting) TableName() string {
	return "settings"
}
