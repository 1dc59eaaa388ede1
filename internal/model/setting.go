package model

import "time"

// HeroBannerPrefix groups the settings keys that make up the public hero banner.
const HeroBannerPrefix = "hero_banner_"

// Setting is a free-form key/value configuration row.
type Setting struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Key         string    `json:"key_name" gorm:"column:key_name;uniqueIndex;size:100;not null"`
	Value       string    `json:"value" gorm:"type:text"`
	Description string    `json:"description" gorm:"size:255"`
	UpdatedBy   *uint     `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName keeps the table name stable regardless of gorm pluralization rules.
func (Setting) TableName() string { return "settings" }
