package models

import "time"

// PracticeArea is a seeded content block for the public practice areas page.
type PracticeArea struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"size:255;not null"`
	TitleAr       string    `json:"title_ar" gorm:"size:255;not null"`
	Description   string    `json:"description" gorm:"size:1000"`
	DescriptionAr string    `json:"description_ar" gorm:"size:1000"`
	IconName      string    `json:"icon_name" gorm:"size:100"`
	SortOrder     int       `json:"sort_order" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the PracticeArea model
func (PracticeArea) TableName() string {
	return "practice_areas"
}
