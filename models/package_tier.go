package models

import (
	"time"

	"github.com/lib/pq"
)

// PackageTier is a priced service bundle advertised on the site.
type PackageTier struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Title     string         `json:"title" gorm:"size:255;not null"`
	TitleAr   string         `json:"title_ar" gorm:"size:255"`
	Price     float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Features  pq.StringArray `json:"features" gorm:"type:text[]"`
	SortOrder int            `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the PackageTier model
func (PackageTier) TableName() string {
	return "package_tiers"
}
