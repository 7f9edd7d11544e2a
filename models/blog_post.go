package models

import "time"

type PostStatus string

const (
	PostPublished PostStatus = "Published"
	PostDraft     PostStatus = "Draft"
)

// BlogPost is an article shown on the public blog when published.
type BlogPost struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Title     string     `json:"title" gorm:"size:255;not null"`
	Excerpt   string     `json:"excerpt" gorm:"size:500"`
	Content   string     `json:"content" gorm:"type:text"`
	Date      string     `json:"date" gorm:"size:10;not null"` // ISO YYYY-MM-DD
	ImageURL  string     `json:"image_url" gorm:"size:500"`
	Status    PostStatus `json:"status" gorm:"type:varchar(20);not null;default:'Draft';check:status IN ('Published','Draft')"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the BlogPost model
func (BlogPost) TableName() string {
	return "blog_posts"
}
