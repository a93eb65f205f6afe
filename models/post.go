package models

import "time"

// Post represents a board post written inside one som category.
type Post struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	MemberID      uint      `gorm:"index:idx_posts_daily,priority:1;not null" json:"member_id"`
	SomCategoryID uint      `gorm:"index:idx_posts_daily,priority:2;not null" json:"som_category_id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	ImageURL      string    `gorm:"size:1024" json:"image_url"` // thumbnail URL
	ReadCount     int64     `gorm:"not null;default:0" json:"read_count"`
	CreatedAt     time.Time `gorm:"index:idx_posts_daily,priority:3" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Member        Member    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
}
