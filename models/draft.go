package models

import "time"

// Draft is an unpublished post kept aside by its author. Drafts have an
// independent lifecycle: publishing from one deletes it, otherwise it stays
// until the owner removes it explicitly.
type Draft struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	MemberID      uint      `gorm:"index;not null" json:"member_id"`
	SomCategoryID uint      `json:"som_category_id"`
	Title         string    `gorm:"size:255" json:"title"`
	Content       string    `gorm:"type:text" json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
