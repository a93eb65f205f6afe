package models

import "time"

// SomCategory is a board category ("som"). Categories and memberships are
// managed elsewhere; this module only reads them.
type SomCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:64;not null" json:"name"`
}

// SomCategoryMember joins members to the som categories they participate in.
type SomCategoryMember struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SomCategoryID uint      `gorm:"index;not null" json:"som_category_id"`
	MemberID      uint      `gorm:"index;not null" json:"member_id"`
	CreatedAt     time.Time `json:"created_at"`
}
