package models

import "time"

// RecentView tracks the last time a member viewed a post. One row per
// (member, post); repeated views refresh ViewedAt instead of inserting.
type RecentView struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	MemberID uint      `gorm:"uniqueIndex:uk_recent_views,priority:1;not null" json:"member_id"`
	PostID   uint      `gorm:"uniqueIndex:uk_recent_views,priority:2;not null" json:"post_id"`
	ViewedAt time.Time `gorm:"not null" json:"viewed_at"`
}
