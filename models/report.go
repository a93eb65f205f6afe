package models

import "time"

// PostReport records a member reporting a post. Reports are append-only;
// moderation happens outside this service.
type PostReport struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	MemberID  uint      `gorm:"not null" json:"member_id"`
	Reason    string    `gorm:"size:500" json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentReport records a member reporting a comment.
type CommentReport struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CommentID uint      `gorm:"index;not null" json:"comment_id"`
	MemberID  uint      `gorm:"not null" json:"member_id"`
	Reason    string    `gorm:"size:500" json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// ReplyReport records a member reporting a reply.
type ReplyReport struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReplyID   uint      `gorm:"index;not null" json:"reply_id"`
	MemberID  uint      `gorm:"not null" json:"member_id"`
	Reason    string    `gorm:"size:500" json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
