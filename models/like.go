package models

import "time"

// PostLike marks that a member liked a post. The composite unique index is
// what makes the toggle safe under concurrent requests: two racing inserts
// for the same pair cannot both succeed.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"uniqueIndex:uk_post_likes,priority:1;not null" json:"post_id"`
	MemberID  uint      `gorm:"uniqueIndex:uk_post_likes,priority:2;not null" json:"member_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentLike marks that a member liked a comment.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CommentID uint      `gorm:"uniqueIndex:uk_comment_likes,priority:1;not null" json:"comment_id"`
	MemberID  uint      `gorm:"uniqueIndex:uk_comment_likes,priority:2;not null" json:"member_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ReplyLike marks that a member liked a reply.
type ReplyLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReplyID   uint      `gorm:"uniqueIndex:uk_reply_likes,priority:1;not null" json:"reply_id"`
	MemberID  uint      `gorm:"uniqueIndex:uk_reply_likes,priority:2;not null" json:"member_id"`
	CreatedAt time.Time `json:"created_at"`
}
