package models

import "time"

// Read projections returned by listing and detail queries. IsLiked pointers
// stay nil for anonymous viewers so the field disappears from the JSON
// instead of reporting a false negative.

// PostSummary is one row of the main board listing.
type PostSummary struct {
	PostID           uint      `gorm:"column:post_id" json:"post_id"`
	Title            string    `gorm:"column:title" json:"title"`
	Content          string    `gorm:"column:content" json:"content"`
	ImageURL         string    `gorm:"column:image_url" json:"image_url"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
	ReadCount        int64     `gorm:"column:read_count" json:"read_count"`
	SomCategoryID    uint      `gorm:"column:som_category_id" json:"som_category_id"`
	SomCategoryName  string    `gorm:"column:som_category_name" json:"som_category_name"`
	MemberID         uint      `gorm:"column:member_id" json:"member_id"`
	MemberNickname   string    `gorm:"column:member_nickname" json:"member_nickname"`
	MemberProfileURL string    `gorm:"column:member_profile_url" json:"member_profile_url"`
	LikeCount        int64     `gorm:"column:like_count" json:"like_count"`
	CommentCount     int64     `gorm:"column:comment_count" json:"comment_count"`
	IsLiked          *bool     `gorm:"-" json:"is_liked,omitempty"`
}

// PostDetail is the full post view with its comment tree.
type PostDetail struct {
	PostID           uint                `gorm:"column:post_id" json:"post_id"`
	Title            string              `gorm:"column:title" json:"title"`
	Content          string              `gorm:"column:content" json:"content"`
	ImageURL         string              `gorm:"column:image_url" json:"image_url"`
	CreatedAt        time.Time           `gorm:"column:created_at" json:"created_at"`
	ReadCount        int64               `gorm:"column:read_count" json:"read_count"`
	MemberID         uint                `gorm:"column:member_id" json:"member_id"`
	MemberNickname   string              `gorm:"column:member_nickname" json:"member_nickname"`
	MemberProfileURL string              `gorm:"column:member_profile_url" json:"member_profile_url"`
	LikeCount        int64               `gorm:"column:like_count" json:"like_count"`
	IsLiked          *bool               `gorm:"-" json:"is_liked,omitempty"`
	Comments         []PostCommentDetail `gorm:"-" json:"comments"`
}

// PostCommentDetail is a comment inside the detail view.
type PostCommentDetail struct {
	CommentID        uint              `gorm:"column:comment_id" json:"comment_id"`
	Content          string            `gorm:"column:content" json:"content"`
	CreatedAt        time.Time         `gorm:"column:created_at" json:"created_at"`
	MemberID         uint              `gorm:"column:member_id" json:"member_id"`
	MemberNickname   string            `gorm:"column:member_nickname" json:"member_nickname"`
	MemberProfileURL string            `gorm:"column:member_profile_url" json:"member_profile_url"`
	LikeCount        int64             `gorm:"column:like_count" json:"like_count"`
	IsLiked          *bool             `gorm:"-" json:"is_liked,omitempty"`
	Replies          []PostReplyDetail `gorm:"-" json:"replies"`
}

// PostReplyDetail is a reply inside the detail view.
type PostReplyDetail struct {
	ReplyID          uint      `gorm:"column:reply_id" json:"reply_id"`
	CommentID        uint      `gorm:"column:comment_id" json:"comment_id"`
	Content          string    `gorm:"column:content" json:"content"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
	MemberID         uint      `gorm:"column:member_id" json:"member_id"`
	MemberNickname   string    `gorm:"column:member_nickname" json:"member_nickname"`
	MemberProfileURL string    `gorm:"column:member_profile_url" json:"member_profile_url"`
	LikeCount        int64     `gorm:"column:like_count" json:"like_count"`
	IsLiked          *bool     `gorm:"-" json:"is_liked,omitempty"`
}

// PostModifyView is the reduced projection used to populate the edit form.
type PostModifyView struct {
	PostID        uint   `gorm:"column:post_id" json:"post_id"`
	Title         string `gorm:"column:title" json:"title"`
	Content       string `gorm:"column:content" json:"content"`
	ImageURL      string `gorm:"column:image_url" json:"image_url"`
	SomCategoryID uint   `gorm:"column:som_category_id" json:"som_category_id"`
}
