package models

import "time"

// PostImage is an uploaded image belonging to a post. The upload service
// stores the file and inserts a row with a URL and no post id; publishing a
// post claims its images by URL and marks one of them as the thumbnail.
type PostImage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PostID      *uint     `gorm:"index" json:"post_id"`
	URL         string    `gorm:"size:1024;not null" json:"url"`
	Path        string    `gorm:"size:1024" json:"path"`
	Name        string    `gorm:"size:255" json:"name"`
	IsThumbnail bool      `gorm:"not null;default:false" json:"is_thumbnail"`
	CreatedAt   time.Time `json:"created_at"`
}
