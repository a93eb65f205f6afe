package models

import "time"

// Member is the account principal referenced by board content. Accounts are
// created and managed by the authentication service; this module only reads
// the columns it needs to render authors.
type Member struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Nickname   string    `gorm:"size:64;not null" json:"nickname"`
	ProfileURL string    `gorm:"size:512" json:"profile_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
