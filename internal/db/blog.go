package db

import "gorm.io/gorm"

// Blog is a generated article. It belongs to exactly one owner context:
// UserID for authenticated owners, SessionID for guests.
type Blog struct {
	gorm.Model
	UserID       uint   `gorm:"index" json:"user_id,omitempty"`
	SessionID    string `gorm:"index;size:64" json:"-"`
	Title        string `gorm:"size:256;not null" json:"title"`
	Details      string `json:"details"`
	Body         string `json:"body"`
	BodyHTML     string `json:"body_html"`
	FilenameBase string `gorm:"size:160" json:"filename_base"`
	Category     string `gorm:"size:50;index;default:General" json:"category"`
	User         User   `json:"-"`
}

// BlogRevision preserves a blog's content before an accepted edit so a
// revert can restore it exactly.
type BlogRevision struct {
	gorm.Model
	BlogID   uint   `gorm:"index;not null" json:"blog_id"`
	Body     string `json:"body"`
	BodyHTML string `json:"body_html"`
}
