package models

import (
	"time"
)

// Comment represents a text reply attached to a single post
type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id"`
	PostID    uint      `gorm:"not null;index;column:post_id"`
	AuthorID  uint      `gorm:"not null;index;column:author_id"`
	Text      string    `gorm:"type:text;not null;column:text"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`

	// Relationships
	Post   *Post `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Author *User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// String renders the comment as its text truncated to 15 runes
func (c Comment) String() string {
	return snippet(c.Text)
}
