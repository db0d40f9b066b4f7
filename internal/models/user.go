package models

import (
	"time"
)

// User represents a registered author
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;column:id"`
	Username     string    `gorm:"type:varchar(150);not null;uniqueIndex;column:username"`
	Email        string    `gorm:"type:varchar(254);column:email"`
	FirstName    string    `gorm:"type:varchar(150);column:first_name"`
	LastName     string    `gorm:"type:varchar(150);column:last_name"`
	PasswordHash string    `gorm:"type:varchar(128);not null;column:password_hash"`
	CreatedAt    time.Time `gorm:"not null;column:created_at"`

	// Relationships
	Posts    []Post    `gorm:"foreignKey:AuthorID;references:ID"`
	Comments []Comment `gorm:"foreignKey:AuthorID;references:ID"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the user's display name, falling back to the username
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}
