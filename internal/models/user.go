package models

import "time"

// User is a registered author, addressed in URLs by a unique username.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:150"`
	DisplayName  string    `json:"display_name" gorm:"size:150"`
	PasswordHash string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at"`
}

// Name returns the string shown next to the user's posts and comments.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// SignupForm defines the fields submitted by the signup page
type SignupForm struct {
	Username    string `form:"username" validate:"required,min=3,max=150,alphanum"`
	DisplayName string `form:"display_name" validate:"omitempty,max=150"`
	Password    string `form:"password" validate:"required,min=8"`
}

// LoginForm defines the fields submitted by the login page
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
