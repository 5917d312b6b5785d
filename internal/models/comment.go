package models

import "time"

// Comment is a text reply attached to a post. Post and author references are
// nullable to tolerate historical rows imported without one or the other.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	PostID    *uint     `json:"post_id,omitempty" gorm:"index"`
	Post      *Post     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	AuthorID  *uint     `json:"author_id,omitempty" gorm:"index"`
	Author    *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
