package models

import "time"

// Post is an authored text entry, optionally grouped and illustrated.
// Listings are always ordered by CreatedAt descending; CreatedAt is set once
// on insert and never touched by edits.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Author    User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	GroupID   *uint     `json:"group_id,omitempty" gorm:"index"`
	Group     *Group    `json:"-" gorm:"constraint:OnDelete:SET NULL"` // post survives group deletion
	ImagePath string    `json:"image_path,omitempty"`                  // key into the image blob store
}
