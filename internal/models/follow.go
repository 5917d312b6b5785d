package models

import "time"

// Follow is a directed subscription from a user to an author. The composite
// unique index makes the (user, author) pair a one-shot relation; the check
// constraint rejects self-follows at the storage level.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_author_follow"`
	AuthorID  uint      `json:"author_id" gorm:"index;uniqueIndex:idx_user_author_follow;check:chk_follow_not_self,user_id <> author_id"`
	CreatedAt time.Time `json:"created_at"`
}
