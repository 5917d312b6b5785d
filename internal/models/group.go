package models

// Group is a named collection that posts may optionally belong to.
// Groups are created out-of-band; this surface only reads them, keyed by slug.
type Group struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:200"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:200"` // stable URL key
	Description string `json:"description"`
}
