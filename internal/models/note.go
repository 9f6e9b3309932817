// Package models holds the data types shared by the client layers.
package models

import "time"

// MaxTitleLength is the longest title the service accepts.
const MaxTitleLength = 256

// Note is a single note as served by the backend. The service is
// authoritative: the client never assigns ids or timestamps.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteDraft carries the user-editable fields sent on create and update.
type NoteDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
