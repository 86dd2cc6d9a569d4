package models

import "time"

type Project struct {
	ID          int32          `json:"id"`
	UserID      int32          `json:"userId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	HTML        *string        `json:"html"`
	CSS         *string        `json:"css"`
	JavaScript  *string        `json:"javascript"`
	Framework   *string        `json:"framework"`
	IsPublished *bool          `json:"isPublished"`
	CreatedAt   time.Time      `json:"createdAt"`
	Settings    map[string]any `json:"settings"`
}

// InsertProject never carries id or createdAt; storage assigns both.
type InsertProject struct {
	UserID      int32          `json:"userId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	HTML        *string        `json:"html"`
	CSS         *string        `json:"css"`
	JavaScript  *string        `json:"javascript"`
	Framework   *string        `json:"framework"`
	IsPublished *bool          `json:"isPublished"`
	Settings    map[string]any `json:"settings"`
}
