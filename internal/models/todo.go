package models

import (
	"time"
)

// Todo represents a single todo item
//
// Description and Tags are fixed at creation time; only Completed changes
// afterwards, and only through the store. Tags keep their original insertion
// order because output formatting renders them in that order.
type Todo struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}
