package model

// Task is the domain model for a todo entry.
// ID is assigned by the store and never changes; Done only goes false -> true.
type Task struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Done        bool   `json:"done" db:"done"`
}
