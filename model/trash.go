package model

// TrashStats summarizes the trashed notes across the whole store.
type TrashStats struct {
	Total   int64 `json:"total"`   // all trashed notes
	Current int64 `json:"current"` // still inside the retention window
	Expired int64 `json:"expired"` // past the window, eligible for purge
}

// DueDateBuckets partitions a user's active notes that carry a due date.
type DueDateBuckets struct {
	Overdue  []*Note `json:"overdue"`
	Upcoming []*Note `json:"upcoming"`
}
