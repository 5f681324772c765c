package dto

import "time"

type CreateNoteRequest struct {
	Title           string     `json:"title" binding:"required"`
	Items           []string   `json:"items"`
	CompletedItems  []int      `json:"completed_items"`
	Tags            []string   `json:"tags"`
	BackgroundColor string     `json:"background_color"`
	DueDate         *time.Time `json:"due_date"`
}

// NotePatch enumerates the mutable note fields. A nil pointer means "leave
// unchanged"; DueDate and ClearDueDate are separate because a patch must be
// able to remove a due date, not just replace it.
type NotePatch struct {
	Title           *string    `json:"title"`
	Items           *[]string  `json:"items"`
	CompletedItems  *[]int     `json:"completed_items"`
	Tags            *[]string  `json:"tags"`
	BackgroundColor *string    `json:"background_color"`
	DueDate         *time.Time `json:"due_date"`
	ClearDueDate    bool       `json:"clear_due_date"`
	IsArchived      *bool      `json:"is_archived"`
}

// Empty reports whether the patch changes nothing.
func (p *NotePatch) Empty() bool {
	return p.Title == nil && p.Items == nil && p.CompletedItems == nil &&
		p.Tags == nil && p.BackgroundColor == nil && p.DueDate == nil &&
		!p.ClearDueDate && p.IsArchived == nil
}
