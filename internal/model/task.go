package model

// Task statuses in lifecycle order.
const (
	TaskPending    = "Pending"
	TaskInProgress = "In Progress"
	TaskCompleted  = "Completed"
)

// Task references its assignee by user id rather than by copied display
// name, so renaming or deleting a user cannot leave a stale name behind.
// The name is resolved when the task is rendered.
type Task struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	AssigneeID int    `json:"assignee_id"`
	DueDate    string `json:"due_date"`
	Status     string `json:"status"`
}

// ValidTaskStatus reports whether status is a known task status.
func ValidTaskStatus(status string) bool {
	return status == TaskPending || status == TaskInProgress || status == TaskCompleted
}
