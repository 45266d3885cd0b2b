package model

// Department references its manager by user id; the display name is
// resolved at render time, same as Task.AssigneeID.
type Department struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ManagerID int    `json:"manager_id"`
	Employees int    `json:"employees"`
}
