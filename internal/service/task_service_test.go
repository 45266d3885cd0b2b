package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarhub-backend/internal/model"
)

type stubDirectory map[int][2]string

func (d stubDirectory) GetByID(id int) (string, string, bool) {
	entry, ok := d[id]
	return entry[0], entry[1], ok
}

func fixtureTasks() []model.Task {
	return []model.Task{
		{ID: 1, Title: "System Maintenance", AssigneeID: 1, DueDate: "2024-04-15", Status: model.TaskInProgress},
		{ID: 2, Title: "Client Meeting", AssigneeID: 2, DueDate: "2024-04-10", Status: model.TaskCompleted},
		{ID: 3, Title: "Product Testing", AssigneeID: 9, DueDate: "2024-04-20", Status: model.TaskPending},
	}
}

func taskDirectory() stubDirectory {
	return stubDirectory{
		1: {"John Doe", model.RoleAdmin},
		2: {"Jane Smith", model.RoleManager},
	}
}

func TestTaskViewResolvesAssigneeNames(t *testing.T) {
	svc := NewTaskService(fixtureTasks(), taskDirectory())

	view := svc.View()
	require.Len(t, view.Records, 3)
	assert.Equal(t, "John Doe", view.Records[0].Assignee)
	assert.Equal(t, "Unassigned", view.Records[2].Assignee)
}

func TestTaskCreateDefaultsToPending(t *testing.T) {
	svc := NewTaskService(nil, taskDirectory())

	task, err := svc.Create(CreateTaskRequest{Title: "Site Survey", AssigneeID: 2, DueDate: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, 1, task.ID)
	assert.Equal(t, model.TaskPending, task.Status)
	assert.Equal(t, "Jane Smith", task.Assignee)
}

func TestTaskCreateRejectsUnknownAssignee(t *testing.T) {
	svc := NewTaskService(fixtureTasks(), taskDirectory())

	_, err := svc.Create(CreateTaskRequest{Title: "Orphan", AssigneeID: 42, DueDate: "2024-05-01"})
	assert.Error(t, err)
	assert.Equal(t, 3, svc.View().Total)
}

func TestTaskCreateRejectsBadStatus(t *testing.T) {
	svc := NewTaskService(nil, taskDirectory())

	_, err := svc.Create(CreateTaskRequest{Title: "X", AssigneeID: 1, DueDate: "2024-05-01", Status: "Done"})
	assert.Error(t, err)
}

func TestTaskUpdateStatus(t *testing.T) {
	svc := NewTaskService(fixtureTasks(), taskDirectory())

	task, err := svc.UpdateStatus(3, model.TaskInProgress)
	require.NoError(t, err)
	assert.Equal(t, model.TaskInProgress, task.Status)

	_, err = svc.UpdateStatus(99, model.TaskCompleted)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateStatus(1, "Archived")
	assert.Error(t, err)
}

func TestTaskSearchMatchesTitleOnly(t *testing.T) {
	svc := NewTaskService(fixtureTasks(), taskDirectory())

	// "pending" appears only in a status, which is not a search field
	svc.Search("pending")
	assert.Empty(t, svc.View().Records)

	svc.Search("client")
	view := svc.View()
	require.Len(t, view.Records, 1)
	assert.Equal(t, "Client Meeting", view.Records[0].Title)
}

func TestTaskSortByDueDate(t *testing.T) {
	svc := NewTaskService(fixtureTasks(), taskDirectory())

	_, err := svc.Sort("due_date")
	require.NoError(t, err)

	view := svc.View()
	assert.Equal(t, "Client Meeting", view.Records[0].Title)
	assert.Equal(t, "Product Testing", view.Records[2].Title)
}
