package service

import (
	"errors"

	"solarhub-backend/internal/model"
	"solarhub-backend/internal/store"
)

type CreateTaskRequest struct {
	Title      string `json:"title" binding:"required"`
	AssigneeID int    `json:"assignee_id" binding:"required"`
	DueDate    string `json:"due_date" binding:"required"`
	Status     string `json:"status"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TaskResponse carries the task with its assignee name resolved from the
// users collection at render time.
type TaskResponse struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	AssigneeID int    `json:"assignee_id"`
	Assignee   string `json:"assignee"`
	DueDate    string `json:"due_date"`
	Status     string `json:"status"`
}

// TaskService manages the admin task management screen.
type TaskService interface {
	View() TableView[TaskResponse]
	Search(term string)
	Sort(key string) (store.Direction, error)
	Create(req CreateTaskRequest) (TaskResponse, error)
	Delete(id int) error
	UpdateStatus(id int, status string) (TaskResponse, error)
}

type taskService struct {
	tasks *store.Table[model.Task]
	users UserDirectory
}

func NewTaskService(seed []model.Task, users UserDirectory) TaskService {
	cfg := store.Config[model.Task]{
		ID:    func(t model.Task) int { return t.ID },
		SetID: func(t model.Task, id int) model.Task { t.ID = id; return t },
		SearchText: func(t model.Task) []string {
			return []string{t.Title}
		},
		SortKeys: map[string]func(a, b model.Task) int{
			"title":    func(a, b model.Task) int { return store.CompareStrings(a.Title, b.Title) },
			"due_date": func(a, b model.Task) int { return store.CompareStrings(a.DueDate, b.DueDate) },
			"status":   func(a, b model.Task) int { return store.CompareStrings(a.Status, b.Status) },
		},
	}
	return &taskService{
		tasks: store.New(cfg, seed),
		users: users,
	}
}

func (s *taskService) View() TableView[TaskResponse] {
	key, dir := s.tasks.Sort()
	return tableView(s.resolve(s.tasks.View()), s.tasks.SearchTerm(), key, dir)
}

func (s *taskService) Search(term string) {
	s.tasks.SetSearchTerm(term)
}

func (s *taskService) Sort(key string) (store.Direction, error) {
	return s.tasks.SetSort(key)
}

func (s *taskService) Create(req CreateTaskRequest) (TaskResponse, error) {
	if req.Status == "" {
		req.Status = model.TaskPending
	}
	if !model.ValidTaskStatus(req.Status) {
		return TaskResponse{}, errors.New("invalid status: must be Pending, In Progress, or Completed")
	}
	if _, _, ok := s.users.GetByID(req.AssigneeID); !ok {
		return TaskResponse{}, errors.New("assignee not found")
	}

	task := s.tasks.Add(model.Task{
		Title:      req.Title,
		AssigneeID: req.AssigneeID,
		DueDate:    req.DueDate,
		Status:     req.Status,
	})
	return s.resolveOne(task), nil
}

func (s *taskService) Delete(id int) error {
	if !s.tasks.Delete(id) {
		return ErrNotFound
	}
	return nil
}

func (s *taskService) UpdateStatus(id int, status string) (TaskResponse, error) {
	if !model.ValidTaskStatus(status) {
		return TaskResponse{}, errors.New("invalid status: must be Pending, In Progress, or Completed")
	}

	task, ok := s.tasks.Update(id, func(t model.Task) model.Task {
		t.Status = status
		return t
	})
	if !ok {
		return TaskResponse{}, ErrNotFound
	}
	return s.resolveOne(task), nil
}

func (s *taskService) resolve(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, s.resolveOne(t))
	}
	return out
}

func (s *taskService) resolveOne(t model.Task) TaskResponse {
	name, _, ok := s.users.GetByID(t.AssigneeID)
	if !ok {
		name = "Unassigned"
	}
	return TaskResponse{
		ID:         t.ID,
		Title:      t.Title,
		AssigneeID: t.AssigneeID,
		Assignee:   name,
		DueDate:    t.DueDate,
		Status:     t.Status,
	}
}
