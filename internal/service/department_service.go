package service

import (
	"errors"

	"solarhub-backend/internal/model"
	"solarhub-backend/internal/store"
)

type CreateDepartmentRequest struct {
	Name      string `json:"name" binding:"required"`
	ManagerID int    `json:"manager_id" binding:"required"`
	Employees *int   `json:"employees" binding:"required,gte=0"`
}

// DepartmentResponse carries the department with its manager name resolved
// from the users collection at render time.
type DepartmentResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ManagerID int    `json:"manager_id"`
	Manager   string `json:"manager"`
	Employees int    `json:"employees"`
}

// DepartmentService manages the admin departments screen.
type DepartmentService interface {
	View() TableView[DepartmentResponse]
	Search(term string)
	Sort(key string) (store.Direction, error)
	Create(req CreateDepartmentRequest) (DepartmentResponse, error)
	Delete(id int) error
}

type departmentService struct {
	departments *store.Table[model.Department]
	users       UserDirectory
}

func NewDepartmentService(seed []model.Department, users UserDirectory) DepartmentService {
	cfg := store.Config[model.Department]{
		ID:    func(d model.Department) int { return d.ID },
		SetID: func(d model.Department, id int) model.Department { d.ID = id; return d },
		SearchText: func(d model.Department) []string {
			return []string{d.Name}
		},
		SortKeys: map[string]func(a, b model.Department) int{
			"name":      func(a, b model.Department) int { return store.CompareStrings(a.Name, b.Name) },
			"employees": func(a, b model.Department) int { return store.CompareInts(a.Employees, b.Employees) },
		},
	}
	return &departmentService{
		departments: store.New(cfg, seed),
		users:       users,
	}
}

func (s *departmentService) View() TableView[DepartmentResponse] {
	key, dir := s.departments.Sort()
	return tableView(s.resolve(s.departments.View()), s.departments.SearchTerm(), key, dir)
}

func (s *departmentService) Search(term string) {
	s.departments.SetSearchTerm(term)
}

func (s *departmentService) Sort(key string) (store.Direction, error) {
	return s.departments.SetSort(key)
}

func (s *departmentService) Create(req CreateDepartmentRequest) (DepartmentResponse, error) {
	_, role, ok := s.users.GetByID(req.ManagerID)
	if !ok {
		return DepartmentResponse{}, errors.New("manager not found")
	}
	// The manager selector only offers Manager and Admin accounts.
	if role != model.RoleManager && role != model.RoleAdmin {
		return DepartmentResponse{}, errors.New("manager must have the Manager or Admin role")
	}

	department := s.departments.Add(model.Department{
		Name:      req.Name,
		ManagerID: req.ManagerID,
		Employees: *req.Employees,
	})
	return s.resolveOne(department), nil
}

func (s *departmentService) Delete(id int) error {
	if !s.departments.Delete(id) {
		return ErrNotFound
	}
	return nil
}

func (s *departmentService) resolve(departments []model.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, s.resolveOne(d))
	}
	return out
}

func (s *departmentService) resolveOne(d model.Department) DepartmentResponse {
	name, _, ok := s.users.GetByID(d.ManagerID)
	if !ok {
		name = "Unassigned"
	}
	return DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		ManagerID: d.ManagerID,
		Manager:   name,
		Employees: d.Employees,
	}
}
