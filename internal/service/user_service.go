package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"solarhub-backend/internal/middleware"
	"solarhub-backend/internal/model"
	"solarhub-backend/internal/store"
)

// DTOs for request validation
type CreateUserRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// UserService manages the admin users screen and the sign-in stub. There
// are no sessions and no refresh tokens; login just verifies the password
// and hands back a signed token.
type UserService interface {
	View() TableView[model.User]
	Search(term string)
	Sort(key string) (store.Direction, error)
	Create(req CreateUserRequest) (model.User, error)
	Delete(id int) error

	Register(req RegisterRequest) (model.User, error)
	Login(req LoginRequest) (TokenResponse, error)
	GetByID(id int) (name string, role string, ok bool)
}

type userService struct {
	users         *store.Table[model.User]
	notifications NotificationService
}

// NewUserService seeds the users table. The notification service may be
// nil; registrations are then not announced.
func NewUserService(seed []model.User, notifications NotificationService) UserService {
	cfg := store.Config[model.User]{
		ID:    func(u model.User) int { return u.ID },
		SetID: func(u model.User, id int) model.User { u.ID = id; return u },
		SearchText: func(u model.User) []string {
			return []string{u.Name, u.Email}
		},
		SortKeys: map[string]func(a, b model.User) int{
			"name":   func(a, b model.User) int { return store.CompareStrings(a.Name, b.Name) },
			"email":  func(a, b model.User) int { return store.CompareStrings(a.Email, b.Email) },
			"role":   func(a, b model.User) int { return store.CompareStrings(a.Role, b.Role) },
			"status": func(a, b model.User) int { return store.CompareStrings(a.Status, b.Status) },
		},
	}
	return &userService{
		users:         store.New(cfg, seed),
		notifications: notifications,
	}
}

func (s *userService) View() TableView[model.User] {
	key, dir := s.users.Sort()
	return tableView(s.users.View(), s.users.SearchTerm(), key, dir)
}

func (s *userService) Search(term string) {
	s.users.SetSearchTerm(term)
}

func (s *userService) Sort(key string) (store.Direction, error) {
	return s.users.SetSort(key)
}

func (s *userService) Create(req CreateUserRequest) (model.User, error) {
	if req.Role == "" {
		req.Role = model.RoleUser
	}
	if req.Status == "" {
		req.Status = model.StatusActive
	}
	if !model.ValidRole(req.Role) {
		return model.User{}, errors.New("invalid role: must be User, Manager, or Admin")
	}
	if !model.ValidStatus(req.Status) {
		return model.User{}, errors.New("invalid status: must be Active or Inactive")
	}
	if s.emailTaken(req.Email) {
		return model.User{}, errors.New("email already exists")
	}

	user := s.users.Add(model.User{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: req.Status,
	})
	return user, nil
}

func (s *userService) Delete(id int) error {
	if !s.users.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// Register appends a self-service account to the same users collection the
// admin screen manages, with the defaults a fresh sign-up gets.
func (s *userService) Register(req RegisterRequest) (model.User, error) {
	if s.emailTaken(req.Email) {
		return model.User{}, errors.New("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.New("failed to hash password")
	}

	user := s.users.Add(model.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         model.RoleUser,
		Status:       model.StatusActive,
		PasswordHash: string(hash),
	})

	if s.notifications != nil {
		s.notifications.Push(model.NotificationUser, "New user registered: "+user.Name)
	}
	return user, nil
}

func (s *userService) Login(req LoginRequest) (TokenResponse, error) {
	user, ok := s.findByEmail(req.Email)
	if !ok || user.PasswordHash == "" {
		return TokenResponse{}, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return TokenResponse{}, errors.New("invalid email or password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"role": user.Role,
	})

	signed, err := token.SignedString(middleware.GetJWTSecret())
	if err != nil {
		return TokenResponse{}, errors.New("failed to generate token")
	}
	return TokenResponse{Token: signed, User: user}, nil
}

func (s *userService) GetByID(id int) (string, string, bool) {
	user, ok := s.users.Get(id)
	if !ok {
		return "", "", false
	}
	return user.Name, user.Role, true
}

func (s *userService) findByEmail(email string) (model.User, bool) {
	for _, u := range s.users.All() {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}

func (s *userService) emailTaken(email string) bool {
	_, taken := s.findByEmail(email)
	return taken
}
