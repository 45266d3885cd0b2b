package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"solarhub-backend/internal/middleware"
	"solarhub-backend/internal/model"
	"solarhub-backend/internal/store"
)

func fixtureUsers() []model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("solar123"), bcrypt.MinCost)
	return []model.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: model.RoleAdmin, Status: model.StatusActive, PasswordHash: string(hash)},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: model.RoleManager, Status: model.StatusActive, PasswordHash: string(hash)},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: model.RoleUser, Status: model.StatusInactive, PasswordHash: string(hash)},
		{ID: 4, Name: "Alice Brown", Email: "alice@example.com", Role: model.RoleUser, Status: model.StatusActive, PasswordHash: string(hash)},
	}
}

func TestUserViewDefaultsToInsertionOrder(t *testing.T) {
	svc := NewUserService(fixtureUsers(), nil)

	view := svc.View()
	assert.Empty(t, view.SortKey)
	require.Len(t, view.Records, 4)
	assert.Equal(t, "John Doe", view.Records[0].Name)
}

func TestUserFirstSortByNameIsAscending(t *testing.T) {
	svc := NewUserService(fixtureUsers(), nil)

	dir, err := svc.Sort("name")
	require.NoError(t, err)
	assert.Equal(t, store.Ascending, dir)

	view := svc.View()
	assert.Equal(t, "Alice Brown", view.Records[0].Name)
	assert.Equal(t, "John Doe", view.Records[len(view.Records)-1].Name)
}

func TestUserSortToggleThenFilter(t *testing.T) {
	svc := NewUserService(fixtureUsers(), nil)

	_, err := svc.Sort("name")
	require.NoError(t, err)
	dir, err := svc.Sort("name")
	require.NoError(t, err)
	assert.Equal(t, store.Descending, dir)

	svc.Search("jo")
	view := svc.View()

	// Bob Johnson and John Doe both match; descending by name
	require.Len(t, view.Records, 2)
	assert.Equal(t, "John Doe", view.Records[0].Name)
	assert.Equal(t, "Bob Johnson", view.Records[1].Name)
	assert.Equal(t, "jo", view.SearchTerm)
}

func TestUserCreateDefaultsRoleAndStatus(t *testing.T) {
	svc := NewUserService(fixtureUsers(), nil)

	user, err := svc.Create(CreateUserRequest{Name: "New User", Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 5, user.ID)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Equal(t, model.StatusActive, user.Status)
}

func TestUserCreateRejectsBadRole(t *testing.T) {
	svc := NewUserService(fixtureUsers(), nil)

	_, err := svc.Create(CreateUserRequest{Name: "X", Email: "x@example.com", Role: "Superuser"})
	assert.Error(t, err)
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	svc := NewUserService(fixtureUsers(), nil)

	_, err := svc.Create(CreateUserRequest{Name: "Dup", Email: "john@example.com"})
	assert.Error(t, err)
}

func TestUserDeleteAbsentIDReturnsNotFound(t *testing.T) {
	svc := NewUserService(fixtureUsers(), nil)

	err := svc.Delete(99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 4, svc.View().Total)
}

func TestRegisterThenLogin(t *testing.T) {
	svc := NewUserService(nil, nil)

	user, err := svc.Register(RegisterRequest{Name: "Amy", Email: "amy@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, model.RoleUser, user.Role)

	res, err := svc.Login(LoginRequest{Email: "amy@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "Amy", res.User.Name)
}

func TestLoginTokenVerifiesWithSharedSecret(t *testing.T) {
	svc := NewUserService(fixtureUsers(), nil)

	res, err := svc.Login(LoginRequest{Email: "john@example.com", Password: "solar123"})
	require.NoError(t, err)

	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return middleware.GetJWTSecret(), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(1), claims["sub"])
	assert.Equal(t, model.RoleAdmin, claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewUserService(fixtureUsers(), nil)

	_, err := svc.Login(LoginRequest{Email: "john@example.com", Password: "wrong"})
	assert.Error(t, err)
}

func TestRegisterAnnouncesNewUser(t *testing.T) {
	notifications := NewNotificationService(nil, nil)
	svc := NewUserService(fixtureUsers(), notifications)

	_, err := svc.Register(RegisterRequest{Name: "Amy", Email: "amy@example.com", Password: "secret1"})
	require.NoError(t, err)

	feed := notifications.List(model.NotificationUser)
	require.Len(t, feed, 1)
	assert.Contains(t, feed[0].Message, "Amy")
}
