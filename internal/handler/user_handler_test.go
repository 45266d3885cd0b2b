package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"solarhub-backend/internal/model"
	"solarhub-backend/internal/service"
)

func testUsers() []model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("solar123"), bcrypt.MinCost)
	return []model.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: model.RoleAdmin, Status: model.StatusActive, PasswordHash: string(hash)},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: model.RoleManager, Status: model.StatusActive, PasswordHash: string(hash)},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: model.RoleUser, Status: model.StatusInactive, PasswordHash: string(hash)},
	}
}

func setupUserRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewUserHandler(service.NewUserService(testUsers(), nil)).RegisterRoutes(router.Group(""))
	return router
}

func doJSON(router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

type viewEnvelope struct {
	Status string `json:"status"`
	Data   struct {
		Records    []model.User `json:"records"`
		Total      int          `json:"total"`
		SearchTerm string       `json:"search_term"`
		SortKey    string       `json:"sort_key"`
		Direction  string       `json:"direction"`
	} `json:"data"`
	Error string `json:"error"`
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) viewEnvelope {
	t.Helper()
	var env viewEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestListUsers(t *testing.T) {
	router := setupUserRouter()

	w := doJSON(router, "GET", "/admin/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeView(t, w)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, 3, env.Data.Total)
	assert.Empty(t, env.Data.SortKey)
}

func TestCreateUser(t *testing.T) {
	router := setupUserRouter()

	w := doJSON(router, "POST", "/admin/users", gin.H{"name": "New User", "email": "new@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "GET", "/admin/users", nil)
	assert.Equal(t, 4, decodeView(t, w).Data.Total)
}

func TestCreateUserMissingFields(t *testing.T) {
	router := setupUserRouter()

	w := doJSON(router, "POST", "/admin/users", gin.H{"name": "No Email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUser(t *testing.T) {
	router := setupUserRouter()

	w := doJSON(router, "DELETE", "/admin/users/2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "DELETE", "/admin/users/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, "DELETE", "/admin/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSortUsersTogglesDirection(t *testing.T) {
	router := setupUserRouter()

	w := doJSON(router, "POST", "/admin/users/sort", gin.H{"key": "name"})
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeView(t, w)
	assert.Equal(t, "ascending", env.Data.Direction)
	assert.Equal(t, "Bob Johnson", env.Data.Records[0].Name)

	w = doJSON(router, "POST", "/admin/users/sort", gin.H{"key": "name"})
	env = decodeView(t, w)
	assert.Equal(t, "descending", env.Data.Direction)
	assert.Equal(t, "John Doe", env.Data.Records[0].Name)
}

func TestSortUsersUnknownKey(t *testing.T) {
	router := setupUserRouter()

	w := doJSON(router, "POST", "/admin/users/sort", gin.H{"key": "salary"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchUsers(t *testing.T) {
	router := setupUserRouter()

	w := doJSON(router, "POST", "/admin/users/search", gin.H{"term": "jane"})
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeView(t, w)
	require.Equal(t, 1, env.Data.Total)
	assert.Equal(t, "Jane Smith", env.Data.Records[0].Name)
	assert.Equal(t, "jane", env.Data.SearchTerm)
}

func TestLoginAndRegister(t *testing.T) {
	router := setupUserRouter()

	w := doJSON(router, "POST", "/login", gin.H{"email": "john@example.com", "password": "solar123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")

	w = doJSON(router, "POST", "/login", gin.H{"email": "john@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, "POST", "/register", gin.H{"name": "Amy", "email": "amy@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "POST", "/register", gin.H{"name": "Amy", "email": "amy@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
