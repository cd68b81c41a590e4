package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timewise-hr/attendance-backend-go/internal/fixtures"
	"github.com/timewise-hr/attendance-backend-go/internal/pkg/database"
	"github.com/timewise-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/timewise-hr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/timewise-hr/attendance-backend-go/internal/service/attendance"
	authService "github.com/timewise-hr/attendance-backend-go/internal/service/auth"
	managerService "github.com/timewise-hr/attendance-backend-go/internal/service/manager"
	"golang.org/x/crypto/bcrypt"
)

var testHandlerDB *database.DB

const (
	handlerTestSecret    = "test-secret-key-for-jwt"
	handlerTestAccessExp = "1h"
)

func handlerTestInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testHandlerDB != nil {
		return
	}

	var err error
	testHandlerDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, fixtures.EnsureSchema(context.Background(), testHandlerDB))
}

func truncateHandlerTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"submissions", "employees"} {
		_, err := testHandlerDB.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createHandlerTestEmployee(t *testing.T, ctx context.Context, name, role string, manager *string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(name), bcrypt.DefaultCost)
	require.NoError(t, err)

	_, err = testHandlerDB.Exec(ctx, `
		INSERT INTO employees (id, name, role, manager, password_hash)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), name, role, manager, string(hash))
	require.NoError(t, err)
}

func handlerStrPtr(s string) *string { return &s }

func newTestRouter() http.Handler {
	employeeRepo := postgresql.NewEmployeeRepository(testHandlerDB)
	submissionRepo := postgresql.NewSubmissionRepository(testHandlerDB)
	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp)

	authSvc := authService.NewAuthService(testHandlerDB, employeeRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(testHandlerDB, submissionRepo, employeeRepo)
	managerSvc := managerService.NewManagerService(testHandlerDB, employeeRepo, submissionRepo)

	return NewRouter(
		NewAuthHandler(authSvc),
		NewAttendanceHandler(attendanceSvc),
		NewManagerHandler(managerSvc),
	)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginEndpoint(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)
	createHandlerTestEmployee(t, ctx, "John Lennon", "Manager", nil)

	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"name": "John Lennon", "password": "John Lennon",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Name  string `json:"name"`
			Role  string `json:"role"`
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "John Lennon", body.Data.Name)
	assert.NotEmpty(t, body.Data.Token)

	rec = doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"name": "John Lennon", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"name": "Nobody", "password": "Nobody",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSignInOutEndpoint(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)
	createHandlerTestEmployee(t, ctx, "Paul Mccartney", "Full Stack Developer", handlerStrPtr("John Lennon"))

	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/sign-in-out", map[string]string{
		"name": "Paul Mccartney", "action": "Clock In",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Duplicate open session for the same day
	rec = doJSON(t, router, http.MethodPost, "/sign-in-out", map[string]string{
		"name": "Paul Mccartney", "action": "Clock In",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/sign-in-out", map[string]string{
		"name": "Paul Mccartney", "action": "Clock Out",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Nothing left to close
	rec = doJSON(t, router, http.MethodPost, "/sign-in-out", map[string]string{
		"name": "Paul Mccartney", "action": "Clock Out",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/sign-in-out", map[string]string{
		"name": "Paul Mccartney", "action": "Dance",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/sign-in-out", map[string]string{
		"name": "Nobody", "action": "Clock In",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestManagerSubmissionsEndpoint(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)
	createHandlerTestEmployee(t, ctx, "John Lennon", "Manager", nil)
	createHandlerTestEmployee(t, ctx, "Paul Mccartney", "Full Stack Developer", handlerStrPtr("John Lennon"))

	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/sign-in-out", map[string]string{
		"name": "Paul Mccartney", "action": "Clock In",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/manager-submissions/John%20Lennon", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Manager     string `json:"manager"`
			Submissions []struct {
				ID     int64  `json:"id"`
				Name   string `json:"name"`
				Status string `json:"status"`
			} `json:"submissions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "John Lennon", body.Data.Manager)
	require.Len(t, body.Data.Submissions, 1)
	assert.Equal(t, "Paul Mccartney", body.Data.Submissions[0].Name)
	assert.Equal(t, "Pending", body.Data.Submissions[0].Status)

	// Non-manager and unknown callers are both forbidden
	rec = doJSON(t, router, http.MethodGet, "/manager-submissions/Paul%20Mccartney", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = doJSON(t, router, http.MethodGet, "/manager-submissions/Nobody", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestManagerResetEndpoint(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)
	createHandlerTestEmployee(t, ctx, "John Lennon", "Manager", nil)
	createHandlerTestEmployee(t, ctx, "Paul Mccartney", "Full Stack Developer", handlerStrPtr("John Lennon"))

	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/sign-in-out", map[string]string{
		"name": "Paul Mccartney", "action": "Clock In",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/manager-submissions/John%20Lennon", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			DeletedCount int64 `json:"deleted_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.Data.DeletedCount)

	rec = doJSON(t, router, http.MethodDelete, "/manager-submissions/Paul%20Mccartney", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateSubmissionEndpoint(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)
	createHandlerTestEmployee(t, ctx, "Paul Mccartney", "Full Stack Developer", handlerStrPtr("John Lennon"))

	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/sign-in-out", map[string]string{
		"name": "Paul Mccartney", "action": "Clock In",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/sign-in-out", map[string]string{
		"name": "Paul Mccartney", "action": "Clock Out",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var clockOut struct {
		Data struct {
			Submission struct {
				ID int64 `json:"id"`
			} `json:"submission"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &clockOut))
	submissionID := clockOut.Data.Submission.ID

	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/update-submission/%d", submissionID), map[string]string{
		"action": "Approve",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Strict single-transition policy: second decision is a conflict
	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/update-submission/%d", submissionID), map[string]string{
		"action": "Reject",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/update-submission/424242", map[string]string{
		"action": "Approve",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/update-submission/%d", submissionID), map[string]string{
		"action": "Escalate",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/update-submission/not-a-number", map[string]string{
		"action": "Approve",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
