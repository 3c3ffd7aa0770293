package services_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jobconnect-app/jobconnect/internal/api"
	"github.com/jobconnect-app/jobconnect/internal/database"
	"github.com/jobconnect-app/jobconnect/internal/dtos"
	"github.com/jobconnect-app/jobconnect/internal/handlers"
	"github.com/jobconnect-app/jobconnect/internal/models"
	"github.com/jobconnect-app/jobconnect/internal/services"
)

// Canned confirmers so destructive operations can be driven from tests.
type yesConfirmer struct{}

func (yesConfirmer) Confirm(string) bool { return true }

type noConfirmer struct{}

func (noConfirmer) Confirm(string) bool { return false }

// testEnv is a full client-against-dev-server setup: seeded sqlite,
// real router on an httptest server, real API client with a cookie jar.
type testEnv struct {
	accounts     *services.AccountService
	jobs         *services.JobService
	applications *services.ApplicationService
	client       *api.Client
	serverURL    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Connect(dsn)
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("seed test db: %v", err)
	}

	server := httptest.NewServer(handlers.SetupRouter(db, "test-secret"))
	t.Cleanup(server.Close)

	return newSide(t, server.URL)
}

func newSide(t *testing.T, serverURL string) *testEnv {
	t.Helper()
	client, err := api.NewClient(serverURL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return &testEnv{
		accounts:     services.NewAccountService(client, yesConfirmer{}),
		jobs:         services.NewJobService(client, yesConfirmer{}),
		applications: services.NewApplicationService(client, yesConfirmer{}),
		client:       client,
		serverURL:    serverURL,
	}
}

// secondSide opens an independent client (own cookie jar) against the same
// server, so a recruiter and an applicant can be logged in at once.
func (env *testEnv) secondSide(t *testing.T) *testEnv {
	return newSide(t, env.serverURL)
}

func (env *testEnv) loginRecruiter(t *testing.T) *services.Session {
	t.Helper()
	session, err := env.accounts.Login(context.Background(), "recruiter@test.com", "Recruiter123!")
	if err != nil {
		t.Fatalf("recruiter login: %v", err)
	}
	return session
}

func (env *testEnv) loginApplicant(t *testing.T) *services.Session {
	t.Helper()
	session, err := env.accounts.Login(context.Background(), "applicant@test.com", "Applicant123!")
	if err != nil {
		t.Fatalf("applicant login: %v", err)
	}
	return session
}

func registerFixture(email, role string) dtos.RegisterRequest {
	return dtos.RegisterRequest{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "Password1!",
		Role:      role,
	}
}

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)

	session, err := env.accounts.Login(context.Background(), "recruiter@test.com", "Recruiter123!")

	assert.NoError(t, err)
	assert.Equal(t, models.RoleRecruiter, session.Account.Role)
	assert.Equal(t, "recruiter@test.com", session.Account.Email)
	assert.NotEmpty(t, session.Account.ID)
}

func TestLogin_BadPassword(t *testing.T) {
	env := newTestEnv(t)

	session, err := env.accounts.Login(context.Background(), "recruiter@test.com", "wrong")

	assert.Nil(t, session)
	var authErr *api.AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid credentials", authErr.Message)
}

func TestRegister_ThenLogin(t *testing.T) {
	env := newTestEnv(t)

	err := env.accounts.Register(context.Background(), dtos.RegisterRequest{
		FirstName: "New",
		LastName:  "User",
		Email:     "new@test.com",
		Password:  "Password1!",
		Role:      "applicant",
	})
	assert.NoError(t, err)

	session, err := env.accounts.Login(context.Background(), "new@test.com", "Password1!")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleApplicant, session.Account.Role)
}

func TestRegister_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	err := env.accounts.Register(context.Background(), dtos.RegisterRequest{
		FirstName: "Only",
	})

	var validation *api.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	err := env.accounts.Register(context.Background(), dtos.RegisterRequest{
		FirstName: "Copy",
		LastName:  "Cat",
		Email:     "recruiter@test.com",
		Password:  "Password1!",
		Role:      "recruiter",
	})

	var fetch *api.FetchError
	assert.ErrorAs(t, err, &fetch)
	assert.Equal(t, 409, fetch.StatusCode)
	assert.Equal(t, "Email already exists", fetch.Message)
}

func TestLogout_InvalidatesSession(t *testing.T) {
	env := newTestEnv(t)
	env.loginRecruiter(t)

	err := env.accounts.Logout(context.Background())
	assert.NoError(t, err)

	// The credential is gone; an authenticated call must now fail.
	_, err = env.jobs.ListJobs(context.Background(), services.JobFilter{})
	var fetch *api.FetchError
	assert.ErrorAs(t, err, &fetch)
	assert.Equal(t, 401, fetch.StatusCode)
}

func TestDeleteAccount_Declined(t *testing.T) {
	env := newTestEnv(t)
	env.loginApplicant(t)
	env.accounts.Confirm = noConfirmer{}

	deleted, err := env.accounts.DeleteAccount(context.Background())

	assert.NoError(t, err)
	assert.False(t, deleted)

	// Declining must not touch the session.
	_, err = env.jobs.ListJobs(context.Background(), services.JobFilter{})
	assert.NoError(t, err)
}

func TestDeleteAccount_Confirmed(t *testing.T) {
	env := newTestEnv(t)
	env.loginApplicant(t)

	deleted, err := env.accounts.DeleteAccount(context.Background())
	assert.NoError(t, err)
	assert.True(t, deleted)

	_, err = env.accounts.Login(context.Background(), "applicant@test.com", "Applicant123!")
	var authErr *api.AuthError
	assert.ErrorAs(t, err, &authErr)
}
