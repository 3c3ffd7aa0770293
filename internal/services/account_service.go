package services

import (
	"context"
	"errors"

	"github.com/jobconnect-app/jobconnect/internal/api"
	"github.com/jobconnect-app/jobconnect/internal/dtos"
	"github.com/jobconnect-app/jobconnect/internal/models"
	"github.com/jobconnect-app/jobconnect/internal/ui"
)

// AccountService owns the session lifecycle: register, login, logout and
// account deletion.
type AccountService struct {
	Client  *api.Client
	Confirm ui.Confirmer
}

func NewAccountService(client *api.Client, confirm ui.Confirmer) *AccountService {
	return &AccountService{Client: client, Confirm: confirm}
}

// Login submits credentials, then fetches the caller's own profile. The
// server answers the login with a session cookie only, so the profile
// fetch is what actually populates the Session.
func (s *AccountService) Login(ctx context.Context, email, password string) (*Session, error) {
	body := dtos.LoginRequest{Email: email, Password: password}
	if err := s.Client.PostRead(ctx, "/account/login", body); err != nil {
		return nil, asAuthError(err, "Invalid credentials")
	}

	var account models.Account
	if err := s.Client.Get(ctx, "/account/me", &account); err != nil {
		return nil, asAuthError(err, "Failed to fetch user data")
	}
	return &Session{Account: account}, nil
}

// Register creates a new account. All fields are checked locally first;
// nothing is sent when validation fails.
func (s *AccountService) Register(ctx context.Context, req dtos.RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return api.NewValidationError("please fill in all fields (role must be recruiter or applicant)")
	}
	return s.Client.PostRead(ctx, "/account/register", req)
}

// Logout invalidates the credential server-side. Local session state is
// discarded no matter what the server said; a failure is still reported
// so the user knows the server-side session may linger.
func (s *AccountService) Logout(ctx context.Context) error {
	err := s.Client.PostRead(ctx, "/account/logout", nil)
	s.Client.ResetCredential()
	if err != nil {
		return asAuthError(err, "Logout failed")
	}
	return nil
}

// DeleteAccount permanently removes the logged-in account after an
// explicit confirmation. Returns false with no error when the user
// declines. Like Logout, local state is dropped regardless of outcome.
func (s *AccountService) DeleteAccount(ctx context.Context) (bool, error) {
	if !s.Confirm.Confirm("Are you sure you want to delete your account? This cannot be undone.") {
		return false, nil
	}

	err := s.Client.DeleteRead(ctx, "/account/delete")
	s.Client.ResetCredential()
	if err != nil {
		return false, asAuthError(err, "Account deletion failed")
	}
	return true, nil
}

// asAuthError converts a non-2xx response on an authentication operation
// into an AuthError carrying the server's message, with a fixed fallback
// when the server sent nothing usable. Connection errors pass through.
func asAuthError(err error, fallback string) error {
	var fetch *api.FetchError
	if errors.As(err, &fetch) {
		message := fetch.Message
		if message == "" || message == "request failed" {
			message = fallback
		}
		return &api.AuthError{Message: message}
	}
	return err
}
