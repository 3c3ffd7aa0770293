package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jobconnect-app/jobconnect/internal/api"
	"github.com/jobconnect-app/jobconnect/internal/models"
)

// Session is the authenticated context for one logged-in user: the account
// identity plus the transport credential, which lives in the API client's
// cookie jar. It is created by Login, passed explicitly to every workflow
// call, and discarded on logout. Never a global.
type Session struct {
	Account models.Account
}

// validate runs the same tags gin binding enforces server-side, so the
// client rejects a bad payload before any request goes out.
var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// requireRole is the single capability check every mutating operation runs
// first. The server enforces the same rule authoritatively; this one just
// fails fast with a typed error instead of a round-trip.
func requireRole(session *Session, role models.Role) error {
	if session == nil || session.Account.Role != role {
		return &api.AuthError{Message: fmt.Sprintf("this action requires the %s role", role)}
	}
	return nil
}
