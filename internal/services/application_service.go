package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jobconnect-app/jobconnect/internal/api"
	"github.com/jobconnect-app/jobconnect/internal/dtos"
	"github.com/jobconnect-app/jobconnect/internal/models"
	"github.com/jobconnect-app/jobconnect/internal/ui"
)

// ApplicationService covers the application lifecycle: applicants submit
// and withdraw, recruiters move status between pending/accepted/rejected.
type ApplicationService struct {
	Client  *api.Client
	Confirm ui.Confirmer
}

func NewApplicationService(client *api.Client, confirm ui.Confirmer) *ApplicationService {
	return &ApplicationService{Client: client, Confirm: confirm}
}

// ListApplications fetches every application tied to one job. An empty
// slice is a valid result.
func (s *ApplicationService) ListApplications(ctx context.Context, jobID int) ([]models.Application, error) {
	var apps []models.Application
	if err := s.Client.Get(ctx, fmt.Sprintf("/application/job/%d", jobID), &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// SubmitApplication creates a new application against a job. Content must
// be non-empty after trimming; new applications always start pending.
func (s *ApplicationService) SubmitApplication(ctx context.Context, session *Session, jobID int, content string) (*models.Application, error) {
	if err := requireRole(session, models.RoleApplicant); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, api.NewValidationError("content cannot be empty")
	}

	var app models.Application
	body := dtos.ApplicationRequest{Content: content}
	if err := s.Client.Post(ctx, fmt.Sprintf("/application/job/%d", jobID), body, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateStatus sets an application's status to any of the three values.
// The full record is sent, with only the status mutated. There is no
// transition ordering: rejected can go straight back to accepted.
func (s *ApplicationService) UpdateStatus(ctx context.Context, session *Session, app models.Application, status models.ApplicationStatus) error {
	if err := requireRole(session, models.RoleRecruiter); err != nil {
		return err
	}
	if !status.IsValid() {
		return api.NewValidationError("status must be pending, accepted or rejected")
	}

	app.Status = status
	return s.Client.Put(ctx, fmt.Sprintf("/application/%d", app.ApplicationID), app)
}

// Withdraw deletes the applicant's own application after confirmation.
// The ownership check here is advisory; the server is the authority.
func (s *ApplicationService) Withdraw(ctx context.Context, session *Session, app models.Application) (bool, error) {
	if err := requireRole(session, models.RoleApplicant); err != nil {
		return false, err
	}
	if session.Account.ID != app.AccountID {
		return false, &api.AuthError{Message: "you can only withdraw your own applications"}
	}
	if !s.Confirm.Confirm("Are you sure you want to withdraw this application?") {
		return false, nil
	}
	if err := s.Client.Delete(ctx, fmt.Sprintf("/application/%d", app.ApplicationID)); err != nil {
		return false, err
	}
	return true, nil
}
