package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jobconnect-app/jobconnect/internal/api"
	"github.com/jobconnect-app/jobconnect/internal/dtos"
	"github.com/jobconnect-app/jobconnect/internal/models"
	"github.com/jobconnect-app/jobconnect/internal/ui"
)

// JobFields is the raw form input for creating or editing a job. Salary
// arrives as text and is parsed here, so a bad value fails before any
// request goes out.
type JobFields struct {
	Title       string
	Location    string
	Salary      string
	Description string
}

// JobFilter is an optional client-side salary range, inclusive on both
// ends. A bound that does not parse as a number is treated as absent
// rather than rejected; that matches the behavior users already rely on.
type JobFilter struct {
	MinSalary string
	MaxSalary string
}

func (f JobFilter) bounds() (min float64, hasMin bool, max float64, hasMax bool) {
	if v, err := strconv.ParseFloat(strings.TrimSpace(f.MinSalary), 64); err == nil {
		min, hasMin = v, true
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(f.MaxSalary), 64); err == nil {
		max, hasMax = v, true
	}
	return
}

// JobService lists and mutates job postings. Listing is open to everyone;
// create/edit/delete are recruiter-only.
type JobService struct {
	Client  *api.Client
	Confirm ui.Confirmer
}

func NewJobService(client *api.Client, confirm ui.Confirmer) *JobService {
	return &JobService{Client: client, Confirm: confirm}
}

// ListJobs fetches every job and applies the optional salary filter
// locally. The endpoint has no pagination.
func (s *JobService) ListJobs(ctx context.Context, filter JobFilter) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.Client.Get(ctx, "/job", &jobs); err != nil {
		return nil, err
	}

	min, hasMin, max, hasMax := filter.bounds()
	if !hasMin && !hasMax {
		return jobs, nil
	}

	filtered := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if hasMin && job.Salary < min {
			continue
		}
		if hasMax && job.Salary > max {
			continue
		}
		filtered = append(filtered, job)
	}
	return filtered, nil
}

// CreateJob validates the fields and posts a new job. The server assigns
// the identifier and returns the created record.
func (s *JobService) CreateJob(ctx context.Context, session *Session, fields JobFields) (*models.Job, error) {
	if err := requireRole(session, models.RoleRecruiter); err != nil {
		return nil, err
	}
	req, err := buildJobRequest(fields)
	if err != nil {
		return nil, err
	}

	var job models.Job
	if err := s.Client.Post(ctx, "/job", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// EditJob sends a full replace of all four fields for an existing job.
func (s *JobService) EditJob(ctx context.Context, session *Session, jobID int, fields JobFields) error {
	if err := requireRole(session, models.RoleRecruiter); err != nil {
		return err
	}
	req, err := buildJobRequest(fields)
	if err != nil {
		return err
	}
	req.JobID = jobID
	return s.Client.Put(ctx, fmt.Sprintf("/job/%d", jobID), req)
}

// DeleteJob removes a job after confirmation. Returns false with no error
// when the user declines; deletion is irreversible once confirmed.
func (s *JobService) DeleteJob(ctx context.Context, session *Session, job models.Job) (bool, error) {
	if err := requireRole(session, models.RoleRecruiter); err != nil {
		return false, err
	}
	if !s.Confirm.Confirm(fmt.Sprintf("Delete job %q?", job.Title)) {
		return false, nil
	}
	if err := s.Client.Delete(ctx, fmt.Sprintf("/job/%d", job.JobID)); err != nil {
		return false, err
	}
	return true, nil
}

// buildJobRequest trims and validates form input into a wire payload.
func buildJobRequest(fields JobFields) (*dtos.JobRequest, error) {
	salary, err := strconv.ParseFloat(strings.TrimSpace(fields.Salary), 64)
	if err != nil {
		return nil, api.NewValidationError("salary must be a valid number")
	}

	req := &dtos.JobRequest{
		Title:       strings.TrimSpace(fields.Title),
		Location:    strings.TrimSpace(fields.Location),
		Salary:      salary,
		Description: strings.TrimSpace(fields.Description),
	}
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Field() == "Salary" {
			return nil, api.NewValidationError("salary must not be negative")
		}
		return nil, api.NewValidationError("all fields are required")
	}
	return req, nil
}
