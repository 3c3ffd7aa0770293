package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jobconnect-app/jobconnect/internal/api"
	"github.com/jobconnect-app/jobconnect/internal/config"
	"github.com/jobconnect-app/jobconnect/internal/dtos"
	"github.com/jobconnect-app/jobconnect/internal/logger"
	"github.com/jobconnect-app/jobconnect/internal/models"
	"github.com/jobconnect-app/jobconnect/internal/services"
	"github.com/jobconnect-app/jobconnect/internal/ui"
)

// JobConnect desktop client, rendered as a terminal program. Every screen
// is the same loop: one workflow call, render the result, wait for the
// next action.
type app struct {
	prompter     *ui.Prompter
	accounts     *services.AccountService
	jobs         *services.JobService
	applications *services.ApplicationService
	session      *services.Session
}

func main() {
	// 1. Load Environment Variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config error: ", err)
	}
	logger.Init(cfg.Env)

	// 2. API Client (holds the session credential)
	client, err := api.NewClient(cfg.APIBaseURL)
	if err != nil {
		log.Fatal("Failed to create API client: ", err)
	}

	// 3. Services
	prompter := ui.NewPrompter(os.Stdin, os.Stdout)
	a := &app{
		prompter:     prompter,
		accounts:     services.NewAccountService(client, prompter),
		jobs:         services.NewJobService(client, prompter),
		applications: services.NewApplicationService(client, prompter),
	}

	fmt.Println("JobConnect — connected to", cfg.APIBaseURL)
	a.run()
}

func (a *app) run() {
	for {
		if a.session == nil {
			if done := a.loginScreen(); done {
				return
			}
			continue
		}
		a.dashboard()
	}
}

// loginScreen is the unauthenticated entry point. Returns true to quit.
func (a *app) loginScreen() bool {
	fmt.Println("\n[1] Login  [2] Register  [0] Quit")
	switch a.prompter.ReadLine("Choice") {
	case "1":
		email := a.prompter.ReadLine("Email")
		password := a.prompter.ReadLine("Password")
		session, err := a.accounts.Login(context.Background(), email, password)
		if err != nil {
			showError(err)
			return false
		}
		a.session = session
		fmt.Printf("Welcome, %s (%s)\n", session.Account.FullName(), session.Account.Role)
	case "2":
		a.registerScreen()
	case "0":
		return true
	}
	return false
}

func (a *app) registerScreen() {
	req := dtos.RegisterRequest{
		FirstName: a.prompter.ReadLine("First name"),
		LastName:  a.prompter.ReadLine("Last name"),
		Email:     a.prompter.ReadLine("Email"),
		Password:  a.prompter.ReadLine("Password"),
		Role:      a.prompter.ReadLine("Role (recruiter/applicant)"),
	}
	if err := a.accounts.Register(context.Background(), req); err != nil {
		showError(err)
		return
	}
	fmt.Println("Account registered successfully! You can now log in.")
}

func (a *app) dashboard() {
	fmt.Println("\n[1] Jobs  [2] Account  [0] Logout")
	switch a.prompter.ReadLine("Choice") {
	case "1":
		a.jobsScreen()
	case "2":
		a.accountScreen()
	case "0":
		if err := a.accounts.Logout(context.Background()); err != nil {
			showError(err)
		}
		// Local state goes away even when the server call failed.
		a.session = nil
	}
}

// jobsScreen lists jobs (with an optional salary filter) and loops over
// the role-gated actions until the user goes back.
func (a *app) jobsScreen() {
	filter := services.JobFilter{
		MinSalary: a.prompter.ReadLine("Min salary (blank for none)"),
		MaxSalary: a.prompter.ReadLine("Max salary (blank for none)"),
	}

	for {
		jobs, err := a.jobs.ListJobs(context.Background(), filter)
		if err != nil {
			showError(err)
			return
		}
		ui.RenderJobs(os.Stdout, jobs)

		recruiter := a.session.Account.Role == models.RoleRecruiter
		if recruiter {
			fmt.Println("[a] applications  [c] create  [e] edit  [d] delete  [r] refresh  [b] back")
		} else {
			fmt.Println("[a] applications  [r] refresh  [b] back")
		}

		switch a.prompter.ReadLine("Action") {
		case "a":
			if job, ok := a.pickJob(jobs); ok {
				a.applicationsScreen(job)
			}
		case "c":
			a.createJob()
		case "e":
			if job, ok := a.pickJob(jobs); ok {
				a.editJob(job)
			}
		case "d":
			if job, ok := a.pickJob(jobs); ok {
				if _, err := a.jobs.DeleteJob(context.Background(), a.session, job); err != nil {
					showError(err)
				}
			}
		case "r":
			// loop re-lists
		case "b":
			return
		}
	}
}

func (a *app) pickJob(jobs []models.Job) (models.Job, bool) {
	id, err := strconv.Atoi(a.prompter.ReadLine("Job ID"))
	if err != nil {
		fmt.Println("Invalid job id.")
		return models.Job{}, false
	}
	for _, job := range jobs {
		if job.JobID == id {
			return job, true
		}
	}
	fmt.Println("No such job in the list.")
	return models.Job{}, false
}

func (a *app) createJob() {
	fields := services.JobFields{
		Title:       a.prompter.ReadLine("Job title"),
		Location:    a.prompter.ReadLine("Location"),
		Salary:      a.prompter.ReadLine("Salary"),
		Description: a.prompter.ReadLine("Description"),
	}
	job, err := a.jobs.CreateJob(context.Background(), a.session, fields)
	if err != nil {
		showError(err)
		return
	}
	fmt.Printf("Job saved successfully (id %d).\n", job.JobID)
}

// editJob pre-fills every field from the job's current values.
func (a *app) editJob(job models.Job) {
	fields := services.JobFields{
		Title:       a.prompter.ReadLineDefault("Job title", job.Title),
		Location:    a.prompter.ReadLineDefault("Location", job.Location),
		Salary:      a.prompter.ReadLineDefault("Salary", strconv.FormatFloat(job.Salary, 'f', -1, 64)),
		Description: a.prompter.ReadLineDefault("Description", job.Description),
	}
	if err := a.jobs.EditJob(context.Background(), a.session, job.JobID, fields); err != nil {
		showError(err)
		return
	}
	fmt.Println("Job saved successfully.")
}

func (a *app) applicationsScreen(job models.Job) {
	for {
		apps, err := a.applications.ListApplications(context.Background(), job.JobID)
		if err != nil {
			showError(err)
			return
		}
		fmt.Printf("\nApplications for: %s\n", job.Title)
		ui.RenderApplications(os.Stdout, apps)

		if a.session.Account.Role == models.RoleRecruiter {
			fmt.Println("[m] mark status  [r] refresh  [b] back")
		} else {
			fmt.Println("[n] new application  [w] withdraw  [r] refresh  [b] back")
		}

		switch a.prompter.ReadLine("Action") {
		case "m":
			if app, ok := pickApplication(a.prompter, apps); ok {
				status := models.ApplicationStatus(a.prompter.ReadLine("New status (pending/accepted/rejected)"))
				if err := a.applications.UpdateStatus(context.Background(), a.session, app, status); err != nil {
					showError(err)
				}
			}
		case "n":
			content := a.prompter.ReadLine("Application content")
			if _, err := a.applications.SubmitApplication(context.Background(), a.session, job.JobID, content); err != nil {
				showError(err)
			} else {
				fmt.Println("Application submitted.")
			}
		case "w":
			if app, ok := pickApplication(a.prompter, apps); ok {
				if _, err := a.applications.Withdraw(context.Background(), a.session, app); err != nil {
					showError(err)
				}
			}
		case "r":
		case "b":
			return
		}
	}
}

func pickApplication(p *ui.Prompter, apps []models.Application) (models.Application, bool) {
	id, err := strconv.Atoi(p.ReadLine("Application ID"))
	if err != nil {
		fmt.Println("Invalid application id.")
		return models.Application{}, false
	}
	for _, app := range apps {
		if app.ApplicationID == id {
			return app, true
		}
	}
	fmt.Println("No such application in the list.")
	return models.Application{}, false
}

func (a *app) accountScreen() {
	ui.RenderAccount(os.Stdout, a.session.Account)
	fmt.Println("[d] delete account  [b] back")
	if a.prompter.ReadLine("Action") == "d" {
		deleted, err := a.accounts.DeleteAccount(context.Background())
		if err != nil {
			showError(err)
		}
		if deleted || err != nil {
			// Back to the login screen either way; the credential is gone.
			a.session = nil
		}
	}
}

// showError maps the error taxonomy onto the message styles the user sees.
func showError(err error) {
	var validation *api.ValidationError
	var authErr *api.AuthError
	var fetch *api.FetchError
	var conn *api.ConnectionError

	switch {
	case errors.As(err, &validation):
		fmt.Println("Validation Error:", validation.Message)
	case errors.As(err, &authErr):
		fmt.Println("Error:", authErr.Message)
	case errors.As(err, &conn):
		fmt.Println("Connection Error:", conn.Err)
	case errors.As(err, &fetch):
		fmt.Println("Error:", fetch.Message)
	default:
		fmt.Println("Error:", err)
	}
}
