package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jobconnect-app/jobconnect/internal/models"
)

// Confirmer is the yes/no prompt the workflows require before anything
// irreversible (delete job, withdraw application, delete account). The
// terminal front end supplies one; tests supply a canned answer.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Prompter reads user input for forms and menus.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks a yes/no question, defaulting to no.
func (p *Prompter) Confirm(prompt string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// ReadLine shows a label and returns the trimmed input line.
func (p *Prompter) ReadLine(label string) string {
	fmt.Fprintf(p.out, "%s: ", label)
	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// ReadLineDefault is ReadLine with a pre-filled value kept on empty input.
// Edit forms use it so every field starts from the job's current value.
func (p *Prompter) ReadLineDefault(label, current string) string {
	fmt.Fprintf(p.out, "%s [%s]: ", label, current)
	line, _ := p.in.ReadString('\n')
	value := strings.TrimSpace(line)
	if value == "" {
		return current
	}
	return value
}

// RenderJobs prints the job list as a table.
func RenderJobs(w io.Writer, jobs []models.Job) {
	if len(jobs) == 0 {
		fmt.Fprintln(w, "No jobs found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tSALARY\tDESCRIPTION")
	for _, job := range jobs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t$%.2f\t%s\n",
			job.JobID, job.Title, job.Location, job.Salary, truncate(job.Description, 60))
	}
	tw.Flush()
}

// RenderApplications prints applications for one job. An empty list is a
// normal state, not an error.
func RenderApplications(w io.Writer, apps []models.Application) {
	if len(apps) == 0 {
		fmt.Fprintln(w, "No applications found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tCONTENT")
	for _, app := range apps {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", app.ApplicationID, app.Status, truncate(app.Content, 70))
	}
	tw.Flush()
}

// RenderAccount prints the logged-in account details.
func RenderAccount(w io.Writer, account models.Account) {
	fmt.Fprintf(w, "Name:  %s\n", account.FullName())
	fmt.Fprintf(w, "Email: %s\n", account.Email)
	fmt.Fprintf(w, "Role:  %s\n", account.Role)
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
