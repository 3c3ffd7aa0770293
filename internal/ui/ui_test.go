package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jobconnect-app/jobconnect/internal/models"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false}, // default is no
		{"whatever\n", false},
	}
	for _, tt := range tests {
		p := NewPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
		if got := p.Confirm("Delete?"); got != tt.want {
			t.Errorf("Confirm with input %q = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestReadLineDefault(t *testing.T) {
	// Empty input keeps the pre-filled value, as edit forms require.
	p := NewPrompter(strings.NewReader("\n"), &bytes.Buffer{})
	if got := p.ReadLineDefault("Title", "Engineer"); got != "Engineer" {
		t.Errorf("empty input: got %q, want current value", got)
	}

	p = NewPrompter(strings.NewReader("Senior Engineer\n"), &bytes.Buffer{})
	if got := p.ReadLineDefault("Title", "Engineer"); got != "Senior Engineer" {
		t.Errorf("typed input: got %q", got)
	}
}

func TestRenderJobs_Empty(t *testing.T) {
	var out bytes.Buffer
	RenderJobs(&out, nil)
	if !strings.Contains(out.String(), "No jobs found.") {
		t.Errorf("empty list render = %q", out.String())
	}
}

func TestRenderApplications(t *testing.T) {
	var out bytes.Buffer
	RenderApplications(&out, []models.Application{
		{ApplicationID: 7, Status: models.StatusPending, Content: "hire me"},
	})
	for _, want := range []string{"7", "pending", "hire me"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("render missing %q in %q", want, out.String())
		}
	}
}
