package models

// Role is what the server assigns to an account at registration.
// Recruiters manage jobs and review applications, applicants submit them.
type Role string

const (
	RoleRecruiter Role = "recruiter"
	RoleApplicant Role = "applicant"
)

func (r Role) IsValid() bool {
	return r == RoleRecruiter || r == RoleApplicant
}

// ApplicationStatus is set to pending on creation and only ever changed
// by a recruiter. Any status can move to any other, there is no ordering.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) IsValid() bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

// Account is the logged-in identity. The ID is an opaque string minted by
// the server; the client never interprets it.
type Account struct {
	ID        string `gorm:"primaryKey" json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Role      Role   `gorm:"not null" json:"role"`

	// Only the dev server ever sets this; it must never reach the wire.
	PasswordHash string `gorm:"not null" json:"-"`
}

func (a Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

type Job struct {
	JobID       int     `gorm:"primaryKey;autoIncrement;column:job_id" json:"job_id"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Salary      float64 `gorm:"not null" json:"salary"`
	Location    string  `json:"location"`
}

type Application struct {
	ApplicationID int               `gorm:"primaryKey;autoIncrement;column:application_id" json:"application_id"`
	JobID         int               `gorm:"column:job_id;not null;index" json:"job_id"`
	AccountID     string            `gorm:"column:account_id;not null;index" json:"account_id"`
	Content       string            `gorm:"type:text" json:"content"`
	Status        ApplicationStatus `gorm:"default:'pending'" json:"status"`
}
