package dtos

// JobRequest is the body for both POST /job and PUT /job/{id}.
// JobID is zero (and omitted) on create; the server assigns it.
type JobRequest struct {
	JobID       int     `json:"job_id,omitempty"`
	Title       string  `json:"title" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Salary      float64 `json:"salary" binding:"gte=0"`
	Description string  `json:"description" binding:"required"`
}

type ApplicationRequest struct {
	Content string `json:"content" binding:"required"`
}
