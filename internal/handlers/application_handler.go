package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jobconnect-app/jobconnect/internal/auth"
	"github.com/jobconnect-app/jobconnect/internal/dtos"
	"github.com/jobconnect-app/jobconnect/internal/models"
)

type ApplicationHandler struct {
	DB *gorm.DB
}

func NewApplicationHandler(db *gorm.DB) *ApplicationHandler {
	return &ApplicationHandler{DB: db}
}

// ListForJob is GET /application/job/{job_id}. An empty array is a normal
// answer, not a 404.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, err := strconv.Atoi(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job id"})
		return
	}

	apps := []models.Application{}
	if err := h.DB.Where("job_id = ?", jobID).Order("application_id").Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load applications"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Submit is POST /application/job/{job_id}, applicant-only. The account id
// is taken from the session, never from the body, and new applications
// always start pending.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	jobID, err := strconv.Atoi(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job id"})
		return
	}

	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Content cannot be empty"})
		return
	}

	var job models.Job
	if err := h.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	app := models.Application{
		JobID:     jobID,
		AccountID: auth.CurrentAccount(c).ID,
		Content:   req.Content,
		Status:    models.StatusPending,
	}
	if err := h.DB.Create(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit application"})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// UpdateStatus is PUT /application/{application_id}, recruiter-only. The
// client sends the full record; only the status is honored, and any of the
// three values is reachable from any other.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	appID, err := strconv.Atoi(c.Param("application_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application id"})
		return
	}

	var req models.Application
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application data"})
		return
	}
	if !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status must be pending, accepted or rejected"})
		return
	}

	var app models.Application
	if err := h.DB.First(&app, "application_id = ?", appID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		return
	}

	app.Status = req.Status
	if err := h.DB.Save(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update application"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Withdraw is DELETE /application/{application_id}, applicant-only and
// restricted to the owning applicant. This is the authoritative ownership
// check; the client-side one is just a courtesy.
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	appID, err := strconv.Atoi(c.Param("application_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application id"})
		return
	}

	var app models.Application
	if err := h.DB.First(&app, "application_id = ?", appID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		return
	}
	if app.AccountID != auth.CurrentAccount(c).ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only withdraw your own applications"})
		return
	}

	if err := h.DB.Delete(&app).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to withdraw application"})
		return
	}
	c.Status(http.StatusNoContent)
}
