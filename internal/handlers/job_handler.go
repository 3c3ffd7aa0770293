package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jobconnect-app/jobconnect/internal/dtos"
	"github.com/jobconnect-app/jobconnect/internal/models"
)

type JobHandler struct {
	DB *gorm.DB
}

func NewJobHandler(db *gorm.DB) *JobHandler {
	return &JobHandler{DB: db}
}

// List is GET /job. No pagination; the client filters locally.
func (h *JobHandler) List(c *gin.Context) {
	jobs := []models.Job{}
	if err := h.DB.Order("job_id").Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Create is POST /job, recruiter-only (enforced in the route group).
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job data: " + err.Error()})
		return
	}

	job := models.Job{
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		Location:    req.Location,
	}
	if err := h.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create job"})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Update is PUT /job/{job_id}: a full replace of all four fields.
func (h *JobHandler) Update(c *gin.Context) {
	jobID, err := strconv.Atoi(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job id"})
		return
	}

	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job data: " + err.Error()})
		return
	}

	var job models.Job
	if err := h.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Salary = req.Salary
	job.Location = req.Location
	if err := h.DB.Save(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update job"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete is DELETE /job/{job_id}. Applications tied to the job go with it.
func (h *JobHandler) Delete(c *gin.Context) {
	jobID, err := strconv.Atoi(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job id"})
		return
	}

	var job models.Job
	if err := h.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&job).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete job"})
		return
	}
	c.Status(http.StatusNoContent)
}
