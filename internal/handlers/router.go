package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jobconnect-app/jobconnect/internal/auth"
	"github.com/jobconnect-app/jobconnect/internal/models"
)

// SetupRouter builds the full dev-server router. Kept separate from main
// so integration tests can mount it on an httptest server.
func SetupRouter(db *gorm.DB, secret string) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // local development server only
	config.AllowCredentials = false
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	r.Use(cors.New(config))

	accountHandler := NewAccountHandler(db, secret)
	jobHandler := NewJobHandler(db)
	applicationHandler := NewApplicationHandler(db)

	r.GET("/health", HealthCheck)

	account := r.Group("/account")
	{
		account.POST("/register", accountHandler.Register)
		account.POST("/login", accountHandler.Login)

		authed := account.Group("", auth.RequireSession(db, secret))
		authed.GET("/me", accountHandler.Me)
		authed.POST("/logout", accountHandler.Logout)
		authed.DELETE("/delete", accountHandler.Delete)
	}

	job := r.Group("/job", auth.RequireSession(db, secret))
	{
		job.GET("", jobHandler.List)

		recruiter := job.Group("", auth.RequireRole(models.RoleRecruiter))
		recruiter.POST("", jobHandler.Create)
		recruiter.PUT("/:job_id", jobHandler.Update)
		recruiter.DELETE("/:job_id", jobHandler.Delete)
	}

	application := r.Group("/application", auth.RequireSession(db, secret))
	{
		application.GET("/job/:job_id", applicationHandler.ListForJob)
		application.POST("/job/:job_id", auth.RequireRole(models.RoleApplicant), applicationHandler.Submit)
		application.PUT("/:application_id", auth.RequireRole(models.RoleRecruiter), applicationHandler.UpdateStatus)
		application.DELETE("/:application_id", auth.RequireRole(models.RoleApplicant), applicationHandler.Withdraw)
	}

	return r
}

// HealthCheck lets the client (and humans) verify the server is up.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
