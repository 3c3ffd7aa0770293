package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobconnect-app/jobconnect/internal/auth"
	"github.com/jobconnect-app/jobconnect/internal/dtos"
	"github.com/jobconnect-app/jobconnect/internal/models"
)

type AccountHandler struct {
	DB     *gorm.DB
	Secret string
}

func NewAccountHandler(db *gorm.DB, secret string) *AccountHandler {
	return &AccountHandler{DB: db, Secret: secret}
}

// Register is POST /account/register.
func (h *AccountHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid registration data: " + err.Error()})
		return
	}

	var existing models.Account
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Email already exists"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create account"})
		return
	}

	account := models.Account{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Role:         models.Role(req.Role),
		PasswordHash: hash,
	}
	if err := h.DB.Create(&account).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create account"})
		return
	}
	c.Status(http.StatusOK)
}

// Login is POST /account/login. Success sets the session cookie; the body
// carries nothing the client relies on.
func (h *AccountHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	var account models.Account
	if err := h.DB.Where("email = ?", req.Email).First(&account).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := auth.MintSessionToken(h.Secret, account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create session"})
		return
	}

	c.SetCookie(auth.SessionCookie, token, 24*60*60, "/", "", false, true)
	c.Status(http.StatusOK)
}

// Me is GET /account/me.
func (h *AccountHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, auth.CurrentAccount(c))
}

// Logout is POST /account/logout. Sessions are stateless tokens, so the
// server just expires the cookie.
func (h *AccountHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusOK)
}

// Delete is DELETE /account/delete. Removes the caller's account and all
// of their applications.
func (h *AccountHandler) Delete(c *gin.Context) {
	account := auth.CurrentAccount(c)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", account.ID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Account{}, "id = ?", account.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete account"})
		return
	}

	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusOK)
}
