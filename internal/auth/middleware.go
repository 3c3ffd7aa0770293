package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jobconnect-app/jobconnect/internal/models"
)

const accountKey = "account"

// RequireSession authenticates the session cookie and loads the caller's
// account into the request context. Everything except login and register
// sits behind it.
func RequireSession(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		accountID, err := ParseSessionToken(secret, cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired session"})
			return
		}

		var account models.Account
		if err := db.First(&account, "id = ?", accountID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Account no longer exists"})
			return
		}

		c.Set(accountKey, account)
		c.Next()
	}
}

// CurrentAccount returns the account RequireSession stored on the context.
func CurrentAccount(c *gin.Context) models.Account {
	value, ok := c.Get(accountKey)
	if !ok {
		return models.Account{}
	}
	return value.(models.Account)
}

// RequireRole rejects callers whose role does not match. Runs after
// RequireSession.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentAccount(c).Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
