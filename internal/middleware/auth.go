package middleware

import (
	"net/http"

	"task-manager-api/internal/config"
	"task-manager-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ContextUsernameKey holds the authenticated username in the gin context
const ContextUsernameKey = "username"

const unauthorizedMessage = "Unauthorized access. Please provide valid credentials."

// BasicAuth validates HTTP Basic credentials against the configured user.
// Username and password are both always checked so timing does not reveal which one failed.
func BasicAuth(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			rejectUnauthorized(c)
			return
		}

		userOK := utils.SecureCompare(username, cfg.Username)
		var passOK bool
		if cfg.PasswordHash != "" {
			passOK = utils.ComparePassword(cfg.PasswordHash, password)
		} else {
			passOK = utils.SecureCompare(password, cfg.Password)
		}

		if !userOK || !passOK {
			rejectUnauthorized(c)
			return
		}

		c.Set(ContextUsernameKey, username)
		c.Next()
	}
}

func rejectUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Basic")
	utils.AbortWithError(c, http.StatusUnauthorized, unauthorizedMessage)
}
