package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware gates the back-office routes. HarvestShare has no admin
// user type; operators are named by username in the ADMIN_USERS allowlist.
type AdminMiddleware struct {
	allowlist map[string]struct{}
}

func NewAdminMiddleware(adminUsers []string) *AdminMiddleware {
	allowlist := make(map[string]struct{}, len(adminUsers))
	for _, username := range adminUsers {
		if username != "" {
			allowlist[username] = struct{}{}
		}
	}
	return &AdminMiddleware{allowlist: allowlist}
}

func (m *AdminMiddleware) IsAdmin(username string) bool {
	_, ok := m.allowlist[username]
	return ok
}

func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := GetUsername(c)
		if username == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		if !m.IsAdmin(username) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
