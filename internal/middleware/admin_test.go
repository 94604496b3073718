package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAdminMiddleware_IsAdmin(t *testing.T) {
	m := NewAdminMiddleware([]string{"root", "ops", ""})

	assert.True(t, m.IsAdmin("root"))
	assert.True(t, m.IsAdmin("ops"))
	assert.False(t, m.IsAdmin("alice"))
	assert.False(t, m.IsAdmin(""))
}

func TestAdminMiddleware_RequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewAdminMiddleware([]string{"root"})

	newRouter := func(username string) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if username != "" {
				c.Set("username", username)
			}
		})
		router.Use(m.RequireAdmin())
		router.GET("/admin", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("allowlisted user passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		newRouter("root").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		newRouter("alice").ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing identity is unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		newRouter("").ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
