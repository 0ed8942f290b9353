package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"navyug/pkg/accounts"
	"navyug/pkg/records"
)

const ctxUsername = "username"

func (s *server) jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}
		username, err := accounts.ParseToken(s.jwtSecret, strings.TrimSpace(authHeader[7:]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ctxUsername, username)
		c.Next()
	}
}

// authorization turns the verified session into the capability the record
// store requires. Outside the admin group it is the zero value.
func authorization(c *gin.Context) records.Authorization {
	return records.Authorize(c.GetString(ctxUsername))
}

func (s *server) loginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" form:"username" binding:"required"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}
	user, err := accounts.Authenticate(c.Request.Context(), s.db, req.Username, req.Password)
	if errors.Is(err, accounts.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err != nil {
		s.internalError(c, "login failed", err)
		return
	}
	token, exp, err := accounts.IssueToken(s.jwtSecret, user.Username, s.now())
	if err != nil {
		s.internalError(c, "failed to generate token", err)
		return
	}
	s.log.Info("admin login", "user", user.Username)
	c.JSON(http.StatusOK, gin.H{"message": "Logged in as admin.", "token": token, "expires_at": exp.UTC()})
}
