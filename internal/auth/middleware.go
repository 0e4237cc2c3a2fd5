package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// name of the cookie carrying the session token. The OAuth callback is a
// browser redirect, so the token is delivered as an HttpOnly cookie; API
// clients may also send it as a Bearer header.
const SessionCookie = "devhub_token"

// validates the session token and adds user info to context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}

		claims, err := ValidateJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("github_id", claims.GitHubID)
		c.Set("user_name", claims.Name)

		c.Next()
	}
}

// validates the session token if present but doesn't require it
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)

		if token != "" {
			claims, err := ValidateJWT(token)

			if err == nil {
				c.Set("github_id", claims.GitHubID)
				c.Set("user_name", claims.Name)
			}
		}

		c.Next()
	}
}

// extracts github_id from context after AuthMiddleware
func GetGitHubID(c *gin.Context) (string, bool) {
	githubID, exists := c.Get("github_id")

	if !exists {
		return "", false
	}

	return githubID.(string), true
}

// sets the session cookie on the response
func SetSessionCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, 7*24*3600, "/", "", secure, true)
}

// removes the session cookie
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", secure, true)
}

// an Authorization header that isn't a Bearer token falls through to
// the cookie, so browser requests keep their session
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")

	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}

	return cookie
}
