package auth

import (
	"net/http"
	"strings"

	"github.com/devhubhq/server/internal/auth"
	"github.com/devhubhq/server/internal/config"
	"github.com/devhubhq/server/internal/errors"
	"github.com/devhubhq/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
)

// StartHandler godoc
// @Summary Start GitHub authentication
// @Description Redirects to GitHub with the identity and email scopes
// @Tags auth
// @Success 302 {string} string "Redirect to GitHub"
// @Router /auth/start [get]
func StartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// CallbackHandler godoc
// @Summary GitHub OAuth callback
// @Description Completes the OAuth flow, provisions the user on first login and establishes the session
// @Tags auth
// @Success 302 {string} string "Redirect to the profile view"
// @Router /auth/callback [get]
func CallbackHandler(store UserStore, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			logger.ErrorErr(err, "github authentication failed")
			c.Redirect(http.StatusFound, "/auth/failure")
			return
		}

		completeLogin(c, store, cfg, gothUser)
	}
}

// provisions the user on first login, refreshes the stored access token
// on every later one, and establishes the session cookie
func completeLogin(c *gin.Context, store UserStore, cfg *config.Config, gothUser goth.User) {
	// GitHub may hide the full name; fall back to the login
	name := gothUser.Name
	if name == "" {
		name = gothUser.NickName
	}

	user, err := store.FindOrCreateByGitHubID(
		c.Request.Context(),
		gothUser.UserID,
		name,
		gothUser.Email,
		gothUser.AvatarURL,
		gothUser.AccessToken,
	)

	if err != nil {
		errors.InternalError(c, "failed to create user", err)
		return
	}

	token, err := auth.GenerateJWT(user.GitHubID, user.Name, user.Email)
	if err != nil {
		errors.InternalError(c, "failed to generate token", err)
		return
	}

	auth.SetSessionCookie(c, token, isHTTPS(cfg.BaseURL))
	c.Redirect(http.StatusFound, cfg.FrontendURL+"/profile")
}

// FailureHandler godoc
// @Summary Authentication failure target
// @Tags auth
// @Success 401 {string} string "GitHub authentication failed."
// @Router /auth/failure [get]
func FailureHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusUnauthorized, "GitHub authentication failed.")
	}
}

// LogoutHandler godoc
// @Summary Logout
// @Description Tears down the session and redirects home
// @Tags auth
// @Success 302 {string} string "Redirect home"
// @Router /auth/logout [get]
func LogoutHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to clear gothic session")
		}

		auth.ClearSessionCookie(c, isHTTPS(cfg.BaseURL))
		c.Redirect(http.StatusFound, cfg.FrontendURL)
	}
}

func isHTTPS(baseURL string) bool {
	return strings.HasPrefix(baseURL, "https://")
}
