package users

import (
	stderrors "errors"
	"net/http"

	"github.com/devhubhq/server/devhub/users"
	"github.com/devhubhq/server/internal/auth"
	"github.com/devhubhq/server/internal/errors"
	"github.com/devhubhq/server/internal/githubapi"
	"github.com/gin-gonic/gin"
)

// MeHandler godoc
// @Summary Get current user
// @Description Returns the freshest row for the session's GitHub ID
// @Tags users
// @Produce json
// @Success 200 {object} users.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/users/me [get]
func MeHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		githubID, exists := auth.GetGitHubID(c)
		if !exists {
			errors.Unauthorized(c, "Not authenticated")
			return
		}

		// always re-read the row so profile edits are visible without re-login
		user, err := store.FindByGitHubID(c.Request.Context(), githubID)
		if err != nil {
			if stderrors.Is(err, users.ErrUserNotFound) {
				errors.Unauthorized(c, "Not authenticated")
				return
			}

			errors.InternalError(c, "failed to load user", err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfileHandler godoc
// @Summary Update profile
// @Description Overwrites all mutable profile fields of the session's user
// @Tags users
// @Accept json
// @Produce json
// @Param request body users.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} UpdateProfileResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/users/me/profile-update [post]
func UpdateProfileHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		githubID, exists := auth.GetGitHubID(c)
		if !exists {
			errors.Unauthorized(c, "Not authenticated")
			return
		}

		var req users.UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := store.UpdateProfile(c.Request.Context(), githubID, req)
		if err != nil {
			if stderrors.Is(err, users.ErrUserNotFound) {
				errors.Unauthorized(c, "Not authenticated")
				return
			}

			errors.InternalError(c, "failed to update profile", err)
			return
		}

		c.JSON(http.StatusOK, UpdateProfileResponse{Success: true, User: user})
	}
}

// MyReposHandler godoc
// @Summary List the user's GitHub repositories
// @Description Proxies GitHub's list-repositories API with the stored access token
// @Tags users
// @Produce json
// @Success 200 {array} githubapi.Repository
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/users/me/repos [get]
func MyReposHandler(store Store, lister RepoLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		githubID, exists := auth.GetGitHubID(c)
		if !exists {
			errors.Unauthorized(c, "Not authenticated")
			return
		}

		token, err := store.AccessTokenByGitHubID(c.Request.Context(), githubID)
		if err != nil {
			if stderrors.Is(err, users.ErrUserNotFound) {
				errors.Unauthorized(c, "User not authenticated or access token missing")
				return
			}

			errors.InternalError(c, "failed to load access token", err)
			return
		}

		if token == "" {
			errors.Unauthorized(c, "User not authenticated or access token missing")
			return
		}

		repos, err := lister.ListRepositories(c.Request.Context(), token)
		if err != nil {
			var upstream *githubapi.UpstreamError
			if stderrors.As(err, &upstream) {
				errors.UpstreamError(c, upstream.StatusCode, "Failed to fetch GitHub repos", upstream.Body)
				return
			}

			if stderrors.Is(err, githubapi.ErrMissingToken) {
				errors.Unauthorized(c, "User not authenticated or access token missing")
				return
			}

			errors.InternalError(c, "failed to fetch GitHub repos", err)
			return
		}

		c.JSON(http.StatusOK, repos)
	}
}

// ProfileByNameHandler godoc
// @Summary Get a public profile by display name
// @Tags users
// @Produce json
// @Param name path string true "Display name"
// @Success 200 {object} users.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/users/{name} [get]
func ProfileByNameHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		user, err := store.FindByName(c.Request.Context(), name)
		if err != nil {
			if stderrors.Is(err, users.ErrUserNotFound) {
				errors.NotFound(c, "user")
				return
			}

			errors.InternalError(c, "failed to load user", err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
