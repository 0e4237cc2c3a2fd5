package listings

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/devhubhq/server/devhub/listings"
	"github.com/devhubhq/server/devhub/users"
	"github.com/devhubhq/server/internal/errors"
	"github.com/devhubhq/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// PublicListingsHandler godoc
// @Summary List public listings
// @Description Returns all public listings, newest first, with owner name and avatar
// @Tags listings
// @Produce json
// @Success 200 {array} listings.Listing
// @Router /listings/public [get]
func PublicListingsHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := store.ListPublic(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to list public listings", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// RecentOwnersHandler godoc
// @Summary Recently active developers
// @Description Returns the distinct owner names behind the ten most recent listings
// @Tags listings
// @Produce json
// @Success 200 {array} listings.RecentOwner
// @Router /listings/recent [get]
func RecentOwnersHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		owners, err := store.ListRecentOwners(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to list recent owners", err)
			return
		}

		c.JSON(http.StatusOK, owners)
	}
}

// UserListingsHandler godoc
// @Summary List a user's listings
// @Description Private listings are included only when the viewer is the profile owner
// @Tags listings
// @Produce json
// @Param name path string true "Profile display name"
// @Param currentUser query string false "Viewer display name"
// @Success 200 {array} listings.Listing
// @Router /listings/user/{name} [get]
func UserListingsHandler(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileName := c.Param("name")
		viewerName := c.Query("currentUser")

		// a verified session overrides the caller-supplied viewer claim
		if sessionName := c.GetString("user_name"); sessionName != "" {
			viewerName = sessionName
		}

		includePrivate := viewerName != "" && viewerName == profileName

		result, err := store.ListByOwnerName(c.Request.Context(), profileName, includePrivate)
		if err != nil {
			errors.InternalError(c, "failed to list user listings", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// CreateListingHandler godoc
// @Summary Create a listing
// @Description Creates a listing owned by the user behind the supplied GitHub ID
// @Tags listings
// @Accept json
// @Produce json
// @Param request body listings.CreateListingRequest true "Listing data"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /listings/create [post]
func CreateListingHandler(store Store, resolver OwnerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req listings.CreateListingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		owner, err := resolver.FindByGitHubID(c.Request.Context(), req.GitHubID)
		if err != nil {
			if stderrors.Is(err, users.ErrUserNotFound) {
				logger.Warn("listing creation for unknown user", "github_id", req.GitHubID)
				errors.NotFound(c, "user")
				return
			}

			errors.InternalError(c, "failed to resolve listing owner", err)
			return
		}

		if _, err := store.Create(c.Request.Context(), owner.ID, req); err != nil {
			errors.InternalError(c, "failed to create listing", err)
			return
		}

		c.JSON(http.StatusCreated, MessageResponse{Message: "Listing created!"})
	}
}

// DeleteListingHandler godoc
// @Summary Delete a listing
// @Description Deletes a listing after verifying both the owner id and owner name
// @Tags listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body DeleteListingRequest true "Ownership claim"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /listings/{id} [delete]
func DeleteListingHandler(store Store, resolver OwnerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		listingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			errors.NotFound(c, "listing")
			return
		}

		var req DeleteListingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		claimedID := req.UserID
		claimedName := req.UserName

		// a verified session overrides the caller-supplied ownership claim
		if githubID := c.GetString("github_id"); githubID != "" {
			if sessionUser, err := resolver.FindByGitHubID(c.Request.Context(), githubID); err == nil {
				claimedID = sessionUser.ID
				claimedName = sessionUser.Name
			}
		}

		listing, err := store.GetWithOwner(c.Request.Context(), listingID)
		if err != nil {
			if stderrors.Is(err, listings.ErrListingNotFound) {
				errors.NotFound(c, "listing")
				return
			}

			errors.InternalError(c, "failed to load listing", err)
			return
		}

		// both the owner id and the owner name must match exactly
		if listing.UserID != claimedID || listing.OwnerName != claimedName {
			logger.Warn("unauthorized delete attempt",
				"listing_id", listingID,
				"claimed_user_id", claimedID,
				"claimed_user_name", claimedName,
			)
			errors.Forbidden(c, "Not authorized to delete this listing")
			return
		}

		if err := store.Delete(c.Request.Context(), listingID); err != nil {
			if stderrors.Is(err, listings.ErrListingNotFound) {
				errors.NotFound(c, "listing")
				return
			}

			errors.InternalError(c, "failed to delete listing", err)
			return
		}

		c.JSON(http.StatusOK, SuccessResponse{Success: true})
	}
}
