package githubapi

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

var ErrMissingToken = errors.New("access token missing")

type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Repository is the portion of the GitHub repository object the frontend
// consumes. GitHub returns a much larger object; the decoder drops the rest.
type Repository struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	HTMLURL     string `json:"html_url"`
	Language    string `json:"language"`
	Stargazers  int    `json:"stargazers_count"`
	UpdatedAt   string `json:"updated_at"`
}

// UpstreamError carries a provider failure status and body so callers can
// forward them unchanged.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("github API request failed with status %d: %s", e.StatusCode, e.Body)
}
