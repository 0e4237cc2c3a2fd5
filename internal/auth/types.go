package auth

import "github.com/golang-jwt/jwt/v5"

// Claims carried in the session token. GitHubID is the stable external
// identity; handlers re-read the user row by it instead of trusting the
// name/email copies here.
type Claims struct {
	GitHubID string `json:"github_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}
