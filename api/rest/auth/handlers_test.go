package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/devhubhq/server/devhub/users"
	"github.com/devhubhq/server/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUserStore struct {
	rows   map[string]*users.User
	nextID int64
	calls  int
}

func (f *fakeUserStore) FindOrCreateByGitHubID(_ context.Context, githubID, name, email, avatarURL, accessToken string) (*users.User, error) {
	f.calls++

	if existing, ok := f.rows[githubID]; ok {
		existing.AccessToken = accessToken
		return existing, nil
	}

	f.nextID++
	user := &users.User{
		ID:          f.nextID,
		GitHubID:    githubID,
		Name:        name,
		Email:       email,
		AvatarURL:   avatarURL,
		AccessToken: accessToken,
	}
	f.rows[githubID] = user

	return user, nil
}

func loginAs(t *testing.T, store *fakeUserStore, cfg *config.Config, gothUser goth.User) (*users.User, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/callback", nil)

	completeLogin(c, store, cfg, gothUser)

	require.Equal(t, http.StatusFound, w.Code)

	return store.rows[gothUser.UserID], w
}

func TestCompleteLogin_SecondLoginReusesRow(t *testing.T) {
	os.Setenv( //nolint:errcheck // test fixture
	"JWT_SECRET", "test-secret-key-for-testing")
	defer os.Unsetenv( //nolint:errcheck // test cleanup
	"JWT_SECRET")

	cfg := &config.Config{BaseURL: "http://localhost:8080", FrontendURL: "http://localhost:5173"}
	store := &fakeUserStore{rows: map[string]*users.User{}}

	first, _ := loginAs(t, store, cfg, goth.User{
		UserID: "12345", NickName: "octocat", Email: "octo@example.com", AccessToken: "gho_first",
	})
	second, _ := loginAs(t, store, cfg, goth.User{
		UserID: "12345", NickName: "octocat", Email: "octo@example.com", AccessToken: "gho_second",
	})

	assert.Len(t, store.rows, 1, "second login with the same identity must not create a row")
	assert.Equal(t, first.ID, second.ID, "internal id must be stable across logins")
	assert.Equal(t, "gho_second", second.AccessToken, "access token is refreshed on every login")
}

func TestCompleteLogin_SetsCookieAndRedirects(t *testing.T) {
	os.Setenv( //nolint:errcheck // test fixture
	"JWT_SECRET", "test-secret-key-for-testing")
	defer os.Unsetenv( //nolint:errcheck // test cleanup
	"JWT_SECRET")

	cfg := &config.Config{BaseURL: "http://localhost:8080", FrontendURL: "http://localhost:5173"}
	store := &fakeUserStore{rows: map[string]*users.User{}}

	_, w := loginAs(t, store, cfg, goth.User{
		UserID: "12345", Name: "The Octocat", Email: "octo@example.com", AccessToken: "gho_token",
	})

	assert.Equal(t, "http://localhost:5173/profile", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "devhub_token=")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "HttpOnly")
}

func TestCompleteLogin_NameFallsBackToLogin(t *testing.T) {
	os.Setenv( //nolint:errcheck // test fixture
	"JWT_SECRET", "test-secret-key-for-testing")
	defer os.Unsetenv( //nolint:errcheck // test cleanup
	"JWT_SECRET")

	cfg := &config.Config{BaseURL: "http://localhost:8080", FrontendURL: "http://localhost:5173"}
	store := &fakeUserStore{rows: map[string]*users.User{}}

	user, _ := loginAs(t, store, cfg, goth.User{
		UserID: "12345", Name: "", NickName: "octocat", AccessToken: "gho_token",
	})

	assert.Equal(t, "octocat", user.Name)
}
