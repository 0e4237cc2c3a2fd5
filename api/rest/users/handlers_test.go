package users

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devhubhq/server/devhub/users"
	"github.com/devhubhq/server/internal/githubapi"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStore struct {
	byGitHubID map[string]*users.User
	byName     map[string]*users.User
	tokens     map[string]string
	tokenErr   error

	lastUpdateID  string
	lastUpdateReq users.UpdateProfileRequest
	updateCalls   int
}

func (f *fakeStore) FindByGitHubID(_ context.Context, githubID string) (*users.User, error) {
	u, ok := f.byGitHubID[githubID]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeStore) FindByName(_ context.Context, name string) (*users.User, error) {
	u, ok := f.byName[name]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeStore) UpdateProfile(_ context.Context, githubID string, req users.UpdateProfileRequest) (*users.User, error) {
	u, ok := f.byGitHubID[githubID]
	if !ok {
		return nil, users.ErrUserNotFound
	}

	f.lastUpdateID = githubID
	f.lastUpdateReq = req
	f.updateCalls++

	updated := *u
	updated.Bio = req.Bio
	updated.Location = req.Location
	updated.PortfolioURL = req.PortfolioURL
	updated.Roles = req.Roles
	updated.Experience = req.Experience
	updated.Availability = req.Availability
	updated.Languages = users.LanguageList(req.Languages)
	f.byGitHubID[githubID] = &updated

	return &updated, nil
}

func (f *fakeStore) AccessTokenByGitHubID(_ context.Context, githubID string) (string, error) {
	if f.tokenErr != nil {
		return "", f.tokenErr
	}

	token, ok := f.tokens[githubID]
	if !ok {
		return "", users.ErrUserNotFound
	}
	return token, nil
}

type fakeLister struct {
	repos []githubapi.Repository
	err   error
}

func (f *fakeLister) ListRepositories(context.Context, string) ([]githubapi.Repository, error) {
	return f.repos, f.err
}

func newContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}

	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")

	return c, w
}

func TestMe_Unauthenticated(t *testing.T) {
	store := &fakeStore{}

	c, w := newContext(http.MethodGet, "/api/users/me", nil)

	MeHandler(store)(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_ReturnsFreshRow(t *testing.T) {
	store := &fakeStore{byGitHubID: map[string]*users.User{
		"12345": {ID: 7, GitHubID: "12345", Name: "alice", Bio: "edited just now"},
	}}

	c, w := newContext(http.MethodGet, "/api/users/me", nil)
	c.Set("github_id", "12345")

	MeHandler(store)(c)

	require.Equal(t, http.StatusOK, w.Code)

	var user users.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "edited just now", user.Bio)
}

func TestUpdateProfile_OverwritesAllFields(t *testing.T) {
	store := &fakeStore{byGitHubID: map[string]*users.User{
		"12345": {ID: 7, GitHubID: "12345", Name: "alice", Bio: "old bio", Location: "somewhere"},
	}}

	// location omitted on purpose: omitted fields are written as empty
	body := []byte(`{"bio":"new bio","portfolioUrl":"https://alice.dev","roles":"backend","experience":"senior","availability":"weekends","languages":["Go","Rust"]}`)

	c, w := newContext(http.MethodPost, "/api/users/me/profile-update", body)
	c.Set("github_id", "12345")

	UpdateProfileHandler(store)(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12345", store.lastUpdateID)
	assert.Equal(t, "new bio", store.lastUpdateReq.Bio)
	assert.Equal(t, "", store.lastUpdateReq.Location, "omitted fields overwrite with empty")
	assert.Equal(t, []string{"Go", "Rust"}, store.lastUpdateReq.Languages)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestUpdateProfile_Idempotent(t *testing.T) {
	store := &fakeStore{byGitHubID: map[string]*users.User{
		"12345": {ID: 7, GitHubID: "12345", Name: "alice"},
	}}

	body := []byte(`{"bio":"same","location":"here","languages":["Go"]}`)

	for i := 0; i < 2; i++ {
		c, w := newContext(http.MethodPost, "/api/users/me/profile-update", body)
		c.Set("github_id", "12345")

		UpdateProfileHandler(store)(c)
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 2, store.updateCalls)
	assert.Equal(t, "same", store.byGitHubID["12345"].Bio)
	assert.Equal(t, users.LanguageList{"Go"}, store.byGitHubID["12345"].Languages)
}

func TestUpdateProfile_Unauthenticated(t *testing.T) {
	store := &fakeStore{}

	c, w := newContext(http.MethodPost, "/api/users/me/profile-update", []byte(`{"bio":"x"}`))

	UpdateProfileHandler(store)(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, store.updateCalls)
}

func TestProfileByName_NotFound(t *testing.T) {
	store := &fakeStore{byName: map[string]*users.User{}}

	c, w := newContext(http.MethodGet, "/api/users/ghost", nil)
	c.Params = gin.Params{{Key: "name", Value: "ghost"}}

	ProfileByNameHandler(store)(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileByName_LanguagesRoundTrip(t *testing.T) {
	store := &fakeStore{
		byGitHubID: map[string]*users.User{
			"12345": {ID: 7, GitHubID: "12345", Name: "alice"},
		},
	}
	store.byName = map[string]*users.User{}

	// submit via profile-update
	body := []byte(`{"languages":["Go","Rust"]}`)
	c, w := newContext(http.MethodPost, "/api/users/me/profile-update", body)
	c.Set("github_id", "12345")
	UpdateProfileHandler(store)(c)
	require.Equal(t, http.StatusOK, w.Code)

	store.byName["alice"] = store.byGitHubID["12345"]

	// read back by display name
	c, w = newContext(http.MethodGet, "/api/users/alice", nil)
	c.Params = gin.Params{{Key: "name", Value: "alice"}}
	ProfileByNameHandler(store)(c)
	require.Equal(t, http.StatusOK, w.Code)

	var user users.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, users.LanguageList{"Go", "Rust"}, user.Languages, "order must be preserved")
}

func TestMyRepos_MissingToken(t *testing.T) {
	store := &fakeStore{tokens: map[string]string{}}

	c, w := newContext(http.MethodGet, "/api/users/me/repos", nil)
	c.Set("github_id", "12345")

	MyReposHandler(store, &fakeLister{})(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMyRepos_EmptyStoredToken(t *testing.T) {
	store := &fakeStore{tokens: map[string]string{"12345": ""}}

	c, w := newContext(http.MethodGet, "/api/users/me/repos", nil)
	c.Set("github_id", "12345")

	MyReposHandler(store, &fakeLister{})(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMyRepos_StoreFaultIsServerError(t *testing.T) {
	store := &fakeStore{tokenErr: stderrors.New("connection refused")}

	c, w := newContext(http.MethodGet, "/api/users/me/repos", nil)
	c.Set("github_id", "12345")

	MyReposHandler(store, &fakeLister{})(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code, "a database fault is not an authentication failure")
}

func TestMyRepos_UpstreamStatusForwarded(t *testing.T) {
	store := &fakeStore{tokens: map[string]string{"12345": "gho_token"}}
	lister := &fakeLister{err: &githubapi.UpstreamError{
		StatusCode: http.StatusForbidden,
		Body:       `{"message":"API rate limit exceeded"}`,
	}}

	c, w := newContext(http.MethodGet, "/api/users/me/repos", nil)
	c.Set("github_id", "12345")

	MyReposHandler(store, lister)(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit")
}

func TestMyRepos_Success(t *testing.T) {
	store := &fakeStore{tokens: map[string]string{"12345": "gho_token"}}
	lister := &fakeLister{repos: []githubapi.Repository{
		{ID: 1, Name: "devhub", Language: "Go"},
	}}

	c, w := newContext(http.MethodGet, "/api/users/me/repos", nil)
	c.Set("github_id", "12345")

	MyReposHandler(store, lister)(c)

	require.Equal(t, http.StatusOK, w.Code)

	var repos []githubapi.Repository
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &repos))
	require.Len(t, repos, 1)
	assert.Equal(t, "devhub", repos[0].Name)
}
