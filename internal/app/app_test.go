package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"chatvault/backend/internal/config"
	"chatvault/backend/internal/model"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		AppPort:        0,
		DatabasePath:   filepath.Join(t.TempDir(), "data", "chat.db"),
		DBMaxOpenConns: 4,
		JWTSecret:      "test-jwt-secret-key",
		TokenTTL:       time.Hour,
		BcryptCost:     bcrypt.MinCost,
		RequestTimeout: 5 * time.Second,
		AuthRateLimit:  100,
		LogLevel:       "DEBUG",
	}
}

type client struct {
	t      *testing.T
	server *httptest.Server
}

func newTestServer(t *testing.T, cfg *config.Config) (*client, *App) {
	app, err := NewApp(cfg)
	require.NoError(t, err)
	server := httptest.NewServer(app.Server.Handler)
	t.Cleanup(func() {
		server.Close()
		require.NoError(t, app.DB.Close())
	})
	return &client{t: t, server: server}, app
}

// do sends body as JSON and decodes the response into out when out is non-nil.
func (c *client) do(method, path, token string, body, out any) int {
	c.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, c.server.URL+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.server.Client().Do(req)
	require.NoError(c.t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	if out != nil {
		require.NoError(c.t, json.Unmarshal(raw, out), string(raw))
	}
	return resp.StatusCode
}

type authResponse struct {
	Token string            `json:"token"`
	User  model.UserProfile `json:"user"`
}

func (c *client) register(username string) authResponse {
	c.t.Helper()
	var resp authResponse
	status := c.do(http.MethodPost, "/api/register", "", map[string]string{
		"username": username, "email": username + "@example.com", "password": username + "123",
	}, &resp)
	require.Equal(c.t, http.StatusCreated, status)
	return resp
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(testConfig(t))
	require.NoError(t, err)
	require.NotNil(t, app)
	defer func() { require.NoError(t, app.DB.Close()) }()

	assert.NotNil(t, app.DB)
	assert.NotNil(t, app.Server)
	assert.Equal(t, ":0", app.Server.Addr)
}

func TestApp_Serve_StopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	app, err := NewApp(cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, app.DB.Close()) }()
	app.Server.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestHealthz(t *testing.T) {
	c, _ := newTestServer(t, testConfig(t))

	var resp map[string]string
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/healthz", "", nil, &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestDemoConversation(t *testing.T) {
	c, _ := newTestServer(t, testConfig(t))

	registered := c.register("demo")
	assert.Equal(t, model.ThemeLight, registered.User.Theme)

	var login authResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/login", "", map[string]string{"username": "demo", "password": "demo123"}, &login))
	require.NotEmpty(t, login.Token)
	token := login.Token

	var chat model.Chat
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/chats", token, map[string]string{"id": "c1", "name": "Test", "model": "llama2"}, &chat))
	assert.Equal(t, registered.User.ID, chat.UserID)

	before := chat.UpdatedAt
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/chats/c1/messages", token, map[string]string{"sender": "user", "content": "Hello"}, nil))
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/chats/c1/messages", token, map[string]string{"sender": "ai", "content": "Hi!", "model": "llama2"}, nil))

	var full model.FullChat
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/chats/c1", token, nil, &full))
	require.Len(t, full.Messages, 2)
	assert.Equal(t, "user", full.Messages[0].Sender)
	assert.Equal(t, "Hello", full.Messages[0].Content)
	assert.Equal(t, "ai", full.Messages[1].Sender)
	assert.Equal(t, "Hi!", full.Messages[1].Content)
	assert.Equal(t, "llama2", *full.Messages[1].Model)
	assert.False(t, full.UpdatedAt.Before(before))
	assert.True(t, full.UpdatedAt.Equal(full.Messages[1].Timestamp))

	var chats []model.ChatSummary
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/chats", token, nil, &chats))
	require.Len(t, chats, 1)
	assert.Equal(t, "c1", chats[0].ID)
	require.NotNil(t, chats[0].LastMessage)
	assert.Equal(t, "Hi!", *chats[0].LastMessage)
}

func TestLoginByEmailAndUniformFailure(t *testing.T) {
	c, _ := newTestServer(t, testConfig(t))
	c.register("demo")

	assert.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/login", "", map[string]string{"username": "demo@example.com", "password": "demo123"}, nil))

	var wrongPassword, unknownUser map[string]string
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/login", "", map[string]string{"username": "demo", "password": "nope123"}, &wrongPassword))
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/login", "", map[string]string{"username": "ghost", "password": "nope123"}, &unknownUser))
	assert.Equal(t, wrongPassword, unknownUser)
}

func TestRegistrationConflicts(t *testing.T) {
	c, _ := newTestServer(t, testConfig(t))
	c.register("demo")

	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/api/register", "", map[string]string{
		"username": "demo", "email": "other@example.com", "password": "demo123",
	}, nil))
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/api/register", "", map[string]string{
		"username": "other", "email": "demo@example.com", "password": "demo123",
	}, nil))

	var resp map[string]string
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/register", "", map[string]string{
		"username": "ab", "email": "not-an-email", "password": "123",
	}, &resp))
	assert.Contains(t, resp["error"], "username")
}

func TestThemeUpdate(t *testing.T) {
	c, _ := newTestServer(t, testConfig(t))
	token := c.register("demo").Token

	var resp map[string]string
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPatch, "/api/profile/theme", token, map[string]string{"theme": "purple"}, &resp))
	assert.Contains(t, resp["error"], "theme")

	var profile model.UserProfile
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/profile", token, nil, &profile))
	assert.Equal(t, model.ThemeLight, profile.Theme)

	assert.Equal(t, http.StatusOK, c.do(http.MethodPatch, "/api/profile/theme", token, map[string]string{"theme": "dark"}, nil))
	assert.Equal(t, http.StatusOK, c.do(http.MethodPatch, "/api/profile/theme", token, map[string]string{"theme": "dark"}, nil))
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/profile", token, nil, &profile))
	assert.Equal(t, model.ThemeDark, profile.Theme)
}

func TestBearerToken(t *testing.T) {
	c, _ := newTestServer(t, testConfig(t))

	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/profile", "", nil, nil))
	assert.Equal(t, http.StatusForbidden, c.do(http.MethodGet, "/api/profile", "not-a-token", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/chats", "", nil, nil))
}

func TestOwnershipIsolation(t *testing.T) {
	c, _ := newTestServer(t, testConfig(t))
	alice := c.register("alice").Token
	bob := c.register("bob").Token

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/chats", alice, map[string]string{"id": "c1", "name": "Secret", "model": "llama2"}, nil))
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/chats/c1/messages", alice, map[string]string{"sender": "user", "content": "private"}, nil))

	var bobChats []model.ChatSummary
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/chats", bob, nil, &bobChats))
	assert.Empty(t, bobChats)

	// A foreign chat and a missing chat must look the same.
	var foreign, missing map[string]string
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/chats/c1", bob, nil, &foreign))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/chats/nope", bob, nil, &missing))
	assert.Equal(t, foreign, missing)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPatch, "/api/chats/c1", bob, map[string]string{"name": "Stolen"}, nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/api/chats/c1/messages", bob, map[string]string{"sender": "user", "content": "hi"}, nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPut, "/api/chats/c1/messages", bob, map[string]any{"messages": []any{}}, nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodDelete, "/api/chats/c1", bob, nil, nil))

	// Reusing another user's chat id does not take it over.
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/api/chats", bob, map[string]string{"id": "c1", "name": "Mine", "model": "llama2"}, nil))

	var full model.FullChat
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/chats/c1", alice, nil, &full))
	assert.Equal(t, "Secret", full.Name)
	require.Len(t, full.Messages, 1)
	assert.Equal(t, "private", full.Messages[0].Content)
}

func TestListOrderingAndRename(t *testing.T) {
	c, _ := newTestServer(t, testConfig(t))
	token := c.register("demo").Token

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/chats", token, map[string]string{"id": "c1", "name": "First", "model": "llama2"}, nil))
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/chats", token, map[string]string{"id": "c2", "name": "Second", "model": "llama2"}, nil))

	var chats []model.ChatSummary
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/chats", token, nil, &chats))
	require.Len(t, chats, 2)
	assert.Equal(t, "c2", chats[0].ID)
	assert.Nil(t, chats[0].LastMessage)

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/chats/c1/messages", token, map[string]string{"sender": "user", "content": "bump"}, nil))
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/chats", token, nil, &chats))
	assert.Equal(t, "c1", chats[0].ID)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPatch, "/api/chats/c2", token, map[string]string{"name": ""}, nil))
	require.Equal(t, http.StatusOK, c.do(http.MethodPatch, "/api/chats/c2", token, map[string]string{"name": "Renamed"}, nil))
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/chats", token, nil, &chats))
	assert.Equal(t, "c2", chats[0].ID)
	assert.Equal(t, "Renamed", chats[0].Name)
}

func TestReplaceTranscript(t *testing.T) {
	c, _ := newTestServer(t, testConfig(t))
	token := c.register("demo").Token

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/chats", token, map[string]string{"id": "c1", "name": "Test", "model": "llama2"}, nil))
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/chats/c1/messages", token, map[string]string{"sender": "user", "content": "old"}, nil))

	sent := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	transcript := map[string]any{"messages": []map[string]any{
		{"sender": "user", "content": "Hello", "timestamp": sent},
		{"sender": "ai", "content": "Hi!", "response_info": "1.2s", "timestamp": sent.Add(time.Second)},
	}}
	require.Equal(t, http.StatusOK, c.do(http.MethodPut, "/api/chats/c1/messages", token, transcript, nil))

	var full model.FullChat
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/chats/c1", token, nil, &full))
	require.Len(t, full.Messages, 2)
	assert.Equal(t, "Hello", full.Messages[0].Content)
	assert.True(t, sent.Equal(full.Messages[0].Timestamp))
	assert.Equal(t, "1.2s", *full.Messages[1].ResponseInfo)

	bad := map[string]any{"messages": []map[string]any{{"sender": "robot", "content": "beep"}}}
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPut, "/api/chats/c1/messages", token, bad, nil))
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/chats/c1", token, nil, &full))
	assert.Len(t, full.Messages, 2)
}

func TestDeleteCascades(t *testing.T) {
	c, app := newTestServer(t, testConfig(t))
	token := c.register("demo").Token

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/chats", token, map[string]string{"id": "c1", "name": "Test", "model": "llama2"}, nil))
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/chats/c1/messages", token, map[string]string{"sender": "user", "content": "Hello"}, nil))

	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, "/api/chats/c1", token, nil, nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/chats/c1", token, nil, nil))
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodDelete, "/api/chats/c1", token, nil, nil))

	var count int
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM messages WHERE chat_id = ?", "c1").Scan(&count))
	assert.Zero(t, count)

	var chats []model.ChatSummary
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/chats", token, nil, &chats))
	assert.Empty(t, chats)
}

func TestAuthRateLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.AuthRateLimit = 2
	c, _ := newTestServer(t, cfg)

	creds := map[string]string{"username": "ghost", "password": "nope123"}
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/login", "", creds, nil))
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/login", "", creds, nil))
	assert.Equal(t, http.StatusTooManyRequests, c.do(http.MethodPost, "/api/login", "", creds, nil))

	// Authenticated routes are not throttled.
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/chats", "", nil, nil))
}

func TestLoginValueIdentifiesOneAccount(t *testing.T) {
	c, _ := newTestServer(t, testConfig(t))

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/register", "", map[string]string{
		"username": "x@y.com", "email": "a@a.com", "password": "first123",
	}, nil))

	// Another account may not claim an existing username as its email, or the
	// other way round.
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/api/register", "", map[string]string{
		"username": "bob", "email": "x@y.com", "password": "bob12345",
	}, nil))
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/api/register", "", map[string]string{
		"username": "a@a.com", "email": "bob@example.com", "password": "bob12345",
	}, nil))

	var login authResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/login", "", map[string]string{"username": "x@y.com", "password": "first123"}, &login))
	assert.Equal(t, "a@a.com", login.User.Email)
}

func TestMalformedBodyIsRejectedBeforeOwnership(t *testing.T) {
	c, _ := newTestServer(t, testConfig(t))
	alice := c.register("alice").Token
	bob := c.register("bob").Token
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/chats", alice, map[string]string{"id": "c1", "name": "Secret", "model": "llama2"}, nil))

	// A body that does not decode into the request is a 400 for everyone,
	// whether the chat exists or not, so it says nothing about the chat.
	for _, path := range []string{"/api/chats/c1", "/api/chats/nope"} {
		var resp map[string]string
		assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPatch, path, bob, []string{"not", "an", "object"}, &resp), path)
		assert.Contains(t, resp["error"], "invalid request payload")
	}

	// A well-formed but invalid body from a stranger is still a 404.
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPatch, "/api/chats/c1", bob, map[string]string{"name": ""}, nil))
}
