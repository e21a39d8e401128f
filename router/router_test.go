package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"energy-tracker/app/controllers"
	"energy-tracker/app/middleware"
	"energy-tracker/app/models"
	"energy-tracker/app/repo"
	"energy-tracker/app/services"
	"energy-tracker/app/session"
	"energy-tracker/global"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	global.Logger = zerolog.Nop()
	m.Run()
}

func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.HistoryRecord{}))

	userSvc := services.NewUserService(repo.NewUserRepository(gdb))
	histSvc := services.NewHistoryService(repo.NewHistoryRepository(gdb))
	_, err = userSvc.EnsureAdmin("Admin", "admin@energy.com", "Admin@123", "Head Office")
	require.NoError(t, err)

	sessions := session.NewMemoryStore()
	mw := &middleware.Auth{Sessions: sessions}

	staticDir := t.TempDir()
	for _, page := range []string{"login.html", "index.html"} {
		require.NoError(t, os.WriteFile(filepath.Join(staticDir, page), []byte("<html>"+page+"</html>"), 0o644))
	}

	h := NewRouter(
		controllers.NewAuthController(userSvc, sessions),
		controllers.NewHistoryController(histSvc),
		mw,
		staticDir,
	)
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts, gdb
}

// client wraps an http.Client with a cookie jar, acting as one browser.
type client struct {
	t    *testing.T
	http *http.Client
	base string
}

func newClient(t *testing.T, ts *httptest.Server) *client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &client{
		t: t,
		http: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		base: ts.URL,
	}
}

func (c *client) do(method, path string, body any) (int, map[string]any) {
	c.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, c.base+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	res, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer res.Body.Close()
	var parsed map[string]any
	require.NoError(c.t, json.NewDecoder(res.Body).Decode(&parsed))
	return res.StatusCode, parsed
}

func (c *client) register(username, email, password, location string) map[string]any {
	_, body := c.do(http.MethodPost, "/register", map[string]string{
		"username": username, "email": email, "password": password, "location": location,
	})
	return body
}

func (c *client) login(email, password string) map[string]any {
	_, body := c.do(http.MethodPost, "/login", map[string]string{"email": email, "password": password})
	return body
}

func TestEndToEndScenario(t *testing.T) {
	ts, _ := newTestServer(t)
	alice := newClient(t, ts)

	res := alice.register("alice", "a@x.com", "secret1", "Home")
	assert.Equal(t, "ok", res["status"])

	res = alice.login("a@x.com", "secret1")
	require.Equal(t, "ok", res["status"])
	assert.Equal(t, "user", res["role"])

	_, res = alice.do(http.MethodPost, "/api/save_history", map[string]any{
		"appliances_json": `[{"name":"heater","watts":2000}]`,
		"total_kwh":       14.5,
		"total_cost":      4.35,
		"model_used":      "linear-v1",
	})
	assert.Equal(t, "ok", res["status"])

	_, res = alice.do(http.MethodGet, "/user/history", nil)
	require.Equal(t, "ok", res["status"])
	data := res["data"].([]any)
	require.Len(t, data, 1)
	record := data[0].(map[string]any)
	assert.Equal(t, 14.5, record["total_kwh"])
	assert.Equal(t, "linear-v1", record["model_used"])

	admin := newClient(t, ts)
	res = admin.login("admin@energy.com", "Admin@123")
	require.Equal(t, "ok", res["status"])
	assert.Equal(t, "admin", res["role"])

	_, res = admin.do(http.MethodGet, "/admin/history", nil)
	require.Equal(t, "ok", res["status"])
	data = res["data"].([]any)
	require.Len(t, data, 1)
	row := data[0].(map[string]any)
	assert.Equal(t, "alice", row["username"])
	assert.Equal(t, "a@x.com", row["email"])
	assert.Equal(t, "Home", row["location"])

	_, res = admin.do(http.MethodDelete, "/admin/delete-all-history", nil)
	require.Equal(t, "ok", res["status"])
	assert.Equal(t, float64(1), res["deleted"])

	_, res = admin.do(http.MethodGet, "/admin/history", nil)
	require.Equal(t, "ok", res["status"])
	assert.Empty(t, res["data"])
}

func TestLoginFailuresAreUniform(t *testing.T) {
	ts, _ := newTestServer(t)
	c := newClient(t, ts)
	c.register("alice", "a@x.com", "secret1", "")

	wrongPass := c.login("a@x.com", "nope-nope")
	noUser := c.login("ghost@x.com", "secret1")

	assert.Equal(t, "error", wrongPass["status"])
	assert.Equal(t, wrongPass, noUser)
}

func TestRegisterValidationAndDuplicates(t *testing.T) {
	ts, _ := newTestServer(t)
	c := newClient(t, ts)

	res := c.register("", "a@x.com", "secret1", "")
	assert.Equal(t, "error", res["status"])

	res = c.register("alice", "not-an-email", "secret1", "")
	assert.Equal(t, "error", res["status"])

	res = c.register("alice", "a@x.com", "12345", "")
	assert.Equal(t, "error", res["status"])

	res = c.register("alice", "a@x.com", "secret1", "Home")
	assert.Equal(t, "ok", res["status"])

	res = c.register("imposter", "a@x.com", "hunter2", "")
	assert.Equal(t, "error", res["status"])
	assert.Equal(t, "Email already registered.", res["message"])
}

func TestMeReflectsSessionState(t *testing.T) {
	ts, _ := newTestServer(t)
	c := newClient(t, ts)

	_, res := c.do(http.MethodGet, "/me", nil)
	assert.Equal(t, false, res["logged_in"])

	c.register("alice", "a@x.com", "secret1", "Home")
	c.login("a@x.com", "secret1")

	_, res = c.do(http.MethodGet, "/me", nil)
	assert.Equal(t, true, res["logged_in"])
	assert.Equal(t, "user", res["role"])
	assert.Equal(t, "alice", res["username"])
	assert.Equal(t, "Home", res["location"])
}

func TestLogoutIsIdempotent(t *testing.T) {
	ts, _ := newTestServer(t)
	c := newClient(t, ts)
	c.register("alice", "a@x.com", "secret1", "")
	c.login("a@x.com", "secret1")

	_, res := c.do(http.MethodGet, "/logout", nil)
	assert.Equal(t, "ok", res["status"])

	// second logout sees no session and still succeeds
	_, res = c.do(http.MethodGet, "/logout", nil)
	assert.Equal(t, "ok", res["status"])

	_, res = c.do(http.MethodGet, "/me", nil)
	assert.Equal(t, false, res["logged_in"])
}

func TestAdminRoutesDenyNonAdmins(t *testing.T) {
	ts, _ := newTestServer(t)

	alice := newClient(t, ts)
	alice.register("alice", "a@x.com", "secret1", "")
	alice.login("a@x.com", "secret1")
	_, res := alice.do(http.MethodPost, "/api/save_history", map[string]any{
		"appliances_json": "[]", "total_kwh": 1, "total_cost": 1, "model_used": "m",
	})
	require.Equal(t, "ok", res["status"])

	anon := newClient(t, ts)
	adminPaths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/history"},
		{http.MethodDelete, "/admin/delete-history/1"},
		{http.MethodDelete, "/admin/delete-all-history"},
	}
	for _, p := range adminPaths {
		codeAnon, bodyAnon := anon.do(p.method, p.path, nil)
		codeUser, bodyUser := alice.do(p.method, p.path, nil)
		assert.Equal(t, http.StatusUnauthorized, codeAnon, p.path)
		assert.Equal(t, codeAnon, codeUser, p.path)
		assert.Equal(t, bodyAnon, bodyUser, "denial must not reveal session state for %s", p.path)
	}

	// repository unchanged after all the denied calls
	_, res = alice.do(http.MethodGet, "/user/history", nil)
	require.Equal(t, "ok", res["status"])
	assert.Len(t, res["data"].([]any), 1)
}

func TestOwnershipScopingAcrossUsers(t *testing.T) {
	ts, _ := newTestServer(t)

	alice := newClient(t, ts)
	alice.register("alice", "a@x.com", "secret1", "")
	alice.login("a@x.com", "secret1")
	_, res := alice.do(http.MethodPost, "/api/save_history", map[string]any{
		"appliances_json": "[]", "total_kwh": 1, "total_cost": 1, "model_used": "m",
	})
	require.Equal(t, "ok", res["status"])

	bob := newClient(t, ts)
	bob.register("bob", "b@x.com", "secret2", "")
	bob.login("b@x.com", "secret2")

	_, res = bob.do(http.MethodGet, "/user/history", nil)
	require.Equal(t, "ok", res["status"])
	assert.Empty(t, res["data"], "bob must not see alice's records")
}

func TestDeleteOneHistory(t *testing.T) {
	ts, _ := newTestServer(t)

	alice := newClient(t, ts)
	alice.register("alice", "a@x.com", "secret1", "")
	alice.login("a@x.com", "secret1")
	for i := 0; i < 2; i++ {
		alice.do(http.MethodPost, "/api/save_history", map[string]any{
			"appliances_json": "[]", "total_kwh": i, "total_cost": i, "model_used": "m",
		})
	}

	admin := newClient(t, ts)
	admin.login("admin@energy.com", "Admin@123")

	_, res := admin.do(http.MethodGet, "/admin/history", nil)
	rows := res["data"].([]any)
	require.Len(t, rows, 2)
	firstID := int(rows[0].(map[string]any)["id"].(float64))

	_, res = admin.do(http.MethodDelete, fmt.Sprintf("/admin/delete-history/%d", firstID), nil)
	assert.Equal(t, "ok", res["status"])

	_, res = admin.do(http.MethodDelete, fmt.Sprintf("/admin/delete-history/%d", firstID), nil)
	assert.Equal(t, "error", res["status"])
	assert.Equal(t, "Entry not found", res["message"])

	_, res = admin.do(http.MethodGet, "/admin/history", nil)
	assert.Len(t, res["data"].([]any), 1)
}

// The snapshot captured at login stays fixed even if the user row changes
// underneath it; new profile data only shows up after a fresh login.
func TestSessionSnapshotIgnoresLaterUserChanges(t *testing.T) {
	ts, gdb := newTestServer(t)
	c := newClient(t, ts)

	c.register("alice", "a@x.com", "secret1", "Home")
	c.login("a@x.com", "secret1")

	require.NoError(t, gdb.Model(&models.User{}).
		Where("email = ?", "a@x.com").
		Updates(map[string]any{"username": "renamed", "location": "Moved"}).Error)

	_, res := c.do(http.MethodGet, "/me", nil)
	assert.Equal(t, "alice", res["username"])
	assert.Equal(t, "Home", res["location"])

	c.do(http.MethodGet, "/logout", nil)
	c.login("a@x.com", "secret1")
	_, res = c.do(http.MethodGet, "/me", nil)
	assert.Equal(t, "renamed", res["username"])
	assert.Equal(t, "Moved", res["location"])
}

func TestRootRedirectsAnonymousToLogin(t *testing.T) {
	ts, _ := newTestServer(t)
	c := newClient(t, ts)

	req, err := http.NewRequest(http.MethodGet, c.base+"/", nil)
	require.NoError(t, err)
	res, err := c.http.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/login.html", res.Header.Get("Location"))
}
