package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kawaf/petcafe-service/internal/api/http/handlers"
	"github.com/kawaf/petcafe-service/internal/auth"
	"github.com/kawaf/petcafe-service/internal/config"
	"github.com/kawaf/petcafe-service/internal/domain"
	"github.com/kawaf/petcafe-service/internal/events"
	"github.com/kawaf/petcafe-service/internal/observability"
	"github.com/kawaf/petcafe-service/internal/service"
)

type testEnv struct {
	app     *fiber.App
	users   *fakeUserRepo
	animals *fakeAnimalRepo
	menu    *fakeMenuRepo
	tokens  *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 24,
		BcryptCost:    4,
	}

	userRepo := newFakeUserRepo()
	animalRepo := newFakeAnimalRepo()
	menuRepo := newFakeMenuRepo()
	eventRepo := newFakeEventRepo()
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg, userRepo)
	resolver := authService.Resolver()

	animalService := service.NewAnimalService(animalRepo, nil, dispatcher)
	menuService := service.NewMenuService(menuRepo, nil, dispatcher)
	eventService := service.NewEventService(eventRepo, nil, dispatcher)
	userService := service.NewUserService(userRepo, cfg.BcryptCost)

	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:  handlers.NewHealthHandler("petcafe-service", "test", nil, nil),
		Auth:    handlers.NewAuthHandler(authService, resolver),
		Animals: handlers.NewAnimalsHandler(animalService, resolver),
		Menu:    handlers.NewMenuHandler(menuService, resolver),
		Events:  handlers.NewEventsHandler(eventService, resolver),
		Users:   handlers.NewUsersHandler(userService, resolver),
	})

	return &testEnv{
		app:     app,
		users:   userRepo,
		animals: animalRepo,
		menu:    menuRepo,
		tokens:  authService.TokenManager(),
	}
}

func (env *testEnv) seedUser(t *testing.T, email, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	require.NoError(t, err)
	user := &domain.User{Email: email, Name: "Test " + string(role), Role: role, PasswordHash: hash}
	require.NoError(t, env.users.Create(context.Background(), user))
	return user
}

func (env *testEnv) tokenFor(t *testing.T, user *domain.User) string {
	t.Helper()
	token, _, err := env.tokens.Issue(user.ID, user.Role, user.Email)
	require.NoError(t, err)
	return token
}

func (env *testEnv) request(t *testing.T, method, path, token string, body any) (*nethttp.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := env.app.Test(req, 5000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 {
		// Listing endpoints return arrays; wrap so callers can still
		// inspect object bodies without a second decode path.
		if raw[0] == '[' {
			var list []any
			require.NoError(t, json.Unmarshal(raw, &list))
			decoded = map[string]any{"items": list}
		} else {
			require.NoError(t, json.Unmarshal(raw, &decoded))
		}
	}
	return resp, decoded
}

func TestAnimalListingVisibilityByRole(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "admin@kawaf.fr", "admin-pass", domain.RoleAdmin)
	adminToken := env.tokenFor(t, admin)

	available := &domain.Animal{Name: "Mochi"}
	adopted := &domain.Animal{Name: "Taro", IsAdopted: true}
	require.NoError(t, env.animals.Create(context.Background(), available))
	require.NoError(t, env.animals.Create(context.Background(), adopted))

	resp, body := env.request(t, "GET", "/api/animals/", "", nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	require.Len(t, body["items"], 1)
	first := body["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "Mochi", first["name"])

	resp, body = env.request(t, "GET", "/api/animals/", adminToken, nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Len(t, body["items"], 2)
}

func TestAnimalMutationRequiresAuthentication(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "member@kawaf.fr", "member-pass", domain.RoleUser)
	userToken := env.tokenFor(t, user)

	payload := map[string]any{"name": "Kuro", "sex": "MALE"}

	resp, body := env.request(t, "POST", "/api/animals/", "", payload)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "authentication required", body["error"])

	resp, body = env.request(t, "POST", "/api/animals/", userToken, payload)
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Kuro", body["name"])
}

func TestMutationPolicyCheckedBeforeValidation(t *testing.T) {
	env := newTestEnv(t)
	member := env.seedUser(t, "member@kawaf.fr", "member-pass", domain.RoleUser)
	memberToken := env.tokenFor(t, member)

	// An anonymous caller with an empty or junk payload is rejected
	// for the missing credential, never for the payload.
	empty := map[string]any{}
	for _, path := range []string{"/api/animals/", "/api/menu/", "/api/events/"} {
		resp, body := env.request(t, "POST", path, "", empty)
		assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode, path)
		assert.Equal(t, "authentication required", body["error"], path)
	}

	// Same precedence over the :id parameter.
	resp, body := env.request(t, "PUT", "/api/animals/not-a-number", "", empty)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "authentication required", body["error"])

	// User management rejects non-admins before looking at anything.
	resp, body = env.request(t, "POST", "/api/user/", "", empty)
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "admin access only", body["error"])

	resp, body = env.request(t, "PUT", "/api/user/not-a-number", memberToken, empty)
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "admin access only", body["error"])
}

func TestLoginDoesNotRevealWhichCredentialFailed(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "known@kawaf.fr", "right-password", domain.RoleUser)

	respUnknown, bodyUnknown := env.request(t, "POST", "/api/user/login", "", map[string]any{
		"email": "ghost@kawaf.fr", "password": "whatever",
	})
	respWrong, bodyWrong := env.request(t, "POST", "/api/user/login", "", map[string]any{
		"email": "known@kawaf.fr", "password": "wrong-password",
	})

	assert.Equal(t, nethttp.StatusUnauthorized, respUnknown.StatusCode)
	assert.Equal(t, respUnknown.StatusCode, respWrong.StatusCode)
	assert.Equal(t, bodyUnknown, bodyWrong)

	resp, body := env.request(t, "POST", "/api/user/login", "", map[string]any{
		"email": "known@kawaf.fr", "password": "right-password",
	})
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])
	userInfo := body["user"].(map[string]any)
	assert.Equal(t, "known@kawaf.fr", userInfo["email"])
}

func TestChangePasswordFlow(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "member@kawaf.fr", "old-password", domain.RoleUser)
	token := env.tokenFor(t, user)

	body := map[string]any{"currentPassword": "old-password", "newPassword": "new-password"}

	resp, _ := env.request(t, "POST", "/api/user/change-password", "", body)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	resp, _ = env.request(t, "POST", "/api/user/change-password", token, map[string]any{
		"currentPassword": "not-the-old-one", "newPassword": "new-password",
	})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	resp, _ = env.request(t, "POST", "/api/user/change-password", token, body)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp, _ = env.request(t, "POST", "/api/user/login", "", map[string]any{
		"email": "member@kawaf.fr", "password": "new-password",
	})
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestMenuDuplicateNameRejected(t *testing.T) {
	env := newTestEnv(t)
	staff := env.seedUser(t, "staff@kawaf.fr", "staff-pass", domain.RoleStaff)
	token := env.tokenFor(t, staff)

	payload := map[string]any{"name": "Matcha Latte", "price": "4.50"}

	resp, _ := env.request(t, "POST", "/api/menu/", token, payload)
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	resp, body := env.request(t, "POST", "/api/menu/", token, payload)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "already exists")
}

func TestUserManagementIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "admin@kawaf.fr", "admin-pass", domain.RoleAdmin)
	member := env.seedUser(t, "member@kawaf.fr", "member-pass", domain.RoleUser)
	adminToken := env.tokenFor(t, admin)
	memberToken := env.tokenFor(t, member)

	resp, body := env.request(t, "GET", "/api/user/", "", nil)
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "admin access only", body["error"])

	resp, _ = env.request(t, "GET", "/api/user/", memberToken, nil)
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)

	resp, body = env.request(t, "GET", "/api/user/", adminToken, nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	require.Len(t, body["items"], 2)
	for _, item := range body["items"].([]any) {
		_, leaked := item.(map[string]any)["passwordHash"]
		assert.False(t, leaked)
	}

	resp, _ = env.request(t, "DELETE", "/api/user/2", memberToken, nil)
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)

	resp, _ = env.request(t, "DELETE", "/api/user/2", adminToken, nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp, _ = env.request(t, "DELETE", "/api/user/2", adminToken, nil)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestInvalidResourceIDRejected(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "admin@kawaf.fr", "admin-pass", domain.RoleAdmin)
	token := env.tokenFor(t, admin)

	for _, path := range []string{"/api/animals/abc", "/api/menu/abc", "/api/events/abc"} {
		resp, _ := env.request(t, "GET", path, token, nil)
		assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestMissingAnimalReturnsNotFound(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.request(t, "GET", "/api/animals/42", "", nil)
	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestEventListingFiltersOldEventsForPublic(t *testing.T) {
	env := newTestEnv(t)
	staff := env.seedUser(t, "staff@kawaf.fr", "staff-pass", domain.RoleStaff)
	token := env.tokenFor(t, staff)

	recent := map[string]any{"title": "Cat Yoga", "date": time.Now().Add(48 * time.Hour).Format(time.RFC3339)}
	stale := map[string]any{"title": "Last Month Mixer", "date": time.Now().Add(-30 * 24 * time.Hour).Format(time.RFC3339)}

	resp, _ := env.request(t, "POST", "/api/events/", token, recent)
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	resp, _ = env.request(t, "POST", "/api/events/", token, stale)
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	resp, body := env.request(t, "GET", "/api/events/", "", nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	require.Len(t, body["items"], 1)
	first := body["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "Cat Yoga", first["title"])

	resp, body = env.request(t, "GET", "/api/events/", token, nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Len(t, body["items"], 2)
}
