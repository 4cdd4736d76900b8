package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type stubVerifier map[string]principal.Principal

func (s stubVerifier) Verify(raw string) (principal.Principal, error) {
	p, ok := s[raw]
	if !ok {
		return principal.Principal{}, errors.New("signature is invalid")
	}
	return p, nil
}

var (
	ada  = principal.New(principal.RoleCustomer, 4, "Ada", "ada@x.com")
	sam  = principal.New(principal.RoleStaff, 4, "Sam", "sam@x.com")
	root = principal.New(principal.RoleAdmin, 1, "Root", "root@x.com")

	tokens = stubVerifier{
		"ada":    ada,
		"sam":    sam,
		"root":   root,
		"noRole": {Name: "legacy"},
	}
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	authed := r.Group("/", AuthMiddleware(tokens, discardLogger))
	authed.GET("/me", func(c *gin.Context) {
		p, ok := CurrentPrincipal(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, p)
	})
	authed.GET("/staff", StaffOrAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
	authed.GET("/admin", AdminOnly(), func(c *gin.Context) { c.Status(http.StatusOK) })
	authed.GET("/customers/:id",
		SelfOrRole(principal.RoleCustomer, "id", principal.RoleStaff, principal.RoleAdmin),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"id": c.MustGet(ContextResourceID)}) },
	)
	authed.GET("/admin-or-self/:id",
		SelfOrRole(principal.RoleCustomer, "id", principal.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func do(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(tok string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + tok}
}

func msg(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	s, _ := body["msg"].(string)
	return s
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	w := do(newRouter(), "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, msg(t, w))
}

func TestAuthMiddlewareInvalidTokenHidesCause(t *testing.T) {
	w := do(newRouter(), "/me", bearer("forged"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "signature")
}

func TestAuthMiddlewareBearer(t *testing.T) {
	w := do(newRouter(), "/me", bearer("ada"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"customer"`)
}

func TestAuthMiddlewareLegacyHeader(t *testing.T) {
	w := do(newRouter(), "/me", map[string]string{"x-auth-token": "sam"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"staff"`)
}

func TestAuthMiddlewareFallsBackWhenAuthorizationIsNotBearer(t *testing.T) {
	w := do(newRouter(), "/me", map[string]string{
		"Authorization": "Basic Zm9vOmJhcg==",
		"x-auth-token":  "root",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestStaffOrAdmin(t *testing.T) {
	r := newRouter()
	assert.Equal(t, http.StatusForbidden, do(r, "/staff", bearer("ada")).Code)
	assert.Equal(t, http.StatusOK, do(r, "/staff", bearer("sam")).Code)
	assert.Equal(t, http.StatusOK, do(r, "/staff", bearer("root")).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/staff", bearer("noRole")).Code)
}

func TestAdminOnly(t *testing.T) {
	r := newRouter()
	assert.Equal(t, http.StatusForbidden, do(r, "/admin", bearer("ada")).Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/admin", bearer("sam")).Code)
	assert.Equal(t, http.StatusOK, do(r, "/admin", bearer("root")).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/admin", bearer("noRole")).Code)
}

func TestSelfOrRole(t *testing.T) {
	r := newRouter()

	w := do(r, "/customers/4", bearer("ada"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":4}`, w.Body.String())

	assert.Equal(t, http.StatusForbidden, do(r, "/customers/5", bearer("ada")).Code)
	assert.Equal(t, http.StatusOK, do(r, "/customers/5", bearer("sam")).Code)

	// staff id 4 is not customer 4
	assert.Equal(t, http.StatusForbidden, do(r, "/admin-or-self/4", bearer("sam")).Code)
	assert.Equal(t, http.StatusOK, do(r, "/admin-or-self/4", bearer("ada")).Code)
}

func TestSelfOrRoleRejectsBadID(t *testing.T) {
	r := newRouter()
	for _, path := range []string{"/customers/abc", "/customers/0", "/customers/-3", "/customers/1.5"} {
		w := do(r, path, bearer("root"))
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "Validation failed", msg(t, w))
	}
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	for _, bad := range []string{"", "0", "-1", "1e3", " 7", "99999999999"} {
		_, ok := ParseID(bad)
		assert.False(t, ok, bad)
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware("https://shop.example"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://shop.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "x-auth-token")

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecureHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecureHeaders(false, discardLogger))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, "/x", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(discardLogger))
	r.GET("/boom", func(c *gin.Context) { panic("db exploded") })

	w := do(r, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"msg":"Server error"}`, w.Body.String())
}
