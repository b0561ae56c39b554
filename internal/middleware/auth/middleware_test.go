package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/freshcart/grocery_backend/internal/respond"
	"github.com/freshcart/grocery_backend/internal/token"
)

func newRequest(t *testing.T, header string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) respond.Envelope {
	t.Helper()
	var env respond.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRequireAuthMissingToken(t *testing.T) {
	m := &Middleware{Tokens: &token.Service{Secret: []byte("test-secret")}}

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc"} {
		rec, c := newRequest(t, header)
		called := false
		next := func(echo.Context) error { called = true; return nil }

		require.NoError(t, m.RequireAuth(next)(c))
		require.False(t, called, "downstream handler must not run for header %q", header)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		env := decodeEnvelope(t, rec)
		require.False(t, env.Status)
		require.Equal(t, respond.MsgNoToken, env.Message)
		require.Nil(t, env.Data)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	m := &Middleware{Tokens: &token.Service{Secret: []byte("test-secret")}}

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": 1}).
		SignedString([]byte("other-secret"))
	require.NoError(t, err)

	for _, raw := range []string{"garbage", forged} {
		rec, c := newRequest(t, "Bearer "+raw)
		called := false
		next := func(echo.Context) error { called = true; return nil }

		require.NoError(t, m.RequireAuth(next)(c))
		require.False(t, called)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, respond.MsgInvalidToken, decodeEnvelope(t, rec).Message)
	}
}

func TestRequireAuthAttachesClaims(t *testing.T) {
	svc := &token.Service{Secret: []byte("test-secret")}
	m := &Middleware{Tokens: svc}

	raw, err := svc.GenerateToken(42, "shopper")
	require.NoError(t, err)

	rec, c := newRequest(t, "Bearer "+raw)
	called := false
	next := func(c echo.Context) error {
		called = true
		claims, ok := c.Get("claims").(jwt.MapClaims)
		require.True(t, ok)
		require.NotContains(t, claims, "iat")
		require.NotContains(t, claims, "exp")
		require.Equal(t, uint(42), c.Get("userID"))
		require.Equal(t, "user", c.Get("role"))
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.RequireAuth(next)(c))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	svc := &token.Service{Secret: []byte("test-secret")}
	m := &Middleware{Tokens: svc}

	userToken, err := svc.GenerateToken(1, "shopper")
	require.NoError(t, err)
	adminToken, err := svc.GenerateAdminToken(2, "boss")
	require.NoError(t, err)

	handler := m.RequireAuth(m.AdminOnly(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	rec, c := newRequest(t, "Bearer "+userToken)
	require.NoError(t, handler(c))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, respond.MsgAdminOnly, decodeEnvelope(t, rec).Message)

	rec2, c2 := newRequest(t, "Bearer "+adminToken)
	require.NoError(t, handler(c2))
	require.Equal(t, http.StatusOK, rec2.Code)
}
