package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-backend/internal/config"
	"news-backend/internal/domains/auth/model"
	"news-backend/internal/domains/auth/session"
	"news-backend/internal/shared/middleware"
)

type stubProvider struct {
	identity *model.Identity
	err      error
}

func (p *stubProvider) Resolve(context.Context, string) (*model.Identity, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.identity, nil
}

func newAuthRouter(identities *stubProvider) (*gin.Engine, *session.Manager) {
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager(&config.SessionConfig{
		CookieName: "access_token",
		Secret:     "test-secret",
	})
	h := NewAuthHandler(sessions)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/login", middleware.RequireSession(sessions, identities), h.Me)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)
	return router, sessions
}

func TestLoginSetsSignedCookie(t *testing.T) {
	router, sessions := newAuthRouter(&stubProvider{})

	body := bytes.NewBufferString(`{"access_token":"ya29.token"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/login", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	token, err := sessions.Verify(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "ya29.token", token)
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	router, _ := newAuthRouter(&stubProvider{})

	body := bytes.NewBufferString(`{"access_token":""}`)
	req := httptest.NewRequest(http.MethodPost, "/api/login", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeReturnsIdentity(t *testing.T) {
	identity := &model.Identity{Name: "alice", Email: "alice@example.com", Picture: "p"}
	router, sessions := newAuthRouter(&stubProvider{identity: identity})

	value, err := sessions.Sign("tok")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/login", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: value})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, *identity, got)
}

func TestMeWithoutCookieIs401(t *testing.T) {
	router, _ := newAuthRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/api/login", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeWithRejectedTokenIs401(t *testing.T) {
	router, sessions := newAuthRouter(&stubProvider{err: model.ErrUnauthenticated})

	value, err := sessions.Sign("expired")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/login", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: value})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	router, _ := newAuthRouter(&stubProvider{})

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}
