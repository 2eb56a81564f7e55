package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"news-backend/internal/config"
	"news-backend/internal/domains/auth/model"
)

// Manager issues and verifies the signed session cookie. The cookie carries
// the raw OAuth access token as a claim inside an HMAC-signed JWT; the server
// stores no session state of its own.
type Manager struct {
	cookieName string
	secret     []byte
	maxAge     int
	secure     bool
}

func NewManager(cfg *config.SessionConfig) *Manager {
	return &Manager{
		cookieName: cfg.CookieName,
		secret:     []byte(cfg.Secret),
		maxAge:     cfg.MaxAge,
		secure:     cfg.Secure,
	}
}

// Sign wraps the access token in a signed cookie value.
func (m *Manager) Sign(accessToken string) (string, error) {
	claims := jwt.MapClaims{
		"access_token": accessToken,
		"iat":          time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing session cookie: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and returns the embedded access token.
func (m *Manager) Verify(value string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", model.ErrUnauthenticated
	}

	accessToken, ok := claims["access_token"].(string)
	if !ok || accessToken == "" {
		return "", model.ErrUnauthenticated
	}
	return accessToken, nil
}

// SetCookie signs the access token and writes the httpOnly cookie.
func (m *Manager) SetCookie(c *gin.Context, accessToken string) error {
	value, err := m.Sign(accessToken)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, value, m.maxAge, "/", "", m.secure, true)
	return nil
}

// ClearCookie expires the session cookie.
func (m *Manager) ClearCookie(c *gin.Context) {
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}

// Token reads and verifies the cookie, returning the access token. A missing
// cookie and a tampered one are the same failure.
func (m *Manager) Token(c *gin.Context) (string, error) {
	value, err := c.Cookie(m.cookieName)
	if err != nil {
		return "", model.ErrUnauthenticated
	}
	return m.Verify(value)
}
