package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"news-backend/internal/domains/auth/model"
	"news-backend/internal/domains/auth/provider"
	"news-backend/internal/domains/auth/session"
	"news-backend/internal/shared/response"
)

const identityKey = "identity"

// RequireSession gates a route on a valid session. It reads the signed
// cookie, re-validates the access token against the identity provider, and
// puts the resolved Identity into the gin context. No identity cache: the
// provider is on the critical path of every protected request.
func RequireSession(sessions *session.Manager, identities provider.IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, err := sessions.Token(c)
		if err != nil {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		identity, err := identities.Resolve(c.Request.Context(), accessToken)
		if err != nil {
			log.Warn().
				Str("request_id", c.GetString("request_id")).
				Err(err).
				Msg("Identity resolution failed")
			response.Unauthorized(c, "Failed to fetch user info")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// GetIdentity returns the Identity stored by RequireSession.
func GetIdentity(c *gin.Context) (*model.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*model.Identity)
	return identity, ok
}
