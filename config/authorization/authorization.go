package authorization

import (
	"context"
	"net/http"
	"strings"

	"MediSure/models"
	"MediSure/util"

	"github.com/gin-gonic/gin"
)

const userKey = "user"

// Credential is either a server session id or a bearer token.
type Credential interface {
	isCredential()
}

type SessionCredential struct {
	ID string
}

type TokenCredential struct {
	Raw string
}

func (SessionCredential) isCredential() {}
func (TokenCredential) isCredential()   {}

type Resolver interface {
	Resolve(ctx context.Context, cred Credential) (*models.User, error)
}

/*
* A bearer token wins over the cookie when both are sent
* Returns nil when the request carries neither
 */
func CredentialFromRequest(r *http.Request, cookieName string) Credential {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		if raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")); raw != "" {
			return TokenCredential{Raw: raw}
		}
	}
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return SessionCredential{ID: cookie.Value}
	}
	return nil
}

// SessionID returns the session cookie value, or "" when absent.
func SessionID(c *gin.Context, cookieName string) string {
	id, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return id
}

func authenticate(c *gin.Context, resolver Resolver, cookieName string) (*models.User, error) {
	user, err := resolver.Resolve(c.Request.Context(), CredentialFromRequest(c.Request, cookieName))
	if err != nil {
		return nil, err
	}
	c.Set(userKey, user)
	c.Set("userId", user.ID.Hex())
	return user, nil
}

// ProtectRoute rejects the request unless the credential resolves to a user.
func ProtectRoute(resolver Resolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := authenticate(c, resolver, cookieName); err != nil {
			util.Abort(c, err)
			return
		}
		c.Next()
	}
}

// CheckAuth is the terminal handler behind GET /api/auth/checkAuth.
func CheckAuth(resolver Resolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authenticate(c, resolver, cookieName)
		if err != nil {
			c.JSON(util.StatusOf(err), gin.H{
				"authenticated": false,
				"error":         util.AsAppError(err).Message,
				"kind":          util.KindOf(err),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"authenticated": true,
			"user":          user.Summary(),
		})
	}
}

// CurrentUser returns the user attached by ProtectRoute.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
