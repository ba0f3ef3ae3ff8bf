package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// authCookieName is the cookie the EventX backend sets on login. Its
// value is a JWT the backend alone verifies; the client only reads the
// expiry claim for display and re-login prompting.
const authCookieName = "token"

// CookieExpiry extracts the expiry of the backend's auth cookie from a
// response cookie set. The token is parsed without verification; the
// client holds no signing key and never trusts the claims for
// authorization. Any parse failure yields the zero time, which the
// session layer treats as "lifetime unknown".
func CookieExpiry(cookies []*http.Cookie) time.Time {
	for _, c := range cookies {
		if c.Name != authCookieName || c.Value == "" {
			continue
		}
		if !c.Expires.IsZero() {
			return c.Expires
		}
		token, _, err := jwt.NewParser().ParseUnverified(c.Value, jwt.MapClaims{})
		if err != nil {
			return time.Time{}
		}
		exp, err := token.Claims.GetExpirationTime()
		if err != nil || exp == nil {
			return time.Time{}
		}
		return exp.Time
	}
	return time.Time{}
}
