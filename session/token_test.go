package session_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/eventx-studio/eventx-cli/session"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "user-1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestCookieExpiry(t *testing.T) {
	exp := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("reads the exp claim from the token cookie", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: "token", Value: signedToken(t, exp)}}
		require.Equal(t, exp.Unix(), session.CookieExpiry(cookies).Unix())
	})

	t.Run("prefers the cookie's own expiry when set", func(t *testing.T) {
		cookieExp := exp.Add(time.Hour)
		cookies := []*http.Cookie{{Name: "token", Value: signedToken(t, exp), Expires: cookieExp}}
		require.Equal(t, cookieExp, session.CookieExpiry(cookies))
	})

	t.Run("unparsable token yields zero time", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: "token", Value: "not-a-jwt"}}
		require.True(t, session.CookieExpiry(cookies).IsZero())
	})

	t.Run("no auth cookie yields zero time", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: "other", Value: "x"}}
		require.True(t, session.CookieExpiry(cookies).IsZero())
	})
}
