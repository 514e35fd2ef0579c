// Package cookie issues and clears the session cookies.
package cookie

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	Access        = "user"
	Refresh       = "refresh"
	PasswordReset = "password-reset"
)

// Jar writes cookies with the attributes the storefront needs for cross-site requests.
type Jar struct {
	secure bool
}

func NewJar(secure bool) *Jar {
	return &Jar{secure: secure}
}

func (j *Jar) Set(c echo.Context, name, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteNoneMode,
	})
}

func (j *Jar) Clear(c echo.Context, names ...string) {
	for _, name := range names {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
			Secure:   j.secure,
			SameSite: http.SameSiteNoneMode,
		})
	}
}

// Value returns the cookie's value, or "" when absent.
func Value(c echo.Context, name string) string {
	ck, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return ck.Value
}
