package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
)

// sessionCookies writes the token pair as HttpOnly, SameSite=Strict cookies.
// Secure is on in production only, so local http development still works.
type sessionCookies struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (c sessionCookies) set(w http.ResponseWriter, pair domain.TokenPair) {
	http.SetCookie(w, c.cookie(boardsdk.AccessTokenCookie, pair.AccessToken, int(c.AccessTTL.Seconds())))
	http.SetCookie(w, c.cookie(boardsdk.RefreshTokenCookie, pair.RefreshToken, int(c.RefreshTTL.Seconds())))
}

// clear expires both cookies. It needs no valid session.
func (c sessionCookies) clear(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie(boardsdk.AccessTokenCookie, "", -1))
	http.SetCookie(w, c.cookie(boardsdk.RefreshTokenCookie, "", -1))
}

func (c sessionCookies) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}
