package v1

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"go.uber.org/zap"

	api "github.com/solarbi/savvy-planner/api/v1"
)

const (
	flashCookie = "savvy_flash"
	flashMaxAge = 300
)

// flashCodec keeps one-shot messages in a signed cookie between a POST and
// the redirected GET.
type flashCodec struct {
	cookies *securecookie.SecureCookie
	path    string
}

func newFlashCodec(secret, path string) *flashCodec {
	key := []byte(secret)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		zap.S().Named("handlers").Warn("flash secret not set: using a random key, flashes will not survive a restart")
	}

	cookies := securecookie.New(key, nil).MaxAge(flashMaxAge)
	cookies.SetSerializer(securecookie.JSONEncoder{})
	return &flashCodec{cookies: cookies, path: path}
}

func (c *flashCodec) set(w http.ResponseWriter, flashes ...api.UploadFlash) {
	value, err := c.cookies.Encode(flashCookie, flashes)
	if err != nil {
		zap.S().Named("handlers").Errorw("failed to encode flash cookie", "error", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     c.path,
		MaxAge:   flashMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// pop returns the pending flashes and clears the cookie. Tampered or expired
// cookies are dropped.
func (c *flashCodec) pop(w http.ResponseWriter, r *http.Request) []api.UploadFlash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Path: c.path, MaxAge: -1, HttpOnly: true})

	var flashes []api.UploadFlash
	if err := c.cookies.Decode(flashCookie, cookie.Value, &flashes); err != nil {
		return nil
	}
	return flashes
}
