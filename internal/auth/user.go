package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

type userKeyType struct{}

var (
	userKey userKeyType
)

// AnonymousUser is recorded in the audit log when no user is authenticated.
const AnonymousUser = "anonymous"

func UserFromContext(ctx context.Context) (User, bool) {
	val := ctx.Value(userKey)
	if val == nil {
		return User{}, false
	}
	return val.(User), true
}

// UsernameFromContext returns the authenticated username or AnonymousUser.
func UsernameFromContext(ctx context.Context) string {
	if u, ok := UserFromContext(ctx); ok && u.Username != "" {
		return u.Username
	}
	return AnonymousUser
}

func NewUserContext(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

type User struct {
	Username string
	Email    string
	Token    *jwt.Token
}
