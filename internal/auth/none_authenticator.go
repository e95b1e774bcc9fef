package auth

import (
	"net/http"
)

const defaultUsername = "admin"

type NoneAuthenticator struct{}

func NewNoneAuthenticator() (*NoneAuthenticator, error) {
	return &NoneAuthenticator{}, nil
}

func (n *NoneAuthenticator) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := NewUserContext(r.Context(), User{Username: defaultUsername})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
