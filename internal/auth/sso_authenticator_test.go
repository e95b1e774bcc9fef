package auth_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/solarbi/savvy-planner/internal/auth"
)

var _ = Describe("sso authentication", func() {
	Context("token validation", func() {
		It("successfully validates the token", func() {
			sToken, keyFn := generateToken(jwt.MapClaims{"preferred_username": "batman", "email": "batman@gotham.com"})
			authenticator, err := auth.NewSSOAuthenticatorWithKeyFn(keyFn)
			Expect(err).To(BeNil())

			user, err := authenticator.Authenticate(sToken)
			Expect(err).To(BeNil())
			Expect(user.Username).To(Equal("batman"))
			Expect(user.Email).To(Equal("batman@gotham.com"))
		})

		It("falls back to the email", func() {
			sToken, keyFn := generateToken(jwt.MapClaims{"email": "robin@gotham.com"})
			authenticator, err := auth.NewSSOAuthenticatorWithKeyFn(keyFn)
			Expect(err).To(BeNil())

			user, err := authenticator.Authenticate(sToken)
			Expect(err).To(BeNil())
			Expect(user.Username).To(Equal("robin@gotham.com"))
		})

		It("fails without any identity claim", func() {
			sToken, keyFn := generateToken(jwt.MapClaims{})
			authenticator, err := auth.NewSSOAuthenticatorWithKeyFn(keyFn)
			Expect(err).To(BeNil())

			_, err = authenticator.Authenticate(sToken)
			Expect(err).ToNot(BeNil())
		})

		It("fails with a wrong signing method", func() {
			sToken, keyFn := generateTokenWrongSigningMethod()
			authenticator, err := auth.NewSSOAuthenticatorWithKeyFn(keyFn)
			Expect(err).To(BeNil())

			_, err = authenticator.Authenticate(sToken)
			Expect(err).ToNot(BeNil())
		})
	})

	Context("middleware", func() {
		It("authenticates a bearer token", func() {
			sToken, keyFn := generateToken(jwt.MapClaims{"preferred_username": "batman"})
			authenticator, err := auth.NewSSOAuthenticatorWithKeyFn(keyFn)
			Expect(err).To(BeNil())

			h := &handler{}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", sToken))
			rec := httptest.NewRecorder()
			authenticator.Authenticator(h).ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(h.username).To(Equal("batman"))
		})

		It("authenticates a token cookie", func() {
			sToken, keyFn := generateToken(jwt.MapClaims{"preferred_username": "batman"})
			authenticator, err := auth.NewSSOAuthenticatorWithKeyFn(keyFn)
			Expect(err).To(BeNil())

			h := &handler{}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: "access_token", Value: sToken})
			rec := httptest.NewRecorder()
			authenticator.Authenticator(h).ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("rejects a request without token", func() {
			_, keyFn := generateToken(jwt.MapClaims{})
			authenticator, err := auth.NewSSOAuthenticatorWithKeyFn(keyFn)
			Expect(err).To(BeNil())

			rec := httptest.NewRecorder()
			authenticator.Authenticator(&handler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects an invalid token", func() {
			sToken, keyFn := generateTokenWrongSigningMethod()
			authenticator, err := auth.NewSSOAuthenticatorWithKeyFn(keyFn)
			Expect(err).To(BeNil())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", sToken))
			rec := httptest.NewRecorder()
			authenticator.Authenticator(&handler{}).ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})

var _ = Describe("none authentication", func() {
	It("injects the default user", func() {
		authenticator, err := auth.NewNoneAuthenticator()
		Expect(err).To(BeNil())

		h := &handler{}
		rec := httptest.NewRecorder()
		authenticator.Authenticator(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		Expect(h.username).To(Equal("admin"))
	})

	It("reports anonymous without a user", func() {
		Expect(auth.UsernameFromContext(context.TODO())).To(Equal(auth.AnonymousUser))
	})
})

type handler struct {
	username string
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.username = auth.UsernameFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
}

func generateToken(extra jwt.MapClaims) (string, func(t *jwt.Token) (any, error)) {
	claims := jwt.MapClaims{
		"exp": jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		"iat": jwt.NewNumericDate(time.Now()),
		"iss": "test",
		"sub": "somebody",
	}
	for k, v := range extra {
		claims[k] = v
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	Expect(err).To(BeNil())

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	ss, err := token.SignedString(privateKey)
	Expect(err).To(BeNil())

	return ss, func(t *jwt.Token) (any, error) {
		return privateKey.Public(), nil
	}
}

func generateTokenWrongSigningMethod() (string, func(t *jwt.Token) (any, error)) {
	claims := jwt.MapClaims{
		"preferred_username": "batman",
		"exp":                jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		"iat":                jwt.NewNumericDate(time.Now()),
	}

	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	Expect(err).To(BeNil())

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	ss, err := token.SignedString(privateKey)
	Expect(err).To(BeNil())

	return ss, func(t *jwt.Token) (any, error) {
		return privateKey.Public(), nil
	}
}
